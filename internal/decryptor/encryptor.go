package decryptor

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// Encrypt собирает контейнер: заголовок с расширением ext и AES-256-CBC шифртекст
// plain с PKCS#7 паддингом.
func Encrypt(plain []byte, password, ext string) ([]byte, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}
	if len(ext) > HeaderSize {
		return nil, fmt.Errorf("%q: %w", ext, ErrExtensionTooLong)
	}

	block, err := aes.NewCipher(DeriveKey(password))
	if err != nil {
		return nil, fmt.Errorf("cipher: %w", err)
	}

	padded := pkcs7Pad(append([]byte(nil), plain...), aes.BlockSize)
	out := make([]byte, HeaderSize+len(padded))
	copy(out, ext)
	cipher.NewCBCEncrypter(block, zeroIV).CryptBlocks(out[HeaderSize:], padded)
	return out, nil
}
