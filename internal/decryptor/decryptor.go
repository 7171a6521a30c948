package decryptor

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"path"
	"strings"
)

const (
	// HeaderSize — длина заголовка с исходным расширением.
	HeaderSize = 16
	// KeySize — длина ключа для AES-256 (в байтах).
	KeySize = 32
)

// zeroIV — фиксированный нулевой IV формата.
var zeroIV = make([]byte, aes.BlockSize)

// Result — результат успешной расшифровки.
type Result struct {
	Plaintext []byte
	FileName  string // исходное имя без контейнерного расширения + восстановленное расширение
	Extension string
}

type options struct {
	strictPadding bool
}

// Option настраивает Decrypt.
type Option func(*options)

// WithStrictPadding включает полную проверку PKCS#7 паддинга.
func WithStrictPadding() Option {
	return func(o *options) { o.strictPadding = true }
}

// DeriveKey строит 32-байтовый ключ: первые 32 байта пароля в UTF-8,
// остаток добивается нулями.
func DeriveKey(password string) []byte {
	key := make([]byte, KeySize)
	copy(key, password)
	return key
}

// ParseExtension извлекает расширение из заголовка, убирая NUL и пробелы.
func ParseExtension(header []byte) string {
	return strings.TrimSpace(strings.ReplaceAll(string(header), "\x00", ""))
}

// OutputFileName возвращает базовое имя sourcePath без контейнерного расширения,
// к которому добавлено восстановленное расширение ext.
func OutputFileName(sourcePath, ext string) string {
	base := path.Base(strings.ReplaceAll(sourcePath, "\\", "/"))
	if base == "." || base == "/" {
		base = ""
	}
	return strings.TrimSuffix(base, path.Ext(base)) + ext
}

// Decrypt расшифровывает blob паролем password. sourcePath используется только
// для построения имени выходного файла.
func Decrypt(blob []byte, password, sourcePath string, opts ...Option) (*Result, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if password == "" {
		return nil, ErrEmptyPassword
	}
	if len(blob) < HeaderSize {
		return nil, ErrMalformedInput
	}

	ext := ParseExtension(blob[:HeaderSize])
	ciphertext := blob[HeaderSize:]
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("ciphertext length %d: %w", len(ciphertext), ErrDecryptFailed)
	}

	block, err := aes.NewCipher(DeriveKey(password))
	if err != nil {
		return nil, fmt.Errorf("cipher: %v: %w", err, ErrDecryptFailed)
	}
	decrypted := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, zeroIV).CryptBlocks(decrypted, ciphertext)

	plain, err := pkcs7Unpad(decrypted, o.strictPadding)
	if err != nil {
		return nil, err
	}

	return &Result{
		Plaintext: plain,
		FileName:  OutputFileName(sourcePath, ext),
		Extension: ext,
	}, nil
}
