package decryptor

import (
	"bytes"
	"crypto/aes"
	"fmt"
)

// pkcs7Pad adds PKCS#7 padding to the data to make it a multiple of blockSize.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	padText := bytes.Repeat([]byte{byte(padding)}, padding)
	return append(data, padText...)
}

// pkcs7Unpad снимает паддинг по значению последнего байта.
// Длина паддинга всегда проверяется на границы 1..BlockSize; сами байты паддинга
// сверяются только при strict.
func pkcs7Unpad(data []byte, strict bool) ([]byte, error) {
	length := len(data)
	if length == 0 {
		return nil, fmt.Errorf("empty plaintext: %w", ErrDecryptFailed)
	}

	padding := int(data[length-1])
	if padding < 1 || padding > aes.BlockSize || padding > length {
		return nil, fmt.Errorf("invalid padding size %d: %w", padding, ErrDecryptFailed)
	}

	if strict {
		for i := length - padding; i < length; i++ {
			if data[i] != byte(padding) {
				return nil, fmt.Errorf("invalid padding: %w", ErrDecryptFailed)
			}
		}
	}

	return data[:length-padding], nil
}
