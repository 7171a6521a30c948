package decryptor

import "errors"

var (
	// ErrMalformedInput is returned when the blob is shorter than the extension header.
	ErrMalformedInput = errors.New("malformed input: blob shorter than header")
	// ErrEmptyPassword is returned when no password was supplied.
	ErrEmptyPassword = errors.New("empty password")
	// ErrDecryptFailed covers wrong passwords, corrupted ciphertext and bad padding alike.
	ErrDecryptFailed = errors.New("wrong password or corrupted file")
	// ErrExtensionTooLong is returned by Encrypt when the extension does not fit the header.
	ErrExtensionTooLong = errors.New("extension does not fit into header")
)
