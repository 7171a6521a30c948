package decryptor

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"path/filepath"
	"strings"
)

const sidecarPrefix = "SHA256|"

// SidecarDir — подкаталог рядом с контейнером, где лежат файлы хэшей.
const SidecarDir = "hash"

// SidecarPath возвращает путь файла хэша для контейнера: <dir>/hash/<name>.hash.
func SidecarPath(containerPath string) string {
	return filepath.Join(filepath.Dir(containerPath), SidecarDir, filepath.Base(containerPath)+".hash")
}

// SidecarContainer — обратное к SidecarPath: для <dir>/hash/<name>.hash
// возвращает <dir>/<name>. ok=false, если путь не похож на файл хэша.
func SidecarContainer(sidecarPath string) (string, bool) {
	dir, file := filepath.Split(sidecarPath)
	if filepath.Base(dir) != SidecarDir || !strings.HasSuffix(file, ".hash") {
		return "", false
	}
	name := strings.TrimSuffix(file, ".hash")
	if name == "" {
		return "", false
	}
	return filepath.Join(filepath.Dir(filepath.Clean(dir)), name), true
}

// Checksum возвращает SHA-256 зашифрованного контейнера в hex.
func Checksum(blob []byte) string {
	sum := sha256.Sum256(blob)
	return hex.EncodeToString(sum[:])
}

// FormatSidecar форматирует содержимое файла hash/<name>.hash.
func FormatSidecar(sum string) string {
	return sidecarPrefix + sum
}

// ParseSidecar читает содержимое файла hash/<name>.hash.
func ParseSidecar(content string) (string, error) {
	s := strings.TrimSpace(content)
	if !strings.HasPrefix(s, sidecarPrefix) {
		return "", errors.New("unknown hash sidecar format")
	}
	sum := strings.ToLower(strings.TrimPrefix(s, sidecarPrefix))
	if b, err := hex.DecodeString(sum); err != nil || len(b) != sha256.Size {
		return "", errors.New("invalid sha256 in hash sidecar")
	}
	return sum, nil
}
