package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// maxNameAttempts — сколько вариантов "name (N).ext" пробуем, прежде чем сдаться.
const maxNameAttempts = 1000

// DownloadFSStore — файловое хранилище скачанных файлов CLI.
type DownloadFSStore struct {
	Dir string
}

// safeName оставляет только базовое имя: расширение из заголовка файла
// не должно уводить запись за пределы каталога.
func safeName(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || base == ".." || base == "" {
		return "download"
	}
	return base
}

// Save записывает data в Dir. Существующие файлы не перезаписываются:
// к имени добавляется " (N)", как это делает браузер.
func (s DownloadFSStore) Save(name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o700); err != nil {
		return "", err
	}
	base := safeName(name)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	for i := 0; i < maxNameAttempts; i++ {
		candidate := base
		if i > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", stem, i, ext)
		}
		p := filepath.Join(s.Dir, candidate)
		f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", err
		}
		if _, err := f.Write(data); err != nil {
			_ = f.Close()
			return "", err
		}
		return p, f.Close()
	}
	return "", fmt.Errorf("no free file name for %q in %s", base, s.Dir)
}
