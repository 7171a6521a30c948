package service

import (
	"BinViewer/internal/decryptor"
	"BinViewer/internal/model"
	"BinViewer/internal/repo"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNotFound — файла нет в каталоге.
var ErrNotFound = errors.New("file not found in catalog")

// ContainerExt — расширение зашифрованных контейнеров.
const ContainerExt = ".bin"

var imageExts = map[string]struct{}{
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".webp": {}, ".bmp": {}, ".svg": {},
}

// ClassifyFile определяет тип файла каталога по расширению.
func ClassifyFile(name string) string {
	ext := strings.ToLower(path.Ext(name))
	if ext == ContainerExt {
		return model.FileTypeEncrypted
	}
	if _, ok := imageExts[ext]; ok {
		return model.FileTypeImage
	}
	return model.FileTypeOther
}

// CatalogService держит каталог файлов в актуальном состоянии относительно каталога ресурсов.
type CatalogService struct {
	repo   repo.FileRepository
	root   string
	logger *zap.SugaredLogger

	mu sync.Mutex // сериализует Rescan
}

// NewCatalogService создаёт сервис каталога над каталогом root.
func NewCatalogService(r repo.FileRepository, root string, logger *zap.SugaredLogger) *CatalogService {
	return &CatalogService{repo: r, root: root, logger: logger}
}

// Root возвращает каталог ресурсов.
func (s *CatalogService) Root() string { return s.root }

// RescanResult — итог пересканирования.
type RescanResult struct {
	Indexed int
	Removed int64
}

// Rescan обходит каталог ресурсов, обновляет записи и удаляет исчезнувшие.
func (s *CatalogService) Rescan(ctx context.Context) (RescanResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var files []model.File
	err := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if s.isSidecar(p) {
			return nil
		}
		f, err := s.describe(p, d)
		if err != nil {
			return err
		}
		files = append(files, f)
		return nil
	})
	if err != nil {
		return RescanResult{}, fmt.Errorf("walk %s: %w", s.root, err)
	}

	if err := s.repo.Upsert(ctx, files); err != nil {
		return RescanResult{}, fmt.Errorf("upsert: %w", err)
	}
	keep := make([]string, 0, len(files))
	for _, f := range files {
		keep = append(keep, f.Path)
	}
	removed, err := s.repo.DeleteMissing(ctx, keep)
	if err != nil {
		return RescanResult{}, fmt.Errorf("delete missing: %w", err)
	}

	s.logger.Infow("Catalog rescanned", "root", s.root, "indexed", len(files), "removed", removed)
	return RescanResult{Indexed: len(files), Removed: removed}, nil
}

// isSidecar — файл хэша, чей контейнер лежит рядом с каталогом hash/.
// Прочие файлы в каталогах с именем hash попадают в каталог как обычные.
func (s *CatalogService) isSidecar(p string) bool {
	container, ok := decryptor.SidecarContainer(p)
	if !ok {
		return false
	}
	if rel, err := filepath.Rel(s.root, container); err != nil || strings.HasPrefix(rel, "..") {
		return false
	}
	info, err := os.Stat(container)
	return err == nil && info.Mode().IsRegular()
}

func (s *CatalogService) describe(p string, d fs.DirEntry) (model.File, error) {
	info, err := d.Info()
	if err != nil {
		return model.File{}, err
	}
	rel, err := filepath.Rel(s.root, p)
	if err != nil {
		return model.File{}, err
	}
	f := model.File{
		Path:      filepath.ToSlash(rel),
		Type:      ClassifyFile(d.Name()),
		Size:      info.Size(),
		UpdatedAt: info.ModTime().UTC(),
	}
	if f.Type == model.FileTypeEncrypted {
		f.SHA256 = s.checksum(p)
	}
	if f.UpdatedAt.IsZero() {
		f.UpdatedAt = time.Now().UTC()
	}
	return f, nil
}

// checksum берёт хэш из hash/<name>.hash, а при его отсутствии считает по содержимому.
func (s *CatalogService) checksum(p string) string {
	sidecar := decryptor.SidecarPath(p)
	if b, err := os.ReadFile(sidecar); err == nil {
		sum, perr := decryptor.ParseSidecar(string(b))
		if perr == nil {
			return sum
		}
		s.logger.Warnw("Catalog: ignoring bad hash sidecar", "file", sidecar, "error", perr)
	} else if !errors.Is(err, fs.ErrNotExist) {
		s.logger.Warnw("Catalog: failed to read hash sidecar", "file", sidecar, "error", err)
	}

	b, err := os.ReadFile(p)
	if err != nil {
		s.logger.Warnw("Catalog: failed to hash file", "file", p, "error", err)
		return ""
	}
	return decryptor.Checksum(b)
}

// Get возвращает запись каталога по пути относительно каталога ресурсов.
func (s *CatalogService) Get(ctx context.Context, p string) (*model.File, error) {
	f, err := s.repo.GetByPath(ctx, p)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%s: %w", p, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// List возвращает текущий каталог.
func (s *CatalogService) List(ctx context.Context) ([]model.File, error) {
	return s.repo.List(ctx)
}
