package handlers

import (
	"BinViewer/internal/config"
	"BinViewer/internal/model"
	"BinViewer/internal/service"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Catalog — то, что хендлерам нужно от сервиса каталога.
type Catalog interface {
	List(ctx context.Context) ([]model.File, error)
	Get(ctx context.Context, path string) (*model.File, error)
	Rescan(ctx context.Context) (service.RescanResult, error)
	Root() string
}

// FileHandler отдаёт список файлов и сами файлы.
type FileHandler struct {
	Catalog Catalog
	Logger  *zap.SugaredLogger
	Config  *config.Config

	files http.Handler
}

// NewFileHandler создаёт хендлер файлов
func NewFileHandler(catalog Catalog, logger *zap.SugaredLogger, cfg *config.Config) *FileHandler {
	return &FileHandler{
		Catalog: catalog,
		Logger:  logger,
		Config:  cfg,
		files:   http.StripPrefix(ResourcesPrefix, http.FileServer(http.Dir(catalog.Root()))),
	}
}

// FileDTO — элемент списка файлов. Path — URL-путь для GET.
type FileDTO struct {
	Path      string `json:"path"`
	Type      string `json:"type"`
	Size      int64  `json:"size"`
	SHA256    string `json:"sha256,omitempty"`
	UpdatedAt string `json:"updated_at"`
}

type RescanResponse struct {
	Indexed int   `json:"indexed"`
	Removed int64 `json:"removed"`
}

// List список файлов каталога
func (h *FileHandler) List(w http.ResponseWriter, r *http.Request) {
	files, err := h.Catalog.List(r.Context())
	if err != nil {
		h.Logger.Errorw("List: catalog error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]FileDTO, 0, len(files))
	for _, f := range files {
		resp = append(resp, FileDTO{
			Path:      ResourcesPrefix + f.Path,
			Type:      f.Type,
			Size:      f.Size,
			SHA256:    f.SHA256,
			UpdatedAt: f.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}

// Rescan пересканирование каталога ресурсов
func (h *FileHandler) Rescan(w http.ResponseWriter, r *http.Request) {
	res, err := h.Catalog.Rescan(r.Context())
	if err != nil {
		h.Logger.Errorw("Rescan: catalog error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(RescanResponse{Indexed: res.Indexed, Removed: res.Removed})
}

// Resource отдаёт байты файла как есть. Отдаются только файлы из каталога:
// файлы хэшей и ещё не проиндексированные файлы дают 404.
func (h *FileHandler) Resource(w http.ResponseWriter, r *http.Request) {
	rel := strings.TrimPrefix(r.URL.Path, ResourcesPrefix)
	if _, err := h.Catalog.Get(r.Context(), rel); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		h.Logger.Errorw("Resource: catalog error", "path", rel, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	h.files.ServeHTTP(w, r)
}
