package handlers

import (
	"BinViewer/internal/config"
	"BinViewer/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ResourcesPrefix — URL-префикс, под которым раздаются файлы каталога.
const ResourcesPrefix = "/resources/"

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	catalog Catalog,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithLogging)

	fileHandler := NewFileHandler(catalog, logger, config)

	// API отдаём сжатым, сами файлы — как есть
	r.Group(func(r chi.Router) {
		r.Use(middleware.WithGzip)
		r.Get("/api/files", fileHandler.List)
		r.Post("/api/files/rescan", fileHandler.Rescan)
	})

	r.Get(ResourcesPrefix+"*", fileHandler.Resource)

	return &Handler{Router: r}
}
