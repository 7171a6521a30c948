package bootstrap

import (
	"context"
	"fmt"

	"BinViewer/internal/cli/api"
	fsrepo "BinViewer/internal/cli/repo/fs"
	"BinViewer/internal/cli/viewer"
	"BinViewer/internal/config"
	"BinViewer/internal/decryptor"

	"go.uber.org/zap"
)

// NewViewer собирает просмотрщик поверх сервера из конфига.
func NewViewer(cfg *config.Config, logger *zap.SugaredLogger) *viewer.Viewer {
	var opts []decryptor.Option
	if cfg.StrictPadding {
		opts = append(opts, decryptor.WithStrictPadding())
	}
	return viewer.NewViewer(api.HTTPFetcher{BaseURL: cfg.ServerURL}, viewer.NewResourceStore(), logger, opts...)
}

// LoadListing загружает список файлов с сервера.
func LoadListing(ctx context.Context, cfg *config.Config) (viewer.Files, error) {
	files, err := api.ListFiles(ctx, cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("load file list: %w", err)
	}
	return viewer.Files(files), nil
}

// NewSink возвращает хранилище для скачанных файлов.
func NewSink(cfg *config.Config) fsrepo.DownloadFSStore {
	return fsrepo.DownloadFSStore{Dir: cfg.OutputDir}
}
