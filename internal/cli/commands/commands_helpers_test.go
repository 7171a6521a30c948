package commands

import (
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"BinViewer/internal/config"
	"BinViewer/internal/handlers"
	"BinViewer/internal/repo"
	"BinViewer/internal/service"

	"go.uber.org/zap"
)

// перехват stdout на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}

// withStdin подменяет ввод CLI
func withStdin(t *testing.T, input string) {
	t.Helper()
	old := In
	In = strings.NewReader(input)
	t.Cleanup(func() { In = old })
}

// newViewerServer поднимает настоящий сервер каталога над временным каталогом ресурсов.
// Возвращает конфиг клиента, каталог ресурсов и функцию пересканирования.
func newViewerServer(t *testing.T) (*config.Config, string, func()) {
	t.Helper()
	root := t.TempDir()
	db, err := repo.InitDB(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	logger := zap.NewNop().Sugar()
	catalog := service.NewCatalogService(repo.NewFileRepository(db), root, logger)
	h := handlers.NewHandler(catalog, logger, &config.Config{})
	ts := httptest.NewServer(h.Router)
	t.Cleanup(ts.Close)

	rescan := func() {
		t.Helper()
		if _, err := catalog.Rescan(context.Background()); err != nil {
			t.Fatalf("rescan: %v", err)
		}
	}
	rescan()
	cfg := &config.Config{ServerURL: ts.URL, OutputDir: filepath.Join(t.TempDir(), "out")}
	return cfg, root, rescan
}
