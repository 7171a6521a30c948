package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"BinViewer/internal/cli/model"
	"BinViewer/internal/cli/viewer"
	"BinViewer/internal/config"
	"BinViewer/internal/decryptor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewViewer_DecryptsFromServer(t *testing.T) {
	blob, err := decryptor.Encrypt([]byte("hello"), "pw", ".txt")
	require.NoError(t, err)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/files":
			_, _ = w.Write([]byte(`[{"path":"/resources/x.bin","type":"encrypted"}]`))
		case "/resources/x.bin":
			_, _ = w.Write(blob)
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	cfg := &config.Config{ServerURL: ts.URL, StrictPadding: true, OutputDir: t.TempDir()}
	files, err := LoadListing(context.Background(), cfg)
	require.NoError(t, err)
	entry, ok := files.Lookup("/resources/x.bin")
	require.True(t, ok)
	assert.Equal(t, model.TypeEncrypted, entry.Type)

	v := NewViewer(cfg, zap.NewNop().Sugar())
	s := viewer.NewSession()
	v.Open(s, entry)
	c, err := v.Decrypt(context.Background(), s, "pw")
	require.NoError(t, err)
	assert.Equal(t, "x.txt", c.FileName)

	p, err := v.Download(s, NewSink(cfg))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.OutputDir, "x.txt"), p)
}

func TestLoadListing_ServerDown(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()
	_, err := LoadListing(context.Background(), &config.Config{ServerURL: ts.URL})
	assert.ErrorContains(t, err, "load file list")
}
