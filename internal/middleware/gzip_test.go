package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithGzip_PassThroughWithoutAcceptEncoding(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[{"path":"/resources/q1.bin"}]`))
	})

	rr := httptest.NewRecorder()
	WithGzip(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/files", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "Accept-Encoding", rr.Header().Get("Vary"))
	assert.Equal(t, `[{"path":"/resources/q1.bin"}]`, rr.Body.String())
}

func TestWithGzip_CompressesAndDropsContentLength(t *testing.T) {
	payload := strings.Repeat(`{"path":"/resources/q1.bin","type":"encrypted"},`, 50)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// длина несжатого тела не должна уйти клиенту
		w.Header().Set("Content-Length", "5")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(payload))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/files", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	rr := httptest.NewRecorder()
	WithGzip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "Accept-Encoding", rr.Header().Get("Vary"))
	assert.Empty(t, rr.Header().Get("Content-Length"))

	gr, err := gzip.NewReader(bytes.NewReader(rr.Body.Bytes()))
	require.NoError(t, err)
	defer gr.Close()
	data, err := io.ReadAll(gr)
	require.NoError(t, err)
	assert.Equal(t, payload, string(data))
	assert.Less(t, rr.Body.Len(), len(payload))
}
