package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"BinViewer/internal/cli/model"
)

func TestFetch_PlainGET(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("method: %s", r.Method)
		}
		if r.Header.Get("Cookie") != "" || r.Header.Get("Authorization") != "" {
			t.Fatalf("no auth headers expected")
		}
		if r.URL.Path != "/resources/q1.bin" {
			t.Fatalf("path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte{1, 2, 3})
	}))
	defer ts.Close()

	b, err := Fetch(context.Background(), ts.URL+"/resources/q1.bin")
	if err != nil {
		t.Fatalf("Fetch err: %v", err)
	}
	if string(b) != string([]byte{1, 2, 3}) {
		t.Fatalf("body: %v", b)
	}
}

func TestFetch_Non200(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer ts.Close()

	_, err := Fetch(context.Background(), ts.URL+"/x")
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected 404 error, got %v", err)
	}
}

func TestFetch_ContextCanceled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Fetch(ctx, ts.URL); err == nil {
		t.Fatalf("expected error for canceled context")
	}
}

func TestListFiles_DecodesAndBadJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != FilesEndpoint {
			t.Fatalf("path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"path":"/resources/q1.bin","type":"encrypted","size":48,"sha256":"ab"},{"path":"/resources/a.png","type":"image"}]`))
	}))
	defer ts.Close()

	files, err := ListFiles(context.Background(), ts.URL+"/")
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	want := []model.FileEntry{
		{Path: "/resources/q1.bin", Type: model.TypeEncrypted, Size: 48, SHA256: "ab"},
		{Path: "/resources/a.png", Type: model.TypeImage},
	}
	if len(files) != len(want) || files[0] != want[0] || files[1] != want[1] {
		t.Fatalf("files: %#v", files)
	}

	tsBad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{"))
	}))
	defer tsBad.Close()
	if _, err := ListFiles(context.Background(), tsBad.URL); err == nil {
		t.Fatalf("bad json must fail")
	}
}

func TestResolveURL(t *testing.T) {
	cases := []struct{ base, path, want string }{
		{"http://h:1", "/resources/a.bin", "http://h:1/resources/a.bin"},
		{"http://h:1/", "resources/a.bin", "http://h:1/resources/a.bin"},
		{"http://h:1", "https://cdn/x.bin", "https://cdn/x.bin"},
		{"http://h:1", "/resources/a#1.bin", "http://h:1/resources/a%231.bin"},
		{"http://h:1", "/resources/50%off.bin", "http://h:1/resources/50%25off.bin"},
		{"http://h:1", "/resources/q?1.bin", "http://h:1/resources/q%3F1.bin"},
		{"http://h:1", "/resources/my file.bin", "http://h:1/resources/my%20file.bin"},
	}
	for _, c := range cases {
		if got := ResolveURL(c.base, c.path); got != c.want {
			t.Fatalf("ResolveURL(%q,%q)=%q want %q", c.base, c.path, got, c.want)
		}
	}
}

func TestHTTPFetcher_ResolvesAgainstBase(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.URL.Path))
	}))
	defer ts.Close()

	b, err := HTTPFetcher{BaseURL: ts.URL}.Fetch(context.Background(), "/resources/q1.bin")
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "/resources/q1.bin" {
		t.Fatalf("got %q", string(b))
	}
}

func TestHTTPFetcher_EscapesFileNames(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.URL.Path))
	}))
	defer ts.Close()

	for _, p := range []string{"/resources/a#1.bin", "/resources/50%off.bin", "/resources/q?1.bin"} {
		b, err := HTTPFetcher{BaseURL: ts.URL}.Fetch(context.Background(), p)
		if err != nil {
			t.Fatalf("fetch %q: %v", p, err)
		}
		if string(b) != p {
			t.Fatalf("server saw %q, want %q", string(b), p)
		}
	}
}
