package api

import (
	"BinViewer/internal/cli/model"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// FilesEndpoint — путь списка файлов на сервере.
const FilesEndpoint = "/api/files"

// Get выполняет простой GET без заголовков и авторизации.
func Get(ctx context.Context, url string) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, fmt.Errorf("read body: %w", err)
	}
	return resp, body, nil
}

// Fetch возвращает тело ответа; любой статус кроме 200 — ошибка.
func Fetch(ctx context.Context, url string) ([]byte, error) {
	resp, body, err := Get(ctx, url)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: server status %d: %s", url, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}

// GetJSON выполняет GET и декодирует JSON-ответ в out.
func GetJSON(ctx context.Context, url string, out any) error {
	body, err := Fetch(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

// ResolveURL склеивает адрес сервера и путь из списка файлов.
// Путь в списке не экранирован: "#", "?" и "%" в имени файла экранируются здесь.
// Абсолютные URL возвращаются как есть.
func ResolveURL(baseURL, path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	u := url.URL{Path: "/" + strings.TrimLeft(path, "/")}
	return strings.TrimRight(baseURL, "/") + u.EscapedPath()
}

// ListFiles загружает список файлов с сервера.
func ListFiles(ctx context.Context, baseURL string) ([]model.FileEntry, error) {
	var files []model.FileEntry
	if err := GetJSON(ctx, ResolveURL(baseURL, FilesEndpoint), &files); err != nil {
		return nil, err
	}
	return files, nil
}

// HTTPFetcher получает байты файлов с сервера просмотрщика.
type HTTPFetcher struct {
	BaseURL string
}

// Fetch скачивает файл по пути из списка.
func (f HTTPFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	return Fetch(ctx, ResolveURL(f.BaseURL, path))
}
