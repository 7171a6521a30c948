package viewer

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrUnknownResource is returned for URLs that were never created or were already revoked.
var ErrUnknownResource = errors.New("unknown or revoked resource")

const resourceScheme = "blob:"

// Resource — байты в памяти, доступные по временному URL.
type Resource struct {
	Data     []byte
	FileName string
}

// ResourceStore хранит временные ресурсы до явного Revoke.
type ResourceStore struct {
	mu        sync.Mutex
	resources map[string]Resource
}

// NewResourceStore создаёт пустое хранилище.
func NewResourceStore() *ResourceStore {
	return &ResourceStore{resources: map[string]Resource{}}
}

// Create регистрирует data под новым URL вида blob:<uuid>.
func (rs *ResourceStore) Create(data []byte, fileName string) string {
	url := resourceScheme + uuid.NewString()
	rs.mu.Lock()
	rs.resources[url] = Resource{Data: data, FileName: fileName}
	rs.mu.Unlock()
	return url
}

// Get возвращает ресурс по URL.
func (rs *ResourceStore) Get(url string) (Resource, error) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	r, ok := rs.resources[url]
	if !ok {
		return Resource{}, ErrUnknownResource
	}
	return r, nil
}

// Revoke освобождает ресурс; после этого URL недействителен. Повторный вызов безопасен.
func (rs *ResourceStore) Revoke(url string) {
	rs.mu.Lock()
	delete(rs.resources, url)
	rs.mu.Unlock()
}

// Len возвращает число живых ресурсов.
func (rs *ResourceStore) Len() int {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return len(rs.resources)
}
