package model_test

import (
	"encoding/json"
	"testing"

	climodel "BinViewer/internal/cli/model"
	"BinViewer/internal/handlers"
	catalog "BinViewer/internal/model"
	"BinViewer/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Клиент понимает типы, которые сервер выставляет при сканировании.
func TestFileEntry_DecodesServerTypes(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"q1.bin", climodel.TypeEncrypted},
		{"cat.png", climodel.TypeImage},
		{"notes.txt", climodel.TypeOther},
	}
	for _, c := range cases {
		dto := handlers.FileDTO{Path: "/resources/" + c.name, Type: service.ClassifyFile(c.name), Size: 1}
		b, err := json.Marshal(dto)
		require.NoError(t, err)

		var e climodel.FileEntry
		require.NoError(t, json.Unmarshal(b, &e))
		assert.Equal(t, c.want, e.Type, c.name)
		assert.Equal(t, dto.Path, e.Path)
	}
	assert.Equal(t, catalog.FileTypeEncrypted, climodel.TypeEncrypted)
}
