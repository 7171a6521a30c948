package model

import catalog "BinViewer/internal/model"

// Типы файлов в списке — те же, что пишет сервер каталога.
// Всё, что не encrypted и не image, считается прочим.
const (
	TypeEncrypted = catalog.FileTypeEncrypted
	TypeImage     = catalog.FileTypeImage
	TypeOther     = catalog.FileTypeOther
)

// FileEntry — элемент списка файлов, как его отдаёт сервер.
type FileEntry struct {
	Path   string `json:"path"`
	Type   string `json:"type"`
	Size   int64  `json:"size"`
	SHA256 string `json:"sha256,omitempty"`
}
