package model

import "time"

// Типы файлов каталога.
const (
	FileTypeEncrypted = "encrypted"
	FileTypeImage     = "image"
	FileTypeOther     = "other"
)

// File — запись каталога: путь относительно каталога ресурсов и тип.
type File struct {
	Path      string `gorm:"primaryKey"`
	Type      string `gorm:"not null;index"`
	Size      int64  `gorm:"not null"`
	SHA256    string `gorm:"column:sha256"` // пусто, если хэш неизвестен
	UpdatedAt time.Time
}
