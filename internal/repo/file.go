package repo

import (
	"BinViewer/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FileRepository — доступ к записям каталога.
type FileRepository interface {
	// Upsert вставляет или обновляет записи по пути.
	Upsert(ctx context.Context, files []model.File) error
	// List возвращает все записи, отсортированные по пути.
	List(ctx context.Context) ([]model.File, error)
	// GetByPath возвращает запись по точному пути или gorm.ErrRecordNotFound.
	GetByPath(ctx context.Context, path string) (*model.File, error)
	// DeleteMissing удаляет записи, путей которых нет в keep. Возвращает число удалённых.
	DeleteMissing(ctx context.Context, keep []string) (int64, error)
}

type fileRepo struct {
	db *gorm.DB
}

// NewFileRepository создаёт реализацию репозитория каталога.
func NewFileRepository(db *gorm.DB) FileRepository {
	return &fileRepo{db: db}
}

func (r *fileRepo) Upsert(ctx context.Context, files []model.File) error {
	if len(files) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "path"}},
		DoUpdates: clause.AssignmentColumns([]string{"type", "size", "sha256", "updated_at"}),
	}).Create(&files).Error
}

func (r *fileRepo) List(ctx context.Context) ([]model.File, error) {
	var files []model.File
	if err := r.db.WithContext(ctx).Order("path").Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

func (r *fileRepo) GetByPath(ctx context.Context, path string) (*model.File, error) {
	var f model.File
	if err := r.db.WithContext(ctx).Where("path = ?", path).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *fileRepo) DeleteMissing(ctx context.Context, keep []string) (int64, error) {
	tx := r.db.WithContext(ctx)
	if len(keep) == 0 {
		tx = tx.Where("1 = 1").Delete(&model.File{})
	} else {
		tx = tx.Where("path NOT IN ?", keep).Delete(&model.File{})
	}
	return tx.RowsAffected, tx.Error
}
