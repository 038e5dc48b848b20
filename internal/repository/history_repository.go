package repository

import (
	"Boxtrack/internal/models"

	"gorm.io/gorm"
)

type HistoryRepository interface {
	GenericRepository[models.BoxHistory]
	FindByBoxID(boxID uint) ([]models.BoxHistory, error)
}

type HistoryRepositoryImpl[T models.BoxHistory] struct {
	GenericRepository[models.BoxHistory]
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &HistoryRepositoryImpl[models.BoxHistory]{
		GenericRepository: NewGenericRepository[models.BoxHistory](db),
		db:                db,
	}
}

func (r *HistoryRepositoryImpl[T]) FindByBoxID(boxID uint) ([]models.BoxHistory, error) {
	var entries []models.BoxHistory
	err := r.db.Where("box_id = ?", boxID).
		Order("timestamp DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
