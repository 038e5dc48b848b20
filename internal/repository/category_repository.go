package repository

import (
	"Boxtrack/internal/models"
	"errors"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	GenericRepository[models.Category]
	FindByNameFold(name string) (*models.Category, error)
	RenameCascade(category *models.Category, newName string) (int64, error)
	HardDelete(id uint) error
}

type CategoryRepositoryImpl[T models.Category] struct {
	GenericRepository[models.Category]
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &CategoryRepositoryImpl[models.Category]{
		GenericRepository: NewGenericRepository[models.Category](db),
		db:                db,
	}
}

// FindByNameFold matches the name case-insensitively, which is how the
// registry enforces uniqueness at insert and rename time.
func (r *CategoryRepositoryImpl[T]) FindByNameFold(name string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// RenameCascade updates the category row and the denormalized category text
// on every referencing box in one transaction. This is the only rename path,
// so the snapshot on boxes cannot drift from the registry.
func (r *CategoryRepositoryImpl[T]) RenameCascade(category *models.Category, newName string) (int64, error) {
	var updated int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Category{}).
			Where("id = ?", category.ID).
			Update("name", newName).Error
		if err != nil {
			return err
		}
		result := tx.Model(&models.Box{}).
			Where("category_id = ?", category.ID).
			Update("category", newName)
		if result.Error != nil {
			return result.Error
		}
		updated = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	category.Name = newName
	return updated, nil
}

func (r *CategoryRepositoryImpl[T]) HardDelete(id uint) error {
	return r.db.Unscoped().Delete(&models.Category{}, id).Error
}
