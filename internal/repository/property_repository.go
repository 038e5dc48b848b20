package repository

import (
	"Boxtrack/internal/models"

	"gorm.io/gorm"
)

type PropertyRepository interface {
	GenericRepository[models.Property]
	FindByType(propertyType string) ([]models.Property, error)
}

type PropertyRepositoryImpl[T models.Property] struct {
	GenericRepository[models.Property]
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &PropertyRepositoryImpl[models.Property]{
		GenericRepository: NewGenericRepository[models.Property](db),
		db:                db,
	}
}

func (r *PropertyRepositoryImpl[T]) FindByType(propertyType string) ([]models.Property, error) {
	var properties []models.Property
	err := r.db.Where("property_type = ?", propertyType).Find(&properties).Error
	if err != nil {
		return nil, err
	}
	return properties, nil
}
