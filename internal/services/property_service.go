package services

import (
	"Boxtrack/internal/models"
	"Boxtrack/internal/repository"
	"errors"

	"gorm.io/gorm"
)

type PropertyService interface {
	CreateProperty(property *models.Property) error
	GetPropertyByID(id uint) (*models.Property, error)
	GetProperties(propertyType string) ([]models.Property, error)
	UpdateProperty(id uint, property *models.Property) (*models.Property, error)
	DeleteProperty(id uint) error
}

func NewPropertyService(propertyRepo repository.PropertyRepository) PropertyService {
	return &propertyServiceImpl{propertyRepo: propertyRepo}
}

type propertyServiceImpl struct {
	propertyRepo repository.PropertyRepository
}

func (s *propertyServiceImpl) CreateProperty(property *models.Property) error {
	return s.propertyRepo.Create(property)
}

func (s *propertyServiceImpl) GetPropertyByID(id uint) (*models.Property, error) {
	property, err := s.propertyRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return property, nil
}

func (s *propertyServiceImpl) GetProperties(propertyType string) ([]models.Property, error) {
	if propertyType != "" {
		return s.propertyRepo.FindByType(propertyType)
	}
	return s.propertyRepo.FindAll()
}

func (s *propertyServiceImpl) UpdateProperty(id uint, property *models.Property) (*models.Property, error) {
	existing, err := s.GetPropertyByID(id)
	if err != nil {
		return nil, err
	}
	existing.PropertyType = property.PropertyType
	existing.Address = property.Address
	existing.Price = property.Price
	existing.SqFt = property.SqFt
	existing.CatFriendly = property.CatFriendly
	existing.NumBedrooms = property.NumBedrooms
	existing.AirConditioning = property.AirConditioning
	existing.ParkingType = property.ParkingType
	existing.CommuteMorning = property.CommuteMorning
	existing.CommuteMidday = property.CommuteMidday
	existing.CommuteEvening = property.CommuteEvening
	if err := s.propertyRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *propertyServiceImpl) DeleteProperty(id uint) error {
	if _, err := s.GetPropertyByID(id); err != nil {
		return err
	}
	return s.propertyRepo.Delete(id)
}
