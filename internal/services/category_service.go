package services

import (
	"Boxtrack/internal/dto"
	"Boxtrack/internal/mapper"
	"Boxtrack/internal/models"
	"Boxtrack/internal/repository"
	"strings"
)

type CategoryService interface {
	CreateCategory(name string) (*models.Category, error)
	GetCategories() ([]models.Category, error)
	GetCategoriesWithUsage() ([]dto.CategoryGetDTO, error)
	RenameCategory(id uint, newName string) (int64, error)
	DeleteCategory(id uint) error
}

func NewCategoryService(categoryRepo repository.CategoryRepository, boxRepo repository.BoxRepository) CategoryService {
	return &categoryServiceImpl{categoryRepo: categoryRepo, boxRepo: boxRepo}
}

type categoryServiceImpl struct {
	categoryRepo repository.CategoryRepository
	boxRepo      repository.BoxRepository
}

func (s *categoryServiceImpl) CreateCategory(name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyCategoryName
	}
	existing, err := s.categoryRepo.FindByNameFold(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateCategory
	}
	category := &models.Category{Name: name, IsActive: true}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryServiceImpl) GetCategories() ([]models.Category, error) {
	return s.categoryRepo.FindAll()
}

func (s *categoryServiceImpl) GetCategoriesWithUsage() ([]dto.CategoryGetDTO, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, err
	}
	usages := make([]dto.CategoryGetDTO, 0, len(categories))
	for i := range categories {
		count, err := s.boxRepo.CountByCategory(categories[i].ID)
		if err != nil {
			return nil, err
		}
		usages = append(usages, mapper.ToCategoryGetDTO(&categories[i], count))
	}
	return usages, nil
}

// RenameCategory validates the new name and cascades it to the denormalized
// category text on every referencing box. Returns the number of boxes updated.
func (s *categoryServiceImpl) RenameCategory(id uint, newName string) (int64, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return 0, ErrEmptyCategoryName
	}
	category, err := s.categoryRepo.FindByID(id)
	if err != nil || category == nil || category.ID == 0 {
		return 0, ErrCategoryNotFound
	}
	existing, err := s.categoryRepo.FindByNameFold(newName)
	if err != nil {
		return 0, err
	}
	if existing != nil && existing.ID != id {
		return 0, ErrDuplicateCategory
	}
	return s.categoryRepo.RenameCascade(category, newName)
}

// DeleteCategory hard-deletes a category but only when no non-deleted box
// references it.
func (s *categoryServiceImpl) DeleteCategory(id uint) error {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil || category == nil || category.ID == 0 {
		return ErrCategoryNotFound
	}
	count, err := s.boxRepo.CountByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}
	return s.categoryRepo.HardDelete(id)
}
