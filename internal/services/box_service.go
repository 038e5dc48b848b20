package services

import (
	"Boxtrack/internal/models"
	"Boxtrack/internal/repository"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

type BoxService interface {
	CreateBox(priority string, categoryID uint, boxSize, description, notes, editor string, boxNumber *int) (*models.Box, error)
	GetBoxByID(id uint) (*models.Box, error)
	UpdateBox(id uint, priority string, categoryID uint, boxSize, description, notes, editor string) (*models.Box, error)
	DeleteBox(id uint, editor string) error
	HardDeleteBox(id uint) error
	PurgeDeleted() (int64, error)
	GetBoxes(filter repository.BoxFilter) ([]models.Box, error)
	GetBoxHistory(boxID uint) ([]models.BoxHistory, error)
	GetRecentBoxes(limit int) ([]models.Box, error)
	NextBoxNumber() (int, error)
}

func NewBoxService(boxRepo repository.BoxRepository, categoryRepo repository.CategoryRepository, historyRepo repository.HistoryRepository) BoxService {
	return &boxServiceImpl{boxRepo: boxRepo, categoryRepo: categoryRepo, historyRepo: historyRepo}
}

type boxServiceImpl struct {
	boxRepo      repository.BoxRepository
	categoryRepo repository.CategoryRepository
	historyRepo  repository.HistoryRepository
}

// NextBoxNumber returns the smallest positive integer whose number is not
// held by any box row, first-fit over the gaps left by hard deletes. Soft
// deletes keep their number reserved. The result is only guaranteed unique
// under a single writer; the create transaction re-checks and reports
// ErrBoxNumberTaken on a collision.
func (s *boxServiceImpl) NextBoxNumber() (int, error) {
	used, err := s.boxRepo.UsedNumbers()
	if err != nil {
		return 0, err
	}
	sort.Ints(used)
	next := 1
	for _, n := range used {
		if n == next {
			next++
		} else if n > next {
			break
		}
	}
	return next, nil
}

func (s *boxServiceImpl) CreateBox(priority string, categoryID uint, boxSize, description, notes, editor string, boxNumber *int) (*models.Box, error) {
	category, err := s.categoryRepo.FindByID(categoryID)
	if err != nil || category == nil || !category.IsActive {
		return nil, ErrInvalidCategory
	}

	number := 0
	if boxNumber != nil {
		number = *boxNumber
	}
	if number <= 0 {
		number, err = s.NextBoxNumber()
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	box := &models.Box{
		BoxNumber:    number,
		Priority:     priority,
		CategoryID:   category.ID,
		Category:     category.Name,
		BoxSize:      boxSize,
		Description:  description,
		Notes:        notes,
		CreatedAt:    now,
		LastModified: now,
	}
	entry := &models.BoxHistory{
		Action:    "create",
		Changes:   fmt.Sprintf("Created box #%d", number),
		Editor:    editor,
		Timestamp: now,
	}
	if err := s.boxRepo.CreateWithHistory(box, entry); err != nil {
		if errors.Is(err, repository.ErrBoxNumberConflict) {
			return nil, ErrBoxNumberTaken
		}
		return nil, err
	}
	return box, nil
}

func (s *boxServiceImpl) GetBoxByID(id uint) (*models.Box, error) {
	box, err := s.boxRepo.FindActive(id)
	if err != nil {
		return nil, err
	}
	if box == nil {
		return nil, ErrBoxNotFound
	}
	return box, nil
}

// UpdateBox writes the new values and appends an "update" history entry only
// when at least one tracked field changed from the stored value.
func (s *boxServiceImpl) UpdateBox(id uint, priority string, categoryID uint, boxSize, description, notes, editor string) (*models.Box, error) {
	box, err := s.GetBoxByID(id)
	if err != nil {
		return nil, err
	}
	category, err := s.categoryRepo.FindByID(categoryID)
	if err != nil || category == nil || !category.IsActive {
		return nil, ErrInvalidCategory
	}

	var changes []string
	if box.Priority != priority {
		changes = append(changes, fmt.Sprintf("Priority: %s -> %s", box.Priority, priority))
	}
	if box.CategoryID != category.ID {
		changes = append(changes, fmt.Sprintf("Category: %s -> %s", box.Category, category.Name))
	}
	if box.BoxSize != boxSize {
		changes = append(changes, fmt.Sprintf("Size: %s -> %s", box.BoxSize, boxSize))
	}
	if box.Description != description {
		changes = append(changes, "Description updated")
	}
	if box.Notes != notes {
		changes = append(changes, "Notes updated")
	}

	now := time.Now()
	box.Priority = priority
	box.CategoryID = category.ID
	box.Category = category.Name
	box.BoxSize = boxSize
	box.Description = description
	box.Notes = notes
	box.LastModified = now

	var entry *models.BoxHistory
	if len(changes) > 0 {
		entry = &models.BoxHistory{
			Action:    "update",
			Changes:   strings.Join(changes, "\n"),
			Editor:    editor,
			Timestamp: now,
		}
	}
	if err := s.boxRepo.UpdateWithHistory(box, entry); err != nil {
		return nil, err
	}
	return box, nil
}

// DeleteBox soft-deletes: the row and its history stay for auditing and the
// number stays reserved until a hard delete or purge removes the row.
func (s *boxServiceImpl) DeleteBox(id uint, editor string) error {
	box, err := s.GetBoxByID(id)
	if err != nil {
		return err
	}
	entry := &models.BoxHistory{
		Action:    "delete",
		Changes:   fmt.Sprintf("Deleted box #%d", box.BoxNumber),
		Editor:    editor,
		Timestamp: time.Now(),
	}
	return s.boxRepo.SoftDeleteWithHistory(box, entry)
}

func (s *boxServiceImpl) HardDeleteBox(id uint) error {
	box, err := s.boxRepo.FindAny(id)
	if err != nil {
		return err
	}
	if box == nil {
		return ErrBoxNotFound
	}
	return s.boxRepo.HardDelete(id)
}

func (s *boxServiceImpl) PurgeDeleted() (int64, error) {
	return s.boxRepo.PurgeDeleted()
}

func (s *boxServiceImpl) GetBoxes(filter repository.BoxFilter) ([]models.Box, error) {
	return s.boxRepo.Search(filter)
}

func (s *boxServiceImpl) GetBoxHistory(boxID uint) ([]models.BoxHistory, error) {
	return s.historyRepo.FindByBoxID(boxID)
}

func (s *boxServiceImpl) GetRecentBoxes(limit int) ([]models.Box, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.boxRepo.FindRecent(limit)
}
