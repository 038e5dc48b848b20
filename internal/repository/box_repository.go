package repository

import (
	"Boxtrack/internal/models"
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"
)

// ErrBoxNumberConflict is returned when the uniqueness re-check inside the
// create transaction finds the number already held by a non-deleted box.
var ErrBoxNumberConflict = errors.New("box number already in use")

// BoxFilter narrows box queries. Category accepts either a numeric id or a
// category name. Expression carries a pre-parsed WHERE fragment with its
// arguments (see services.ParseFilter).
type BoxFilter struct {
	BoxNumber      int
	Priority       string
	Category       string
	BoxSize        string
	Search         string
	IncludeDeleted bool
	Expression     string
	ExpressionArgs []interface{}
	Limit          int
	Offset         int
}

type BoxRepository interface {
	GenericRepository[models.Box]
	FindActive(id uint) (*models.Box, error)
	FindAny(id uint) (*models.Box, error)
	FindByNumber(number int) (*models.Box, error)
	UsedNumbers() ([]int, error)
	Search(filter BoxFilter) ([]models.Box, error)
	CountByCategory(categoryID uint) (int64, error)
	FindRecent(limit int) ([]models.Box, error)
	FindDeleted() ([]models.Box, error)
	CreateWithHistory(box *models.Box, entry *models.BoxHistory) error
	UpdateWithHistory(box *models.Box, entry *models.BoxHistory) error
	SoftDeleteWithHistory(box *models.Box, entry *models.BoxHistory) error
	HardDelete(id uint) error
	PurgeDeleted() (int64, error)
}

type BoxRepositoryImpl[T models.Box] struct {
	GenericRepository[models.Box]
	db *gorm.DB
}

func NewBoxRepository(db *gorm.DB) BoxRepository {
	return &BoxRepositoryImpl[models.Box]{
		GenericRepository: NewGenericRepository[models.Box](db),
		db:                db,
	}
}

func (r *BoxRepositoryImpl[T]) FindActive(id uint) (*models.Box, error) {
	var box models.Box
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&box).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &box, nil
}

// FindAny looks the box up regardless of its deletion flag.
func (r *BoxRepositoryImpl[T]) FindAny(id uint) (*models.Box, error) {
	var box models.Box
	err := r.db.First(&box, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &box, nil
}

func (r *BoxRepositoryImpl[T]) FindByNumber(number int) (*models.Box, error) {
	var box models.Box
	err := r.db.Where("box_number = ? AND is_deleted = ?", number, false).First(&box).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &box, nil
}

// UsedNumbers returns every number with a row still present, soft-deleted
// included: a soft-deleted box keeps its number reserved until the row is
// hard-deleted or purged.
func (r *BoxRepositoryImpl[T]) UsedNumbers() ([]int, error) {
	var numbers []int
	err := r.db.Model(&models.Box{}).
		Pluck("box_number", &numbers).Error
	if err != nil {
		return nil, err
	}
	return numbers, nil
}

func (r *BoxRepositoryImpl[T]) Search(filter BoxFilter) ([]models.Box, error) {
	query := r.db.Model(&models.Box{})
	if !filter.IncludeDeleted {
		query = query.Where("is_deleted = ?", false)
	}
	if filter.BoxNumber > 0 {
		query = query.Where("box_number = ?", filter.BoxNumber)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.Category != "" {
		if id, err := strconv.Atoi(filter.Category); err == nil {
			query = query.Where("category_id = ?", id)
		} else {
			query = query.Where("category = ?", filter.Category)
		}
	}
	if filter.BoxSize != "" {
		query = query.Where("box_size = ?", filter.BoxSize)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("description LIKE ? OR notes LIKE ?", like, like)
	}
	if filter.Expression != "" {
		query = query.Where(filter.Expression, filter.ExpressionArgs...)
	}
	query = query.Order("box_number")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}
	var boxes []models.Box
	if err := query.Find(&boxes).Error; err != nil {
		return nil, err
	}
	return boxes, nil
}

func (r *BoxRepositoryImpl[T]) CountByCategory(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Box{}).
		Where("category_id = ? AND is_deleted = ?", categoryID, false).
		Count(&count).Error
	return count, err
}

func (r *BoxRepositoryImpl[T]) FindRecent(limit int) ([]models.Box, error) {
	var boxes []models.Box
	err := r.db.Where("is_deleted = ?", false).
		Order("created_at DESC").
		Limit(limit).
		Find(&boxes).Error
	if err != nil {
		return nil, err
	}
	return boxes, nil
}

func (r *BoxRepositoryImpl[T]) FindDeleted() ([]models.Box, error) {
	var boxes []models.Box
	err := r.db.Where("is_deleted = ?", true).Find(&boxes).Error
	if err != nil {
		return nil, err
	}
	return boxes, nil
}

// CreateWithHistory inserts the box and its "create" history entry in one
// transaction. The number uniqueness check runs inside the transaction so a
// concurrent allocation of the same number surfaces as ErrBoxNumberConflict.
func (r *BoxRepositoryImpl[T]) CreateWithHistory(box *models.Box, entry *models.BoxHistory) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.Box{}).
			Where("box_number = ? AND is_deleted = ?", box.BoxNumber, false).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrBoxNumberConflict
		}
		if err := tx.Create(box).Error; err != nil {
			return err
		}
		entry.BoxID = box.ID
		return tx.Create(entry).Error
	})
}

// UpdateWithHistory saves the box and, when entry is non-nil, appends the
// history record in the same transaction.
func (r *BoxRepositoryImpl[T]) UpdateWithHistory(box *models.Box, entry *models.BoxHistory) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(box).Error; err != nil {
			return err
		}
		if entry == nil {
			return nil
		}
		entry.BoxID = box.ID
		return tx.Create(entry).Error
	})
}

func (r *BoxRepositoryImpl[T]) SoftDeleteWithHistory(box *models.Box, entry *models.BoxHistory) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Box{}).
			Where("id = ?", box.ID).
			Updates(map[string]interface{}{
				"is_deleted":    true,
				"last_modified": time.Now(),
			}).Error
		if err != nil {
			return err
		}
		entry.BoxID = box.ID
		return tx.Create(entry).Error
	})
}

// HardDelete removes the box row and its history. The history delete runs
// first so the logical ownership holds without a database-level cascade.
func (r *BoxRepositoryImpl[T]) HardDelete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("box_id = ?", id).Delete(&models.BoxHistory{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Box{}, id).Error
	})
}

// PurgeDeleted hard-removes every soft-deleted box and its history, freeing
// the box numbers for reuse. Returns the number of boxes removed.
func (r *BoxRepositoryImpl[T]) PurgeDeleted() (int64, error) {
	var purged int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var ids []uint
		err := tx.Model(&models.Box{}).
			Where("is_deleted = ?", true).
			Pluck("id", &ids).Error
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := tx.Where("box_id IN ?", ids).Delete(&models.BoxHistory{}).Error; err != nil {
			return err
		}
		result := tx.Where("is_deleted = ?", true).Delete(&models.Box{})
		if result.Error != nil {
			return result.Error
		}
		purged = result.RowsAffected
		return nil
	})
	return purged, err
}
