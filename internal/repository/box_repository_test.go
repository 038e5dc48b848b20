package repository

import (
	"Boxtrack/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB() *gorm.DB {
	db, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	err := db.AutoMigrate(&models.Box{}, &models.Category{}, &models.BoxHistory{})
	if err != nil {
		return nil
	}
	return db
}

func testBox(number int) *models.Box {
	now := time.Now()
	return &models.Box{
		BoxNumber:    number,
		Priority:     "Priority 1",
		CategoryID:   1,
		Category:     "Kitchen",
		BoxSize:      "Medium",
		Description:  "plates and glasses",
		CreatedAt:    now,
		LastModified: now,
	}
}

func testEntry(action string) *models.BoxHistory {
	return &models.BoxHistory{Action: action, Changes: "test", Editor: "tester", Timestamp: time.Now()}
}

func TestBoxRepository_CreateWithHistory(t *testing.T) {
	db := setupTestDB()
	repo := NewBoxRepository(db)

	err := repo.CreateWithHistory(testBox(1), testEntry("create"))
	assert.NoError(t, err)

	var historyCount int64
	db.Model(&models.BoxHistory{}).Count(&historyCount)
	assert.Equal(t, int64(1), historyCount)
}

func TestBoxRepository_CreateWithHistory_NumberConflict(t *testing.T) {
	db := setupTestDB()
	repo := NewBoxRepository(db)

	assert.NoError(t, repo.CreateWithHistory(testBox(1), testEntry("create")))

	err := repo.CreateWithHistory(testBox(1), testEntry("create"))
	assert.ErrorIs(t, err, ErrBoxNumberConflict)

	// nothing from the failed transaction is left behind
	var boxCount, historyCount int64
	db.Model(&models.Box{}).Count(&boxCount)
	db.Model(&models.BoxHistory{}).Count(&historyCount)
	assert.Equal(t, int64(1), boxCount)
	assert.Equal(t, int64(1), historyCount)
}

func TestBoxRepository_CreateWithHistory_ReusesHardDeletedNumber(t *testing.T) {
	db := setupTestDB()
	repo := NewBoxRepository(db)

	box := testBox(1)
	assert.NoError(t, repo.CreateWithHistory(box, testEntry("create")))
	assert.NoError(t, repo.HardDelete(box.ID))

	err := repo.CreateWithHistory(testBox(1), testEntry("create"))
	assert.NoError(t, err)
}

func TestBoxRepository_UsedNumbers_KeepsSoftDeletedReserved(t *testing.T) {
	db := setupTestDB()
	repo := NewBoxRepository(db)

	first := testBox(1)
	assert.NoError(t, repo.CreateWithHistory(first, testEntry("create")))
	assert.NoError(t, repo.CreateWithHistory(testBox(2), testEntry("create")))
	assert.NoError(t, repo.SoftDeleteWithHistory(first, testEntry("delete")))

	// the soft-deleted row still holds its number against the allocator
	used, err := repo.UsedNumbers()
	assert.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2}, used)

	_, err = repo.PurgeDeleted()
	assert.NoError(t, err)

	used, err = repo.UsedNumbers()
	assert.NoError(t, err)
	assert.Equal(t, []int{2}, used)

	conflict := repo.CreateWithHistory(testBox(2), testEntry("create"))
	assert.ErrorIs(t, conflict, ErrBoxNumberConflict)
}

func TestBoxRepository_SoftDeleteWithHistory(t *testing.T) {
	db := setupTestDB()
	repo := NewBoxRepository(db)

	box := testBox(1)
	assert.NoError(t, repo.CreateWithHistory(box, testEntry("create")))
	assert.NoError(t, repo.SoftDeleteWithHistory(box, testEntry("delete")))

	active, err := repo.FindActive(box.ID)
	assert.NoError(t, err)
	assert.Nil(t, active)

	any, err := repo.FindAny(box.ID)
	assert.NoError(t, err)
	assert.NotNil(t, any)
	assert.True(t, any.IsDeleted)
}

func TestBoxRepository_PurgeDeleted(t *testing.T) {
	db := setupTestDB()
	repo := NewBoxRepository(db)

	first := testBox(1)
	second := testBox(2)
	assert.NoError(t, repo.CreateWithHistory(first, testEntry("create")))
	assert.NoError(t, repo.CreateWithHistory(second, testEntry("create")))
	assert.NoError(t, repo.SoftDeleteWithHistory(first, testEntry("delete")))

	purged, err := repo.PurgeDeleted()
	assert.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	var boxCount int64
	db.Model(&models.Box{}).Count(&boxCount)
	assert.Equal(t, int64(1), boxCount)

	var orphaned int64
	db.Model(&models.BoxHistory{}).Where("box_id = ?", first.ID).Count(&orphaned)
	assert.Equal(t, int64(0), orphaned)
}

func TestBoxRepository_Search(t *testing.T) {
	db := setupTestDB()
	repo := NewBoxRepository(db)

	kitchen := testBox(1)
	garage := testBox(2)
	garage.Category = "Garage"
	garage.CategoryID = 2
	garage.Priority = "Store"
	garage.Description = "power tools"
	assert.NoError(t, repo.CreateWithHistory(kitchen, testEntry("create")))
	assert.NoError(t, repo.CreateWithHistory(garage, testEntry("create")))

	byPriority, err := repo.Search(BoxFilter{Priority: "Store"})
	assert.NoError(t, err)
	assert.Len(t, byPriority, 1)
	assert.Equal(t, 2, byPriority[0].BoxNumber)

	byCategoryName, err := repo.Search(BoxFilter{Category: "Kitchen"})
	assert.NoError(t, err)
	assert.Len(t, byCategoryName, 1)

	byCategoryID, err := repo.Search(BoxFilter{Category: "2"})
	assert.NoError(t, err)
	assert.Len(t, byCategoryID, 1)
	assert.Equal(t, "Garage", byCategoryID[0].Category)

	bySearch, err := repo.Search(BoxFilter{Search: "tools"})
	assert.NoError(t, err)
	assert.Len(t, bySearch, 1)

	all, err := repo.Search(BoxFilter{})
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, 1, all[0].BoxNumber)
}

func TestBoxRepository_Search_Expression(t *testing.T) {
	db := setupTestDB()
	repo := NewBoxRepository(db)

	assert.NoError(t, repo.CreateWithHistory(testBox(1), testEntry("create")))
	garage := testBox(2)
	garage.Priority = "Store"
	assert.NoError(t, repo.CreateWithHistory(garage, testEntry("create")))

	boxes, err := repo.Search(BoxFilter{
		Expression:     "priority = ?",
		ExpressionArgs: []interface{}{"Store"},
	})
	assert.NoError(t, err)
	assert.Len(t, boxes, 1)
	assert.Equal(t, 2, boxes[0].BoxNumber)
}

func TestBoxRepository_CountByCategory(t *testing.T) {
	db := setupTestDB()
	repo := NewBoxRepository(db)

	first := testBox(1)
	assert.NoError(t, repo.CreateWithHistory(first, testEntry("create")))
	assert.NoError(t, repo.CreateWithHistory(testBox(2), testEntry("create")))

	count, err := repo.CountByCategory(1)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)

	assert.NoError(t, repo.SoftDeleteWithHistory(first, testEntry("delete")))
	count, err = repo.CountByCategory(1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
