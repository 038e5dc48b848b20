package services

import "errors"

// Domain errors are distinguished from storage errors so the handlers can map
// validation failures to 4xx responses while everything else stays a generic
// 500 with the detail going to the log.
var (
	ErrBoxNotFound       = errors.New("box not found")
	ErrBoxNumberTaken    = errors.New("box number is already in use")
	ErrInvalidCategory   = errors.New("invalid category")
	ErrEmptyCategoryName = errors.New("category name cannot be empty")
	ErrDuplicateCategory = errors.New("category already exists")
	ErrCategoryInUse     = errors.New("category is in use and cannot be deleted")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrNoBoxesToExport   = errors.New("no boxes found matching the criteria")
	ErrPropertyNotFound  = errors.New("property not found")
	ErrBackupNotFound    = errors.New("backup not found")
	ErrInvalidBackupName = errors.New("invalid backup filename")
	ErrDatabaseMissing   = errors.New("database file does not exist")
)
