package services

import (
	"Boxtrack/internal/config"
	"Boxtrack/internal/helpers"
	"Boxtrack/internal/models"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const backupPrefix = "database_backup_"

type BackupInfo struct {
	Name    string    `json:"name"`
	Path    string    `json:"path"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
}

type BackupService interface {
	LoadConfig() (*models.BackupConfig, error)
	SaveConfig(backupConfig *models.BackupConfig) error
	CreateBackup() (*BackupInfo, error)
	ListBackups() ([]BackupInfo, error)
	Rotate() error
	DeleteBackup(name string) error
	CheckAutoBackup() (bool, error)
	UpdateMaxBackups(maxBackups int) (*models.BackupConfig, error)
	LastBackupTime() (time.Time, bool)
}

func NewBackupService(configuration *config.Configuration, logService LogService) BackupService {
	return &backupServiceImpl{
		configFile:   configuration.Backup.ConfigFile,
		databasePath: configuration.Storage.Path,
		logService:   logService,
	}
}

type backupServiceImpl struct {
	configFile   string
	databasePath string
	logService   LogService
}

func (s *backupServiceImpl) defaultConfig() *models.BackupConfig {
	return &models.BackupConfig{
		BackupDirectory: "backups",
		MaxBackups:      20,
		DatabasePath:    s.databasePath,
		AutoBackup:      true,
		BackupInterval:  86400,
	}
}

// LoadConfig reads the JSON config from disk on every call; a missing file is
// recreated with defaults, an unreadable one falls back to defaults.
func (s *backupServiceImpl) LoadConfig() (*models.BackupConfig, error) {
	data, err := os.ReadFile(s.configFile)
	if err != nil {
		if os.IsNotExist(err) {
			backupConfig := s.defaultConfig()
			if err := s.SaveConfig(backupConfig); err != nil {
				return nil, err
			}
			return backupConfig, nil
		}
		return nil, err
	}
	var backupConfig models.BackupConfig
	if err := json.Unmarshal(data, &backupConfig); err != nil {
		s.logService.Log.WithField("file", s.configFile).
			Error("could not parse backup config, using defaults")
		return s.defaultConfig(), nil
	}
	if backupConfig.BackupDirectory == "" {
		backupConfig.BackupDirectory = "backups"
	}
	if backupConfig.DatabasePath == "" {
		backupConfig.DatabasePath = s.databasePath
	}
	return &backupConfig, nil
}

func (s *backupServiceImpl) SaveConfig(backupConfig *models.BackupConfig) error {
	data, err := json.MarshalIndent(backupConfig, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.configFile, data, 0644)
}

func (s *backupServiceImpl) LastBackupTime() (time.Time, bool) {
	backupConfig, err := s.LoadConfig()
	if err != nil || backupConfig.LastBackup == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, backupConfig.LastBackup)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// CreateBackup copies the database file to a timestamped name in the backup
// directory, records the run in the JSON config, then rotates old copies.
func (s *backupServiceImpl) CreateBackup() (*BackupInfo, error) {
	backupConfig, err := s.LoadConfig()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(backupConfig.DatabasePath); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrDatabaseMissing
		}
		return nil, err
	}
	if err := os.MkdirAll(backupConfig.BackupDirectory, 0755); err != nil {
		return nil, err
	}

	now := time.Now()
	name := fmt.Sprintf("%s%s.db", backupPrefix, now.Format("2006-01-02_15-04-05"))
	destination := filepath.Join(backupConfig.BackupDirectory, name)

	if err := helpers.CopyFile(backupConfig.DatabasePath, destination); err != nil {
		return nil, err
	}

	backupConfig.LastBackup = now.Format(time.RFC3339)
	if err := s.SaveConfig(backupConfig); err != nil {
		return nil, err
	}
	if err := s.Rotate(); err != nil {
		s.logService.Log.WithField("error", err.Error()).Error("backup rotation failed")
	}

	info, err := os.Stat(destination)
	if err != nil {
		return nil, err
	}
	s.logService.Log.WithField("backup", name).Info("backup created")
	return &BackupInfo{Name: name, Path: destination, Size: info.Size(), ModTime: info.ModTime()}, nil
}

// ListBackups returns backup files sorted by modification time, newest first.
func (s *backupServiceImpl) ListBackups() ([]BackupInfo, error) {
	backupConfig, err := s.LoadConfig()
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(backupConfig.BackupDirectory)
	if err != nil {
		if os.IsNotExist(err) {
			return []BackupInfo{}, nil
		}
		return nil, err
	}
	backups := make([]BackupInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), backupPrefix) || !strings.HasSuffix(entry.Name(), ".db") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, BackupInfo{
			Name:    entry.Name(),
			Path:    filepath.Join(backupConfig.BackupDirectory, entry.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	sort.Slice(backups, func(i, j int) bool {
		return backups[i].ModTime.After(backups[j].ModTime)
	})
	return backups, nil
}

// Rotate deletes the oldest backups beyond max_backups. A non-positive
// max_backups disables rotation.
func (s *backupServiceImpl) Rotate() error {
	backupConfig, err := s.LoadConfig()
	if err != nil {
		return err
	}
	if backupConfig.MaxBackups <= 0 {
		return nil
	}
	backups, err := s.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) <= backupConfig.MaxBackups {
		return nil
	}
	for _, backup := range backups[backupConfig.MaxBackups:] {
		if err := helpers.DeleteFile(backup.Path, false); err != nil {
			s.logService.Log.WithField("backup", backup.Name).
				WithField("error", err.Error()).
				Error("failed to delete old backup")
			continue
		}
		s.logService.Log.WithField("backup", backup.Name).Info("deleted old backup")
	}
	return nil
}

func validBackupName(name string) bool {
	if !strings.HasPrefix(name, backupPrefix) {
		return false
	}
	if strings.Contains(name, "..") || strings.ContainsAny(name, "/\\") {
		return false
	}
	return true
}

func (s *backupServiceImpl) DeleteBackup(name string) error {
	if !validBackupName(name) {
		return ErrInvalidBackupName
	}
	backups, err := s.ListBackups()
	if err != nil {
		return err
	}
	for _, backup := range backups {
		if backup.Name == name {
			return helpers.DeleteFile(backup.Path, false)
		}
	}
	return ErrBackupNotFound
}

// CheckAutoBackup runs a backup when the configured interval has elapsed
// since the last successful run. The timestamp only advances on success, so
// a failed run is retried on the next check.
func (s *backupServiceImpl) CheckAutoBackup() (bool, error) {
	backupConfig, err := s.LoadConfig()
	if err != nil {
		return false, err
	}
	if !backupConfig.AutoBackup || backupConfig.BackupInterval <= 0 {
		return false, nil
	}
	last, ok := s.LastBackupTime()
	if ok && time.Since(last) < time.Duration(backupConfig.BackupInterval)*time.Second {
		return false, nil
	}
	if _, err := s.CreateBackup(); err != nil {
		return false, err
	}
	return true, nil
}

func (s *backupServiceImpl) UpdateMaxBackups(maxBackups int) (*models.BackupConfig, error) {
	if maxBackups < 1 {
		maxBackups = 1
	} else if maxBackups > 50 {
		maxBackups = 50
	}
	backupConfig, err := s.LoadConfig()
	if err != nil {
		return nil, err
	}
	backupConfig.MaxBackups = maxBackups
	if err := s.SaveConfig(backupConfig); err != nil {
		return nil, err
	}
	return backupConfig, nil
}
