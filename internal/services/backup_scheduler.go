package services

import (
	"Boxtrack/internal/config"
	"errors"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// BackupScheduler drives the automatic backup check on a cron schedule. A
// mutex guards the running flag so a slow backup is never overlapped by the
// next tick or a manual trigger.
type BackupScheduler struct {
	backupService BackupService
	configuration *config.Configuration
	logService    LogService
	running       bool
	mutex         sync.Mutex
	cron          *cron.Cron
}

func NewBackupScheduler(
	backupService BackupService,
	logService LogService,
	configuration *config.Configuration,
) *BackupScheduler {
	return &BackupScheduler{
		backupService: backupService,
		configuration: configuration,
		logService:    logService,
		running:       false,
		mutex:         sync.Mutex{},
		cron:          cron.New(),
	}
}

// Start registers the cron job and runs one check immediately so a backup
// overdue at startup is caught up without waiting for the first tick.
func (s *BackupScheduler) Start() {
	s.logService.Log.Debug("starting backup schedule")

	cronSchedule := s.configuration.Backup.Schedule
	_, err := s.cron.AddFunc(cronSchedule, func() {
		s.runCheck(false)
	})
	if err != nil {
		s.logService.Log.WithFields(logrus.Fields{
			"job":   "backup",
			"error": err.Error(),
		}).Error("Failed to start backup job")
		return
	}
	s.cron.Start()

	go s.runCheck(false)
}

// ForceBackup triggers a backup outside the schedule. Returns an error when a
// run is already in progress.
func (s *BackupScheduler) ForceBackup() error {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		return errors.New("backup is in progress")
	}
	s.running = true
	s.mutex.Unlock()

	go func() {
		defer func() {
			s.mutex.Lock()
			s.running = false
			s.mutex.Unlock()
		}()
		s.runBackup()
	}()
	return nil
}

func (s *BackupScheduler) Stop() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.cron.Stop()
	s.logService.Log.WithFields(logrus.Fields{
		"job":    "backup",
		"status": "stopped",
	}).Info("Backup schedule stopped")
}

func (s *BackupScheduler) IsRunning() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.running
}

func (s *BackupScheduler) runCheck(forced bool) {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		return
	}
	s.running = true
	s.mutex.Unlock()

	defer func() {
		s.mutex.Lock()
		s.running = false
		s.mutex.Unlock()
	}()

	ran, err := s.backupService.CheckAutoBackup()
	if err != nil {
		s.logService.Log.WithFields(logrus.Fields{
			"job":    "backup",
			"status": "error",
			"error":  err.Error(),
		}).Error("Automatic backup check failed")
		return
	}
	if ran {
		s.logService.Log.WithFields(logrus.Fields{
			"job":    "backup",
			"status": "success",
			"cron":   s.configuration.Backup.Schedule,
			"forced": forced,
		}).Info("Automatic backup completed")
	}
}

func (s *BackupScheduler) runBackup() {
	backup, err := s.backupService.CreateBackup()
	if err != nil {
		s.logService.Log.WithFields(logrus.Fields{
			"job":    "backup",
			"status": "error",
			"error":  err.Error(),
		}).Error("Manual backup failed")
		return
	}
	s.logService.Log.WithFields(logrus.Fields{
		"job":    "backup",
		"status": "success",
		"backup": backup.Name,
	}).Info("Manual backup completed")
}
