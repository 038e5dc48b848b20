package models

// BackupConfig is persisted as JSON next to the application, not in the
// database. It is reloaded from disk on each access so edits made while the
// server runs take effect without a restart.
type BackupConfig struct {
	BackupDirectory string `json:"backup_directory"`
	MaxBackups      int    `json:"max_backups"`
	DatabasePath    string `json:"database_path"`
	AutoBackup      bool   `json:"auto_backup"`
	BackupInterval  int    `json:"backup_interval"`
	LastBackup      string `json:"last_backup,omitempty"`
}
