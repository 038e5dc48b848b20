package config

import (
	"gopkg.in/yaml.v3"
	"os"
)

type Configuration struct {
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Export  ExportConfig  `yaml:"export"`
	Backup  BackupConfig  `yaml:"backup"`
}

type StorageConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
	DSN    string `yaml:"dsn"`
}

type ServerConfig struct {
	Port          int           `yaml:"port"`
	Concurrency   int           `yaml:"concurrency"`
	RequestConfig RequestConfig `yaml:"request"`
	LogConfig     LogConfig     `yaml:"log"`
}

type RequestConfig struct {
	SizeLimit int `yaml:"sizeLimit"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Output  string `yaml:"output"`
	LogPath string `yaml:"logPath"`
}

type ExportConfig struct {
	Directory string `yaml:"directory"`
}

// BackupConfig points at the JSON runtime configuration and sets the cron
// schedule for the automatic backup check. The JSON file itself is owned by
// the backup service and reloaded on each access.
type BackupConfig struct {
	ConfigFile string `yaml:"configFile"`
	Schedule   string `yaml:"schedule"`
}

func LoadConfiguration(configurationFilePath string) (*Configuration, error) {
	data, err := os.ReadFile(configurationFilePath)
	if err != nil {
		return nil, err
	}
	var config Configuration
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	config.applyDefaults()
	return &config, nil
}

func (c *Configuration) applyDefaults() {
	if c.Storage.Driver == "" {
		c.Storage.Driver = "sqlite"
	}
	if c.Storage.Path == "" {
		c.Storage.Path = "moving_boxes.db"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Concurrency == 0 {
		c.Server.Concurrency = 256
	}
	if c.Server.RequestConfig.SizeLimit == 0 {
		c.Server.RequestConfig.SizeLimit = 4
	}
	if c.Export.Directory == "" {
		c.Export.Directory = "exports"
	}
	if c.Backup.ConfigFile == "" {
		c.Backup.ConfigFile = "backup_config.json"
	}
	if c.Backup.Schedule == "" {
		c.Backup.Schedule = "@hourly"
	}
}
