package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

type DB struct {
	DSN                string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
}

type Log struct {
	Level string
	JSON  bool
	// File enables rotated logging to disk when non-empty.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type Config struct {
	DB  DB
	Log Log
}

// Load reads an optional YAML config file and lets BLOGDESK_* environment
// variables override every key (BLOGDESK_DB_DSN, BLOGDESK_LOG_LEVEL, ...).
// A missing file is fine; missing keys fall back to local-dev defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("db.dsn", "host=localhost user=postgres password=postgres dbname=miniblog port=5432 sslmode=disable")
	v.SetDefault("db.maxopenconns", 5)
	v.SetDefault("db.maxidleconns", 2)
	v.SetDefault("db.connmaxlifetimemin", 30)
	v.SetDefault("db.automigrate", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("log.maxsizemb", 20)
	v.SetDefault("log.maxbackups", 3)
	v.SetDefault("log.maxagedays", 14)

	if path == "" {
		path = os.Getenv("BLOGDESK_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	v.SetEnvPrefix("BLOGDESK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
