package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	DataDir  string
	Timezone string
	Location *time.Location
	Backup   struct {
		Enabled  bool
		Schedule string
		Dir      string
		Keep     int
	}
}

// Load reads config from environment (PROMPTDECK_ prefix) and optional
// promptdeck.yaml.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PROMPTDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("promptdeck")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("data.dir", ".")
	v.SetDefault("timezone", "America/Denver")
	v.SetDefault("backup.enabled", false)
	v.SetDefault("backup.schedule", "0 3 * * *")
	v.SetDefault("backup.keep", 14)

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.DataDir = v.GetString("data.dir")
	cfg.Timezone = v.GetString("timezone")
	cfg.Backup.Enabled = v.GetBool("backup.enabled")
	cfg.Backup.Schedule = v.GetString("backup.schedule")
	cfg.Backup.Dir = v.GetString("backup.dir")
	cfg.Backup.Keep = v.GetInt("backup.keep")

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid PROMPTDECK_TIMEZONE %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	if cfg.Backup.Dir == "" {
		cfg.Backup.Dir = filepath.Join(cfg.DataDir, "backups")
	}
	if cfg.Backup.Keep < 1 {
		return nil, fmt.Errorf("PROMPTDECK_BACKUP_KEEP must be at least 1")
	}

	return cfg, nil
}
