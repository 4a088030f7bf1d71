package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SkillServer holds all configuration for the skill data server.
type SkillServer struct {
	// Data
	SkillDir string `yaml:"skill_dir"`

	// Logging
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Database. Disabled by default: the compiler itself needs no
	// storage, only character skill persistence does.
	DatabaseEnabled bool           `yaml:"database_enabled"`
	Database        DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultSkillServer returns SkillServer config with sensible defaults.
func DefaultSkillServer() SkillServer {
	return SkillServer{
		SkillDir: "data/stats/skills",
		LogLevel: "info",
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "interlude",
			Password: "interlude",
			DBName:   "interlude",
			SSLMode:  "disable",
		},
	}
}

// LoadSkillServer loads skill server config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadSkillServer(path string) (SkillServer, error) {
	cfg := DefaultSkillServer()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
