package commons

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/MedHabibManai/IGL5-G5-achat/internal/config"
)

// fileConfig mirrors config.Config with durations as strings, the way they are
// written in the YAML file ("5m", "24h").
type fileConfig struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		Host            string `yaml:"host"`
		Port            int    `yaml:"port"`
		User            string `yaml:"user"`
		Password        string `yaml:"password"`
		Name            string `yaml:"name"`
		MaxOpenConns    int    `yaml:"maxOpenConns"`
		MaxIdleConns    int    `yaml:"maxIdleConns"`
		ConnMaxLifetime string `yaml:"connMaxLifetime"`
	} `yaml:"database"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Seed struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"seed"`
	Stock struct {
		AlertInterval string `yaml:"alertInterval"`
	} `yaml:"stock"`
}

// LoadConfig reads a YAML config file into a Config. Callers fall back to
// config.Load (environment) when the file does not exist.
func LoadConfig(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	connMaxLifetime, err := parseDuration(fc.Database.ConnMaxLifetime)
	if err != nil {
		return nil, fmt.Errorf("parsing database.connMaxLifetime: %w", err)
	}

	alertInterval, err := parseDuration(fc.Stock.AlertInterval)
	if err != nil {
		return nil, fmt.Errorf("parsing stock.alertInterval: %w", err)
	}

	return &config.Config{
		Server: config.ServerConfig{
			Port: fc.Server.Port,
		},
		Database: config.DatabaseConfig{
			Host:            fc.Database.Host,
			Port:            fc.Database.Port,
			User:            fc.Database.User,
			Password:        fc.Database.Password,
			Name:            fc.Database.Name,
			MaxOpenConns:    fc.Database.MaxOpenConns,
			MaxIdleConns:    fc.Database.MaxIdleConns,
			ConnMaxLifetime: connMaxLifetime,
		},
		Log: config.LogConfig{
			Level: fc.Log.Level,
		},
		Seed: config.SeedConfig{
			Enabled: fc.Seed.Enabled,
		},
		Stock: config.StockConfig{
			AlertInterval: alertInterval,
		},
	}, nil
}

func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}
