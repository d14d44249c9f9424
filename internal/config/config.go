package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	DB     DBConfig     `mapstructure:"db"`
	Server ServerConfig `mapstructure:"server"`
	Logger LoggerConfig `mapstructure:"logger"`
}

type DBConfig struct {
	DSN          string `mapstructure:"dsn"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
	MaxIdleConns int    `mapstructure:"maxIdleConns"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type LoggerConfig struct {
	Mode       string `mapstructure:"mode"`
	FileEnable bool   `mapstructure:"fileEnable"`
	Filename   string `mapstructure:"filename"`
}

// LoadConfig loads configuration from config.yaml and environment variables
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.pasardb/")
	v.AddConfigPath("/etc/pasardb/")

	// Enable environment variable override with PASARDB_ prefix,
	// e.g. PASARDB_DB_DSN maps to db.dsn.
	v.SetEnvPrefix("PASARDB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("db.dsn", "")
	v.SetDefault("db.maxOpenConns", 10)
	v.SetDefault("db.maxIdleConns", 5)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.fileEnable", false)
	v.SetDefault("logger.filename", "pasardb.log")

	// AutomaticEnv only resolves keys viper already knows about; bind the
	// nested ones explicitly so a bare environment (no config file) works.
	for _, key := range []string{
		"db.dsn", "db.maxOpenConns", "db.maxIdleConns",
		"server.addr",
		"logger.mode", "logger.fileEnable", "logger.filename",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	// Read config file; a missing file is fine, defaults + env take over.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
