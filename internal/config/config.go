package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// DefaultSourceURL is the Japan Post KEN_ALL archive.
const DefaultSourceURL = "https://www.post.japanpost.jp/zipcode/dl/kogaki/zip/ken_all.zip"

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	SourceURL        string        `mapstructure:"SOURCE_URL"`
	SourceFile       string        `mapstructure:"SOURCE_FILE"`
	FetchTimeout     time.Duration `mapstructure:"FETCH_TIMEOUT"`
	OutputDir        string        `mapstructure:"OUTPUT_DIR"`
	JSONPCallback    string        `mapstructure:"JSONP_CALLBACK"`
	WriteConcurrency int           `mapstructure:"WRITE_CONCURRENCY"`
	DBSource         string        `mapstructure:"DB_SOURCE"`
	ServerAddress    string        `mapstructure:"SERVER_ADDRESS"`
	LogLevel         string        `mapstructure:"LOG_LEVEL"`
}

var defaults = map[string]any{
	"SOURCE_URL":        DefaultSourceURL,
	"SOURCE_FILE":       "",
	"FETCH_TIMEOUT":     "2m",
	"OUTPUT_DIR":        "data",
	"JSONP_CALLBACK":    "$$zipcodejp",
	"WRITE_CONCURRENCY": 16,
	"DB_SOURCE":         "",
	"SERVER_ADDRESS":    "0.0.0.0:8080",
	"LOG_LEVEL":         "info",
}

// LoadConfig reads configuration from app.env in path, overridden by environment variables.
// A missing config file is not an error.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: failed to read config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to decode config: %w", err)
	}

	err = config.Validate()
	return config, err
}

// Validate checks values that cannot be defaulted.
func (c Config) Validate() error {
	if c.SourceURL == "" && c.SourceFile == "" {
		return errors.New("config: one of SOURCE_URL or SOURCE_FILE is required")
	}
	if c.OutputDir == "" {
		return errors.New("config: OUTPUT_DIR is required")
	}
	if c.WriteConcurrency < 1 {
		return fmt.Errorf("config: WRITE_CONCURRENCY must be positive, got %d", c.WriteConcurrency)
	}
	if strings.TrimSpace(c.JSONPCallback) == "" {
		return errors.New("config: JSONP_CALLBACK is required")
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("config: invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return nil
}
