package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Datasets  DatasetsConfig  `mapstructure:"datasets"`
	Assistant AssistantConfig `mapstructure:"assistant"`
	Cache     CacheConfig     `mapstructure:"cache"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type ServerConfig struct {
	Port    int           `mapstructure:"port"`
	Mode    string        `mapstructure:"mode"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// DatasetsConfig points at the two static JSON sources the dashboard is
// built from. Both paths are relative to the working directory unless
// absolute.
type DatasetsConfig struct {
	HealthPath     string `mapstructure:"health_path"`
	ScreenTimePath string `mapstructure:"screen_time_path"`
}

// AssistantConfig configures the outbound chat-completion call. APIKey is
// normally supplied through the ASSISTANT_API_KEY environment variable and
// is the only required credential in the system.
type AssistantConfig struct {
	BaseURL          string  `mapstructure:"base_url"`
	APIKey           string  `mapstructure:"api_key"`
	Model            string  `mapstructure:"model"`
	Temperature      float64 `mapstructure:"temperature"`
	ChartMaxTokens   int     `mapstructure:"chart_max_tokens"`
	GeneralMaxTokens int     `mapstructure:"general_max_tokens"`
}

type CacheConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Host     string        `mapstructure:"host"`
	Port     int           `mapstructure:"port"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "development")
	v.SetDefault("server.timeout", 30*time.Second)

	v.SetDefault("datasets.health_path", "data/health_records.json")
	v.SetDefault("datasets.screen_time_path", "data/screen_time.json")

	v.SetDefault("assistant.base_url", "https://api.openai.com/v1")
	v.SetDefault("assistant.model", "gpt-4o-mini")
	v.SetDefault("assistant.temperature", 0.7)
	v.SetDefault("assistant.chart_max_tokens", 250)
	v.SetDefault("assistant.general_max_tokens", 300)

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.host", "localhost")
	v.SetDefault("cache.port", 6379)
	v.SetDefault("cache.db", 0)
	v.SetDefault("cache.ttl", 5*time.Minute)

	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Content-Type", "Authorization"})

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

func LoadConfig(configPath string) (*Config, error) {
	var config Config

	// If CONFIG_FILE environment variable is set, use it
	if envConfigFile := os.Getenv("CONFIG_FILE"); envConfigFile != "" {
		configPath = envConfigFile
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)

	if configPath != "" {
		dir := filepath.Dir(configPath)
		file := filepath.Base(configPath)
		ext := filepath.Ext(file)
		name := strings.TrimSuffix(file, ext)

		v.AddConfigPath(dir)
		v.SetConfigName(name)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
	}

	// A missing config file is fine; defaults plus environment variables
	// describe a complete configuration.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error loading config file: %v", err)
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Override with environment variables if they exist
	envVars := map[string]string{
		"server.port":               "SERVER_PORT",
		"server.mode":               "SERVER_MODE",
		"server.timeout":            "SERVER_TIMEOUT",
		"datasets.health_path":      "DATASET_HEALTH_PATH",
		"datasets.screen_time_path": "DATASET_SCREEN_TIME_PATH",
		"assistant.base_url":        "ASSISTANT_BASE_URL",
		"assistant.api_key":         "ASSISTANT_API_KEY",
		"assistant.model":           "ASSISTANT_MODEL",
		"cache.enabled":             "CACHE_ENABLED",
		"cache.host":                "REDIS_HOST",
		"cache.port":                "REDIS_PORT",
		"cache.password":            "REDIS_PASSWORD",
		"cache.db":                  "REDIS_DB",
		"logging.level":             "LOG_LEVEL",
		"logging.format":            "LOG_FORMAT",
	}

	for configKey, envVar := range envVars {
		if value := os.Getenv(envVar); value != "" {
			switch envVar {
			case "SERVER_PORT", "REDIS_PORT", "REDIS_DB":
				if intVal, err := strconv.Atoi(value); err == nil {
					v.Set(configKey, intVal)
				}
			case "SERVER_TIMEOUT":
				if d, err := time.ParseDuration(value); err == nil {
					v.Set(configKey, d)
				}
			case "CACHE_ENABLED":
				if value == "true" || value == "1" {
					v.Set(configKey, true)
				} else if value == "false" || value == "0" {
					v.Set(configKey, false)
				}
			default:
				v.Set(configKey, value)
			}
		}
	}

	// OPENAI_API_KEY is honored as a fallback credential so the app works
	// with the conventional variable name out of the box.
	if v.GetString("assistant.api_key") == "" {
		if value := os.Getenv("OPENAI_API_KEY"); value != "" {
			v.Set("assistant.api_key", value)
		}
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %v", err)
	}

	return &config, nil
}
