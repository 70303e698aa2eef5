package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig
	Database    DatabaseConfig
	Anthropic   AnthropicConfig
	RateLimit   RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	Path string
}

// AnthropicConfig configures the remote interpreter. An empty APIKey means
// the service runs on the rule-based fallback parser alone.
type AnthropicConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

type RateLimitConfig struct {
	ParsePerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Database.Path = viper.GetString("database.path")

	cfg.Anthropic.APIKey = viper.GetString("anthropic.api_key")
	cfg.Anthropic.Model = viper.GetString("anthropic.model")
	cfg.Anthropic.Timeout = viper.GetDuration("anthropic.timeout")
	if key := viper.GetString("anthropic_api_key"); key != "" {
		cfg.Anthropic.APIKey = key
	}

	cfg.RateLimit.ParsePerMin = viper.GetInt("rate_limit.parse_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("database.path", "data/tasks.db")
	viper.SetDefault("anthropic.model", "claude-3-haiku-20240307")
	viper.SetDefault("anthropic.timeout", "30s")
	viper.SetDefault("rate_limit.parse_per_min", 60)
}
