// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"card_keep/internal/srs"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // postgres | sqlite
	URL    string `mapstructure:"url"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	// デッキ作成時に selection_policy が省略された場合のポリシー
	DefaultSelectionPolicy srs.Policy `mapstructure:"default_selection_policy"`
}

type AuthConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type JWTConfig struct {
	SecretKey string `mapstructure:"secret_key"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type Config struct {
	Database  DatabaseConfig `mapstructure:"database"`
	Server    ServerConfig   `mapstructure:"server"`
	Log       LogConfig      `mapstructure:"log"`
	App       AppConfig      `mapstructure:"app"`
	Auth      AuthConfig     `mapstructure:"auth"`
	JWT       JWTConfig      `mapstructure:"jwt"`
	CORS      CORSConfig     `mapstructure:"cors"`
	Scheduler srs.Config     `mapstructure:"scheduler"`
}

// LoadConfig は path (無ければカレントディレクトリ) の config.yaml と環境変数から設定を読み込みます。
// 戻り値はプロセス全体で共有する読み取り専用の値として扱うこと。
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	// 例: APP_SERVER_PORT -> server.port
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.BindEnv("auth.enabled", "AUTH_ENABLED")
	v.BindEnv("database.url", "DATABASE_URL")
	v.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			slog.Warn("Config file not found. Using default settings or environment variables if available.", slog.String("path", path))
		} else {
			slog.Error("Error reading config file", slog.Any("error", err))
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		slog.Error("Error unmarshalling config", slog.Any("error", err))
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Info("Config loaded successfully",
		slog.String("server_port", cfg.Server.Port),
		slog.String("database_driver", cfg.Database.Driver),
		slog.String("default_selection_policy", string(cfg.App.DefaultSelectionPolicy)),
		slog.Bool("auth_enabled", cfg.Auth.Enabled),
		slog.Any("learning_steps", cfg.Scheduler.LearningSteps),
	)
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := srs.DefaultConfig()

	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("database.driver", DefaultDatabaseDriver)
	v.SetDefault("app.default_selection_policy", DefaultSelectionPolicy)
	v.SetDefault("auth.enabled", DefaultAuthEnabled)
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Accept", "Authorization", "Content-Type", "X-Learner-ID"})
	v.SetDefault("cors.max_age", 300)

	v.SetDefault("scheduler.learning_steps", d.LearningSteps)
	v.SetDefault("scheduler.graduating_interval", d.GraduatingInterval)
	v.SetDefault("scheduler.easy_interval", d.EasyInterval)
	v.SetDefault("scheduler.starting_ease", d.StartingEase)
	v.SetDefault("scheduler.easy_bonus", d.EasyBonus)
	v.SetDefault("scheduler.interval_modifier", d.IntervalModifier)
	v.SetDefault("scheduler.max_interval", d.MaxInterval)
	v.SetDefault("scheduler.min_ease", d.MinEase)
}

// Validate は起動を続けられない設定を検出します。
func (c *Config) Validate() error {
	if err := c.Scheduler.Validate(); err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}
	if !c.App.DefaultSelectionPolicy.IsValid() {
		return fmt.Errorf("app.default_selection_policy %q is not supported", c.App.DefaultSelectionPolicy)
	}
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("database.driver %q is not supported", c.Database.Driver)
	}
	if c.Database.URL == "" {
		slog.Warn("Database URL is not set in config.")
	}
	if c.Auth.Enabled && c.JWT.SecretKey == "" {
		return errors.New("jwt.secret_key is required when auth is enabled")
	}
	return nil
}
