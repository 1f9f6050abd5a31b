package server

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/philly/arch-blog/postpage/internal/platform/logger"
	"github.com/spf13/viper"
)

// Post sources selectable through POSTS_SOURCE.
const (
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite"
	SourceBadger   = "badger"
	SourceFile     = "file"
	SourceHTTP     = "http"
)

type Config struct {
	PostsSource      string `mapstructure:"POSTS_SOURCE" validate:"required,oneof=postgres sqlite badger file http"`
	DatabaseURL      string `mapstructure:"DATABASE_URL" validate:"required_if=PostsSource postgres"`
	SQLitePath       string `mapstructure:"SQLITE_PATH" validate:"required_if=PostsSource sqlite"`
	BadgerDir        string `mapstructure:"BADGER_DIR" validate:"required_if=PostsSource badger"`
	PostsFile        string `mapstructure:"POSTS_FILE" validate:"required_if=PostsSource file"`
	PostsAPIURL      string `mapstructure:"POSTS_API_URL" validate:"required_if=PostsSource http,omitempty,url"`
	PostsLimit       int    `mapstructure:"POSTS_LIMIT" validate:"gte=0"`
	SeedFile         string `mapstructure:"SEED_FILE"`
	SeedAuthorID     string `mapstructure:"SEED_AUTHOR_ID" validate:"omitempty,uuid"` // Default author for seeded postgres posts
	SiteTitle        string `mapstructure:"SITE_TITLE" validate:"required"`
	PostURLPrefix    string `mapstructure:"POST_URL_PREFIX" validate:"omitempty,startswith=/|url"` // Where post permalinks point; empty links to the page anchor
	OutputDir        string `mapstructure:"OUTPUT_DIR" validate:"required"`
	BuildPrecompress bool   `mapstructure:"BUILD_PRECOMPRESS"`
	ServerAddress    string `mapstructure:"SERVER_ADDRESS" validate:"required"`
	Environment      string `mapstructure:"ENVIRONMENT" validate:"required"`
	LogLevel         string `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn warning error"` // Logging level (debug, info, warn, error)
}

var configDefaults = map[string]any{
	"POSTS_SOURCE":      SourceFile,
	"DATABASE_URL":      "",
	"SQLITE_PATH":       "posts.db",
	"BADGER_DIR":        "data/badger",
	"POSTS_FILE":        "posts.yaml",
	"POSTS_API_URL":     "",
	"POSTS_LIMIT":       50,
	"SEED_FILE":         "seed/posts.yaml",
	"SEED_AUTHOR_ID":    "",
	"SITE_TITLE":        "Blog",
	"POST_URL_PREFIX":   "",
	"OUTPUT_DIR":        "dist",
	"BUILD_PRECOMPRESS": true,
	"SERVER_ADDRESS":    ":8080",
	"ENVIRONMENT":       "development",
	"LOG_LEVEL":         "info",
}

func LoadConfig(bootstrapLogger *logger.BootstrapLogger) (Config, error) {
	ctx := context.Background()

	// Load .env file if it exists (godotenv will find it automatically)
	// It's okay if the file doesn't exist - we'll use environment variables
	if err := godotenv.Load(); err != nil {
		bootstrapLogger.Info(ctx, "no .env file found, using environment variables only")
	} else {
		bootstrapLogger.Info(ctx, "loaded .env file")
	}

	config, err := readConfig(viper.New())
	if err != nil {
		bootstrapLogger.Error(ctx, "failed to load configuration", "error", err)
		return Config{}, err
	}

	bootstrapLogger.Info(ctx, "configuration loaded",
		"environment", config.Environment,
		"log_level", config.LogLevel,
		"posts_source", config.PostsSource,
		"server_address", config.ServerAddress,
	)
	return config, nil
}

// readConfig fills a Config from v's defaults and the environment, then
// validates it.
func readConfig(v *viper.Viper) (Config, error) {
	for key, value := range configDefaults {
		v.SetDefault(key, value)
	}

	// Enable automatic environment variable reading
	// Viper will now see all environment variables, including those loaded by godotenv
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	config.PostsSource = strings.ToLower(strings.TrimSpace(config.PostsSource))
	config.LogLevel = strings.ToLower(strings.TrimSpace(config.LogLevel))

	if err := validateConfig(config); err != nil {
		return Config{}, err
	}
	return config, nil
}

func validateConfig(config Config) error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("mapstructure")
	})

	err := validate.Struct(config)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}
