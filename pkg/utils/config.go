package utils

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Storage  StorageConfig
	CORS     CORSConfig
}

type AppConfig struct {
	Name            string        `json:"APP_NAME" validate:"required"`
	Port            string        `json:"PORT" validate:"required,number"`
	Debug           bool          `json:"DEBUG"`
	LogPath         string        `json:"LOG_PATH"`
	AdsTxtPath      string        `json:"ADS_TXT_PATH"`
	ShutdownTimeout time.Duration `json:"SHUTDOWN_TIMEOUT" validate:"gte=1s"`
}

type DatabaseConfig struct {
	URL              string        `json:"DB_URL" validate:"required,startswith=postgres"`
	PoolSize         int32         `json:"DB_POOL_SIZE" validate:"gte=1"`
	MaxOverflow      int32         `json:"DB_MAX_OVERFLOW" validate:"gte=0"`
	ConnectTimeout   time.Duration `json:"DB_CONNECT_TIMEOUT" validate:"gte=100ms"`
	StatementTimeout time.Duration `json:"DB_STATEMENT_TIMEOUT" validate:"omitempty,gte=1ms"`
	AutoMigrate      bool          `json:"DB_AUTO_MIGRATE"`
}

// MaxConns is the hard upper bound of the pool.
func (c DatabaseConfig) MaxConns() int32 {
	return c.PoolSize + c.MaxOverflow
}

type AuthConfig struct {
	SecretKey     string `json:"SECRET_KEY" validate:"required_without=SecretKeyHash"`
	SecretKeyHash string `json:"SECRET_KEY_HASH" validate:"omitempty,startswith=$2"`
}

type StorageConfig struct {
	AccessKeyID     string        `json:"AWS_ACCESS_KEY_ID" validate:"required"`
	SecretAccessKey string        `json:"AWS_SECRET_ACCESS_KEY" validate:"required"`
	Region          string        `json:"AWS_REGION" validate:"required"`
	Bucket          string        `json:"BUCKET_NAME" validate:"required"`
	Endpoint        string        `json:"S3_ENDPOINT" validate:"omitempty,url"`
	UsePathStyle    bool          `json:"S3_USE_PATH_STYLE"`
	PresignExpiry   time.Duration `json:"PRESIGN_EXPIRY" validate:"gte=1s,lte=168h"`
}

type CORSConfig struct {
	AllowedOrigins []string `json:"CORS_ALLOWED_ORIGINS" validate:"min=1"`
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")

	v.SetDefault("APP_NAME", "backstage-api")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("ADS_TXT_PATH", "ads.txt")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("DB_POOL_SIZE", 5)
	v.SetDefault("DB_MAX_OVERFLOW", 10)
	v.SetDefault("DB_CONNECT_TIMEOUT", "5s")
	v.SetDefault("DB_STATEMENT_TIMEOUT", "30s")
	v.SetDefault("DB_AUTO_MIGRATE", false)
	v.SetDefault("S3_USE_PATH_STYLE", false)
	v.SetDefault("PRESIGN_EXPIRY", "180s")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	// .env is optional, the process environment is enough in containers.
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read .env: %w", err)
		}
	}

	v.AutomaticEnv()

	region := v.GetString("AWS_REGION")
	if region == "" {
		region = v.GetString("REGION_NAME")
	}
	if region == "" {
		region = "eu-north-1"
	}

	config := &Config{
		App: AppConfig{
			Name:            v.GetString("APP_NAME"),
			Port:            v.GetString("PORT"),
			Debug:           v.GetBool("DEBUG"),
			LogPath:         v.GetString("LOG_PATH"),
			AdsTxtPath:      v.GetString("ADS_TXT_PATH"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Database: DatabaseConfig{
			URL:              v.GetString("DB_URL"),
			PoolSize:         v.GetInt32("DB_POOL_SIZE"),
			MaxOverflow:      v.GetInt32("DB_MAX_OVERFLOW"),
			ConnectTimeout:   v.GetDuration("DB_CONNECT_TIMEOUT"),
			StatementTimeout: v.GetDuration("DB_STATEMENT_TIMEOUT"),
			AutoMigrate:      v.GetBool("DB_AUTO_MIGRATE"),
		},
		Auth: AuthConfig{
			SecretKey:     v.GetString("SECRET_KEY"),
			SecretKeyHash: v.GetString("SECRET_KEY_HASH"),
		},
		Storage: StorageConfig{
			AccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
			Region:          region,
			Bucket:          v.GetString("BUCKET_NAME"),
			Endpoint:        v.GetString("S3_ENDPOINT"),
			UsePathStyle:    v.GetBool("S3_USE_PATH_STYLE"),
			PresignExpiry:   v.GetDuration("PRESIGN_EXPIRY"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}

	if errs := ValidateStruct(config); len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", FormatValidationErrors(errs))
	}

	return config, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
