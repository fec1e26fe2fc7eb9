package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	API     APIConfig
	Auth    AuthConfig
	Listing ListingConfig
	Upload  UploadConfig
	Email   EmailConfig
	Export  ExportConfig
	Log     LogConfig
	Metrics MetricsConfig
}

// APIConfig points the client at the PASTI backend.
type APIConfig struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// AuthConfig locates the bearer token for authenticated calls.
type AuthConfig struct {
	Token string
}

// ListingConfig tunes client-side pagination.
type ListingConfig struct {
	PageSize int
}

// UploadConfig constrains answer-file uploads before they hit the wire.
type UploadConfig struct {
	MaxFileSizeBytes  int64
	AllowedExtensions []string
}

// EmailConfig carries the provider allow-list used by registration validation.
type EmailConfig struct {
	AllowedDomains []string
}

// ExportConfig controls local attendance report output.
type ExportConfig struct {
	OutputDir string
}

type LogConfig struct {
	Level  string
	Format string
}

// MetricsConfig toggles client instrumentation.
type MetricsConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	// A missing .env is fine; environment variables and defaults carry the
	// config on their own. SetConfigFile surfaces the miss as a path error,
	// not as viper's not-found type, so both are tolerated.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.API = APIConfig{
		BaseURL:   strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
		Timeout:   parseDuration(v.GetString("API_TIMEOUT"), 15*time.Second),
		UserAgent: v.GetString("API_USER_AGENT"),
	}

	cfg.Auth = AuthConfig{
		Token: v.GetString("API_TOKEN"),
	}

	cfg.Listing = ListingConfig{
		PageSize: v.GetInt("LIST_PAGE_SIZE"),
	}

	maxUploadSize := v.GetInt64("UPLOAD_MAX_FILE_SIZE")
	if maxUploadSize <= 0 {
		maxUploadSize = 10 * 1024 * 1024
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeBytes:  maxUploadSize,
		AllowedExtensions: splitAndTrim(v.GetString("UPLOAD_ALLOWED_EXTENSIONS")),
	}

	cfg.Email = EmailConfig{
		AllowedDomains: splitAndTrim(v.GetString("EMAIL_ALLOWED_DOMAINS")),
	}

	cfg.Export = ExportConfig{
		OutputDir: v.GetString("EXPORT_OUTPUT_DIR"),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Metrics = MetricsConfig{
		Enabled: v.GetBool("ENABLE_METRICS"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("API_BASE_URL", "http://localhost:8080/api")
	v.SetDefault("API_TIMEOUT", "15s")
	v.SetDefault("API_USER_AGENT", "siswa-client/1.0")
	v.SetDefault("API_TOKEN", "")

	v.SetDefault("LIST_PAGE_SIZE", 10)

	v.SetDefault("UPLOAD_MAX_FILE_SIZE", 10*1024*1024)
	v.SetDefault("UPLOAD_ALLOWED_EXTENSIONS", ".pdf,.doc,.docx,.jpg,.jpeg,.png,.zip,.rar")

	v.SetDefault("EMAIL_ALLOWED_DOMAINS", "gmail.com,yahoo.com,hotmail.com,outlook.com,sekolah.sch.id,education.ac.id")

	v.SetDefault("EXPORT_OUTPUT_DIR", "./exports")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ENABLE_METRICS", true)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
