package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var defaultAllowedExtensions = []string{
	".pdf", ".doc", ".docx", ".txt", ".png", ".jpg", ".jpeg", ".ppt", ".pptx", ".xls", ".xlsx",
}

type Config struct {
	Env             string
	Port            string
	AppHost         string
	DatabaseDriver  string
	DSN             string
	JWTSecret       []byte
	JWTTTL          time.Duration
	RedisURL        string
	UploadDir       string
	MaxUploadBytes  int64
	AllowedExts     []string
	StorageDriver   string
	S3UploadsBucket string
	Maintenance     bool
}

// Load reads the process environment, loading .env first when present.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Env:             getenv("API_ENV", "local"),
		Port:            getenv("PORT", "9090"),
		AppHost:         os.Getenv("APP_HOST"),
		DatabaseDriver:  getenv("DATABASE_DRIVER", "postgres"),
		JWTSecret:       []byte(os.Getenv("JWT_SECRET")),
		JWTTTL:          24 * time.Hour,
		RedisURL:        os.Getenv("REDIS_HOST"),
		UploadDir:       getenv("UPLOAD_DIR", "uploads"),
		MaxUploadBytes:  10 << 20,
		AllowedExts:     defaultAllowedExtensions,
		StorageDriver:   getenv("STORAGE_DRIVER", "local"),
		S3UploadsBucket: os.Getenv("S3_UPLOADS_BUCKET"),
	}
	if cfg.DatabaseDriver == "sqlite" {
		cfg.DSN = getenv("DATABASE_NAME", "onboarding.db")
	} else {
		cfg.DSN = GetDSN()
	}
	if ttl, err := time.ParseDuration(os.Getenv("JWT_TTL")); err == nil && ttl > 0 {
		cfg.JWTTTL = ttl
	}
	if mb, err := strconv.ParseInt(os.Getenv("MAX_UPLOAD_MB"), 10, 64); err == nil && mb > 0 {
		cfg.MaxUploadBytes = mb << 20
	}
	if exts := os.Getenv("ALLOWED_EXTENSIONS"); exts != "" {
		cfg.AllowedExts = ParseExtensions(exts)
	}
	if mm, err := strconv.ParseBool(os.Getenv("MAINTENANCE_MODE")); err == nil {
		cfg.Maintenance = mm
	}
	return cfg
}

func (c *Config) IsProd() bool {
	return c.Env == "production"
}

func GetDSN() string {
	DATABASE_HOST := os.Getenv("DATABASE_HOST")
	DATABASE_PORT := os.Getenv("DATABASE_PORT")
	DATABASE_SSLMODE := os.Getenv("DATABASE_SSLMODE")
	DATABASE_TIMEZONE := os.Getenv("DATABASE_TIMEZONE")
	DATABASE_USER := os.Getenv("DATABASE_USER")
	DATABASE_PASSWORD := os.Getenv("DATABASE_PASSWORD")
	DATABASE_NAME := os.Getenv("DATABASE_NAME")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s", DATABASE_HOST, DATABASE_USER, DATABASE_PASSWORD, DATABASE_NAME, DATABASE_PORT, DATABASE_SSLMODE, DATABASE_TIMEZONE)
	return dsn
}

// ParseExtensions turns "pdf, .DOCX" into []string{".pdf", ".docx"}.
func ParseExtensions(s string) []string {
	var exts []string
	for _, e := range strings.Split(s, ",") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts = append(exts, e)
	}
	return exts
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
