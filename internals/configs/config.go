package configs

import (
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"

	"kiadmin_backend/internals/helpers/logger"
)

var (
	JWTSecret string
	Cfg       Config
)

type Config struct {
	AppEnv  string
	Port    string
	LogMode string

	DatabaseURL string
	DBSSLMode   string

	JWTSecret    string
	JWTAccessTTL time.Duration

	// Zona waktu yang dipakai untuk membaca tanggal lokal (periode & masa berlaku).
	Timezone         string
	PksLookaheadDays int

	StorageDriver     string
	StorageLocalDir   string
	StoragePublicBase string
	OSSEndpoint       string
	OSSAccessKeyID    string
	OSSAccessSecret   string
	OSSBucket         string
	OSSSignedURLTTL   time.Duration
	GCSBucket         string
	GCSCredentials    string
	MaxUploadBytes    int64

	DocumentOrphanTTL     time.Duration
	TokenBlacklistTTLDays int

	RedisAddr     string
	RedisPassword string
	RedisChannel  string
	StatsCacheTTL time.Duration

	CorsOrigins []string
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() Config {
	log := logger.L()
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Warn("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Info("✅ .env file berhasil dimuat!")
		}
	}

	Cfg = Config{
		AppEnv:  GetEnv("APP_ENV", "development"),
		Port:    GetEnv("PORT", "3000"),
		LogMode: GetEnv("LOG_MODE", "dev"),

		DatabaseURL: GetEnv("DATABASE_URL"),
		DBSSLMode:   GetEnv("DB_SSLMODE", "require"),

		JWTSecret:    GetEnv("JWT_SECRET"),
		JWTAccessTTL: time.Duration(GetEnvInt("JWT_ACCESS_TTL_HOURS", 24)) * time.Hour,

		Timezone:         GetEnv("APP_TIMEZONE", "Asia/Makassar"),
		PksLookaheadDays: GetEnvInt("PKS_LOOKAHEAD_DAYS", 30),

		StorageDriver:     strings.ToLower(GetEnv("STORAGE_DRIVER", "local")),
		StorageLocalDir:   GetEnv("STORAGE_LOCAL_DIR", "./uploads"),
		StoragePublicBase: GetEnv("STORAGE_PUBLIC_BASE", "/files"),
		OSSEndpoint:       GetEnv("OSS_ENDPOINT"),
		OSSAccessKeyID:    GetEnv("OSS_ACCESS_KEY_ID"),
		OSSAccessSecret:   GetEnv("OSS_ACCESS_KEY_SECRET"),
		OSSBucket:         GetEnv("OSS_BUCKET_NAME"),
		OSSSignedURLTTL:   time.Duration(GetEnvInt("OSS_SIGNED_URL_TTL_MINUTES", 60)) * time.Minute,
		GCSBucket:         GetEnv("GCS_BUCKET_NAME"),
		GCSCredentials:    GetEnv("GOOGLE_APPLICATION_CREDENTIALS"),
		MaxUploadBytes:    int64(GetEnvInt("MAX_UPLOAD_MB", 10)) << 20,

		DocumentOrphanTTL:     time.Duration(GetEnvInt("DOCUMENT_ORPHAN_TTL_HOURS", 24)) * time.Hour,
		TokenBlacklistTTLDays: GetEnvInt("TOKEN_BLACKLIST_TTL_DAYS", 7),

		RedisAddr:     GetEnv("REDIS_ADDR"),
		RedisPassword: GetEnv("REDIS_PASSWORD"),
		RedisChannel:  GetEnv("REDIS_CHANNEL", "kiadmin:changes"),
		StatsCacheTTL: time.Duration(GetEnvInt("STATS_CACHE_TTL_SECONDS", 300)) * time.Second,

		CorsOrigins: splitCSV(GetEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3001")),
	}
	JWTSecret = Cfg.JWTSecret

	if JWTSecret == "" {
		log.Error("❌ JWT_SECRET belum diset!")
	} else {
		log.Info("✅ JWT_SECRET berhasil dimuat.")
	}
	return Cfg
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || strings.TrimSpace(value) == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logger.L().Warn("nilai env bukan angka, pakai default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

// Location mengembalikan zona waktu aplikasi; fallback ke WITA (UTC+8).
func (c Config) Location() *time.Location {
	if c.Timezone != "" {
		if loc, err := time.LoadLocation(c.Timezone); err == nil {
			return loc
		}
	}
	return time.FixedZone("WITA", 8*60*60)
}

func (c Config) Lookahead() time.Duration {
	days := c.PksLookaheadDays
	if days <= 0 {
		days = 30
	}
	return time.Duration(days) * 24 * time.Hour
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
