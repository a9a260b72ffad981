package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"

	StorageLocal = "local"
	StorageMinIO = "minio"
)

type DB struct {
	Driver     string
	Path       string
	DbHOST     string
	DbPORT     string
	DbUSER     string
	DbPASSWORD string
	DbNAME     string
	DbSSLMODE  string
}

type MinIO struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	Region     string
	PublicURL  string
}

type Storage struct {
	Backend   string
	ImagesDir string
	MinIO     MinIO
}

type Log struct {
	Level  string
	Format string
}

type Config struct {
	ServerBind    string
	StaticDir     string
	DB            DB
	Storage       Storage
	Log           Log
	MaxUploadSize int64
	FetchTimeout  time.Duration
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil && duration > 0 {
			return duration
		}
	}
	return fallback
}

func getEnvSize(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if size, err := strconv.ParseInt(value, 10, 64); err == nil && size > 0 {
			return size
		}
	}
	return fallback
}

func LoadDB() DB {
	return DB{
		Driver:     getEnv("DB_DRIVER", DriverSQLite),
		Path:       getEnv("DB_PATH", "blog.db"),
		DbHOST:     getEnv("DB_HOST", "localhost"),
		DbPORT:     getEnv("DB_PORT", "5432"),
		DbUSER:     getEnv("DB_USER", "postgres"),
		DbPASSWORD: getEnv("DB_PASSWORD", "password"),
		DbNAME:     getEnv("DB_NAME", "blog"),
		DbSSLMODE:  getEnv("DB_SSLMODE", "disable"),
	}
}

func LoadMinIO() MinIO {
	return MinIO{
		Endpoint:   getEnv("MINIO_ENDPOINT", "localhost:9000"),
		AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName: getEnv("MINIO_BUCKET_NAME", "images"),
		UseSSL:     getEnvBool("MINIO_USE_SSL", false),
		Region:     getEnv("MINIO_REGION", "us-east-1"),
		PublicURL:  getEnv("MINIO_PUBLIC_URL", "http://localhost:9000"),
	}
}

func LoadStorage() Storage {
	return Storage{
		Backend:   getEnv("STORAGE_BACKEND", StorageLocal),
		ImagesDir: getEnv("IMAGES_DIR", "images"),
		MinIO:     LoadMinIO(),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerBind: getEnv("SERVER_BIND", ":8080"),
		StaticDir:  getEnv("STATIC_DIR", "static"),
		DB:         LoadDB(),
		Storage:    LoadStorage(),
		Log: Log{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		MaxUploadSize: getEnvSize("MAX_UPLOAD_SIZE", 10<<20),
		FetchTimeout:  getEnvDuration("FETCH_TIMEOUT", 5*time.Second),
	}
}
