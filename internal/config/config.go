package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host string
	Port string
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type TMDB struct {
	APIKey       string
	BaseURL      string
	ImageBaseURL string
}

type Completion struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float64
}

type Retention struct {
	MaxAgeHours int
	SweepSpec   string
}

type App struct {
	AllowedOrigins     string
	ShareBaseURL       string
	SessionCreateLimit int
}

type Config struct {
	HTTP       HTTPServer
	Redis      RedisCache
	Postgres   Postgres
	TMDB       TMDB
	Completion Completion
	Retention  Retention
	App        App
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := &Config{
		HTTP:       *newHTTP(),
		Redis:      *newRedis(),
		Postgres:   *newPostgres(),
		TMDB:       *newTMDB(),
		Completion: *newCompletion(),
		Retention:  *newRetention(),
		App:        *newApp(),
	}

	log.Printf("%s backend config : %+v\n", logtag, cfg)
	return cfg
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port: getenv("HTTP_PORT", "8080"),
		Host: getenv("HTTP_HOST", "localhost"),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", "redis"),
		Password: getenv("REDIS_PASSWORD", "shared"),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getenv("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "vibecheck"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newTMDB() *TMDB {
	return &TMDB{
		APIKey:       getenv("TMDB_API_KEY", ""),
		BaseURL:      getenv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		ImageBaseURL: getenv("TMDB_IMAGE_BASE_URL", "https://image.tmdb.org/t/p"),
	}
}

func newCompletion() *Completion {
	return &Completion{
		APIKey:      getenv("COMPLETION_API_KEY", ""),
		BaseURL:     getenv("COMPLETION_BASE_URL", "https://api.openai.com/v1"),
		Model:       getenv("COMPLETION_MODEL", "gpt-4o-mini"),
		MaxTokens:   getenvInt("COMPLETION_MAX_TOKENS", 2000),
		Temperature: getenvFloat("COMPLETION_TEMPERATURE", 0.8),
	}
}

func newRetention() *Retention {
	return &Retention{
		MaxAgeHours: getenvInt("RETENTION_MAX_AGE_HOURS", 24),
		SweepSpec:   getenv("RETENTION_SWEEP_CRON", "@hourly"),
	}
}

func newApp() *App {
	return &App{
		AllowedOrigins:     getenv("ALLOWED_ORIGINS", "*"),
		ShareBaseURL:       getenv("SHARE_BASE_URL", "http://localhost:5173"),
		SessionCreateLimit: getenvInt("SESSION_CREATE_LIMIT", 20),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}

func getenvInt(key string, defaultValue int) int {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %d\n", logtag, key, defaultValue)
		return defaultValue
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		fmt.Printf("%s %s is not a number. Using default value %d\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %d\n", logtag, key, parsed)
	return parsed
}

func getenvFloat(key string, defaultValue float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %g\n", logtag, key, defaultValue)
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil {
		fmt.Printf("%s %s is not a number. Using default value %g\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %g\n", logtag, key, parsed)
	return parsed
}
