package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	util "github.com/saulo-duarte/gritboard/internal/utils"
)

const (
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

var (
	ErrUnknownStore     = errors.New("unknown task store")
	ErrMissingDSN       = errors.New("DATABASE_DSN is required for the postgres store")
	ErrInvalidWeekStart = errors.New("invalid week start day")
)

type Settings struct {
	Port              string
	LogLevel          string
	Location          *time.Location
	WeekStart         time.Weekday
	TaskStore         string
	DatabaseDSN       string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	RedisTasksKey     string
	CorsAllowedOrigin string
}

// Load reads settings from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() (*Settings, error) {
	_ = godotenv.Load()

	weekStart, err := ParseWeekday(getEnv("WEEK_START", "sunday"))
	if err != nil {
		return nil, err
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("REDIS_DB must be an integer")
	}

	s := &Settings{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		Location:          util.LoadLocation(os.Getenv("APP_TIMEZONE")),
		WeekStart:         weekStart,
		TaskStore:         strings.ToLower(getEnv("TASK_STORE", StorePostgres)),
		DatabaseDSN:       os.Getenv("DATABASE_DSN"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RedisDB:           redisDB,
		RedisTasksKey:     getEnv("REDIS_TASKS_KEY", "tasks"),
		CorsAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),
	}

	switch s.TaskStore {
	case StorePostgres:
		if s.DatabaseDSN == "" {
			return nil, ErrMissingDSN
		}
	case StoreRedis:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStore, s.TaskStore)
	}

	return s, nil
}

// ParseWeekday accepts full English day names or their three letter
// abbreviations, case-insensitively.
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, nil
		}
	}
	return time.Sunday, ErrInvalidWeekStart
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
