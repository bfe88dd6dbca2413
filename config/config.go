package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Port            string
	HTTPBindAddr    string
	Environment     string
	LoggingConfig   LoggingConfig
	ProviderConfig  ProviderConfig
	SchedulerConfig SchedulerConfig
	EngineConfig    EngineConfig
	RedisConfig     RedisConfig
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// ProviderConfig describes how to reach the flight and train data
// providers. Each provider is either a subprocess command line (stdio
// transport) or an HTTP endpoint; the command wins when both are set.
type ProviderConfig struct {
	FlightCommand []string
	FlightURL     string
	TrainCommand  []string
	TrainURL      string

	FlightTimeout      time.Duration
	TrainTimeout       time.Duration
	StationCodeTimeout time.Duration
}

// SchedulerConfig tunes the two-phase query scheduler.
type SchedulerConfig struct {
	TrainConcurrency int
	FlightRetries    int

	WarmupEnabled  bool
	WarmupOrigin   string
	WarmupDest     string
	WarmupTimeout  time.Duration
	WarmupSchedule string // cron expression; empty disables the keeper
}

// EngineConfig tunes route enumeration and ranking.
type EngineConfig struct {
	MaxHubs                     int
	TopN                        int
	AccommodationEnabled        bool
	AccommodationThresholdHours int
	TrainDateMaxOffsetDays      int
}

// RedisConfig holds the optional station-code warm cache connection.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	Prefix   string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load(".env")

	flightTimeout := getDuration("PROVIDER_FLIGHT_TIMEOUT", 120*time.Second)
	trainTimeout := getDuration("PROVIDER_TRAIN_TIMEOUT", 60*time.Second)
	stationTimeout := getDuration("PROVIDER_STATION_CODE_TIMEOUT", 30*time.Second)

	providerConfig := ProviderConfig{
		FlightCommand:      splitCommand(getEnv("FLIGHT_PROVIDER_COMMAND", "")),
		FlightURL:          getEnv("FLIGHT_PROVIDER_URL", ""),
		TrainCommand:       splitCommand(getEnv("TRAIN_PROVIDER_COMMAND", "")),
		TrainURL:           getEnv("TRAIN_PROVIDER_URL", ""),
		FlightTimeout:      flightTimeout,
		TrainTimeout:       trainTimeout,
		StationCodeTimeout: stationTimeout,
	}

	trainConcurrency := getInt("SCHEDULER_TRAIN_CONCURRENCY", 15)
	if trainConcurrency < 1 {
		trainConcurrency = 1
	}
	flightRetries := getInt("SCHEDULER_FLIGHT_RETRIES", 2)
	if flightRetries < 0 {
		flightRetries = 0
	}
	warmupEnabled, _ := strconv.ParseBool(getEnv("SCHEDULER_WARMUP_ENABLED", "true"))

	schedulerConfig := SchedulerConfig{
		TrainConcurrency: trainConcurrency,
		FlightRetries:    flightRetries,
		WarmupEnabled:    warmupEnabled,
		WarmupOrigin:     getEnv("SCHEDULER_WARMUP_ORIGIN", "北京"),
		WarmupDest:       getEnv("SCHEDULER_WARMUP_DEST", "上海"),
		WarmupTimeout:    getDuration("SCHEDULER_WARMUP_TIMEOUT", 150*time.Second),
		WarmupSchedule:   getEnv("SCHEDULER_WARMUP_SCHEDULE", ""),
	}

	accommodationEnabled, _ := strconv.ParseBool(getEnv("ENGINE_ACCOMMODATION_ENABLED", "true"))
	engineConfig := EngineConfig{
		MaxHubs:                     getInt("ENGINE_MAX_HUBS", 15),
		TopN:                        getInt("ENGINE_TOP_N", 30),
		AccommodationEnabled:        accommodationEnabled,
		AccommodationThresholdHours: getInt("ENGINE_ACCOMMODATION_THRESHOLD_HOURS", 6),
		TrainDateMaxOffsetDays:      getInt("ENGINE_TRAIN_DATE_MAX_OFFSET_DAYS", 14),
	}

	redisEnabled, _ := strconv.ParseBool(getEnv("REDIS_ENABLED", "false"))
	redisConfig := RedisConfig{
		Enabled:  redisEnabled,
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getInt("REDIS_DB", 0),
		Prefix:   getEnv("REDIS_PREFIX", "gohome"),
	}

	return &Config{
		Port:         getEnv("PORT", "8080"),
		HTTPBindAddr: getEnv("HTTP_BIND_ADDR", ""),
		Environment:  getEnv("ENVIRONMENT", "development"),
		LoggingConfig: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		ProviderConfig:  providerConfig,
		SchedulerConfig: schedulerConfig,
		EngineConfig:    engineConfig,
		RedisConfig:     redisConfig,
	}, nil
}

// LoadTestConfig loads test configuration
func LoadTestConfig() *Config {
	return &Config{
		Environment: "test",
		LoggingConfig: LoggingConfig{
			Level:  "error",
			Format: "text",
		},
		ProviderConfig: ProviderConfig{
			FlightTimeout:      2 * time.Second,
			TrainTimeout:       2 * time.Second,
			StationCodeTimeout: time.Second,
		},
		SchedulerConfig: SchedulerConfig{
			TrainConcurrency: 4,
			FlightRetries:    2,
			WarmupEnabled:    false,
			WarmupOrigin:     "北京",
			WarmupDest:       "上海",
			WarmupTimeout:    time.Second,
		},
		EngineConfig: EngineConfig{
			MaxHubs:                     15,
			TopN:                        30,
			AccommodationEnabled:        true,
			AccommodationThresholdHours: 6,
			TrainDateMaxOffsetDays:      14,
		},
		RedisConfig: RedisConfig{
			Enabled: false,
			Host:    getEnv("REDIS_HOST", "localhost"),
			Port:    getEnv("REDIS_PORT", "6379"),
			Prefix:  "gohome_test",
		},
	}
}

// splitCommand splits a provider command line on whitespace. Arguments
// with embedded spaces are not supported; provider launchers take flag
// style arguments only.
func splitCommand(s string) []string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

func getInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return d
}
