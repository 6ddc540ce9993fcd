package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Reservation platform RPC layer (schedules, availability, reservation feed).
	PlatformBaseURL        string `mapstructure:"PLATFORM_BASE_URL"`
	PlatformTimeoutSeconds int    `mapstructure:"PLATFORM_TIMEOUT_SECONDS"`

	// Time-grid parameters.
	SlotStepMinutes      int    `mapstructure:"SLOT_STEP_MINUTES"`     // guest slot picker cadence
	TimelineStepMinutes  int    `mapstructure:"TIMELINE_STEP_MINUTES"` // staff occupancy grid cadence
	DefaultDiningMinutes int    `mapstructure:"DEFAULT_DINING_MINUTES"`
	TurnLookaheadMinutes int    `mapstructure:"TURN_LOOKAHEAD_MINUTES"`
	ScheduleCacheTTLSec  int    `mapstructure:"SCHEDULE_CACHE_TTL_SECONDS"`
	ChangeChannel        string `mapstructure:"CHANGE_CHANNEL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("PLATFORM_BASE_URL", "http://localhost:9090")
	viper.SetDefault("PLATFORM_TIMEOUT_SECONDS", 10)
	viper.SetDefault("SLOT_STEP_MINUTES", 30)
	viper.SetDefault("TIMELINE_STEP_MINUTES", 15)
	viper.SetDefault("DEFAULT_DINING_MINUTES", 90)
	viper.SetDefault("TURN_LOOKAHEAD_MINUTES", 180)
	viper.SetDefault("SCHEDULE_CACHE_TTL_SECONDS", 300)
	viper.SetDefault("CHANGE_CHANNEL", "reservations:changed")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
