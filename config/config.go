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

	// Holiday catalog source.
	HolidaySourceURL       string `mapstructure:"HOLIDAY_SOURCE_URL"`
	HolidayCacheTTLMin     int    `mapstructure:"HOLIDAY_CACHE_TTL_MIN"`
	HolidayFetchTimeoutSec int    `mapstructure:"HOLIDAY_FETCH_TIMEOUT_SEC"`

	// Business calendar window.
	BusinessTimezone  string `mapstructure:"BUSINESS_TIMEZONE"`
	BusinessOpenHour  int    `mapstructure:"BUSINESS_OPEN_HOUR"`
	BusinessLunchFrom int    `mapstructure:"BUSINESS_LUNCH_START_HOUR"`
	BusinessLunchTo   int    `mapstructure:"BUSINESS_LUNCH_END_HOUR"`
	BusinessCloseHour int    `mapstructure:"BUSINESS_CLOSE_HOUR"`

	// Redis configuration. An empty address means the in-memory
	// holiday cache is used instead.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
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
	viper.SetDefault("HOLIDAY_SOURCE_URL", "https://content.capta.co/Recruitment/WorkingDays.json")
	viper.SetDefault("HOLIDAY_CACHE_TTL_MIN", 60)
	viper.SetDefault("HOLIDAY_FETCH_TIMEOUT_SEC", 10)
	viper.SetDefault("BUSINESS_TIMEZONE", "America/Bogota")
	viper.SetDefault("BUSINESS_OPEN_HOUR", 8)
	viper.SetDefault("BUSINESS_LUNCH_START_HOUR", 12)
	viper.SetDefault("BUSINESS_LUNCH_END_HOUR", 13)
	viper.SetDefault("BUSINESS_CLOSE_HOUR", 17)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)

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
