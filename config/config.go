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

	// Collaborator credentials.
	GeminiAPIKey      string `mapstructure:"GEMINI_API_KEY"`
	OpenWeatherAPIKey string `mapstructure:"OPENWEATHER_API_KEY"`

	// Collaborator behaviour.
	CandidateCount     int `mapstructure:"CANDIDATE_COUNT"`
	PlacesCacheTTLMin  int `mapstructure:"PLACES_CACHE_TTL_MIN"`
	WeatherCacheTTLMin int `mapstructure:"WEATHER_CACHE_TTL_MIN"`
	MaxTripDays        int `mapstructure:"MAX_TRIP_DAYS"`

	// Engine tuning. These are product-tuning values, not structural
	// constants; the category tables live in the engine's default config.
	DayStartMinute    int     `mapstructure:"DAY_START_MINUTE"`
	DayEndMinute      int     `mapstructure:"DAY_END_MINUTE"`
	MaxStopsPerDay    int     `mapstructure:"MAX_STOPS_PER_DAY"`
	TravelSpeedKmh    float64 `mapstructure:"TRAVEL_SPEED_KMH"`
	TravelBufferMin   int     `mapstructure:"TRAVEL_BUFFER_MIN"`
	DistanceDecayRate float64 `mapstructure:"DISTANCE_DECAY_RATE"`
	ComfortRadiusKm   float64 `mapstructure:"COMFORT_RADIUS_KM"`
	HardRadiusKm      float64 `mapstructure:"HARD_RADIUS_KM"`
	MinPlaceScore     float64 `mapstructure:"MIN_PLACE_SCORE"`
	VibeBonus         float64 `mapstructure:"VIBE_BONUS"`
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
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("OPENWEATHER_API_KEY", "")
	viper.SetDefault("CANDIDATE_COUNT", 15)
	viper.SetDefault("PLACES_CACHE_TTL_MIN", 24*60)
	viper.SetDefault("WEATHER_CACHE_TTL_MIN", 60)
	viper.SetDefault("MAX_TRIP_DAYS", 14)
	viper.SetDefault("DAY_START_MINUTE", 540) // 9:00 AM
	viper.SetDefault("DAY_END_MINUTE", 1320)  // 10:00 PM
	viper.SetDefault("MAX_STOPS_PER_DAY", 6)
	viper.SetDefault("TRAVEL_SPEED_KMH", 12.0) // effective urban transit speed
	viper.SetDefault("TRAVEL_BUFFER_MIN", 10)
	viper.SetDefault("DISTANCE_DECAY_RATE", 0.15)
	viper.SetDefault("COMFORT_RADIUS_KM", 3.0)
	viper.SetDefault("HARD_RADIUS_KM", 15.0)
	viper.SetDefault("MIN_PLACE_SCORE", 40.0)
	viper.SetDefault("VIBE_BONUS", 8.0)

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
