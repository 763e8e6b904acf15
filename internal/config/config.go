package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port          string
	DBPath        string
	DistrictsPath string

	// Upstream open-data API
	APIKey       string
	PositionsURL string
	PollInterval time.Duration

	// City center, used as the default map origin in reports
	CityLat float64
	CityLon float64

	Engine EngineConfig
}

// EngineConfig carries the matching and inference constants. The engine
// itself never reads the environment; everything arrives through here.
type EngineConfig struct {
	RadiusMeters     float64       // stop matching radius
	TimeLowerBound   time.Duration // window opens this long before the scheduled arrival
	TimeUpperBound   time.Duration // window closes this long after it
	SpeedLimitKmh    float64       // legal limit; above it a sample extends a speeding run
	MaximumSpeedKmh  float64       // implausibility ceiling; above it a sample is rejected
}

// Load loads configuration from the environment, with .env support
func Load() *Config {
	// Load .env into environment (ignore if missing)
	_ = godotenv.Load()

	return &Config{
		Port:          getenvDefault("PORT", ":8080"),
		DBPath:        getenvDefault("DB_PATH", "./data/fleet.db"),
		DistrictsPath: getenvDefault("DISTRICTS_PATH", "./data/districts.geojson"),
		APIKey:        os.Getenv("API_KEY"),
		PositionsURL:  getenvDefault("POSITIONS_URL", "https://api.um.warszawa.pl/api/action/busestrams_get/?resource_id=f2e5503e927d-4ad3-9500-4ab9e55deb59"),
		PollInterval:  getenvDuration("POLL_INTERVAL", 20*time.Second),
		CityLat:       getenvFloat("CITY_LAT", 52.2282143),
		CityLon:       getenvFloat("CITY_LON", 21.0856586),
		Engine: EngineConfig{
			RadiusMeters:    getenvFloat("MATCH_RADIUS_METERS", 50),
			TimeLowerBound:  getenvDuration("TIME_LOWER_BOUND", 4*time.Minute),
			TimeUpperBound:  getenvDuration("TIME_UPPER_BOUND", 15*time.Minute),
			SpeedLimitKmh:   getenvFloat("SPEED_LIMIT_KMH", 50),
			MaximumSpeedKmh: getenvFloat("MAXIMUM_SPEED_KMH", 90),
		},
	}
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		// Bare numbers are read as minutes, matching the upstream
		// convention for the window bounds.
		if n, err := strconv.Atoi(v); err == nil {
			return time.Duration(n) * time.Minute
		}
	}
	return fallback
}
