package config

import (
	"os"
	"strconv"
)

// Config holds the application configuration. The filter thresholds and the
// calorie calibration are empirically chosen constants kept configurable
// rather than hard-coded.
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string

	// Sample filter calibration (meters)
	AccuracyCeilingMeters float64
	MinStepMeters         float64
	MaxJumpMeters         float64
	RouteSpacingMeters    float64

	// Calorie calibration
	WeightKg       float64
	KcalPerKmPerKg float64
}

// Load reads configuration from the environment with defaults.
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/runs/runs.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	return &Config{
		Port:      port,
		DBPath:    dbPath,
		JWTSecret: jwtSecret,

		AccuracyCeilingMeters: envFloat("ACCURACY_CEILING_METERS", 20),
		MinStepMeters:         envFloat("MIN_STEP_METERS", 5),
		MaxJumpMeters:         envFloat("MAX_JUMP_METERS", 30),
		RouteSpacingMeters:    envFloat("ROUTE_SPACING_METERS", 5),

		WeightKg:       envFloat("WEIGHT_KG", 70),
		KcalPerKmPerKg: envFloat("KCAL_PER_KM_PER_KG", 1.036),
	}
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
