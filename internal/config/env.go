package config

import (
	"fmt"
	"os"
	"time"
)

const (
	defaultPort          = "3000"
	defaultVisionTimeout = 15 * time.Second
)

type Env struct {
	AppPort          string
	AppEnv           string
	VisionAPIKey     string
	CredentialsFile  string
	VisionEndpoint   string
	VisionTimeout    time.Duration
	CORSAllowOrigins string
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// LoadEnv reads the process environment. APP_PORT wins over PORT.
func LoadEnv() (Env, error) {
	env := Env{
		AppPort:          getEnv("APP_PORT", getEnv("PORT", defaultPort)),
		AppEnv:           getEnv("APP_ENV", "development"),
		VisionAPIKey:     os.Getenv("VISION_API_KEY"),
		CredentialsFile:  os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		VisionEndpoint:   os.Getenv("VISION_ENDPOINT"),
		VisionTimeout:    defaultVisionTimeout,
		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
	}

	if raw := os.Getenv("VISION_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Env{}, fmt.Errorf("invalid VISION_TIMEOUT %q: %w", raw, err)
		}
		if d <= 0 {
			return Env{}, fmt.Errorf("VISION_TIMEOUT must be positive, got %s", d)
		}
		env.VisionTimeout = d
	}

	return env, nil
}
