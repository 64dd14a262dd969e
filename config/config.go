package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Gemini GeminiConfig
	CORS   CORSConfig
	App    AppConfig
}

type ServerConfig struct {
	Port string
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type CORSConfig struct {
	FrontendOrigin string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Gemini: GeminiConfig{
			APIKey:  os.Getenv("GOOGLE_API_KEY"),
			Model:   getEnv("GEMINI_MODEL", "gemini-1.5-flash-latest"),
			BaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		},
		CORS: CORSConfig{
			FrontendOrigin: getEnv("FRONTEND_ORIGIN", "http://localhost:3000"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if cfg.Gemini.APIKey == "" {
		// The server still starts so health checks keep working; chat
		// requests fail with a configuration error until the key is set.
		log.Println("Error: GOOGLE_API_KEY not found in environment variables")
	} else {
		log.Printf("Google API key loaded (first 8 chars): %s", KeyPrefix(cfg.Gemini.APIKey))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Gemini.Model == "" {
		return fmt.Errorf("GEMINI_MODEL is required")
	}

	if c.Gemini.BaseURL == "" {
		return fmt.Errorf("GEMINI_BASE_URL is required")
	}

	return nil
}

// KeyPrefix returns a short prefix of the credential safe to log.
func KeyPrefix(key string) string {
	if len(key) <= 8 {
		return key
	}
	return key[:8]
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
