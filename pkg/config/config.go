package config

import (
	"fmt"
	"os"
)

// ServerConfiguration holds the HTTP server settings.
type ServerConfiguration struct {
	Port string
}

// DatabaseConfiguration holds the Postgres connection settings.
type DatabaseConfiguration struct {
	URL string
}

// RedisConfiguration holds the cache connection settings.
type RedisConfiguration struct {
	Host     string
	Port     string
	Password string
}

// IgdbConfiguration holds the credentials and endpoints for the game catalog.
// The client id/secret come from the Twitch developer console.
type IgdbConfiguration struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	APIURL       string
}

// BucketConfiguration holds the S3 bucket used for log uploads.
type BucketConfiguration struct {
	AccessKey    string
	AccessSecret string
	Endpoint     string
	Region       string
	LogBucket    string
}

// Config is the full application configuration.
type Config struct {
	Server   ServerConfiguration
	Database DatabaseConfiguration
	Redis    RedisConfiguration
	Igdb     IgdbConfiguration
	Bucket   BucketConfiguration
}

const (
	defaultPort     = "8080"
	defaultTokenURL = "https://id.twitch.tv/oauth2/token"
	defaultAPIURL   = "https://api.igdb.com/v4"
)

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfiguration{
			Port: getEnv("PORT", defaultPort),
		},
		Database: DatabaseConfiguration{
			URL: os.Getenv("DATABASE_URL"),
		},
		Redis: RedisConfiguration{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     os.Getenv("REDIS_PORT"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Igdb: IgdbConfiguration{
			ClientID:     os.Getenv("IGDB_CLIENT_ID"),
			ClientSecret: os.Getenv("IGDB_CLIENT_SECRET"),
			TokenURL:     getEnv("IGDB_TOKEN_URL", defaultTokenURL),
			APIURL:       getEnv("IGDB_API_URL", defaultAPIURL),
		},
		Bucket: BucketConfiguration{
			AccessKey:    os.Getenv("BUCKET_ACCESS_KEY"),
			AccessSecret: os.Getenv("BUCKET_ACCESS_SECRET"),
			Endpoint:     os.Getenv("BUCKET_ENDPOINT"),
			Region:       os.Getenv("BUCKET_REGION"),
			LogBucket:    os.Getenv("BUCKET_LOG_BUCKET"),
		},
	}

	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL must be set")
	}

	if cfg.Igdb.ClientID == "" || cfg.Igdb.ClientSecret == "" {
		return nil, fmt.Errorf("IGDB_CLIENT_ID and IGDB_CLIENT_SECRET must be set")
	}

	return cfg, nil
}

// getEnv reads a environment variable with a fallback default.
func getEnv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
