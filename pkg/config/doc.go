// Package config loads typed configuration from environment variables with
// github.com/caarlos0/env/v11, reading an optional .env file through
// github.com/joho/godotenv first.
package config
