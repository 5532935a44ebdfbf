// Package config provides environment-based configuration.
//
// Loads from .env file (godotenv), maps to Config struct via go-simpler/env
// struct tags. Validates value ranges; the service boots with an empty
// environment using defaults only.
package config
