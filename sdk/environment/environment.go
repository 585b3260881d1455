// Package environment provides support for env vars and configuration
// loading with namespacing and defaults.
package environment

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from a .env file in the working
// directory. Typically called once at application startup; a missing file
// is not fatal in production where real env vars are set.
func LoadEnv() error {
	return godotenv.Load()
}

// LoadPath loads environment variables from a .env file at the given path,
// falling back to the working directory when the path is empty.
func LoadPath(p string) error {
	if p != "" {
		return godotenv.Load(p)
	}
	return godotenv.Load()
}

// GetEnvOrDefault retrieves an environment variable value, returning the
// fallback if the variable is not set.
//
//	port := GetEnvOrDefault("PORT", "8080")
func GetEnvOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvKeyPrefix constructs a namespaced environment variable key by
// joining a prefix and key with an underscore. An empty prefix returns the
// key unchanged.
func GetEnvKeyPrefix(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return fmt.Sprintf("%s_%s", prefix, key)
}

// GetPrefixEnvOrDefault retrieves a namespaced environment variable,
// returning the fallback if it is not set.
func GetPrefixEnvOrDefault(prefix, key, fallback string) string {
	return GetEnvOrDefault(GetEnvKeyPrefix(prefix, key), fallback)
}

// GetPrefixEnv retrieves a namespaced environment variable.
func GetPrefixEnv(prefix, key string) string {
	return os.Getenv(GetEnvKeyPrefix(prefix, key))
}
