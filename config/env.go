// Package config loads engine tuning and watches level files for changes.
package config

import "os"

// Environment variables consulted by the binaries when a flag is unset.
const (
	EnvHitboxes = "DASHPHYS_HITBOXES"
	EnvLog      = "DASHPHYS_LOG"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
