package config

import (
	"os"
	"strconv"

	"github.com/smallie-ng/smallie-web/internal/models"
)

// GetEnv retrieves an environment variable or returns a default value if not found
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvAsBool retrieves an environment variable as a boolean or returns a default value if not found
func GetEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

// IsSet reports whether an environment variable has a non-empty value
func IsSet(key string) bool {
	return os.Getenv(key) != ""
}

// LoadCredentials reads the client-side credential bundle from the environment.
// It is called per request so rotated values are picked up without a restart.
func LoadCredentials() models.Credentials {
	return models.Credentials{
		FirebaseAPIKey:       GetEnv("FIREBASE_API_KEY", ""),
		FirebaseProjectID:    GetEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseAppID:        GetEnv("FIREBASE_APP_ID", ""),
		FlutterwavePublicKey: GetEnv("FLUTTERWAVE_PUBLIC_KEY", ""),
		SolanaProjectID:      GetEnv("SOLANA_PROJECT_ID", ""),
	}
}
