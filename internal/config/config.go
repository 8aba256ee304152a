package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Store drivers
const (
	DriverFirestore = "firestore"
	DriverMongoDB   = "mongodb"
	DriverMemory    = "memory"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	Session     SessionConfig
	Firebase    FirebaseConfig
	Store       StoreConfig
	MongoDB     MongoDBConfig
	Competition CompetitionConfig
	Admin       AdminConfig
	Vercel      bool
	LogLevel    string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	Mode         string
	AllowedHosts []string
	StaticDir    string
}

// SessionConfig holds the signed session cookie configuration
type SessionConfig struct {
	Secret string
	MaxAge int
}

// FirebaseConfig holds Firebase/Firestore configuration
type FirebaseConfig struct {
	ProjectID   string
	Credentials string
}

// StoreConfig selects the document store backing the data provider
type StoreConfig struct {
	Driver string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// CompetitionConfig holds the competition window
type CompetitionConfig struct {
	StartDate      string
	EndDate        string
	UTCOffsetHours int
}

// AdminConfig holds the optional admin page gate
type AdminConfig struct {
	Username     string
	PasswordHash string
}

// envBindings maps config keys to the environment variables the deployment sets
var envBindings = map[string][]string{
	"server.port":          {"PORT"},
	"server.mode":          {"GIN_MODE"},
	"session.secret":       {"SESSION_SECRET"},
	"firebase.projectid":   {"FIREBASE_PROJECT_ID"},
	"firebase.credentials": {"FIREBASE_CREDENTIALS"},
	"store.driver":         {"STORE_DRIVER"},
	"mongodb.uri":          {"MONGODB_URI"},
	"mongodb.database":     {"MONGODB_DATABASE"},
	"admin.username":       {"ADMIN_USERNAME"},
	"admin.passwordhash":   {"ADMIN_PASSWORD_HASH"},
	"vercel":               {"VERCEL_DEPLOYMENT"},
	"loglevel":             {"LOG_LEVEL"},
}

// Load loads configuration from environment variables and config files
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "./config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	// Set defaults
	setDefaults(v)

	// Read configuration
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("Server.Port", "5000")
	v.SetDefault("Server.Mode", "release")
	v.SetDefault("Server.AllowedHosts", []string{"*"})
	v.SetDefault("Server.StaticDir", "static")
	v.SetDefault("Session.Secret", "smallie-dev-secret-key")
	v.SetDefault("Session.MaxAge", 7*24*60*60) // 7 days
	v.SetDefault("Store.Driver", DriverFirestore)
	v.SetDefault("MongoDB.Database", "smallie")
	v.SetDefault("Competition.StartDate", "2025-04-15")
	v.SetDefault("Competition.EndDate", "2025-04-21")
	v.SetDefault("Competition.UTCOffsetHours", 1) // WAT
	v.SetDefault("Admin.Username", "admin")
	v.SetDefault("Vercel", false)
	v.SetDefault("LogLevel", "info")
}

// Validate checks the values that cannot be defaulted at runtime
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverFirestore, DriverMongoDB, DriverMemory:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if c.Store.Driver == DriverMongoDB && c.MongoDB.URI == "" {
		return fmt.Errorf("MONGODB_URI is required for the %s store", DriverMongoDB)
	}
	if _, _, err := c.Competition.Window(); err != nil {
		return err
	}
	return nil
}

// Window parses the competition start and end dates in the competition time zone
func (c CompetitionConfig) Window() (time.Time, time.Time, error) {
	loc := time.FixedZone("competition", c.UTCOffsetHours*60*60)
	start, err := time.ParseInLocation("2006-01-02", c.StartDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid competition start date %q: %w", c.StartDate, err)
	}
	end, err := time.ParseInLocation("2006-01-02", c.EndDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid competition end date %q: %w", c.EndDate, err)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("competition end date %s is before start date %s", c.EndDate, c.StartDate)
	}
	return start, end, nil
}

// IsDebug reports whether the server runs in gin debug mode
func (c *Config) IsDebug() bool {
	return c.Server.Mode == "debug"
}
