package config

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// Store drivers understood by the API server
const (
	StoreDriverMongo  = "mongo"
	StoreDriverMemory = "memory"
)

const defaultDatabase = "intern-dashboard"

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	Store    StoreConfig
	LogLevel string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port           string
	AllowedOrigins []string
	Mode           string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// StoreConfig selects the participant store backend
type StoreConfig struct {
	Driver string
}

// Load loads configuration from environment variables and an optional
// config.yaml found in path or path/config.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(path + "/config")
	v.AutomaticEnv()

	setDefaults(v)
	if err := bindEnv(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine, the environment still applies
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// ALLOWED_ORIGINS arrives as a comma separated string
	if len(cfg.Server.AllowedOrigins) == 1 && strings.Contains(cfg.Server.AllowedOrigins[0], ",") {
		cfg.Server.AllowedOrigins = splitList(cfg.Server.AllowedOrigins[0])
	}

	if cfg.MongoDB.Database == "" {
		cfg.MongoDB.Database = databaseFromURI(cfg.MongoDB.URI)
	}

	cfg.Server.Mode = strings.ToLower(cfg.Server.Mode)
	switch cfg.Server.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return nil, errors.New("unsupported gin mode: " + cfg.Server.Mode)
	}

	cfg.Store.Driver = strings.ToLower(cfg.Store.Driver)
	if cfg.Store.Driver != StoreDriverMongo && cfg.Store.Driver != StoreDriverMemory {
		return nil, errors.New("unsupported store driver: " + cfg.Store.Driver)
	}

	return &cfg, nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("Server.Port", "3000")
	v.SetDefault("Server.AllowedOrigins", []string{"*"})
	v.SetDefault("Server.Mode", gin.DebugMode)
	v.SetDefault("MongoDB.URI", "mongodb://localhost:27017/intern-dashboard")
	v.SetDefault("MongoDB.Database", "")
	v.SetDefault("Store.Driver", StoreDriverMongo)
	v.SetDefault("LogLevel", "info")
}

func bindEnv(v *viper.Viper) error {
	bindings := map[string]string{
		"Server.Port":           "PORT",
		"Server.AllowedOrigins": "ALLOWED_ORIGINS",
		"Server.Mode":           "GIN_MODE",
		"MongoDB.URI":           "MONGODB_URI",
		"MongoDB.Database":      "MONGODB_DATABASE",
		"Store.Driver":          "STORE_DRIVER",
		"LogLevel":              "LOG_LEVEL",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return err
		}
	}
	return nil
}

// databaseFromURI returns the database named in the connection string path,
// falling back to the default database.
func databaseFromURI(uri string) string {
	cs, err := connstring.Parse(uri)
	if err != nil || cs.Database == "" {
		return defaultDatabase
	}
	return cs.Database
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
