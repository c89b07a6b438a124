package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	LogLevel string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Environment names kept compatible with existing deployments.
	config.MongoDB.URI = GetEnv("MONGODB_URI", config.MongoDB.URI)
	config.MongoDB.Database = GetEnv("MONGODB_DB", config.MongoDB.Database)
	config.Server.Port = GetEnv("PORT", config.Server.Port)

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", "4000")
	viper.SetDefault("Server.AllowedOrigins", []string{})
	viper.SetDefault("MongoDB.URI", "")
	viper.SetDefault("MongoDB.Database", "ecodrop")
	viper.SetDefault("LogLevel", "info")
}
