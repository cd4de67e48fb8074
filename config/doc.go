// Package config loads configuration for seqkit tools.
//
// It uses Viper to read a YAML config file and environment variables, and
// godotenv to load an optional .env file first. Environment variables map to
// nested keys by splitting on underscores, so LOGGING_LEVEL sets
// logging.level.
//
// # Usage
//
//	var cfg MyConfig
//	err := config.LoadConfig("seqctl", &cfg, config.WithConfigFile(path))
package config
