// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv (optional .env files) with
// github.com/caarlos0/env/v11 (struct tag parsing) and caches every parsed
// struct by type, so repeated Load calls are cheap and consistent.
//
// # Usage
//
//	type AppConfig struct {
//		Env      string `env:"APP_ENV" envDefault:"development"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//		Mongo    mongo.Config
//	}
//
//	var cfg AppConfig
//	config.MustLoad(&cfg)
//
// Several instances of one struct type can be loaded under different key
// prefixes:
//
//	var primary, archive mongo.Config
//	_ = config.Load(&primary, config.WithPrefix("PRIMARY_"))
//	_ = config.Load(&archive, config.WithPrefix("ARCHIVE_"))
//
// # Error Handling
//
// Failures wrap ErrParsingConfig, ErrLoadingEnvFile or ErrNilPointer and can
// be matched with errors.Is.
package config
