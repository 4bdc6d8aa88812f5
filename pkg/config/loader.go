package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures a single Load call.
type Option func(*options)

type options struct {
	prefix string
}

// WithPrefix prepends prefix to every env key of the struct, so one config
// type can be loaded for several targets ("PRIMARY_", "ARCHIVE_").
// Each prefix is cached separately.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

type cache struct {
	mu     sync.Mutex
	values map[string]any
}

var (
	globalCache = &cache{values: make(map[string]any)}

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v based on its `env` tags.
//
// The default .env file is read once per process if it exists. Each config
// type (and prefix) is parsed once; later calls copy the cached value.
//
// Example:
//
//	type AppConfig struct {
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//		Mongo    mongo.Config
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	key := cacheKey[T](o.prefix)

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	if cached, ok := globalCache.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.ParseWithOptions(&parsed, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	globalCache.values[key] = parsed
	*v = parsed
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv reads the given .env files into the process environment.
// Variables already set are not overridden. Call it before Load.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ResetCache drops every cached configuration. Intended for tests.
func ResetCache() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()
	globalCache.values = make(map[string]any)
}

func cacheKey[T any](prefix string) string {
	return prefix + reflect.TypeFor[T]().String()
}
