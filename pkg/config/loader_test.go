package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mongostrict/pkg/config"
)

type connConfig struct {
	URL      string        `env:"URL,required"`
	Database string        `env:"DATABASE" envDefault:"test"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

type appConfig struct {
	Name  string `env:"MONGOSTRICT_TEST_APP_NAME" envDefault:"mongostrict"`
	Debug bool   `env:"MONGOSTRICT_TEST_DEBUG"`
}

func TestLoad_Success(t *testing.T) {
	config.ResetCache()
	t.Setenv("MONGOSTRICT_TEST_APP_NAME", "reservations")
	t.Setenv("MONGOSTRICT_TEST_DEBUG", "true")

	var cfg appConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "reservations", cfg.Name)
	assert.True(t, cfg.Debug)
}

func TestLoad_DefaultValues(t *testing.T) {
	config.ResetCache()
	t.Setenv("PRIMARY_URL", "mongodb://primary:27017")

	var cfg connConfig
	require.NoError(t, config.Load(&cfg, config.WithPrefix("PRIMARY_")))
	assert.Equal(t, "mongodb://primary:27017", cfg.URL)
	assert.Equal(t, "test", cfg.Database)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestLoad_MissingRequired(t *testing.T) {
	config.ResetCache()

	var cfg connConfig
	err := config.Load(&cfg, config.WithPrefix("MISSING_"))
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_Cached(t *testing.T) {
	config.ResetCache()
	t.Setenv("CACHED_URL", "mongodb://first:27017")

	var first connConfig
	require.NoError(t, config.Load(&first, config.WithPrefix("CACHED_")))

	t.Setenv("CACHED_URL", "mongodb://second:27017")

	var second connConfig
	require.NoError(t, config.Load(&second, config.WithPrefix("CACHED_")))
	assert.Equal(t, "mongodb://first:27017", second.URL, "cached value should be returned")

	config.ResetCache()

	var third connConfig
	require.NoError(t, config.Load(&third, config.WithPrefix("CACHED_")))
	assert.Equal(t, "mongodb://second:27017", third.URL)
}

func TestLoad_PrefixesAreIndependent(t *testing.T) {
	config.ResetCache()
	t.Setenv("PRIMARY_URL", "mongodb://primary:27017")
	t.Setenv("ARCHIVE_URL", "mongodb://archive:27017")
	t.Setenv("ARCHIVE_DATABASE", "archive")

	var primary, archive connConfig
	require.NoError(t, config.Load(&primary, config.WithPrefix("PRIMARY_")))
	require.NoError(t, config.Load(&archive, config.WithPrefix("ARCHIVE_")))

	assert.Equal(t, "mongodb://primary:27017", primary.URL)
	assert.Equal(t, "test", primary.Database)
	assert.Equal(t, "mongodb://archive:27017", archive.URL)
	assert.Equal(t, "archive", archive.Database)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *appConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	config.ResetCache()

	var cfg connConfig
	assert.Panics(t, func() {
		config.MustLoad(&cfg, config.WithPrefix("MUST_MISSING_"))
	})
}

func TestLoadEnv(t *testing.T) {
	config.ResetCache()

	t.Run("reads file values", func(t *testing.T) {
		t.Setenv("MONGOSTRICT_FILE_URL", "")
		t.Setenv("MONGOSTRICT_FILE_DATABASE", "")
		// godotenv does not override variables that are already set, even when empty
		os.Unsetenv("MONGOSTRICT_FILE_URL")
		os.Unsetenv("MONGOSTRICT_FILE_DATABASE")

		require.NoError(t, config.LoadEnv("testdata/.env.mongo"))

		var cfg connConfig
		require.NoError(t, config.Load(&cfg, config.WithPrefix("MONGOSTRICT_FILE_")))
		assert.Equal(t, "mongodb://file-host:27017", cfg.URL)
		assert.Equal(t, "from_file", cfg.Database)
	})

	t.Run("fails on missing file", func(t *testing.T) {
		err := config.LoadEnv("testdata/does-not-exist.env")
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}
