package mongo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/dmitrymomot/mongostrict/pkg/mongo"
)

func TestNew_InvalidURL(t *testing.T) {
	cfg := mongo.Config{
		ConnectionURL: "invalid://localhost",
		RetryAttempts: 2,
		RetryInterval: time.Millisecond,
	}

	client, err := mongo.New(context.Background(), cfg)
	require.Error(t, err)
	assert.Nil(t, client)
	assert.ErrorIs(t, err, mongo.ErrFailedToConnectToMongo)
}

func TestNew_StopsOnContextCancel(t *testing.T) {
	cfg := mongo.Config{
		ConnectionURL: "invalid://localhost",
		RetryAttempts: 5,
		RetryInterval: time.Hour,
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() {
		_, err := mongo.New(ctx, cfg)
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, mongo.ErrFailedToConnectToMongo)
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("New did not return after context cancellation")
	}
}

func TestNewWithDatabase_PropagatesError(t *testing.T) {
	db, err := mongo.NewWithDatabase(context.Background(), mongo.Config{
		ConnectionURL: "invalid://localhost",
		Database:      "test",
		RetryAttempts: 1,
	})
	assert.Nil(t, db)
	assert.ErrorIs(t, err, mongo.ErrFailedToConnectToMongo)
}

func TestClientOptions(t *testing.T) {
	opts := mongo.ClientOptions(mongo.Config{
		ConnectionURL:  "mongodb://127.0.0.1:27017",
		AppName:        "reservations",
		ConnectTimeout: 3 * time.Second,
		MaxPoolSize:    10,
		MinPoolSize:    2,
		RetryWrites:    true,
	})

	require.NotNil(t, opts)
	require.NotNil(t, opts.AppName)
	assert.Equal(t, "reservations", *opts.AppName)
	require.NotNil(t, opts.MaxPoolSize)
	assert.Equal(t, uint64(10), *opts.MaxPoolSize)
	require.NotNil(t, opts.MinPoolSize)
	assert.Equal(t, uint64(2), *opts.MinPoolSize)
}

type pinger struct {
	err error
}

func (p pinger) Ping(context.Context, *readpref.ReadPref) error {
	return p.err
}

func TestHealthcheck(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		check := mongo.Healthcheck(pinger{})
		assert.NoError(t, check(context.Background()))
	})

	t.Run("unhealthy", func(t *testing.T) {
		cause := errors.New("server selection timeout")
		check := mongo.Healthcheck(pinger{err: cause})

		err := check(context.Background())
		assert.ErrorIs(t, err, mongo.ErrHealthcheckFailed)
		assert.ErrorIs(t, err, cause)
	})
}
