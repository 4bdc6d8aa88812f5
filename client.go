package mongostrict

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/mongostrict/pkg/logger"
	mongocfg "github.com/dmitrymomot/mongostrict/pkg/mongo"
)

// Client owns the driver connection shared by every Model created from it.
// Models resolve the database on each operation, so a model may be built
// before Connect is called.
type Client struct {
	mu     sync.RWMutex
	client *mongo.Client
	db     *mongo.Database
	log    *slog.Logger
}

type ClientOption func(*Client)

// WithLogger sets the logger used by the client and its models.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

func NewClient(opts ...ClientOption) *Client {
	c := &Client{log: logger.Discard()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connect dials MongoDB with cfg, retrying as configured, and binds
// cfg.Database.
func (c *Client) Connect(ctx context.Context, cfg mongocfg.Config) error {
	if cfg.Database == "" {
		return ErrEmptyDatabaseName
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return ErrAlreadyConnected
	}

	client, err := mongocfg.New(ctx, cfg)
	if err != nil {
		c.log.ErrorContext(ctx, "mongodb connection failed", logger.Database(cfg.Database), logger.Error(err))
		return err
	}

	c.client = client
	c.db = client.Database(cfg.Database)
	c.log.InfoContext(ctx, "mongodb connected", logger.Database(cfg.Database))

	return nil
}

// WithClient binds an already connected driver client.
func (c *Client) WithClient(client *mongo.Client, dbName string) error {
	if client == nil {
		return ErrNotConnected
	}
	if dbName == "" {
		return ErrEmptyDatabaseName
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return ErrAlreadyConnected
	}

	c.client = client
	c.db = client.Database(dbName)

	return nil
}

// DB returns the bound driver database.
func (c *Client) DB() (*mongo.Database, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.db == nil {
		return nil, ErrNotConnected
	}
	return c.db, nil
}

// Disconnect closes the driver client. The Client may be connected again
// afterwards.
func (c *Client) Disconnect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		return ErrNotConnected
	}

	err := c.client.Disconnect(ctx)
	c.client = nil
	c.db = nil
	if err != nil {
		return err
	}

	c.log.InfoContext(ctx, "mongodb disconnected")
	return nil
}

// Healthcheck pings the server.
func (c *Client) Healthcheck(ctx context.Context) error {
	c.mu.RLock()
	client := c.client
	c.mu.RUnlock()

	if client == nil {
		return errors.Join(mongocfg.ErrHealthcheckFailed, ErrNotConnected)
	}
	return mongocfg.Healthcheck(client)(ctx)
}

func (c *Client) Logger() *slog.Logger {
	return c.log
}

func (c *Client) database() (Database, error) {
	db, err := c.DB()
	if err != nil {
		return nil, err
	}
	return WrapDatabase(db), nil
}
