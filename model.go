package mongostrict

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/mongostrict/pkg/logger"
)

// Model runs validated CRUD operations against the collection of one
// schema. It is safe for concurrent use.
type Model[T any] struct {
	schema  *Schema[T]
	resolve func() (Database, error)
	log     *slog.Logger

	nameOnce sync.Once
	name     string
	nameErr  error

	mu                sync.Mutex
	db                Database
	coll              Collection
	collectionChecked bool
	indexesChecked    bool
}

// NewModel binds s to the database of c. The connection is resolved on
// every call, so c may be connected after the model is created.
func NewModel[T any](c *Client, s *Schema[T]) *Model[T] {
	return &Model[T]{
		schema:  s,
		resolve: c.database,
		log:     c.Logger(),
	}
}

// NewModelFromDatabase binds s to db. A nil logger discards output.
func NewModelFromDatabase[T any](db Database, s *Schema[T], log *slog.Logger) *Model[T] {
	if log == nil {
		log = logger.Discard()
	}
	return &Model[T]{
		schema: s,
		resolve: func() (Database, error) {
			if db == nil {
				return nil, ErrNotConnected
			}
			return db, nil
		},
		log: log,
	}
}

func (m *Model[T]) Schema() *Schema[T] {
	return m.schema
}

// CollectionName returns the derived collection name.
func (m *Model[T]) CollectionName() (string, error) {
	m.nameOnce.Do(func() {
		m.name, m.nameErr = m.schema.CollectionName()
	})
	return m.name, m.nameErr
}

// collection returns the bound collection, verifying it exists and creating
// the schema indexes the first time it is used with a given database.
func (m *Model[T]) collection(ctx context.Context) (Collection, error) {
	name, err := m.CollectionName()
	if err != nil {
		return nil, wrapOp(OpCollection, err)
	}
	db, err := m.resolve()
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db != db {
		m.db = db
		m.coll = db.Collection(name)
		m.collectionChecked = false
		m.indexesChecked = false
	}

	opts := m.schema.opts

	if !m.collectionChecked {
		if !opts.AutoCreateCollection {
			exists, err := db.CollectionExists(ctx, name)
			if err != nil {
				return nil, wrapOp(OpCollection, err)
			}
			if !exists {
				return nil, wrapOp(OpCollection, fmt.Errorf("%w: %s", ErrCollectionNotFound, name))
			}
		}
		m.collectionChecked = true
	}

	if !m.indexesChecked {
		if len(opts.Indexes) > 0 {
			models := make([]mongo.IndexModel, 0, len(opts.Indexes))
			for _, idx := range opts.Indexes {
				model, err := idx.model()
				if err != nil {
					return nil, wrapOp(OpIndex, err)
				}
				models = append(models, model)
			}
			if _, err := m.coll.CreateIndexes(ctx, models); err != nil {
				return nil, wrapOp(OpIndex, err)
			}
			m.log.DebugContext(ctx, "mongodb indexes ensured",
				logger.Collection(name),
				logger.Count(int64(len(models))),
			)
		}
		m.indexesChecked = true
	}

	return m.coll, nil
}

// run resolves the collection, calls fn and wraps any failure as op.
func run[T, R any](ctx context.Context, m *Model[T], op Operation, fn func(Collection) (R, error), attrs ...slog.Attr) (R, error) {
	start := time.Now()

	coll, err := m.collection(ctx)
	if err != nil {
		var zero R
		return zero, m.fail(ctx, op, err, start, attrs...)
	}

	res, err := fn(coll)
	if err != nil {
		var zero R
		return zero, m.fail(ctx, op, err, start, attrs...)
	}

	m.log.LogAttrs(ctx, slog.LevelDebug, "mongodb operation",
		append(m.attrs(op, start), attrs...)...,
	)
	return res, nil
}

func (m *Model[T]) fail(ctx context.Context, op Operation, err error, start time.Time, attrs ...slog.Attr) error {
	err = wrapOp(op, err)
	attrs = append(m.attrs(op, start), attrs...)
	m.log.LogAttrs(ctx, slog.LevelWarn, "mongodb operation failed", append(attrs, logger.Error(err))...)
	return err
}

func (m *Model[T]) attrs(op Operation, start time.Time) []slog.Attr {
	name, _ := m.CollectionName()
	return []slog.Attr{
		logger.Collection(name),
		logger.Operation(string(op)),
		logger.Duration(time.Since(start)),
	}
}
