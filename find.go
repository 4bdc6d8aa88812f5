package mongostrict

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/mongostrict/pkg/logger"
)

// Query is the input of AdvancedFind and FindAs.
type Query struct {
	Filter any
	// Enhance customizes the find options: sort, limit, skip, projection.
	Enhance func(*options.FindOptionsBuilder)
}

func (q Query) findOptions(opts []options.Lister[options.FindOptions]) []options.Lister[options.FindOptions] {
	if q.Enhance == nil {
		return opts
	}
	b := options.Find()
	q.Enhance(b)
	return append(slices.Clone(opts), b)
}

// Count returns the number of documents matching filter.
func (m *Model[T]) Count(ctx context.Context, filter any, opts ...options.Lister[options.CountOptions]) (int64, error) {
	return run(ctx, m, OpFind, func(c Collection) (int64, error) {
		return c.CountDocuments(ctx, filterOrAll(filter), opts...)
	})
}

// Find returns every document matching filter. A nil filter matches all
// documents. Each document is validated against the schema.
func (m *Model[T]) Find(ctx context.Context, filter any, opts ...options.Lister[options.FindOptions]) ([]Doc[T], error) {
	return run(ctx, m, OpFind, func(c Collection) ([]Doc[T], error) {
		cur, err := c.Find(ctx, filterOrAll(filter), opts...)
		if err != nil {
			return nil, err
		}
		return decodeAll(ctx, cur, func(d Doc[T]) error {
			return m.schema.Validate(d.Data)
		})
	})
}

func (m *Model[T]) AdvancedFind(ctx context.Context, q Query, opts ...options.Lister[options.FindOptions]) ([]Doc[T], error) {
	return m.Find(ctx, q.Filter, q.findOptions(opts)...)
}

// FindAs runs q against the collection of m and validates each result
// against out instead of the model schema. It is meant for projections.
// A nil out skips validation.
func FindAs[R, T any](ctx context.Context, m *Model[T], q Query, out *Schema[R], opts ...options.Lister[options.FindOptions]) ([]R, error) {
	return run(ctx, m, OpFind, func(c Collection) ([]R, error) {
		cur, err := c.Find(ctx, filterOrAll(q.Filter), q.findOptions(opts)...)
		if err != nil {
			return nil, err
		}
		return decodeAll(ctx, cur, func(r R) error {
			if out == nil {
				return nil
			}
			return out.Validate(r)
		})
	})
}

// FindOneBy returns the first document matching filter, or nil.
func (m *Model[T]) FindOneBy(ctx context.Context, filter any, opts ...options.Lister[options.FindOneOptions]) (*Doc[T], error) {
	return run(ctx, m, OpFind, func(c Collection) (*Doc[T], error) {
		return m.decodeOne(c.FindOne(ctx, filterOrAll(filter), opts...))
	})
}

// FindByID returns the document with the given id, or nil.
func (m *Model[T]) FindByID(ctx context.Context, id any, opts ...options.Lister[options.FindOneOptions]) (*Doc[T], error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, m.fail(ctx, OpFind, err, time.Now())
	}
	return run(ctx, m, OpFind, func(c Collection) (*Doc[T], error) {
		return m.decodeOne(c.FindOne(ctx, bson.M{idKey: oid}, opts...))
	}, logger.DocumentID(oid))
}

func (m *Model[T]) decodeOne(res *mongo.SingleResult) (*Doc[T], error) {
	var doc Doc[T]
	if err := res.Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	if err := m.schema.Validate(doc.Data); err != nil {
		return nil, fmt.Errorf("document %s: %w", doc.ID.Hex(), err)
	}
	return &doc, nil
}

func decodeAll[D any](ctx context.Context, cur *mongo.Cursor, validate func(D) error) ([]D, error) {
	var docs []D
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []D{}
	}
	for i := range docs {
		if err := validate(docs[i]); err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
	}
	return docs, nil
}

func filterOrAll(filter any) any {
	if filter == nil {
		return bson.M{}
	}
	return filter
}
