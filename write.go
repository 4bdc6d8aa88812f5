package mongostrict

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/mongostrict/pkg/logger"
)

// Insert validates data and stores it with a new ObjectID and, when the
// schema is versioned, "__v": 0.
func (m *Model[T]) Insert(ctx context.Context, data T, opts ...options.Lister[options.InsertOneOptions]) (*Doc[T], error) {
	if err := m.schema.Validate(data); err != nil {
		return nil, m.fail(ctx, OpInsert, err, time.Now())
	}

	doc := newDoc(data, m.schema.opts.VersionKey)
	return run(ctx, m, OpInsert, func(c Collection) (*Doc[T], error) {
		res, err := c.InsertOne(ctx, doc, opts...)
		if err != nil {
			return nil, err
		}
		if !res.Acknowledged {
			return nil, ErrNotAcknowledged
		}
		return &doc, nil
	}, logger.DocumentID(doc.ID))
}

// InsertMany validates and normalizes every element the way Insert does,
// then stores them in one call. Nothing is written when any element is
// invalid.
func (m *Model[T]) InsertMany(ctx context.Context, list []T, opts ...options.Lister[options.InsertManyOptions]) (int64, error) {
	if len(list) == 0 {
		return 0, nil
	}

	docs := make([]any, 0, len(list))
	for i, data := range list {
		if err := m.schema.Validate(data); err != nil {
			return 0, m.fail(ctx, OpInsert, fmt.Errorf("document %d: %w", i, err), time.Now())
		}
		docs = append(docs, newDoc(data, m.schema.opts.VersionKey))
	}

	return run(ctx, m, OpInsert, func(c Collection) (int64, error) {
		res, err := c.InsertMany(ctx, docs, opts...)
		if err != nil {
			return 0, err
		}
		if !res.Acknowledged {
			return 0, ErrNotAcknowledged
		}
		return int64(len(res.InsertedIDs)), nil
	}, logger.Count(int64(len(docs))))
}

// UpdateByID applies u to the document with the given id and returns the
// document as it was before the update, or nil when nothing matched. Pass
// options.FindOneAndUpdate().SetReturnDocument(options.After) for the
// updated state.
func (m *Model[T]) UpdateByID(ctx context.Context, id any, u Update, opts ...options.Lister[options.FindOneAndUpdateOptions]) (*Doc[T], error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, m.fail(ctx, OpUpdate, err, time.Now())
	}
	return m.updateOne(ctx, u, bson.M{idKey: oid}, opts, logger.DocumentID(oid))
}

// UpdateOneBy applies u to the first document matching filter.
func (m *Model[T]) UpdateOneBy(ctx context.Context, u Update, filter any, opts ...options.Lister[options.FindOneAndUpdateOptions]) (*Doc[T], error) {
	return m.updateOne(ctx, u, filterOrAll(filter), opts)
}

func (m *Model[T]) updateOne(ctx context.Context, u Update, filter any, opts []options.Lister[options.FindOneAndUpdateOptions], attrs ...slog.Attr) (*Doc[T], error) {
	update, err := u.document(m.schema.opts.VersionKey)
	if err != nil {
		return nil, m.fail(ctx, OpUpdate, err, time.Now(), attrs...)
	}
	return run(ctx, m, OpUpdate, func(c Collection) (*Doc[T], error) {
		return m.decodeOne(c.FindOneAndUpdate(ctx, filter, update, opts...))
	}, attrs...)
}

// UpdateMany applies u to every document matching filter.
func (m *Model[T]) UpdateMany(ctx context.Context, u Update, filter any, opts ...options.Lister[options.UpdateManyOptions]) (*mongo.UpdateResult, error) {
	update, err := u.document(m.schema.opts.VersionKey)
	if err != nil {
		return nil, m.fail(ctx, OpUpdate, err, time.Now())
	}
	return run(ctx, m, OpUpdate, func(c Collection) (*mongo.UpdateResult, error) {
		res, err := c.UpdateMany(ctx, filterOrAll(filter), update, opts...)
		if err != nil {
			return nil, err
		}
		if !res.Acknowledged {
			return nil, ErrNotAcknowledged
		}
		return res, nil
	})
}

// Delete removes every document matching filter and returns how many were
// deleted.
func (m *Model[T]) Delete(ctx context.Context, filter any, opts ...options.Lister[options.DeleteManyOptions]) (int64, error) {
	return run(ctx, m, OpDelete, func(c Collection) (int64, error) {
		res, err := c.DeleteMany(ctx, filterOrAll(filter), opts...)
		if err != nil {
			return 0, err
		}
		if !res.Acknowledged {
			return 0, ErrNotAcknowledged
		}
		return res.DeletedCount, nil
	})
}

// DeleteOneBy removes the first document matching filter and returns it,
// or nil when nothing matched.
func (m *Model[T]) DeleteOneBy(ctx context.Context, filter any, opts ...options.Lister[options.FindOneAndDeleteOptions]) (*Doc[T], error) {
	return run(ctx, m, OpDelete, func(c Collection) (*Doc[T], error) {
		return m.decodeOne(c.FindOneAndDelete(ctx, filterOrAll(filter), opts...))
	})
}

func (m *Model[T]) DeleteByID(ctx context.Context, id any, opts ...options.Lister[options.FindOneAndDeleteOptions]) (*Doc[T], error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, m.fail(ctx, OpDelete, err, time.Now())
	}
	return run(ctx, m, OpDelete, func(c Collection) (*Doc[T], error) {
		return m.decodeOne(c.FindOneAndDelete(ctx, bson.M{idKey: oid}, opts...))
	}, logger.DocumentID(oid))
}
