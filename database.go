package mongostrict

import (
	"context"
	"slices"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection is the subset of *mongo.Collection a Model uses.
type Collection interface {
	Name() string
	CountDocuments(ctx context.Context, filter any, opts ...options.Lister[options.CountOptions]) (int64, error)
	InsertOne(ctx context.Context, document any, opts ...options.Lister[options.InsertOneOptions]) (*mongo.InsertOneResult, error)
	InsertMany(ctx context.Context, documents any, opts ...options.Lister[options.InsertManyOptions]) (*mongo.InsertManyResult, error)
	Find(ctx context.Context, filter any, opts ...options.Lister[options.FindOptions]) (*mongo.Cursor, error)
	FindOne(ctx context.Context, filter any, opts ...options.Lister[options.FindOneOptions]) *mongo.SingleResult
	FindOneAndUpdate(ctx context.Context, filter, update any, opts ...options.Lister[options.FindOneAndUpdateOptions]) *mongo.SingleResult
	FindOneAndDelete(ctx context.Context, filter any, opts ...options.Lister[options.FindOneAndDeleteOptions]) *mongo.SingleResult
	UpdateMany(ctx context.Context, filter, update any, opts ...options.Lister[options.UpdateManyOptions]) (*mongo.UpdateResult, error)
	DeleteMany(ctx context.Context, filter any, opts ...options.Lister[options.DeleteManyOptions]) (*mongo.DeleteResult, error)
	CreateIndexes(ctx context.Context, models []mongo.IndexModel) ([]string, error)
}

// Database resolves collections for a Model.
type Database interface {
	Name() string
	Collection(name string) Collection
	CollectionExists(ctx context.Context, name string) (bool, error)
}

// WrapDatabase adapts a driver database handle.
func WrapDatabase(db *mongo.Database) Database {
	return driverDatabase{db: db}
}

type driverDatabase struct {
	db *mongo.Database
}

func (d driverDatabase) Name() string {
	return d.db.Name()
}

func (d driverDatabase) Collection(name string) Collection {
	return driverCollection{Collection: d.db.Collection(name)}
}

func (d driverDatabase) CollectionExists(ctx context.Context, name string) (bool, error) {
	names, err := d.db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return false, err
	}
	return slices.Contains(names, name), nil
}

type driverCollection struct {
	*mongo.Collection
}

func (c driverCollection) CreateIndexes(ctx context.Context, models []mongo.IndexModel) ([]string, error) {
	return c.Indexes().CreateMany(ctx, models)
}
