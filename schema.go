package mongostrict

import (
	"fmt"
	"math"
	"reflect"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/mongostrict/pkg/naming"
	"github.com/dmitrymomot/mongostrict/pkg/validator"
)

// Index describes an index created before a model's first operation.
type Index struct {
	Keys        bson.D
	Name        string
	Unique      bool
	Sparse      bool
	ExpireAfter time.Duration
}

// maxExpireAfter is the largest TTL expireAfterSeconds can hold.
const maxExpireAfter = math.MaxInt32 * time.Second

// model converts the index to a driver model. A positive ExpireAfter is
// rounded up to whole seconds, so it never becomes 0 (expire immediately).
func (i Index) model() (mongo.IndexModel, error) {
	opts := options.Index()
	if i.Name != "" {
		opts.SetName(i.Name)
	}
	if i.Unique {
		opts.SetUnique(true)
	}
	if i.Sparse {
		opts.SetSparse(true)
	}
	switch {
	case i.ExpireAfter > maxExpireAfter:
		return mongo.IndexModel{}, fmt.Errorf("%w: expire after %s exceeds %d seconds", ErrInvalidIndex, i.ExpireAfter, math.MaxInt32)
	case i.ExpireAfter > 0:
		secs := (i.ExpireAfter + time.Second - 1) / time.Second
		opts.SetExpireAfterSeconds(int32(secs))
	}
	return mongo.IndexModel{Keys: i.Keys, Options: opts}, nil
}

// SchemaOptions are the per-model options of a schema.
type SchemaOptions struct {
	// VersionKey adds "__v" to inserted documents and increments it on
	// every update. Default true.
	VersionKey bool
	// Collection overrides the schema name as the base of the collection
	// name. It is still tokenized and pluralized.
	Collection string
	// AutoCreateCollection, when false, makes the model fail unless the
	// collection already exists. Default true.
	AutoCreateCollection bool
	Indexes              []Index
}

// SchemaOption configures a Schema.
type SchemaOption func(*schemaConfig)

type schemaConfig struct {
	name string
	opts SchemaOptions
}

// WithName sets the schema name used to derive the collection name.
// Defaults to the Go type name of the document.
func WithName(name string) SchemaOption {
	return func(c *schemaConfig) {
		c.name = name
	}
}

func WithCollection(name string) SchemaOption {
	return func(c *schemaConfig) {
		c.opts.Collection = name
	}
}

func WithVersionKey(enabled bool) SchemaOption {
	return func(c *schemaConfig) {
		c.opts.VersionKey = enabled
	}
}

func WithAutoCreateCollection(enabled bool) SchemaOption {
	return func(c *schemaConfig) {
		c.opts.AutoCreateCollection = enabled
	}
}

func WithIndexes(indexes ...Index) SchemaOption {
	return func(c *schemaConfig) {
		c.opts.Indexes = append(c.opts.Indexes, indexes...)
	}
}

// Schema describes one document type: how to validate it and how it is
// stored. T is the payload without "_id" and "__v"; struct types are
// validated through their `validate` tags.
type Schema[T any] struct {
	name       string
	opts       SchemaOptions
	structTags bool
	checks     []func(T) error
}

func NewSchema[T any](opts ...SchemaOption) *Schema[T] {
	t := reflect.TypeFor[T]()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	cfg := &schemaConfig{
		name: t.Name(),
		opts: SchemaOptions{
			VersionKey:           true,
			AutoCreateCollection: true,
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Schema[T]{
		name:       cfg.name,
		opts:       cfg.opts,
		structTags: t.Kind() == reflect.Struct,
	}
}

// WithCheck adds a custom validation step run after the struct tags.
// Returning validator.ValidationErrors merges the failures with the tag
// failures; any other error aborts validation.
func (s *Schema[T]) WithCheck(check func(T) error) *Schema[T] {
	if check != nil {
		s.checks = append(s.checks, check)
	}
	return s
}

func (s *Schema[T]) Name() string {
	return s.name
}

func (s *Schema[T]) Options() SchemaOptions {
	return s.opts
}

// Validate runs the struct tags and every custom check against v.
func (s *Schema[T]) Validate(v T) error {
	var errs validator.ValidationErrors

	if s.structTags {
		if err := validator.Struct(v); err != nil {
			if !validator.IsValidationError(err) {
				return err
			}
			errs.Merge(err)
		}
	}

	for _, check := range s.checks {
		if err := check(v); err != nil {
			if !validator.IsValidationError(err) {
				return err
			}
			errs.Merge(err)
		}
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// CollectionName derives the collection name from the collection option or,
// when unset, the schema name: "ReservationItem" becomes
// "reservation_items".
func (s *Schema[T]) CollectionName() (string, error) {
	name := s.opts.Collection
	if name == "" {
		name = s.name
	}
	return naming.Collection(name)
}
