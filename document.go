package mongostrict

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	idKey      = "_id"
	versionKey = "__v"
)

// Doc is a stored document: the validated payload plus the fields the
// model manages. T must be a struct that declares neither "_id" nor "__v".
type Doc[T any] struct {
	ID      bson.ObjectID `bson:"_id" json:"_id"`
	Version *int64        `bson:"__v,omitempty" json:"__v,omitempty"`
	Data    T             `bson:",inline" json:"data"`
}

// ParseID converts a bson.ObjectID or its 24 character hex form.
func ParseID(id any) (bson.ObjectID, error) {
	switch v := id.(type) {
	case bson.ObjectID:
		return v, nil
	case *bson.ObjectID:
		if v != nil {
			return *v, nil
		}
	case string:
		oid, err := bson.ObjectIDFromHex(v)
		if err != nil {
			return bson.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, v)
		}
		return oid, nil
	}
	return bson.NilObjectID, fmt.Errorf("%w: unsupported type %T", ErrInvalidID, id)
}

func newDoc[T any](data T, versioned bool) Doc[T] {
	doc := Doc[T]{ID: bson.NewObjectID(), Data: data}
	if versioned {
		var zero int64
		doc.Version = &zero
	}
	return doc
}
