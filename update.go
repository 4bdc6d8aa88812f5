package mongostrict

import (
	"fmt"
	"maps"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type UpdateMode int

const (
	// UpdateBasic wraps the values in a $set operator.
	UpdateBasic UpdateMode = iota
	// UpdateAdvanced passes the values through as update operators.
	UpdateAdvanced
)

// Update is the update half of UpdateByID, UpdateOneBy and UpdateMany.
// Updates are not validated against the schema.
type Update struct {
	Mode   UpdateMode
	Values any
}

// Set builds a basic update: {"$set": values}.
func Set(values any) Update {
	return Update{Mode: UpdateBasic, Values: values}
}

// Advanced builds an update from operator documents such as
// bson.M{"$push": bson.M{"tags": "vip"}}.
func Advanced(ops any) Update {
	return Update{Mode: UpdateAdvanced, Values: ops}
}

// document renders the driver update. When versioned, "__v" is incremented,
// merged into any $inc the caller supplied.
func (u Update) document(versioned bool) (bson.M, error) {
	doc := bson.M{}

	switch u.Mode {
	case UpdateBasic:
		if u.Values != nil {
			doc["$set"] = u.Values
		}
	case UpdateAdvanced:
		if u.Values != nil {
			ops, err := toM(u.Values)
			if err != nil {
				return nil, err
			}
			for key := range ops {
				if !strings.HasPrefix(key, "$") {
					return nil, fmt.Errorf("%w: %q is not an update operator", ErrInvalidUpdate, key)
				}
			}
			maps.Copy(doc, ops)
		}
	default:
		return nil, fmt.Errorf("%w: unknown mode %d", ErrInvalidUpdate, u.Mode)
	}

	if len(doc) == 0 {
		return nil, ErrEmptyUpdate
	}

	if versioned {
		inc, err := mergeInc(doc["$inc"])
		if err != nil {
			return nil, err
		}
		doc["$inc"] = inc
	}

	return doc, nil
}

func mergeInc(current any) (bson.M, error) {
	inc := bson.M{}
	switch v := current.(type) {
	case nil:
	case bson.M:
		maps.Copy(inc, v)
	case map[string]any:
		maps.Copy(inc, v)
	case bson.D:
		for _, e := range v {
			inc[e.Key] = e.Value
		}
	default:
		return nil, fmt.Errorf("%w: unsupported $inc value %T", ErrInvalidUpdate, current)
	}
	inc[versionKey] = 1
	return inc, nil
}

func toM(v any) (bson.M, error) {
	switch t := v.(type) {
	case bson.M:
		return maps.Clone(t), nil
	case map[string]any:
		return bson.M(maps.Clone(t)), nil
	case bson.D:
		m := make(bson.M, len(t))
		for _, e := range t {
			m[e.Key] = e.Value
		}
		return m, nil
	}

	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidUpdate, err)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidUpdate, err)
	}
	return m, nil
}
