package validator

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Rule:    "required",
			Message: "field is required",
		},
	}
}

func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Rule:    "min",
			Message: fmt.Sprintf("must be at least %d characters long", min),
		},
	}
}

func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Rule:    "max",
			Message: fmt.Sprintf("must be at most %d characters long", max),
		},
	}
}

func OneOf[T comparable](field string, value T, options ...T) Rule {
	return Rule{
		Check: func() bool {
			for _, o := range options {
				if value == o {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Rule:    "oneof",
			Message: fmt.Sprintf("must be one of: %v", options),
		},
	}
}

// Range validates min <= value <= max.
func Range[T Numeric](field string, value, min, max T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min && value <= max
		},
		Error: ValidationError{
			Field:   field,
			Rule:    "range",
			Message: fmt.Sprintf("must be between %v and %v", min, max),
		},
	}
}

func Min[T Numeric](field string, value, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:   field,
			Rule:    "min",
			Message: fmt.Sprintf("must be at least %v", min),
		},
	}
}

func NotEmpty[T any](field string, value []T) Rule {
	return Rule{
		Check: func() bool {
			return len(value) > 0
		},
		Error: ValidationError{
			Field:   field,
			Rule:    "required",
			Message: "must contain at least one item",
		},
	}
}

func NotZeroTime(field string, value time.Time) Rule {
	return Rule{
		Check: func() bool {
			return !value.IsZero()
		},
		Error: ValidationError{
			Field:   field,
			Rule:    "required",
			Message: "field is required",
		},
	}
}

// UUID validates the canonical 36 character UUID form.
func UUID(field, value string) Rule {
	return Rule{
		Check: func() bool {
			// uuid.Parse also accepts urn and braced forms
			if len(value) != 36 {
				return false
			}
			_, err := uuid.Parse(value)
			return err == nil
		},
		Error: ValidationError{
			Field:   field,
			Rule:    "uuid",
			Message: "must be a valid UUID",
		},
	}
}

// ObjectID validates a 24 character hex ObjectID.
func ObjectID(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := bson.ObjectIDFromHex(value)
			return err == nil
		},
		Error: ValidationError{
			Field:   field,
			Rule:    "objectid",
			Message: "must be a valid ObjectID",
		},
	}
}
