package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	playground "github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	engine     *playground.Validate
	engineOnce sync.Once
)

func structEngine() *playground.Validate {
	engineOnce.Do(func() {
		v := playground.New(playground.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(documentFieldName)
		if err := v.RegisterValidation("objectid", isObjectID); err != nil {
			panic(fmt.Errorf("validator: register objectid: %w", err))
		}
		engine = v
	})
	return engine
}

// Struct validates the `validate` tags of a struct value.
// Failures are returned as ValidationErrors keyed by document field path,
// e.g. "address.city" or "groupNames[1]".
func Struct(v any) error {
	err := structEngine().Struct(v)
	if err == nil {
		return nil
	}

	var invalid *playground.InvalidValidationError
	if errors.As(err, &invalid) {
		return errors.Join(ErrInvalidTarget, err)
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			Field:   fieldPath(fe.Namespace()),
			Rule:    fe.Tag(),
			Message: describe(fe),
		})
	}
	return out
}

// RegisterValidation adds a custom struct tag to the shared engine.
func RegisterValidation(tag string, fn func(value any) bool) error {
	return structEngine().RegisterValidation(tag, func(fl playground.FieldLevel) bool {
		return fn(fl.Field().Interface())
	})
}

// documentFieldName mirrors the bson codec's key selection: the bson tag
// name, else the lowercased Go field name.
func documentFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("bson"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return strings.ToLower(fld.Name)
	}
	return name
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func isObjectID(fl playground.FieldLevel) bool {
	switch v := fl.Field().Interface().(type) {
	case bson.ObjectID:
		return !v.IsZero()
	case string:
		_, err := bson.ObjectIDFromHex(v)
		return err == nil
	}
	return false
}

func describe(fe playground.FieldError) string {
	param := fe.Param()
	unit := ""
	switch fe.Kind() {
	case reflect.String:
		unit = " characters"
	case reflect.Slice, reflect.Array, reflect.Map:
		unit = " items"
	}

	switch fe.Tag() {
	case "required":
		return "field is required"
	case "min":
		return fmt.Sprintf("must be at least %s%s", param, unit)
	case "max":
		return fmt.Sprintf("must be at most %s%s", param, unit)
	case "len":
		return fmt.Sprintf("must have length %s%s", param, unit)
	case "gt":
		return fmt.Sprintf("must be greater than %s", param)
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", param)
	case "lt":
		return fmt.Sprintf("must be less than %s", param)
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", param)
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.Join(strings.Fields(param), ", "))
	case "email":
		return "must be a valid email address"
	case "uuid", "uuid4", "uuid_rfc4122", "uuid4_rfc4122":
		return "must be a valid UUID"
	case "objectid":
		return "must be a valid ObjectID"
	}
	return fmt.Sprintf("failed on the %q rule", fe.Tag())
}
