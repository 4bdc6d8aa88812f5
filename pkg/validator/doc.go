// Package validator provides the runtime validation used by mongostrict
// schemas.
//
// Two styles are supported and can be combined:
//
//   - declarative struct tags, evaluated by github.com/go-playground/validator
//     through Struct. Field names in errors use the bson key of the field
//     (falling back to the lowercased Go name, as the bson codec does), so
//     error paths match the stored document.
//   - small Rule values that pair a boolean Check with an error description,
//     evaluated with Apply. Rules are meant for checks that do not fit in a
//     tag, typically cross-field conditions.
//
// Both return ValidationErrors, a slice type that implements error and
// matches ErrValidationFailed with errors.Is.
//
// # Usage
//
//	type Reservation struct {
//		OnBehalf string    `bson:"onBehalf" validate:"required"`
//		Access   string    `bson:"access" validate:"oneof=VIP NORMAL"`
//		Seats    int       `bson:"seats" validate:"gte=1"`
//		OwnerID  string    `bson:"ownerId" validate:"objectid"`
//	}
//
//	if err := validator.Struct(r); err != nil {
//		for _, f := range validator.ExtractValidationErrors(err).Fields() {
//			// ...
//		}
//	}
//
//	err := validator.Apply(
//		validator.Required("onBehalf", r.OnBehalf),
//		validator.Range("seats", r.Seats, 1, 12),
//	)
//
// The package-level struct validator is built once and is safe for
// concurrent use. Rules hold no state.
package validator
