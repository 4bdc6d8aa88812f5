package validator_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/mongostrict/pkg/validator"
)

type address struct {
	City string `bson:"city" validate:"required"`
}

type reservation struct {
	ID       string        `bson:"id" validate:"required,uuid"`
	OnBehalf string        `bson:"onBehalf" validate:"required"`
	Access   string        `bson:"access" validate:"oneof=VIP NORMAL"`
	Seats    int           `bson:"seats" validate:"gte=1"`
	Groups   []string      `bson:"groupNames" validate:"min=1,dive,required"`
	OwnerID  string        `bson:"ownerId,omitempty" validate:"omitempty,objectid"`
	VenueID  bson.ObjectID `json:"venueId" validate:"objectid"`
	Address  address       `bson:"address"`
	Note     string        `validate:"max=5"`
}

func validReservation() reservation {
	return reservation{
		ID:       uuid.NewString(),
		OnBehalf: "Karmak",
		Access:   "NORMAL",
		Seats:    6,
		Groups:   []string{"Pedrito", "Juanito"},
		VenueID:  bson.NewObjectID(),
		Address:  address{City: "Lima"},
	}
}

func TestStruct(t *testing.T) {
	t.Run("accepts a valid value", func(t *testing.T) {
		r := validReservation()
		assert.NoError(t, validator.Struct(r))
		assert.NoError(t, validator.Struct(&r))
	})

	t.Run("reports failures by document path", func(t *testing.T) {
		r := reservation{
			ID:      "nope",
			Access:  "GOLD",
			Groups:  []string{"a", ""},
			OwnerID: "xyz",
			Note:    "too long",
		}

		err := validator.Struct(r)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)

		errs := validator.ExtractValidationErrors(err)
		require.NotNil(t, errs)
		assert.ElementsMatch(t, []string{
			"id", "onBehalf", "access", "seats", "groupNames[1]",
			"ownerId", "venueid", "address.city", "note",
		}, errs.Fields())

		byField := errs.ByField()
		assert.Equal(t, []string{"must be a valid UUID"}, byField["id"])
		assert.Equal(t, []string{"must be one of: VIP, NORMAL"}, byField["access"])
		assert.Equal(t, []string{"must be at most 5 characters"}, byField["note"])
		assert.Equal(t, []string{"must be a valid ObjectID"}, byField["venueid"])
	})

	t.Run("rejects non struct targets", func(t *testing.T) {
		assert.ErrorIs(t, validator.Struct("plain string"), validator.ErrInvalidTarget)
		assert.ErrorIs(t, validator.Struct(nil), validator.ErrInvalidTarget)
	})
}

func TestStruct_FieldNamesFollowBSONKeys(t *testing.T) {
	type payload struct {
		Label string `json:"label" validate:"required"`
		Skip  string `bson:"-" json:"skip" validate:"required"`
		Code  string `bson:"code,omitempty" json:"productCode" validate:"required"`
	}

	errs := validator.ExtractValidationErrors(validator.Struct(payload{}))
	require.NotNil(t, errs)

	// json tags do not name document fields.
	assert.ElementsMatch(t, []string{"label", "Skip", "code"}, errs.Fields())
}

type ticket struct {
	Number int `bson:"number" validate:"even"`
}

func TestRegisterValidation(t *testing.T) {
	err := validator.RegisterValidation("even", func(v any) bool {
		n, ok := v.(int)
		return ok && n%2 == 0
	})
	require.NoError(t, err)

	assert.NoError(t, validator.Struct(ticket{Number: 4}))

	errs := validator.ExtractValidationErrors(validator.Struct(ticket{Number: 3}))
	require.Len(t, errs, 1)
	assert.Equal(t, "number", errs[0].Field)
	assert.Equal(t, "even", errs[0].Rule)
	assert.Equal(t, `failed on the "even" rule`, errs[0].Message)
}
