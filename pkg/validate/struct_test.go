package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string  `form:"first_name" validate:"required"`
	Email  string  `json:"email" validate:"required,email"`
	Amount float64 `json:"amount" validate:"gt=0"`
	Kind   string  `json:"kind" validate:"oneof=regular emergency"`
}

func TestStruct(t *testing.T) {
	err := Struct(sample{Name: "Ana", Email: "ana@example.org", Amount: 10, Kind: "regular"})
	assert.NoError(t, err)

	err = Struct(sample{Email: "nope", Kind: "salary"})
	require.Error(t, err)

	var ve *Error
	require.True(t, errors.As(err, &ve))
	fields := map[string]string{}
	for _, f := range ve.Fields {
		fields[f.Field] = f.Message
	}
	assert.Equal(t, "is required", fields["first_name"])
	assert.Equal(t, "must be a valid email", fields["email"])
	assert.Equal(t, "must be greater than 0", fields["amount"])
	assert.Equal(t, "must be one of: regular emergency", fields["kind"])
	assert.Contains(t, err.Error(), "first_name is required")
}
