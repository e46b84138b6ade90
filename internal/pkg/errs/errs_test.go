package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"orderhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	lockWait := errors.New("canceling statement due to lock timeout")

	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "not found",
			err:      errs.NewObjectNotFoundError("order", "ORD_00000042"),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: ORD_00000042",
		},
		{
			name:     "not found with cause",
			err:      errs.NewObjectNotFoundErrorWithCause("partner", "PTN_00000001", lockWait),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: param is: partner, ID is: PTN_00000001 (cause: canceling statement due to lock timeout)",
		},
		{
			name:     "invalid",
			err:      errs.NewValueIsInvalidError("notes"),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: notes",
		},
		{
			name:     "invalid with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("status", errors.New(`"LOST" is not a valid status`)),
			sentinel: errs.ErrValueIsInvalid,
			message:  `value is invalid: status (cause: "LOST" is not a valid status)`,
		},
		{
			name:     "required",
			err:      errs.NewValueIsRequiredError("tax id"),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: tax id",
		},
		{
			name:     "required with cause",
			err:      errs.NewValueIsRequiredErrorWithCause("product", errors.New("blank")),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: product (cause: blank)",
		},
		{
			name:     "out of range",
			err:      errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000000),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: 0 is quantity, min value is 1, max value is 1000000",
		},
		{
			name:     "out of range with cause",
			err:      errs.NewValueIsOutOfRangeErrorWithCause("notes length", 501, 0, 500, errors.New("too long")),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: 501 is notes length, min value is 0, max value is 500 (cause: too long)",
		},
		{
			name:     "already exists",
			err:      errs.NewObjectAlreadyExistsError("tax id", "12345678000195"),
			sentinel: errs.ErrObjectAlreadyExists,
			message:  "object already exists: tax id is 12345678000195",
		},
		{
			name:     "already exists with cause",
			err:      errs.NewObjectAlreadyExistsErrorWithCause("tax id", "12345678000195", errors.New("duplicate key")),
			sentinel: errs.ErrObjectAlreadyExists,
			message:  "object already exists: tax id is 12345678000195 (cause: duplicate key)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())
			require.ErrorIs(t, tt.err, tt.sentinel)
			require.ErrorIs(t, fmt.Errorf("handle: %w", tt.err), tt.sentinel)
		})
	}
}

func TestValueIsOutOfRangeError_FlattensNewlines(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("product", "steel\nbeam", 1, 100)

	assert.Contains(t, err.Error(), "steel beam")
	assert.NotContains(t, err.Error(), "\n")
}

func TestErrorFields(t *testing.T) {
	cause := errors.New("duplicate key")
	exists := errs.NewObjectAlreadyExistsErrorWithCause("tax id", "12345678000195", cause)
	assert.Equal(t, "tax id", exists.ParamName)
	assert.Equal(t, "12345678000195", exists.Value)
	assert.Equal(t, cause, exists.Cause)

	rng := errs.NewValueIsOutOfRangeError("public id length", 25, 1, 20)
	assert.Equal(t, 25, rng.Value)
	assert.Equal(t, 1, rng.Min)
	assert.Equal(t, 20, rng.Max)
	require.NoError(t, rng.Cause)
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		errs.ErrObjectNotFound,
		errs.ErrValueIsInvalid,
		errs.ErrValueIsOutOfRange,
		errs.ErrValueIsRequired,
		errs.ErrObjectAlreadyExists,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}
