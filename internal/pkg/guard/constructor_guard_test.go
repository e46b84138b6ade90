package guard_test

import (
	"errors"
	"testing"

	"orderhub/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errQueryNotConstructed = errors.New("query must be created via its constructor")

func TestConstructorGuard_Validate(t *testing.T) {
	tests := []struct {
		name  string
		guard guard.ConstructorGuard
		given error
		want  error
	}{
		{"constructed", guard.NewConstructorGuard(), errQueryNotConstructed, nil},
		{"constructed without error", guard.NewConstructorGuard(), nil, nil},
		{"zero value", guard.ConstructorGuard{}, errQueryNotConstructed, errQueryNotConstructed},
		{"zero value falls back to default", guard.ConstructorGuard{}, nil, guard.ErrDefaultConstructorGuard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.guard.Validate(tt.given)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, err)
		})
	}
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	errLineNotConstructed := errors.New("line must be created via newLine")

	type line struct {
		product string
		qty     int
		guard   guard.ConstructorGuard
	}

	newLine := func(product string, qty int) (line, error) {
		if product == "" {
			return line{}, errors.New("product is required")
		}
		if qty < 1 {
			return line{}, errors.New("qty must be positive")
		}
		return line{product: product, qty: qty, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed value passes", func(t *testing.T) {
		l, err := newLine("Steel beam", 2)

		require.NoError(t, err)
		require.NoError(t, l.guard.Validate(errLineNotConstructed))
	})

	t.Run("failed constructor returns unguarded zero value", func(t *testing.T) {
		l, err := newLine("", 2)

		require.Error(t, err)
		require.ErrorIs(t, l.guard.Validate(errLineNotConstructed), errLineNotConstructed)
	})
}
