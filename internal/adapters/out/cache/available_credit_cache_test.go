package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"orderhub/internal/adapters/out/cache"
	"orderhub/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loader(calls *int, value kernel.Money) func(context.Context) (kernel.Money, error) {
	return func(context.Context) (kernel.Money, error) {
		*calls++
		return value, nil
	}
}

func TestAvailableCreditCache_LoadsOnceUntilInvalidated(t *testing.T) {
	c := cache.NewAvailableCreditCache(16, time.Minute)
	id := kernel.MustPublicIDFromString("PTN_00000001")
	calls := 0

	v, err := c.GetOrLoad(t.Context(), id, loader(&calls, kernel.MoneyFromInt(7000)))
	require.NoError(t, err)
	assert.True(t, v.Equal(kernel.MoneyFromInt(7000)))

	v, err = c.GetOrLoad(t.Context(), id, loader(&calls, kernel.MoneyFromInt(1)))
	require.NoError(t, err)
	assert.True(t, v.Equal(kernel.MoneyFromInt(7000)))
	assert.Equal(t, 1, calls)

	c.Invalidate(id)

	v, err = c.GetOrLoad(t.Context(), id, loader(&calls, kernel.MoneyFromInt(4000)))
	require.NoError(t, err)
	assert.True(t, v.Equal(kernel.MoneyFromInt(4000)))
	assert.Equal(t, 2, calls)
}

func TestAvailableCreditCache_LoadErrorIsNotCached(t *testing.T) {
	c := cache.NewAvailableCreditCache(16, time.Minute)
	id := kernel.MustPublicIDFromString("PTN_00000001")
	boom := errors.New("boom")

	_, err := c.GetOrLoad(t.Context(), id, func(context.Context) (kernel.Money, error) {
		return kernel.Money{}, boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, c.Len())
}

func TestAvailableCreditCache_InvalidateDuringLoadSkipsStore(t *testing.T) {
	c := cache.NewAvailableCreditCache(16, time.Minute)
	id := kernel.MustPublicIDFromString("PTN_00000001")

	v, err := c.GetOrLoad(t.Context(), id, func(context.Context) (kernel.Money, error) {
		c.Invalidate(id)
		return kernel.MoneyFromInt(10000), nil
	})
	require.NoError(t, err)
	assert.True(t, v.Equal(kernel.MoneyFromInt(10000)))
	assert.Equal(t, 0, c.Len())
}

func TestAvailableCreditCache_InvalidateOtherPartnerDuringLoadStillStores(t *testing.T) {
	c := cache.NewAvailableCreditCache(16, time.Minute)
	id := kernel.MustPublicIDFromString("PTN_00000001")
	other := kernel.MustPublicIDFromString("PTN_00000002")
	calls := 0

	v, err := c.GetOrLoad(t.Context(), id, func(context.Context) (kernel.Money, error) {
		calls++
		c.Invalidate(other)
		return kernel.MoneyFromInt(10000), nil
	})
	require.NoError(t, err)
	assert.True(t, v.Equal(kernel.MoneyFromInt(10000)))
	assert.Equal(t, 1, c.Len())

	_, err = c.GetOrLoad(t.Context(), id, loader(&calls, kernel.MoneyFromInt(1)))
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestAvailableCreditCache_Expires(t *testing.T) {
	c := cache.NewAvailableCreditCache(16, 20*time.Millisecond)
	id := kernel.MustPublicIDFromString("PTN_00000001")
	calls := 0

	_, err := c.GetOrLoad(t.Context(), id, loader(&calls, kernel.MoneyFromInt(1)))
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return c.Len() == 0 }, time.Second, 10*time.Millisecond)

	_, err = c.GetOrLoad(t.Context(), id, loader(&calls, kernel.MoneyFromInt(1)))
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}
