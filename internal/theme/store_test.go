package theme

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client), mr
}

func TestStoreGetReturnsDefaultWhenEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	th, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultPrimaryColor, th.PrimaryColor)
	assert.Equal(t, DefaultSecondaryColor, th.SecondaryColor)
	assert.Equal(t, DefaultGradientDirection, th.GradientDirection)
	assert.Equal(t, DefaultSiteName, th.SiteName)
}

func TestStoreSetAndGet(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	saved := &Theme{
		SiteName:       "Madurai Cabs",
		PrimaryColor:   "#2563EB",
		SecondaryColor: "#0F172A",
	}
	require.NoError(t, store.Set(ctx, saved))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Madurai Cabs", got.SiteName)
	assert.Equal(t, "#2563EB", got.PrimaryColor)
	// unset fields are filled from the defaults
	assert.Equal(t, DefaultGradientDirection, got.GradientDirection)
	assert.Equal(t, DefaultLogo, got.Logo)
	assert.False(t, got.LastUpdated.IsZero())
}

func TestStoreGetCorruptPayload(t *testing.T) {
	store, mr := newTestStore(t)
	require.NoError(t, mr.Set(themeKey, "{not json"))

	_, err := store.Get(context.Background())
	require.Error(t, err)
}
