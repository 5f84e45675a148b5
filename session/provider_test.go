// ABOUTME: Tests for the session identity provider.
// ABOUTME: Validates token stability, reset, adoption, and store-failure degradation.

package session

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore errors on every operation, simulating an unavailable host store.
type failingStore struct{}

func (failingStore) Get(string) (string, error) { return "", errors.New("store unavailable") }
func (failingStore) Set(string, string) error   { return errors.New("store unavailable") }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProvider_GetOrCreate_StableAcrossCalls(t *testing.T) {
	provider := NewProvider(NewMemoryStore(), testLogger())

	first := provider.GetOrCreate()
	second := provider.GetOrCreate()

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestProvider_GetOrCreate_GeneratesUUID(t *testing.T) {
	provider := NewProvider(NewMemoryStore(), testLogger())

	token := provider.GetOrCreate()

	_, err := uuid.Parse(token)
	assert.NoError(t, err, "token should be a valid uuid")
}

func TestProvider_GetOrCreate_AdoptsPersistedToken(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set(storageKey, "persisted-token"))

	provider := NewProvider(store, testLogger())

	assert.Equal(t, "persisted-token", provider.GetOrCreate())
}

func TestProvider_GetOrCreate_PersistsNewToken(t *testing.T) {
	store := NewMemoryStore()
	provider := NewProvider(store, testLogger())

	token := provider.GetOrCreate()

	stored, err := store.Get(storageKey)
	require.NoError(t, err)
	assert.Equal(t, token, stored)
}

func TestProvider_GetOrCreate_DegradesWhenStoreFails(t *testing.T) {
	provider := NewProvider(failingStore{}, testLogger())

	// A broken store must never block token generation
	first := provider.GetOrCreate()
	second := provider.GetOrCreate()

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestProvider_Reset_ReturnsFreshToken(t *testing.T) {
	provider := NewProvider(NewMemoryStore(), testLogger())

	original := provider.GetOrCreate()
	fresh := provider.Reset()

	require.NotEmpty(t, fresh)
	assert.NotEqual(t, original, fresh)
	assert.Equal(t, fresh, provider.GetOrCreate())
}

func TestProvider_Reset_PersistsFreshToken(t *testing.T) {
	store := NewMemoryStore()
	provider := NewProvider(store, testLogger())
	provider.GetOrCreate()

	fresh := provider.Reset()

	stored, err := store.Get(storageKey)
	require.NoError(t, err)
	assert.Equal(t, fresh, stored)
}

func TestProvider_NilStoreDefaultsToMemory(t *testing.T) {
	provider := NewProvider(nil, testLogger())
	assert.NotEmpty(t, provider.GetOrCreate())
}

func TestMemoryStore_GetMissingKey(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Get("absent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set("k", "v"))

	value, err := store.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", value)
}
