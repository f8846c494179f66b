package middleware_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/CakeVR/dialogic/pkg/adapters/memory"
	"github.com/CakeVR/dialogic/pkg/domain"
	"github.com/CakeVR/dialogic/pkg/persistence/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(b byte) []byte {
	return bytes.Repeat([]byte{b}, 32)
}

func sampleState() *domain.State {
	state := domain.NewState("princess")
	state.Visibility["face/eyes_happy"] = true
	state.Visibility["face/eyes_sad"] = false
	state.History = append(state.History, "set face/eyes_happy")
	return state
}

func TestEncryptionMiddleware_RoundTrip(t *testing.T) {
	ctx := context.Background()
	inner := memory.NewStore()
	store := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey: testKey(0x01),
	})(inner)

	original := sampleState()
	require.NoError(t, store.Save(ctx, "session-1", original))

	loaded, err := store.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, original.Character, loaded.Character)
	assert.Equal(t, original.Visibility, loaded.Visibility)
	assert.Equal(t, original.History, loaded.History)
}

func TestEncryptionMiddleware_StoreSeesOnlyEnvelope(t *testing.T) {
	ctx := context.Background()
	inner := memory.NewStore()
	store := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey: testKey(0x01),
	})(inner)

	require.NoError(t, store.Save(ctx, "session-1", sampleState()))

	raw, err := inner.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, "princess", raw.Character, "character stays in clear for listing")
	assert.Empty(t, raw.Visibility, "visibility must not leak to the store")
	require.Len(t, raw.History, 1)
	assert.NotContains(t, raw.History[0], "eyes_happy", "history must not leak to the store")
}

func TestEncryptionMiddleware_KeyRotation(t *testing.T) {
	ctx := context.Background()
	inner := memory.NewStore()
	oldKey := testKey(0x01)
	newKey := testKey(0x02)

	oldStore := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: oldKey})(inner)
	require.NoError(t, oldStore.Save(ctx, "session-1", sampleState()))

	rotated := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey:    newKey,
		FallbackKeys: [][]byte{oldKey},
	})(inner)

	loaded, err := rotated.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, "princess", loaded.Character)
}

func TestEncryptionMiddleware_WrongKeyFails(t *testing.T) {
	ctx := context.Background()
	inner := memory.NewStore()

	writer := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: testKey(0x01)})(inner)
	require.NoError(t, writer.Save(ctx, "session-1", sampleState()))

	reader := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: testKey(0xFF)})(inner)
	_, err := reader.Load(ctx, "session-1")
	assert.ErrorContains(t, err, "decrypt")
}

func TestEncryptionMiddleware_PlainStateFailsSecure(t *testing.T) {
	ctx := context.Background()
	inner := memory.NewStore()
	require.NoError(t, inner.Save(ctx, "session-1", sampleState()))

	store := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: testKey(0x01)})(inner)
	_, err := store.Load(ctx, "session-1")
	assert.ErrorContains(t, err, "envelope")
}

func TestEncryptionMiddleware_ShortKeyPanics(t *testing.T) {
	assert.Panics(t, func() {
		middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: []byte("short")})
	})
}
