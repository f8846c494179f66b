package tests

import (
	"context"
	"testing"
	"time"

	"github.com/CakeVR/dialogic/pkg/domain"
	"github.com/CakeVR/dialogic/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStateStoreContract runs a suite of tests to verify that a StateStore
// implementation adheres to the defined interface contract.
func RunStateStoreContract(t *testing.T, store ports.StateStore) {
	ctx := context.Background()
	sessionID := "contract-test-session-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		state := domain.NewState("princess")
		state.Visibility["torso"] = true
		state.Visibility["torso/scar_left"] = false
		state.History = append(state.History, "show torso")

		err := store.Save(ctx, sessionID, state)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, state.Character, loaded.Character)
		assert.Equal(t, true, loaded.Visibility["torso"])
		assert.Equal(t, false, loaded.Visibility["torso/scar_left"])
		assert.Equal(t, []string{"show torso"}, loaded.History)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Save Isolation", func(t *testing.T) {
		state := domain.NewState("princess")
		require.NoError(t, store.Save(ctx, sessionID, state))

		// Mutating after save must not leak into the stored copy.
		state.Visibility["eyepatch"] = true

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		_, ok := loaded.Visibility["eyepatch"]
		assert.False(t, ok, "store must hold an isolated copy")
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, sessionID, domain.NewState("princess"))
		require.NoError(t, err)

		err = store.Delete(ctx, sessionID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound, "Load after Delete should return ErrSessionNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := sessionID + "-1"
		id2 := sessionID + "-2"
		_ = store.Save(ctx, id1, domain.NewState("princess"))
		_ = store.Save(ctx, id2, domain.NewState("knight"))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		sessions, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, sessions, id1)
		assert.Contains(t, sessions, id2)
	})
}
