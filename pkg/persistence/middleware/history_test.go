package middleware_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/CakeVR/dialogic/pkg/adapters/memory"
	"github.com/CakeVR/dialogic/pkg/domain"
	"github.com/CakeVR/dialogic/pkg/persistence/middleware"
	"github.com/CakeVR/dialogic/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryLimitMiddleware_TrimsOldEntries(t *testing.T) {
	ctx := context.Background()
	inner := memory.NewStore()
	store := middleware.NewHistoryLimitMiddleware(2)(inner)

	state := domain.NewState("princess")
	for i := 0; i < 5; i++ {
		state.History = append(state.History, fmt.Sprintf("show layer_%d", i))
	}

	require.NoError(t, store.Save(ctx, "session-1", state))

	loaded, err := store.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"show layer_3", "show layer_4"}, loaded.History)

	// The caller's state is untouched.
	assert.Len(t, state.History, 5)
}

func TestHistoryLimitMiddleware_UnderLimitPassesThrough(t *testing.T) {
	ctx := context.Background()
	store := middleware.NewHistoryLimitMiddleware(10)(memory.NewStore())

	state := domain.NewState("princess")
	state.History = append(state.History, "show a", "hide b")

	require.NoError(t, store.Save(ctx, "session-1", state))

	loaded, err := store.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"show a", "hide b"}, loaded.History)
}

func TestMiddleware_StoreContract(t *testing.T) {
	store := middleware.Chain(memory.NewStore(),
		middleware.NewHistoryLimitMiddleware(100),
		middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: testKey(0x01)}),
	)
	tests.RunStateStoreContract(t, store)
}

func TestChain_OrderIsOutermostFirst(t *testing.T) {
	ctx := context.Background()
	inner := memory.NewStore()

	key := testKey(0x01)
	store := middleware.Chain(inner,
		middleware.NewHistoryLimitMiddleware(1),
		middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key}),
	)

	state := domain.NewState("princess")
	state.History = append(state.History, "show a", "hide b", "set c")

	require.NoError(t, store.Save(ctx, "session-1", state))

	loaded, err := store.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"set c"}, loaded.History, "trim happens before encryption")

	raw, err := inner.Load(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, raw.History, 1)
	assert.NotEqual(t, "set c", raw.History[0], "store still sees only the envelope")
}
