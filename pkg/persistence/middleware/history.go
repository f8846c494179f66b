package middleware

import (
	"context"

	"github.com/CakeVR/dialogic/pkg/domain"
	"github.com/CakeVR/dialogic/pkg/ports"
)

type historyLimitMiddleware struct {
	next  ports.StateStore
	limit int
}

// NewHistoryLimitMiddleware creates a middleware that caps the directive
// history persisted per session, keeping the most recent entries. Long-lived
// preview sessions accumulate history without bound otherwise; the in-memory
// state handed to the engine is left untouched.
func NewHistoryLimitMiddleware(limit int) Middleware {
	if limit < 0 {
		panic("history limit must not be negative")
	}
	return func(next ports.StateStore) ports.StateStore {
		return &historyLimitMiddleware{next: next, limit: limit}
	}
}

func (m *historyLimitMiddleware) Save(ctx context.Context, sessionID string, state *domain.State) error {
	if len(state.History) <= m.limit {
		return m.next.Save(ctx, sessionID, state)
	}

	trimmed := state.Clone()
	trimmed.History = trimmed.History[len(trimmed.History)-m.limit:]
	return m.next.Save(ctx, sessionID, trimmed)
}

func (m *historyLimitMiddleware) Load(ctx context.Context, sessionID string) (*domain.State, error) {
	return m.next.Load(ctx, sessionID)
}

func (m *historyLimitMiddleware) Delete(ctx context.Context, sessionID string) error {
	return m.next.Delete(ctx, sessionID)
}

func (m *historyLimitMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}
