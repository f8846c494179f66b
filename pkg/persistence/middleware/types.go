// Package middleware wraps a ports.StateStore with cross-cutting behavior:
// encryption at rest and history trimming. Middlewares compose, innermost
// last, so the store only ever sees the fully transformed state.
package middleware

import "github.com/CakeVR/dialogic/pkg/ports"

// Middleware allows wrapping a StateStore to add behavior.
type Middleware func(ports.StateStore) ports.StateStore

// Chain applies middlewares to the store in order: the first middleware in
// the list becomes the outermost wrapper.
func Chain(store ports.StateStore, middlewares ...Middleware) ports.StateStore {
	for i := len(middlewares) - 1; i >= 0; i-- {
		store = middlewares[i](store)
	}
	return store
}
