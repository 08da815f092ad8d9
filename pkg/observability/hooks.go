// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about playback transitions and
// settings-store operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This keeps pkg/tour and pkg/host free of logging and metrics imports
// while still letting an application observe resolution misses, step
// transitions, and commit latency.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPlayerHooks(&myPlayerHooks{})
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Player().OnStepShown(index, targetID)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Player Hooks
// =============================================================================

// PlayerHooks receives events from tour playback.
type PlayerHooks interface {
	// OnStepShown fires when a step finishes its transition and becomes
	// visible.
	OnStepShown(index int, targetID string)

	// OnStepHidden fires when the tooltip is hidden at the start of a
	// transition.
	OnStepHidden(index int)

	// OnResolveMiss fires when a step's target ID cannot be resolved to a
	// rectangle. The step stays current with an empty layout.
	OnResolveMiss(index int, targetID string)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from settings-store operations.
type StoreHooks interface {
	// OnLoad records a settings load from a backend.
	OnLoad(backend string, keys int, err error)

	// OnCommit records a settings commit with its duration.
	OnCommit(backend string, keys int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPlayerHooks is a no-op implementation of PlayerHooks.
type NoopPlayerHooks struct{}

func (NoopPlayerHooks) OnStepShown(int, string)   {}
func (NoopPlayerHooks) OnStepHidden(int)          {}
func (NoopPlayerHooks) OnResolveMiss(int, string) {}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnLoad(string, int, error)                  {}
func (NoopStoreHooks) OnCommit(string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	playerHooks PlayerHooks = NoopPlayerHooks{}
	storeHooks  StoreHooks  = NoopStoreHooks{}
	hooksMu     sync.RWMutex
)

// SetPlayerHooks registers custom player hooks.
// This should be called once at application startup before playback begins.
func SetPlayerHooks(h PlayerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		playerHooks = h
	}
}

// SetStoreHooks registers custom store hooks.
// This should be called once at application startup before any store use.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// Player returns the registered player hooks.
func Player() PlayerHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return playerHooks
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	playerHooks = NoopPlayerHooks{}
	storeHooks = NoopStoreHooks{}
}
