package host

import (
	"context"
	"sync"
	"time"

	"github.com/spotlight-tour/spotlight/pkg/geom"
	"github.com/spotlight-tour/spotlight/pkg/observability"
)

// MemoryGateway is an in-memory Gateway for tests and development.
// The zero value is not usable; create instances with NewMemoryGateway.
type MemoryGateway struct {
	mu        sync.Mutex
	committed map[string]string
	pending   []pendingOp
	objects   *ObjectMap
	closed    bool
}

// NewMemoryGateway creates an empty in-memory gateway.
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{
		committed: make(map[string]string),
		objects:   NewObjectMap(nil),
	}
}

// SetObjects replaces the gateway's container objects.
func (g *MemoryGateway) SetObjects(objects []ContainerObject) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.objects = NewObjectMap(objects)
}

// SeedSettings replaces the committed settings wholesale, bypassing the
// pending buffer. Intended for test setup.
func (g *MemoryGateway) SeedSettings(settings map[string]string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.committed = make(map[string]string, len(settings))
	for k, v := range settings {
		g.committed[k] = v
	}
}

// All returns a copy of the committed settings.
func (g *MemoryGateway) All(ctx context.Context) (map[string]string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make(map[string]string, len(g.committed))
	for k, v := range g.committed {
		out[k] = v
	}
	observability.Store().OnLoad(BackendMemory, len(out), nil)
	return out, nil
}

// Set buffers a key-value write.
func (g *MemoryGateway) Set(ctx context.Context, key, value string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = append(g.pending, pendingOp{key: key, value: value})
	return nil
}

// Erase buffers a key removal.
func (g *MemoryGateway) Erase(ctx context.Context, key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = append(g.pending, pendingOp{key: key, erase: true})
	return nil
}

// Commit applies buffered mutations to the committed view.
func (g *MemoryGateway) Commit(ctx context.Context) error {
	start := time.Now()
	g.mu.Lock()
	defer g.mu.Unlock()

	applyOps(g.committed, g.pending)
	g.pending = nil
	observability.Store().OnCommit(BackendMemory, len(g.committed), time.Since(start), nil)
	return nil
}

// Close discards pending mutations.
func (g *MemoryGateway) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = nil
	g.closed = true
	return nil
}

// ListObjects enumerates the gateway's objects.
func (g *MemoryGateway) ListObjects(ctx context.Context) ([]ContainerObject, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.objects.ListObjects(ctx)
}

// ObjectPosition resolves an object ID.
func (g *MemoryGateway) ObjectPosition(ctx context.Context, id string) (geom.Rect, bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.objects.ObjectPosition(ctx, id)
}

var _ Gateway = (*MemoryGateway)(nil)
