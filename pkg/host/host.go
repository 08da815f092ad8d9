package host

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spotlight-tour/spotlight/pkg/geom"
)

// Backend names reported to observability hooks.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// SettingsStore is a flat key-value settings store with deferred commit.
//
// Set and Erase buffer mutations locally; All always returns the committed
// view. Commit applies buffered mutations in call order, so a Set followed
// by an Erase of the same key commits as an erase.
type SettingsStore interface {
	// All returns the committed settings as a flat key-value map.
	All(ctx context.Context) (map[string]string, error)

	// Set buffers a key-value write until the next Commit.
	Set(ctx context.Context, key, value string) error

	// Erase buffers a key removal until the next Commit.
	Erase(ctx context.Context, key string) error

	// Commit applies all buffered mutations.
	Commit(ctx context.Context) error

	// Close releases backend resources. Buffered mutations are discarded.
	Close() error
}

// ContainerObject describes one object on the hosting surface, as
// enumerated by the host's object API.
type ContainerObject struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Position struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	} `json:"position"`
	Size struct {
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
	} `json:"size"`
}

// Rect returns the object's bounding box.
func (o ContainerObject) Rect() geom.Rect {
	return geom.Rect{
		X:      o.Position.X,
		Y:      o.Position.Y,
		Width:  o.Size.Width,
		Height: o.Size.Height,
	}
}

// ObjectSource resolves opaque object IDs to bounding boxes.
type ObjectSource interface {
	// ListObjects enumerates the container's objects.
	ListObjects(ctx context.Context) ([]ContainerObject, error)

	// ObjectPosition returns the bounding box for an object ID.
	// The boolean is false when the ID is unknown; that is not an error.
	ObjectPosition(ctx context.Context, id string) (geom.Rect, bool, error)
}

// Gateway is the full host surface: settings persistence plus object
// enumeration.
type Gateway interface {
	SettingsStore
	ObjectSource
}

// gateway composes an independent settings store and object source.
type gateway struct {
	SettingsStore
	ObjectSource
}

// NewGateway combines a settings store and an object source into a Gateway.
func NewGateway(store SettingsStore, objects ObjectSource) Gateway {
	return &gateway{SettingsStore: store, ObjectSource: objects}
}

// =============================================================================
// ObjectMap - Static Object Source
// =============================================================================

// ObjectMap is an ObjectSource backed by a static list of objects, such as
// a snapshot exported from the host.
type ObjectMap struct {
	objects []ContainerObject
	byID    map[string]ContainerObject
}

// NewObjectMap creates an ObjectMap from a list of objects.
// Later duplicates of an ID win, matching host enumeration order.
func NewObjectMap(objects []ContainerObject) *ObjectMap {
	m := &ObjectMap{
		objects: append([]ContainerObject(nil), objects...),
		byID:    make(map[string]ContainerObject, len(objects)),
	}
	for _, o := range objects {
		m.byID[o.ID] = o
	}
	return m
}

// ListObjects returns the snapshot's objects in their original order.
func (m *ObjectMap) ListObjects(ctx context.Context) ([]ContainerObject, error) {
	return append([]ContainerObject(nil), m.objects...), nil
}

// ObjectPosition resolves an object ID against the snapshot.
func (m *ObjectMap) ObjectPosition(ctx context.Context, id string) (geom.Rect, bool, error) {
	o, ok := m.byID[id]
	if !ok {
		return geom.Rect{}, false, nil
	}
	return o.Rect(), true, nil
}

// ReadObjectsFile loads a container-object snapshot from a JSON file.
//
// The file holds an array of objects in the host's enumeration shape:
//
//	[{"id": "a", "name": "Sales", "type": "kpi",
//	  "position": {"x": 0, "y": 0}, "size": {"width": 200, "height": 100}}]
func ReadObjectsFile(path string) (*ObjectMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var objects []ContainerObject
	if err := json.Unmarshal(data, &objects); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return NewObjectMap(objects), nil
}

// pendingOp is one buffered settings mutation.
type pendingOp struct {
	key   string
	value string
	erase bool
}

// applyOps replays buffered mutations onto a committed map, in order.
func applyOps(committed map[string]string, ops []pendingOp) {
	for _, op := range ops {
		if op.erase {
			delete(committed, op.key)
		} else {
			committed[op.key] = op.value
		}
	}
}
