// Package host models the dashboarding host that embeds a tour.
//
// The host contributes two things: a flat key-value settings store where a
// tour is persisted, and the set of container objects (widgets) whose
// bounding boxes tour steps highlight. Both are abstracted as interfaces so
// playback and authoring can run against a live host, a snapshot, or an
// in-memory fake in tests.
//
// # Settings stores
//
// [SettingsStore] implementations buffer Set/Erase mutations locally and
// apply them on Commit, matching the commit-as-future contract of the host
// API. Backends:
//   - memory: in-memory store for tests and development
//   - file: JSON file per tour under the user config directory
//   - redis: one Redis hash per tour for shared deployments
//   - mongo: one MongoDB document per tour
//
// All backends store the same flat encoding (rowCount, tour{i}_object,
// tour{i}_text, tour{i}_position, selectedFont, backgroundColor,
// transparency) and round-trip it byte for byte.
//
// # Object sources
//
// [ObjectSource] resolves opaque object IDs to bounding boxes. A live host
// implements it directly; [ObjectMap] serves a static snapshot, typically
// loaded from a JSON export with [ReadObjectsFile].
//
// # Usage
//
//	store, err := host.NewFileStore("", "onboarding")
//	if err != nil {
//	    return err
//	}
//	objects, err := host.ReadObjectsFile("sheet.json")
//	if err != nil {
//	    return err
//	}
//	gw := host.NewGateway(store, objects)
package host
