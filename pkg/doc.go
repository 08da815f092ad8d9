// Package pkg provides the core libraries of the Spotlight tour engine.
//
// # Overview
//
// Spotlight turns an ordered list of "highlight this element, say this"
// steps into a playable guided tour over a dashboarding host. The pkg
// directory is organized by concern:
//
//  1. [geom] - Overlay geometry (masks, tooltip placement)
//  2. [tour] - Steps, sequences, playback state machine, settings codec
//  3. [host] - Settings persistence backends and container object access
//  4. [tourio] - JSON/YAML tour file import and export
//  5. [render] - SVG overlay snapshots and flow diagrams
//  6. [errors] - Error codes and input validation
//  7. [observability] - Playback and store instrumentation hooks
//
// # Architecture
//
// The typical data flow through Spotlight:
//
//	Settings Store (file/redis/mongo)
//	         ↓
//	    [tour] package (decode settings → sequence, playback)
//	         ↓
//	    [geom] package (target rect → masks + tooltip)
//	         ↓
//	    [render] package or an embedding host (draw the overlay)
//
// The [host] package sits at both ends: it loads and commits the flat
// settings encoding and resolves step targets to bounding boxes.
//
// # Quick Start
//
//	gw := host.NewMemoryGateway()
//	player := tour.NewPlayer()
//	if err := player.LoadFromGateway(ctx, gw, container); err != nil {
//		return err
//	}
//	player.Next()
//
// [geom]: github.com/spotlight-tour/spotlight/pkg/geom
// [tour]: github.com/spotlight-tour/spotlight/pkg/tour
// [host]: github.com/spotlight-tour/spotlight/pkg/host
// [tourio]: github.com/spotlight-tour/spotlight/pkg/tourio
// [render]: github.com/spotlight-tour/spotlight/pkg/render
// [errors]: github.com/spotlight-tour/spotlight/pkg/errors
// [observability]: github.com/spotlight-tour/spotlight/pkg/observability
package pkg
