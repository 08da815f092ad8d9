// Package api implements the spotlight HTTP control surface.
//
// The server exposes the tour editor and the playback state machine over
// a small JSON API, so hosts and external tools can drive a tour without
// linking the Go packages directly. It is mounted by the serve command.
//
// # Routes
//
//	GET    /healthz                     liveness probe
//	GET    /api/state                   current playback snapshot
//	POST   /api/player/load             load the edited tour into the player
//	POST   /api/player/next             advance one step (wraps)
//	POST   /api/player/previous         go back one step (wraps)
//	POST   /api/player/jump/{index}     jump to a specific step
//	GET    /api/steps                   list steps
//	POST   /api/steps                   append a step
//	PATCH  /api/steps/{index}           update a step's fields
//	DELETE /api/steps/{index}           remove a step
//	POST   /api/steps/{index}/up        move a step earlier
//	POST   /api/steps/{index}/down      move a step later
//	GET    /api/steps/{index}/overlay.svg   rendered overlay snapshot
//	GET    /api/presentation            presentation settings
//	PUT    /api/presentation            replace presentation settings
//	GET    /api/flow.svg                tour flow diagram
//	POST   /api/save                    persist the tour to the settings store
//
// # Errors
//
// Failures return a JSON body {"error": {"code", "message"}} where code
// is the engine error code. Validation failures map to 400, unknown
// resources to 404, and unreachable backends to 503.
package api
