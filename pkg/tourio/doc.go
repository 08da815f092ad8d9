// Package tourio provides JSON and YAML import and export for tour
// definitions.
//
// # Overview
//
// The flat key-value settings encoding used for host persistence is
// compact but unpleasant to author by hand. This package defines a
// structured document format for the same data, so tours can be kept in
// version control, reviewed, and loaded into any configured settings
// backend.
//
// # Document Format
//
// A tour document has a required "steps" array and an optional
// "presentation" object. In YAML:
//
//	steps:
//	  - target: kpi-1
//	    text: Revenue at a glance
//	    position: bottom
//	  - target: chart-1
//	    text: Trend over time
//	presentation:
//	  font: Inter
//	  backgroundColor: "#ffffff"
//	  transparency: 30
//
// The same structure applies in JSON. Step fields:
//
//   - target: host object ID the step highlights (required)
//   - text: tooltip body text
//   - position: tooltip anchor, one of left, right, top, bottom
//     (defaults to right when omitted)
//
// # Import
//
// Use [ImportFile] to read a tour from a path, dispatching on the file
// extension (.json, .yaml, .yml), or [ReadJSON] and [ReadYAML] to read
// from any io.Reader. Imports are validated: a step without a target or
// with an unknown position fails with an INVALID_TOUR_FILE error naming
// the offending step.
//
// # Export
//
// Use [ExportFile], [WriteJSON], or [WriteYAML]. Exports omit the
// presentation block when it equals the defaults, so minimal tours stay
// minimal. Round-trips preserve step order, text, and anchors; synthetic
// step IDs are ephemeral and never serialized.
package tourio
