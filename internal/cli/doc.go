// Package cli implements the spotlight command-line interface.
//
// This package provides commands for editing guided tours, playing them
// in the terminal, inspecting computed overlay geometry, and serving the
// HTTP control API. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - steps: List, add, remove, edit, and reorder tour steps
//   - play: Play a tour interactively in the terminal
//   - show: Print or render the computed overlay geometry for a step
//   - serve: Run the HTTP control API, optionally hot-reloading objects
//   - visualize: Render the tour as a flow diagram
//   - export / import: Move tours between the settings store and
//     JSON/YAML tour files
//
// # Configuration
//
// Commands read an optional TOML config (~/.config/spotlight/config.toml
// by default, overridable with --config) that selects the settings
// backend (memory, file, redis, mongo) and names the container objects
// file. Flags override config values.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context to allow structured progress
// tracking.
package cli
