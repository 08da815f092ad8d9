// Package tour implements guided-tour authoring and playback.
//
// A tour is an ordered sequence of steps. Each step names a host object by
// opaque ID, carries tooltip text, and picks the anchor side the tooltip is
// placed on. The sequence also carries global presentation settings (font,
// tooltip background color, mask transparency).
//
// # Components
//
//   - [Store]: the authoring surface's mutable, ordered step collection
//     with append, delete, swap-reorder, and partial-update operations.
//   - [Player]: the playback state machine. It resolves each step's target
//     to a rectangle, computes overlay geometry via pkg/geom, and moves
//     between steps circularly.
//   - Settings codec: [EncodeSettings] and [DecodeSettings] translate
//     between a Sequence and the host's flat key-value settings encoding
//     (rowCount, tour{i}_object, tour{i}_text, tour{i}_position, ...).
//     The flat keys exist only at the persistence boundary; everything
//     else operates on the typed sequence.
//   - [Value]: a small observable state container (get/set/subscribe) that
//     keeps Store and Player independent of any rendering framework.
//
// # Playback states
//
// The player is Idle until a non-empty sequence is loaded. Each navigation
// passes through a momentary Transitioning phase with the tooltip hidden,
// then lands in Showing with freshly computed geometry. A step whose target
// no longer exists stays current with an empty layout; nothing is rendered
// for it and playback continues normally.
package tour
