// Package render turns computed overlay geometry into visual outputs.
//
// # Overview
//
// The overlay itself is drawn by whatever host embeds the engine; this
// package exists for everything around that: inspecting a step's
// geometry without a host, documenting a tour, and debugging layout
// issues from the command line. It provides:
//
//   - Overlay snapshots: a single step rendered as a standalone SVG,
//     with the four dimming masks, the highlight cutout, and the
//     tooltip drawn at their computed positions ([OverlaySVG])
//   - Flow diagrams: the whole tour rendered as a step-by-step chain
//     via Graphviz ([ToDOT], [RenderSVG], [FlowSVG])
//
// # Overlay Snapshots
//
// [OverlaySVG] takes a computed [geom.Layout] plus the step and
// presentation it belongs to and emits an SVG sized to the container.
// Masks are filled black at the opacity derived from the presentation's
// transparency; the tooltip is drawn as a rounded box using the
// configured font and background color. Tooltip height in the snapshot
// is an estimate from line-wrapped text; real hosts size the tooltip
// from its rendered content.
//
// # Flow Diagrams
//
// [ToDOT] lays the tour out as a directed chain, one node per step,
// with a dashed back edge showing the circular wrap from the last step
// to the first. [RenderSVG] rasterizes DOT through Graphviz:
//
//	dot := render.ToDOT(seq)
//	svg, err := render.RenderSVG(dot)
package render
