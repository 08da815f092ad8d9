// Package geom computes overlay geometry for a highlighted tour step.
//
// Given the bounding box of a target element, the bounding box of its
// container, and an anchor side, [ComputeLayout] produces the four mask
// rectangles that dim the container around the target and the position of
// the tooltip box next to it. The computation is a pure function: it holds
// no state, performs no I/O, and identical inputs always produce identical
// outputs.
//
// # Coordinate spaces
//
// Target and container rectangles are given in the same absolute coordinate
// space. All output rectangles are container-local: the target is first
// translated by the container's origin, and every mask and tooltip
// coordinate is relative to the container's top-left corner.
//
// # Masks
//
// The four masks tile the container minus the target footprint:
//
//	┌───────────────────────────┐
//	│           top             │
//	├──────┬────────────┬───────┤
//	│ left │   target   │ right │
//	├──────┴────────────┴───────┤
//	│          bottom           │
//	└───────────────────────────┘
//
// The left and right masks are extended vertically by a small seam overlap
// so the renderer never shows a hairline gap where they meet the top and
// bottom masks.
//
// A target that lies partially or fully outside the container produces mask
// rectangles with negative width or height. ComputeLayout does not clamp
// them; callers must treat such rectangles as "not drawn" (see [Rect.Drawable]).
package geom
