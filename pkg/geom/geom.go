package geom

import "fmt"

// Layout constants, in container coordinate units.
const (
	// Pad is the gap between the target's edge and the tooltip box.
	Pad = 10.0

	// TooltipWidth is the fixed tooltip box width. Tooltip height is
	// intrinsic: the renderer sizes it to its text content.
	TooltipWidth = 300.0

	// seamOverlap extends the left/right masks vertically so they always
	// meet the top/bottom masks without a 1px seam at the target's edges.
	// It is a tiling tolerance, not a visual margin.
	seamOverlap = 0.1
)

// Rect is an axis-aligned rectangle. X and Y locate the top-left corner.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Drawable reports whether the rectangle encloses any area. Mask
// rectangles produced for targets outside the container can have negative
// width or height; renderers skip those instead of clamping.
func (r Rect) Drawable() bool {
	return r.Width > 0 && r.Height > 0
}

// String formats the rectangle for logs and test failures.
func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.Width, r.Height)
}

// Anchor names the side of the target the tooltip is placed against.
type Anchor string

// Anchor sides.
const (
	AnchorLeft   Anchor = "left"
	AnchorRight  Anchor = "right"
	AnchorTop    Anchor = "top"
	AnchorBottom Anchor = "bottom"
)

// Valid reports whether a is one of the four anchor sides.
func (a Anchor) Valid() bool {
	switch a {
	case AnchorLeft, AnchorRight, AnchorTop, AnchorBottom:
		return true
	}
	return false
}

// Mask holds the four dimming rectangles that cover the container except
// for the highlighted target.
type Mask struct {
	Top    Rect `json:"top"`
	Left   Rect `json:"left"`
	Right  Rect `json:"right"`
	Bottom Rect `json:"bottom"`
}

// Tooltip is the tooltip box position. Width is fixed; height is intrinsic
// and left to the renderer.
type Tooltip struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Width float64 `json:"width"`
}

// Layout is the full overlay geometry for one step.
type Layout struct {
	Mask    Mask    `json:"mask"`
	Tooltip Tooltip `json:"tooltip"`
}

// ComputeLayout computes the overlay geometry for a target inside a
// container, with the tooltip on the given anchor side.
//
// Both rectangles must be in the same absolute coordinate space; the
// container must have non-negative width and height. The function is total
// over numeric input: a target outside the container yields masks with
// negative dimensions (callers skip those, see [Rect.Drawable]) rather
// than an error.
//
// Unrecognized anchors fall back to bottom placement.
func ComputeLayout(target, container Rect, anchor Anchor) Layout {
	// Container-local target origin.
	adjX := target.X - container.X
	adjY := target.Y - container.Y

	mask := Mask{
		Top: Rect{
			X:      0,
			Y:      0,
			Width:  container.Width,
			Height: adjY,
		},
		Left: Rect{
			X:      0,
			Y:      adjY,
			Width:  adjX,
			Height: target.Height + seamOverlap,
		},
		Right: Rect{
			X:      adjX + target.Width,
			Y:      adjY,
			Width:  container.Width - (adjX + target.Width),
			Height: target.Height + seamOverlap,
		},
		Bottom: Rect{
			X:      0,
			Y:      adjY + target.Height,
			Width:  container.Width,
			Height: container.Height - (adjY + target.Height),
		},
	}

	return Layout{
		Mask:    mask,
		Tooltip: tooltipFor(target, adjX, adjY, anchor),
	}
}

// tooltipFor places the tooltip box relative to the target's container-local
// origin (adjX, adjY).
func tooltipFor(target Rect, adjX, adjY float64, anchor Anchor) Tooltip {
	t := Tooltip{Width: TooltipWidth}

	switch anchor {
	case AnchorRight:
		t.X = adjX + target.Width + Pad
		t.Y = adjY
	case AnchorLeft:
		// Clamped to the container's left edge so the tooltip never
		// renders off-screen. Width is not reduced when clamped, so the
		// box may overlap the target.
		t.X = max(adjX-TooltipWidth-3*Pad, 0)
		t.Y = adjY
	case AnchorTop:
		// The vertical offset is derived from the target's own height,
		// not its container-local position. Kept as-is for compatibility
		// with existing tours; see DESIGN.md.
		t.X = adjX
		t.Y = max(target.Height-3*Pad, 0)
	default: // AnchorBottom and anything unrecognized
		t.X = adjX
		t.Y = adjY + target.Height + Pad
	}

	return t
}
