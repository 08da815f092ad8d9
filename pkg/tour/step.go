package tour

import (
	"github.com/google/uuid"

	"github.com/spotlight-tour/spotlight/pkg/geom"
)

// Step is one stop of a guided tour.
//
// TargetID references a host object by opaque identifier; it is resolved to
// a rectangle at render time, never stored as geometry. Ordering is carried
// by the step's position in its sequence, not by the step itself.
type Step struct {
	// ID is a synthetic identifier used only for UI key stability while a
	// tour is being edited. It is not persisted and carries no ordering.
	ID string `json:"-" yaml:"-"`

	TargetID string      `json:"target" yaml:"target"`
	Text     string      `json:"text" yaml:"text"`
	Anchor   geom.Anchor `json:"anchor" yaml:"anchor"`
}

// NewStep creates a step with a fresh synthetic ID.
func NewStep(targetID, text string, anchor geom.Anchor) Step {
	return Step{
		ID:       uuid.NewString(),
		TargetID: targetID,
		Text:     text,
		Anchor:   anchor,
	}
}

// Patch is a partial step update. Nil fields are left untouched.
type Patch struct {
	TargetID *string
	Text     *string
	Anchor   *geom.Anchor
}

// Presentation holds the tour's global display settings.
type Presentation struct {
	// Font is the tooltip font family.
	Font string `json:"font" yaml:"font"`

	// BackgroundColor is the tooltip surface color as a hex string.
	BackgroundColor string `json:"backgroundColor" yaml:"backgroundColor"`

	// TransparencyPercent is the dimming mask transparency on a 0-100
	// integer scale. It is converted to [0,1] only at the point of color
	// compositing; see [Presentation.MaskOpacity].
	TransparencyPercent int `json:"transparency" yaml:"transparency"`
}

// Presentation defaults.
const (
	DefaultFont            = "Roboto"
	DefaultBackgroundColor = "#f9f9f9"
	DefaultTransparency    = 30
)

// DefaultPresentation returns the presentation used when no settings are
// stored.
func DefaultPresentation() Presentation {
	return Presentation{
		Font:                DefaultFont,
		BackgroundColor:     DefaultBackgroundColor,
		TransparencyPercent: DefaultTransparency,
	}
}

// MaskOpacity converts TransparencyPercent to a [0,1] opacity for
// compositing the dimming mask. This is the single point where the 0-100
// scale leaves the model.
func (p Presentation) MaskOpacity() float64 {
	pct := min(max(p.TransparencyPercent, 0), 100)
	return 1 - float64(pct)/100
}

// Sequence is an ordered tour: its steps plus presentation settings.
// Array order is tour order and the only ordering key.
type Sequence struct {
	Steps        []Step       `json:"steps" yaml:"steps"`
	Presentation Presentation `json:"presentation" yaml:"presentation"`
}

// Len returns the number of steps.
func (s Sequence) Len() int { return len(s.Steps) }
