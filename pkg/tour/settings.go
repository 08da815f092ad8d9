package tour

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spotlight-tour/spotlight/pkg/errors"
	"github.com/spotlight-tour/spotlight/pkg/geom"
	"github.com/spotlight-tour/spotlight/pkg/host"
)

// Reserved settings keys. Step fields use dynamic keys of the form
// tour{i}_object, tour{i}_text, tour{i}_position for i in [0, rowCount).
//
// The flat encoding exists for host compatibility only; it is decoded into
// a typed Sequence immediately on load and nothing outside this file
// touches the raw keys.
const (
	KeyRowCount        = "rowCount"
	KeySelectedFont    = "selectedFont"
	KeyBackgroundColor = "backgroundColor"
	KeyTransparency    = "transparency"
)

// DefaultAnchor is used when a stored step has no position field.
const DefaultAnchor = geom.AnchorRight

// stepKey builds the dynamic key for one step field.
func stepKey(i int, field string) string {
	return fmt.Sprintf("tour%d_%s", i, field)
}

// DecodeSettings turns a flat settings map into a typed sequence.
//
// Malformed settings are configuration errors and recover locally: a
// non-numeric or negative rowCount reads as zero steps, an unparsable
// transparency falls back to the default, and out-of-range transparency is
// clamped into [0,100]. Decoding never fails.
func DecodeSettings(settings map[string]string) Sequence {
	rows, err := strconv.Atoi(settings[KeyRowCount])
	if err != nil || rows < 0 {
		rows = 0
	}

	steps := make([]Step, 0, rows)
	for i := 0; i < rows; i++ {
		anchor := geom.Anchor(settings[stepKey(i, "position")])
		if anchor == "" {
			anchor = DefaultAnchor
		}
		steps = append(steps, NewStep(
			settings[stepKey(i, "object")],
			settings[stepKey(i, "text")],
			anchor,
		))
	}

	return Sequence{Steps: steps, Presentation: decodePresentation(settings)}
}

func decodePresentation(settings map[string]string) Presentation {
	p := DefaultPresentation()

	if font, ok := settings[KeySelectedFont]; ok && font != "" {
		p.Font = font
	}
	if color, ok := settings[KeyBackgroundColor]; ok && color != "" {
		p.BackgroundColor = color
	}
	if raw, ok := settings[KeyTransparency]; ok {
		if pct, err := strconv.Atoi(raw); err == nil {
			p.TransparencyPercent = min(max(pct, 0), 100)
		}
	}

	return p
}

// EncodeSettings turns a sequence into the flat settings encoding.
// Integers are encoded as plain decimal strings, so the encoding
// round-trips byte for byte.
func EncodeSettings(seq Sequence) map[string]string {
	settings := map[string]string{
		KeyRowCount:        strconv.Itoa(seq.Len()),
		KeySelectedFont:    seq.Presentation.Font,
		KeyBackgroundColor: seq.Presentation.BackgroundColor,
		KeyTransparency:    strconv.Itoa(seq.Presentation.TransparencyPercent),
	}
	for i, step := range seq.Steps {
		settings[stepKey(i, "object")] = step.TargetID
		settings[stepKey(i, "text")] = step.Text
		settings[stepKey(i, "position")] = string(step.Anchor)
	}
	return settings
}

// LoadSequence reads and decodes a tour from a settings store.
func LoadSequence(ctx context.Context, store host.SettingsStore) (Sequence, error) {
	settings, err := store.All(ctx)
	if err != nil {
		return Sequence{}, err
	}
	return DecodeSettings(settings), nil
}

// SaveSequence encodes a sequence into a settings store and commits.
//
// Step keys of rows beyond the new sequence length are erased so a
// shortened tour leaves no orphaned tour{i}_* entries behind.
func SaveSequence(ctx context.Context, store host.SettingsStore, seq Sequence) error {
	old, err := store.All(ctx)
	if err != nil {
		return err
	}

	for key, value := range EncodeSettings(seq) {
		if err := store.Set(ctx, key, value); err != nil {
			return err
		}
	}

	oldRows, convErr := strconv.Atoi(old[KeyRowCount])
	if convErr != nil || oldRows < 0 {
		oldRows = 0
	}
	for i := seq.Len(); i < oldRows; i++ {
		for _, field := range []string{"object", "text", "position"} {
			if err := store.Erase(ctx, stepKey(i, field)); err != nil {
				return err
			}
		}
	}

	if err := store.Commit(ctx); err != nil {
		return errors.Wrap(errors.ErrCodeCommitFailed, err, "save tour")
	}
	return nil
}
