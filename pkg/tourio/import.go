package tourio

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/spotlight-tour/spotlight/pkg/errors"
	"github.com/spotlight-tour/spotlight/pkg/geom"
	"github.com/spotlight-tour/spotlight/pkg/tour"
)

// document is the on-disk tour structure, shared by JSON and YAML.
type document struct {
	Steps        []step        `json:"steps" yaml:"steps"`
	Presentation *presentation `json:"presentation,omitempty" yaml:"presentation,omitempty"`
}

type step struct {
	Target   string `json:"target" yaml:"target"`
	Text     string `json:"text,omitempty" yaml:"text,omitempty"`
	Position string `json:"position,omitempty" yaml:"position,omitempty"`
}

type presentation struct {
	Font            string `json:"font,omitempty" yaml:"font,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty" yaml:"backgroundColor,omitempty"`
	Transparency    *int   `json:"transparency,omitempty" yaml:"transparency,omitempty"`
}

// ReadJSON decodes a JSON tour document from r.
//
// The document is validated after decoding: every step needs a target,
// and a position field, when present, must name a known anchor. Errors
// carry the INVALID_TOUR_FILE code and identify the offending step by
// index.
func ReadJSON(r io.Reader) (tour.Sequence, error) {
	var doc document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return tour.Sequence{}, errors.Wrap(errors.ErrCodeInvalidTourFile, err, "decode tour document")
	}
	return doc.toSequence()
}

// ReadYAML decodes a YAML tour document from r. Validation matches
// [ReadJSON].
func ReadYAML(r io.Reader) (tour.Sequence, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return tour.Sequence{}, errors.Wrap(errors.ErrCodeInvalidTourFile, err, "decode tour document")
	}
	return doc.toSequence()
}

// ImportFile reads a tour document from path, dispatching on the file
// extension: .json uses [ReadJSON], .yaml and .yml use [ReadYAML]. Any
// other extension is rejected.
func ImportFile(path string) (tour.Sequence, error) {
	read, err := readerFor(path)
	if err != nil {
		return tour.Sequence{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return tour.Sequence{}, errors.Wrap(errors.ErrCodeInvalidTourFile, err, "open %s", path)
	}
	defer f.Close()

	seq, err := read(f)
	if err != nil {
		return tour.Sequence{}, errors.Wrap(errors.GetCode(err), err, "import %s", path)
	}
	return seq, nil
}

func readerFor(path string) (func(io.Reader) (tour.Sequence, error), error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ReadJSON, nil
	case ".yaml", ".yml":
		return ReadYAML, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidTourFile, "unsupported tour file extension %q (want .json, .yaml, or .yml)", filepath.Ext(path))
	}
}

func (d document) toSequence() (tour.Sequence, error) {
	steps := make([]tour.Step, 0, len(d.Steps))
	for i, s := range d.Steps {
		if s.Target == "" {
			return tour.Sequence{}, errors.New(errors.ErrCodeInvalidTourFile, "step %d: missing target", i)
		}
		anchor := tour.DefaultAnchor
		if s.Position != "" {
			anchor = geom.Anchor(s.Position)
			if !anchor.Valid() {
				return tour.Sequence{}, errors.New(errors.ErrCodeInvalidTourFile, "step %d: unknown position %q", i, s.Position)
			}
		}
		steps = append(steps, tour.NewStep(s.Target, s.Text, anchor))
	}

	p := tour.DefaultPresentation()
	if d.Presentation != nil {
		if d.Presentation.Font != "" {
			p.Font = d.Presentation.Font
		}
		if d.Presentation.BackgroundColor != "" {
			if err := errors.ValidateHexColor(d.Presentation.BackgroundColor); err != nil {
				return tour.Sequence{}, errors.Wrap(errors.ErrCodeInvalidTourFile, err, "presentation")
			}
			p.BackgroundColor = d.Presentation.BackgroundColor
		}
		if d.Presentation.Transparency != nil {
			if err := errors.ValidateTransparency(*d.Presentation.Transparency); err != nil {
				return tour.Sequence{}, errors.Wrap(errors.ErrCodeInvalidTourFile, err, "presentation")
			}
			p.TransparencyPercent = *d.Presentation.Transparency
		}
	}

	return tour.Sequence{Steps: steps, Presentation: p}, nil
}
