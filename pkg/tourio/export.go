package tourio

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/spotlight-tour/spotlight/pkg/errors"
	"github.com/spotlight-tour/spotlight/pkg/tour"
)

// WriteJSON encodes a sequence as an indented JSON tour document.
// The output can be re-imported with [ReadJSON] for round-trip editing.
func WriteJSON(seq tour.Sequence, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fromSequence(seq)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode tour document")
	}
	return nil
}

// WriteYAML encodes a sequence as a YAML tour document.
func WriteYAML(seq tour.Sequence, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(fromSequence(seq)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode tour document")
	}
	return enc.Close()
}

// ExportFile writes a tour document to path, dispatching on the file
// extension the same way [ImportFile] does.
func ExportFile(seq tour.Sequence, path string) error {
	var write func(tour.Sequence, io.Writer) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		write = WriteJSON
	case ".yaml", ".yml":
		write = WriteYAML
	default:
		return errors.New(errors.ErrCodeInvalidTourFile, "unsupported tour file extension %q (want .json, .yaml, or .yml)", filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	defer f.Close()
	return write(seq, f)
}

func fromSequence(seq tour.Sequence) document {
	doc := document{Steps: make([]step, len(seq.Steps))}
	for i, s := range seq.Steps {
		doc.Steps[i] = step{
			Target:   s.TargetID,
			Text:     s.Text,
			Position: string(s.Anchor),
		}
	}

	// Default-valued presentation is omitted so minimal tours stay minimal.
	if p := seq.Presentation; p != tour.DefaultPresentation() {
		pct := p.TransparencyPercent
		doc.Presentation = &presentation{
			Font:            p.Font,
			BackgroundColor: p.BackgroundColor,
			Transparency:    &pct,
		}
	}
	return doc
}
