package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/spotlight-tour/spotlight/pkg/tour"
)

// DOT labels keep tooltip text readable without dwarfing the diagram.
const maxLabelChars = 40

// ToDOT lays a tour out as a Graphviz DOT chain for flow visualization.
// Each step becomes a box labeled with its position, target, and
// (truncated) tooltip text; a dashed back edge from the last step to
// the first shows the circular wrap. The resulting DOT string can be
// rendered with [RenderSVG].
func ToDOT(seq tour.Sequence) string {
	var buf bytes.Buffer
	buf.WriteString("digraph tour {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")

	for i, s := range seq.Steps {
		fmt.Fprintf(&buf, "  step%d [label=%q];\n", i, stepLabel(i, s))
	}

	buf.WriteString("\n")
	for i := 1; i < seq.Len(); i++ {
		fmt.Fprintf(&buf, "  step%d -> step%d;\n", i-1, i)
	}
	if seq.Len() > 1 {
		fmt.Fprintf(&buf, "  step%d -> step0 [style=dashed, constraint=false];\n", seq.Len()-1)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func stepLabel(i int, s tour.Step) string {
	text := s.Text
	if len(text) > maxLabelChars {
		text = strings.TrimSpace(text[:maxLabelChars]) + "…"
	}
	label := fmt.Sprintf("%d. %s (%s)", i+1, s.TargetID, s.Anchor)
	if text != "" {
		label += "\n" + text
	}
	return label
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// FlowSVG is a convenience wrapper combining [ToDOT] and [RenderSVG].
func FlowSVG(ctx context.Context, seq tour.Sequence) ([]byte, error) {
	return RenderSVG(ctx, ToDOT(seq))
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz SVG root element to a zero-based
// viewBox with explicit pixel dimensions, so the output embeds cleanly.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
