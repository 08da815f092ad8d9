package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spotlight-tour/spotlight/pkg/geom"
	"github.com/spotlight-tour/spotlight/pkg/tour"
)

// Mask dim color. Transparency is the user-facing knob; the dim color
// itself is fixed at compositing time.
const maskFill = "#000000"

// Tooltip text metrics for the snapshot estimate. Hosts size tooltips
// from rendered content; the snapshot only needs a plausible box.
const (
	tooltipPadding   = 16.0
	tooltipLineH     = 20.0
	tooltipFontSize  = 14.0
	tooltipLineChars = 36
)

// OverlaySVG renders one step's computed overlay as a standalone SVG
// sized to the container. Masks with non-positive dimensions are
// skipped, matching the "not drawn" contract of [geom.Rect.Drawable].
func OverlaySVG(layout geom.Layout, container geom.Rect, step tour.Step, p tour.Presentation) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`+"\n",
		container.Width, container.Height, container.Width, container.Height)

	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.2f" height="%.2f" fill="white"/>`+"\n",
		container.Width, container.Height)

	opacity := p.MaskOpacity()
	for _, m := range []geom.Rect{layout.Mask.Top, layout.Mask.Left, layout.Mask.Right, layout.Mask.Bottom} {
		if !m.Drawable() {
			continue
		}
		fmt.Fprintf(&buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" fill-opacity="%.2f"/>`+"\n",
			m.X, m.Y, m.Width, m.Height, maskFill, opacity)
	}

	writeTooltip(&buf, layout.Tooltip, step, p)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func writeTooltip(buf *bytes.Buffer, t geom.Tooltip, step tour.Step, p tour.Presentation) {
	lines := wrapText(step.Text, tooltipLineChars)
	height := EstimateTooltipHeight(step.Text)

	fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="6" fill="%s" stroke="#d0d0d0"/>`+"\n",
		t.X, t.Y, t.Width, height, escape(p.BackgroundColor))

	for i, line := range lines {
		y := t.Y + tooltipPadding + float64(i+1)*tooltipLineH - (tooltipLineH-tooltipFontSize)/2
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family="%s" font-size="%.0f" fill="#333333">%s</text>`+"\n",
			t.X+tooltipPadding, y, escape(p.Font), tooltipFontSize, escape(line))
	}
}

// EstimateTooltipHeight approximates the rendered tooltip height for
// text at the standard tooltip width. Height is intrinsic to content in
// real hosts; snapshots use this estimate.
func EstimateTooltipHeight(text string) float64 {
	lines := len(wrapText(text, tooltipLineChars))
	if lines == 0 {
		lines = 1
	}
	return 2*tooltipPadding + float64(lines)*tooltipLineH
}

// wrapText greedily wraps text into lines of at most width characters.
// Words longer than the width get a line of their own.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	cur := words[0]
	for _, w := range words[1:] {
		if len(cur)+1+len(w) > width {
			lines = append(lines, cur)
			cur = w
			continue
		}
		cur += " " + w
	}
	return append(lines, cur)
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escape(s string) string {
	return xmlEscaper.Replace(s)
}
