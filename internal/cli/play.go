package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/spotlight-tour/spotlight/pkg/geom"
	"github.com/spotlight-tour/spotlight/pkg/tour"
)

// playCommand creates the play command for interactive terminal playback.
func (c *CLI) playCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play the tour interactively in the terminal",
		Long: `Play the tour interactively in the terminal.

Steps are shown one at a time with their tooltip text and computed anchor.
Navigation wraps: advancing past the last step returns to the first.

Keys: →/l/space next · ←/h previous · 1-9 jump · q quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlay(cmd.Context())
		},
	}
}

func (c *CLI) runPlay(ctx context.Context) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	gw, err := c.openGateway(ctx, cfg)
	if err != nil {
		return err
	}
	defer gw.Close()

	player := tour.NewPlayer()
	defer player.Close()
	if err := player.LoadFromGateway(ctx, gw, cfg.containerRect()); err != nil {
		return err
	}
	if player.Count() == 0 {
		printInfo("tour %q is empty; add steps with 'spotlight steps add'", cfg.Tour)
		return nil
	}

	model := newPlayModel(player, cfg.containerRect())
	_, err = tea.NewProgram(model, tea.WithContext(ctx)).Run()
	return err
}

// =============================================================================
// PlayModel - Interactive Playback
// =============================================================================

var (
	playTooltipStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCyan).
		Padding(0, 1).
		Width(56)

	playTargetStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	playHoleStyle   = lipgloss.NewStyle().Foreground(colorCyan)
	playTipStyle    = lipgloss.NewStyle().Foreground(colorYellow)
)

// playModel is the bubbletea model for tour playback.
type playModel struct {
	player    *tour.Player
	container geom.Rect
}

func newPlayModel(p *tour.Player, container geom.Rect) playModel {
	return playModel{player: p, container: container}
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		key := msg.String()
		switch key {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", " ":
			m.player.Next()
		case "left", "h":
			m.player.Previous()
		default:
			if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
				// Number keys jump to a step; out-of-range jumps are ignored.
				_ = m.player.JumpTo(int(key[0] - '1'))
			}
		}
	}
	return m, nil
}

func (m playModel) View() string {
	var b strings.Builder

	s := m.player.State()
	step, ok := m.player.CurrentStep()

	b.WriteString(StyleTitle.Render("Spotlight Tour"))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(fmt.Sprintf("step %d/%d", s.Index+1, s.Count)))
	b.WriteString("\n\n")

	if !ok {
		b.WriteString(StyleDim.Render("nothing to show"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(playTargetStyle.Render(step.TargetID))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  anchored %s", step.Anchor)))
	b.WriteString("\n\n")

	text := step.Text
	if text == "" {
		text = StyleDim.Render("(no tooltip text)")
	}
	b.WriteString(playTooltipStyle.Render(text))
	b.WriteString("\n\n")

	if s.Layout == nil {
		b.WriteString(StyleWarning.Render("target not found in container; overlay hidden"))
		b.WriteString("\n\n")
	} else {
		b.WriteString(renderPreview(s.Layout, m.container))
		tip := s.Layout.Tooltip
		b.WriteString(StyleDim.Render(fmt.Sprintf("tooltip at (%.0f, %.0f), width %.0f", tip.X, tip.Y, tip.Width)))
		b.WriteString("\n\n")
	}
	b.WriteString(StyleDim.Render("→ next · ← previous · 1-9 jump · q quit"))
	b.WriteString("\n")

	return b.String()
}

const (
	previewCols = 48
	previewRows = 12
)

// renderPreview draws a scaled map of the container with the spotlight
// hole and the tooltip position marked.
func renderPreview(l *geom.Layout, container geom.Rect) string {
	if container.Width <= 0 || container.Height <= 0 {
		return ""
	}
	sx := container.Width / previewCols
	sy := container.Height / previewRows

	// The hole is whatever the four masks leave uncovered.
	hole := geom.Rect{
		X:      l.Mask.Left.Width,
		Y:      l.Mask.Top.Height,
		Width:  container.Width - l.Mask.Left.Width - l.Mask.Right.Width,
		Height: container.Height - l.Mask.Top.Height - l.Mask.Bottom.Height,
	}
	tip := geom.Rect{X: l.Tooltip.X, Y: l.Tooltip.Y, Width: l.Tooltip.Width, Height: 2 * sy}

	var b strings.Builder
	for row := 0; row < previewRows; row++ {
		for col := 0; col < previewCols; col++ {
			cx := (float64(col) + 0.5) * sx
			cy := (float64(row) + 0.5) * sy
			switch {
			case previewHit(hole, cx, cy):
				b.WriteString(playHoleStyle.Render("█"))
			case previewHit(tip, cx, cy):
				b.WriteString(playTipStyle.Render("▒"))
			default:
				b.WriteString(StyleDim.Render("·"))
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func previewHit(r geom.Rect, x, y float64) bool {
	return r.Drawable() && x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}
