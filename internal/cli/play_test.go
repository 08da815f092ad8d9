package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spotlight-tour/spotlight/pkg/geom"
	"github.com/spotlight-tour/spotlight/pkg/tour"
)

func playTestModel(targets ...string) playModel {
	steps := make([]tour.Step, len(targets))
	rects := make(map[string]geom.Rect, len(targets))
	for i, id := range targets {
		steps[i] = tour.NewStep(id, "about "+id, geom.AnchorRight)
		rects[id] = geom.Rect{X: float64(i) * 100, Y: 50, Width: 80, Height: 40}
	}

	p := tour.NewPlayer()
	p.Load(
		tour.Sequence{Steps: steps, Presentation: tour.DefaultPresentation()},
		geom.Rect{Width: 800, Height: 600},
		func(id string) (geom.Rect, bool) {
			r, ok := rects[id]
			return r, ok
		},
	)
	return newPlayModel(p, geom.Rect{Width: 800, Height: 600})
}

func key(s string) tea.KeyMsg {
	if s == "right" {
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	if s == "left" {
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPlayModelNavigation(t *testing.T) {
	m := playTestModel("a", "b", "c")

	m.Update(key("right"))
	if s := m.player.State(); s.Index != 1 {
		t.Errorf("after right: index = %d, want 1", s.Index)
	}

	m.Update(key("left"))
	if s := m.player.State(); s.Index != 0 {
		t.Errorf("after left: index = %d, want 0", s.Index)
	}

	// Wraps backwards from the first step.
	m.Update(key("left"))
	if s := m.player.State(); s.Index != 2 {
		t.Errorf("after wrap: index = %d, want 2", s.Index)
	}
}

func TestPlayModelNumberJump(t *testing.T) {
	m := playTestModel("a", "b", "c")

	m.Update(key("3"))
	if s := m.player.State(); s.Index != 2 {
		t.Errorf("after '3': index = %d, want 2", s.Index)
	}

	// Out-of-range jumps are ignored, not fatal.
	m.Update(key("9"))
	if s := m.player.State(); s.Index != 2 {
		t.Errorf("after '9': index = %d, want unchanged 2", s.Index)
	}
}

func TestPlayModelQuit(t *testing.T) {
	m := playTestModel("a")
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
}

func TestPlayModelView(t *testing.T) {
	m := playTestModel("kpi-1", "chart-1")

	view := m.View()
	if !strings.Contains(view, "step 1/2") {
		t.Errorf("view missing step indicator:\n%s", view)
	}
	if !strings.Contains(view, "kpi-1") || !strings.Contains(view, "about kpi-1") {
		t.Errorf("view missing step content:\n%s", view)
	}
	if !strings.Contains(view, "█") {
		t.Errorf("view missing container preview:\n%s", view)
	}
}

func TestRenderPreviewMarksHoleAndTooltip(t *testing.T) {
	container := geom.Rect{Width: 800, Height: 600}
	target := geom.Rect{X: 100, Y: 100, Width: 200, Height: 150}
	layout := geom.ComputeLayout(target, container, geom.AnchorRight)

	preview := renderPreview(&layout, container)
	if !strings.Contains(preview, "█") {
		t.Errorf("preview missing hole cells:\n%s", preview)
	}
	if !strings.Contains(preview, "▒") {
		t.Errorf("preview missing tooltip cells:\n%s", preview)
	}
	if got := strings.Count(preview, "\n"); got != previewRows+1 {
		t.Errorf("preview has %d lines, want %d", got, previewRows+1)
	}
}

func TestPlayModelViewUnresolvedTarget(t *testing.T) {
	p := tour.NewPlayer()
	p.Load(
		tour.Sequence{Steps: []tour.Step{tour.NewStep("ghost", "gone", geom.AnchorRight)}},
		geom.Rect{Width: 800, Height: 600},
		func(string) (geom.Rect, bool) { return geom.Rect{}, false },
	)
	m := newPlayModel(p, geom.Rect{Width: 800, Height: 600})

	if view := m.View(); !strings.Contains(view, "overlay hidden") {
		t.Errorf("view does not flag unresolved target:\n%s", view)
	}
}
