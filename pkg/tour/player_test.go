package tour

import (
	"context"
	"testing"

	"github.com/spotlight-tour/spotlight/pkg/errors"
	"github.com/spotlight-tour/spotlight/pkg/geom"
	"github.com/spotlight-tour/spotlight/pkg/host"
)

var testContainer = geom.Rect{X: 0, Y: 0, Width: 800, Height: 600}

// gridResolver places every known target on a fixed grid.
func gridResolver(known ...string) Resolver {
	rects := make(map[string]geom.Rect, len(known))
	for i, id := range known {
		rects[id] = geom.Rect{X: float64(i) * 100, Y: 50, Width: 80, Height: 40}
	}
	return func(targetID string) (geom.Rect, bool) {
		r, ok := rects[targetID]
		return r, ok
	}
}

func loadedPlayer(targets ...string) *Player {
	p := NewPlayer()
	p.Load(testSequence(targets...), testContainer, gridResolver(targets...))
	return p
}

func TestPlayerLoadShowsFirstStep(t *testing.T) {
	p := loadedPlayer("a", "b", "c")

	s := p.State()
	if s.Phase != PhaseShowing || s.Index != 0 || !s.Visible {
		t.Errorf("state = %+v, want Showing(0), visible", s)
	}
	if s.Count != 3 {
		t.Errorf("Count = %d, want 3", s.Count)
	}
	if s.Layout == nil {
		t.Fatal("Layout = nil, want computed geometry")
	}
	if s.Layout.Mask.Top.Width != testContainer.Width {
		t.Errorf("top mask width = %g, want %g", s.Layout.Mask.Top.Width, testContainer.Width)
	}
}

func TestPlayerEmptySequenceStaysIdle(t *testing.T) {
	p := NewPlayer()
	p.Load(Sequence{}, testContainer, gridResolver())

	if s := p.State(); s.Phase != PhaseIdle || s.Index != -1 || s.Layout != nil {
		t.Errorf("state = %+v, want Idle with no layout", s)
	}

	// Navigation on an empty sequence is a no-op.
	p.Next()
	p.Previous()
	if s := p.State(); s.Phase != PhaseIdle {
		t.Errorf("state after nav = %+v, want still Idle", s)
	}
}

func TestPlayerCircularNavigation(t *testing.T) {
	const n = 4
	p := loadedPlayer("a", "b", "c", "d")

	// next() called n times from index 0 returns to index 0.
	for i := 0; i < n; i++ {
		p.Next()
	}
	if s := p.State(); s.Index != 0 {
		t.Errorf("after %d Next calls index = %d, want 0", n, s.Index)
	}

	for i := 0; i < n; i++ {
		p.Previous()
	}
	if s := p.State(); s.Index != 0 {
		t.Errorf("after %d Previous calls index = %d, want 0", n, s.Index)
	}

	p.Previous()
	if s := p.State(); s.Index != n-1 {
		t.Errorf("Previous from 0 wrapped to %d, want %d", s.Index, n-1)
	}
}

func TestPlayerSingleStepWraps(t *testing.T) {
	p := loadedPlayer("only")

	p.Next()
	if s := p.State(); s.Index != 0 || s.Phase != PhaseShowing {
		t.Errorf("state = %+v, want Showing(0)", s)
	}
}

func TestPlayerJumpTo(t *testing.T) {
	p := loadedPlayer("a", "b", "c")

	if err := p.JumpTo(2); err != nil {
		t.Fatalf("JumpTo(2): %v", err)
	}
	if s := p.State(); s.Index != 2 {
		t.Errorf("index = %d, want 2", s.Index)
	}

	for _, k := range []int{-1, 3} {
		if err := p.JumpTo(k); !errors.Is(err, errors.ErrCodeInvalidIndex) {
			t.Errorf("JumpTo(%d) err = %v, want INVALID_INDEX", k, err)
		}
	}
	if s := p.State(); s.Index != 2 {
		t.Errorf("index after invalid jumps = %d, want unchanged 2", s.Index)
	}
}

func TestPlayerTransitionHidesTooltip(t *testing.T) {
	p := loadedPlayer("a", "b")

	var phases []Phase
	var visibles []bool
	cancel := p.Subscribe(func(s Snapshot) {
		phases = append(phases, s.Phase)
		visibles = append(visibles, s.Visible)
	})
	defer cancel()

	p.Next()

	if len(phases) != 2 || phases[0] != PhaseTransitioning || phases[1] != PhaseShowing {
		t.Fatalf("phases = %v, want [transitioning showing]", phases)
	}
	if visibles[0] || !visibles[1] {
		t.Errorf("visibility = %v, want [false true]", visibles)
	}
}

func TestPlayerResolveMissIsFailSoft(t *testing.T) {
	p := NewPlayer()
	seq := testSequence("known", "ghost")
	p.Load(seq, testContainer, gridResolver("known"))

	p.Next() // step 1 references an unknown target

	s := p.State()
	if s.Phase != PhaseShowing || s.Index != 1 {
		t.Errorf("state = %+v, want Showing(1)", s)
	}
	if s.Layout != nil {
		t.Error("Layout != nil for unresolved target, want empty layout")
	}

	// Playback continues normally past the broken step.
	p.Next()
	if s := p.State(); s.Index != 0 || s.Layout == nil {
		t.Errorf("state = %+v, want Showing(0) with layout", s)
	}
}

func TestPlayerNilResolver(t *testing.T) {
	p := NewPlayer()
	p.Load(testSequence("a"), testContainer, nil)

	if s := p.State(); s.Phase != PhaseShowing || s.Layout != nil {
		t.Errorf("state = %+v, want Showing with empty layout", s)
	}
}

func TestPlayerCloseDiscardsLoad(t *testing.T) {
	p := NewPlayer()
	p.Close()

	// A load resolving after teardown must not mutate state.
	p.Load(testSequence("a"), testContainer, gridResolver("a"))

	if s := p.State(); s.Phase != PhaseIdle {
		t.Errorf("state after Load on closed player = %+v, want Idle", s)
	}
}

func TestPlayerCurrentStep(t *testing.T) {
	p := NewPlayer()
	if _, ok := p.CurrentStep(); ok {
		t.Error("idle player has a current step")
	}

	p.Load(testSequence("a", "b"), testContainer, gridResolver("a", "b"))
	p.Next()
	step, ok := p.CurrentStep()
	if !ok || step.TargetID != "b" {
		t.Errorf("CurrentStep = %+v, %v, want step b", step, ok)
	}
}

func TestPlayerLoadFromGateway(t *testing.T) {
	ctx := context.Background()
	gw := host.NewMemoryGateway()
	gw.SeedSettings(map[string]string{
		"rowCount":       "2",
		"tour0_object":   "kpi-1",
		"tour0_text":     "Revenue at a glance",
		"tour0_position": "bottom",
		"tour1_object":   "chart-1",
		"tour1_text":     "Trend over time",
		"tour1_position": "left",
	})
	var kpi, chart host.ContainerObject
	kpi.ID = "kpi-1"
	kpi.Position.X = 40
	kpi.Size.Width = 200
	kpi.Size.Height = 100
	chart.ID = "chart-1"
	chart.Position.X = 260
	chart.Size.Width = 400
	chart.Size.Height = 300
	gw.SetObjects([]host.ContainerObject{kpi, chart})

	p := NewPlayer()
	if err := p.LoadFromGateway(ctx, gw, testContainer); err != nil {
		t.Fatalf("LoadFromGateway: %v", err)
	}

	s := p.State()
	if s.Phase != PhaseShowing || s.Index != 0 || s.Count != 2 {
		t.Errorf("state = %+v", s)
	}
	if s.Layout == nil {
		t.Fatal("Layout = nil")
	}
	step, _ := p.CurrentStep()
	if step.Anchor != geom.AnchorBottom {
		t.Errorf("anchor = %q, want bottom", step.Anchor)
	}
}

func TestPlayerLoadFromGatewayCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPlayer()
	err := p.LoadFromGateway(ctx, host.NewMemoryGateway(), testContainer)
	if err == nil {
		t.Fatal("LoadFromGateway on cancelled ctx = nil, want error")
	}
	if s := p.State(); s.Phase != PhaseIdle {
		t.Errorf("state = %+v, want untouched Idle", s)
	}
}
