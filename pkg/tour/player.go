package tour

import (
	"context"
	"sync"

	"github.com/spotlight-tour/spotlight/pkg/errors"
	"github.com/spotlight-tour/spotlight/pkg/geom"
	"github.com/spotlight-tour/spotlight/pkg/host"
	"github.com/spotlight-tour/spotlight/pkg/observability"
)

// Phase is the playback state machine's phase.
type Phase string

// Playback phases.
const (
	// PhaseIdle means no steps are loaded; nothing renders.
	PhaseIdle Phase = "idle"

	// PhaseShowing means a step is current and its tooltip is visible.
	PhaseShowing Phase = "showing"

	// PhaseTransitioning means the step index has changed but the tooltip
	// is momentarily hidden while geometry is recomputed, so a stale
	// tooltip never flashes at the old position.
	PhaseTransitioning Phase = "transitioning"
)

// Snapshot is the externally visible playback state.
type Snapshot struct {
	Phase Phase `json:"phase"`

	// Index is the current step, or -1 when idle.
	Index int `json:"index"`

	// Count is the sequence length, for step-indicator controls.
	Count int `json:"count"`

	// Visible is the tooltip visibility flag. It is false during
	// transitions even though Index has already advanced.
	Visible bool `json:"visible"`

	// Layout is the computed overlay geometry, or nil when the step's
	// target could not be resolved (nothing is rendered for the step).
	Layout *geom.Layout `json:"layout,omitempty"`
}

// Resolver maps a step's target ID to its bounding box.
// The boolean is false when the ID cannot be resolved.
type Resolver func(targetID string) (geom.Rect, bool)

// Player is the playback state machine.
//
// Navigation wraps circularly and every transition into Showing recomputes
// geometry through the resolver. A resolution miss is fail-soft: the step
// stays current with a nil layout. Player methods are meant to be driven
// from a single event loop; each call fully applies before the next.
type Player struct {
	mu        sync.Mutex
	seq       Sequence
	container geom.Rect
	resolve   Resolver
	closed    bool

	state *Value[Snapshot]
}

// NewPlayer creates an idle player.
func NewPlayer() *Player {
	return &Player{
		state: NewValue(Snapshot{Phase: PhaseIdle, Index: -1}),
	}
}

// State returns the current playback snapshot.
func (p *Player) State() Snapshot {
	return p.state.Get()
}

// Subscribe registers fn for playback state changes and returns a cancel
// function. Transitions notify twice: once entering Transitioning (tooltip
// hidden), once entering Showing.
func (p *Player) Subscribe(fn func(Snapshot)) (cancel func()) {
	return p.state.Subscribe(fn)
}

// Count returns the loaded sequence length.
func (p *Player) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.seq.Len()
}

// Presentation returns the loaded sequence's presentation settings.
func (p *Player) Presentation() Presentation {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.seq.Presentation
}

// CurrentStep returns the current step, if any.
func (p *Player) CurrentStep() (Step, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	i := p.state.Get().Index
	if i < 0 || i >= p.seq.Len() {
		return Step{}, false
	}
	return p.seq.Steps[i], true
}

// Load replaces the player's sequence and shows the first step.
// An empty sequence leaves the player idle. Calls after Close are
// discarded so a teardown racing an in-flight load cannot mutate state.
func (p *Player) Load(seq Sequence, container geom.Rect, resolve Resolver) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.seq = seq
	p.container = container
	p.resolve = resolve
	n := seq.Len()
	p.mu.Unlock()

	if n == 0 {
		p.state.Set(Snapshot{Phase: PhaseIdle, Index: -1})
		return
	}
	p.transition(0)
}

// LoadFromGateway fetches settings from the host gateway, decodes the
// stored sequence, and loads it with a resolver backed by the gateway's
// object API. The fetch is the only asynchronous boundary: if ctx is
// cancelled before it completes, or the player was closed meanwhile, the
// result is discarded without touching playback state.
func (p *Player) LoadFromGateway(ctx context.Context, gw host.Gateway, container geom.Rect) error {
	settings, err := gw.All(ctx)
	if err != nil {
		return errors.Wrap(errors.ErrCodeHostUnavailable, err, "load tour settings")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	p.Load(DecodeSettings(settings), container, GatewayResolver(ctx, gw))
	return nil
}

// GatewayResolver adapts a host object source to a Resolver.
// Lookup errors resolve as misses; target resolution is fail-soft.
func GatewayResolver(ctx context.Context, src host.ObjectSource) Resolver {
	return func(targetID string) (geom.Rect, bool) {
		rect, ok, err := src.ObjectPosition(ctx, targetID)
		if err != nil || !ok {
			return geom.Rect{}, false
		}
		return rect, true
	}
}

// Next advances to the following step, wrapping to the first after the
// last. No-op when nothing is loaded.
func (p *Player) Next() {
	p.mu.Lock()
	n := p.seq.Len()
	i := p.state.Get().Index
	p.mu.Unlock()

	if n == 0 {
		return
	}
	p.transition((i + 1) % n)
}

// Previous moves to the preceding step, wrapping to the last before the
// first. No-op when nothing is loaded.
func (p *Player) Previous() {
	p.mu.Lock()
	n := p.seq.Len()
	i := p.state.Get().Index
	p.mu.Unlock()

	if n == 0 {
		return
	}
	p.transition((i - 1 + n) % n)
}

// JumpTo shows the step at index k. An out-of-range k is a caller
// contract violation and returns INVALID_INDEX without changing state.
func (p *Player) JumpTo(k int) error {
	p.mu.Lock()
	n := p.seq.Len()
	p.mu.Unlock()

	if k < 0 || k >= n {
		return errors.New(errors.ErrCodeInvalidIndex, "step index %d out of range [0,%d)", k, n)
	}
	p.transition(k)
	return nil
}

// Close permanently stops the player. Subsequent Load calls are discarded;
// this is the liveness guard for loads still in flight during teardown.
func (p *Player) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
}

// transition moves to step k: hide the tooltip, recompute geometry, show.
func (p *Player) transition(k int) {
	p.mu.Lock()
	if p.closed || k < 0 || k >= p.seq.Len() {
		p.mu.Unlock()
		return
	}
	step := p.seq.Steps[k]
	container := p.container
	resolve := p.resolve
	n := p.seq.Len()
	p.mu.Unlock()

	prev := p.state.Get()
	if prev.Phase == PhaseShowing {
		observability.Player().OnStepHidden(prev.Index)
	}
	p.state.Set(Snapshot{Phase: PhaseTransitioning, Index: k, Count: n, Visible: false})

	var layout *geom.Layout
	if resolve != nil {
		if rect, ok := resolve(step.TargetID); ok {
			l := geom.ComputeLayout(rect, container, step.Anchor)
			layout = &l
		}
	}
	if layout == nil {
		observability.Player().OnResolveMiss(k, step.TargetID)
	}

	p.state.Set(Snapshot{Phase: PhaseShowing, Index: k, Count: n, Visible: true, Layout: layout})
	observability.Player().OnStepShown(k, step.TargetID)
}
