package observability

import (
	"errors"
	"testing"
	"time"
)

type recordingPlayerHooks struct {
	shown  []int
	hidden []int
	misses []string
}

func (r *recordingPlayerHooks) OnStepShown(index int, targetID string) {
	r.shown = append(r.shown, index)
}
func (r *recordingPlayerHooks) OnStepHidden(index int) {
	r.hidden = append(r.hidden, index)
}
func (r *recordingPlayerHooks) OnResolveMiss(index int, targetID string) {
	r.misses = append(r.misses, targetID)
}

type recordingStoreHooks struct {
	commits int
	lastErr error
}

func (r *recordingStoreHooks) OnLoad(string, int, error) {}
func (r *recordingStoreHooks) OnCommit(backend string, keys int, d time.Duration, err error) {
	r.commits++
	r.lastErr = err
}

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()

	// Must not panic.
	Player().OnStepShown(0, "obj-1")
	Player().OnStepHidden(0)
	Player().OnResolveMiss(1, "gone")
	Store().OnLoad("memory", 4, nil)
	Store().OnCommit("memory", 4, time.Millisecond, nil)
}

func TestSetPlayerHooks(t *testing.T) {
	defer Reset()

	rec := &recordingPlayerHooks{}
	SetPlayerHooks(rec)

	Player().OnStepShown(2, "chart")
	Player().OnStepHidden(2)
	Player().OnResolveMiss(3, "missing")

	if len(rec.shown) != 1 || rec.shown[0] != 2 {
		t.Errorf("shown = %v, want [2]", rec.shown)
	}
	if len(rec.hidden) != 1 || rec.hidden[0] != 2 {
		t.Errorf("hidden = %v, want [2]", rec.hidden)
	}
	if len(rec.misses) != 1 || rec.misses[0] != "missing" {
		t.Errorf("misses = %v, want [missing]", rec.misses)
	}
}

func TestSetStoreHooks(t *testing.T) {
	defer Reset()

	rec := &recordingStoreHooks{}
	SetStoreHooks(rec)

	wantErr := errors.New("commit failed")
	Store().OnCommit("redis", 7, time.Second, wantErr)

	if rec.commits != 1 {
		t.Errorf("commits = %d, want 1", rec.commits)
	}
	if rec.lastErr != wantErr {
		t.Errorf("lastErr = %v, want %v", rec.lastErr, wantErr)
	}
}

func TestSetNilHooksKeepsCurrent(t *testing.T) {
	defer Reset()

	rec := &recordingPlayerHooks{}
	SetPlayerHooks(rec)
	SetPlayerHooks(nil)

	Player().OnStepShown(0, "x")
	if len(rec.shown) != 1 {
		t.Errorf("shown = %v, want one entry after nil registration", rec.shown)
	}
}

func TestReset(t *testing.T) {
	rec := &recordingPlayerHooks{}
	SetPlayerHooks(rec)
	Reset()

	Player().OnStepShown(0, "x")
	if len(rec.shown) != 0 {
		t.Errorf("shown = %v, want empty after Reset", rec.shown)
	}
}
