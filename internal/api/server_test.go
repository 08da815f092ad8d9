package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spotlight-tour/spotlight/pkg/geom"
	"github.com/spotlight-tour/spotlight/pkg/host"
	"github.com/spotlight-tour/spotlight/pkg/tour"
)

var testContainer = geom.Rect{Width: 800, Height: 600}

func testServer(t *testing.T, steps ...string) (*Server, http.Handler) {
	t.Helper()

	gw := host.NewMemoryGateway()
	objects := make([]host.ContainerObject, len(steps))
	seq := tour.Sequence{Presentation: tour.DefaultPresentation()}
	for i, id := range steps {
		objects[i].ID = id
		objects[i].Position.X = float64(i) * 100
		objects[i].Position.Y = 50
		objects[i].Size.Width = 80
		objects[i].Size.Height = 40
		seq.Steps = append(seq.Steps, tour.NewStep(id, "about "+id, geom.AnchorRight))
	}
	gw.SetObjects(objects)

	srv := New(Config{
		Store:     tour.NewStore(seq),
		Player:    tour.NewPlayer(),
		Gateway:   gw,
		Container: testContainer,
	})
	return srv, srv.Router()
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body == "" {
		rd = bytes.NewReader(nil)
	} else {
		rd = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestHealth(t *testing.T) {
	_, h := testServer(t)
	rec := doJSON(t, h, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestStateIdleBeforeLoad(t *testing.T) {
	_, h := testServer(t, "a", "b")

	rec := doJSON(t, h, http.MethodGet, "/api/state", "")
	snap := decodeBody[tour.Snapshot](t, rec)
	if snap.Phase != tour.PhaseIdle || snap.Index != -1 {
		t.Errorf("snapshot = %+v, want idle", snap)
	}
}

func TestLoadAndNavigate(t *testing.T) {
	_, h := testServer(t, "a", "b", "c")

	rec := doJSON(t, h, http.MethodPost, "/api/player/load", "")
	snap := decodeBody[tour.Snapshot](t, rec)
	if snap.Phase != tour.PhaseShowing || snap.Index != 0 || snap.Count != 3 {
		t.Fatalf("after load: %+v", snap)
	}
	if snap.Layout == nil {
		t.Fatal("layout missing after load")
	}

	snap = decodeBody[tour.Snapshot](t, doJSON(t, h, http.MethodPost, "/api/player/next", ""))
	if snap.Index != 1 {
		t.Errorf("after next: index = %d, want 1", snap.Index)
	}

	snap = decodeBody[tour.Snapshot](t, doJSON(t, h, http.MethodPost, "/api/player/previous", ""))
	if snap.Index != 0 {
		t.Errorf("after previous: index = %d, want 0", snap.Index)
	}

	snap = decodeBody[tour.Snapshot](t, doJSON(t, h, http.MethodPost, "/api/player/jump/2", ""))
	if snap.Index != 2 {
		t.Errorf("after jump: index = %d, want 2", snap.Index)
	}
}

func TestJumpOutOfRange(t *testing.T) {
	_, h := testServer(t, "a")
	doJSON(t, h, http.MethodPost, "/api/player/load", "")

	rec := doJSON(t, h, http.MethodPost, "/api/player/jump/9", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	body := decodeBody[errorBody](t, rec)
	if body.Error.Code != "INVALID_INDEX" {
		t.Errorf("error code = %q, want INVALID_INDEX", body.Error.Code)
	}
}

func TestStepCRUD(t *testing.T) {
	_, h := testServer(t, "a", "b")

	rec := doJSON(t, h, http.MethodPost, "/api/steps", `{"target": "c", "text": "new step", "position": "top"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodPatch, "/api/steps/2", `{"text": "edited"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("patch status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodGet, "/api/steps", "")
	list := decodeBody[map[string][]stepBody](t, rec)
	steps := list["steps"]
	if len(steps) != 3 {
		t.Fatalf("steps = %d, want 3", len(steps))
	}
	if steps[2].Target != "c" || steps[2].Text != "edited" || steps[2].Position != "top" {
		t.Errorf("step 2 = %+v", steps[2])
	}

	rec = doJSON(t, h, http.MethodPost, "/api/steps/2/up", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("move status = %d", rec.Code)
	}
	rec = doJSON(t, h, http.MethodDelete, "/api/steps/0", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}

	steps = decodeBody[map[string][]stepBody](t, doJSON(t, h, http.MethodGet, "/api/steps", ""))["steps"]
	if len(steps) != 2 || steps[0].Target != "c" {
		t.Errorf("final steps = %+v", steps)
	}
}

func TestAddStepValidation(t *testing.T) {
	_, h := testServer(t)

	tests := []struct {
		name string
		body string
		code string
	}{
		{"missing target", `{"text": "no target"}`, "INVALID_INPUT"},
		{"bad position", `{"target": "a", "position": "diagonal"}`, "INVALID_ANCHOR"},
		{"malformed json", `{`, "INVALID_INPUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, h, http.MethodPost, "/api/steps", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if body := decodeBody[errorBody](t, rec); body.Error.Code != tt.code {
				t.Errorf("code = %q, want %q", body.Error.Code, tt.code)
			}
		})
	}
}

func TestOverlaySVGEndpoint(t *testing.T) {
	_, h := testServer(t, "a")

	rec := doJSON(t, h, http.MethodGet, "/api/steps/0/overlay.svg", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "<svg") {
		t.Error("body is not SVG")
	}
}

func TestOverlaySVGUnknownTarget(t *testing.T) {
	srv, h := testServer(t, "a")
	srv.store.Add(tour.NewStep("ghost", "gone", geom.AnchorRight))

	rec := doJSON(t, h, http.MethodGet, "/api/steps/1/overlay.svg", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestPresentationRoundTrip(t *testing.T) {
	_, h := testServer(t)

	rec := doJSON(t, h, http.MethodPut, "/api/presentation", `{"font": "Inter", "backgroundColor": "#ffffff", "transparency": 55}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("put status = %d: %s", rec.Code, rec.Body.String())
	}

	got := decodeBody[tour.Presentation](t, doJSON(t, h, http.MethodGet, "/api/presentation", ""))
	want := tour.Presentation{Font: "Inter", BackgroundColor: "#ffffff", TransparencyPercent: 55}
	if got != want {
		t.Errorf("presentation = %+v, want %+v", got, want)
	}
}

func TestPresentationValidation(t *testing.T) {
	_, h := testServer(t)

	rec := doJSON(t, h, http.MethodPut, "/api/presentation", `{"font": "Inter", "backgroundColor": "red", "transparency": 30}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSavePersistsTour(t *testing.T) {
	srv, h := testServer(t, "a", "b")

	rec := doJSON(t, h, http.MethodPost, "/api/save", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("save status = %d: %s", rec.Code, rec.Body.String())
	}

	loaded, err := tour.LoadSequence(context.Background(), srv.gateway)
	if err != nil {
		t.Fatalf("LoadSequence: %v", err)
	}
	if loaded.Len() != 2 || loaded.Steps[0].TargetID != "a" {
		t.Errorf("persisted tour = %+v", loaded)
	}
}
