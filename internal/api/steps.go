package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/spotlight-tour/spotlight/pkg/errors"
	"github.com/spotlight-tour/spotlight/pkg/geom"
	"github.com/spotlight-tour/spotlight/pkg/render"
	"github.com/spotlight-tour/spotlight/pkg/tour"
)

type stepBody struct {
	Index    int    `json:"index"`
	Target   string `json:"target"`
	Text     string `json:"text"`
	Position string `json:"position"`
}

type stepRequest struct {
	Target   *string `json:"target"`
	Text     *string `json:"text"`
	Position *string `json:"position"`
}

func (s *Server) handleListSteps(w http.ResponseWriter, _ *http.Request) {
	steps := s.store.Steps()
	out := make([]stepBody, len(steps))
	for i, st := range steps {
		out[i] = stepBody{Index: i, Target: st.TargetID, Text: st.Text, Position: string(st.Anchor)}
	}
	writeJSON(w, http.StatusOK, map[string]any{"steps": out})
}

func (s *Server) handleAddStep(w http.ResponseWriter, r *http.Request) {
	var req stepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode step"))
		return
	}
	if req.Target == nil || *req.Target == "" {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "step target is required"))
		return
	}

	anchor := tour.DefaultAnchor
	if req.Position != nil && *req.Position != "" {
		anchor = geom.Anchor(*req.Position)
		if !anchor.Valid() {
			writeError(w, errors.New(errors.ErrCodeInvalidAnchor, "unknown position %q", *req.Position))
			return
		}
	}

	var text string
	if req.Text != nil {
		text = *req.Text
	}

	n := s.store.Add(tour.NewStep(*req.Target, text, anchor))
	writeJSON(w, http.StatusCreated, map[string]int{"count": n})
}

func (s *Server) handleUpdateStep(w http.ResponseWriter, r *http.Request) {
	i, err := pathIndex(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req stepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode step"))
		return
	}

	patch := tour.Patch{TargetID: req.Target, Text: req.Text}
	if req.Position != nil {
		anchor := geom.Anchor(*req.Position)
		if !anchor.Valid() {
			writeError(w, errors.New(errors.ErrCodeInvalidAnchor, "unknown position %q", *req.Position))
			return
		}
		patch.Anchor = &anchor
	}

	if err := s.store.Update(i, patch); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleRemoveStep(w http.ResponseWriter, r *http.Request) {
	i, err := pathIndex(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.store.RemoveAt(i); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": s.store.Len()})
}

func (s *Server) handleMoveUp(w http.ResponseWriter, r *http.Request) {
	s.handleMove(w, r, s.store.MoveUp)
}

func (s *Server) handleMoveDown(w http.ResponseWriter, r *http.Request) {
	s.handleMove(w, r, s.store.MoveDown)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request, move func(int) error) {
	i, err := pathIndex(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := move(i); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "moved"})
}

func (s *Server) handleOverlaySVG(w http.ResponseWriter, r *http.Request) {
	i, err := pathIndex(r)
	if err != nil {
		writeError(w, err)
		return
	}
	step, err := s.store.Step(i)
	if err != nil {
		writeError(w, err)
		return
	}

	rect, ok, err := s.gateway.ObjectPosition(r.Context(), step.TargetID)
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeHostUnavailable, err, "resolve target"))
		return
	}
	if !ok {
		writeError(w, errors.New(errors.ErrCodeTargetNotFound, "target %q not found in container", step.TargetID))
		return
	}

	layout := geom.ComputeLayout(rect, s.container, step.Anchor)
	svg := render.OverlaySVG(layout, s.container, step, s.store.Presentation())

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(svg)
}

func (s *Server) handleGetPresentation(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Presentation())
}

func (s *Server) handleSetPresentation(w http.ResponseWriter, r *http.Request) {
	var p tour.Presentation
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode presentation"))
		return
	}
	if err := errors.ValidateHexColor(p.BackgroundColor); err != nil {
		writeError(w, err)
		return
	}
	if err := errors.ValidateTransparency(p.TransparencyPercent); err != nil {
		writeError(w, err)
		return
	}

	s.store.SetPresentation(p)
	writeJSON(w, http.StatusOK, p)
}

func pathIndex(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "index")
	i, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "step index %q is not a number", raw)
	}
	return i, nil
}
