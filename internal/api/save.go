package api

import (
	"net/http"

	"github.com/spotlight-tour/spotlight/pkg/errors"
	"github.com/spotlight-tour/spotlight/pkg/render"
	"github.com/spotlight-tour/spotlight/pkg/tour"
)

// handleSave persists the edited tour through the settings store.
func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	seq := s.store.Sequence()
	if err := tour.SaveSequence(r.Context(), s.gateway, seq); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"steps": seq.Len()})
}

// handleFlowSVG renders the edited tour as a flow diagram.
func (s *Server) handleFlowSVG(w http.ResponseWriter, r *http.Request) {
	svg, err := render.FlowSVG(r.Context(), s.store.Sequence())
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "render flow diagram"))
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(svg)
}
