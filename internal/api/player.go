package api

import (
	"context"
	"net/http"

	"github.com/spotlight-tour/spotlight/pkg/tour"
)

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.player.State())
}

// handleLoad loads the currently edited tour into the player, resolving
// targets through the host gateway. The resolver outlives this request
// (navigation recomputes geometry later), so it must not inherit the
// request's cancellation.
func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	resolverCtx := context.WithoutCancel(r.Context())
	s.player.Load(s.store.Sequence(), s.container, tour.GatewayResolver(resolverCtx, s.gateway))
	writeJSON(w, http.StatusOK, s.player.State())
}

func (s *Server) handleNext(w http.ResponseWriter, _ *http.Request) {
	s.player.Next()
	writeJSON(w, http.StatusOK, s.player.State())
}

func (s *Server) handlePrevious(w http.ResponseWriter, _ *http.Request) {
	s.player.Previous()
	writeJSON(w, http.StatusOK, s.player.State())
}

func (s *Server) handleJump(w http.ResponseWriter, r *http.Request) {
	i, err := pathIndex(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.player.JumpTo(i); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.player.State())
}
