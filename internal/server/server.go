// Package server exposes the decision engine over HTTP: one decide
// endpoint for the game client plus health and metrics probes.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"kore-engine/internal/config"
	"kore-engine/internal/model"
	"kore-engine/internal/session"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Server hosts the decision API.
type Server struct {
	cfg      config.Engine
	sessions *session.Manager
	mux      *http.ServeMux
	httpSrv  *http.Server
	started  time.Time
}

// New wires the handlers onto their routes. Every route is registered
// under /api/v1 and again unprefixed, so clients that skip the prefix
// keep working.
func New(cfg config.Engine, sessions *session.Manager) *Server {
	s := &Server{
		cfg:      cfg,
		sessions: sessions,
		mux:      http.NewServeMux(),
		started:  time.Now(),
	}

	for _, prefix := range []string{"/api/v1", ""} {
		s.mux.HandleFunc("POST "+prefix+"/decide", s.handleDecide)
		s.mux.HandleFunc("GET "+prefix+"/health", s.handleHealth)
		s.mux.HandleFunc("GET "+prefix+"/metrics", s.handleMetrics)
	}

	s.httpSrv = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      s.mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// Handler returns the route table, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe blocks serving the API until Shutdown or a listener
// failure.
func (s *Server) ListenAndServe() error {
	slog.Info("decision api listening", "addr", s.httpSrv.Addr)
	if err := s.httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests until the context expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

type decideRequest struct {
	GameState model.GameState `json:"game_state"`
	RequestID string          `json:"request_id"`
}

type decideResponse struct {
	Action    model.Action `json:"action"`
	TierUsed  string       `json:"tier_used"`
	LatencyMS int64        `json:"latency_ms"`
	RequestID string       `json:"request_id"`
}

func (s *Server) handleDecide(w http.ResponseWriter, r *http.Request) {
	var req decideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("malformed request: %v", err))
		return
	}
	if req.RequestID == "" {
		req.RequestID = "req_" + uuid.NewString()
	}

	state := req.GameState
	if state.TimestampMS == 0 {
		state.TimestampMS = time.Now().UnixMilli()
	}

	engine := s.sessions.Get(state.Character.Name)
	action, tier, elapsed := engine.Decide(r.Context(), &state)

	slog.Info("decision served",
		"request_id", req.RequestID,
		"character", state.Character.Name,
		"action", string(action.Kind),
		"tier", tier.String(),
		"latency_ms", elapsed.Milliseconds())

	writeJSON(w, http.StatusOK, decideResponse{
		Action:    action,
		TierUsed:  tier.WireName(),
		LatencyMS: elapsed.Milliseconds(),
		RequestID: req.RequestID,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "healthy",
		"components": map[string]bool{
			"reflex_tier":           true,
			"rules_tier":            true,
			"ml_tier":               false,
			"llm_tier":              true,
			"coordinator_framework": true,
		},
		"uptime_seconds": int64(time.Since(s.started).Seconds()),
		"version":        Version,
	})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.sessions.Stats())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
