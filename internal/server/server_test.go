package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/goleak"

	"kore-engine/internal/config"
	"kore-engine/internal/model"
	"kore-engine/internal/session"
	"kore-engine/internal/testutil"
)

func newAPI(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.DefaultEngine()
	srv := httptest.NewServer(New(cfg, session.NewManager(cfg)).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func postDecide(t *testing.T, srv *httptest.Server, path string, req decideRequest) (*http.Response, decideResponse) {
	t.Helper()
	body, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	var decision decideResponse
	if resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(&decision); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return resp, decision
}

func idleState() model.GameState {
	state := testutil.State()
	state.Inventory = []model.Item{
		testutil.Stack("Red Potion", 15),
		testutil.Stack("Blue Potion", 15),
	}
	return *state
}

func TestDecideIdle(t *testing.T) {
	srv := newAPI(t)

	resp, decision := postDecide(t, srv, "/api/v1/decide", decideRequest{
		GameState: idleState(),
		RequestID: "req-123",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if decision.Action.Kind != model.ActionNone {
		t.Errorf("action = %v, want none", decision.Action.Kind)
	}
	if decision.Action.Reason != "No tier required action" {
		t.Errorf("reason = %q", decision.Action.Reason)
	}
	if decision.TierUsed != "reflex" {
		t.Errorf("tier_used = %q, want reflex", decision.TierUsed)
	}
	if decision.RequestID != "req-123" {
		t.Errorf("request_id = %q, want passthrough", decision.RequestID)
	}
	if decision.LatencyMS < 0 {
		t.Errorf("latency_ms = %d", decision.LatencyMS)
	}
}

func TestDecideFabricatesRequestID(t *testing.T) {
	srv := newAPI(t)

	_, decision := postDecide(t, srv, "/api/v1/decide", decideRequest{GameState: idleState()})
	if !strings.HasPrefix(decision.RequestID, "req_") {
		t.Errorf("request_id = %q, want fabricated req_ prefix", decision.RequestID)
	}
	if len(decision.RequestID) <= len("req_") {
		t.Errorf("request_id = %q, want a generated suffix", decision.RequestID)
	}
}

// Coordinator decisions are tactical and must surface as "rules" on the
// wire, keeping the four-value tier contract.
func TestDecideCombatReportsRulesTier(t *testing.T) {
	srv := newAPI(t)

	state := idleState()
	state.Monsters = []model.Monster{testutil.Aggressor("m1", "Wolf", 4)}

	_, decision := postDecide(t, srv, "/api/v1/decide", decideRequest{GameState: state})
	if decision.Action.IsNone() {
		t.Fatal("action = none, want a combat action")
	}
	if decision.TierUsed != "rules" {
		t.Errorf("tier_used = %q, want rules", decision.TierUsed)
	}
}

func TestDecideMalformedBody(t *testing.T) {
	srv := newAPI(t)

	resp, err := http.Post(srv.URL+"/api/v1/decide", "application/json", strings.NewReader("{nonsense"))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body["error"] == "" {
		t.Error("error body is empty")
	}
}

func TestDecideWrongMethod(t *testing.T) {
	srv := newAPI(t)

	resp, err := http.Get(srv.URL + "/api/v1/decide")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestHealth(t *testing.T) {
	srv := newAPI(t)

	for _, path := range []string{"/api/v1/health", "/health"} {
		t.Run(path, func(t *testing.T) {
			resp, err := http.Get(srv.URL + path)
			if err != nil {
				t.Fatalf("GET %s: %v", path, err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, want 200", resp.StatusCode)
			}

			var health struct {
				Status        string          `json:"status"`
				Components    map[string]bool `json:"components"`
				UptimeSeconds int64           `json:"uptime_seconds"`
				Version       string          `json:"version"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
				t.Fatalf("decode: %v", err)
			}

			if health.Status != "healthy" {
				t.Errorf("status = %q", health.Status)
			}
			if health.Version != Version {
				t.Errorf("version = %q, want %q", health.Version, Version)
			}
			if !health.Components["reflex_tier"] || !health.Components["coordinator_framework"] {
				t.Errorf("components = %v", health.Components)
			}
			if health.Components["ml_tier"] {
				t.Error("ml_tier reported healthy while the tier is disabled")
			}
			if health.UptimeSeconds < 0 {
				t.Errorf("uptime_seconds = %d", health.UptimeSeconds)
			}
		})
	}
}

func TestMetricsAccumulate(t *testing.T) {
	srv := newAPI(t)

	fetch := func() map[string]json.RawMessage {
		resp, err := http.Get(srv.URL + "/api/v1/metrics")
		if err != nil {
			t.Fatalf("GET metrics: %v", err)
		}
		defer resp.Body.Close()

		var m map[string]json.RawMessage
		if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
			t.Fatalf("decode metrics: %v", err)
		}
		return m
	}

	if got := string(fetch()["requests_total"]); got != "0" {
		t.Fatalf("requests_total = %s before any decide, want 0", got)
	}

	// One reflex emergency, one coordinator combat pick.
	emergency := idleState()
	emergency.Character.HP = 20
	emergency.Inventory = append(emergency.Inventory, testutil.Stack("White Potion", 1))
	postDecide(t, srv, "/api/v1/decide", decideRequest{GameState: emergency})

	combat := idleState()
	combat.Monsters = []model.Monster{testutil.Aggressor("m1", "Wolf", 4)}
	postDecide(t, srv, "/api/v1/decide", decideRequest{GameState: combat})

	m := fetch()
	if got := string(m["requests_total"]); got != "2" {
		t.Fatalf("requests_total = %s, want 2", got)
	}

	var byTier struct {
		Reflex       uint64 `json:"reflex"`
		Coordinators uint64 `json:"coordinators"`
		Rules        uint64 `json:"rules"`
	}
	if err := json.Unmarshal(m["requests_by_tier"], &byTier); err != nil {
		t.Fatalf("decode requests_by_tier: %v", err)
	}
	if byTier.Reflex != 1 || byTier.Coordinators != 1 || byTier.Rules != 0 {
		t.Errorf("requests_by_tier = %+v, want reflex 1 coordinators 1", byTier)
	}
}

func TestUnprefixedAliases(t *testing.T) {
	srv := newAPI(t)

	resp, decision := postDecide(t, srv, "/decide", decideRequest{GameState: idleState()})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("POST /decide status = %d, want 200", resp.StatusCode)
	}
	if decision.TierUsed != "reflex" {
		t.Errorf("tier_used = %q", decision.TierUsed)
	}

	mresp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer mresp.Body.Close()
	if mresp.StatusCode != http.StatusOK {
		t.Errorf("GET /metrics status = %d, want 200", mresp.StatusCode)
	}
}

func TestServerStartsAndShutsDown(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := config.DefaultEngine()
	cfg.Port = 0
	s := New(cfg, session.NewManager(cfg))

	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe() }()

	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("ListenAndServe: %v", err)
	}
}
