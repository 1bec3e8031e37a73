package skautsapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/riskibarqy/skauts-stats/internal/platform/logging"
	"github.com/riskibarqy/skauts-stats/internal/platform/resilience"
	"github.com/riskibarqy/skauts-stats/internal/usecase"
)

func newTestClient(t *testing.T, handler http.Handler, mutate func(*ClientConfig)) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := ClientConfig{
		BaseURL:      server.URL + "/",
		Timeout:      2 * time.Second,
		RetryBackoff: time.Millisecond,
		Logger:       logging.NewNop(),
	}
	if mutate != nil {
		mutate(&cfg)
	}
	return NewClient(cfg)
}

func TestPlayerRepository_ListByOrganization_DecodesPayload(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/Players/por-organizacao/7" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("unexpected authorization header %q", got)
		}
		_, _ = w.Write([]byte(`[
			{"id":1,"name":" Ana ","orgId":7,"roleId":2,"skill":4,"physique":null,"phone":"","email":"","imagePath":"a.png","birthDate":"2001-05-03T00:00:00","createdAt":"2024-01-02T10:11:12.1234567"},
			{"id":2,"name":"Bia","orgId":7,"roleId":1,"skill":null,"physique":null,"phone":"","email":"","imagePath":"","birthDate":null,"createdAt":"2024-01-02T10:11:12Z"}
		]`))
	}), func(cfg *ClientConfig) { cfg.Token = "secret" })

	players, err := NewPlayerRepository(client).ListByOrganization(context.Background(), 7)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("expected 2 players, got=%d", len(players))
	}
	if players[0].Name != "Ana" || players[0].OrgID != 7 {
		t.Fatalf("unexpected first player: %+v", players[0])
	}
	if players[0].Skill == nil || *players[0].Skill != 4 {
		t.Fatalf("expected skill=4, got=%v", players[0].Skill)
	}
	if players[0].BirthDate == nil || players[0].BirthDate.Year() != 2001 {
		t.Fatalf("expected birth date in 2001, got=%v", players[0].BirthDate)
	}
	if players[0].CreatedAt.IsZero() {
		t.Fatalf("expected created_at parsed from zone-less timestamp")
	}
	if players[1].BirthDate != nil {
		t.Fatalf("expected nil birth date, got=%v", players[1].BirthDate)
	}
}

func TestTeamRepository_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.NotFoundHandler(), nil)

	_, found, err := NewTeamRepository(client).GetByID(context.Background(), "t-1")
	if err != nil {
		t.Fatalf("expected clean miss, got err=%v", err)
	}
	if found {
		t.Fatalf("expected found=false")
	}
}

func TestMatchRepository_GetByID_FriendlyMatch(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":9,"orgId":7,"teamAId":"a","teamBId":"b","date":"2025-03-01T18:00:00","championshipId":null}`))
	}), nil)

	m, found, err := NewMatchRepository(client).GetByID(context.Background(), 9)
	if err != nil || !found {
		t.Fatalf("get match found=%v err=%v", found, err)
	}
	if !m.IsFriendly() {
		t.Fatalf("expected friendly match, got championship=%v", m.ChampionshipID)
	}
	if m.Date.Hour() != 18 {
		t.Fatalf("expected kickoff hour 18 UTC, got=%v", m.Date)
	}
}

func TestClient_RetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[{"id":10,"name":"Gol"}]`))
	}), func(cfg *ClientConfig) { cfg.MaxRetries = 2 })

	types, err := NewEventTypeRepository(client).List(context.Background())
	if err != nil {
		t.Fatalf("list event types: %v", err)
	}
	if len(types) != 1 || types[0].Name != "Gol" {
		t.Fatalf("unexpected event types: %+v", types)
	}
	if got := calls.Load(); got != 3 {
		t.Fatalf("expected 3 attempts, got=%d", got)
	}
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"title":"bad"}`))
	}), func(cfg *ClientConfig) { cfg.MaxRetries = 3 })

	_, err := NewRoleRepository(client).List(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	if errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("client errors must not be reported as unavailable: %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected a single attempt, got=%d", got)
	}
}

func TestClient_CircuitBreakerOpensOnTransientFailures(t *testing.T) {
	t.Parallel()

	var (
		calls       atomic.Int32
		mu          sync.Mutex
		transitions []resilience.CircuitState
	)
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}), func(cfg *ClientConfig) {
		cfg.CircuitBreaker = resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		}
		cfg.OnCircuitStateChange = func(name string, from, to resilience.CircuitState) {
			mu.Lock()
			defer mu.Unlock()
			transitions = append(transitions, to)
		}
	})

	repo := NewPrizeRepository(client)
	for i := 0; i < 2; i++ {
		_, err := repo.ListTypes(context.Background())
		if !errors.Is(err, usecase.ErrDependencyUnavailable) {
			t.Fatalf("attempt %d: expected dependency unavailable, got=%v", i, err)
		}
	}

	_, err := repo.ListTypes(context.Background())
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected rejection while open, got=%v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected open breaker to skip upstream, calls=%d", got)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(transitions) != 1 || transitions[0] != resilience.CircuitStateOpen {
		t.Fatalf("expected a single transition to open, got=%v", transitions)
	}
}

func TestClient_CallerCancellation(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		_, _ = w.Write([]byte(`[]`))
	}), nil)
	t.Cleanup(func() { close(release) })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEventRepository(client).ListByMatch(ctx, 3)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got=%v", err)
	}
}

func TestSanitizeSensitiveText(t *testing.T) {
	t.Parallel()

	got := sanitizeSensitiveText(`Get "http://x": header Authorization: Bearer abc123 rejected`, "abc123")
	if strings.Contains(got, "abc123") {
		t.Fatalf("token leaked: %s", got)
	}
}

func TestAbbreviateBody_KeepsRuneBoundary(t *testing.T) {
	t.Parallel()

	body := strings.Repeat("a", maxLoggedBodyBytes-1) + "ção inválida"
	got := abbreviateBody([]byte(body), "")
	if !utf8.ValidString(got) {
		t.Fatalf("expected valid utf-8, got %q", got)
	}
	if want := strings.Repeat("a", maxLoggedBodyBytes-1) + "..."; got != want {
		t.Fatalf("expected cut before the split rune, got %q", got)
	}

	short := "partida não encontrada"
	if got := abbreviateBody([]byte(short), ""); got != short {
		t.Fatalf("expected short body unchanged, got %q", got)
	}
}

func TestParseAPITime(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"2024-06-01T12:30:00":          true,
		"2024-06-01T12:30:00.1234567":  true,
		"2024-06-01T12:30:00-03:00":    true,
		"2024-06-01":                   true,
		"":                             false,
		"not a date":                   false,
	}
	for raw, ok := range cases {
		if got := !parseAPITime(raw).IsZero(); got != ok {
			t.Fatalf("parseAPITime(%q) parsed=%v want=%v", raw, got, ok)
		}
	}
}
