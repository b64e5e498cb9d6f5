package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/orveth/blaze/internal/api"
)

// fakeBoard is an in-memory board API used to drive the CLI end to end.
type fakeBoard struct {
	mu    sync.Mutex
	cards []api.Card
	plans []api.Plan
}

func (b *fakeBoard) findCard(id string) (int, bool) {
	for i, card := range b.cards {
		if card.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (b *fakeBoard) findPlan(id string) (int, bool) {
	for i, plan := range b.plans {
		if plan.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (b *fakeBoard) server(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeBody(t, w, api.HealthResponse{Status: "ok"})
	})

	mux.HandleFunc("GET /api/cards", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		column := r.URL.Query().Get("column")
		out := make([]api.Card, 0, len(b.cards))
		for _, card := range b.cards {
			if column != "" && card.Column.String() != column {
				continue
			}
			out = append(out, card)
		}
		writeBody(t, w, out)
	})

	mux.HandleFunc("POST /api/cards", func(w http.ResponseWriter, r *http.Request) {
		var create api.CardCreate
		if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
			t.Errorf("decode create request: %v", err)
		}
		card := api.Card{
			ID:        "fed123456789",
			Title:     create.Title,
			Priority:  create.Priority,
			Column:    create.Column,
			DueDate:   create.DueDate,
			Tags:      create.Tags,
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		}
		b.mu.Lock()
		b.cards = append(b.cards, card)
		b.mu.Unlock()
		writeBody(t, w, card)
	})

	mux.HandleFunc("GET /api/cards/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		i, ok := b.findCard(r.PathValue("id"))
		if !ok {
			http.Error(w, `{"detail":"card not found"}`, http.StatusNotFound)
			return
		}
		writeBody(t, w, b.cards[i])
	})

	mux.HandleFunc("PUT /api/cards/{id}", func(w http.ResponseWriter, r *http.Request) {
		var update api.CardUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			t.Errorf("decode update request: %v", err)
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		i, ok := b.findCard(r.PathValue("id"))
		if !ok {
			http.Error(w, `{"detail":"card not found"}`, http.StatusNotFound)
			return
		}
		if update.Title != nil {
			b.cards[i].Title = *update.Title
		}
		if update.Priority != nil {
			b.cards[i].Priority = *update.Priority
		}
		if update.Tags != nil {
			b.cards[i].Tags = *update.Tags
		}
		writeBody(t, w, b.cards[i])
	})

	mux.HandleFunc("PATCH /api/cards/{id}/move", func(w http.ResponseWriter, r *http.Request) {
		var move api.CardMove
		if err := json.NewDecoder(r.Body).Decode(&move); err != nil {
			t.Errorf("decode move request: %v", err)
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		i, ok := b.findCard(r.PathValue("id"))
		if !ok {
			http.Error(w, `{"detail":"card not found"}`, http.StatusNotFound)
			return
		}
		b.cards[i].Column = move.Column
		writeBody(t, w, b.cards[i])
	})

	mux.HandleFunc("DELETE /api/cards/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		i, ok := b.findCard(r.PathValue("id"))
		if !ok {
			http.Error(w, `{"detail":"card not found"}`, http.StatusNotFound)
			return
		}
		b.cards = append(b.cards[:i], b.cards[i+1:]...)
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("GET /api/board/stats", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		stats := api.BoardStats{
			ByColumn:   map[string]int{},
			ByPriority: map[string]int{},
		}
		now := time.Now().UTC()
		for _, card := range b.cards {
			stats.TotalCards++
			stats.ByColumn[card.Column.String()]++
			stats.ByPriority[card.Priority.String()]++
			if card.Overdue(now) {
				stats.OverdueCount++
			}
		}
		writeBody(t, w, stats)
	})

	mux.HandleFunc("GET /api/plans", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeBody(t, w, b.plans)
	})

	mux.HandleFunc("GET /api/plans/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		i, ok := b.findPlan(r.PathValue("id"))
		if !ok {
			http.Error(w, `{"detail":"plan not found"}`, http.StatusNotFound)
			return
		}
		writeBody(t, w, b.plans[i])
	})

	mux.HandleFunc("POST /api/plans/{id}/files", func(w http.ResponseWriter, r *http.Request) {
		var create api.PlanFileCreate
		if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
			t.Errorf("decode plan file create: %v", err)
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		i, ok := b.findPlan(r.PathValue("id"))
		if !ok {
			http.Error(w, `{"detail":"plan not found"}`, http.StatusNotFound)
			return
		}
		b.plans[i].Files = append(b.plans[i].Files, api.PlanFile{Name: create.Name, Content: create.Content})
		writeBody(t, w, b.plans[i])
	})

	mux.HandleFunc("PATCH /api/plans/{id}/files/{name}", func(w http.ResponseWriter, r *http.Request) {
		var update api.PlanFileUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			t.Errorf("decode plan file update: %v", err)
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		i, ok := b.findPlan(r.PathValue("id"))
		if !ok {
			http.Error(w, `{"detail":"plan not found"}`, http.StatusNotFound)
			return
		}
		for j, file := range b.plans[i].Files {
			if file.Name != r.PathValue("name") {
				continue
			}
			if update.Content != nil {
				b.plans[i].Files[j].Content = *update.Content
			}
			if update.Name != nil {
				b.plans[i].Files[j].Name = *update.Name
			}
			writeBody(t, w, b.plans[i])
			return
		}
		http.Error(w, `{"detail":"file not found"}`, http.StatusNotFound)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func writeBody(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode response: %v", err)
	}
}

// runCLI executes the CLI against the given server URL and returns the
// combined output. The config directory is redirected to a throwaway
// location so the user's real configuration never leaks in.
func runCLI(t *testing.T, serverURL, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("BLAZE_URL", "")
	t.Setenv("BLAZE_TOKEN", "")

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--url", serverURL, "--token", "test-token"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func dueAt(value string) *time.Time {
	due, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return &due
}

func testPlans() []api.Plan {
	return []api.Plan{
		{
			ID:     "def111111111",
			Title:  "Release plan",
			Status: api.PlanDraft,
			Files:  []api.PlanFile{{Name: "notes.md", Content: "original notes"}},
		},
	}
}

func testCards() []api.Card {
	return []api.Card{
		{
			ID:       "abc111111111",
			Title:    "Fix login flow",
			Priority: api.PriorityHigh,
			Column:   api.ColumnTodo,
			DueDate:  dueAt("2023-01-01T23:59:59Z"),
			Tags:     []string{"auth", "bug"},
		},
		{
			ID:       "abc222222222",
			Title:    "Write onboarding docs",
			Priority: api.PriorityLow,
			Column:   api.ColumnBacklog,
			Tags:     []string{"docs"},
		},
		{
			ID:       "xyz999999999",
			Title:    "Ship release",
			Priority: api.PriorityUrgent,
			Column:   api.ColumnInProgress,
			Tags:     []string{"release"},
		},
	}
}
