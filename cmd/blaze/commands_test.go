package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/orveth/blaze/internal/api"
)

func TestPingReportsHealthyServer(t *testing.T) {
	board := &fakeBoard{}
	server := board.server(t)

	out, err := runCLI(t, server.URL, "", "ping")
	if err != nil {
		t.Fatalf("ping failed: %v", err)
	}
	if !strings.Contains(out, "Connected") {
		t.Errorf("expected connected message, got %q", out)
	}
}

func TestListFiltersByPriorityAndOverdue(t *testing.T) {
	board := &fakeBoard{cards: testCards()}
	server := board.server(t)

	out, err := runCLI(t, server.URL, "", "list", "--priority", "high", "--overdue")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "Fix login flow") {
		t.Errorf("expected overdue high-priority card in output, got %q", out)
	}
	if strings.Contains(out, "Write onboarding docs") || strings.Contains(out, "Ship release") {
		t.Errorf("unexpected card in filtered output: %q", out)
	}
}

func TestListQuietPrintsFullIDs(t *testing.T) {
	board := &fakeBoard{cards: testCards()}
	server := board.server(t)

	out, err := runCLI(t, server.URL, "", "list", "-q")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	want := []string{"abc111111111", "abc222222222", "xyz999999999"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), out)
	}
	for i, id := range want {
		if lines[i] != id {
			t.Errorf("line %d: expected %q, got %q", i, id, lines[i])
		}
	}
}

func TestListJSONRoundTrips(t *testing.T) {
	board := &fakeBoard{cards: testCards()}
	server := board.server(t)

	out, err := runCLI(t, server.URL, "", "list", "--json")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	var cards []api.Card
	if err := json.Unmarshal([]byte(out), &cards); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if len(cards) != 3 {
		t.Errorf("expected 3 cards, got %d", len(cards))
	}
}

func TestJSONAndQuietAreMutuallyExclusive(t *testing.T) {
	board := &fakeBoard{}
	server := board.server(t)

	_, err := runCLI(t, server.URL, "", "list", "--json", "-q")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "mutually exclusive") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestShowResolvesUniquePrefix(t *testing.T) {
	board := &fakeBoard{cards: testCards()}
	server := board.server(t)

	out, err := runCLI(t, server.URL, "", "show", "xyz")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !strings.Contains(out, "Ship release") {
		t.Errorf("expected resolved card in output, got %q", out)
	}
}

func TestShowAmbiguousPrefixFails(t *testing.T) {
	board := &fakeBoard{cards: testCards()}
	server := board.server(t)

	_, err := runCLI(t, server.URL, "", "show", "abc")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "ambiguous") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestShowUnknownPrefixFails(t *testing.T) {
	board := &fakeBoard{cards: testCards()}
	server := board.server(t)

	_, err := runCLI(t, server.URL, "", "show", "qqq")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "no card matches") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAddCreatesCardWithDefaults(t *testing.T) {
	board := &fakeBoard{}
	server := board.server(t)

	out, err := runCLI(t, server.URL, "", "add", "New card", "--due", "2030-06-15")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !strings.Contains(out, "New card") {
		t.Errorf("expected card title in output, got %q", out)
	}

	if len(board.cards) != 1 {
		t.Fatalf("expected 1 card on the board, got %d", len(board.cards))
	}
	card := board.cards[0]
	if card.Column != api.ColumnTodo {
		t.Errorf("expected default column todo, got %s", card.Column)
	}
	if card.Priority != api.PriorityMedium {
		t.Errorf("expected default priority medium, got %s", card.Priority)
	}
	if card.DueDate == nil || card.DueDate.Format("2006-01-02 15:04:05") != "2030-06-15 23:59:59" {
		t.Errorf("expected end-of-day due date, got %v", card.DueDate)
	}
}

func TestAddRejectsBadDate(t *testing.T) {
	board := &fakeBoard{}
	server := board.server(t)

	_, err := runCLI(t, server.URL, "", "add", "New card", "--due", "June 15")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "YYYY-MM-DD") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDoneMovesCardToDone(t *testing.T) {
	board := &fakeBoard{cards: testCards()}
	server := board.server(t)

	if _, err := runCLI(t, server.URL, "", "done", "xyz"); err != nil {
		t.Fatalf("done failed: %v", err)
	}
	if board.cards[2].Column != api.ColumnDone {
		t.Errorf("expected card in done, got %s", board.cards[2].Column)
	}
}

func TestRmForceDeletesWithoutPrompt(t *testing.T) {
	board := &fakeBoard{cards: testCards()}
	server := board.server(t)

	out, err := runCLI(t, server.URL, "", "rm", "xyz", "--force")
	if err != nil {
		t.Fatalf("rm failed: %v", err)
	}
	if !strings.Contains(out, "Deleted") {
		t.Errorf("expected deletion message, got %q", out)
	}
	if len(board.cards) != 2 {
		t.Errorf("expected 2 cards left, got %d", len(board.cards))
	}
}

func TestRmDeclineLeavesCard(t *testing.T) {
	board := &fakeBoard{cards: testCards()}
	server := board.server(t)

	out, err := runCLI(t, server.URL, "n\n", "rm", "xyz")
	if err != nil {
		t.Fatalf("declining should not be an error: %v", err)
	}
	if !strings.Contains(out, "Cancelled.") {
		t.Errorf("expected cancellation message, got %q", out)
	}
	if len(board.cards) != 3 {
		t.Errorf("expected all cards intact, got %d", len(board.cards))
	}
}

func TestEditWithoutFlagsFails(t *testing.T) {
	board := &fakeBoard{cards: testCards()}
	server := board.server(t)

	_, err := runCLI(t, server.URL, "", "edit", "xyz")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "no fields to update") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestEditMergesTags(t *testing.T) {
	board := &fakeBoard{cards: testCards()}
	server := board.server(t)

	if _, err := runCLI(t, server.URL, "", "edit", "xyz", "--add-tag", "urgent", "--remove-tag", "release"); err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	got := board.cards[2].Tags
	if len(got) != 1 || got[0] != "urgent" {
		t.Errorf("expected tags [urgent], got %v", got)
	}
}

func TestRmQuietPrintsFullID(t *testing.T) {
	board := &fakeBoard{cards: testCards()}
	server := board.server(t)

	out, err := runCLI(t, server.URL, "", "rm", "xyz", "--force", "-q")
	if err != nil {
		t.Fatalf("rm failed: %v", err)
	}
	if got := strings.TrimSpace(out); got != "xyz999999999" {
		t.Errorf("expected bare full id, got %q", out)
	}
}

func TestPlanFileEditReadsStdinWithoutContentFlag(t *testing.T) {
	board := &fakeBoard{plans: testPlans()}
	server := board.server(t)

	if _, err := runCLI(t, server.URL, "rewritten notes\n", "plan", "file", "edit", "def", "notes.md"); err != nil {
		t.Fatalf("plan file edit failed: %v", err)
	}
	if got := board.plans[0].Files[0].Content; got != "rewritten notes\n" {
		t.Errorf("expected stdin content to be sent, got %q", got)
	}
}

func TestPlanFileEditContentFlagWinsOverStdin(t *testing.T) {
	board := &fakeBoard{plans: testPlans()}
	server := board.server(t)

	if _, err := runCLI(t, server.URL, "ignored stdin", "plan", "file", "edit", "def", "notes.md", "--content", "flag content"); err != nil {
		t.Fatalf("plan file edit failed: %v", err)
	}
	if got := board.plans[0].Files[0].Content; got != "flag content" {
		t.Errorf("expected flag content, got %q", got)
	}
}

func TestPlanFileEditRenameOnlyLeavesContent(t *testing.T) {
	board := &fakeBoard{plans: testPlans()}
	server := board.server(t)

	if _, err := runCLI(t, server.URL, "", "plan", "file", "edit", "def", "notes.md", "--rename", "plan.md"); err != nil {
		t.Fatalf("plan file edit failed: %v", err)
	}
	file := board.plans[0].Files[0]
	if file.Name != "plan.md" {
		t.Errorf("expected renamed file, got %q", file.Name)
	}
	if file.Content != "original notes" {
		t.Errorf("rename must not touch content, got %q", file.Content)
	}
}

func TestPlanFileAddReadsStdinWithoutContentFlag(t *testing.T) {
	board := &fakeBoard{plans: testPlans()}
	server := board.server(t)

	if _, err := runCLI(t, server.URL, "design sketch\n", "plan", "file", "add", "def", "design.md"); err != nil {
		t.Fatalf("plan file add failed: %v", err)
	}
	files := board.plans[0].Files
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}
	if files[1].Name != "design.md" || files[1].Content != "design sketch\n" {
		t.Errorf("unexpected added file %+v", files[1])
	}
}

func TestBoardQuietReportsCounts(t *testing.T) {
	board := &fakeBoard{cards: testCards()}
	server := board.server(t)

	out, err := runCLI(t, server.URL, "", "board", "-q")
	if err != nil {
		t.Fatalf("board failed: %v", err)
	}
	for _, line := range []string{"backlog:1", "todo:1", "in_progress:1", "review:0", "done:0"} {
		if !strings.Contains(out, line) {
			t.Errorf("expected %q in output:\n%s", line, out)
		}
	}
}

func TestStatsTableIncludesTotals(t *testing.T) {
	board := &fakeBoard{cards: testCards()}
	server := board.server(t)

	out, err := runCLI(t, server.URL, "", "stats")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if !strings.Contains(out, "Total cards") || !strings.Contains(out, "3") {
		t.Errorf("expected totals in output:\n%s", out)
	}
}
