package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-whack/internal/storage"
)

func TestRoundRows(t *testing.T) {
	rows := roundRows([]storage.RoundRecord{
		{Points: 90, Hits: 9, Misses: 1, Escapes: 2, Duration: 60 * time.Second, Reason: "timeout"},
		{Points: 0, Reason: "board_full"},
	})

	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	want := []string{"#1", "90", "9", "1", "2", "90%", "60s", "timeout"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("row 0 cell %d = %q, want %q", i, rows[0][i], cell)
		}
	}
	if rows[1][5] != "-" {
		t.Errorf("accuracy without taps = %q, want -", rows[1][5])
	}
	if rows[1][7] != "board full" {
		t.Errorf("reason = %q, want %q", rows[1][7], "board full")
	}
}

func TestResultsSwitchesModes(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	for _, rec := range []storage.RoundRecord{
		{GameID: "whack", Points: 40, Hits: 4, Reason: "timeout"},
		{GameID: "whack_survival", Points: 15, Hits: 2, Misses: 2, Reason: "board_full"},
	} {
		if _, err := store.SaveRound(rec); err != nil {
			t.Fatalf("SaveRound() error = %v", err)
		}
	}

	m := NewResultsModel(store, 120, 30)
	if len(m.rounds) != 1 || m.rounds[0].Points != 40 {
		t.Fatalf("first mode rounds = %+v", m.rounds)
	}
	if !strings.Contains(m.View(), "best 40") {
		t.Error("view should show the session summary")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ResultsModel)
	if len(m.rounds) != 1 || m.rounds[0].GameID != "whack_survival" {
		t.Fatalf("after tab rounds = %+v", m.rounds)
	}
	if m.summary.Accuracy() != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", m.summary.Accuracy())
	}
}

func TestResultsBack(t *testing.T) {
	m := NewResultsModel(nil, 60, 20)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ResultsModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}
