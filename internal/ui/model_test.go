package ui

import (
	"testing"
	"time"

	"github.com/PoignardAzur/marquee/internal/task"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T, fetch Fetcher, width, height int) *Model {
	t.Helper()
	runner := task.NewRunner(8)
	t.Cleanup(runner.Stop)
	return NewModel(fetch, "home", width, height, true, false, 30, runner)
}

// pumpCompletions feeds n runner completions through Update, the way the
// completion pump would.
func pumpCompletions(t *testing.T, m *Model, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case c := <-m.runner.Completions():
			m.Update(completionMsg{completion: c})
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for completion %d of %d", i+1, n)
		}
	}
}

func loadModel(t *testing.T, width, height int) *Model {
	t.Helper()
	m := newTestModel(t, threeRowFetcher(), width, height)
	pumpCompletions(t, m, 1)
	pumpCompletions(t, m, len(m.root.Rows()))
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// containsQuit runs cmd (and any batch it expands to) and reports whether
// a quit message came out.
func containsQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	switch msg := cmd().(type) {
	case tea.QuitMsg:
		return true
	case tea.BatchMsg:
		for _, c := range msg {
			if containsQuit(c) {
				return true
			}
		}
	}
	return false
}

func TestNewModelMountsTreeAndTakesFocus(t *testing.T) {
	m := newTestModel(t, threeRowFetcher(), 80, 24)
	if m.host.Focused() != m.host.Root().ID() {
		t.Fatalf("expected the root to hold focus after mounting")
	}
}

func TestInitArmsCompletionPumpAndFrameClock(t *testing.T) {
	m := newTestModel(t, threeRowFetcher(), 80, 24)
	if cmd := m.Init(); cmd == nil {
		t.Fatalf("expected Init to return commands")
	}
	if !m.tickPending {
		t.Fatalf("expected the frame clock armed for the loading placeholder")
	}
}

func TestCompletionMessagesPopulateTree(t *testing.T) {
	m := newTestModel(t, threeRowFetcher(), 80, 24)
	pumpCompletions(t, m, 1)
	if got := len(m.root.Rows()); got != 3 {
		t.Fatalf("expected 3 catalog rows, got %d", got)
	}
	pumpCompletions(t, m, 3)
	if tiles := allTiles(t, m.root); len(tiles) != 10 {
		t.Fatalf("expected 10 tiles across the shelves, got %d", len(tiles))
	}
}

func TestCompletionHandlerRearmsPump(t *testing.T) {
	m := newTestModel(t, threeRowFetcher(), 80, 24)
	select {
	case c := <-m.runner.Completions():
		if cmd := m.handleCompletionMsg(completionMsg{completion: c}); cmd == nil {
			t.Fatalf("expected the handler to re-arm the pump")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for the catalog completion")
	}

	m.handleRunnerDoneMsg(runnerDoneMsg{})
	if m.runner != nil {
		t.Fatalf("expected the runner reference cleared after the channel closed")
	}
}

func TestQuitKeyStopsRunner(t *testing.T) {
	m := newTestModel(t, threeRowFetcher(), 80, 24)
	_, cmd := m.Update(keyRunes("q"))
	if !containsQuit(cmd) {
		t.Fatalf("expected a quit command")
	}
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-m.runner.Completions():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatalf("expected the completion channel to close after quit")
		}
	}
}

func TestArrowKeyMsgMovesSelection(t *testing.T) {
	m := loadModel(t, 80, 24)
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if row, col := m.root.Selection(); row != 0 || col != 1 {
		t.Fatalf("expected selection (0,1), got (%d,%d)", row, col)
	}
}

func TestFrameMsgAdvancesHighlight(t *testing.T) {
	m := loadModel(t, 80, 24)
	tile := tilesOf(t, shelvesOf(t, m.root)[0])[0]
	for i := 0; i < tileProgressMax; i++ {
		m.Update(frameMsg{interval: m.frameInterval()})
	}
	if tile.Progress() != tileProgressMax {
		t.Fatalf("expected full highlight after %d frames, got %d", tileProgressMax, tile.Progress())
	}
}

func TestFrameMsgClearsPendingTick(t *testing.T) {
	m := loadModel(t, 80, 24)
	m.tickPending = true
	m.Update(frameMsg{interval: m.frameInterval()})
	if !m.tickPending {
		t.Fatalf("expected a fresh tick while the highlight still grows")
	}

	for i := 0; i < tileProgressMax; i++ {
		m.Update(frameMsg{interval: m.frameInterval()})
	}
	if m.host.AnimRequested() {
		t.Fatalf("expected no frame request once the highlight settled")
	}
}

func TestWindowSizeRespectsFixedDimensions(t *testing.T) {
	fixed := newTestModel(t, threeRowFetcher(), 80, 24)
	fixed.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if fixed.width != 80 || fixed.height != 24 {
		t.Fatalf("expected fixed dimensions to hold, got %dx%d", fixed.width, fixed.height)
	}

	fluid := newTestModel(t, threeRowFetcher(), 0, 0)
	fluid.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if fluid.width != 120 || fluid.height != 40 {
		t.Fatalf("expected dimensions to follow the terminal, got %dx%d", fluid.width, fluid.height)
	}
}
