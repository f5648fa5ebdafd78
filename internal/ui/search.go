package ui

import (
	"sort"

	"github.com/PoignardAzur/marquee/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// handleSearchOverlay owns every key press while the search prompt is
// open. Non-key messages keep flowing to the regular handlers so fetches
// and animation continue behind the overlay.
func (m *Model) handleSearchOverlay(msg tea.Msg) (bool, tea.Cmd) {
	if !m.searchActive {
		return false, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	switch key.String() {
	case "esc", "ctrl+g":
		m.closeSearch()
		events.Search.Dismiss()
		return true, nil
	case "enter":
		return true, m.commitSearch()
	case "ctrl+c":
		m.stopRunner()
		return true, tea.Quit
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.refreshMatches()
	return true, cmd
}

func (m *Model) openSearch() tea.Cmd {
	events.Search.Open()
	m.searchActive = true
	m.searchInput.SetValue("")
	m.searchMatches = nil
	return m.searchInput.Focus()
}

func (m *Model) closeSearch() {
	m.searchActive = false
	m.searchMatches = nil
	m.searchInput.Blur()
}

// refreshMatches ranks shelf titles against the current query. Ranks
// sort by edit distance, so the first entry is the jump target.
func (m *Model) refreshMatches() {
	query := m.searchInput.Value()
	if query == "" {
		m.searchMatches = nil
		return
	}
	ranks := fuzzy.RankFindNormalizedFold(query, m.root.RowTitles())
	sort.Sort(ranks)
	m.searchMatches = ranks
	events.Search.Query(query, len(ranks))
}

// commitSearch jumps the selection to the best match and dismisses the
// overlay. The jump travels as a targeted command so it lands after the
// pass that is currently running, like every other mutation.
func (m *Model) commitSearch() tea.Cmd {
	defer m.closeSearch()
	if len(m.searchMatches) == 0 {
		events.Search.Dismiss()
		return nil
	}
	best := m.searchMatches[0]
	events.Search.Jump(best.OriginalIndex, best.Target)
	m.host.Submit(m.host.Root().ID(), jumpToRowCmd{Row: best.OriginalIndex})
	return nil
}
