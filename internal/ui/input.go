package ui

import (
	"github.com/PoignardAzur/marquee/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	k := key.String()
	events.UI.Key(k)
	switch k {
	case "ctrl+c", "q":
		m.stopRunner()
		return tea.Quit
	case "/":
		return m.openSearch()
	}
	m.host.Key(k)
	return nil
}

// stopRunner cancels outstanding background work before the program
// exits. The completion pump drains whatever was already in flight and
// ends on the closed channel.
func (m *Model) stopRunner() {
	if m.runner != nil {
		m.runner.Stop()
	}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(m.width, m.height)
	return nil
}
