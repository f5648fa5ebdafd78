package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameMsg is one tick of the animation clock. At most one is in flight
// at a time; the model re-arms the clock only while some node still wants
// frames.
type frameMsg struct {
	interval time.Duration
}

func frameTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return frameMsg{interval: interval}
	})
}

func (m *Model) handleFrameMsg(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(frameMsg)
	if !ok {
		return nil
	}
	m.tickPending = false
	m.host.Anim(frame.interval)
	return nil
}
