package ui

import (
	"github.com/PoignardAzur/marquee/internal/task"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForCompletion(r *task.Runner) tea.Cmd {
	return func() tea.Msg {
		c, ok := <-r.Completions()
		if !ok {
			return runnerDoneMsg{}
		}
		return completionMsg{completion: c}
	}
}

type completionMsg struct {
	completion task.Completion
}

type runnerDoneMsg struct{}

func (m *Model) handleCompletionMsg(msg tea.Msg) tea.Cmd {
	cm, ok := msg.(completionMsg)
	if !ok {
		return nil
	}
	m.host.Promise(cm.completion)
	if m.runner != nil {
		return waitForCompletion(m.runner)
	}
	return nil
}

func (m *Model) handleRunnerDoneMsg(msg tea.Msg) tea.Cmd {
	m.runner = nil
	return nil
}
