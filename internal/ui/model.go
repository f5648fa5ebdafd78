package ui

import (
	"reflect"
	"time"

	"github.com/PoignardAzur/marquee/internal/task"
	"github.com/PoignardAzur/marquee/internal/theme"
	"github.com/PoignardAzur/marquee/internal/widget"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	defaultFPS    = 30
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the catalog browser. It owns
// the widget host and translates the Bubble Tea message stream into host
// passes: keys, background completions and animation frames all become
// tree events.
type Model struct {
	host   *widget.Host
	root   *Root
	runner *task.Runner

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool
	fps         int

	tickPending bool

	searchActive  bool
	searchInput   textinput.Model
	searchMatches fuzzy.Ranks

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the browsing UI over the given fetcher and mounts the
// tree, which launches the catalog fetch and settles initial focus.
func NewModel(fetch Fetcher, catalogID string, width, height int, showFooter, verbose bool, fps int, runner *task.Runner) *Model {
	root := NewRoot(catalogID, fetch, styles)
	host := widget.NewHost(root, runner)
	m := &Model{
		host:       host,
		root:       root,
		runner:     runner,
		showFooter: showFooter,
		verbose:    verbose,
		fps:        fps,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	input := textinput.New()
	input.Prompt = "/"
	input.Placeholder = "search shelves"
	if styles.SearchPrompt != nil {
		input.PromptStyle = *styles.SearchPrompt
	}
	if styles.SearchInput != nil {
		input.TextStyle = *styles.SearchInput
	}
	if styles.SearchPlaceholder != nil {
		input.PlaceholderStyle = *styles.SearchPlaceholder
	}
	m.searchInput = input
	m.registerHandlers()
	host.Mount()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.runner != nil {
		cmds = append(cmds, waitForCompletion(m.runner))
	}
	if cmd := m.armFrameTick(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if handled, cmd := m.handleSearchOverlay(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(completionMsg{}):     m.handleCompletionMsg,
		reflect.TypeOf(runnerDoneMsg{}):     m.handleRunnerDoneMsg,
		reflect.TypeOf(frameMsg{}):          m.handleFrameMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate arms the frame clock whenever the pass left animation
// requests behind and no tick is already in flight.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if cmd := m.armFrameTick(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) armFrameTick() tea.Cmd {
	if m.tickPending || !m.host.AnimRequested() {
		return nil
	}
	m.tickPending = true
	return frameTickCmd(m.frameInterval())
}

func (m *Model) frameInterval() time.Duration {
	fps := m.fps
	if fps <= 0 {
		fps = defaultFPS
	}
	return time.Second / time.Duration(fps)
}
