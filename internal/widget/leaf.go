package widget

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// TextLeaf is a single styled line of text.
type TextLeaf struct {
	LeafNode
	text  string
	style *lipgloss.Style
}

// NewTextLeaf returns a one-line text node. A nil style renders plain.
func NewTextLeaf(text string, style *lipgloss.Style) *TextLeaf {
	return &TextLeaf{text: text, style: style}
}

// Text returns the leaf's content.
func (t *TextLeaf) Text() string {
	return t.text
}

func (t *TextLeaf) Layout(ctx *LayoutCtx, bc BoxConstraints) Size {
	return bc.Constrain(Size{Width: len([]rune(t.text)), Height: 1})
}

func (t *TextLeaf) Paint(ctx *PaintCtx) {
	ctx.SetString(0, 0, TruncateText(t.text, ctx.Size().Width), t.style)
}

// LoadingLeaf is the placeholder shown while a subtree's background fetch
// is pending: an animated spinner glyph followed by a label. It keeps
// requesting animation frames for as long as it stays in the tree; once
// spliced out it receives nothing further and the requests stop.
type LoadingLeaf struct {
	LeafNode
	frames []string
	frame  int
	label  string
	style  *lipgloss.Style
}

// NewLoadingLeaf returns a placeholder using the given spinner's frame set.
func NewLoadingLeaf(sp spinner.Spinner, label string, style *lipgloss.Style) *LoadingLeaf {
	return &LoadingLeaf{frames: sp.Frames, label: label, style: style}
}

func (l *LoadingLeaf) Lifecycle(ctx *LifecycleCtx, ev LifecycleEvent) {
	if ev == NodeAdded {
		ctx.RequestAnimFrame()
	}
}

func (l *LoadingLeaf) OnEvent(ctx *EventCtx, ev Event) {
	if _, ok := ev.(AnimFrameEvent); !ok {
		return
	}
	if len(l.frames) > 0 {
		l.frame = (l.frame + 1) % len(l.frames)
	}
	ctx.RequestAnimFrame()
}

func (l *LoadingLeaf) Layout(ctx *LayoutCtx, bc BoxConstraints) Size {
	width := 2 + len([]rune(l.label))
	return bc.Constrain(Size{Width: width, Height: 1})
}

func (l *LoadingLeaf) Paint(ctx *PaintCtx) {
	glyph := " "
	if len(l.frames) > 0 {
		glyph = l.frames[l.frame]
	}
	line := glyph + " " + l.label
	ctx.SetString(0, 0, TruncateText(line, ctx.Size().Width), l.style)
}

// ErrorLeaf renders the diagnostic a subtree resolves to when its
// background fetch fails.
type ErrorLeaf struct {
	LeafNode
	message string
	style   *lipgloss.Style
}

// NewErrorLeaf returns a one-line error display.
func NewErrorLeaf(message string, style *lipgloss.Style) *ErrorLeaf {
	return &ErrorLeaf{message: message, style: style}
}

// Message returns the diagnostic text.
func (e *ErrorLeaf) Message() string {
	return e.message
}

func (e *ErrorLeaf) Layout(ctx *LayoutCtx, bc BoxConstraints) Size {
	return bc.Constrain(Size{Width: 2 + len([]rune(e.message)), Height: 1})
}

func (e *ErrorLeaf) Paint(ctx *PaintCtx) {
	ctx.SetString(0, 0, TruncateText("! "+e.message, ctx.Size().Width), e.style)
}
