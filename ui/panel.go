package ui

import "github.com/gdamore/tcell/v2"

// A PanelKind describes how a Panel places its two children.
type PanelKind uint8

const (
	PanelKindSplitVert PanelKind = iota // Items are above or below eachother
	PanelKindSplitHor                   // Items are left or right of eachother
)

// A Panel shows two components split at SplitAt, and gives focus to one of
// them at a time. SplitAt is the number of columns (PanelKindSplitHor) or rows
// (PanelKindSplitVert) given to Left; Right gets the rest.
type Panel struct {
	Left    Component
	Right   Component
	SplitAt int
	Kind    PanelKind

	rightFocused bool

	baseComponent
}

func NewPanel(kind PanelKind, left, right Component, splitAt int, theme *Theme) *Panel {
	p := &Panel{
		Left:          left,
		Right:         right,
		SplitAt:       splitAt,
		Kind:          kind,
		baseComponent: baseComponent{theme: theme},
	}
	return p
}

// UpdateSplits uses the position and size of the Panel, along with its SplitAt
// and Kind, to appropriately size and place its children.
func (p *Panel) UpdateSplits() {
	switch p.Kind {
	case PanelKindSplitVert:
		split := Clamp(p.SplitAt, 0, p.height)
		p.Left.SetPos(p.x, p.y)
		p.Left.SetSize(p.width, split)
		p.Right.SetPos(p.x, p.y+split)
		p.Right.SetSize(p.width, p.height-split)
	case PanelKindSplitHor:
		split := Clamp(p.SplitAt, 0, p.width)
		p.Left.SetPos(p.x, p.y)
		p.Left.SetSize(split, p.height)
		p.Right.SetPos(p.x+split, p.y)
		p.Right.SetSize(p.width-split, p.height)
	}
}

// GetFocusedChild returns the child that receives events.
func (p *Panel) GetFocusedChild() Component {
	if p.rightFocused {
		return p.Right
	}
	return p.Left
}

// FocusRight gives focus to Right when v is true, and to Left otherwise.
func (p *Panel) FocusRight(v bool) {
	p.GetFocusedChild().SetFocused(false)
	p.rightFocused = v
	p.GetFocusedChild().SetFocused(p.focused)
}

func (p *Panel) Draw(s tcell.Screen) {
	// The focused child is drawn last so it owns the terminal cursor
	if p.rightFocused {
		p.Left.Draw(s)
		p.Right.Draw(s)
	} else {
		p.Right.Draw(s)
		p.Left.Draw(s)
	}
}

func (p *Panel) SetFocused(v bool) {
	p.focused = v
	p.GetFocusedChild().SetFocused(v)
}

func (p *Panel) SetTheme(theme *Theme) {
	p.theme = theme
	p.Left.SetTheme(theme)
	p.Right.SetTheme(theme)
}

func (p *Panel) SetPos(x, y int) {
	p.x, p.y = x, y
	p.UpdateSplits()
}

func (p *Panel) SetSize(width, height int) {
	p.width, p.height = width, height
	p.UpdateSplits()
}

// HandleEvent switches focus between the children on F6, and otherwise
// forwards the event to the focused child.
func (p *Panel) HandleEvent(event tcell.Event) bool {
	if ev, ok := event.(*tcell.EventKey); ok && ev.Key() == tcell.KeyF6 {
		p.FocusRight(!p.rightFocused)
		return true
	}
	return p.GetFocusedChild().HandleEvent(event)
}
