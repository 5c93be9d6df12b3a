package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap groups every binding the pages match against, so a hotkey is
// changed in one place instead of hunting string literals through Update
// functions.
type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	forceQuit key.Binding
	version   key.Binding
	logout    key.Binding
	addSave   key.Binding
	setGoal   key.Binding
	goals     key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	version:   key.NewBinding(key.WithKeys("v")),
	logout:    key.NewBinding(key.WithKeys("l")),
	addSave:   key.NewBinding(key.WithKeys("a")),
	setGoal:   key.NewBinding(key.WithKeys("g")),
	goals:     key.NewBinding(key.WithKeys("v")),
}
