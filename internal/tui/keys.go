package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	quit       key.Binding
	connect    key.Binding
	disconnect key.Binding
	copy       key.Binding
	buildInfo  key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	quit:       key.NewBinding(key.WithKeys("q", "ctrl+c")),
	connect:    key.NewBinding(key.WithKeys("c")),
	disconnect: key.NewBinding(key.WithKeys("d")),
	copy:       key.NewBinding(key.WithKeys("y")),
	buildInfo:  key.NewBinding(key.WithKeys("v")),
}
