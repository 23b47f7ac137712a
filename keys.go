package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"go-tetris/internal/game"
)

type keyMap struct {
	Left   key.Binding
	Right  key.Binding
	Down   key.Binding
	Rotate key.Binding
	Drop   key.Binding
	Start  key.Binding
	Pause  key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "rotate"),
		),
		Drop: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "drop"),
		),
		Start: key.NewBinding(
			key.WithKeys("s", "enter"),
			key.WithHelp("s", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Rotate, k.Drop, k.Pause, k.Start, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Down},
		{k.Rotate, k.Drop},
		{k.Start, k.Pause, k.Quit},
	}
}

// command maps a key press to a game command.
func (k keyMap) command(msg tea.KeyMsg) (game.Command, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return game.MoveLeft, true
	case key.Matches(msg, k.Right):
		return game.MoveRight, true
	case key.Matches(msg, k.Down):
		return game.SoftDrop, true
	case key.Matches(msg, k.Rotate):
		return game.Rotate, true
	case key.Matches(msg, k.Drop):
		return game.HardDrop, true
	case key.Matches(msg, k.Start):
		return game.Start, true
	case key.Matches(msg, k.Pause):
		return game.PauseToggle, true
	}
	return 0, false
}
