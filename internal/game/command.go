package game

import (
	"errors"
	"fmt"
)

// ErrUnknownCommand is returned by ParseCommand for names it does not know.
var ErrUnknownCommand = errors.New("unknown command")

// Command is a player or host action applied to the game.
type Command int

const (
	MoveLeft Command = iota
	MoveRight
	SoftDrop
	Rotate
	HardDrop
	Start
	PauseToggle
)

var commandNames = []string{
	MoveLeft:    "left",
	MoveRight:   "right",
	SoftDrop:    "down",
	Rotate:      "rotate",
	HardDrop:    "drop",
	Start:       "start",
	PauseToggle: "pause",
}

func (c Command) String() string {
	if c >= 0 && int(c) < len(commandNames) {
		return commandNames[c]
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// ParseCommand maps a command name such as "left" or "drop" to its Command.
func ParseCommand(name string) (Command, error) {
	for i, n := range commandNames {
		if n == name {
			return Command(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}
