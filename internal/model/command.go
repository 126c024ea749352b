package model

import (
	"fmt"
	"strings"
)

// Command is a single action requested for the active piece
type Command string

const (
	CommandNone       Command = "none"
	CommandShiftLeft  Command = "shift_left"
	CommandShiftRight Command = "shift_right"
	CommandRotateCCW  Command = "rotate_ccw"
	CommandRotateCW   Command = "rotate_cw"
	CommandSoftDrop   Command = "soft_drop"
	CommandHardDrop   Command = "hard_drop"
)

// Short aliases accepted by ParseCommand
var commandAliases = map[string]Command{
	"left":  CommandShiftLeft,
	"right": CommandShiftRight,
	"ccw":   CommandRotateCCW,
	"cw":    CommandRotateCW,
	"down":  CommandSoftDrop,
	"drop":  CommandHardDrop,
}

// AllCommands returns every command
func AllCommands() []Command {
	return []Command{
		CommandNone,
		CommandShiftLeft,
		CommandShiftRight,
		CommandRotateCCW,
		CommandRotateCW,
		CommandSoftDrop,
		CommandHardDrop,
	}
}

// ParseCommand parses a command name or one of its short aliases
func ParseCommand(s string) (Command, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if cmd, ok := commandAliases[name]; ok {
		return cmd, nil
	}
	for _, cmd := range AllCommands() {
		if string(cmd) == name {
			return cmd, nil
		}
	}
	return CommandNone, fmt.Errorf("%w: %q", ErrInvalidCommand, s)
}
