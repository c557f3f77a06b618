package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/geodash/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// ActionJump stands for the primary press and is resolved per phase by MapKeyToFrame.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case " ", "up", "w", "k":
		return core.ActionJump, false
	case "enter":
		return core.ActionStart, false
	case "r":
		return core.ActionRestart, false
	case "tab":
		return core.ActionScoreboard, false
	case "b", "esc":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// MapMouse treats a left-button press anywhere as the primary press.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) core.Action {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return core.ActionJump
	}
	return core.ActionNone
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, phase core.Phase, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	km.apply(action, phase, frame)
	return isQuit
}

// MapMouseToFrame updates an input frame based on a mouse message.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, phase core.Phase, frame *core.InputFrame) {
	km.apply(km.MapMouse(msg), phase, frame)
}

func (km *KeyMapper) apply(action core.Action, phase core.Phase, frame *core.InputFrame) {
	switch action {
	case core.ActionNone:
	case core.ActionJump:
		frame.SetPrimary(phase)
	case core.ActionStart:
		if phase != core.PhasePlaying {
			frame.Set(core.ActionStart)
		}
	default:
		frame.Set(action)
	}
}
