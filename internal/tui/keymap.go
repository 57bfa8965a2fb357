package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/breakout-tui/breakout/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to actions.
// Returns the actions triggered and whether the key was a quit request.
// A single key can trigger more than one action: space both freezes the
// paddle in play and confirms modals.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (actions []core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return []core.Action{core.ActionQuit}, true
	case "j", "left":
		return []core.Action{core.ActionLeft}, false
	case "k", "right":
		return []core.Action{core.ActionRight}, false
	case " ":
		return []core.Action{core.ActionFreeze, core.ActionConfirm}, false
	case "enter":
		return []core.Action{core.ActionConfirm}, false
	case "p":
		return []core.Action{core.ActionPause}, false
	case "r":
		return []core.Action{core.ActionRedraw, core.ActionRestart}, false
	}
	return nil, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	actions, isQuit := km.MapKey(msg)
	for _, a := range actions {
		frame.Set(a)
	}
	return isQuit
}
