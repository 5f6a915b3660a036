package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// holdExpiry is how long a held action survives without a fresh key event.
// Terminals report key repeats but never releases, so a hold is synthesized
// from the repeat stream and dropped once it goes quiet.
const holdExpiry = 250 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions and keeps
// the synthesized hold state for the shift and soft-drop keys.
type KeyMapper struct {
	holds map[core.Action]time.Time
	edges []core.Action
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		holds: make(map[core.Action]time.Time),
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "s", "down":
		return core.ActionSoftDrop, false
	case "w", "up", "x":
		return core.ActionRotateCW, false
	case "z":
		return core.ActionRotateCCW, false
	case " ":
		return core.ActionHardDrop, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// isHeldAction reports whether the action is driven by key-hold state
// rather than single presses.
func isHeldAction(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionSoftDrop:
		return true
	}
	return false
}

// Record registers a key event at the given time. Held actions refresh
// their hold; edge actions queue for the next frame. Returns true for a
// quit request.
func (km *KeyMapper) Record(msg tea.KeyMsg, now time.Time) bool {
	action, isQuit := km.MapKey(msg)
	if isQuit {
		return true
	}
	if action == core.ActionNone {
		return false
	}
	if isHeldAction(action) {
		km.holds[action] = now
	} else {
		km.edges = append(km.edges, action)
	}
	return false
}

// Frame builds the input frame for one tick: every live hold plus the
// queued edge actions. Edges are consumed; stale holds are dropped.
func (km *KeyMapper) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()

	for action, last := range km.holds {
		if now.Sub(last) > holdExpiry {
			delete(km.holds, action)
			continue
		}
		frame.Set(action)
	}

	for _, action := range km.edges {
		frame.Set(action)
	}
	km.edges = km.edges[:0]

	return frame
}

// ReleaseAll clears every synthesized hold and queued edge.
func (km *KeyMapper) ReleaseAll() {
	for a := range km.holds {
		delete(km.holds, a)
	}
	km.edges = km.edges[:0]
}
