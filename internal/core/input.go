package core

// Action is a semantic intent, abstracted from physical key presses, clicks
// and touches. Every frontend normalizes its raw events into Actions.
type Action int

const (
	ActionNone       Action = iota
	ActionJump              // Space, Up, W, left click, tap
	ActionStart             // Enter on the start screen
	ActionRestart           // R after game over
	ActionBack              // B, Escape - leave the current screen
	ActionScoreboard        // Tab - open the scoreboard
	ActionQuit              // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered during one simulation tick.
// Duplicate signals of the same action within a tick collapse into one.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// SetPrimary records the single "primary" press (space, click, tap).
// On the start and game-over screens the primary press starts a run
// (Menu) or restarts one (GameOver); while playing it is a jump.
func (f *InputFrame) SetPrimary(phase Phase) {
	switch phase {
	case PhaseMenu:
		f.Set(ActionStart)
	case PhaseGameOver:
		f.Set(ActionRestart)
	default:
		f.Set(ActionJump)
	}
}
