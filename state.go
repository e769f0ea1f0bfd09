package sticker

// State is the interaction state of an Element.
type State uint8

const (
	// StateIdle: handles hidden, text not focused.
	StateIdle State = iota
	// StateHandlesVisible: border and enabled handles shown.
	StateHandlesVisible
	// StateEditing: the text content has input focus, handles hidden.
	StateEditing
	// StateMoving: a move gesture is in progress. Handles stay visible.
	StateMoving
	// StateResizing: a resize/rotate gesture is in progress. Handles stay visible.
	StateResizing
	// StateClosed: the close handle was tapped. Terminal.
	StateClosed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateHandlesVisible:
		return "HandlesVisible"
	case StateEditing:
		return "Editing"
	case StateMoving:
		return "Moving"
	case StateResizing:
		return "Resizing"
	case StateClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// handlesShown reports whether handles are visible in this state.
func (s State) handlesShown() bool {
	return s == StateHandlesVisible || s == StateMoving || s == StateResizing
}

// inGesture reports whether a move or resize gesture is running.
func (s State) inGesture() bool {
	return s == StateMoving || s == StateResizing
}
