package ui

// ViewType represents the current view state
type ViewType uint8

const (
	LIST_VIEW ViewType = iota
	DETAIL_VIEW
	CONFIRM_VIEW
	INPUT_VIEW
	RESULT_VIEW
	QUITTING
)

func (v ViewType) String() string {
	switch v {
	case LIST_VIEW:
		return "list view"
	case DETAIL_VIEW:
		return "detail view"
	case CONFIRM_VIEW:
		return "confirm view"
	case INPUT_VIEW:
		return "input view"
	case RESULT_VIEW:
		return "result view"
	case QUITTING:
		return "quit"
	}
	return "unknown"
}

type ViewState struct {
	current  ViewType
	previous ViewType
	preview  previewState
}

type previewState struct {
	available bool
}

func NewViewState() *ViewState {
	return &ViewState{
		current:  LIST_VIEW,
		previous: LIST_VIEW,
		preview:  previewState{available: true},
	}
}

// SetView changes the current view and updates the previous view
func (v *ViewState) SetView(newView ViewType) {
	v.previous = v.current
	v.current = newView
}
