package render

import (
	"fmt"
	"strconv"

	"github.com/joescharf/bugdesk/internal/models"
)

// Action is a row action a user can trigger on the bugs board.
type Action string

const (
	ActionProgress Action = "progress"
	ActionResolved Action = "resolved"
	ActionDelete   Action = "delete"
)

// Status returns the status an update action sets. Delete has none.
func (a Action) Status() (models.Status, bool) {
	switch a {
	case ActionProgress:
		return models.StatusInProgress, true
	case ActionResolved:
		return models.StatusResolved, true
	}
	return "", false
}

// Valid reports whether a is a known action.
func (a Action) Valid() bool {
	switch a {
	case ActionProgress, ActionResolved, ActionDelete:
		return true
	}
	return false
}

// Target is what a click landed on: the data-act and data-id attributes of
// the nearest button, or empty values when the click missed every button.
type Target struct {
	Act string
	ID  string
}

// Resolve validates a target's attributes. ok is false for clicks that did
// not land on an action button.
func (t Target) Resolve() (Action, int64, bool, error) {
	if t.Act == "" {
		return "", 0, false, nil
	}
	act := Action(t.Act)
	if !act.Valid() {
		return "", 0, false, fmt.Errorf("unknown action %q", t.Act)
	}
	id, err := strconv.ParseInt(t.ID, 10, 64)
	if err != nil || id <= 0 {
		return "", 0, false, fmt.Errorf("invalid bug id %q", t.ID)
	}
	return act, id, true, nil
}
