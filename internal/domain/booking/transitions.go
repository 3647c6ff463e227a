package booking

import (
	"guidely/internal/pkg/errs"
)

type Action string

const (
	ActionConfirm    Action = "confirm"
	ActionDecline    Action = "decline"
	ActionCancel     Action = "cancel"
	ActionReschedule Action = "reschedule"
	ActionStart      Action = "start"
	ActionComplete   Action = "complete"
	ActionRate       Action = "rate"
	ActionFeedback   Action = "feedback"
	ActionSweep      Action = "sweep"
)

type Transition struct {
	From   Status
	Action Action
	To     Status
}

// transitions is the whole state machine. Each (From, Action) pair appears once.
var transitions = []Transition{
	{From: StatusPending, Action: ActionConfirm, To: StatusConfirmed},
	{From: StatusPending, Action: ActionDecline, To: StatusCancelled},
	{From: StatusPending, Action: ActionCancel, To: StatusCancelled},
	{From: StatusConfirmed, Action: ActionCancel, To: StatusCancelled},
	{From: StatusPending, Action: ActionReschedule, To: StatusPending},
	{From: StatusConfirmed, Action: ActionReschedule, To: StatusConfirmed},
	{From: StatusConfirmed, Action: ActionStart, To: StatusInProgress},
	{From: StatusInProgress, Action: ActionComplete, To: StatusCompleted},
	{From: StatusCompleted, Action: ActionRate, To: StatusCompleted},
	{From: StatusCompleted, Action: ActionFeedback, To: StatusCompleted},
	{From: StatusPending, Action: ActionSweep, To: StatusCancelled},
	{From: StatusConfirmed, Action: ActionSweep, To: StatusNoShow},
	{From: StatusInProgress, Action: ActionSweep, To: StatusCompleted},
}

func TransitionFor(from Status, action Action) (Transition, bool) {
	for _, t := range transitions {
		if t.From == from && t.Action == action {
			return t, true
		}
	}
	return Transition{}, false
}

// IsValidTransition reports whether some action moves a booking from one
// status to the other. Self-loops count only where an action defines them.
func IsValidTransition(from, to Status) bool {
	for _, t := range transitions {
		if t.From == from && t.To == to {
			return true
		}
	}
	return false
}

// Transitions returns a copy of the state machine table.
func Transitions() []Transition {
	return append([]Transition(nil), transitions...)
}

type TransitionError struct {
	From   Status
	Action Action
}

func (e *TransitionError) Error() string {
	return "cannot " + string(e.Action) + " a booking in status " + string(e.From)
}

func transitionErr(from Status, action Action) error {
	return errs.Mark(&TransitionError{From: from, Action: action}, errs.ErrInvalidStateTransition)
}

func next(from Status, action Action) (Status, error) {
	t, ok := TransitionFor(from, action)
	if !ok {
		return from, transitionErr(from, action)
	}
	return t.To, nil
}
