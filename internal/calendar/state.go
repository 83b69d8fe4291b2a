package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrNotEditing = errors.New("no date selected")

// Selection is the date being edited and its uncommitted note text.
type Selection struct {
	Date  Date
	Draft string
}

// State is everything a visitor's calendar view depends on besides the store.
// Transitions return a new State and never mutate the receiver.
type State struct {
	Reference Date
	Selection *Selection
}

// NewState shows the month containing reference with nothing selected.
func NewState(reference Date) State {
	return State{Reference: reference.StartOfMonth()}
}

func (state State) Editing() bool {
	return state.Selection != nil
}

// Click opens the editor for date with the draft seeded from the store.
func (state State) Click(ctx context.Context, store NoteStore, date Date) (State, error) {
	note, _, err := store.Note(ctx, date)
	if err != nil {
		return state, fmt.Errorf("load note for %s: %w", date.ISO(), err)
	}
	next := state.normalized()
	next.Selection = &Selection{Date: date, Draft: note}
	return next, nil
}

// Edit replaces the draft. It does not touch the store.
func (state State) Edit(text string) State {
	if state.Selection == nil {
		return state
	}
	next := state.normalized()
	next.Selection = &Selection{Date: state.Selection.Date, Draft: text}
	return next
}

// Save writes the draft, including an empty one, and closes the editor.
func (state State) Save(ctx context.Context, store NoteStore) (State, error) {
	if state.Selection == nil {
		return state, ErrNotEditing
	}
	if err := store.SaveNote(ctx, state.Selection.Date, state.Selection.Draft); err != nil {
		return state, fmt.Errorf("save note for %s: %w", state.Selection.Date.ISO(), err)
	}
	return state.Close(), nil
}

// Close discards the draft.
func (state State) Close() State {
	next := state.normalized()
	next.Selection = nil
	return next
}

func (state State) PrevMonth() State {
	return state.withReference(state.Reference.AddMonths(-1))
}

func (state State) NextMonth() State {
	return state.withReference(state.Reference.AddMonths(1))
}

func (state State) SelectMonth(month time.Month) State {
	return state.withReference(state.Reference.WithMonth(month))
}

func (state State) SelectYear(year int) State {
	return state.withReference(state.Reference.WithYear(year))
}

func (state State) withReference(reference Date) State {
	next := state
	next.Reference = reference.StartOfMonth()
	return next
}

func (state State) normalized() State {
	next := state
	next.Reference = state.Reference.StartOfMonth()
	return next
}
