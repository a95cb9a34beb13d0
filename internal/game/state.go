// Package game is the demo atomic-command runner the console drives: a
// small street-crime state machine with cash, heat, energy and a bank.
// The interpreter treats it as an opaque external collaborator.
package game

import "grift/internal/cond"

// State holds the mutable game numbers. All mutation happens on the
// caller's goroutine; the interpreter awaits one command at a time, so
// commands never race.
type State struct {
	Cash     int
	Bank     int
	Heat     int
	Level    int
	Energy   int
	Location string
}

// NewState creates a starting state.
func NewState(cash, energy, level int) *State {
	return &State{
		Cash:     cash,
		Energy:   energy,
		Level:    level,
		Location: "downtown",
	}
}

// Snapshot returns the read-only numeric view conditions are evaluated
// against. A fresh map is built per call so the evaluator never sees
// later mutations.
func (s *State) Snapshot() cond.Snapshot {
	return cond.Snapshot{
		"cash":   s.Cash,
		"bank":   s.Bank,
		"heat":   s.Heat,
		"level":  s.Level,
		"energy": s.Energy,
	}
}
