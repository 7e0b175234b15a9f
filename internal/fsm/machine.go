// Package fsm provides small table-driven finite state machines.
package fsm

import (
	"fmt"

	"github.com/cookeasy/backend/internal/domain"
)

// Machine validates moves between states of one kind. It holds no current
// state, so a single Machine can be shared by every session.
type Machine[S comparable] struct {
	name        string
	transitions map[S]map[S]bool
}

// New builds a machine from an adjacency table. Every state that appears in the
// table, as a source or a target, is known to the machine.
func New[S comparable](name string, table map[S][]S) *Machine[S] {
	m := &Machine[S]{
		name:        name,
		transitions: make(map[S]map[S]bool, len(table)),
	}
	for from, targets := range table {
		m.ensure(from)
		for _, to := range targets {
			m.ensure(to)
			m.transitions[from][to] = true
		}
	}
	return m
}

// NewComplete builds a machine in which any state can move to any other
func NewComplete[S comparable](name string, states ...S) *Machine[S] {
	table := make(map[S][]S, len(states))
	for _, from := range states {
		for _, to := range states {
			if from != to {
				table[from] = append(table[from], to)
			}
		}
	}
	return New(name, table)
}

func (m *Machine[S]) ensure(s S) {
	if _, ok := m.transitions[s]; !ok {
		m.transitions[s] = make(map[S]bool)
	}
}

// Name identifies the machine in errors and logs
func (m *Machine[S]) Name() string {
	return m.name
}

// Known reports whether s is a state of this machine
func (m *Machine[S]) Known(s S) bool {
	_, ok := m.transitions[s]
	return ok
}

// Can reports whether from -> to is allowed. Staying put is always allowed for known states.
func (m *Machine[S]) Can(from, to S) bool {
	if !m.Known(from) || !m.Known(to) {
		return false
	}
	return from == to || m.transitions[from][to]
}

// Transition returns to when the move is allowed, otherwise an error wrapping
// domain.ErrInvalidTransition
func (m *Machine[S]) Transition(from, to S) (S, error) {
	if !m.Can(from, to) {
		return from, fmt.Errorf("%w: %s cannot move from %v to %v", domain.ErrInvalidTransition, m.name, from, to)
	}
	return to, nil
}

// Walk moves through path in order. If from appears in path before its last
// step, the walk resumes after it. Being at the last step already is not a
// resume point: the whole path is walked again from there. The first
// disallowed step aborts the walk and from is returned.
func (m *Machine[S]) Walk(from S, path ...S) (S, error) {
	start := 0
	for i := 0; i < len(path)-1; i++ {
		if path[i] == from {
			start = i + 1
		}
	}

	current := from
	for _, next := range path[start:] {
		moved, err := m.Transition(current, next)
		if err != nil {
			return from, err
		}
		current = moved
	}
	return current, nil
}
