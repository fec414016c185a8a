package domain

import "fmt"

// Edge is one row of a transition table: applying Action in From moves to To.
type Edge[P ~string, A ~string] struct {
	From   P
	Action A
	To     P
}

// TransitionTable is a closed phase × action → phase mapping.
type TransitionTable[P ~string, A ~string] struct {
	phases map[P]bool
	edges  map[P]map[A]P
}

// NewTransitionTable builds a table and rejects edges that name unknown
// phases or repeat a (phase, action) pair.
func NewTransitionTable[P ~string, A ~string](phases []P, edges []Edge[P, A]) (*TransitionTable[P, A], error) {
	t := &TransitionTable[P, A]{
		phases: make(map[P]bool, len(phases)),
		edges:  make(map[P]map[A]P),
	}
	for _, p := range phases {
		if p == "" {
			return nil, fmt.Errorf("empty phase name")
		}
		t.phases[p] = true
	}

	for _, e := range edges {
		if !t.phases[e.From] {
			return nil, fmt.Errorf("edge %q: unknown source phase %q", e.Action, e.From)
		}
		if !t.phases[e.To] {
			return nil, fmt.Errorf("edge %q: unknown target phase %q", e.Action, e.To)
		}
		if t.edges[e.From] == nil {
			t.edges[e.From] = make(map[A]P)
		}
		if _, dup := t.edges[e.From][e.Action]; dup {
			return nil, fmt.Errorf("duplicate edge %q from %q", e.Action, e.From)
		}
		t.edges[e.From][e.Action] = e.To
	}
	return t, nil
}

// MustTransitionTable is NewTransitionTable for package-level tables.
func MustTransitionTable[P ~string, A ~string](phases []P, edges []Edge[P, A]) *TransitionTable[P, A] {
	t, err := NewTransitionTable(phases, edges)
	if err != nil {
		panic(err)
	}
	return t
}

// Next returns the phase reached by applying action in from.
func (t *TransitionTable[P, A]) Next(from P, action A) (P, error) {
	to, ok := t.edges[from][action]
	if !ok {
		return from, fmt.Errorf("%w: %q not allowed in phase %q", ErrIllegalTransition, action, from)
	}
	return to, nil
}

// Allows reports whether action is legal in from.
func (t *TransitionTable[P, A]) Allows(from P, action A) bool {
	_, ok := t.edges[from][action]
	return ok
}

// IsPhase reports whether p is one of the table's phases.
func (t *TransitionTable[P, A]) IsPhase(p P) bool {
	return t.phases[p]
}
