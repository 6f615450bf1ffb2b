package environment

import "github.com/conneroisu/yamlex/internal/literal"

// Environment is an ordered stack of frames; each frame maps a name to a
// literal.Literal. A freshly constructed Environment holds exactly one
// frame (the global frame).
type Environment struct {
	frames []map[string]literal.Literal
}

// New constructs an Environment with a single empty global frame.
func New() *Environment {
	return &Environment{frames: []map[string]literal.Literal{make(map[string]literal.Literal)}}
}

// Get scans frames from innermost to outermost and returns the first
// binding found for name. The second return value is false if name is
// bound nowhere in the stack.
func (e *Environment) Get(name string) (literal.Literal, bool) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if v, ok := e.frames[i][name]; ok {
			return v, true
		}
	}

	return literal.Nil, false
}

// Set inserts or overwrites name in the innermost frame only. If the
// environment has no frames, Set is a no-op.
func (e *Environment) Set(name string, value literal.Literal) {
	if len(e.frames) == 0 {
		return
	}

	e.frames[len(e.frames)-1][name] = value
}

// Assign finds the topmost frame already containing name and overwrites
// its binding in place. If name is bound nowhere, Assign does nothing; it
// never creates a new binding.
func (e *Environment) Assign(name string, value literal.Literal) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if _, ok := e.frames[i][name]; ok {
			e.frames[i][name] = value

			return
		}
	}
}

// Push creates a new, empty top frame.
func (e *Environment) Push() {
	e.frames = append(e.frames, make(map[string]literal.Literal))
}

// Pop removes the top frame. Popping the last frame is permitted and
// leaves the environment empty; callers that need to pair Push with Pop
// even on an error path should defer Pop immediately after Push.
func (e *Environment) Pop() {
	if len(e.frames) == 0 {
		return
	}

	e.frames = e.frames[:len(e.frames)-1]
}

// Dump flattens every frame into a single map, outermost first so an
// inner frame's binding shadows an outer one of the same name, exactly
// as Get would resolve it. Intended for diagnostics (e.g. a --show-env
// flag), not for evaluation.
func (e *Environment) Dump() map[string]literal.Literal {
	flat := make(map[string]literal.Literal)

	for _, frame := range e.frames {
		for name, value := range frame {
			flat[name] = value
		}
	}

	return flat
}

// Len reports the number of frames currently on the stack.
func (e *Environment) Len() int {
	return len(e.frames)
}

// IsEmpty reports whether the stack has no frames left.
func (e *Environment) IsEmpty() bool {
	return len(e.frames) == 0
}
