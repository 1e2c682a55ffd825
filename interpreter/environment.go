package interpreter

import "glox/value"

type binding struct {
	name  string
	value value.Value
}

// EnvironmentStack is a stack of append-only binding frames. Set never
// mutates a pair in place; it appends, and lookup takes the newest
// match. That makes redeclaring a name in the same scope a silent
// shadow, and makes assignment and declaration identical at the
// storage layer.
type EnvironmentStack struct {
	frames [][]binding
}

// NewEnvironment returns a stack holding the global frame, which is
// never popped.
func NewEnvironment() *EnvironmentStack {
	return &EnvironmentStack{frames: [][]binding{{}}}
}

// Get scans frames innermost-first and each frame newest-first,
// returning the first match.
func (e *EnvironmentStack) Get(name string) (value.Value, bool) {
	for f := len(e.frames) - 1; f >= 0; f-- {
		frame := e.frames[f]
		for b := len(frame) - 1; b >= 0; b-- {
			if frame[b].name == name {
				return frame[b].value, true
			}
		}
	}
	return value.Value{}, false
}

// Set appends a fresh binding to the innermost frame.
func (e *EnvironmentStack) Set(name string, v value.Value) {
	top := len(e.frames) - 1
	e.frames[top] = append(e.frames[top], binding{name: name, value: v})
}

// Enter pushes a new empty frame.
func (e *EnvironmentStack) Enter() {
	e.frames = append(e.frames, nil)
}

// Exit pops the innermost frame. The global frame stays.
func (e *EnvironmentStack) Exit() {
	if len(e.frames) > 1 {
		e.frames = e.frames[:len(e.frames)-1]
	}
}

// Depth reports the number of live frames, including the global one.
func (e *EnvironmentStack) Depth() int {
	return len(e.frames)
}
