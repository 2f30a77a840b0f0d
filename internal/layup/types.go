// Package layup models a laminate ply stack: its JSON file form, its
// through-thickness geometry and the edits a user makes to it.
package layup

import "fmt"

// Stack is an ordered laminate layup. Ply 1 is the first element of Layers.
// For bending the stack is taken to be symmetric about its mid-plane, with
// the second half of Layers (from position N/2) as the half that is
// integrated; see Mirror for building such a stack.
type Stack struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	// Core separates the two halves of a sandwich layup. Core is the offset
	// (mm) from the mid-plane to the first ply face and is only read when
	// HasCore is set.
	HasCore bool    `json:"has_core,omitempty"`
	Core    float64 `json:"core_thickness,omitempty"`

	Layers []Ply `json:"plies"`
}

// Ply is a single unidirectional layer.
type Ply struct {
	// ID is stable across edits; Index is not.
	ID    string `json:"id,omitempty"`
	Index int    `json:"ply"`

	Material    string  `json:"material"`
	Thickness   float64 `json:"thickness"`   // mm
	Orientation float64 `json:"orientation"` // degrees from the laminate x-axis
}

// Plies returns a copy of the ply sequence in stack order.
func (s *Stack) Plies() []Ply {
	out := make([]Ply, len(s.Layers))
	copy(out, s.Layers)
	return out
}

// CoreThickness returns the core offset, and false when the stack has no core.
func (s *Stack) CoreThickness() (float64, bool) {
	if !s.HasCore {
		return 0, false
	}
	return s.Core, true
}

// Len returns the number of plies.
func (s *Stack) Len() int {
	return len(s.Layers)
}

// Ply returns the ply with the given 1-based index.
func (s *Stack) Ply(index int) (Ply, bool) {
	if index < 1 || index > len(s.Layers) {
		return Ply{}, false
	}
	return s.Layers[index-1], true
}

// Snapshot returns a deep copy of the stack.
func (s *Stack) Snapshot() *Stack {
	c := *s
	c.Layers = s.Plies()
	return &c
}

// Validate checks that the stack definition is usable.
func (s *Stack) Validate() error {
	if s.HasCore && s.Core < 0 {
		return &ValidationError{"core thickness must be greater than or equal to zero"}
	}
	for i, p := range s.Layers {
		if p.Material == "" {
			return &ValidationError{msg: fmt.Sprintf("ply %d must have a material", i+1)}
		}
		if p.Thickness <= 0 {
			return &ValidationError{msg: fmt.Sprintf("ply %d must have positive thickness", i+1)}
		}
	}
	return nil
}

// ValidationError represents a layup validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
