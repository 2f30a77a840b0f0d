package layup

import (
	"fmt"

	"github.com/google/uuid"
)

func newID() string {
	return uuid.NewString()
}

// NewPly returns a ply with a fresh ID. The index is assigned when it is
// added to a stack.
func NewPly(materialName string, thickness, orientation float64) Ply {
	return Ply{
		ID:          newID(),
		Material:    materialName,
		Thickness:   thickness,
		Orientation: orientation,
	}
}

// Reindex renumbers plies 1..N in stack order.
func (s *Stack) Reindex() {
	for i := range s.Layers {
		s.Layers[i].Index = i + 1
	}
}

func (s *Stack) checkIndex(index int) error {
	if index < 1 || index > len(s.Layers) {
		return fmt.Errorf("ply %d does not exist (stack has %d plies)", index, len(s.Layers))
	}
	return nil
}

// Add appends a ply to the end of the stack.
func (s *Stack) Add(p Ply) {
	if p.ID == "" {
		p.ID = newID()
	}
	s.Layers = append(s.Layers, p)
	s.Reindex()
}

// Insert places a ply so that it becomes ply number index. An index of N+1 appends.
func (s *Stack) Insert(index int, p Ply) error {
	if index < 1 || index > len(s.Layers)+1 {
		return fmt.Errorf("cannot insert at position %d (stack has %d plies)", index, len(s.Layers))
	}
	if p.ID == "" {
		p.ID = newID()
	}
	s.Layers = append(s.Layers, Ply{})
	copy(s.Layers[index:], s.Layers[index-1:])
	s.Layers[index-1] = p
	s.Reindex()
	return nil
}

// MoveUp swaps a ply with the one before it. Moving the first ply is a no-op.
func (s *Stack) MoveUp(index int) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	if index == 1 {
		return nil
	}
	s.Layers[index-1], s.Layers[index-2] = s.Layers[index-2], s.Layers[index-1]
	s.Reindex()
	return nil
}

// MoveDown swaps a ply with the one after it. Moving the last ply is a no-op.
func (s *Stack) MoveDown(index int) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	if index == len(s.Layers) {
		return nil
	}
	s.Layers[index-1], s.Layers[index] = s.Layers[index], s.Layers[index-1]
	s.Reindex()
	return nil
}

// Delete removes a ply.
func (s *Stack) Delete(index int) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	s.Layers = append(s.Layers[:index-1], s.Layers[index:]...)
	s.Reindex()
	return nil
}

// Clear removes every ply. The core setting is kept.
func (s *Stack) Clear() {
	s.Layers = nil
}

// Mirror prepends a reversed copy of the current plies, so that the result
// is symmetric and the existing plies form the half integrated for bending.
// Copies get fresh IDs.
func (s *Stack) Mirror() {
	n := len(s.Layers)
	mirrored := make([]Ply, 0, 2*n)
	for i := n - 1; i >= 0; i-- {
		p := s.Layers[i]
		p.ID = newID()
		mirrored = append(mirrored, p)
	}
	s.Layers = append(mirrored, s.Layers...)
	s.Reindex()
}
