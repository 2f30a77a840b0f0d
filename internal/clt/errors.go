package clt

import "errors"

var (
	// ErrDegenerateMaterial means the on-axis stiffness cannot be inverted.
	ErrDegenerateMaterial = errors.New("degenerate material")

	// ErrSingularLaminate means A or D cannot be inverted.
	ErrSingularLaminate = errors.New("singular laminate stiffness")

	// ErrEmptyLayup means the stack has no plies.
	ErrEmptyLayup = errors.New("layup has no plies")

	// ErrInsufficientLayers means the stack is too small for the calculation.
	ErrInsufficientLayers = errors.New("not enough layers")

	// ErrNoLayersSelected means ply results were requested with no ply chosen.
	// Laminate-level results are still returned alongside it.
	ErrNoLayersSelected = errors.New("no layer selected")

	// ErrPlyOutOfRange means the selected index is not in the stack.
	ErrPlyOutOfRange = errors.New("ply index out of range")
)
