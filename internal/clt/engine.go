// Package clt implements Classical Lamination Theory: on-axis ply stiffness,
// rotation through the stiffness invariants, laminate A and D assembly, the
// load response and ply strain/stress recovery.
package clt

import (
	"errors"
	"io"
	"log/slog"
	"sync"
)

// Request describes one calculation.
type Request struct {
	Load LoadState

	// Ply is the 1-based index of the selected ply; 0 selects none.
	Ply      int
	Position Position
}

// Result is everything a calculation produces. Ply is nil when no ply was
// selected.
type Result struct {
	Extensional Extensional
	Bending     Bending
	Response    Response
	Ply         *PlyResult
}

// Engine runs calculations and keeps the last successful result.
type Engine struct {
	catalog Catalog
	log     *slog.Logger

	mu   sync.Mutex
	last *Result
}

// NewEngine returns an engine resolving materials through cat. A nil logger
// discards log output.
func NewEngine(cat Catalog, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{catalog: cat, log: log}
}

// Calculate computes laminate stiffness, the response to req.Load and, when a
// ply is selected, that ply's strain and stress.
//
// With no ply selected the laminate-level result is returned together with
// ErrNoLayersSelected. Any other error returns a nil result and leaves Last
// unchanged.
func (e *Engine) Calculate(stack Layup, req Request) (*Result, error) {
	plies := stack.Plies()
	if len(plies) == 0 {
		e.log.Warn("nothing to calculate")
		return nil, ErrEmptyLayup
	}

	ext, err := AssembleExtensional(stack, e.catalog)
	if err != nil {
		e.log.Error("extensional stiffness failed", "err", err)
		return nil, err
	}
	e.log.Debug("extensional stiffness",
		"plies", len(plies), "thickness_mm", ext.Thickness, "material", ext.Representative)

	bend, err := AssembleBending(stack, e.catalog)
	if err != nil {
		e.log.Error("bending stiffness failed", "err", err)
		return nil, err
	}
	e.log.Debug("bending stiffness",
		"height_mm", bend.Height, "core_fraction", bend.CoreFraction, "symmetry", bend.Symmetry.String())
	if bend.Symmetry == StackAssumedSymmetric {
		e.log.Warn("stack is not symmetric; D uses the outer half only")
	}

	res := &Result{
		Extensional: ext,
		Bending:     bend,
		Response:    Solve(ext, bend, req.Load),
	}

	if req.Ply == 0 {
		e.log.Warn("no layer selected; only laminate properties were calculated")
		e.store(res)
		return res, ErrNoLayersSelected
	}

	ply, err := RecoverPly(stack, e.catalog, req.Ply, req.Position, res.Response)
	if err != nil {
		e.log.Error("ply recovery failed", "ply", req.Ply, "err", err)
		return nil, err
	}
	e.log.Debug("ply recovered",
		"ply", req.Ply, "position", req.Position.String(), "z_mm", ply.ZOfInterest)
	res.Ply = &ply

	e.store(res)
	return res, nil
}

// Last returns the most recent result that was at least partially
// successful, or nil.
func (e *Engine) Last() *Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.last
}

func (e *Engine) store(res *Result) {
	e.mu.Lock()
	e.last = res
	e.mu.Unlock()
}

// IsPartial reports whether err still came with laminate-level results.
func IsPartial(err error) bool {
	return errors.Is(err, ErrNoLayersSelected)
}
