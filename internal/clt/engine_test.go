package clt

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/goclt/internal/layup"
	"github.com/alexiusacademia/goclt/internal/mat3"
	"github.com/alexiusacademia/goclt/internal/material"
)

func crossPly() *layup.Stack {
	s := plies("T300/5208", 0.125, 0, 0.125, 90)
	s.Mirror()
	return s
}

func TestEngine_FullCalculation(t *testing.T) {
	e := NewEngine(catalog(t), nil)
	req := Request{
		Load:     LoadState{N: mat3.Vec3{1000, 0, 0}, M: mat3.Vec3{0.5, 0, 0}},
		Ply:      1,
		Position: Middle,
	}

	res, err := e.Calculate(crossPly(), req)
	require.NoError(t, err)
	require.NotNil(t, res.Ply)

	assert.Equal(t, StackVerifiedSymmetric, res.Bending.Symmetry)
	assert.Equal(t, Middle, res.Ply.Position)
	assert.Equal(t, res.Response, Solve(res.Extensional, res.Bending, req.Load))
	assert.Same(t, res, e.Last())
}

func TestEngine_NoSelectionIsPartial(t *testing.T) {
	e := NewEngine(catalog(t), nil)

	res, err := e.Calculate(crossPly(), Request{Load: LoadState{N: mat3.Vec3{100, 0, 0}}})
	assert.ErrorIs(t, err, ErrNoLayersSelected)
	assert.True(t, IsPartial(err))
	require.NotNil(t, res)
	assert.Nil(t, res.Ply)
	assert.NotEqual(t, mat3.Mat3{}, res.Extensional.A)
	assert.NotEqual(t, mat3.Mat3{}, res.Bending.D)
	assert.Same(t, res, e.Last())
}

func TestEngine_FailureKeepsLastResult(t *testing.T) {
	e := NewEngine(catalog(t), nil)

	good, err := e.Calculate(crossPly(), Request{Ply: 2})
	require.NoError(t, err)

	res, err := e.Calculate(&layup.Stack{}, Request{Ply: 1})
	assert.ErrorIs(t, err, ErrEmptyLayup)
	assert.Nil(t, res)
	assert.Same(t, good, e.Last())

	single := plies("T300/5208", 1, 0)
	_, err = e.Calculate(single, Request{Ply: 1})
	assert.ErrorIs(t, err, ErrInsufficientLayers)
	assert.Same(t, good, e.Last())

	bad := crossPly()
	bad.Layers[3].Material = "Unobtainium"
	_, err = e.Calculate(bad, Request{Ply: 1})
	assert.ErrorIs(t, err, material.ErrNotFound)
	assert.Same(t, good, e.Last())

	_, err = e.Calculate(crossPly(), Request{Ply: 9})
	assert.ErrorIs(t, err, ErrPlyOutOfRange)
	assert.Same(t, good, e.Last())
}

func TestEngine_DeleteAllThenCalculate(t *testing.T) {
	e := NewEngine(catalog(t), nil)
	s := crossPly()
	s.Clear()

	_, err := e.Calculate(s, Request{})
	assert.ErrorIs(t, err, ErrEmptyLayup)
	assert.Nil(t, e.Last())
}

func TestEngine_LogsAsymmetricStack(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e := NewEngine(catalog(t), log)

	_, err := e.Calculate(plies("T300/5208", 1, 0, 1, 90), Request{Ply: 1})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "stack is not symmetric")
	assert.Contains(t, buf.String(), "symmetry=StackAssumedSymmetric")
}
