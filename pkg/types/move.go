// Package types contains the value types shared by every twisty package.
package types

import (
	"math"
	"time"
)

// Turn counts clockwise quarter turns as seen looking at a slice's reference face.
type Turn int

const (
	TurnNone Turn = 0
	TurnCW   Turn = 1  // Clockwise quarter turn
	TurnCCW  Turn = -1 // Counter-clockwise quarter turn
	Turn180  Turn = 2  // Half turn
)

// Normalize reduces t modulo 4 into {0, 1, -1, 2}.
// Half turns are always reported as +2.
func (t Turn) Normalize() Turn {
	n := ((int(t) % 4) + 4) % 4
	switch n {
	case 3:
		return TurnCCW
	default:
		return Turn(n)
	}
}

// Inverse returns the turn that undoes t.
func (t Turn) Inverse() Turn {
	return (-t).Normalize()
}

// IsNone reports whether t is a full number of revolutions.
func (t Turn) IsNone() bool {
	return t.Normalize() == TurnNone
}

// Suffix returns the notation suffix for the turn: "", "'" or "2".
func (t Turn) Suffix() string {
	switch t.Normalize() {
	case TurnCCW:
		return "'"
	case Turn180:
		return "2"
	default:
		return ""
	}
}

// WholePuzzle is the slice sentinel selecting every piece.
var WholePuzzle = math.Inf(1)

// Move is a canonical rotation request: which slice, how far, how fast.
// Slice is a lattice coordinate along Axis (units of spacing), or WholePuzzle.
// Turns is relative to the slice's reference face.
type Move struct {
	Axis     Axis          `json:"axis"`
	Slice    float64       `json:"slice"`
	Turns    Turn          `json:"turns"`
	Duration time.Duration `json:"duration"`
}

// IsWhole reports whether the move rotates the entire puzzle.
func (m Move) IsWhole() bool {
	return math.IsInf(m.Slice, 1)
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	inv := m
	inv.Turns = m.Turns.Inverse()
	return inv
}

// SameSlice reports whether both moves act on the same axis and layer.
func (m Move) SameSlice(other Move) bool {
	if m.Axis != other.Axis {
		return false
	}
	if m.IsWhole() || other.IsWhole() {
		return m.IsWhole() == other.IsWhole()
	}
	return math.Abs(m.Slice-other.Slice) < 0.01
}
