// Package oracle decides whether a puzzle is solved.
//
// Plain puzzles are solved when every outer face shows one colour. Shape and
// picture mods look solved in many arrangements, so they are checked against
// a family of mappings from each piece's origin slot to the slots and
// orientations it may occupy, under every whole-puzzle rotation.
package oracle

import (
	"math"

	"github.com/westphae/quaternion"

	"github.com/SeamusWaldron/twisty/internal/lattice"
)

// Default tolerances, in lattice units and radians.
const (
	PositionTolerance = 0.2
	AngleTolerance    = 0.2
	normalThreshold   = 0.9
)

// Oracle reports whether pieces form a solved puzzle.
type Oracle interface {
	Solved(pieces []*lattice.Piece) bool
}

// FaceColors is solved when, for each of the six outer directions, every
// facelet facing that way has the same colour and at least one does.
type FaceColors struct{}

var directions = []quaternion.Vec3{
	lattice.Vec(1, 0, 0), lattice.Vec(-1, 0, 0),
	lattice.Vec(0, 1, 0), lattice.Vec(0, -1, 0),
	lattice.Vec(0, 0, 1), lattice.Vec(0, 0, -1),
}

func (FaceColors) Solved(pieces []*lattice.Piece) bool {
	for _, dir := range directions {
		seen := false
		var color byte
		for _, p := range pieces {
			for _, f := range p.Facelets {
				n := p.WorldNormal(f)
				if n.X*dir.X+n.Y*dir.Y+n.Z*dir.Z <= normalThreshold {
					continue
				}
				if !seen {
					seen, color = true, byte(f.Color)
					continue
				}
				if byte(f.Color) != color {
					return false
				}
			}
		}
		if !seen {
			return false
		}
	}
	return true
}

// Orientations lists the allowed orientations at a slot. Nil allows any.
type Orientations []quaternion.Quaternion

// Target is where a piece may be in a solved state.
type Target struct {
	// Anywhere accepts any position and orientation.
	Anywhere bool
	Slots    map[lattice.Key]Orientations
}

// Mapping assigns a target to every origin slot.
type Mapping map[lattice.Key]Target

// Family is a set of mappings; matching any one is solved.
type Family []Mapping

// Symmetric checks pieces against a family under every rotation of the
// whole puzzle.
type Symmetric struct {
	Family            Family
	Rotations         []quaternion.Quaternion
	PositionTolerance float64
	AngleTolerance    float64
}

// NewSymmetric creates an oracle over the 24 cube rotations with default tolerances.
func NewSymmetric(family ...Mapping) *Symmetric {
	return &Symmetric{
		Family:            family,
		Rotations:         lattice.CubeRotations(),
		PositionTolerance: PositionTolerance,
		AngleTolerance:    AngleTolerance,
	}
}

func (s *Symmetric) Solved(pieces []*lattice.Piece) bool {
	for _, g := range s.Rotations {
		inv := g.Conj()
		for _, m := range s.Family {
			if s.matches(inv, m, pieces) {
				return true
			}
		}
	}
	return false
}

// matches checks every piece after undoing a whole-puzzle rotation.
func (s *Symmetric) matches(inv quaternion.Quaternion, m Mapping, pieces []*lattice.Piece) bool {
	for _, p := range pieces {
		t, ok := m[p.Origin()]
		if !ok {
			return false
		}
		if t.Anywhere {
			continue
		}

		pos := lattice.RotateVec(inv, p.Position)
		key := lattice.KeyOf(pos)
		if lattice.Distance(pos, key.Vec()) > s.PositionTolerance {
			return false
		}
		allowed, ok := t.Slots[key]
		if !ok {
			return false
		}
		if allowed == nil {
			continue
		}

		q := quaternion.Prod(inv, p.Orientation)
		found := false
		for _, e := range allowed {
			if lattice.AngleBetween(q, e) < s.AngleTolerance {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Fixed is a target allowing exactly one slot and orientation.
func Fixed(slot lattice.Key, q quaternion.Quaternion) Target {
	return Target{Slots: map[lattice.Key]Orientations{slot: {q}}}
}

// Identity maps every piece to its own slot at rest.
func Identity(pieces []*lattice.Piece) Mapping {
	m := make(Mapping, len(pieces))
	for _, p := range pieces {
		m[p.Origin()] = Fixed(p.Origin(), lattice.Identity)
	}
	return m
}

func approxEqual(a, b quaternion.Vec3) bool {
	return math.Abs(a.X-b.X) < 1e-6 && math.Abs(a.Y-b.Y) < 1e-6 && math.Abs(a.Z-b.Z) < 1e-6
}

// UniformFaces counts the outer directions whose facelets all share one
// colour. It measures progress on colour puzzles and reaches 6 when solved.
func UniformFaces(pieces []*lattice.Piece) int {
	count := 0
	for _, dir := range directions {
		seen, uniform := false, true
		var color byte
		for _, p := range pieces {
			for _, f := range p.Facelets {
				n := p.WorldNormal(f)
				if n.X*dir.X+n.Y*dir.Y+n.Z*dir.Z <= normalThreshold {
					continue
				}
				if !seen {
					seen, color = true, byte(f.Color)
				} else if byte(f.Color) != color {
					uniform = false
				}
			}
		}
		if seen && uniform {
			count++
		}
	}
	return count
}
