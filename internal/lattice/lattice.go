// Package lattice holds the piece set of a puzzle and the geometry that moves it.
//
// Positions are kept in lattice units: one unit is the centre-to-centre
// spacing, so slots sit on integer coordinates for odd layer counts and on
// half-integers for even ones.
package lattice

import (
	"fmt"
	"math"

	"github.com/SeamusWaldron/twisty/pkg/types"
)

// SliceTolerance is how close a piece must be to a slice coordinate to belong to it.
const SliceTolerance = 0.01

// DefaultSpacing is the centre-to-centre distance of a piece of size 1 with a 0.02 gap.
const DefaultSpacing = 1.02

// Lattice is a built puzzle: its pieces and its active dimensions.
type Lattice struct {
	dims    types.Dimensions
	active  types.Dimensions
	spacing float64
	pieces  []*Piece
}

// New wraps a built piece set.
func New(dims types.Dimensions, spacing float64, pieces []*Piece) *Lattice {
	if spacing <= 0 {
		spacing = DefaultSpacing
	}
	return &Lattice{
		dims:    dims,
		active:  dims,
		spacing: spacing,
		pieces:  pieces,
	}
}

// Dimensions returns the build dimensions.
func (l *Lattice) Dimensions() types.Dimensions {
	return l.dims
}

// Active returns the current layer counts per world axis.
func (l *Lattice) Active() types.Dimensions {
	return l.active
}

// Spacing returns the world distance of one lattice unit.
func (l *Lattice) Spacing() float64 {
	return l.spacing
}

// Pieces returns every piece.
func (l *Lattice) Pieces() []*Piece {
	return l.pieces
}

// SliceMembers returns the pieces whose coordinate along axis lies within
// SliceTolerance of value.
func (l *Lattice) SliceMembers(axis types.Axis, value float64) []*Piece {
	var out []*Piece
	for _, p := range l.pieces {
		if math.Abs(Component(p.Position, axis)-value) < SliceTolerance {
			out = append(out, p)
		}
	}
	return out
}

// WholePuzzleMembers returns every piece.
func (l *Lattice) WholePuzzleMembers() []*Piece {
	out := make([]*Piece, len(l.pieces))
	copy(out, l.pieces)
	return out
}

// Members dispatches on the whole-puzzle sentinel.
func (l *Lattice) Members(axis types.Axis, slice float64) []*Piece {
	if math.IsInf(slice, 1) {
		return l.WholePuzzleMembers()
	}
	return l.SliceMembers(axis, slice)
}

// HasLayer reports whether value is a layer coordinate along axis for the
// active dimensions.
func (l *Lattice) HasLayer(axis types.Axis, value float64) bool {
	return IsLayer(l.active, axis, value)
}

// IsLayer reports whether value is a layer coordinate along axis for dims.
func IsLayer(dims types.Dimensions, axis types.Axis, value float64) bool {
	n := dims.Of(axis)
	if n <= 0 {
		return false
	}
	idx := value + dims.MaxIndex(axis)
	r := math.Round(idx)
	return math.Abs(idx-r) < SliceTolerance && r >= 0 && int(r) < n
}

// Rotate turns pieces by angle radians about +axis through the origin.
func (l *Lattice) Rotate(pieces []*Piece, axis types.Axis, angle float64) {
	q := AxisAngle(axis, angle)
	for _, p := range pieces {
		p.SetPose(p.Pose().Rotated(q))
	}
}

// Reorient records a completed whole-puzzle turn. Odd quarter turns exchange
// the two layer counts perpendicular to axis.
func (l *Lattice) Reorient(axis types.Axis, turns types.Turn) {
	if int(turns.Normalize())%2 != 0 {
		l.active = l.active.Swapped(axis)
	}
}

// Snap places p exactly on the nearest lattice point for the active
// dimensions and its orientation on the nearest axis-aligned rotation.
func (l *Lattice) Snap(p *Piece) {
	p.Position = Vec(
		snapComponent(p.Position.X, l.active.X),
		snapComponent(p.Position.Y, l.active.Y),
		snapComponent(p.Position.Z, l.active.Z),
	)
	p.Orientation = NearestRotation(p.Orientation)
}

// SnapAll snaps every piece in pieces.
func (l *Lattice) SnapAll(pieces []*Piece) {
	for _, p := range pieces {
		l.Snap(p)
	}
}

func snapComponent(v float64, n int) float64 {
	if n%2 == 1 {
		return math.Round(v)
	}
	return math.Floor(v) + 0.5
}

func (l *Lattice) String() string {
	return fmt.Sprintf("%s lattice (active %s, %d pieces)", l.dims, l.active, len(l.pieces))
}
