// Package resolver turns move requests from any input source into one
// canonical rotation, so the same physical turn always yields the same move.
package resolver

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/SeamusWaldron/twisty/internal/lattice"
	"github.com/SeamusWaldron/twisty/pkg/types"
)

var (
	ErrInvalidAxis  = errors.New("resolver: invalid axis")
	ErrInvalidFace  = errors.New("resolver: face does not belong to axis")
	ErrInvalidDepth = errors.New("resolver: depth out of range")
	ErrNoSuchSlice  = errors.New("resolver: no such slice")
	ErrNoMiddle     = errors.New("resolver: axis has no middle slice")
	ErrNoOp         = errors.New("resolver: move has no net rotation")
)

// Conventions holds the per-variant notation geometry.
type Conventions struct {
	// AxisSign maps face-relative clockwise to a rotation direction about
	// +axis. -1 means clockwise when viewed from the face.
	AxisSign map[types.Axis]float64
	// MiddleFace is the reference face of a slice at coordinate 0.
	MiddleFace map[types.Axis]types.Face
}

// DefaultConventions returns standard notation: clockwise viewed from the
// face, M follows L, E follows D, S follows F.
func DefaultConventions() Conventions {
	return Conventions{
		AxisSign: map[types.Axis]float64{
			types.AxisX: -1,
			types.AxisY: -1,
			types.AxisZ: -1,
		},
		MiddleFace: map[types.Axis]types.Face{
			types.AxisX: types.FaceL,
			types.AxisY: types.FaceD,
			types.AxisZ: types.FaceF,
		},
	}
}

func (c Conventions) axisSign(a types.Axis) float64 {
	if s, ok := c.AxisSign[a]; ok && s != 0 {
		return math.Copysign(1, s)
	}
	return -1
}

// Middle returns the reference face for the middle slice of a.
func (c Conventions) Middle(a types.Axis) types.Face {
	if f, ok := c.MiddleFace[a]; ok && f.Axis() == a && !f.IsMiddle() {
		return f
	}
	return DefaultConventions().MiddleFace[a]
}

// SelectorKind says how a request names its slice.
type SelectorKind int

const (
	ByFace SelectorKind = iota
	ByCoordinate
	Whole
)

// Selector names the slice a request acts on.
type Selector struct {
	Kind       SelectorKind
	Face       types.Face // ByFace: outer face or M/E/S
	Depth      int        // ByFace: 1 is the outer layer
	Coordinate float64    // ByCoordinate: lattice units
}

// Face selects the layer depth layers in from face. M, E and S select
// the middle slice and ignore depth.
func Face(f types.Face, depth int) Selector {
	return Selector{Kind: ByFace, Face: f, Depth: depth}
}

// At selects the layer at a lattice coordinate.
func At(coordinate float64) Selector {
	return Selector{Kind: ByCoordinate, Coordinate: coordinate}
}

// All selects the whole puzzle.
func All() Selector {
	return Selector{Kind: Whole}
}

// Request is an unresolved move from a gesture, key, scrambler or playback.
// Turns are clockwise quarter turns relative to the named face; for
// coordinate selectors, relative to the slice's reference face; for whole
// moves, relative to the positive face as in x, y, z notation.
type Request struct {
	Axis     types.Axis
	Selector Selector
	Turns    types.Turn
	Duration time.Duration
}

// Concrete is a resolved move.
type Concrete struct {
	types.Move
	// Face is the reference face the turns are relative to.
	Face types.Face
	// Angle is the rotation in radians about +Axis.
	Angle float64
}

// Resolver resolves requests for one puzzle variant.
type Resolver struct {
	conv Conventions
}

// New creates a resolver with the given conventions.
func New(conv Conventions) *Resolver {
	return &Resolver{conv: conv}
}

// Conventions returns the resolver's conventions.
func (r *Resolver) Conventions() Conventions {
	return r.conv
}

// Resolve validates req against the active dimensions and returns the
// canonical rotation.
func (r *Resolver) Resolve(dims types.Dimensions, req Request) (Concrete, error) {
	axis := req.Axis
	if axis == "" && req.Selector.Kind == ByFace {
		axis = req.Selector.Face.Axis()
	}
	if !axis.Valid() {
		return Concrete{}, fmt.Errorf("%w: %q", ErrInvalidAxis, req.Axis)
	}

	turns := req.Turns.Normalize()
	if turns == types.TurnNone {
		return Concrete{}, ErrNoOp
	}

	if req.Selector.Kind == Whole {
		face := types.PositiveFace(axis)
		return Concrete{
			Move: types.Move{
				Axis:     axis,
				Slice:    types.WholePuzzle,
				Turns:    turns,
				Duration: req.Duration,
			},
			Face:  face,
			Angle: r.angle(axis, face, turns),
		}, nil
	}

	coord, requested, err := r.locate(dims, axis, req.Selector)
	if err != nil {
		return Concrete{}, err
	}

	face := r.ReferenceFace(axis, coord)
	if faceSign(requested, r.conv) != faceSign(face, r.conv) {
		turns = (-turns).Normalize()
	}

	// Non-square slices only line up again after a half turn.
	if !dims.SquareCrossSection(axis) && turns != types.Turn180 {
		turns = types.Turn180
	}

	return Concrete{
		Move: types.Move{
			Axis:     axis,
			Slice:    coord,
			Turns:    turns,
			Duration: req.Duration,
		},
		Face:  face,
		Angle: r.angle(axis, face, turns),
	}, nil
}

// ReferenceFace returns the face a slice's turns are counted against.
func (r *Resolver) ReferenceFace(axis types.Axis, coord float64) types.Face {
	switch {
	case coord > lattice.SliceTolerance:
		return types.PositiveFace(axis)
	case coord < -lattice.SliceTolerance:
		return types.NegativeFace(axis)
	default:
		return r.conv.Middle(axis)
	}
}

// locate finds the slice coordinate and the face the turns were given against.
func (r *Resolver) locate(dims types.Dimensions, axis types.Axis, sel Selector) (float64, types.Face, error) {
	n := dims.Of(axis)
	mx := dims.MaxIndex(axis)

	switch sel.Kind {
	case ByFace:
		f := sel.Face
		if f.Axis() != axis {
			return 0, "", fmt.Errorf("%w: %s on %s", ErrInvalidFace, f, axis)
		}
		if f.IsMiddle() {
			if n%2 == 0 {
				return 0, "", fmt.Errorf("%w: %s has %d layers", ErrNoMiddle, axis, n)
			}
			return 0, r.conv.Middle(axis), nil
		}
		depth := sel.Depth
		if depth == 0 {
			depth = 1
		}
		if depth < 1 || depth > n {
			return 0, "", fmt.Errorf("%w: %d%s on %d layers", ErrInvalidDepth, depth, f, n)
		}
		coord := mx - float64(depth-1)
		if f.Sign() < 0 {
			coord = -coord
		}
		return coord, f, nil

	case ByCoordinate:
		if !lattice.IsLayer(dims, axis, sel.Coordinate) {
			return 0, "", fmt.Errorf("%w: %s=%g", ErrNoSuchSlice, axis, sel.Coordinate)
		}
		coord := math.Round(sel.Coordinate*2) / 2
		return coord, r.ReferenceFace(axis, coord), nil
	}
	return 0, "", fmt.Errorf("%w: selector %d", ErrNoSuchSlice, sel.Kind)
}

// angle converts face-relative turns into radians about +axis.
func (r *Resolver) angle(axis types.Axis, face types.Face, turns types.Turn) float64 {
	return float64(turns) * math.Pi / 2 * float64(faceSign(face, r.conv)) * r.conv.axisSign(axis)
}

// faceSign is the sign of dot(+axis, face normal).
func faceSign(f types.Face, conv Conventions) int {
	if f.IsMiddle() {
		f = conv.Middle(f.Axis())
	}
	return f.Sign()
}

// FromDrag converts a gesture's rotation about +axis into a request.
// The angle is rounded to the nearest quarter turn; coordinate may be
// types.WholePuzzle.
func (r *Resolver) FromDrag(axis types.Axis, coordinate, radians float64, d time.Duration) Request {
	quarter := types.Turn(math.Round(radians / (math.Pi / 2)))
	if math.IsInf(coordinate, 1) {
		face := types.PositiveFace(axis)
		return Request{
			Axis:     axis,
			Selector: All(),
			Turns:    quarter * types.Turn(faceSign(face, r.conv)*int(r.conv.axisSign(axis))),
			Duration: d,
		}
	}
	face := r.ReferenceFace(axis, coordinate)
	return Request{
		Axis:     axis,
		Selector: At(coordinate),
		Turns:    quarter * types.Turn(faceSign(face, r.conv)*int(r.conv.axisSign(axis))),
		Duration: d,
	}
}
