package lattice

import (
	"fmt"
	"math"

	"github.com/westphae/quaternion"

	"github.com/SeamusWaldron/twisty/pkg/types"
)

// Key identifies a lattice slot by its doubled coordinates, so half-integer
// positions of even layer counts stay integral.
type Key [3]int

// KeyOf returns the slot key nearest to v.
func KeyOf(v quaternion.Vec3) Key {
	return Key{
		int(math.Round(v.X * 2)),
		int(math.Round(v.Y * 2)),
		int(math.Round(v.Z * 2)),
	}
}

// Vec returns the slot centre.
func (k Key) Vec() quaternion.Vec3 {
	return Vec(float64(k[0])/2, float64(k[1])/2, float64(k[2])/2)
}

func (k Key) String() string {
	v := k.Vec()
	return fmt.Sprintf("(%g,%g,%g)", v.X, v.Y, v.Z)
}

// Facelet is one visible face of a piece, in the piece's local frame.
type Facelet struct {
	Normal quaternion.Vec3
	Color  types.Color
}

// Box is the visible body of a shape-mod piece, relative to its pivot,
// in the piece's local frame.
type Box struct {
	Center quaternion.Vec3
	Size   quaternion.Vec3
}

// Pose is a position and orientation pair.
type Pose struct {
	Position    quaternion.Vec3
	Orientation quaternion.Quaternion
}

// Rotated returns the pose after rotating the world by q.
func (p Pose) Rotated(q quaternion.Quaternion) Pose {
	return Pose{
		Position:    RotateVec(q, p.Position),
		Orientation: quaternion.Prod(q, p.Orientation),
	}
}

// Piece is a rigid element of the puzzle.
type Piece struct {
	ID          int
	Position    quaternion.Vec3
	Orientation quaternion.Quaternion
	Facelets    []Facelet
	Box         *Box

	origin Key
}

// NewPiece creates a piece resting at its origin slot.
func NewPiece(id int, origin Key) *Piece {
	return &Piece{
		ID:          id,
		Position:    origin.Vec(),
		Orientation: Identity,
		origin:      origin,
	}
}

// Origin returns the slot the piece was built in.
func (p *Piece) Origin() Key {
	return p.origin
}

// Slot returns the slot the piece currently occupies.
func (p *Piece) Slot() Key {
	return KeyOf(p.Position)
}

// Exposed reports whether the piece shows any face.
func (p *Piece) Exposed() bool {
	return len(p.Facelets) > 0
}

// WorldNormal returns the facelet normal in world space.
func (p *Piece) WorldNormal(f Facelet) quaternion.Vec3 {
	return RotateVec(p.Orientation, f.Normal)
}

// Pose returns the current pose.
func (p *Piece) Pose() Pose {
	return Pose{Position: p.Position, Orientation: p.Orientation}
}

// SetPose moves the piece.
func (p *Piece) SetPose(pose Pose) {
	p.Position = pose.Position
	p.Orientation = pose.Orientation
}

// Build creates the exposed pieces of a dims lattice with standard face colours.
// keep, when non-nil, filters slots out of the build.
func Build(dims types.Dimensions, keep func(Key) bool) []*Piece {
	var pieces []*Piece
	mx := [3]float64{dims.MaxIndex(types.AxisX), dims.MaxIndex(types.AxisY), dims.MaxIndex(types.AxisZ)}

	for i := 0; i < dims.X; i++ {
		for j := 0; j < dims.Y; j++ {
			for k := 0; k < dims.Z; k++ {
				pos := [3]float64{float64(i) - mx[0], float64(j) - mx[1], float64(k) - mx[2]}
				key := KeyOf(Vec(pos[0], pos[1], pos[2]))
				if keep != nil && !keep(key) {
					continue
				}

				var facelets []Facelet
				for a, axis := range types.Axes {
					u := axis.Unit()
					if pos[a] == mx[a] {
						facelets = append(facelets, Facelet{
							Normal: Vec(u[0], u[1], u[2]),
							Color:  types.FaceColor(types.PositiveFace(axis)),
						})
					}
					if pos[a] == -mx[a] {
						facelets = append(facelets, Facelet{
							Normal: Vec(-u[0], -u[1], -u[2]),
							Color:  types.FaceColor(types.NegativeFace(axis)),
						})
					}
				}
				if len(facelets) == 0 {
					continue // interior
				}

				p := NewPiece(len(pieces), key)
				p.Facelets = facelets
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}
