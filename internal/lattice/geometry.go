package lattice

import (
	"math"
	"sort"
	"sync"

	"github.com/westphae/quaternion"

	"github.com/SeamusWaldron/twisty/pkg/types"
)

// Identity is the rest orientation of every piece.
var Identity = quaternion.Quaternion{W: 1}

// Vec builds a vector from components.
func Vec(x, y, z float64) quaternion.Vec3 {
	return quaternion.Vec3{X: x, Y: y, Z: z}
}

// AxisVec returns the +axis unit vector.
func AxisVec(a types.Axis) quaternion.Vec3 {
	u := a.Unit()
	return Vec(u[0], u[1], u[2])
}

// Component returns the coordinate of v along a.
func Component(v quaternion.Vec3, a types.Axis) float64 {
	switch a {
	case types.AxisX:
		return v.X
	case types.AxisY:
		return v.Y
	case types.AxisZ:
		return v.Z
	default:
		return 0
	}
}

// AxisAngle returns the rotation by angle radians about +axis (right-handed).
func AxisAngle(a types.Axis, angle float64) quaternion.Quaternion {
	u := a.Unit()
	s := math.Sin(angle / 2)
	return quaternion.Quaternion{W: math.Cos(angle / 2), X: u[0] * s, Y: u[1] * s, Z: u[2] * s}
}

// RotateVec rotates v by q.
func RotateVec(q quaternion.Quaternion, v quaternion.Vec3) quaternion.Vec3 {
	return q.RotateVec3(v)
}

// Dot is the 4D dot product of two quaternions.
func Dot(a, b quaternion.Quaternion) float64 {
	return a.W*b.W + a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// AngleBetween returns the rotation angle taking a to b, in [0, pi].
func AngleBetween(a, b quaternion.Quaternion) float64 {
	d := math.Min(1, math.Abs(Dot(a, b)))
	return 2 * math.Acos(d)
}

// Canonical picks the representative of q with a non-negative leading component.
func Canonical(q quaternion.Quaternion) quaternion.Quaternion {
	for _, c := range []float64{q.W, q.X, q.Y, q.Z} {
		if math.Abs(c) < 1e-9 {
			continue
		}
		if c < 0 {
			return quaternion.Quaternion{W: -q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
		}
		return q
	}
	return q
}

// Distance returns the euclidean distance between two vectors.
func Distance(a, b quaternion.Vec3) float64 {
	return math.Sqrt((a.X-b.X)*(a.X-b.X) + (a.Y-b.Y)*(a.Y-b.Y) + (a.Z-b.Z)*(a.Z-b.Z))
}

var (
	rotationsOnce sync.Once
	rotations     []quaternion.Quaternion
)

// CubeRotations returns the 24 orientation-preserving symmetries of a cube.
// The group is generated by closing quarter turns about x and y.
func CubeRotations() []quaternion.Quaternion {
	rotationsOnce.Do(func() {
		gens := []quaternion.Quaternion{
			AxisAngle(types.AxisX, math.Pi/2),
			AxisAngle(types.AxisY, math.Pi/2),
		}
		seen := map[[4]int64]bool{}
		queue := []quaternion.Quaternion{Identity}
		seen[rotationKey(Identity)] = true
		for len(queue) > 0 {
			q := queue[0]
			queue = queue[1:]
			rotations = append(rotations, q)
			for _, g := range gens {
				next := Canonical(quaternion.Prod(g, q))
				k := rotationKey(next)
				if seen[k] {
					continue
				}
				seen[k] = true
				queue = append(queue, next)
			}
		}
		sort.SliceStable(rotations, func(i, j int) bool {
			return rotations[i].W > rotations[j].W
		})
	})
	return rotations
}

func rotationKey(q quaternion.Quaternion) [4]int64 {
	q = Canonical(q)
	return [4]int64{
		int64(math.Round(q.W * 1e4)),
		int64(math.Round(q.X * 1e4)),
		int64(math.Round(q.Y * 1e4)),
		int64(math.Round(q.Z * 1e4)),
	}
}

// NearestRotation returns the member of CubeRotations closest to q.
func NearestRotation(q quaternion.Quaternion) quaternion.Quaternion {
	best := Identity
	bestDot := -1.0
	for _, r := range CubeRotations() {
		if d := math.Abs(Dot(q, r)); d > bestDot {
			best, bestDot = r, d
		}
	}
	return best
}
