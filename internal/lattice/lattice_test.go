package lattice

import (
	"math"
	"testing"

	"github.com/SeamusWaldron/twisty/pkg/types"
)

func TestCubeRotations_Has24Elements(t *testing.T) {
	rots := CubeRotations()
	if len(rots) != 24 {
		t.Fatalf("expected 24 rotations, got %d", len(rots))
	}
	if AngleBetween(rots[0], Identity) > 1e-9 {
		t.Error("first rotation should be the identity")
	}
	for i := range rots {
		for j := i + 1; j < len(rots); j++ {
			if AngleBetween(rots[i], rots[j]) < 1e-6 {
				t.Errorf("rotations %d and %d are equal", i, j)
			}
		}
	}
}

func TestBuild_PieceCounts(t *testing.T) {
	cases := []struct {
		dims types.Dimensions
		want int
	}{
		{types.Cube(1), 1},
		{types.Cube(2), 8},
		{types.Cube(3), 26},
		{types.Cube(4), 56},
		{types.Dimensions{X: 2, Y: 2, Z: 3}, 12},
		{types.Dimensions{X: 3, Y: 3, Z: 1}, 9},
	}
	for _, c := range cases {
		if got := len(Build(c.dims, nil)); got != c.want {
			t.Errorf("%s: expected %d pieces, got %d", c.dims, c.want, got)
		}
	}
}

func TestSliceMembers_OuterLayer(t *testing.T) {
	l := New(types.Cube(3), 0, Build(types.Cube(3), nil))
	if got := len(l.SliceMembers(types.AxisX, 1)); got != 9 {
		t.Errorf("expected 9 pieces in R layer, got %d", got)
	}
	if got := len(l.SliceMembers(types.AxisX, 0)); got != 8 {
		t.Errorf("expected 8 pieces in M layer (no core), got %d", got)
	}
	if got := len(l.Members(types.AxisY, types.WholePuzzle)); got != 26 {
		t.Errorf("expected 26 pieces for whole puzzle, got %d", got)
	}
}

func TestSnap_IdempotentOnLattice(t *testing.T) {
	l := New(types.Cube(4), 0, Build(types.Cube(4), nil))
	before := make([]Pose, len(l.Pieces()))
	for i, p := range l.Pieces() {
		before[i] = p.Pose()
	}
	l.SnapAll(l.Pieces())
	l.SnapAll(l.Pieces())
	for i, p := range l.Pieces() {
		if Distance(p.Position, before[i].Position) != 0 {
			t.Errorf("piece %d moved from %v to %v", i, before[i].Position, p.Position)
		}
		if AngleBetween(p.Orientation, before[i].Orientation) > 1e-9 {
			t.Errorf("piece %d rotated", i)
		}
	}
}

func TestSnap_RecoversDrift(t *testing.T) {
	l := New(types.Cube(2), 0, Build(types.Cube(2), nil))
	p := l.Pieces()[0]
	origin := p.Origin().Vec()
	p.Position = Vec(origin.X+0.03, origin.Y-0.04, origin.Z+0.01)
	p.Orientation = AxisAngle(types.AxisZ, 0.05)
	l.Snap(p)
	if p.Slot() != p.Origin() || Distance(p.Position, origin) != 0 {
		t.Errorf("expected piece back at %v, got %v", origin, p.Position)
	}
	if AngleBetween(p.Orientation, Identity) > 1e-9 {
		t.Error("expected identity orientation after snap")
	}
}

func TestRotate_FourQuarterTurnsIsIdentity(t *testing.T) {
	l := New(types.Cube(3), 0, Build(types.Cube(3), nil))
	layer := l.SliceMembers(types.AxisY, 1)
	for i := 0; i < 4; i++ {
		l.Rotate(layer, types.AxisY, math.Pi/2)
		l.SnapAll(layer)
	}
	for _, p := range l.Pieces() {
		if p.Slot() != p.Origin() {
			t.Errorf("piece %d at %v, expected %v", p.ID, p.Slot(), p.Origin())
		}
		if AngleBetween(p.Orientation, Identity) > 1e-6 {
			t.Errorf("piece %d not at rest orientation", p.ID)
		}
	}
}

func TestRotate_QuarterTurnMovesFacelets(t *testing.T) {
	l := New(types.Cube(3), 0, Build(types.Cube(3), nil))
	layer := l.SliceMembers(types.AxisX, 1)
	// -90 degrees about +x takes +z to +y
	l.Rotate(layer, types.AxisX, -math.Pi/2)
	l.SnapAll(layer)

	for _, p := range layer {
		for _, f := range p.Facelets {
			if f.Color != types.Green {
				continue
			}
			n := p.WorldNormal(f)
			if math.Abs(n.Y-1) > 1e-9 {
				t.Errorf("green facelet should face up, got %v", n)
			}
		}
	}
}

func TestReorient_SwapsOnOddTurns(t *testing.T) {
	dims := types.Dimensions{X: 2, Y: 2, Z: 3}
	l := New(dims, 0, Build(dims, nil))
	l.Reorient(types.AxisX, types.TurnCW)
	if got := l.Active(); got != (types.Dimensions{X: 2, Y: 3, Z: 2}) {
		t.Errorf("expected 2x3x2 after x, got %s", got)
	}
	l.Reorient(types.AxisX, types.Turn180)
	if got := l.Active(); got != (types.Dimensions{X: 2, Y: 3, Z: 2}) {
		t.Errorf("half turn should not swap, got %s", got)
	}
	if l.Dimensions() != dims {
		t.Error("build dimensions must not change")
	}
}

func TestIsLayer(t *testing.T) {
	dims := types.Dimensions{X: 4, Y: 3, Z: 1}
	cases := []struct {
		axis  types.Axis
		value float64
		want  bool
	}{
		{types.AxisX, 1.5, true},
		{types.AxisX, -0.5, true},
		{types.AxisX, 1, false},
		{types.AxisX, 2.5, false},
		{types.AxisY, 0, true},
		{types.AxisY, -1, true},
		{types.AxisY, 0.5, false},
		{types.AxisZ, 0, true},
		{types.AxisZ, 1, false},
	}
	for _, c := range cases {
		if got := IsLayer(dims, c.axis, c.value); got != c.want {
			t.Errorf("IsLayer(%s, %g) = %v, want %v", c.axis, c.value, got, c.want)
		}
	}
}

func TestRotateVec_QuarterTurns(t *testing.T) {
	cases := []struct {
		axis types.Axis
		in   [3]float64
		want [3]float64
	}{
		{types.AxisY, [3]float64{1, 0, 0}, [3]float64{0, 0, -1}},
		{types.AxisX, [3]float64{0, 1, 0}, [3]float64{0, 0, 1}},
		{types.AxisZ, [3]float64{1, 0, 0}, [3]float64{0, 1, 0}},
		{types.AxisZ, [3]float64{1.5, -0.5, 2}, [3]float64{0.5, 1.5, 2}},
	}
	for _, c := range cases {
		q := AxisAngle(c.axis, math.Pi/2)
		got := RotateVec(q, Vec(c.in[0], c.in[1], c.in[2]))
		want := Vec(c.want[0], c.want[1], c.want[2])
		if Distance(got, want) > 1e-9 {
			t.Errorf("%s quarter turn of %v = %v, want %v", c.axis, c.in, got, want)
		}
		back := RotateVec(q.Conj(), got)
		if Distance(back, Vec(c.in[0], c.in[1], c.in[2])) > 1e-9 {
			t.Errorf("conjugate should undo the turn, got %v", back)
		}
	}
}
