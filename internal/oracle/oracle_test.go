package oracle

import (
	"math"
	"reflect"
	"testing"

	"github.com/SeamusWaldron/twisty/internal/lattice"
	"github.com/SeamusWaldron/twisty/pkg/types"
)

func build(n int) *lattice.Lattice {
	dims := types.Cube(n)
	return lattice.New(dims, 0, lattice.Build(dims, nil))
}

func turn(l *lattice.Lattice, axis types.Axis, slice float64, quarters int) {
	pieces := l.Members(axis, slice)
	l.Rotate(pieces, axis, float64(quarters)*math.Pi/2)
	if math.IsInf(slice, 1) {
		l.Reorient(axis, types.Turn(quarters))
	}
	l.SnapAll(pieces)
}

func TestFaceColors_FreshIsSolved(t *testing.T) {
	for n := 1; n <= 6; n++ {
		if !(FaceColors{}).Solved(build(n).Pieces()) {
			t.Errorf("fresh %dx%dx%d should be solved", n, n, n)
		}
	}
}

func TestFaceColors_SliceBreaksWholeKeeps(t *testing.T) {
	l := build(3)
	turn(l, types.AxisX, 1, 1)
	if (FaceColors{}).Solved(l.Pieces()) {
		t.Error("one face turn should break the colour test")
	}
	turn(l, types.AxisX, 1, -1)

	turn(l, types.AxisY, types.WholePuzzle, 1)
	turn(l, types.AxisZ, types.WholePuzzle, 2)
	if !(FaceColors{}).Solved(l.Pieces()) {
		t.Error("whole puzzle rotations keep it solved")
	}
}

func TestFaceColors_EmptyDirectionIsNotSolved(t *testing.T) {
	dims := types.Cube(3)
	// Only the top layer: nothing faces down.
	pieces := lattice.Build(dims, func(k lattice.Key) bool { return k[1] == 2 })
	if (FaceColors{}).Solved(pieces) {
		t.Error("a direction with no facelets cannot be solved")
	}
}

func TestSymmetric_IdentityUnderRotation(t *testing.T) {
	l := build(2)
	o := NewSymmetric(Identity(l.Pieces()))
	if !o.Solved(l.Pieces()) {
		t.Fatal("fresh puzzle should match identity mapping")
	}
	turn(l, types.AxisX, types.WholePuzzle, 1)
	turn(l, types.AxisY, types.WholePuzzle, -1)
	if !o.Solved(l.Pieces()) {
		t.Error("whole rotations should match under some rotation")
	}
	turn(l, types.AxisY, 0.5, 1)
	if o.Solved(l.Pieces()) {
		t.Error("a layer turn should not match")
	}
}

func TestSymmetric_AnywhereAndAnyOrientation(t *testing.T) {
	l := build(2)
	m := Identity(l.Pieces())
	for _, p := range l.Pieces() {
		if p.Origin()[1] > 0 {
			slots := map[lattice.Key]Orientations{}
			for _, q := range l.Pieces() {
				if q.Origin()[1] > 0 {
					slots[q.Origin()] = nil
				}
			}
			m[p.Origin()] = Target{Slots: slots}
		}
	}
	o := NewSymmetric(m)
	turn(l, types.AxisY, 0.5, 1)
	if !o.Solved(l.Pieces()) {
		t.Error("top pieces may be in any top slot and any orientation")
	}
	turn(l, types.AxisX, 0.5, 1)
	if o.Solved(l.Pieces()) {
		t.Error("bottom pieces are still fixed")
	}

	m2 := Mapping{}
	for _, p := range l.Pieces() {
		m2[p.Origin()] = Target{Anywhere: true}
	}
	if !NewSymmetric(m2).Solved(l.Pieces()) {
		t.Error("anywhere targets always match")
	}
}

func TestDerive_StandardColoursMatchFaceTest(t *testing.T) {
	l := build(3)
	o := NewSymmetric(Derive(l.Pieces()))
	sequences := []struct {
		axis   types.Axis
		slice  float64
		turns  int
		solved bool
	}{
		{types.AxisY, types.WholePuzzle, 1, true},
		{types.AxisX, 1, 1, false},
		{types.AxisX, 1, -1, true},
		{types.AxisZ, 0, 2, false},
		{types.AxisZ, 0, 2, true},
	}
	for i, s := range sequences {
		turn(l, s.axis, s.slice, s.turns)
		if got := o.Solved(l.Pieces()); got != s.solved {
			t.Errorf("step %d: derived oracle says %v, want %v", i, got, s.solved)
		}
		if got := (FaceColors{}).Solved(l.Pieces()); got != s.solved {
			t.Errorf("step %d: colour oracle says %v, want %v", i, got, s.solved)
		}
	}
}

func TestDerive_CentresOfUniformFaceTurnFreely(t *testing.T) {
	// A single-colour 3x3x3 with only its box shape: every edge and corner is
	// interchangeable, so a face turn still looks solved.
	l := build(3)
	for _, p := range l.Pieces() {
		for i := range p.Facelets {
			p.Facelets[i].Color = types.Gold
		}
	}
	o := NewSymmetric(Derive(l.Pieces()))
	turn(l, types.AxisX, 1, 1)
	turn(l, types.AxisY, 0, 1)
	if !o.Solved(l.Pieces()) {
		t.Error("uniform pieces without shape should always look solved")
	}
}

func TestDerive_LookalikesShareSlotTables(t *testing.T) {
	l := build(6)
	m := Derive(l.Pieces())

	tables := map[uintptr]int{}
	hidden := 0
	for _, p := range l.Pieces() {
		target := m[p.Origin()]
		if target.Anywhere {
			hidden++
			continue
		}
		tables[reflect.ValueOf(target.Slots).Pointer()] = len(target.Slots)
	}
	if hidden != 64 {
		t.Errorf("expected 64 hidden pieces, got %d", hidden)
	}
	// 8 corners, 12 edge classes and 6 centre classes.
	if len(tables) != 26 {
		t.Errorf("expected 26 shared slot tables, got %d", len(tables))
	}

	up := m[lattice.KeyOf(lattice.Vec(0.5, 2.5, 0.5))]
	if len(up.Slots) != 16 {
		t.Errorf("expected an up centre to fit 16 slots, got %d", len(up.Slots))
	}

	turn(l, types.AxisY, 2.5, 1)
	turn(l, types.AxisX, 0.5, 2)
	turn(l, types.AxisX, 0.5, 2)
	turn(l, types.AxisY, 2.5, -1)
	if !NewSymmetric(m).Solved(l.Pieces()) {
		t.Error("undone moves should look solved")
	}
}

func TestUniformFaces(t *testing.T) {
	l := build(3)
	if got := UniformFaces(l.Pieces()); got != 6 {
		t.Errorf("fresh cube has 6 uniform faces, got %d", got)
	}
	turn(l, types.AxisX, 1, 1)
	if got := UniformFaces(l.Pieces()); got != 2 {
		t.Errorf("R leaves R and L uniform, got %d", got)
	}
}
