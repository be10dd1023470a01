package resolver

import (
	"errors"
	"math"
	"testing"

	"github.com/SeamusWaldron/twisty/pkg/types"
)

func TestResolve_OppositeFacesAgree(t *testing.T) {
	r := New(DefaultConventions())
	dims := types.Cube(3)

	// On a single-layer axis R and L' turn the same pieces the same way.
	one := types.Dimensions{X: 1, Y: 3, Z: 3}
	a, err := r.Resolve(one, Request{Selector: Face(types.FaceR, 1), Turns: types.TurnCW})
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Resolve(one, Request{Selector: Face(types.FaceL, 1), Turns: types.TurnCCW})
	if err != nil {
		t.Fatal(err)
	}
	if a.Move != b.Move || a.Angle != b.Angle {
		t.Errorf("R and L' on a 1-layer axis should match: %+v vs %+v", a, b)
	}

	// 3R on a 3x3x3 is the L layer turned the other way.
	c, err := r.Resolve(dims, Request{Selector: Face(types.FaceR, 3), Turns: types.TurnCW})
	if err != nil {
		t.Fatal(err)
	}
	if c.Face != types.FaceL || c.Turns != types.TurnCCW || c.Slice != -1 {
		t.Errorf("3R should resolve to L', got %s turns=%d slice=%g", c.Face, c.Turns, c.Slice)
	}
}

func TestResolve_AngleIsClockwiseFromFace(t *testing.T) {
	r := New(DefaultConventions())
	dims := types.Cube(3)
	cases := []struct {
		face  types.Face
		angle float64
	}{
		{types.FaceR, -math.Pi / 2},
		{types.FaceL, math.Pi / 2},
		{types.FaceU, -math.Pi / 2},
		{types.FaceD, math.Pi / 2},
		{types.FaceF, -math.Pi / 2},
		{types.FaceB, math.Pi / 2},
		{types.FaceM, math.Pi / 2},
		{types.FaceE, math.Pi / 2},
		{types.FaceS, -math.Pi / 2},
	}
	for _, c := range cases {
		got, err := r.Resolve(dims, Request{Selector: Face(c.face, 1), Turns: types.TurnCW})
		if err != nil {
			t.Fatalf("%s: %v", c.face, err)
		}
		if math.Abs(got.Angle-c.angle) > 1e-12 {
			t.Errorf("%s: expected angle %g, got %g", c.face, c.angle, got.Angle)
		}
	}
}

func TestResolve_RectangularPromotion(t *testing.T) {
	r := New(DefaultConventions())
	dims := types.Dimensions{X: 2, Y: 2, Z: 3}

	got, err := r.Resolve(dims, Request{Selector: Face(types.FaceR, 1), Turns: types.TurnCW})
	if err != nil {
		t.Fatal(err)
	}
	if got.Turns != types.Turn180 {
		t.Errorf("R on 2x2x3 should be promoted to a half turn, got %d", got.Turns)
	}

	got, err = r.Resolve(dims, Request{Selector: Face(types.FaceF, 1), Turns: types.TurnCCW})
	if err != nil {
		t.Fatal(err)
	}
	if got.Turns != types.TurnCCW {
		t.Errorf("F' on 2x2x3 has a square face and stays a quarter turn, got %d", got.Turns)
	}

	got, err = r.Resolve(dims, Request{Axis: types.AxisX, Selector: All(), Turns: types.TurnCW})
	if err != nil {
		t.Fatal(err)
	}
	if got.Turns != types.TurnCW {
		t.Errorf("whole puzzle rotations are never promoted, got %d", got.Turns)
	}
}

func TestResolve_Errors(t *testing.T) {
	r := New(DefaultConventions())
	dims := types.Cube(4)
	cases := []struct {
		name string
		req  Request
		err  error
	}{
		{"bad axis", Request{Axis: "w", Selector: All(), Turns: 1}, ErrInvalidAxis},
		{"zero turns", Request{Selector: Face(types.FaceR, 1), Turns: 4}, ErrNoOp},
		{"depth", Request{Selector: Face(types.FaceR, 5), Turns: 1}, ErrInvalidDepth},
		{"middle on even", Request{Selector: Face(types.FaceM, 1), Turns: 1}, ErrNoMiddle},
		{"off lattice", Request{Axis: types.AxisX, Selector: At(1), Turns: 1}, ErrNoSuchSlice},
		{"wrong face", Request{Axis: types.AxisY, Selector: Face(types.FaceR, 1), Turns: 1}, ErrInvalidFace},
	}
	for _, c := range cases {
		if _, err := r.Resolve(dims, c.req); !errors.Is(err, c.err) {
			t.Errorf("%s: expected %v, got %v", c.name, c.err, err)
		}
	}
}

func TestFromDrag_ReconcilesWithKeyboard(t *testing.T) {
	r := New(DefaultConventions())
	dims := types.Cube(3)

	key, err := r.Resolve(dims, Request{Selector: Face(types.FaceU, 1), Turns: types.TurnCW})
	if err != nil {
		t.Fatal(err)
	}
	// A drag that turns the top layer -90 degrees about +y, slightly off.
	drag, err := r.Resolve(dims, r.FromDrag(types.AxisY, 1, -math.Pi/2+0.2, 0))
	if err != nil {
		t.Fatal(err)
	}
	if key.Move != drag.Move || key.Angle != drag.Angle {
		t.Errorf("drag and key disagree: %+v vs %+v", drag, key)
	}

	whole, err := r.Resolve(dims, r.FromDrag(types.AxisX, types.WholePuzzle, -math.Pi/2, 0))
	if err != nil {
		t.Fatal(err)
	}
	if whole.Turns != types.TurnCW || !whole.IsWhole() {
		t.Errorf("expected x, got %+v", whole)
	}

	if _, err := r.Resolve(dims, r.FromDrag(types.AxisZ, 0, 0.3, 0)); !errors.Is(err, ErrNoOp) {
		t.Errorf("a drag under 45 degrees should be a no-op, got %v", err)
	}
}

func TestKeyRequest(t *testing.T) {
	req, ok := KeyRequest("r")
	if !ok || req.Selector.Face != types.FaceR || req.Turns != types.TurnCW {
		t.Errorf("r should be R, got %+v", req)
	}
	req, ok = KeyRequest("F")
	if !ok || req.Selector.Face != types.FaceF || req.Turns != types.TurnCCW {
		t.Errorf("F should be F', got %+v", req)
	}
	req, ok = KeyRequest("right")
	if !ok || req.Selector.Kind != Whole || req.Axis != types.AxisY || req.Turns != types.TurnCCW {
		t.Errorf("right should be y', got %+v", req)
	}
	if _, ok := KeyRequest("m"); ok {
		t.Error("m should not be bound")
	}
}
