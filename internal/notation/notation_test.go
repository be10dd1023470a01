package notation

import (
	"errors"
	"testing"

	"go.uber.org/multierr"

	"github.com/SeamusWaldron/twisty/internal/resolver"
	"github.com/SeamusWaldron/twisty/pkg/types"
)

func newCodec() *Codec {
	return NewCodec(resolver.New(resolver.DefaultConventions()))
}

func TestEncode_Tokens(t *testing.T) {
	c := newCodec()
	cases := []struct {
		dims types.Dimensions
		move types.Move
		want string
	}{
		{types.Cube(3), types.Move{Axis: types.AxisX, Slice: 1, Turns: 1}, "R"},
		{types.Cube(3), types.Move{Axis: types.AxisX, Slice: -1, Turns: -1}, "L'"},
		{types.Cube(3), types.Move{Axis: types.AxisX, Slice: 0, Turns: 2}, "M2"},
		{types.Cube(3), types.Move{Axis: types.AxisY, Slice: 0, Turns: 1}, "E"},
		{types.Cube(3), types.Move{Axis: types.AxisZ, Slice: 0, Turns: -1}, "S'"},
		{types.Cube(4), types.Move{Axis: types.AxisY, Slice: 0.5, Turns: 1}, "2U"},
		{types.Cube(4), types.Move{Axis: types.AxisZ, Slice: -0.5, Turns: -1}, "2B'"},
		{types.Cube(5), types.Move{Axis: types.AxisX, Slice: 0, Turns: 1}, "3L"},
		{types.Cube(7), types.Move{Axis: types.AxisY, Slice: 1, Turns: 2}, "3U2"},
		{types.Cube(3), types.Move{Axis: types.AxisZ, Slice: types.WholePuzzle, Turns: -1}, "z'"},
		{types.Dimensions{X: 3, Y: 3, Z: 1}, types.Move{Axis: types.AxisZ, Slice: 0, Turns: 2}, "F2"},
	}
	for _, tc := range cases {
		got, ok := c.Encode(tc.dims, tc.move)
		if !ok || got != tc.want {
			t.Errorf("%s %+v: expected %q, got %q (ok=%v)", tc.dims, tc.move, tc.want, got, ok)
		}
	}
}

func TestEncode_NoNetRotation(t *testing.T) {
	c := newCodec()
	for _, turns := range []types.Turn{0, 4, -4, 8} {
		if tok, ok := c.Encode(types.Cube(3), types.Move{Axis: types.AxisX, Slice: 1, Turns: turns}); ok {
			t.Errorf("turns=%d should encode to nothing, got %q", turns, tok)
		}
	}
}

func TestRoundTrip_AllSlices(t *testing.T) {
	c := newCodec()
	dimsList := []types.Dimensions{
		types.Cube(1), types.Cube(2), types.Cube(3), types.Cube(4), types.Cube(5), types.Cube(8),
		{X: 2, Y: 2, Z: 3}, {X: 3, Y: 3, Z: 5},
	}
	for _, dims := range dimsList {
		for _, axis := range types.Axes {
			n := dims.Of(axis)
			for i := 0; i < n; i++ {
				slice := float64(i) - dims.MaxIndex(axis)
				for _, turns := range []types.Turn{types.TurnCW, types.TurnCCW, types.Turn180} {
					if !dims.SquareCrossSection(axis) && turns != types.Turn180 {
						continue
					}
					m := types.Move{Axis: axis, Slice: slice, Turns: turns}
					tok, ok := c.Encode(dims, m)
					if !ok {
						t.Fatalf("%s %+v did not encode", dims, m)
					}
					back, err := c.Decode(dims, tok)
					if err != nil {
						t.Fatalf("%s: decode %q: %v", dims, tok, err)
					}
					if back != m {
						t.Errorf("%s: %+v -> %q -> %+v", dims, m, tok, back)
					}
				}
			}
		}
	}
}

func TestDecode_Rejects(t *testing.T) {
	c := newCodec()
	bad := []string{"", "Q", "r", "R3", "1R", "0R", "2M", "2x", "R''", "5R"}
	for _, s := range bad {
		if _, err := c.Decode(types.Cube(4), s); !errors.Is(err, ErrNotAMove) {
			t.Errorf("%q should be rejected, got %v", s, err)
		}
	}
	if _, err := c.Decode(types.Cube(4), "M"); err == nil {
		t.Error("M has no meaning on an even axis")
	}
	if _, err := c.Decode(types.Cube(5), "M"); err != nil {
		t.Errorf("M is the centre slice on odd axes: %v", err)
	}
}

func TestDecodeSequence_SkipsInvalid(t *testing.T) {
	c := newCodec()
	moves, err := c.DecodeSequence(types.Cube(3), "R U foo R' bar U'")
	if len(moves) != 4 {
		t.Errorf("expected 4 moves, got %d", len(moves))
	}
	if got := len(multierr.Errors(err)); got != 2 {
		t.Errorf("expected 2 errors, got %d: %v", got, err)
	}
}

func TestDecodeSequence_TracksReorientation(t *testing.T) {
	c := newCodec()
	// After x the 2x2x3 stands as 2x3x2, so U is at y=1 and turns freely.
	moves, err := c.DecodeSequence(types.Dimensions{X: 2, Y: 2, Z: 3}, "x U")
	if err != nil {
		t.Fatal(err)
	}
	if moves[1].Slice != 1 || moves[1].Turns != types.TurnCW {
		t.Errorf("expected U at y=1 as a quarter turn, got %+v", moves[1])
	}
}

func TestInvertSequence(t *testing.T) {
	got, err := InvertSequence(Split("R U2 3Fw x' 2L'"))
	if len(multierr.Errors(err)) != 1 {
		t.Errorf("expected one error for 3Fw, got %v", err)
	}
	want := []string{"2L", "x", "U2", "R'"}
	if Join(got) != Join(want) {
		t.Errorf("expected %q, got %q", Join(want), Join(got))
	}
}

func TestDescribe(t *testing.T) {
	cases := map[string]string{
		"R":   "right face clockwise",
		"3L'": "3rd layer from left anti-clockwise",
		"E2":  "equator slice half turn",
		"y":   "whole puzzle like top clockwise",
		"12U": "12th layer from top clockwise",
	}
	for in, want := range cases {
		if got := Describe(in); got != want {
			t.Errorf("Describe(%q) = %q, want %q", in, got, want)
		}
	}
}
