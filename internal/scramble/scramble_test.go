package scramble

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/SeamusWaldron/twisty/pkg/types"
)

func TestLength(t *testing.T) {
	cases := map[types.Dimensions]int{
		types.Cube(2):         30,
		types.Cube(3):         45,
		types.Cube(4):         60,
		types.Cube(1):         25,
		{X: 2, Y: 2, Z: 3}:    45,
		{X: 17, Y: 17, Z: 17}: 255,
	}
	for dims, want := range cases {
		if got := Length(dims); got != want {
			t.Errorf("%s: expected %d, got %d", dims, want, got)
		}
	}
}

func TestGenerate_NoRepeatedLayer(t *testing.T) {
	g := New(WithRand(rand.New(rand.NewSource(1))))
	for _, dims := range []types.Dimensions{types.Cube(2), types.Cube(5), {X: 2, Y: 2, Z: 3}, {X: 3, Y: 3, Z: 1}} {
		moves := g.Generate(dims)
		if len(moves) != Length(dims) {
			t.Errorf("%s: expected %d moves, got %d", dims, Length(dims), len(moves))
		}
		for i := 1; i < len(moves); i++ {
			if moves[i].SameSlice(moves[i-1]) {
				t.Errorf("%s: moves %d and %d act on the same layer", dims, i-1, i)
			}
		}
	}
}

func TestGenerate_RectangularAxesOnlyHalfTurns(t *testing.T) {
	g := New(WithRand(rand.New(rand.NewSource(7))))
	dims := types.Dimensions{X: 2, Y: 2, Z: 3}
	for _, m := range g.Generate(dims) {
		if !dims.SquareCrossSection(m.Axis) && m.Turns != types.Turn180 {
			t.Errorf("quarter turn on non-square axis %s", m.Axis)
		}
		if m.IsWhole() {
			t.Error("scrambles never rotate the whole puzzle")
		}
	}
}

func TestGenerate_SeedIsReproducible(t *testing.T) {
	a := New(WithRand(rand.New(rand.NewSource(42)))).Generate(types.Cube(4))
	b := New(WithRand(rand.New(rand.NewSource(42)))).Generate(types.Cube(4))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("move %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestExternal(t *testing.T) {
	calls := 0
	src := SourceFunc(func(ctx context.Context, dims types.Dimensions) (string, error) {
		calls++
		return "R U F", nil
	})
	g := New(WithSource(src))
	if s, ok := g.External(context.Background(), types.Cube(3)); !ok || s != "R U F" {
		t.Errorf("expected source scramble, got %q %v", s, ok)
	}
	if _, ok := g.External(context.Background(), types.Cube(4)); ok {
		t.Error("source is only used for 3x3x3")
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}

	failing := New(WithSource(SourceFunc(func(context.Context, types.Dimensions) (string, error) {
		return "", errors.New("solver offline")
	})))
	if _, ok := failing.External(context.Background(), types.Cube(3)); ok {
		t.Error("failed source should fall back")
	}
}
