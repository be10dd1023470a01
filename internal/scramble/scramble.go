// Package scramble generates random move sequences that respect the
// physical turning constraints of any cuboid.
package scramble

import (
	"context"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/twisty/pkg/types"
)

// MinLength is the shortest scramble generated for any puzzle.
const MinLength = 25

// Source produces a scramble externally, for example from an optimal solver.
// It returns a space-joined notation string.
type Source interface {
	Scramble(ctx context.Context, dims types.Dimensions) (string, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, dims types.Dimensions) (string, error)

func (f SourceFunc) Scramble(ctx context.Context, dims types.Dimensions) (string, error) {
	return f(ctx, dims)
}

// Generator produces scrambles.
type Generator struct {
	rng    *rand.Rand
	source Source
	log    logrus.FieldLogger
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets the random source, for reproducible scrambles.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = rng
	}
}

// WithSource sets an external source used for cubic 3x3x3 puzzles.
func WithSource(s Source) Option {
	return func(g *Generator) {
		g.source = s
	}
}

// WithLogger sets the logger for source fallbacks.
func WithLogger(log logrus.FieldLogger) Option {
	return func(g *Generator) {
		g.log = log
	}
}

// New creates a generator seeded from the clock unless WithRand is given.
func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		g.log = l
	}
	return g
}

// Length returns the scramble length for dims.
func Length(dims types.Dimensions) int {
	return max(MinLength, 15*dims.Max())
}

// Generate returns a random scramble of Length(dims) slice moves.
//
// The axis is chosen with probability proportional to its layer count and
// the layer uniformly, so every layer is equally likely. A move never acts
// on the same layer as the one before it. Axes whose slices are not square
// only receive half turns.
func (g *Generator) Generate(dims types.Dimensions) []types.Move {
	n := Length(dims)
	total := dims.X + dims.Y + dims.Z
	choices := []types.Turn{types.TurnCW, types.TurnCCW, types.Turn180}

	moves := make([]types.Move, 0, n)
	var prev types.Move
	for len(moves) < n {
		r := g.rng.Intn(total)
		var axis types.Axis
		switch {
		case r < dims.X:
			axis = types.AxisX
		case r < dims.X+dims.Y:
			axis = types.AxisY
		default:
			axis = types.AxisZ
		}

		layer := g.rng.Intn(dims.Of(axis))
		m := types.Move{
			Axis:  axis,
			Slice: float64(layer) - dims.MaxIndex(axis),
			Turns: choices[g.rng.Intn(len(choices))],
		}
		if len(moves) > 0 && m.SameSlice(prev) {
			continue
		}
		if !dims.SquareCrossSection(axis) {
			m.Turns = types.Turn180
		}

		moves = append(moves, m)
		prev = m
	}
	return moves
}

// External asks the configured source for a scramble. It reports false when
// there is no source, the puzzle is not a 3x3x3, or the source fails, in
// which case the caller should fall back to Generate.
func (g *Generator) External(ctx context.Context, dims types.Dimensions) (string, bool) {
	if g.source == nil || dims != types.Cube(3) {
		return "", false
	}
	s, err := g.source.Scramble(ctx, dims)
	if err != nil {
		g.log.WithError(err).Warn("external scramble source failed, using random scramble")
		return "", false
	}
	return s, true
}
