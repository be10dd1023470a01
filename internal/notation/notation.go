// Package notation converts between canonical moves and the standard
// twisty-puzzle notation, generalized to any layer count.
//
// A token is [depth]FACE[suffix]: depth is an optional integer >= 2 counting
// layers in from the face, FACE is one of R L U D F B, the middle slices
// M E S, or a whole-puzzle rotation x y z, and suffix is empty (clockwise),
// ' (anti-clockwise) or 2 (half turn).
package notation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/SeamusWaldron/twisty/internal/resolver"
	"github.com/SeamusWaldron/twisty/pkg/types"
)

// ErrNotAMove is returned for tokens that do not parse.
var ErrNotAMove = errors.New("notation: not a move")

type token struct {
	depth  int
	letter byte
	turns  types.Turn
	base   string
}

func split(s string) (token, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return token{}, fmt.Errorf("%w: empty token", ErrNotAMove)
	}

	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	t := token{depth: 1}
	if i > 0 {
		d, err := strconv.Atoi(s[:i])
		if err != nil || d < 2 || s[0] == '0' {
			return token{}, fmt.Errorf("%w: bad depth in %q", ErrNotAMove, s)
		}
		t.depth = d
	}
	if i >= len(s) {
		return token{}, fmt.Errorf("%w: missing face in %q", ErrNotAMove, s)
	}
	t.letter = s[i]
	t.base = s[:i+1]

	switch s[i+1:] {
	case "":
		t.turns = types.TurnCW
	case "'", "`":
		t.turns = types.TurnCCW
	case "2", "2'":
		t.turns = types.Turn180
	default:
		return token{}, fmt.Errorf("%w: bad suffix in %q", ErrNotAMove, s)
	}
	return t, nil
}

// Parse converts a token into an unresolved request. It needs no puzzle
// state: depth and middle-slice validity are checked on resolve.
func Parse(s string) (resolver.Request, error) {
	t, err := split(s)
	if err != nil {
		return resolver.Request{}, err
	}

	switch t.letter {
	case 'x', 'y', 'z':
		if t.depth != 1 {
			return resolver.Request{}, fmt.Errorf("%w: rotation %q takes no depth", ErrNotAMove, s)
		}
		return resolver.Request{
			Axis:     types.Axis(string(t.letter)),
			Selector: resolver.All(),
			Turns:    t.turns,
		}, nil
	}

	face := types.Face(string(t.letter))
	if !face.Valid() {
		return resolver.Request{}, fmt.Errorf("%w: unknown face in %q", ErrNotAMove, s)
	}
	if face.IsMiddle() && t.depth != 1 {
		return resolver.Request{}, fmt.Errorf("%w: slice %q takes no depth", ErrNotAMove, s)
	}
	return resolver.Request{
		Axis:     face.Axis(),
		Selector: resolver.Face(face, t.depth),
		Turns:    t.turns,
	}, nil
}

// Valid reports whether s parses as a token.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Invert returns the token that undoes s: R -> R', 2L' -> 2L, U2 -> U2.
func Invert(s string) (string, error) {
	t, err := split(s)
	if err != nil {
		return "", err
	}
	if _, err := Parse(s); err != nil {
		return "", err
	}
	return t.base + t.turns.Inverse().Suffix(), nil
}

// InvertSequence reverses tokens and inverts each one. Invalid tokens are
// dropped and reported together.
func InvertSequence(tokens []string) ([]string, error) {
	var errs error
	out := make([]string, 0, len(tokens))
	for i := len(tokens) - 1; i >= 0; i-- {
		inv, err := Invert(tokens[i])
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		out = append(out, inv)
	}
	return out, errs
}

// Split breaks a space-joined sequence into tokens.
func Split(s string) []string {
	return strings.Fields(s)
}

// Join formats tokens as a space-joined sequence.
func Join(tokens []string) string {
	return strings.Join(tokens, " ")
}

// Codec encodes and decodes moves for one puzzle variant.
type Codec struct {
	res *resolver.Resolver
}

// NewCodec creates a codec sharing the resolver's conventions.
func NewCodec(res *resolver.Resolver) *Codec {
	return &Codec{res: res}
}

// Decode parses and resolves a token against the active dimensions.
func (c *Codec) Decode(dims types.Dimensions, s string) (types.Move, error) {
	req, err := Parse(s)
	if err != nil {
		return types.Move{}, err
	}
	m, err := c.res.Resolve(dims, req)
	if err != nil {
		return types.Move{}, fmt.Errorf("%w: %q: %w", ErrNotAMove, s, err)
	}
	return m.Move, nil
}

// DecodeSequence decodes a space-joined sequence, tracking how whole-puzzle
// rotations change the active dimensions. Invalid tokens are skipped and
// reported together.
func (c *Codec) DecodeSequence(dims types.Dimensions, s string) ([]types.Move, error) {
	var errs error
	var moves []types.Move
	for _, tok := range Split(s) {
		m, err := c.Decode(dims, tok)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if m.IsWhole() && int(m.Turns)%2 != 0 {
			dims = dims.Swapped(m.Axis)
		}
		moves = append(moves, m)
	}
	return moves, errs
}

// Encode formats a canonical move. It returns false for moves with no net
// rotation, which are never recorded.
func (c *Codec) Encode(dims types.Dimensions, m types.Move) (string, bool) {
	turns := m.Turns.Normalize()
	if turns == types.TurnNone || !m.Axis.Valid() {
		return "", false
	}
	if m.IsWhole() {
		return string(m.Axis) + turns.Suffix(), true
	}

	n := dims.Of(m.Axis)
	mx := dims.MaxIndex(m.Axis)

	var face types.Face
	var depth int
	switch {
	case m.Slice > 0.01:
		face = types.PositiveFace(m.Axis)
		depth = int(math.Round(mx-m.Slice)) + 1
	case m.Slice < -0.01:
		face = types.NegativeFace(m.Axis)
		depth = int(math.Round(mx+m.Slice)) + 1
	case n == 3:
		return string(types.MiddleFace(m.Axis)) + turns.Suffix(), true
	default:
		face = c.res.Conventions().Middle(m.Axis)
		depth = int(math.Round(mx)) + 1
	}

	prefix := ""
	if depth > 1 {
		prefix = strconv.Itoa(depth)
	}
	return prefix + string(face) + turns.Suffix(), true
}

// EncodeSequence formats moves, skipping those with no net rotation.
func (c *Codec) EncodeSequence(dims types.Dimensions, moves []types.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		if tok, ok := c.Encode(dims, m); ok {
			out = append(out, tok)
		}
		if m.IsWhole() && int(m.Turns.Normalize())%2 != 0 {
			dims = dims.Swapped(m.Axis)
		}
	}
	return out
}
