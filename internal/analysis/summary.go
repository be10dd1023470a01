// Package analysis summarises recorded move sequences.
package analysis

import (
	"fmt"
	"strings"
	"time"

	"github.com/SeamusWaldron/twisty/internal/notation"
	"github.com/SeamusWaldron/twisty/internal/resolver"
	"github.com/SeamusWaldron/twisty/pkg/types"
)

// Summary contains statistics for one move sequence.
type Summary struct {
	Duration       time.Duration      `json:"duration"`
	TotalMoves     int                `json:"total_moves"`
	Rotations      int                `json:"rotations"`
	Cancellations  int                `json:"cancellations"`
	OptimizedMoves int                `json:"optimized_moves"`
	Optimized      []string           `json:"optimized,omitempty"`
	Efficiency     float64            `json:"efficiency"`
	TPS            float64            `json:"tps"`
	FaceCounts     map[types.Face]int `json:"face_counts"`
	MostUsedFace   types.Face         `json:"most_used_face,omitempty"`
}

var faceOrder = []types.Face{
	types.FaceR, types.FaceL, types.FaceU, types.FaceD, types.FaceF, types.FaceB,
	types.FaceM, types.FaceE, types.FaceS,
}

// Summarize parses tokens and computes their statistics. Whole-puzzle
// rotations are counted separately and excluded from the move count.
func Summarize(tokens []string, d time.Duration) (*Summary, error) {
	s := &Summary{
		Duration:   d,
		FaceCounts: make(map[types.Face]int),
	}

	reqs := make([]resolver.Request, len(tokens))
	for i, tok := range tokens {
		req, err := notation.Parse(tok)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		reqs[i] = req

		if req.Selector.Kind == resolver.Whole {
			s.Rotations++
			continue
		}
		s.TotalMoves++
		s.FaceCounts[req.Selector.Face]++
	}

	s.Optimized, s.Cancellations = Optimize(tokens, reqs)
	for _, tok := range s.Optimized {
		if req, _ := notation.Parse(tok); req.Selector.Kind != resolver.Whole {
			s.OptimizedMoves++
		}
	}

	if s.TotalMoves > 0 {
		s.Efficiency = float64(s.OptimizedMoves) / float64(s.TotalMoves)
	}
	s.TPS = CalculateTPS(s.TotalMoves, d)

	best := 0
	for _, f := range faceOrder {
		if n := s.FaceCounts[f]; n > best {
			best = n
			s.MostUsedFace = f
		}
	}

	return s, nil
}

// Optimize merges consecutive turns of the same layer. It returns the
// merged tokens and how many merges cancelled out completely.
func Optimize(tokens []string, reqs []resolver.Request) ([]string, int) {
	type entry struct {
		base string
		req  resolver.Request
	}

	var stack []entry
	cancelled := 0
	for i, tok := range tokens {
		req := reqs[i]
		base := strings.TrimRight(tok, "'`2")

		if n := len(stack); n > 0 && sameLayer(stack[n-1].req, req) {
			merged := stack[n-1].req.Turns + req.Turns
			if merged.IsNone() {
				stack = stack[:n-1]
				cancelled++
				continue
			}
			stack[n-1].req.Turns = merged.Normalize()
			continue
		}
		stack = append(stack, entry{base: base, req: req})
	}

	out := make([]string, len(stack))
	for i, e := range stack {
		out[i] = e.base + e.req.Turns.Suffix()
	}
	return out, cancelled
}

func sameLayer(a, b resolver.Request) bool {
	return a.Axis == b.Axis && a.Selector == b.Selector
}

// CalculateTPS calculates turns per second.
func CalculateTPS(moves int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(moves) / d.Seconds()
}
