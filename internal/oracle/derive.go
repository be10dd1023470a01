package oracle

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/westphae/quaternion"

	"github.com/SeamusWaldron/twisty/internal/lattice"
)

// Derive builds the mapping of every arrangement that looks solved, from
// each piece's appearance in the built state: its facelet tags and its body
// box. A piece may sit in slot s with orientation r when r applied to its
// appearance equals the appearance of the piece built in s. Pieces with no
// visible faces may be anywhere.
//
// Pieces that look alike share one slot table, so lookalike classes on big
// puzzles cost their size once rather than once per member.
func Derive(pieces []*lattice.Piece) Mapping {
	homes := map[string][]lattice.Key{}
	for _, p := range pieces {
		if !p.Exposed() {
			continue
		}
		k := appearance(lattice.Identity, p)
		homes[k] = append(homes[k], p.Origin())
	}

	rotations := lattice.CubeRotations()
	shared := map[string]map[lattice.Key]Orientations{}
	m := make(Mapping, len(pieces))
	for _, p := range pieces {
		if !p.Exposed() {
			m[p.Origin()] = Target{Anywhere: true}
			continue
		}
		rest := appearance(lattice.Identity, p)
		slots, ok := shared[rest]
		if !ok {
			slots = map[lattice.Key]Orientations{}
			for _, r := range rotations {
				for _, home := range homes[appearance(r, p)] {
					slots[home] = append(slots[home], r)
				}
			}
			shared[rest] = slots
		}
		m[p.Origin()] = Target{Slots: slots}
	}
	return m
}

// appearance describes p rotated by r. Two pieces look alike exactly when
// their descriptions are equal.
func appearance(r quaternion.Quaternion, p *lattice.Piece) string {
	faces := make([]string, 0, len(p.Facelets))
	for _, f := range p.Facelets {
		faces = append(faces, fmt.Sprintf("%d:%s", f.Color, quantize(lattice.RotateVec(r, f.Normal))))
	}
	sort.Strings(faces)

	var b strings.Builder
	b.WriteString(strings.Join(faces, " "))
	if p.Box != nil {
		c := lattice.RotateVec(r, p.Box.Center)
		s := lattice.RotateVec(r, p.Box.Size)
		s = lattice.Vec(math.Abs(s.X), math.Abs(s.Y), math.Abs(s.Z))
		fmt.Fprintf(&b, "|%s|%s", quantize(c), quantize(s))
	}
	return b.String()
}

// quantize snaps v to a 1e-4 grid so rounding noise compares equal.
func quantize(v quaternion.Vec3) string {
	return fmt.Sprintf("%d,%d,%d", grid(v.X), grid(v.Y), grid(v.Z))
}

func grid(x float64) int64 {
	return int64(math.Round(x * 1e4))
}
