// Package render unfolds a puzzle's visible stickers into a flat net.
package render

import (
	"math"
	"strings"

	"github.com/SeamusWaldron/twisty/internal/lattice"
	"github.com/SeamusWaldron/twisty/pkg/types"
)

// Cell is one sticker position on a face. Set is false where no piece
// shows a sticker, such as the missing centres of a void cube.
type Cell struct {
	Color types.Color
	Set   bool
}

// Net holds the stickers of each outer face, viewed from outside with
// the standard unfolding: U above F, D below F, L F R B left to right.
type Net struct {
	Dims  types.Dimensions
	Faces map[types.Face][][]Cell
}

// view describes how a face's grid maps onto lattice axes.
type view struct {
	col, row       types.Axis
	colRev, rowRev bool
}

var views = map[types.Face]view{
	types.FaceU: {col: types.AxisX, row: types.AxisZ},
	types.FaceD: {col: types.AxisX, row: types.AxisZ, rowRev: true},
	types.FaceF: {col: types.AxisX, row: types.AxisY, rowRev: true},
	types.FaceB: {col: types.AxisX, row: types.AxisY, colRev: true, rowRev: true},
	types.FaceR: {col: types.AxisZ, row: types.AxisY, colRev: true, rowRev: true},
	types.FaceL: {col: types.AxisZ, row: types.AxisY, rowRev: true},
}

// Unfold collects the stickers of pieces on a puzzle with the given
// active dimensions.
func Unfold(dims types.Dimensions, pieces []*lattice.Piece) Net {
	n := Net{Dims: dims, Faces: make(map[types.Face][][]Cell, len(views))}
	for f, v := range views {
		grid := make([][]Cell, dims.Of(v.row))
		for i := range grid {
			grid[i] = make([]Cell, dims.Of(v.col))
		}
		n.Faces[f] = grid
	}

	for _, p := range pieces {
		for _, fl := range p.Facelets {
			normal := p.WorldNormal(fl)
			for f, v := range views {
				if lattice.Component(normal, f.Axis())*float64(f.Sign()) < 0.9 {
					continue
				}
				r := index(lattice.Component(p.Position, v.row), dims.Of(v.row), v.rowRev)
				c := index(lattice.Component(p.Position, v.col), dims.Of(v.col), v.colRev)
				grid := n.Faces[f]
				if r >= 0 && r < len(grid) && c >= 0 && c < len(grid[r]) {
					grid[r][c] = Cell{Color: fl.Color, Set: true}
				}
			}
		}
	}
	return n
}

func index(coord float64, layers int, reverse bool) int {
	i := int(math.Round(coord + float64(layers-1)/2))
	if reverse {
		return layers - 1 - i
	}
	return i
}

// Uniform reports whether every set cell of f has the same colour.
func (n Net) Uniform(f types.Face) bool {
	var first *Cell
	for _, row := range n.Faces[f] {
		for i := range row {
			if !row[i].Set {
				continue
			}
			if first == nil {
				first = &row[i]
			} else if row[i].Color != first.Color {
				return false
			}
		}
	}
	return true
}

// Row returns the cells of face f at row r, or nil when out of range.
func (n Net) Row(f types.Face, r int) []Cell {
	grid := n.Faces[f]
	if r < 0 || r >= len(grid) {
		return nil
	}
	return grid[r]
}

// Layout calls cell for every position of the unfolded net in reading
// order and newline after each line. Positions outside any face are
// reported with ok false.
func (n Net) Layout(cell func(c Cell, ok bool), newline func()) {
	left := n.Dims.Z
	blank := func(k int) {
		for i := 0; i < k; i++ {
			cell(Cell{}, false)
		}
	}
	band := func(f types.Face) {
		for r := range n.Faces[f] {
			blank(left)
			for _, c := range n.Row(f, r) {
				cell(c, true)
			}
			newline()
		}
	}

	band(types.FaceU)
	for r := 0; r < n.Dims.Y; r++ {
		for _, f := range []types.Face{types.FaceL, types.FaceF, types.FaceR, types.FaceB} {
			for _, c := range n.Row(f, r) {
				cell(c, true)
			}
		}
		newline()
	}
	band(types.FaceD)
}

// String renders the net as text, one letter per sticker.
func (n Net) String() string {
	var b strings.Builder
	n.Layout(func(c Cell, ok bool) {
		switch {
		case !ok:
			b.WriteString("  ")
		case !c.Set:
			b.WriteString(". ")
		default:
			b.WriteString(Letter(c.Color) + " ")
		}
	}, func() {
		b.WriteString("\n")
	})
	return b.String()
}

// Letter returns a one-character label for c. Decoration tags use
// lowercase letters from 'a'.
func Letter(c types.Color) string {
	if c.IsDecoration() {
		return string(rune('a' + int(c-types.DecorationBase)%26))
	}
	return c.String()
}
