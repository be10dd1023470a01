package puzzle

import (
	"math"

	"github.com/SeamusWaldron/twisty/internal/lattice"
	"github.com/SeamusWaldron/twisty/pkg/types"
)

func buildStandard(dims types.Dimensions) []*lattice.Piece {
	return lattice.Build(dims, nil)
}

// buildVoid drops every slot that shows at most one face.
func buildVoid(dims types.Dimensions) []*lattice.Piece {
	pieces := lattice.Build(dims, nil)
	out := pieces[:0]
	for _, p := range pieces {
		if len(p.Facelets) > 1 {
			p.ID = len(out)
			out = append(out, p)
		}
	}
	return out
}

// Mirror cube layer bounds are offset from the mechanism on the outer
// layers of each axis.
var mirrorShift = [3]float64{0.1, -0.7, 0.4}

func buildMirror(dims types.Dimensions) []*lattice.Piece {
	pieces := lattice.Build(dims, nil)
	n := [3]int{dims.X, dims.Y, dims.Z}

	for _, p := range pieces {
		pos := p.Origin().Vec()
		c := [3]float64{pos.X, pos.Y, pos.Z}
		var center, size [3]float64
		for a := range 3 {
			lo, hi := mirrorBounds(c[a], n[a], mirrorShift[a])
			center[a] = (lo+hi)/2 - c[a]
			size[a] = hi - lo
		}
		p.Box = &lattice.Box{
			Center: lattice.Vec(center[0], center[1], center[2]),
			Size:   lattice.Vec(size[0], size[1], size[2]),
		}
		for i := range p.Facelets {
			p.Facelets[i].Color = types.Gold
		}
	}
	return pieces
}

// mirrorBounds returns the extent of the layer at coordinate c on an axis
// of n layers. Internal cuts sit on the mechanism; the outer surfaces move
// by shift, except on single-layer axes.
func mirrorBounds(c float64, n int, shift float64) (lo, hi float64) {
	if n == 1 {
		shift = 0
	}
	half := float64(n) / 2
	i := int(math.Round(c + float64(n-1)/2))
	lo = float64(i) - half
	hi = float64(i+1) - half
	if i == 0 {
		lo = -half + shift
	}
	if i == n-1 {
		hi = half + shift
	}
	return lo, hi
}

// Acorns decoration tags.
const (
	acornTop = types.DecorationBase + iota
	acornBottom
	acornLogoUpper
	acornLogoLower
)

// buildAcorns decorates a 2x2x2: the top and bottom faces are uniform, and
// the logo shows on both front and back of each layer. The sides are bare,
// so a piece turned to face sideways looks like an inner face.
func buildAcorns(dims types.Dimensions) []*lattice.Piece {
	pieces := lattice.Build(dims, nil)
	for _, p := range pieces {
		upper := p.Origin()[1] > 0
		var facelets []lattice.Facelet
		for _, f := range p.Facelets {
			switch {
			case f.Normal.Y > 0.5:
				f.Color = acornTop
			case f.Normal.Y < -0.5:
				f.Color = acornBottom
			case math.Abs(f.Normal.Z) > 0.5 && upper:
				f.Color = acornLogoUpper
			case math.Abs(f.Normal.Z) > 0.5:
				f.Color = acornLogoLower
			default:
				continue
			}
			facelets = append(facelets, f)
		}
		p.Facelets = facelets
	}
	return pieces
}

// buildChild gives every visible face of every piece its own picture tile.
func buildChild(dims types.Dimensions) []*lattice.Piece {
	pieces := lattice.Build(dims, nil)
	tag := types.DecorationBase
	for _, p := range pieces {
		for i := range p.Facelets {
			p.Facelets[i].Color = tag
			tag++
		}
	}
	return pieces
}
