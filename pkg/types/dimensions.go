package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Dimensions gives the layer count along each world axis.
type Dimensions struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	Z int `json:"z" yaml:"z"`
}

// Cube returns n x n x n dimensions.
func Cube(n int) Dimensions {
	return Dimensions{X: n, Y: n, Z: n}
}

// ParseDimensions parses "3", "3x3x3" or "2x2x3".
func ParseDimensions(s string) (Dimensions, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	vals := make([]int, 0, 3)
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Dimensions{}, fmt.Errorf("invalid dimensions %q: %w", s, err)
		}
		vals = append(vals, n)
	}

	var d Dimensions
	switch len(vals) {
	case 1:
		d = Cube(vals[0])
	case 3:
		d = Dimensions{X: vals[0], Y: vals[1], Z: vals[2]}
	default:
		return Dimensions{}, fmt.Errorf("invalid dimensions %q: want N or AxBxC", s)
	}
	if !d.Valid() {
		return Dimensions{}, fmt.Errorf("invalid dimensions %q: layer counts must be positive", s)
	}
	return d, nil
}

// Valid reports whether every layer count is positive.
func (d Dimensions) Valid() bool {
	return d.X > 0 && d.Y > 0 && d.Z > 0
}

// Of returns the layer count along axis a.
func (d Dimensions) Of(a Axis) int {
	switch a {
	case AxisX:
		return d.X
	case AxisY:
		return d.Y
	case AxisZ:
		return d.Z
	default:
		return 0
	}
}

// Max returns the largest layer count.
func (d Dimensions) Max() int {
	return max(d.X, d.Y, d.Z)
}

// Volume returns the number of lattice slots.
func (d Dimensions) Volume() int {
	return d.X * d.Y * d.Z
}

// IsCubic reports whether all layer counts are equal.
func (d Dimensions) IsCubic() bool {
	return d.X == d.Y && d.Y == d.Z
}

// SquareCrossSection reports whether the slices perpendicular to a are square.
// Quarter turns are only possible on square slices.
func (d Dimensions) SquareCrossSection(a Axis) bool {
	b, c := a.Others()
	return d.Of(b) == d.Of(c)
}

// Swapped returns the dimensions after an odd quarter turn about a,
// which exchanges the two perpendicular layer counts.
func (d Dimensions) Swapped(a Axis) Dimensions {
	switch a {
	case AxisX:
		return Dimensions{X: d.X, Y: d.Z, Z: d.Y}
	case AxisY:
		return Dimensions{X: d.Z, Y: d.Y, Z: d.X}
	case AxisZ:
		return Dimensions{X: d.Y, Y: d.X, Z: d.Z}
	default:
		return d
	}
}

// MaxIndex returns the largest lattice coordinate along a: (n-1)/2.
func (d Dimensions) MaxIndex(a Axis) float64 {
	return float64(d.Of(a)-1) / 2
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%dx%d", d.X, d.Y, d.Z)
}
