package types

// Axis is one of the three world axes.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
	AxisZ Axis = "z"
)

// Axes lists the world axes in index order.
var Axes = []Axis{AxisX, AxisY, AxisZ}

// Valid reports whether a is x, y or z.
func (a Axis) Valid() bool {
	return a == AxisX || a == AxisY || a == AxisZ
}

// Index returns 0, 1, 2 for x, y, z and -1 otherwise.
func (a Axis) Index() int {
	switch a {
	case AxisX:
		return 0
	case AxisY:
		return 1
	case AxisZ:
		return 2
	default:
		return -1
	}
}

// Unit returns the +axis unit vector.
func (a Axis) Unit() [3]float64 {
	var v [3]float64
	if i := a.Index(); i >= 0 {
		v[i] = 1
	}
	return v
}

// Others returns the two axes perpendicular to a.
func (a Axis) Others() (Axis, Axis) {
	switch a {
	case AxisX:
		return AxisY, AxisZ
	case AxisY:
		return AxisX, AxisZ
	default:
		return AxisX, AxisY
	}
}

// Face represents a face or middle slice letter in standard notation.
type Face string

const (
	FaceR Face = "R" // Right, +x
	FaceL Face = "L" // Left, -x
	FaceU Face = "U" // Up, +y
	FaceD Face = "D" // Down, -y
	FaceF Face = "F" // Front, +z
	FaceB Face = "B" // Back, -z
	FaceM Face = "M" // Middle between L and R
	FaceE Face = "E" // Equator between U and D
	FaceS Face = "S" // Standing between F and B
)

// OuterFaces lists the six outer faces.
var OuterFaces = []Face{FaceR, FaceL, FaceU, FaceD, FaceF, FaceB}

// Axis returns the world axis the face turns about.
func (f Face) Axis() Axis {
	switch f {
	case FaceR, FaceL, FaceM:
		return AxisX
	case FaceU, FaceD, FaceE:
		return AxisY
	case FaceF, FaceB, FaceS:
		return AxisZ
	default:
		return ""
	}
}

// Sign returns +1 for faces on the positive side, -1 for the negative side,
// 0 for middle slices and unknown letters.
func (f Face) Sign() int {
	switch f {
	case FaceR, FaceU, FaceF:
		return 1
	case FaceL, FaceD, FaceB:
		return -1
	default:
		return 0
	}
}

// IsMiddle reports whether f names a middle slice.
func (f Face) IsMiddle() bool {
	return f == FaceM || f == FaceE || f == FaceS
}

// Valid reports whether f is a known letter.
func (f Face) Valid() bool {
	return f.Axis() != ""
}

// PositiveFace returns the face on the +axis side.
func PositiveFace(a Axis) Face {
	switch a {
	case AxisX:
		return FaceR
	case AxisY:
		return FaceU
	case AxisZ:
		return FaceF
	default:
		return ""
	}
}

// NegativeFace returns the face on the -axis side.
func NegativeFace(a Axis) Face {
	switch a {
	case AxisX:
		return FaceL
	case AxisY:
		return FaceD
	case AxisZ:
		return FaceB
	default:
		return ""
	}
}

// MiddleFace returns the middle slice letter for the axis.
func MiddleFace(a Axis) Face {
	switch a {
	case AxisX:
		return FaceM
	case AxisY:
		return FaceE
	case AxisZ:
		return FaceS
	default:
		return ""
	}
}
