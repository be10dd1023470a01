package types

// Color is a facelet identity tag. The six standard colours come first;
// decoration tags for shape and picture mods start at DecorationBase.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
	Gold   Color = 6 // Uniform sticker of shape mods

	DecorationBase Color = 32
)

// FaceColor returns the solved colour of an outer face.
func FaceColor(f Face) Color {
	switch f {
	case FaceU:
		return White
	case FaceD:
		return Yellow
	case FaceF:
		return Green
	case FaceB:
		return Blue
	case FaceR:
		return Red
	case FaceL:
		return Orange
	default:
		return Gold
	}
}

// IsDecoration reports whether c is a mod decoration tag.
func (c Color) IsDecoration() bool {
	return c >= DecorationBase
}

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	case Gold:
		return "*"
	default:
		return "?"
	}
}
