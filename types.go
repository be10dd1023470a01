package twisty

import (
	"github.com/SeamusWaldron/twisty/internal/puzzle"
	"github.com/SeamusWaldron/twisty/internal/timer"
	"github.com/SeamusWaldron/twisty/pkg/types"
)

// Re-exported value types.
type (
	Axis       = types.Axis
	Face       = types.Face
	Turn       = types.Turn
	Move       = types.Move
	Dimensions = types.Dimensions
	Config     = puzzle.Config
	Tag        = puzzle.Tag
	TimerPhase = timer.Phase
)

const (
	AxisX = types.AxisX
	AxisY = types.AxisY
	AxisZ = types.AxisZ

	FaceR = types.FaceR
	FaceL = types.FaceL
	FaceU = types.FaceU
	FaceD = types.FaceD
	FaceF = types.FaceF
	FaceB = types.FaceB
	FaceM = types.FaceM
	FaceE = types.FaceE
	FaceS = types.FaceS

	CW     = types.TurnCW
	CCW    = types.TurnCCW
	Double = types.Turn180
)

// WholePuzzle is the slice sentinel for whole-puzzle rotations.
var WholePuzzle = types.WholePuzzle

// Cube returns the config of a standard n x n x n cube.
func Cube(n int) Config {
	return Config{Tag: puzzle.Standard, Dimensions: types.Cube(n)}
}

// Parse reads a puzzle name such as "4", "2x2x3", "mirror-3" or "acorns".
func Parse(name string) (Config, error) {
	return puzzle.Parse(name)
}

// Variant tags.
const (
	TagStandard = puzzle.Standard
	TagCuboid   = puzzle.Cuboid
	TagVoid     = puzzle.Void
	TagMirror   = puzzle.Mirror
	TagAcorns   = puzzle.Acorns
	TagChild    = puzzle.Child
)
