package notation

import (
	"fmt"

	"github.com/SeamusWaldron/twisty/internal/resolver"
	"github.com/SeamusWaldron/twisty/pkg/types"
)

var faceNames = map[types.Face]string{
	types.FaceR: "right",
	types.FaceL: "left",
	types.FaceU: "top",
	types.FaceD: "bottom",
	types.FaceF: "front",
	types.FaceB: "back",
	types.FaceM: "middle",
	types.FaceE: "equator",
	types.FaceS: "standing",
}

// Describe spells out a token for status lines.
//
//	R   -> "right face clockwise"
//	3L' -> "3rd layer from left anti-clockwise"
//	E2  -> "equator slice half turn"
//	y   -> "whole puzzle like top clockwise"
func Describe(s string) string {
	req, err := Parse(s)
	if err != nil {
		return s
	}

	dir := "clockwise"
	switch req.Turns {
	case types.TurnCCW:
		dir = "anti-clockwise"
	case types.Turn180:
		dir = "half turn"
	}

	switch {
	case req.Selector.Kind == resolver.Whole:
		return fmt.Sprintf("whole puzzle like %s %s", faceNames[types.PositiveFace(req.Axis)], dir)
	case req.Selector.Face.IsMiddle():
		return fmt.Sprintf("%s slice %s", faceNames[req.Selector.Face], dir)
	case req.Selector.Depth > 1:
		return fmt.Sprintf("%s layer from %s %s", ordinal(req.Selector.Depth), faceNames[req.Selector.Face], dir)
	default:
		return fmt.Sprintf("%s face %s", faceNames[req.Selector.Face], dir)
	}
}

func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
