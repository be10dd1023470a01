package resolver

import (
	"strings"

	"github.com/SeamusWaldron/twisty/pkg/types"
)

// KeyRequest maps a key press to a request. Face letters turn the outer
// layer clockwise, upper case is the prime turn, arrows rotate the whole
// puzzle so the front face travels in the arrow's direction.
func KeyRequest(key string) (Request, bool) {
	switch key {
	case "up":
		return Request{Axis: types.AxisX, Selector: All(), Turns: types.TurnCW}, true
	case "down":
		return Request{Axis: types.AxisX, Selector: All(), Turns: types.TurnCCW}, true
	case "left":
		return Request{Axis: types.AxisY, Selector: All(), Turns: types.TurnCW}, true
	case "right":
		return Request{Axis: types.AxisY, Selector: All(), Turns: types.TurnCCW}, true
	}

	if len(key) != 1 {
		return Request{}, false
	}
	face := types.Face(strings.ToUpper(key))
	if !face.Valid() || face.IsMiddle() {
		return Request{}, false
	}
	turns := types.TurnCW
	if key == string(face) {
		turns = types.TurnCCW
	}
	return Request{Axis: face.Axis(), Selector: Face(face, 1), Turns: turns}, true
}
