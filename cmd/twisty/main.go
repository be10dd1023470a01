// twisty - terminal twisty-puzzle simulator and solve timer.
package main

import (
	"github.com/SeamusWaldron/twisty/internal/cli"
)

func main() {
	cli.Execute()
}
