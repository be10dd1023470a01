// Package twisty simulates generalized twisty puzzles: N x N x N cubes of
// any size, cuboids whose non-square layers only half turn, and shape mods
// whose solved state is judged by appearance rather than colour.
//
// # Quick Start
//
//	s, err := twisty.New(twisty.Cube(3))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	s.OnMove(func(token string) {
//	    fmt.Println("Move:", token)
//	})
//
//	if err := s.Apply(twisty.SexyMove); err != nil {
//	    log.Fatal(err)
//	}
//	s.Settle()
//	fmt.Println("Solved:", s.IsSolved())
//
// # Driving Animation
//
// Moves are queued and animated one at a time. Call Tick with the frame
// delta from a render loop, or Settle to finish everything immediately:
//
//	for range time.Tick(16 * time.Millisecond) {
//	    s.Tick(16 * time.Millisecond)
//	}
//
// # Notation
//
// Tokens are [depth]FACE[suffix]: R, U', 2F2, M, 3L', x, y2. Depth counts
// layers in from the face and is only written when greater than 1. M, E and
// S name the centre slice of an odd axis; x, y and z rotate the whole puzzle.
//
// # Puzzles
//
// Use Parse to select a puzzle by name:
//
//	cfg, _ := twisty.Parse("2x2x3")     // cuboid
//	cfg, _ = twisty.Parse("mirror-3")   // mirror cube
//	cfg, _ = twisty.Parse("acorns")     // 2x2x2 logo mod
package twisty
