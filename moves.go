package twisty

// Predefined algorithms in notation.
//
// Example:
//
//	s.Apply(twisty.SexyMove)
const (
	// Sexy move: R U R' U' - one of the most common algorithms
	SexyMove = "R U R' U'"

	// Inverse sexy move: U R U' R'
	InverseSexyMove = "U R U' R'"

	// T-perm swaps two corners and two edges of the last layer
	TPerm = "R U R' U' R' F R2 U' R' U' R U R' F'"
)
