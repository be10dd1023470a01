// Package puzzle defines the closed set of puzzle variants and builds them.
package puzzle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SeamusWaldron/twisty/internal/lattice"
	"github.com/SeamusWaldron/twisty/internal/oracle"
	"github.com/SeamusWaldron/twisty/internal/resolver"
	"github.com/SeamusWaldron/twisty/pkg/types"
)

// MaxLayers bounds the layer count along any axis.
const MaxLayers = 50

var (
	ErrUnknownVariant = errors.New("puzzle: unknown variant")
	ErrDimensions     = errors.New("puzzle: invalid dimensions for variant")
)

// Tag identifies a variant.
type Tag string

const (
	Standard Tag = "standard"
	Cuboid   Tag = "cuboid"
	Void     Tag = "void"
	Mirror   Tag = "mirror"
	Acorns   Tag = "acorns"
	Child    Tag = "child"
)

// Config selects and sizes a puzzle.
type Config struct {
	Tag        Tag              `json:"tag" yaml:"tag"`
	Dimensions types.Dimensions `json:"dimensions" yaml:"dimensions"`
	// Spacing overrides the variant's centre-to-centre distance when > 0.
	Spacing float64 `json:"spacing,omitempty" yaml:"spacing,omitempty"`
}

// Name returns the name Parse accepts for c.
func (c Config) Name() string {
	switch c.Tag {
	case Void:
		return "voidcube"
	case Acorns:
		return "acorns"
	case Child:
		return "child"
	case Mirror:
		return "mirror-" + c.Dimensions.String()
	default:
		return c.Dimensions.String()
	}
}

// Variant describes how a tag is built and judged.
type Variant struct {
	Tag         Tag
	Description string
	// Dimensions, when set, is the only size the variant comes in.
	Dimensions  *types.Dimensions
	Spacing     float64
	Conventions resolver.Conventions

	build  func(dims types.Dimensions) []*lattice.Piece
	oracle func(pieces []*lattice.Piece) oracle.Oracle
}

func fixed(n int) *types.Dimensions {
	d := types.Cube(n)
	return &d
}

func colourOracle([]*lattice.Piece) oracle.Oracle {
	return oracle.FaceColors{}
}

func derivedOracle(pieces []*lattice.Piece) oracle.Oracle {
	return oracle.NewSymmetric(oracle.Derive(pieces))
}

var variants = map[Tag]Variant{
	Standard: {
		Tag:         Standard,
		Description: "N x N x N cube",
		Spacing:     lattice.DefaultSpacing,
		Conventions: resolver.DefaultConventions(),
		build:       buildStandard,
		oracle:      colourOracle,
	},
	Cuboid: {
		Tag:         Cuboid,
		Description: "A x B x C cuboid; non-square layers only half turn",
		Spacing:     lattice.DefaultSpacing,
		Conventions: resolver.DefaultConventions(),
		build:       buildStandard,
		oracle:      colourOracle,
	},
	Void: {
		Tag:         Void,
		Description: "3x3x3 with no centres or core",
		Dimensions:  fixed(3),
		Spacing:     lattice.DefaultSpacing,
		Conventions: resolver.DefaultConventions(),
		build:       buildVoid,
		oracle:      colourOracle,
	},
	Mirror: {
		Tag:         Mirror,
		Description: "single colour; solved by shape",
		Spacing:     lattice.DefaultSpacing,
		Conventions: resolver.DefaultConventions(),
		build:       buildMirror,
		oracle:      derivedOracle,
	},
	Acorns: {
		Tag:         Acorns,
		Description: "2x2x2 logo mod",
		Dimensions:  fixed(2),
		Spacing:     1.005,
		Conventions: resolver.DefaultConventions(),
		build:       buildAcorns,
		oracle:      derivedOracle,
	},
	Child: {
		Tag:         Child,
		Description: "2x2x2 picture mod",
		Dimensions:  fixed(2),
		Spacing:     lattice.DefaultSpacing,
		Conventions: resolver.DefaultConventions(),
		build:       buildChild,
		oracle:      derivedOracle,
	},
}

// Lookup returns the variant for tag.
func Lookup(tag Tag) (Variant, error) {
	v, ok := variants[tag]
	if !ok {
		return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, tag)
	}
	return v, nil
}

// Built is a freshly built puzzle.
type Built struct {
	Config   Config
	Variant  Variant
	Lattice  *lattice.Lattice
	Oracle   oracle.Oracle
	Resolver *resolver.Resolver
}

// Build creates the pieces, oracle and resolver for cfg.
func Build(cfg Config) (*Built, error) {
	v, err := Lookup(cfg.Tag)
	if err != nil {
		return nil, err
	}

	dims := cfg.Dimensions
	if v.Dimensions != nil {
		if dims != (types.Dimensions{}) && dims != *v.Dimensions {
			return nil, fmt.Errorf("%w: %s is %s only", ErrDimensions, cfg.Tag, v.Dimensions)
		}
		dims = *v.Dimensions
	}
	if !dims.Valid() || dims.Max() > MaxLayers {
		return nil, fmt.Errorf("%w: %s", ErrDimensions, dims)
	}
	if cfg.Tag == Standard && !dims.IsCubic() {
		return nil, fmt.Errorf("%w: standard cube must be cubic, got %s", ErrDimensions, dims)
	}
	cfg.Dimensions = dims

	spacing := v.Spacing
	if cfg.Spacing > 0 {
		spacing = cfg.Spacing
	}

	pieces := v.build(dims)
	return &Built{
		Config:   cfg,
		Variant:  v,
		Lattice:  lattice.New(dims, spacing, pieces),
		Oracle:   v.oracle(pieces),
		Resolver: resolver.New(v.Conventions),
	}, nil
}

// Parse reads a puzzle name: "3", "4x4x4", "2x2x3", "mirror", "mirror-4",
// "voidcube", "acorns" or "child".
func Parse(name string) (Config, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "":
		return Config{Tag: Standard, Dimensions: types.Cube(3)}, nil
	case "void", "voidcube":
		return Config{Tag: Void, Dimensions: types.Cube(3)}, nil
	case "acorns", "acornsmod":
		return Config{Tag: Acorns, Dimensions: types.Cube(2)}, nil
	case "child", "thechild", "thechildmod":
		return Config{Tag: Child, Dimensions: types.Cube(2)}, nil
	case "mirror":
		return Config{Tag: Mirror, Dimensions: types.Cube(3)}, nil
	}

	tag := Standard
	if rest, ok := strings.CutPrefix(name, "mirror-"); ok {
		tag, name = Mirror, rest
	}
	dims, err := types.ParseDimensions(name)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrUnknownVariant, err)
	}
	if tag == Standard && !dims.IsCubic() {
		tag = Cuboid
	}
	return Config{Tag: tag, Dimensions: dims}, nil
}

// Category groups catalogue entries.
type Category struct {
	Name    string
	Puzzles []Config
}

// Catalogue lists the stock puzzles.
func Catalogue() []Category {
	var standard, big, mirror []Config
	for n := 2; n <= 7; n++ {
		standard = append(standard, Config{Tag: Standard, Dimensions: types.Cube(n)})
		mirror = append(mirror, Config{Tag: Mirror, Dimensions: types.Cube(n)})
	}
	for n := 8; n <= 17; n++ {
		big = append(big, Config{Tag: Standard, Dimensions: types.Cube(n)})
	}

	var cuboids []Config
	for _, name := range []string{"2x2x3", "3x3x2", "3x3x4", "3x3x5", "2x2x4", "2x2x1", "3x3x1"} {
		cfg, _ := Parse(name)
		cuboids = append(cuboids, cfg)
	}

	return []Category{
		{Name: "Standard", Puzzles: standard},
		{Name: "Big cubes", Puzzles: big},
		{Name: "Cuboids", Puzzles: cuboids},
		{Name: "Mirror", Puzzles: mirror},
		{Name: "Mods", Puzzles: []Config{
			{Tag: Void, Dimensions: types.Cube(3)},
			{Tag: Acorns, Dimensions: types.Cube(2)},
			{Tag: Child, Dimensions: types.Cube(2)},
		}},
	}
}
