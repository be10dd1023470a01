package twisty

import (
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/twisty/internal/scramble"
	"github.com/SeamusWaldron/twisty/internal/timer"
)

// Option configures a Session.
type Option func(*config)

type config struct {
	log            logrus.FieldLogger
	moveDuration   time.Duration
	scrambleSpeed  time.Duration
	playbackBudget time.Duration
	inspection     time.Duration
	moveHistory    bool
	scrambleSource scramble.Source
	rng            *rand.Rand
}

func defaultConfig() *config {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &config{
		log:            l,
		moveDuration:   140 * time.Millisecond,
		scrambleSpeed:  50 * time.Millisecond,
		playbackBudget: 5 * time.Second,
		inspection:     timer.DefaultInspection,
		moveHistory:    true,
	}
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *config) {
		c.log = log
	}
}

// WithMoveDuration sets how long a manual move animates.
func WithMoveDuration(d time.Duration) Option {
	return func(c *config) {
		c.moveDuration = d
	}
}

// WithScrambleSpeed sets how long each scramble move animates.
func WithScrambleSpeed(d time.Duration) Option {
	return func(c *config) {
		c.scrambleSpeed = d
	}
}

// WithPlaybackBudget caps the total duration of a reverse-solve playback.
// Longer playbacks speed up, fastest in the middle.
func WithPlaybackBudget(d time.Duration) Option {
	return func(c *config) {
		c.playbackBudget = d
	}
}

// WithInspection sets the inspection countdown after a scramble.
// Zero starts the solve clock as soon as the scramble settles.
func WithInspection(d time.Duration) Option {
	return func(c *config) {
		c.inspection = d
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), manual moves are recorded and accessible via History().
// Reverse-solve needs history to undo manual moves.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithScrambleSource uses an external scrambler, such as an optimal solver,
// for the standard 3x3x3. Failures fall back to the random generator.
func WithScrambleSource(src scramble.Source) Option {
	return func(c *config) {
		c.scrambleSource = src
	}
}

// WithRand sets the random source for scrambles.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
	}
}
