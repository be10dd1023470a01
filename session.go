package twisty

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/SeamusWaldron/twisty/internal/animator"
	"github.com/SeamusWaldron/twisty/internal/lattice"
	"github.com/SeamusWaldron/twisty/internal/notation"
	"github.com/SeamusWaldron/twisty/internal/oracle"
	"github.com/SeamusWaldron/twisty/internal/puzzle"
	"github.com/SeamusWaldron/twisty/internal/render"
	"github.com/SeamusWaldron/twisty/internal/resolver"
	"github.com/SeamusWaldron/twisty/internal/scramble"
	"github.com/SeamusWaldron/twisty/internal/timer"
	"github.com/SeamusWaldron/twisty/pkg/types"
)

// Mode is what the session is currently doing.
type Mode int

const (
	// ModeFree accepts moves without timing.
	ModeFree Mode = iota
	// ModeScrambling ignores input until the scramble settles.
	ModeScrambling
	// ModeSolving times the solve and reports when it is solved.
	ModeSolving
	// ModePlayback ignores input while a reverse-solve plays.
	ModePlayback
)

func (m Mode) String() string {
	switch m {
	case ModeFree:
		return "free"
	case ModeScrambling:
		return "scrambling"
	case ModeSolving:
		return "solving"
	case ModePlayback:
		return "playback"
	default:
		return "unknown"
	}
}

// Result describes a completed timed solve.
type Result struct {
	Puzzle   Config
	Scramble []string
	Solution []string
	Duration time.Duration
	SolvedAt time.Time
}

// Session owns one puzzle: its pieces, move queue, history and timers.
// It is driven from a single goroutine and is not safe for concurrent use.
type Session struct {
	cfg       *config
	log       logrus.FieldLogger
	scrambler *scramble.Generator
	timer     *timer.Timer

	puzzle    Config
	built     *puzzle.Built
	codec     *notation.Codec
	queue     *animator.Queue
	projected types.Dimensions

	history  []string
	scramble []string
	mode     Mode
	progress progressTracker

	onMove   func(token string)
	onSolved func(Result)
}

// New builds a solved puzzle.
func New(p Config, opts ...Option) (*Session, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	sopts := []scramble.Option{scramble.WithLogger(cfg.log)}
	if cfg.rng != nil {
		sopts = append(sopts, scramble.WithRand(cfg.rng))
	}
	if cfg.scrambleSource != nil {
		sopts = append(sopts, scramble.WithSource(cfg.scrambleSource))
	}

	s := &Session{
		cfg:       cfg,
		log:       cfg.log,
		scrambler: scramble.New(sopts...),
		timer:     timer.New(cfg.inspection),
	}
	if err := s.Rebuild(p); err != nil {
		return nil, err
	}
	return s, nil
}

// Rebuild discards every piece and builds p solved. History, queue and
// timers are cleared.
func (s *Session) Rebuild(p Config) error {
	built, err := puzzle.Build(p)
	if err != nil {
		return fmt.Errorf("failed to build puzzle: %w", err)
	}
	if s.queue != nil {
		s.queue.Flush()
	}

	s.built = built
	s.puzzle = built.Config
	s.codec = notation.NewCodec(built.Resolver)
	s.queue = animator.NewQueue(built.Lattice, s.resolveJob)
	s.queue.OnComplete(s.complete)
	s.projected = built.Lattice.Active()

	s.history = nil
	s.scramble = nil
	s.mode = ModeFree
	s.timer.Reset()
	s.progress.reset(oracle.UniformFaces(built.Lattice.Pieces()))

	s.log.WithFields(logrus.Fields{
		"puzzle": s.puzzle.Name(),
		"pieces": len(built.Lattice.Pieces()),
	}).Debug("puzzle built")
	return nil
}

// Reset settles any move in flight, drops queued moves and rebuilds the
// puzzle solved.
func (s *Session) Reset() {
	if err := s.Rebuild(s.puzzle); err != nil {
		s.log.WithError(err).Error("rebuild failed")
	}
}

// OnMove registers a callback for every recorded manual move.
func (s *Session) OnMove(fn func(token string)) {
	s.onMove = fn
}

// OnSolved registers a callback for timed solves.
func (s *Session) OnSolved(fn func(Result)) {
	s.onSolved = fn
}

// OnProgress registers a callback fired when a timed solve reaches a new
// high in the number of single-colour faces.
func (s *Session) OnProgress(fn func(faces int)) {
	s.progress.callback = fn
}

// Turn queues a turn of the layer depth layers in from face.
func (s *Session) Turn(face Face, depth int, turns Turn) error {
	return s.request(resolver.Request{
		Axis:     face.Axis(),
		Selector: resolver.Face(face, depth),
		Turns:    turns,
	})
}

// TurnSlice queues a turn of the layer at a lattice coordinate. Turns are
// relative to the layer's reference face.
func (s *Session) TurnSlice(axis Axis, coordinate float64, turns Turn) error {
	return s.request(resolver.Request{Axis: axis, Selector: resolver.At(coordinate), Turns: turns})
}

// Rotate queues a whole-puzzle rotation.
func (s *Session) Rotate(axis Axis, turns Turn) error {
	return s.request(resolver.Request{Axis: axis, Selector: resolver.All(), Turns: turns})
}

// Drag queues the move a gesture decided on: a rotation of radians about
// +axis of the layer at coordinate, or of the whole puzzle when coordinate
// is WholePuzzle.
func (s *Session) Drag(axis Axis, coordinate, radians float64) error {
	if !math.IsInf(coordinate, 1) && !s.built.Lattice.HasLayer(axis, coordinate) {
		return fmt.Errorf("%w: no %s layer at %g", ErrInvalidMove, axis, coordinate)
	}
	return s.request(s.built.Resolver.FromDrag(axis, coordinate, radians, 0))
}

// Key queues the move bound to a key. It reports false for unbound keys.
func (s *Session) Key(key string) (bool, error) {
	req, ok := resolver.KeyRequest(key)
	if !ok {
		return false, nil
	}
	return true, s.request(req)
}

// Apply queues a space-joined sequence of manual moves. Invalid tokens are
// skipped; the returned error lists every skipped token.
func (s *Session) Apply(sequence string) error {
	if err := s.acceptingInput(); err != nil {
		return err
	}
	var errs error
	for _, tok := range notation.Split(sequence) {
		req, err := notation.Parse(tok)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%w: %w", ErrInvalidNotation, err))
			continue
		}
		if err := s.enqueue(req, animator.Manual, s.cfg.moveDuration); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%q: %w", tok, err))
		}
	}
	return errs
}

func (s *Session) request(req resolver.Request) error {
	if err := s.acceptingInput(); err != nil {
		return err
	}
	return s.enqueue(req, animator.Manual, s.cfg.moveDuration)
}

func (s *Session) acceptingInput() error {
	if s.mode == ModeScrambling || s.mode == ModePlayback {
		return fmt.Errorf("%w: %s", ErrBusy, s.mode)
	}
	return nil
}

// enqueue validates req against the dimensions the puzzle will have when
// the request reaches the front of the queue.
func (s *Session) enqueue(req resolver.Request, src animator.Source, d time.Duration) error {
	m, err := s.built.Resolver.Resolve(s.projected, req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}
	if m.IsWhole() && int(m.Turns)%2 != 0 {
		s.projected = s.projected.Swapped(m.Axis)
	}
	s.queue.Push(animator.Job{Request: req, Source: src, Duration: d})
	return nil
}

func (s *Session) resolveJob(dims types.Dimensions, job animator.Job) (resolver.Concrete, error) {
	req := job.Request
	if job.Token != "" {
		var err error
		if req, err = notation.Parse(job.Token); err != nil {
			return resolver.Concrete{}, err
		}
	}
	return s.built.Resolver.Resolve(dims, req)
}

// Scramble resets the puzzle and queues a scramble. The inspection
// countdown starts when the last scramble move settles.
func (s *Session) Scramble(ctx context.Context) error {
	s.Reset()
	dims := s.built.Lattice.Active()

	// The external source only knows the plain 3x3x3.
	ext, ok := "", false
	if s.puzzle.Tag == puzzle.Standard {
		ext, ok = s.scrambler.External(ctx, dims)
	}

	var tokens []string
	if ok {
		tokens = notation.Split(ext)
	} else {
		tokens = s.codec.EncodeSequence(dims, s.scrambler.Generate(dims))
	}

	var errs error
	for _, tok := range tokens {
		req, err := notation.Parse(tok)
		if err == nil {
			err = s.enqueue(req, animator.Scramble, s.cfg.scrambleSpeed)
		}
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("scramble token %q: %w", tok, err))
			continue
		}
		s.scramble = append(s.scramble, tok)
	}

	s.mode = ModeScrambling
	s.log.WithFields(logrus.Fields{
		"puzzle": s.puzzle.Name(),
		"moves":  len(s.scramble),
	}).Debug("scramble queued")
	if !s.queue.Busy() {
		s.idle()
	}
	return errs
}

// ReverseSolve plays back the inverse of the solve history and then of the
// scramble, without recording either. Long playbacks are sped up to fit the
// playback budget. It returns ErrBusy while moves are still queued.
func (s *Session) ReverseSolve() error {
	if err := s.acceptingInput(); err != nil {
		return err
	}
	if s.queue.Busy() {
		return fmt.Errorf("%w: %d moves queued", ErrBusy, s.queue.Len())
	}

	undo, err1 := notation.InvertSequence(s.history)
	unscramble, err2 := notation.InvertSequence(s.scramble)
	tokens := append(undo, unscramble...)
	if len(tokens) == 0 {
		return ErrNothingToReverse
	}

	s.history = nil
	s.scramble = nil
	s.timer.Reset()
	s.mode = ModePlayback

	errs := multierr.Combine(err1, err2)
	durations := animator.PlaybackDurations(len(tokens), s.cfg.moveDuration, s.cfg.playbackBudget)
	for i, tok := range tokens {
		req, err := notation.Parse(tok)
		if err == nil {
			err = s.enqueue(req, animator.Playback, durations[i])
		}
		if err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	s.log.WithField("moves", len(tokens)).Debug("reverse solve queued")
	if !s.queue.Busy() {
		s.idle()
	}
	return errs
}

// Tick advances animation and timers by dt.
func (s *Session) Tick(dt time.Duration) {
	s.queue.Tick(dt)
	s.timer.Advance(dt)
}

// Settle finishes every queued move immediately.
func (s *Session) Settle() {
	s.queue.Drain()
}

func (s *Session) complete(r animator.Result) {
	if r.State == animator.Dropped {
		s.log.WithError(r.Err).WithField("source", r.Job.Source.String()).Warn("move dropped")
	} else if r.Job.Source == animator.Manual {
		s.recordManual(r.Move)
	}
	if !s.queue.Busy() {
		s.idle()
	}
}

func (s *Session) recordManual(m resolver.Concrete) {
	tok, ok := s.codec.Encode(s.built.Lattice.Active(), m.Move)
	if !ok {
		return
	}
	if s.cfg.moveHistory {
		s.history = append(s.history, tok)
	}
	// Rotating the whole puzzle is part of inspection.
	if s.mode == ModeSolving && s.timer.Phase() == timer.Inspecting && !m.IsWhole() {
		s.timer.Start()
	}
	if s.onMove != nil {
		s.onMove(tok)
	}
	s.checkSolved()
}

func (s *Session) idle() {
	switch s.mode {
	case ModeScrambling:
		s.mode = ModeSolving
		s.timer.StartInspection()
		s.progress.reset(oracle.UniformFaces(s.built.Lattice.Pieces()))
	case ModePlayback:
		s.mode = ModeFree
	}
	s.projected = s.built.Lattice.Active()
}

func (s *Session) checkSolved() {
	if s.mode != ModeSolving {
		return
	}
	s.progress.observe(oracle.UniformFaces(s.built.Lattice.Pieces()))
	if !s.IsSolved() {
		return
	}

	res := Result{
		Puzzle:   s.puzzle,
		Scramble: s.ScrambleSequence(),
		Solution: s.History(),
		Duration: s.timer.Stop(),
		SolvedAt: time.Now(),
	}
	s.mode = ModeFree
	s.log.WithFields(logrus.Fields{
		"puzzle":   s.puzzle.Name(),
		"moves":    len(res.Solution),
		"duration": res.Duration,
	}).Info("puzzle solved")
	if s.onSolved != nil {
		s.onSolved(res)
	}
}

// IsSolved asks the variant's oracle about the current arrangement.
func (s *Session) IsSolved() bool {
	return s.built.Oracle.Solved(s.built.Lattice.Pieces())
}

// Config returns the puzzle being played.
func (s *Session) Config() Config {
	return s.puzzle
}

// Dimensions returns the layer counts along each world axis, which odd
// whole-puzzle turns of a cuboid permute.
func (s *Session) Dimensions() Dimensions {
	return s.built.Lattice.Active()
}

// Pieces returns the live pieces. Callers must not modify them.
func (s *Session) Pieces() []*lattice.Piece {
	return s.built.Lattice.Pieces()
}

// Spacing returns the world distance between neighbouring piece centres.
func (s *Session) Spacing() float64 {
	return s.built.Lattice.Spacing()
}

// History returns the recorded manual moves.
func (s *Session) History() []string {
	return append([]string(nil), s.history...)
}

// ScrambleSequence returns the last scramble.
func (s *Session) ScrambleSequence() []string {
	return append([]string(nil), s.scramble...)
}

// Mode returns what the session is doing.
func (s *Session) Mode() Mode {
	return s.mode
}

// Busy reports whether moves are animating or queued.
func (s *Session) Busy() bool {
	return s.queue.Busy()
}

// TimerPhase returns the state of the inspection and solve clocks.
func (s *Session) TimerPhase() TimerPhase {
	return s.timer.Phase()
}

// Elapsed returns the solve clock.
func (s *Session) Elapsed() time.Duration {
	return s.timer.Elapsed()
}

// InspectionRemaining returns the inspection countdown.
func (s *Session) InspectionRemaining() time.Duration {
	return s.timer.Remaining()
}

// Net unfolds the current stickers into a flat net.
func (s *Session) Net() render.Net {
	return render.Unfold(s.built.Lattice.Active(), s.built.Lattice.Pieces())
}
