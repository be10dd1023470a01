// Package animator runs queued moves one at a time through an explicit
// Queued -> Animating -> Settling -> Complete state machine, driven by
// external clock ticks.
package animator

import (
	"math"
	"time"

	"github.com/SeamusWaldron/twisty/internal/lattice"
	"github.com/SeamusWaldron/twisty/internal/resolver"
	"github.com/SeamusWaldron/twisty/pkg/types"
)

// State is a job's lifecycle stage.
type State int

const (
	Queued State = iota
	Animating
	Settling
	Complete
	Dropped
)

func (s State) String() string {
	switch s {
	case Queued:
		return "queued"
	case Animating:
		return "animating"
	case Settling:
		return "settling"
	case Complete:
		return "complete"
	case Dropped:
		return "dropped"
	default:
		return "unknown"
	}
}

// Source says where a job came from.
type Source int

const (
	Manual Source = iota
	Scramble
	Playback
)

func (s Source) String() string {
	switch s {
	case Manual:
		return "manual"
	case Scramble:
		return "scramble"
	case Playback:
		return "playback"
	default:
		return "unknown"
	}
}

// Job is a move waiting to run. Exactly one of Token or Request is used:
// tokens are decoded against the active dimensions when the job starts.
type Job struct {
	Token    string
	Request  resolver.Request
	Source   Source
	Duration time.Duration
}

// Result reports a finished job.
type Result struct {
	Job   Job
	Move  resolver.Concrete
	State State
	Err   error
}

// ResolveFunc turns a job into a concrete move for the active dimensions.
type ResolveFunc func(dims types.Dimensions, job Job) (resolver.Concrete, error)

type active struct {
	job     Job
	move    resolver.Concrete
	pieces  []*lattice.Piece
	base    []lattice.Pose
	elapsed time.Duration
	state   State
}

// Queue animates jobs on a lattice in FIFO order.
// It is not safe for concurrent use.
type Queue struct {
	lat        *lattice.Lattice
	resolve    ResolveFunc
	pending    []Job
	current    *active
	onComplete func(Result)
}

// NewQueue creates a queue for lat.
func NewQueue(lat *lattice.Lattice, resolve ResolveFunc) *Queue {
	return &Queue{lat: lat, resolve: resolve}
}

// OnComplete registers a callback run after each job settles or is dropped.
func (q *Queue) OnComplete(fn func(Result)) {
	q.onComplete = fn
}

// Push appends a job.
func (q *Queue) Push(jobs ...Job) {
	q.pending = append(q.pending, jobs...)
}

// Len returns the number of jobs not yet complete, including the active one.
func (q *Queue) Len() int {
	n := len(q.pending)
	if q.current != nil {
		n++
	}
	return n
}

// Busy reports whether a job is animating or waiting.
func (q *Queue) Busy() bool {
	return q.Len() > 0
}

// Current returns the state of the active job, or Complete when idle.
func (q *Queue) Current() State {
	if q.current == nil {
		return Complete
	}
	return q.current.state
}

// Tick advances the animation by dt. Time left over after a job completes
// carries into the next one, so long ticks can finish several jobs.
func (q *Queue) Tick(dt time.Duration) {
	for {
		if q.current == nil && !q.start() {
			return
		}
		c := q.current
		remaining := c.move.Duration - c.elapsed
		if dt < remaining {
			c.elapsed += dt
			q.interpolate(c)
			return
		}
		dt -= remaining
		q.settle()
	}
}

// Drain runs every queued job to completion immediately.
func (q *Queue) Drain() {
	for q.Busy() {
		if q.current == nil && !q.start() {
			return
		}
		q.settle()
	}
}

// Flush forces the active job to its settled end state and discards
// everything still queued.
func (q *Queue) Flush() {
	q.pending = nil
	if q.current != nil {
		q.settle()
	}
}

// start dequeues the next job that resolves. Jobs that fail to resolve are
// reported as dropped.
func (q *Queue) start() bool {
	for len(q.pending) > 0 {
		job := q.pending[0]
		q.pending = q.pending[1:]

		move, err := q.resolve(q.lat.Active(), job)
		if err != nil {
			q.report(Result{Job: job, State: Dropped, Err: err})
			continue
		}
		if job.Duration > 0 {
			move.Duration = job.Duration
		}

		pieces := q.lat.Members(move.Axis, move.Slice)
		base := make([]lattice.Pose, len(pieces))
		for i, p := range pieces {
			base[i] = p.Pose()
		}
		q.current = &active{
			job:    job,
			move:   move,
			pieces: pieces,
			base:   base,
			state:  Animating,
		}
		return true
	}
	return false
}

func (q *Queue) interpolate(c *active) {
	progress := 1.0
	if c.move.Duration > 0 {
		progress = float64(c.elapsed) / float64(c.move.Duration)
	}
	rot := lattice.AxisAngle(c.move.Axis, c.move.Angle*EaseOutCubic(progress))
	for i, p := range c.pieces {
		p.SetPose(c.base[i].Rotated(rot))
	}
}

func (q *Queue) settle() {
	c := q.current
	c.state = Settling

	rot := lattice.AxisAngle(c.move.Axis, c.move.Angle)
	for i, p := range c.pieces {
		p.SetPose(c.base[i].Rotated(rot))
	}
	if c.move.IsWhole() {
		q.lat.Reorient(c.move.Axis, c.move.Turns)
	}
	q.lat.SnapAll(c.pieces)

	c.state = Complete
	q.current = nil
	q.report(Result{Job: c.job, Move: c.move, State: Complete})
}

func (q *Queue) report(r Result) {
	if q.onComplete != nil {
		q.onComplete(r)
	}
}

// EaseOutCubic maps linear progress in [0,1] to eased progress.
func EaseOutCubic(p float64) float64 {
	p = math.Max(0, math.Min(1, p))
	return 1 - math.Pow(1-p, 3)
}

// PlaybackDurations spreads n moves over at most total. When n moves at
// per would take longer, each move gets a share weighted so the middle of
// the sequence runs fastest.
func PlaybackDurations(n int, per, total time.Duration) []time.Duration {
	out := make([]time.Duration, n)
	if n == 0 {
		return out
	}
	if time.Duration(n)*per <= total {
		for i := range out {
			out[i] = per
		}
		return out
	}

	weights := make([]float64, n)
	sum := 0.0
	for i := range weights {
		x := 0.5
		if n > 1 {
			x = float64(i) / float64(n-1)
		}
		weights[i] = 1 + 3*math.Pow(2*x-1, 2)
		sum += weights[i]
	}
	for i, w := range weights {
		out[i] = time.Duration(float64(total) * w / sum)
	}
	return out
}
