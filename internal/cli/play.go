package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/twisty"
	"github.com/SeamusWaldron/twisty/internal/storage"
	"github.com/SeamusWaldron/twisty/internal/timer"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive puzzle in the terminal",
	Long: `Start an interactive TUI with a live net of the puzzle.

Keyboard shortcuts:
  r l u d f b   - Turn a face clockwise (Shift for anti-clockwise)
  2-9 then face - Turn the layer that many layers in from the face
  arrows        - Rotate the whole puzzle
  SPACE         - Scramble and start inspection
  z             - Reverse-solve: play the solve and scramble backwards
  + / -         - Next / previous cube size
  ctrl+n        - Reset to solved
  q/Esc         - Quit

Timed solves are saved to the local solve log.`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

// frameInterval is the animation tick.
const frameInterval = 16 * time.Millisecond

type tickMsg time.Time

type playModel struct {
	session *twisty.Session
	solves  *storage.SolveRepository

	depth    int // pending layer depth typed before a face key
	lastTick time.Time
	last     *twisty.Result
	progress int
	err      error
	notice   string
	quitting bool
}

func runPlay(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	m := &playModel{session: s}

	db, err := openDB()
	if err != nil {
		log.WithError(err).Warn("solve log unavailable, solves will not be saved")
	} else {
		defer db.Close()
		m.solves = storage.NewSolveRepository(db)
	}

	s.OnSolved(m.solved)
	s.OnProgress(func(faces int) { m.progress = faces })

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *playModel) Init() tea.Cmd {
	m.lastTick = time.Now()
	return tick()
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		now := time.Time(msg)
		m.session.Tick(now.Sub(m.lastTick))
		m.lastTick = now
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg.String())
	}
	return m, nil
}

func (m *playModel) handleKey(key string) (tea.Model, tea.Cmd) {
	m.err = nil
	m.notice = ""

	switch key {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case " ":
		m.last = nil
		m.progress = 0
		m.err = m.session.Scramble(context.Background())
		return m, nil

	case "z":
		m.err = m.session.ReverseSolve()
		return m, nil

	case "ctrl+n":
		m.session.Reset()
		m.last = nil
		return m, nil

	case "+", "=", "-":
		m.resize(key)
		return m, nil
	}

	if len(key) == 1 && key[0] >= '2' && key[0] <= '9' {
		m.depth = int(key[0] - '0')
		return m, nil
	}

	depth := m.depth
	m.depth = 0
	if depth > 1 && len(key) == 1 {
		face := twisty.Face(strings.ToUpper(key))
		turns := twisty.CW
		if key == string(face) {
			turns = twisty.CCW
		}
		m.err = m.session.Turn(face, depth, turns)
		return m, nil
	}

	if _, err := m.session.Key(key); err != nil {
		m.err = err
	}
	return m, nil
}

// resize steps a standard cube up or down one size.
func (m *playModel) resize(key string) {
	cfg := m.session.Config()
	if cfg.Tag != twisty.TagStandard {
		m.notice = "resizing only applies to standard cubes"
		return
	}
	n := cfg.Dimensions.X + 1
	if key == "-" {
		n = cfg.Dimensions.X - 1
	}
	if n < 1 {
		return
	}
	if err := m.session.Rebuild(twisty.Cube(n)); err != nil {
		m.err = err
	}
	m.last = nil
}

func (m *playModel) solved(r twisty.Result) {
	m.last = &r
	if m.solves == nil {
		return
	}
	id, err := m.solves.Create(storage.Solve{
		Puzzle:   r.Puzzle.Name(),
		SolvedAt: r.SolvedAt,
		Duration: r.Duration,
		Scramble: r.Scramble,
		Solution: r.Solution,
	})
	if err != nil {
		log.WithError(err).Error("failed to save solve")
		m.err = err
		return
	}
	log.WithField("solve_id", id).Debug("solve saved")
	m.notice = "saved " + id[:8]
}

func (m *playModel) View() string {
	if m.quitting {
		return ""
	}
	s := m.session

	var b strings.Builder
	b.WriteString(titleStyle.Render("twisty " + s.Config().Name()))
	b.WriteString("  ")
	b.WriteString(statusStyle.Render(s.Mode().String()))
	if m.depth > 1 {
		b.WriteString(statusStyle.Render(fmt.Sprintf("  depth %d", m.depth)))
	}
	b.WriteString("\n\n")

	b.WriteString(renderNet(s.Net()))
	b.WriteString("\n")

	switch s.TimerPhase() {
	case timer.Inspecting:
		b.WriteString(fmt.Sprintf("Inspection: %s\n", timerStyle.Render(fmt.Sprintf("%.0f", s.InspectionRemaining().Seconds()))))
	case timer.Running, timer.Stopped:
		b.WriteString(fmt.Sprintf("Time: %s\n", timerStyle.Render(timer.Format(s.Elapsed()))))
	default:
		b.WriteString("\n")
	}

	if m.last != nil {
		b.WriteString(solvedStyle.Render("SOLVED"))
		b.WriteString(fmt.Sprintf(" %s in %d moves\n", timer.Format(m.last.Duration), len(m.last.Solution)))
	} else if s.Mode() == twisty.ModeSolving && m.progress > 0 {
		b.WriteString(statusStyle.Render(fmt.Sprintf("Faces done: %d", m.progress)))
		b.WriteString("\n")
	} else if s.IsSolved() {
		b.WriteString(statusStyle.Render("solved"))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
	}

	if h := s.History(); len(h) > 0 {
		b.WriteString(fmt.Sprintf("Moves (%d): %s\n", len(h), moveStyle.Render(tail(h, 20))))
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(statusStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("rludfb=turn  Shift=prime  2-9=depth  arrows=rotate  SPACE=scramble  z=reverse  +/-=size  ctrl+n=reset  q=quit"))
	b.WriteString("\n")
	return b.String()
}
