package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/twisty/internal/analysis"
	"github.com/SeamusWaldron/twisty/internal/storage"
	"github.com/SeamusWaldron/twisty/internal/timer"
)

var (
	historyLimit int
	historyBest  bool
	historyAll   bool
	exportFormat string
	exportOutput string
	ngramMin     int
	ngramMax     int
	ngramTop     int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List logged solves",
	Long: `List solves from the local solve log, newest first.

Examples:
  twisty history
  twisty history -p 4 --best
  twisty history --all --limit 50`,
	RunE: runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [solve-id|last]",
	Short: "Show details of a solve",
	Long: `Display a logged solve: timing, scramble, solution, a move summary and
the move sequences repeated within the solution.`,
	Args: cobra.ExactArgs(1),
	RunE: runHistoryShow,
}

var historyExportCmd = &cobra.Command{
	Use:   "export [solve-id|last]",
	Short: "Export a solve",
	Long: `Export a logged solve as text or JSON.

Examples:
  twisty history export last
  twisty history export <solve_id> --format json -o solve.json`,
	Args: cobra.ExactArgs(1),
	RunE: runHistoryExport,
}

var historyNoteCmd = &cobra.Command{
	Use:   "note <solve-id|last> <text>",
	Short: "Attach notes to a solve",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runHistoryNote,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <solve-id>",
	Short: "Delete a solve",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of solves to list")
	historyCmd.Flags().BoolVar(&historyBest, "best", false, "List the fastest solves instead of the newest")
	historyCmd.Flags().BoolVar(&historyAll, "all", false, "List every puzzle, not only the selected one")

	historyCmd.AddCommand(historyShowCmd)
	historyShowCmd.Flags().IntVar(&ngramMin, "min-n", 3, "Shortest repeated sequence to report")
	historyShowCmd.Flags().IntVar(&ngramMax, "max-n", 6, "Longest repeated sequence to report")
	historyShowCmd.Flags().IntVar(&ngramTop, "top", 3, "Repeated sequences to report per length")

	historyCmd.AddCommand(historyExportCmd)
	historyExportCmd.Flags().StringVar(&exportFormat, "format", "txt", "Export format (txt, json)")
	historyExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")

	historyCmd.AddCommand(historyNoteCmd)
	historyCmd.AddCommand(historyDeleteCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()
	repo := storage.NewSolveRepository(db)

	name := ""
	if !historyAll {
		p, err := selectedPuzzle()
		if err != nil {
			return err
		}
		name = p.Name()
	}

	var solves []storage.Solve
	if historyBest {
		if name == "" {
			return fmt.Errorf("--best needs a single puzzle; drop --all")
		}
		solves, err = repo.Best(name, historyLimit)
	} else {
		solves, err = repo.List(name, historyLimit)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(solves) == 0 {
		fmt.Fprintln(out, "No solves logged yet. Play one with: twisty play")
		return nil
	}

	for i, s := range solves {
		fmt.Fprintf(out, "%3d. %s  %-10s %9s  %4d moves  %s\n",
			i+1, s.SolveID[:8], s.Puzzle, timer.Format(s.Duration), s.MoveCount,
			statusStyle.Render(s.SolvedAt.Local().Format("2006-01-02 15:04")))
	}
	return nil
}

// findSolve looks a solve up by ID, unique ID prefix or "last".
func findSolve(repo *storage.SolveRepository, ref string) (*storage.Solve, error) {
	if ref == "last" {
		solves, err := repo.List("", 1)
		if err != nil {
			return nil, err
		}
		if len(solves) == 0 {
			return nil, fmt.Errorf("no solves found")
		}
		return &solves[0], nil
	}

	s, err := repo.Get(ref)
	if err != nil || s != nil {
		return s, err
	}

	n, err := repo.Count("")
	if err != nil {
		return nil, err
	}
	all, err := repo.List("", n)
	if err != nil {
		return nil, err
	}
	var found *storage.Solve
	for i := range all {
		if strings.HasPrefix(all[i].SolveID, ref) {
			if found != nil {
				return nil, fmt.Errorf("solve id %q is ambiguous", ref)
			}
			found = &all[i]
		}
	}
	if found == nil {
		return nil, fmt.Errorf("solve %q not found", ref)
	}
	return found, nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	s, err := findSolve(storage.NewSolveRepository(db), args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render("Solve "+s.SolveID))
	fmt.Fprintf(out, "Puzzle:   %s\n", s.Puzzle)
	fmt.Fprintf(out, "Solved:   %s\n", s.SolvedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "Time:     %s\n", timerStyle.Render(timer.Format(s.Duration)))
	if s.Notes != nil {
		fmt.Fprintf(out, "Notes:    %s\n", *s.Notes)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Scramble: %s\n", strings.Join(s.Scramble, " "))
	fmt.Fprintf(out, "Solution: %s\n", moveStyle.Render(strings.Join(s.Solution, " ")))
	fmt.Fprintln(out)

	sum, err := analysis.Summarize(s.Solution, s.Duration)
	if err != nil {
		return fmt.Errorf("failed to summarise solution: %w", err)
	}
	fmt.Fprintf(out, "Moves:         %d\n", sum.TotalMoves)
	fmt.Fprintf(out, "Rotations:     %d\n", sum.Rotations)
	fmt.Fprintf(out, "Cancellations: %d\n", sum.Cancellations)
	fmt.Fprintf(out, "After merging: %d (%.0f%%)\n", sum.OptimizedMoves, sum.Efficiency*100)
	fmt.Fprintf(out, "TPS:           %.2f\n", sum.TPS)
	if sum.MostUsedFace != "" {
		fmt.Fprintf(out, "Most turned:   %s (%d)\n", sum.MostUsedFace, sum.FaceCounts[sum.MostUsedFace])
	}

	report := analysis.MineNGrams(s.Solution, ngramMin, ngramMax, ngramTop)
	if len(report.TopNGrams) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Repeated sequences:")
		for n := ngramMin; n <= ngramMax; n++ {
			for _, g := range report.TopNGrams[n] {
				fmt.Fprintf(out, "  %dx  %s\n", g.Count, moveStyle.Render(g.Key()))
			}
		}
	}
	return nil
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	s, err := findSolve(storage.NewSolveRepository(db), args[0])
	if err != nil {
		return err
	}

	var output string
	switch strings.ToLower(exportFormat) {
	case "txt":
		output = strings.Join(s.Solution, " ")

	case "json":
		sum, err := analysis.Summarize(s.Solution, s.Duration)
		if err != nil {
			return err
		}
		type solveJSON struct {
			SolveID    string            `json:"solve_id"`
			Puzzle     string            `json:"puzzle"`
			SolvedAt   string            `json:"solved_at"`
			DurationMs int64             `json:"duration_ms"`
			Scramble   []string          `json:"scramble"`
			Solution   []string          `json:"solution"`
			Notes      *string           `json:"notes,omitempty"`
			Summary    *analysis.Summary `json:"summary"`
		}
		data, err := json.MarshalIndent(solveJSON{
			SolveID:    s.SolveID,
			Puzzle:     s.Puzzle,
			SolvedAt:   s.SolvedAt.Format(time.RFC3339),
			DurationMs: s.Duration.Milliseconds(),
			Scramble:   s.Scramble,
			Solution:   s.Solution,
			Notes:      s.Notes,
			Summary:    sum,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		output = string(data)

	default:
		return fmt.Errorf("unknown format: %s (use txt or json)", exportFormat)
	}

	if exportOutput == "" {
		fmt.Fprintln(cmd.OutOrStdout(), output)
		return nil
	}

	dir := filepath.Dir(exportOutput)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(exportOutput, []byte(output+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported solve %s to %s\n", s.SolveID[:8], exportOutput)
	return nil
}

func runHistoryNote(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()
	repo := storage.NewSolveRepository(db)

	s, err := findSolve(repo, args[0])
	if err != nil {
		return err
	}
	return repo.SetNotes(s.SolveID, strings.Join(args[1:], " "))
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()
	repo := storage.NewSolveRepository(db)

	s, err := findSolve(repo, args[0])
	if err != nil {
		return err
	}
	if err := repo.Delete(s.SolveID); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted solve %s\n", s.SolveID)
	return nil
}
