package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/twisty/internal/storage"
	"github.com/SeamusWaldron/twisty/internal/timer"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show settings and solve log information",
	Long:  `Display the settings file, the database location and schema version, and per-puzzle solve counts and best times.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	s := settings()

	fmt.Fprintln(out, "twisty status")
	fmt.Fprintln(out, "=============")
	fmt.Fprintln(out)

	if settingsFile != nil {
		fmt.Fprintf(out, "Settings: %s\n", settingsFile.Path())
	}
	fmt.Fprintf(out, "Puzzle:   %s\n", s.Puzzle)
	fmt.Fprintf(out, "Inspection: %s, move %s, scramble move %s\n", s.Inspection, s.MoveDuration, s.ScrambleSpeed)
	fmt.Fprintln(out)

	db, err := openDB()
	if err != nil {
		fmt.Fprintf(out, "Database error: %v\n", err)
		return nil
	}
	defer db.Close()

	fmt.Fprintf(out, "Database: %s\n", db.Path())
	if v, err := db.CurrentVersion(); err == nil {
		fmt.Fprintf(out, "Schema:   v%d\n", v)
	}

	repo := storage.NewSolveRepository(db)
	total, err := repo.Count("")
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Total solves: %d\n", total)

	last, err := repo.List("", 1)
	if err == nil && len(last) > 0 {
		fmt.Fprintf(out, "Last solve: %s (%s)\n", last[0].SolvedAt.Local().Format("2006-01-02 15:04"), last[0].Puzzle)
	}

	names, err := repo.Puzzles()
	if err != nil {
		return err
	}
	if len(names) > 0 {
		fmt.Fprintln(out)
		for _, name := range names {
			n, _ := repo.Count(name)
			best, _ := repo.Best(name, 1)
			if len(best) == 0 {
				continue
			}
			fmt.Fprintf(out, "  %-12s %4d solves, best %s\n", name, n, timer.Format(best[0].Duration))
		}
	}
	return nil
}
