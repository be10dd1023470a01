package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/SeamusWaldron/twisty/internal/analysis"
	"github.com/SeamusWaldron/twisty/internal/notation"
)

var (
	applyPlain  bool
	applyInvert bool
)

var applyCmd = &cobra.Command{
	Use:   "apply [moves...]",
	Short: "Apply a move sequence and show the result",
	Long: `Apply a sequence in standard notation to a solved puzzle, then print
the net, whether the puzzle is solved, and a short summary of the sequence.

Examples:
  twisty apply "R U R' U'"
  twisty apply -p 4 2R U2 2R'
  twisty apply --invert "R U F"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().BoolVar(&applyPlain, "plain", false, "Print the net as letters instead of colours")
	applyCmd.Flags().BoolVar(&applyInvert, "invert", false, "Also print the inverse sequence")
}

func runApply(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	seq := strings.Join(args, " ")
	applyErr := s.Apply(seq)
	s.Settle()

	out := cmd.OutOrStdout()
	if applyPlain {
		fmt.Fprint(out, s.Net().String())
	} else {
		fmt.Fprint(out, renderNet(s.Net()))
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Puzzle: %s\n", s.Config().Name())
	fmt.Fprintf(out, "Solved: %v\n", s.IsSolved())

	history := s.History()
	if sum, err := analysis.Summarize(history, 0); err == nil {
		fmt.Fprintf(out, "Moves:  %d (%d rotations, %d cancelled, %d after merging)\n",
			sum.TotalMoves, sum.Rotations, sum.Cancellations, sum.OptimizedMoves)
	}

	if applyInvert {
		inv, err := notation.InvertSequence(history)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Inverse: %s\n", notation.Join(inv))
	}

	if applyErr != nil {
		var errs []string
		for _, e := range multierr.Errors(applyErr) {
			errs = append(errs, e.Error())
		}
		return fmt.Errorf("skipped moves:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
