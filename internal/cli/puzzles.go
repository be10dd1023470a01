package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/twisty/internal/puzzle"
)

var puzzlesCmd = &cobra.Command{
	Use:   "puzzles",
	Short: "List the stock puzzles",
	Long:  `List the stock puzzles by category. Any N or AxBxC size can also be passed to --puzzle.`,
	RunE:  runPuzzles,
}

func init() {
	rootCmd.AddCommand(puzzlesCmd)
}

func runPuzzles(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, cat := range puzzle.Catalogue() {
		fmt.Fprintln(out, titleStyle.Render(cat.Name))
		for _, cfg := range cat.Puzzles {
			v, err := puzzle.Lookup(cfg.Tag)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "  %-12s %s\n", cfg.Name(), statusStyle.Render(v.Description))
		}
		fmt.Fprintln(out)
	}
	return nil
}
