// Package cli implements the command-line interface for twisty.
package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/twisty"
	"github.com/SeamusWaldron/twisty/internal/config"
	"github.com/SeamusWaldron/twisty/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath     string
	configPath string
	puzzleName string
	verbose    bool

	settingsFile *config.File
	log          = logrus.New()
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "twisty",
	Short: "Twisty puzzle simulator and solve timer",
	Long: `twisty - a terminal simulator for N x N x N cubes, cuboids and shape mods.

Turn layers with the keyboard or standard notation, scramble with a
constrained random scrambler, time solves with inspection and keep a local
log of every solve.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.twisty/twisty.db)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file path (default: ~/.twisty/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&puzzleName, "puzzle", "p", "", "Puzzle to use, e.g. 3, 4x4x4, 2x2x3, mirror, acorns")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func setup(cmd *cobra.Command, args []string) error {
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	var err error
	if configPath != "" {
		settingsFile, err = config.Open(configPath)
	} else {
		settingsFile, err = config.OpenDefault()
	}
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	log.WithField("path", settingsFile.Path()).Debug("settings loaded")
	return nil
}

// settings returns the loaded settings, or the defaults before setup ran.
func settings() config.Settings {
	if settingsFile == nil {
		return config.Defaults()
	}
	return settingsFile.Settings()
}

// getDBPath returns the database path from flag, settings or default.
func getDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if p := settings().DBPath; p != "" {
		return p, nil
	}
	return storage.DefaultDBPath()
}

// openDB opens the solve log.
func openDB() (*storage.DB, error) {
	path, err := getDBPath()
	if err != nil {
		return nil, err
	}
	db, err := storage.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	log.WithField("path", path).Debug("database opened")
	return db, nil
}

// selectedPuzzle resolves the --puzzle flag, falling back to the settings.
func selectedPuzzle() (twisty.Config, error) {
	name := puzzleName
	if name == "" {
		name = settings().Puzzle
	}
	return twisty.Parse(name)
}

// sessionOptions maps the settings onto session options.
func sessionOptions(extra ...twisty.Option) []twisty.Option {
	s := settings()
	opts := []twisty.Option{
		twisty.WithLogger(log),
		twisty.WithMoveDuration(s.MoveDuration),
		twisty.WithScrambleSpeed(s.ScrambleSpeed),
		twisty.WithPlaybackBudget(s.PlaybackBudget),
		twisty.WithInspection(s.Inspection),
		twisty.WithMoveHistory(s.MoveHistory),
	}
	return append(opts, extra...)
}

// newSession creates a session for the selected puzzle.
func newSession(extra ...twisty.Option) (*twisty.Session, error) {
	p, err := selectedPuzzle()
	if err != nil {
		return nil, err
	}
	return twisty.New(p, sessionOptions(extra...)...)
}
