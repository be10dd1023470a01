// Package config manages the persistent settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/twisty/internal/puzzle"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid settings")

// Settings is the content of ~/.twisty/config.yaml.
type Settings struct {
	DBPath         string        `yaml:"db_path,omitempty"`
	Puzzle         string        `yaml:"puzzle"`
	MoveDuration   time.Duration `yaml:"move_duration"`
	ScrambleSpeed  time.Duration `yaml:"scramble_speed"`
	PlaybackBudget time.Duration `yaml:"playback_budget"`
	Inspection     time.Duration `yaml:"inspection"`
	MoveHistory    bool          `yaml:"move_history"`
}

// Defaults returns the settings used when no file exists.
func Defaults() Settings {
	return Settings{
		Puzzle:         "3",
		MoveDuration:   140 * time.Millisecond,
		ScrambleSpeed:  50 * time.Millisecond,
		PlaybackBudget: 5 * time.Second,
		Inspection:     15 * time.Second,
		MoveHistory:    true,
	}
}

// Validate reports the first setting that cannot be used.
func (s Settings) Validate() error {
	if _, err := puzzle.Parse(s.Puzzle); err != nil {
		return fmt.Errorf("%w: puzzle %q: %v", ErrInvalid, s.Puzzle, err)
	}
	if s.MoveDuration < 0 || s.ScrambleSpeed < 0 || s.PlaybackBudget < 0 || s.Inspection < 0 {
		return fmt.Errorf("%w: durations must not be negative", ErrInvalid)
	}
	return nil
}

// File manages the settings file.
type File struct {
	path     string
	settings Settings
}

// DefaultPath returns the default settings file path.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".twisty", "config.yaml"), nil
}

// Open loads the settings at path. A missing file yields the defaults.
func Open(path string) (*File, error) {
	f := &File{path: path, settings: Defaults()}

	if err := f.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return f, nil
}

// OpenDefault loads the settings at the default path.
func OpenDefault() (*File, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Open(path)
}

// Load reads the file. Keys absent from the file keep their current values.
func (f *File) Load() error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return err
	}

	s := f.settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("failed to parse %s: %w", f.path, err)
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("%s: %w", f.path, err)
	}
	f.settings = s
	return nil
}

// Save writes the settings to disk.
func (f *File) Save() error {
	if err := f.settings.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(f.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// Path returns the settings file path.
func (f *File) Path() string {
	return f.path
}

// Settings returns the current settings.
func (f *File) Settings() Settings {
	return f.settings
}

// SetPuzzle changes the default puzzle and saves.
func (f *File) SetPuzzle(name string) error {
	prev := f.settings.Puzzle
	f.settings.Puzzle = name
	if err := f.Save(); err != nil {
		f.settings.Puzzle = prev
		return err
	}
	return nil
}

// SetDBPath changes the database path and saves.
func (f *File) SetDBPath(path string) error {
	prev := f.settings.DBPath
	f.settings.DBPath = path
	if err := f.Save(); err != nil {
		f.settings.DBPath = prev
		return err
	}
	return nil
}
