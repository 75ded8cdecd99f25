package cmd

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSchematic/internal/config"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/schematic"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg *config.Config
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	okStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

var rootCmd = &cobra.Command{
	Use:   "ots",
	Short: "OpenTraceSchematic - circuit schematic editor and tools",
	Long: `OpenTraceSchematic (ots) edits and analyses small circuit schematics
stored in the JSON schematic format:
  - node labeling and netlist export
  - connectivity checks
  - PNG rendering
  - scripted editing and an interactive editor

Examples:
  ots ui divider.json                 # Launch the editor
  ots info divider.json               # Show component counts and nodes
  ots netlist divider.json -f kicad   # Export a KiCad netlist
  ots render divider.json -o out.png  # Render to PNG`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(cmd.ErrOrStderr())

		path := configPath
		if path == "" {
			p, err := config.Path()
			if err != nil {
				return fmt.Errorf("config path: %w", err)
			}
			path = p
		}
		c, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = c
		slog.Debug("loaded config", "path", path, "grid", cfg.Grid, "theme", cfg.Theme)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "settings file (default $"+config.EnvPath+" or the user config dir)")
}

func setupLogging(w io.Writer) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	schematic.SetLogger(logger)
}

// loadDiagram reads a schematic file and applies the configured grid.
func loadDiagram(path string) (*schematic.Diagram, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := schematic.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if cfg != nil {
		d.Grid = cfg.Grid
	}
	return d, nil
}

// writeOutput writes data to path, or to the command's stdout when path is
// empty or "-". With toClipboard the data is also copied to the clipboard.
func writeOutput(cmd *cobra.Command, path string, data []byte, toClipboard bool) error {
	if toClipboard {
		if err := clipboard.WriteAll(string(data)); err != nil {
			return fmt.Errorf("clipboard: %w", err)
		}
		slog.Info("copied to clipboard", "bytes", len(data))
	}

	if path == "" || path == "-" {
		if toClipboard {
			return nil
		}
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	slog.Debug("wrote output", "path", path, "bytes", len(data))
	return nil
}

func saveDiagram(d *schematic.Diagram) ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
