package cmd

import (
	"log/slog"
	"os"

	"gioui.org/app"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSchematic/internal/config"
	appui "github.com/OpenTraceLab/OpenTraceSchematic/internal/ui"
)

var uiCmd = &cobra.Command{
	Use:   "ui [file]",
	Short: "Launch the schematic editor",
	Long: `Launch the interactive editor, optionally opening a schematic file.

Controls:
  Left-drag       wire from a pin, move the selection or select an area
  Right-click     edit the properties of a component
  Middle-drag     pan, scroll to zoom
  R / Del         rotate / delete the selection
  Ctrl+X/C/V      cut, copy, paste at the cursor
  Ctrl+S / Ctrl+O save / open
  Esc             abort the current gesture`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUI,
}

func init() {
	rootCmd.AddCommand(uiCmd)
}

func runUI(cmd *cobra.Command, args []string) error {
	opts := appui.Options{Config: cfg, ConfigPath: configPath}
	if opts.ConfigPath == "" {
		if p, err := config.Path(); err == nil {
			opts.ConfigPath = p
		}
	}

	if len(args) == 1 {
		d, err := loadDiagram(args[0])
		switch {
		case err == nil:
			opts.Diagram = d
			opts.Path = args[0]
		case os.IsNotExist(err):
			// start a new schematic that Save will create
			opts.Path = args[0]
		default:
			return err
		}
	}

	go func() {
		w := new(app.Window)
		if err := appui.New(w, opts).Run(); err != nil {
			slog.Error("editor", "err", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
	return nil
}
