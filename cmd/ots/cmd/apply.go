package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/editor"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/schematic"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/script"
)

var (
	applyInput  string
	applyOutput string
)

var applyCmd = &cobra.Command{
	Use:   "apply <script>",
	Short: "Replay an editing script",
	Long: `Replay a gesture script through the editor and write the resulting
schematic. Starts from an empty schematic unless --input is given.

Examples:
  ots apply build.ots -o divider.json
  ots apply tweak.ots -i divider.json -o divider.json`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().StringVarP(&applyInput, "input", "i", "", "schematic to start from")
	applyCmd.Flags().StringVarP(&applyOutput, "output", "o", "", "output file (default stdout)")
}

func runApply(cmd *cobra.Command, args []string) error {
	p, err := script.NewParser()
	if err != nil {
		return err
	}
	sc, err := p.ParseFile(args[0])
	if err != nil {
		return err
	}

	d := schematic.New()
	d.Grid = cfg.Grid
	if applyInput != "" {
		if d, err = loadDiagram(applyInput); err != nil {
			return err
		}
	}

	if err := sc.Run(editor.New(d)); err != nil {
		return err
	}
	slog.Debug("applied script", "script", args[0], "commands", len(sc.Commands), "components", d.Len())

	data, err := saveDiagram(d)
	if err != nil {
		return err
	}
	return writeOutput(cmd, applyOutput, data, false)
}
