package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	labelOutput    string
	labelClipboard bool
)

var labelCmd = &cobra.Command{
	Use:   "label <file>",
	Short: "Label every connection point and write the schematic",
	Long: `Run node labeling over a schematic and write it back out in the JSON
format, with each connection point carrying its node label.

Examples:
  ots label divider.json              # Print to stdout
  ots label divider.json -o out.json  # Write to a file`,
	Args: cobra.ExactArgs(1),
	RunE: runLabel,
}

func init() {
	rootCmd.AddCommand(labelCmd)
	labelCmd.Flags().StringVarP(&labelOutput, "output", "o", "", "output file (default stdout)")
	labelCmd.Flags().BoolVar(&labelClipboard, "clipboard", false, "copy the result to the clipboard")
}

func runLabel(cmd *cobra.Command, args []string) error {
	d, err := loadDiagram(args[0])
	if err != nil {
		return err
	}

	nodes := d.LabelConnectionPoints()
	slog.Debug("labeled schematic", "file", args[0], "nodes", nodes)

	data, err := saveDiagram(d)
	if err != nil {
		return err
	}
	return writeOutput(cmd, labelOutput, data, labelClipboard)
}
