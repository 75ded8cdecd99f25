package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/netlist"
)

var (
	netlistFormat    string
	netlistOutput    string
	netlistClipboard bool
)

var netlistCmd = &cobra.Command{
	Use:   "netlist <file>",
	Short: "Export the netlist of a schematic",
	Long: `Label a schematic and export its parts and nets.

Formats:
  json   parts, nets and summary counts
  kicad  KiCad s-expression netlist

Examples:
  ots netlist divider.json
  ots netlist divider.json -f kicad -o divider.net`,
	Args: cobra.ExactArgs(1),
	RunE: runNetlist,
}

func init() {
	rootCmd.AddCommand(netlistCmd)
	netlistCmd.Flags().StringVarP(&netlistFormat, "format", "f", "json", "output format (json, kicad)")
	netlistCmd.Flags().StringVarP(&netlistOutput, "output", "o", "", "output file (default stdout)")
	netlistCmd.Flags().BoolVar(&netlistClipboard, "clipboard", false, "copy the result to the clipboard")
}

func runNetlist(cmd *cobra.Command, args []string) error {
	d, err := loadDiagram(args[0])
	if err != nil {
		return err
	}
	nl := netlist.Build(d)

	var data []byte
	switch strings.ToLower(netlistFormat) {
	case "json":
		data, err = nl.ExportJSON()
		if err != nil {
			return err
		}
	case "kicad":
		data = []byte(nl.ExportKiCad())
	default:
		return fmt.Errorf("unknown netlist format %q", netlistFormat)
	}
	return writeOutput(cmd, netlistOutput, data, netlistClipboard)
}
