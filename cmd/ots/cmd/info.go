package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/schematic"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show schematic information",
	Long: `Display component counts, the number of electrical nodes and the saved
view of a schematic file.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	d, err := loadDiagram(args[0])
	if err != nil {
		return err
	}
	showSummary(cmd.OutOrStdout(), d, args[0])
	return nil
}

func showSummary(w io.Writer, d *schematic.Diagram, filename string) {
	nodes := d.LabelConnectionPoints()
	counts := d.Counts()

	fmt.Fprintln(w, headerStyle.Render("Schematic: "+filename))
	fmt.Fprintln(w)

	fmt.Fprintln(w, headerStyle.Render("Components:"))
	for _, k := range schematic.Parts() {
		if n := counts[k]; n > 0 {
			fmt.Fprintf(w, "  %-16s %d\n", k.String()+":", n)
		}
	}
	fmt.Fprintf(w, "  %-16s %d\n", "wires:", counts[schematic.KindWire])
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Connection points: %d\n", d.Index().Len())
	fmt.Fprintf(w, "Nodes: %d\n", nodes)
	if r, ok := d.Bounds(); ok {
		fmt.Fprintf(w, "Bounds: %d,%d - %d,%d\n", r.Left, r.Top, r.Right, r.Bottom)
	}
	v := d.View
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("View: origin %g,%g scale %g", v.OriginX, v.OriginY, v.Scale)))
}
