package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/netlist"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Verify node labels against connectivity",
	Long: `Label a schematic and cross-check the labels against an independent
connectivity analysis. Exits non-zero if they disagree.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	d, err := loadDiagram(args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	nodes := d.LabelConnectionPoints()
	slog.Debug("labeled schematic", "file", args[0], "nodes", nodes)
	err = netlist.Verify(d)
	var mismatch *netlist.MismatchError
	if errors.As(err, &mismatch) {
		fmt.Fprintln(w, errorStyle.Render("FAIL")+" "+args[0])
		for _, p := range mismatch.Points {
			fmt.Fprintln(w, mutedStyle.Render("  at "+p))
		}
		return err
	}
	if err != nil {
		return err
	}

	nl := netlist.Build(d)
	fmt.Fprintf(w, "%s %s: %d parts, %d nets\n", okStyle.Render("OK"), args[0], len(nl.Parts), nl.NetCount())
	return nil
}
