package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "HSS/box section property derivation",
	Long: `Derive section properties for square and rectangular HSS/box members
from nominal outside dimensions.

Subcommands:
  properties - Report design thickness, clear widths and section properties

Derivation uses the outer-minus-inner box closed forms and the
thin-walled mid-line approximation for the torsional constant.`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
