package cmd

import (
	"github.com/spf13/cobra"
)

var flexureCmd = &cobra.Command{
	Use:   "flexure",
	Short: "Flexural strength checks for HSS and box members",
	Long: `Compute the nominal flexural strength (Mn) of HSS and box members
per AISC 360-16 Chapter F.

Subcommands:
  box    - Check a square/rectangular HSS or box from outside dimensions (F7)
  props  - Check a rectangular member from supplied section properties (F7)
  round  - Check a round HSS (F8)

Every check evaluates the applicable limit states and reports the
governing (minimum) nominal strength.`,
}

func init() {
	rootCmd.AddCommand(flexureCmd)
}
