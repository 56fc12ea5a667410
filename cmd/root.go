package cmd

import (
	"fmt"
	"os"

	"github.com/gostructural/gohss/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gohss",
	Short: "Steel HSS Flexural Strength Tool",
	Long: `gohss - Go HSS Flexural Strength Checker

A CLI tool for computing the nominal flexural strength (Mn) of
hollow structural section (HSS) and box members per AISC 360-16.

This tool helps structural engineers perform:
  - Chapter F7 checks for square/rectangular HSS and box sections
  - Chapter F8 checks for round HSS
  - Section property derivation for box geometry
  - Capacity-curve diagrams (Mn vs unbraced length)

All calculations follow AISC 360-16 Chapter F provisions.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gohss v%-49s║\n", version.Version)
		fmt.Println("  ║   Go HSS Flexural Strength Checker                        ║")
		fmt.Println("  ║   AISC 360-16 Chapters F7 and F8                          ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for computing the nominal flexural strength of")
		fmt.Println("  HSS and box members per AISC 360-16.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Rectangular HSS/box flexure checks (Chapter F7)")
		fmt.Println("    • Round HSS flexure checks (Chapter F8)")
		fmt.Println("    • Direct-properties input from flags or JSON member files")
		fmt.Println("    • Mn vs Lb capacity curves (terminal and image export)")
		fmt.Println()
		fmt.Println("  Use 'gohss --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
