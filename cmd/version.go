package cmd

import (
	"fmt"

	"github.com/gostructural/gohss/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gohss",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gohss v%s\n", version.Version)
		fmt.Println("Steel HSS Flexural Strength Tool")
		fmt.Println("Based on AISC 360-16 (Specification for Structural Steel Buildings)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
