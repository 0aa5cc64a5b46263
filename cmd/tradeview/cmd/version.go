package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the tradeview CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tradeview version %s\n", version)
		fmt.Println("Trade-log analytics: seasonality and daily stop simulation")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
