package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "originshift",
	Short: "Generate perfect mazes with the origin-shift algorithm",
	Long: `originshift builds random perfect mazes by repeatedly moving the root of a
spanning tree along a random edge. Use "generate" for a one-off maze on the
terminal or "serve" to run the HTTP maze service.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
