package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/beka-birhanu/vinom-originshift/maze"
	"github.com/spf13/cobra"
)

var (
	generateSeed  int64
	generateSteps int
	generateQuiet bool
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate WIDTH HEIGHT",
	Short: "Generate a maze and print it with the seed used",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		width, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("width must be an integer: %w", err)
		}
		height, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("height must be an integer: %w", err)
		}
		return runGenerate(cmd.OutOrStdout(), maze.Config{
			Width:  width,
			Height: height,
			Steps:  generateSteps,
			Seed:   generateSeed,
		}, generateQuiet)
	},
}

func init() {
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "Seed to replay; 0 draws a fresh one")
	generateCmd.Flags().IntVar(&generateSteps, "steps", 0, "Number of root shifts; 0 uses width*height*10")
	generateCmd.Flags().BoolVarP(&generateQuiet, "quiet", "q", false, "Print only the seed")
	rootCmd.AddCommand(generateCmd)
}

// runGenerate builds the maze described by c and writes it, followed by the
// seed used, to out.
func runGenerate(out io.Writer, c maze.Config, quiet bool) error {
	m, seed, err := maze.Generate(c)
	if err != nil {
		return err
	}

	if !quiet {
		if _, err := fmt.Fprint(out, m.String()); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(out, "seed: %d\n", seed)
	return err
}
