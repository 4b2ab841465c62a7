// Package cli provides the command-line interface for the munsell tool.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/colourkit/munsell/internal/munsell"
	"github.com/colourkit/munsell/internal/version"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "munsell",
	Short: "Convert between Munsell notation and CIE colours",
	Long: `Munsell converts colours between the Munsell notation system and CIE
chromaticity coordinates, anchored by the Munsell renotation dataset.

Colours can be given as sRGB hex strings or as raw xyY coordinates, one at a
time, in bulk from batch files, or sampled from images.`,
	Version:      version.Short(),
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(imageCmd)
	rootCmd.AddCommand(datasetCmd)
}

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}

// newLogger builds the command logger from the global verbosity flags.
func newLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")

	level := hclog.Info
	if verbose {
		level = hclog.Debug
	}
	if quiet {
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "munsell",
		Output: os.Stderr,
		Level:  level,
	})
}

// newConverter loads the renotation table and builds a converter over it.
func newConverter() (*munsell.Converter, error) {
	table, err := munsell.NewTable()
	if err != nil {
		return nil, fmt.Errorf("failed to load renotation dataset: %w", err)
	}
	return munsell.NewConverter(table), nil
}

// stdoutIsTerminal reports whether stdout supports interactive previews.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
