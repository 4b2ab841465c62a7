package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/colourkit/munsell/internal/batch"
	"github.com/colourkit/munsell/internal/munsell"
	"github.com/colourkit/munsell/internal/notation"
)

var batchOutput string

// batchCmd represents the batch command.
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Convert a file of colours in parallel",
	Long: `Convert a file of colours to Munsell notation, one colour per line.

Each line is an sRGB hex string or x,y,Y coordinates; blank lines and lines
starting with # followed by whitespace are skipped. Conversions run in
parallel across worker goroutines; output lines keep the input order.

Examples:
  # Convert a palette file to stdout
  munsell batch palette.txt

  # Write the results to a file
  munsell batch --output notations.txt palette.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "output file (default: stdout)")
}

// runBatch executes the batch command.
func runBatch(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	file, err := os.Open(args[0]) // #nosec G304 - user-specified batch file, intended to be read
	if err != nil {
		return fmt.Errorf("failed to open batch file: %w", err)
	}
	defer file.Close()

	var lines []string
	var inputs []munsell.Chromaticity
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "# ") {
			continue
		}
		c, err := parseColourArgument(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", len(lines)+1, err)
		}
		lines = append(lines, line)
		inputs = append(inputs, c)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read batch file: %w", err)
	}
	logger.Debug("loaded batch file", "path", args[0], "colours", len(inputs))

	conv, err := newConverter()
	if err != nil {
		return err
	}

	results, err := batch.Convert(conv, inputs, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if batchOutput != "" {
		f, err := os.Create(batchOutput) // #nosec G304 - user-specified output path
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	for i, r := range results {
		if r.Err != nil {
			fmt.Fprintf(out, "%s\terror: %v\n", lines[i], r.Err)
			continue
		}
		suffix := ""
		if r.Spec.Approximate {
			suffix = "\t(approximate)"
		}
		fmt.Fprintf(out, "%s\t%s%s\n", lines[i], notation.Format(r.Spec), suffix)
	}
	return nil
}
