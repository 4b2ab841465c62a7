package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/colourkit/munsell/internal/colour"
	"github.com/colourkit/munsell/internal/munsell"
	"github.com/colourkit/munsell/internal/notation"
)

var (
	convertFormat  string
	convertPreview bool
)

// convertCmd represents the convert command.
var convertCmd = &cobra.Command{
	Use:   "convert <colour>",
	Short: "Convert a colour to Munsell notation",
	Long: `Convert a colour to Munsell notation.

The colour can be an sRGB hex string or raw CIE xyY coordinates.

Examples:
  # Convert an sRGB colour
  munsell convert "#d2691e"

  # Convert raw xyY coordinates
  munsell convert "0.3810,0.3700,0.2912"

  # Emit JSON including the approximate flag
  munsell convert --format json "#d2691e"

  # Show a terminal colour preview alongside the notation
  munsell convert --preview "#d2691e"`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "notation", "output format (notation, json)")
	convertCmd.Flags().BoolVar(&convertPreview, "preview", false, "show a colour preview in the terminal")
}

// parseColourArgument accepts either "#rrggbb" or "x,y,Y".
func parseColourArgument(arg string) (munsell.Chromaticity, error) {
	arg = strings.TrimSpace(arg)
	if strings.HasPrefix(arg, "#") {
		return colour.FromHex(arg)
	}

	parts := strings.Split(arg, ",")
	if len(parts) != 3 {
		return munsell.Chromaticity{}, fmt.Errorf("colour %q is neither a hex string nor x,y,Y coordinates", arg)
	}
	coords := make([]float64, 3)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return munsell.Chromaticity{}, fmt.Errorf("invalid coordinate %q: %w", p, err)
		}
		coords[i] = v
	}
	c := munsell.Chromaticity{X: coords[0], Y: coords[1], Luminance: coords[2]}
	if err := c.Valid(); err != nil {
		return munsell.Chromaticity{}, err
	}
	return c, nil
}

// convertResult is the JSON shape of a single conversion.
type convertResult struct {
	Input       string  `json:"input"`
	Notation    string  `json:"notation"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Luminance   float64 `json:"luminance"`
	Approximate bool    `json:"approximate"`
}

// runConvert executes the convert command.
func runConvert(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	input, err := parseColourArgument(args[0])
	if err != nil {
		return fmt.Errorf("invalid colour: %w", err)
	}

	conv, err := newConverter()
	if err != nil {
		return err
	}

	spec, err := conv.ToSpecification(input)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	if spec.Approximate {
		logger.Warn("solver did not fully converge; result is approximate", "notation", notation.Format(spec))
	}
	logger.Debug("converted colour", "input", args[0], "notation", notation.Format(spec))

	switch convertFormat {
	case "notation":
		line := notation.Format(spec)
		if convertPreview && stdoutIsTerminal() {
			line = colour.Preview(input, 8) + " " + line
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	case "json":
		out, err := json.MarshalIndent(convertResult{
			Input:       args[0],
			Notation:    notation.Format(spec),
			X:           input.X,
			Y:           input.Y,
			Luminance:   input.Luminance,
			Approximate: spec.Approximate,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	default:
		return fmt.Errorf("unknown format %q (expected notation or json)", convertFormat)
	}
	return nil
}
