package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/colourkit/munsell/internal/colour"
	"github.com/colourkit/munsell/internal/notation"
)

var renderPreview bool

// renderCmd represents the render command.
var renderCmd = &cobra.Command{
	Use:   "render <notation>",
	Short: "Render Munsell notation as CIE and sRGB colours",
	Long: `Render a Munsell notation string as CIE xyY coordinates and the nearest
displayable sRGB colour.

Examples:
  # Render a chromatic colour
  munsell render "5R 4/14"

  # Render a neutral grey
  munsell render "N 5.5"

  # Include a terminal colour preview
  munsell render --preview "2.5GY 6/8"`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().BoolVar(&renderPreview, "preview", false, "show a colour preview in the terminal")
}

// runRender executes the render command.
func runRender(cmd *cobra.Command, args []string) error {
	spec, err := notation.Parse(args[0])
	if err != nil {
		return err
	}

	conv, err := newConverter()
	if err != nil {
		return err
	}

	c, err := conv.ToChromaticity(spec)
	if err != nil {
		return fmt.Errorf("failed to render %q: %w", args[0], err)
	}

	line := fmt.Sprintf("xyY(%.6f, %.6f, %.6f) %s", c.X, c.Y, c.Luminance, colour.ToHex(c))
	if renderPreview && stdoutIsTerminal() {
		line = colour.Preview(c, 8) + " " + line
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
	return nil
}
