package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/colourkit/munsell/internal/colour"
	"github.com/colourkit/munsell/internal/image"
	"github.com/colourkit/munsell/internal/notation"
)

var (
	imageColours int
	imagePreview bool
)

// imageCmd represents the image command.
var imageCmd = &cobra.Command{
	Use:   "image <path>",
	Short: "Name an image's dominant colours in Munsell notation",
	Long: `Sample the dominant colours of an image and name each one in Munsell
notation.

Supported image formats: JPEG, PNG, GIF, WebP.

Examples:
  # Name the 8 dominant colours of a wallpaper
  munsell image wallpaper.jpg

  # Sample fewer colours, with terminal previews
  munsell image --colours 4 --preview photo.png`,
	Args: cobra.ExactArgs(1),
	RunE: runImage,
}

func init() {
	imageCmd.Flags().IntVarP(&imageColours, "colours", "c", 8, "number of dominant colours to sample (1-64)")
	imageCmd.Flags().BoolVar(&imagePreview, "preview", false, "show colour previews in the terminal")
}

// runImage executes the image command.
func runImage(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	img, err := image.Load(args[0])
	if err != nil {
		return err
	}

	dominant, err := image.DominantColours(img, imageColours)
	if err != nil {
		return err
	}
	logger.Debug("sampled dominant colours", "path", args[0], "colours", len(dominant))

	conv, err := newConverter()
	if err != nil {
		return err
	}

	for _, c := range dominant {
		spec, err := conv.ToSpecification(c)
		if err != nil {
			return fmt.Errorf("failed to convert sampled colour: %w", err)
		}
		line := fmt.Sprintf("%s\t%s", colour.ToHex(c), notation.Format(spec))
		if imagePreview && stdoutIsTerminal() {
			line = colour.Preview(c, 8) + " " + line
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}
