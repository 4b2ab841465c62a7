package colour

import (
	"fmt"
	"strings"

	"github.com/colourkit/munsell/internal/munsell"
)

// ANSI escape codes for truecolor terminal swatches.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Preview returns an ANSI-coloured block rendering the chromaticity, for
// terminals with truecolor support. Width is the block width in characters.
func Preview(c munsell.Chromaticity, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	r, g, b := ToRGB(c)
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, r, g, b, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}
