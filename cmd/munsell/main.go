// Munsell - convert between Munsell notation and CIE colours.
//
// The tool is anchored by the Munsell renotation dataset and converts single
// colours, batch files and image samples between sRGB, CIE xyY and Munsell
// notation.
package main

import "github.com/colourkit/munsell/internal/cli"

func main() {
	cli.Execute()
}
