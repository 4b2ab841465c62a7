package image

import (
	"fmt"
	"image"
	"math"
	"math/rand"

	"github.com/colourkit/munsell/internal/colour"
	"github.com/colourkit/munsell/internal/munsell"
)

const (
	maxSamples    = 2000
	maxIterations = 20
	convergence   = 1e-4
)

// DominantColours clusters the image's pixels in xyY space and returns the
// cluster centres ordered by weight, largest first.
func DominantColours(img image.Image, count int) ([]munsell.Chromaticity, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if count < 1 || count > 64 {
		return nil, fmt.Errorf("colour count %d outside 1..64", count)
	}

	points := samplePixels(img)
	if len(points) == 0 {
		return nil, fmt.Errorf("no pixels found in image")
	}
	if count >= len(points) {
		return points, nil
	}

	centres, sizes := kmeans(points, count)

	// Order by cluster size, largest first.
	for i := 0; i < len(centres); i++ {
		for j := i + 1; j < len(centres); j++ {
			if sizes[j] > sizes[i] {
				centres[i], centres[j] = centres[j], centres[i]
				sizes[i], sizes[j] = sizes[j], sizes[i]
			}
		}
	}
	return centres, nil
}

// samplePixels converts a bounded grid sample of the image to xyY.
func samplePixels(img image.Image) []munsell.Chromaticity {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()

	step := 1
	if total > maxSamples {
		step = int(math.Sqrt(float64(total) / float64(maxSamples)))
		if step < 1 {
			step = 1
		}
	}

	points := make([]munsell.Chromaticity, 0, maxSamples)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			points = append(points, colour.FromColor(img.At(x, y)))
			if len(points) >= maxSamples {
				return points
			}
		}
	}
	return points
}

// kmeans clusters xyY points, returning the centres and their cluster sizes.
func kmeans(points []munsell.Chromaticity, k int) ([]munsell.Chromaticity, []int) {
	rng := rand.New(rand.NewSource(1))
	centres := make([]munsell.Chromaticity, k)
	for i := range centres {
		centres[i] = points[rng.Intn(len(points))]
	}

	assignment := make([]int, len(points))
	sizes := make([]int, k)
	for iter := 0; iter < maxIterations; iter++ {
		for i, p := range points {
			best, bestDist := 0, math.Inf(1)
			for j, c := range centres {
				if d := distance(p, c); d < bestDist {
					best, bestDist = j, d
				}
			}
			assignment[i] = best
		}

		moved := 0.0
		next := make([]munsell.Chromaticity, k)
		for i := range sizes {
			sizes[i] = 0
		}
		for i, p := range points {
			j := assignment[i]
			next[j].X += p.X
			next[j].Y += p.Y
			next[j].Luminance += p.Luminance
			sizes[j]++
		}
		for j := range next {
			if sizes[j] == 0 {
				next[j] = points[rng.Intn(len(points))]
				continue
			}
			n := float64(sizes[j])
			next[j] = munsell.Chromaticity{X: next[j].X / n, Y: next[j].Y / n, Luminance: next[j].Luminance / n}
			moved += distance(next[j], centres[j])
		}
		centres = next
		if moved < convergence {
			break
		}
	}
	return centres, sizes
}

// distance is Euclidean distance in (x, y, Y), with luminance weighted down
// so chromaticity dominates clustering.
func distance(a, b munsell.Chromaticity) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dl := (a.Luminance - b.Luminance) * 0.5
	return math.Sqrt(dx*dx + dy*dy + dl*dl)
}
