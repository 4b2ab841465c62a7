package munsell

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ulikunitz/xz"
)

// The renotation dataset is a generated, versioned asset: one line per
// measured reference colour, xz-compressed and embedded in the binary.
// Lines are "family,hue,value,chroma,x,y,Y"; family 0 marks the neutral
// grey axis (hue and chroma 0).
//
//go:embed renotation.csv.xz
var renotationAsset []byte

// entryKey addresses one renotation entry. Standard hues are multiples of
// 2.5, stored in tenths to keep the key integral.
type entryKey struct {
	family    Family
	hueTenths int
	value     int
	chroma    int
}

type xyPoint struct {
	x, y float64
}

// Table is the immutable renotation dataset. It is constructed once at
// process start and is safe for concurrent reads; every component that needs
// renotation facts receives the table by injection.
type Table struct {
	entries   map[entryKey]xyPoint
	maxChroma map[entryKey]int // chroma field zero; value is the largest tabulated chroma
	greyY     [11]float64      // neutral-axis luminance per integer value
}

// NewTable decompresses and parses the embedded renotation asset.
func NewTable() (*Table, error) {
	xzr, err := xz.NewReader(bytes.NewReader(renotationAsset))
	if err != nil {
		return nil, fmt.Errorf("failed to create xz reader for renotation asset: %w", err)
	}

	t := &Table{
		entries:   make(map[entryKey]xyPoint, 2500),
		maxChroma: make(map[entryKey]int, 400),
	}
	t.greyY[10] = 1 // value 10 is the white point of the scale

	scanner := bufio.NewScanner(xzr)
	line := 0
	for scanner.Scan() {
		line++
		if err := t.addLine(scanner.Text()); err != nil {
			return nil, fmt.Errorf("renotation asset line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read renotation asset: %w", err)
	}
	if len(t.entries) == 0 {
		return nil, fmt.Errorf("renotation asset is empty")
	}
	return t, nil
}

// addLine parses one dataset row into the table.
func (t *Table) addLine(line string) error {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != 7 {
		return fmt.Errorf("expected 7 fields, got %d", len(fields))
	}
	nums := make([]float64, 7)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return fmt.Errorf("field %d: %w", i+1, err)
		}
		nums[i] = v
	}

	family := Family(nums[0])
	value := int(nums[2])
	chroma := int(nums[3])

	if family == 0 {
		// Neutral grey-axis row: only the luminance matters, the (x, y)
		// coordinates are the illuminant point.
		if value < 0 || value > 10 {
			return fmt.Errorf("neutral value %d outside 0..10", value)
		}
		t.greyY[value] = nums[6]
		return nil
	}

	key := entryKey{family: family, hueTenths: int(math.Round(nums[1] * 10)), value: value, chroma: chroma}
	t.entries[key] = xyPoint{x: nums[4], y: nums[5]}

	maxKey := key
	maxKey.chroma = 0
	if chroma > t.maxChroma[maxKey] {
		t.maxChroma[maxKey] = chroma
	}
	return nil
}

// Len returns the number of chromatic entries in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entry is one measured renotation fact: a specification on the tabulated
// grid and its chromaticity coordinates.
type Entry struct {
	Hue    float64
	Family Family
	Value  int
	Chroma int
	X      float64
	Y      float64
}

// Entries returns a copy of all chromatic entries, in no particular order.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.entries))
	for k, p := range t.entries {
		entries = append(entries, Entry{
			Hue:    float64(k.hueTenths) / 10,
			Family: k.family,
			Value:  k.value,
			Chroma: k.chroma,
			X:      p.x,
			Y:      p.y,
		})
	}
	return entries
}

// LookupExact returns the tabulated chromaticity coordinates for a standard
// hue, integer value and even chroma. The second return is false when no such
// entry exists (value 0 or 10, value above 9, or chroma beyond the tabulated
// maximum); callers fall back to interpolation or extrapolation.
func (t *Table) LookupExact(hue float64, family Family, value, chroma int) (float64, float64, bool) {
	p, ok := t.entries[entryKey{family: family, hueTenths: int(math.Round(hue * 10)), value: value, chroma: chroma}]
	return p.x, p.y, ok
}

// standardHue reports whether hue is one of the tabulated hues 2.5, 5, 7.5
// or 10.
func standardHue(hue float64) bool {
	tenths := hue * 10
	return tenths == math.Round(tenths) && int(math.Round(tenths))%25 == 0 && hue > 0 && hue <= 10
}

// BoundingStandardHues returns the two tabulated standard hues bracketing an
// arbitrary hue, crossing the family boundary when needed. For a standard hue
// both brackets are the hue itself. Brackets are returned clockwise first
// (the lower hue angle).
func (t *Table) BoundingStandardHues(hue float64, family Family) (hueCW float64, familyCW Family, hueCCW float64, familyCCW Family) {
	if standardHue(hue) {
		return hue, family, hue, family
	}

	hueCW = 2.5 * math.Floor(hue/2.5)
	hueCCW = math.Mod(hueCW+2.5, 10)
	if hueCCW == 0 {
		hueCCW = 10
	}
	familyCW, familyCCW = family, family
	if hueCW == 0 {
		// Hue below the family's first standard hue: the clockwise bracket
		// is hue 10 of the preceding family in notation order.
		hueCW = 10
		familyCW = family%10 + 1
	}
	return hueCW, familyCW, hueCCW, familyCCW
}

// MaximumChroma returns the largest chroma that can be interpolated for the
// given hue and value: the smallest of the tabulated maxima at the bracketing
// standard hues and integer values. Values above 9 use the value-9 plane.
func (t *Table) MaximumChroma(hue float64, value float64, family Family) float64 {
	hueCW, familyCW, hueCCW, familyCCW := t.BoundingStandardHues(hue, family)

	vLo := int(math.Floor(value))
	vHi := vLo + 1
	if value == float64(vLo) {
		vHi = vLo // integer value spans a single plane
	}
	if vLo < 1 {
		vLo = 1
	}
	if vHi < 1 {
		vHi = 1
	}
	if vLo > 9 {
		vLo = 9
	}
	if vHi > 9 {
		vHi = 9
	}

	maxC := math.Inf(1)
	for _, corner := range [4]struct {
		hue    float64
		family Family
		value  int
	}{
		{hueCW, familyCW, vLo},
		{hueCW, familyCW, vHi},
		{hueCCW, familyCCW, vLo},
		{hueCCW, familyCCW, vHi},
	} {
		key := entryKey{family: corner.family, hueTenths: int(math.Round(corner.hue * 10)), value: corner.value}
		if c, ok := t.maxChroma[key]; ok && float64(c) < maxC {
			maxC = float64(c)
		}
	}
	if math.IsInf(maxC, 1) {
		return 0
	}
	return maxC
}

// GreyLuminance returns the neutral-axis luminance for an arbitrary value,
// linearly interpolated between the tabulated integer-value grey points.
func (t *Table) GreyLuminance(value float64) float64 {
	value = clamp(value, 0, 10)
	lo := int(math.Floor(value))
	if lo == 10 {
		return t.greyY[10]
	}
	frac := value - float64(lo)
	return t.greyY[lo] + frac*(t.greyY[lo+1]-t.greyY[lo])
}
