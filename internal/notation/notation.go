// Package notation parses and formats Munsell colour notation strings such
// as "5R 4/14", "2.5GY 6/8" and "N 5.5".
package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/colourkit/munsell/internal/munsell"
)

// Parse converts a Munsell notation string to a specification. Accepted
// forms are "<hue><family> <value>/<chroma>" for chromatic colours and
// "N <value>" for neutrals. Whitespace around tokens is ignored and family
// letters are case-insensitive.
func Parse(s string) (munsell.Specification, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 2 {
		return munsell.Specification{}, fmt.Errorf("invalid Munsell notation %q: expected two tokens", s)
	}

	if strings.EqualFold(fields[0], "N") {
		value, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return munsell.Specification{}, fmt.Errorf("invalid neutral value %q: %w", fields[1], err)
		}
		spec := munsell.Achromatic(value)
		if err := spec.Valid(); err != nil {
			return munsell.Specification{}, fmt.Errorf("invalid Munsell notation %q: %w", s, err)
		}
		return spec, nil
	}

	hue, family, err := parseHueToken(fields[0])
	if err != nil {
		return munsell.Specification{}, fmt.Errorf("invalid Munsell notation %q: %w", s, err)
	}

	value, chroma, err := parseValueChroma(fields[1])
	if err != nil {
		return munsell.Specification{}, fmt.Errorf("invalid Munsell notation %q: %w", s, err)
	}

	spec := munsell.Specification{Hue: hue, Family: family, Value: value, Chroma: chroma}
	if err := spec.Valid(); err != nil {
		return munsell.Specification{}, fmt.Errorf("invalid Munsell notation %q: %w", s, err)
	}
	return spec.Normalize(), nil
}

// parseHueToken splits a token like "2.5GY" into hue number and family.
func parseHueToken(token string) (float64, munsell.Family, error) {
	split := len(token)
	for i, r := range token {
		if (r < '0' || r > '9') && r != '.' {
			split = i
			break
		}
	}
	if split == 0 || split == len(token) {
		return 0, 0, fmt.Errorf("hue token %q lacks a number or family letters", token)
	}

	hue, err := strconv.ParseFloat(token[:split], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("hue number %q: %w", token[:split], err)
	}
	family, ok := munsell.FamilyFromName(strings.ToUpper(token[split:]))
	if !ok {
		return 0, 0, fmt.Errorf("unknown hue family %q", token[split:])
	}
	return hue, family, nil
}

// parseValueChroma splits a token like "4/14" into value and chroma.
func parseValueChroma(token string) (float64, float64, error) {
	parts := strings.Split(token, "/")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected value/chroma, got %q", token)
	}
	value, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("value %q: %w", parts[0], err)
	}
	chroma, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("chroma %q: %w", parts[1], err)
	}
	return value, chroma, nil
}

// Format renders a specification in Munsell notation. It is the inverse of
// Parse for canonical specifications.
func Format(spec munsell.Specification) string {
	return spec.String()
}
