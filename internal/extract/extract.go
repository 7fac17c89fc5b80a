// Package extract holds the heuristic field extractors that turn raw
// scraped storefront text into structured product fields. Every
// extractor is a pure function over its input: there is no failure
// path, unparseable text degrades to an empty string or zero.
package extract

import (
	"regexp"
	"strings"
)

var (
	capacityMl = regexp.MustCompile(`(\d+)\s*ml`)
	capacityCl = regexp.MustCompile(`(\d+)\s*cl`)

	packBeforeUnit   = regexp.MustCompile(`(\d+)\s*(lon|chai)`)
	packAfterKeyword = regexp.MustCompile(`(thùng|lốc|hop|hộp)\s*(\d+)`)
	anyNumber        = regexp.MustCompile(`\d+`)
)

// Capacity extracts the liquid volume from a product name, e.g.
// "Thùng 24 lon bia 330ml" -> "330ml", "Bia 33 CL" -> "33cl".
// ml wins over cl when both appear. No unit conversion is done.
func Capacity(name string) string {
	lowered := strings.ToLower(name)

	if m := capacityMl.FindStringSubmatch(lowered); m != nil {
		return m[1] + "ml"
	}
	if m := capacityCl.FindStringSubmatch(lowered); m != nil {
		return m[1] + "cl"
	}
	return ""
}

// Unit infers the selling unit from a product name. Keywords are
// checked in fixed priority order, so a name carrying both "thùng" and
// "lon" resolves to "Thùng".
func Unit(name string) string {
	lowered := strings.ToLower(name)

	if strings.Contains(lowered, "thùng") {
		return "Thùng"
	}
	if strings.Contains(lowered, "lon") {
		return "Lon"
	}
	if strings.Contains(lowered, "chai") {
		return "Chai"
	}
	return ""
}

// PackingQuantity extracts the raw pack count from a product name:
// a number right before "lon"/"chai" ("24 lon" -> "24"), else a number
// right after "thùng"/"lốc"/"hộp" ("thùng 24" -> "24"), else the first
// numeric token that is not a ml/cl capacity. The result is validated
// against the packing allow-list at record assembly.
func PackingQuantity(name string) string {
	lowered := strings.ToLower(name)

	if m := packBeforeUnit.FindStringSubmatch(lowered); m != nil {
		return m[1]
	}
	if m := packAfterKeyword.FindStringSubmatch(lowered); m != nil {
		return m[2]
	}

	// Fallback: first number that is not a capacity token.
	for _, loc := range anyNumber.FindAllStringIndex(lowered, -1) {
		after := strings.TrimSpace(lowered[loc[1]:])
		if strings.HasPrefix(after, "ml") || strings.HasPrefix(after, "cl") {
			continue
		}
		return lowered[loc[0]:loc[1]]
	}
	return ""
}
