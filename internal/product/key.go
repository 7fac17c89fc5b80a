package product

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// allowedPackings is the closed set of pack counts sold by the tracked
// storefronts. Anything else is an extraction artifact.
var allowedPackings = map[string]bool{
	"1":  true,
	"4":  true,
	"6":  true,
	"12": true,
	"20": true,
	"24": true,
}

// ValidatePacking clamps a raw packing quantity to the allow-list.
// Empty or out-of-set values collapse to "1".
func ValidatePacking(raw string) string {
	if !allowedPackings[raw] {
		return "1"
	}
	return raw
}

// MakeProductKey builds the canonical cross-source identity key from
// brand, capacity and packing, e.g. ("Heineken", "330ml", "24") ->
// "HEINEKEN_330ML_24". Empty parts are dropped. An all-empty result
// ("") means "no reliable identity" and must never be matched against
// another empty key.
func MakeProductKey(brand, capacity, packing string) string {
	brandPart := strings.ReplaceAll(strings.TrimSpace(brand), " ", "")
	capacityPart := strings.TrimSpace(capacity)
	packingPart := strings.TrimSpace(packing)

	parts := make([]string, 0, 3)
	for _, p := range []string{brandPart, capacityPart, packingPart} {
		if p != "" {
			parts = append(parts, strings.ToUpper(p))
		}
	}
	return strings.Join(parts, "_")
}

// MakeUniqueCode derives a per-source code for listings that have no
// scraped code of their own. Two listings under the same source and
// product key still get distinct codes as long as their normalized
// names differ, which disambiguates pack variants the extractors
// conflate.
func MakeUniqueCode(source, productKey, normalizedName string) string {
	h := fnv.New64a()
	h.Write([]byte(source))
	h.Write([]byte{0})
	h.Write([]byte(productKey))
	h.Write([]byte{0})
	h.Write([]byte(normalizedName))
	return fmt.Sprintf("%s-%016x", source, h.Sum64())
}
