package extract

import "strings"

// Brand extracts the canonical brand name from a product name.
//
// An override table runs before the vocabulary scan: it resolves
// ambiguous or variant spellings that a plain substring match over
// Brands would miss or get wrong ("1664" without "Blanc" in the name,
// the "carsberg" misspelling, "saigon" without diacritics). The check
// order is business logic and must not be reordered.
func Brand(name string) string {
	lowered := strings.ToLower(name)

	if strings.Contains(lowered, "1664") ||
		strings.Contains(lowered, "blanc") ||
		strings.Contains(lowered, "blance") {
		return "1664 Blanc"
	}

	if strings.Contains(lowered, "hanoi") || strings.Contains(lowered, "hà nội") {
		return "Hà Nội"
	}

	if strings.Contains(lowered, "saigon") || strings.Contains(lowered, "sài gòn") {
		return "Sài Gòn"
	}

	if strings.Contains(lowered, "carlsberg") || strings.Contains(lowered, "carsberg") {
		return "Carlsberg"
	}

	if strings.Contains(lowered, "far east") ||
		strings.Contains(lowered, "east west") ||
		strings.Contains(lowered, "eastwest") {
		return "East West"
	}

	if strings.Contains(lowered, "bud ") || strings.HasPrefix(lowered, "bud") {
		return "Budweiser"
	}

	if strings.Contains(lowered, "dalat cider") || strings.Contains(lowered, "da lat cider") {
		return "Dalat Cider"
	}

	for _, brand := range Brands {
		if strings.Contains(lowered, strings.ToLower(brand)) {
			return brand
		}
	}

	return ""
}
