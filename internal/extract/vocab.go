package extract

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Brands is the known beer brand vocabulary, scanned in order by Brand.
// The list order is load-bearing: several names can match the same
// product text and the first hit wins.
var Brands = []string{
	"Heineken",
	"Tiger",
	"Sài Gòn",
	"Budweiser",
	"Hoegaarden",
	"1664 Blanc",
	"Larue",
	"Huda",
	"Red Ruby",
	"Sapporo",
	"Bia Việt",
	"333",
	"Corona",
	"San Miguel",
	"Edelweiss",
	"Beck’s",
	"Carlsberg",
	"Strongbow",
	"Somersby",
	"Lạc Việt",
	"Tuborg",
	"Chill",
	"Hà Nội",
	"Chang",
	"Trúc Bạch Sleek",
	"Halida",
	"Chimay",
	"East West",
	"Red Horse",
	"Tsingtao",
	"Asahi",
	"Sanwald",
	"Duvel",
	"Paulaner",
	"Dalat Cider",
	"Trúc Bạch",
	"Abbaye",
	"Pilsner Urquell",
	"G De Grand Cru",
	"Orion",
	"St. Sebastiaan",
	"Ngũ Hành",
	"Cherie",
}

type vocabFile struct {
	Brands []string `yaml:"brands"`
}

// LoadBrandVocabulary extends the built-in brand list with names from a
// YAML file ({brands: [..]}). New names are appended after the built-in
// entries so the built-in match order is unchanged. Meant to run once at
// startup, before any extraction begins. Returns the number of brands
// added.
func LoadBrandVocabulary(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read brand vocabulary: %w", err)
	}

	var vf vocabFile
	if err := yaml.Unmarshal(data, &vf); err != nil {
		return 0, fmt.Errorf("parse brand vocabulary: %w", err)
	}

	known := make(map[string]bool, len(Brands))
	for _, b := range Brands {
		known[strings.ToLower(b)] = true
	}

	added := 0
	for _, b := range vf.Brands {
		b = strings.TrimSpace(b)
		if b == "" || known[strings.ToLower(b)] {
			continue
		}
		Brands = append(Brands, b)
		known[strings.ToLower(b)] = true
		added++
	}
	return added, nil
}
