package product

import (
	"math"
	"strings"
	"sync"

	"minhsangitdev/beerpriceworker/internal/extract"
	"minhsangitdev/beerpriceworker/internal/textnorm"
)

// Listings cheaper than this without a unit keyword in the name are
// assumed to be single cans (VND).
const singleCanPriceCeiling = 40000

// Assemble turns one raw scraped item into a normalized Record. It
// never fails: every extractor degrades to an empty string or zero on
// unparseable text, and the packing validator collapses anomalies to
// "1".
func Assemble(item RawItem) Record {
	name := strings.TrimSpace(item.Name)

	// The primary price text is the displayed (current) price; the
	// secondary one is the struck-through original. The record's price
	// is the original when present, else the current.
	priceAfter := extract.PriceInt(item.PriceTextPrimary)
	priceOriginal := extract.PriceInt(item.PriceTextSecondary)
	price := priceOriginal
	if price == 0 {
		price = priceAfter
	}

	promotion := extract.PromotionFromText(item.PromotionText)
	if promotion == "" && price > 0 && priceAfter > 0 && price > priceAfter {
		// No promotion text parsed but the prices disagree: derive the
		// discount from the price difference.
		discount := float64(price-priceAfter) * 100 / float64(price)
		discount = math.Round(discount*100) / 100
		promotion = extract.FormatPercent(discount)
	}

	unit := extract.Unit(name)
	packing := ValidatePacking(extract.PackingQuantity(name))
	capacity := extract.Capacity(name)
	brand := extract.Brand(name)
	normalizedName := textnorm.NormalizeName(name)

	if unit == "" && price > 0 && price < singleCanPriceCeiling {
		unit = "Lon"
	}

	productKey := MakeProductKey(brand, capacity, packing)

	code := strings.TrimSpace(item.Code)
	if code == "" {
		code = MakeUniqueCode(item.Source, productKey, normalizedName)
	}

	return Record{
		Source:              item.Source,
		Code:                code,
		Name:                name,
		Brand:               brand,
		NormalizedName:      normalizedName,
		Unit:                unit,
		Packing:             packing,
		Size:                item.Size,
		Capacity:            capacity,
		Price:               price,
		PriceAfterPromotion: priceAfter,
		Promotion:           promotion,
		URL:                 item.URL,
		Note:                item.Note,
		CrawlDate:           item.CrawlDate,
		ProductKey:          productKey,
	}
}

// AssembleAll assembles a batch of raw items concurrently. Records are
// independent, so order is not preserved.
func AssembleAll(items []RawItem) []Record {
	recordChan := make(chan Record, len(items))
	var wg sync.WaitGroup

	for _, item := range items {
		wg.Add(1)
		go func(it RawItem) {
			defer wg.Done()
			recordChan <- Assemble(it)
		}(item)
	}

	wg.Wait()
	close(recordChan)

	records := make([]Record, 0, len(items))
	for record := range recordChan {
		records = append(records, record)
	}
	return records
}
