package product

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembleFullRecord(t *testing.T) {
	record := Assemble(RawItem{
		Source:           "bachhoaxanh",
		Name:             "Thùng 24 lon bia Heineken 330ml",
		PriceTextPrimary: "410.000đ",
		PromotionText:    "-3%",
		URL:              "https://example.com/p/1",
		Code:             "12345",
		CrawlDate:        "2025-11-01",
	})

	assert.Equal(t, "bachhoaxanh", record.Source)
	assert.Equal(t, "12345", record.Code)
	assert.Equal(t, "Heineken", record.Brand)
	assert.Equal(t, "thung 24 lon bia heineken 330ml", record.NormalizedName)
	assert.Equal(t, "Thùng", record.Unit)
	assert.Equal(t, "24", record.Packing)
	assert.Equal(t, "330ml", record.Capacity)
	assert.Equal(t, 410000, record.Price)
	assert.Equal(t, 410000, record.PriceAfterPromotion)
	assert.Equal(t, "3%", record.Promotion)
	assert.Equal(t, "HEINEKEN_330ML_24", record.ProductKey)
	assert.Equal(t, "2025-11-01", record.CrawlDate)
}

func TestAssembleOriginalPriceWins(t *testing.T) {
	record := Assemble(RawItem{
		Source:             "lottemart",
		Name:               "Lốc 6 lon bia Tiger 330ml",
		PriceTextPrimary:   "95.000đ",
		PriceTextSecondary: "105.000đ",
	})

	assert.Equal(t, 105000, record.Price)
	assert.Equal(t, 95000, record.PriceAfterPromotion)
	assert.GreaterOrEqual(t, record.Price, record.PriceAfterPromotion)
}

func TestAssembleDerivedPromotion(t *testing.T) {
	// No promotion text, but original and current prices disagree:
	// the discount is derived from the difference.
	record := Assemble(RawItem{
		Source:             "cooponline",
		Name:               "Thùng 24 lon bia Tiger 330ml",
		PriceTextPrimary:   "388.000đ",
		PriceTextSecondary: "400.000đ",
	})

	assert.Equal(t, 400000, record.Price)
	assert.Equal(t, 388000, record.PriceAfterPromotion)
	assert.Equal(t, "3%", record.Promotion)

	record = Assemble(RawItem{
		Source:             "cooponline",
		Name:               "Thùng 24 lon bia Tiger 330ml",
		PriceTextPrimary:   "245.000đ",
		PriceTextSecondary: "250.000đ",
	})
	assert.Equal(t, "2%", record.Promotion)

	// Non-whole discounts keep their decimals
	record = Assemble(RawItem{
		Source:             "cooponline",
		Name:               "Bia Chimay xanh chai 330ml",
		PriceTextPrimary:   "98.000đ",
		PriceTextSecondary: "100.500đ",
	})
	assert.Equal(t, "2.49%", record.Promotion)
}

func TestAssemblePromotionTextBeatsDerivation(t *testing.T) {
	record := Assemble(RawItem{
		Source:             "kingfoodmart",
		Name:               "Thùng 24 lon bia 333 330ml",
		PriceTextPrimary:   "360.000đ",
		PriceTextSecondary: "400.000đ",
		PromotionText:      "Giảm 1,98% cho thành viên",
	})

	assert.Equal(t, "1.98%", record.Promotion)
}

func TestAssembleSingleCanHeuristic(t *testing.T) {
	// Cheap listing without a unit keyword is assumed to be one can
	record := Assemble(RawItem{
		Source:           "megamarket",
		Name:             "Bia Heineken Sleek 330ml",
		PriceTextPrimary: "19.500đ",
	})
	assert.Equal(t, "Lon", record.Unit)
	assert.Equal(t, "1", record.Packing)

	// Above the ceiling the unit stays empty
	record = Assemble(RawItem{
		Source:           "megamarket",
		Name:             "Bia Chimay đỏ 750ml",
		PriceTextPrimary: "250.000đ",
	})
	assert.Equal(t, "", record.Unit)
}

func TestAssembleDegradesToDefaults(t *testing.T) {
	record := Assemble(RawItem{
		Source:           "bachhoaxanh",
		Name:             "random soda",
		PriceTextPrimary: "abc",
	})

	assert.Equal(t, "", record.Brand)
	assert.Equal(t, "", record.Capacity)
	assert.Equal(t, "", record.Unit)
	assert.Equal(t, "1", record.Packing)
	assert.Equal(t, 0, record.Price)
	assert.Equal(t, 0, record.PriceAfterPromotion)
	assert.Equal(t, "", record.Promotion)
	assert.Equal(t, "1", ValidatePacking("7"))
	// packing "1" alone still yields a key
	assert.Equal(t, "1", record.ProductKey)
}

func TestAssembleGeneratesCodeWhenMissing(t *testing.T) {
	item := RawItem{
		Source:           "megamarket",
		Name:             "Thùng 24 lon bia Heineken 330ml",
		PriceTextPrimary: "410.000đ",
	}

	record := Assemble(item)
	assert.NotEmpty(t, record.Code)
	assert.Equal(t, record.Code, Assemble(item).Code)

	// A scraped code passes through untouched
	item.Code = "SKU-9"
	assert.Equal(t, "SKU-9", Assemble(item).Code)
}

func TestAssembleAll(t *testing.T) {
	items := []RawItem{
		{Source: "bachhoaxanh", Name: "Thùng 24 lon bia Heineken 330ml", PriceTextPrimary: "410.000đ"},
		{Source: "bachhoaxanh", Name: "Lốc 6 lon bia Tiger 330ml", PriceTextPrimary: "95.000đ"},
		{Source: "bachhoaxanh", Name: "Bia Corona chai 355ml", PriceTextPrimary: "60.000đ"},
	}

	records := AssembleAll(items)
	assert.Len(t, records, 3)

	// Assembly runs concurrently, sort for stable assertions
	sort.Slice(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})

	assert.Equal(t, "Corona", records[0].Brand)
	assert.Equal(t, "Tiger", records[1].Brand)
	assert.Equal(t, "HEINEKEN_330ML_24", records[2].ProductKey)
}

func TestAssembleAllEmpty(t *testing.T) {
	assert.Empty(t, AssembleAll(nil))
}
