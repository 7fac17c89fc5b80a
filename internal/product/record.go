// Package product assembles normalized product records from raw
// scraped storefront text and derives the cross-source identity key.
package product

import "strconv"

// RawItem is the input handed over per product by a collaborator
// crawler. Only source and name are required; everything else is
// best-effort scraped text.
type RawItem struct {
	Source             string `json:"source"`
	Name               string `json:"name"`
	PriceTextPrimary   string `json:"price_text_primary"`
	PriceTextSecondary string `json:"price_text_secondary,omitempty"`
	PromotionText      string `json:"promotion_text,omitempty"`
	URL                string `json:"url,omitempty"`

	// Passthrough fields owned by the collaborator.
	Code      string `json:"code,omitempty"`
	Size      string `json:"size,omitempty"`
	Note      string `json:"note,omitempty"`
	CrawlDate string `json:"crawl_date,omitempty"`
}

// Record is the normalized product record. It is constructed once by
// Assemble and never mutated afterwards.
type Record struct {
	Source              string `json:"source"`
	Code                string `json:"code"`
	Name                string `json:"name"`
	Brand               string `json:"brand"`
	NormalizedName      string `json:"normalized_name"`
	Unit                string `json:"unit"`
	Packing             string `json:"packing"`
	Size                string `json:"size"`
	Capacity            string `json:"capacity"`
	Price               int    `json:"price"`
	PriceAfterPromotion int    `json:"price_after_promotion"`
	Promotion           string `json:"promotion"`
	URL                 string `json:"url"`
	Note                string `json:"note"`
	CrawlDate           string `json:"crawl_date"`
	ProductKey          string `json:"product_key"`
}

// CSVHeader returns the fixed export column order shared by every
// source.
func CSVHeader() []string {
	return []string{
		"source",
		"code",
		"name",
		"brand",
		"normalized_name",
		"unit",
		"packing",
		"size",
		"capacity",
		"price",
		"price_after_promotion",
		"promotion",
		"url",
		"note",
		"crawl_date",
		"product_key",
	}
}

// CSVRow renders the record as a flat row in CSVHeader order.
func (r Record) CSVRow() []string {
	return []string{
		r.Source,
		r.Code,
		r.Name,
		r.Brand,
		r.NormalizedName,
		r.Unit,
		r.Packing,
		r.Size,
		r.Capacity,
		strconv.Itoa(r.Price),
		strconv.Itoa(r.PriceAfterPromotion),
		r.Promotion,
		r.URL,
		r.Note,
		r.CrawlDate,
		r.ProductKey,
	}
}
