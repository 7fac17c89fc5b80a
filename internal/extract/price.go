package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	nonDigit       = regexp.MustCompile(`\D`)
	percentPattern = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*%`)
)

// PriceInt parses a scraped price string into integer VND, e.g.
// "410.000đ /24 lon 330ml" -> 410000. The text is truncated at the
// đồng sign and every non-digit before it is dropped, so "." and ","
// thousands separators are simply removed. Returns 0 when nothing
// parses.
func PriceInt(text string) int {
	if text == "" {
		return 0
	}

	moneyPart, _, _ := strings.Cut(text, "đ")
	digits := nonDigit.ReplaceAllString(moneyPart, "")
	if digits == "" {
		return 0
	}

	price, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return price
}

// PromotionFromText extracts the discount percentage from a raw
// promotion blob, e.g. "-3%" -> "3%", "Giảm 1,98% ABC" -> "1.98%".
// All percentage-like numbers are collected and the last one is taken:
// promotion blocks sometimes lead with an unrelated percentage (a
// loyalty badge) and end with the actual discount. Returns "" when no
// percentage is present.
func PromotionFromText(text string) string {
	if text == "" {
		return ""
	}

	matches := percentPattern.FindAllStringSubmatch(text, -1)
	if matches == nil {
		return ""
	}

	value := strings.ReplaceAll(matches[len(matches)-1][1], ",", ".")
	num, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return value + "%"
	}
	return FormatPercent(num)
}

// FormatPercent renders a discount value as promotion text: whole
// numbers without a fractional part ("3%"), decimals preserved
// ("1.98%").
func FormatPercent(num float64) string {
	if num == math.Trunc(num) {
		return strconv.FormatInt(int64(num), 10) + "%"
	}
	return strconv.FormatFloat(num, 'f', -1, 64) + "%"
}
