package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapacity(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Thùng 24 lon bia 330ml", "330ml"},
		{"Bia 33 CL", "33cl"},
		{"330ml 33cl", "330ml"}, // ml wins when both appear
		{"Bia Heineken Silver 250 ml", "250ml"},
		{"Thùng 24 lon bia", ""},
		{"", ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, Capacity(tc.name), "input: %q", tc.name)
	}
}

func TestUnit(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Thùng 24 lon bia Heineken 330ml", "Thùng"}, // thùng beats lon
		{"Lốc 6 lon bia Tiger", "Lon"},
		{"Bia Corona chai 355ml", "Chai"},
		{"THÙNG 12 CHAI", "Thùng"},
		{"Bia hơi", ""},
		{"", ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, Unit(tc.name), "input: %q", tc.name)
	}
}

func TestPackingQuantity(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		// number before lon/chai
		{"Thùng 24 lon bia 330ml", "24"},
		{"Lốc 6 chai bia 450ml", "6"},
		// number after thùng/lốc/hộp
		{"Thùng 12 bia Tiger", "12"},
		{"Hộp 4 bia", "4"},
		// fallback skips capacity tokens
		{"Bia Sapporo 330ml x20", "20"},
		{"Bia Tiger 330ml", ""},
		{"", ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, PackingQuantity(tc.name), "input: %q", tc.name)
	}
}
