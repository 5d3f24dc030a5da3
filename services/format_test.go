package services

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatAED(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		expect string
	}{
		{"zero", "0", "AED 0.00"},
		{"small", "162", "AED 162.00"},
		{"rounding up", "8.105", "AED 8.11"},
		{"thousands", "9555", "AED 9,555.00"},
		{"tens of thousands", "92820", "AED 92,820.00"},
		{"fraction", "274.5", "AED 274.50"},
		{"millions", "1234567.89", "AED 1,234,567.89"},
		{"negative", "-18", "-AED 18.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatAED(decimal.RequireFromString(tt.amount))
			if got != tt.expect {
				t.Errorf("FormatAED(%s) = %q, want %q", tt.amount, got, tt.expect)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		expect string
	}{
		{"plain", "180", "180.00"},
		{"grouped", "53700", "53,700.00"},
		{"negative discount", "-8055", "-8,055.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatAmount(decimal.RequireFromString(tt.amount))
			if got != tt.expect {
				t.Errorf("FormatAmount(%s) = %q, want %q", tt.amount, got, tt.expect)
			}
		})
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		in     string
		expect string
	}{
		{"1", "1"},
		{"999", "999"},
		{"1000", "1,000"},
		{"92820", "92,820"},
		{"1234567", "1,234,567"},
	}

	for _, tt := range tests {
		if got := groupThousands(tt.in); got != tt.expect {
			t.Errorf("groupThousands(%q) = %q, want %q", tt.in, got, tt.expect)
		}
	}
}
