package qty

import (
	"fmt"
	"testing"
)

func TestFormatQtyDisplay(t *testing.T) {
	tests := []struct {
		raw  string
		n    int
		want string
	}{
		// Plain
		{"0", 2, "0"},
		{"0.00", 2, "0"},
		{"1.10", 5, "1.1"},
		{"00012.50", 2, "12.5"},
		{"1234.5", 2, "1,234.5"},
		{"1,234.5", 1, "1,234.5"},
		{"9999", 0, "9,999"},
		{".5", 2, "0.5"},
		{"+5", 2, "5"},
		{" 7.25 ", 2, "7.25"},
		// Rounding
		{"0.125", 2, "0.13"},
		{"0.124", 2, "0.12"},
		{"1.999", 0, "2"},
		{"1.5", -1, "2"},
		{"9.995", 2, "10"},
		{"9.996", 2, "10"},
		{"9.994", 2, "9.99"},
		{"999.9999", 3, "1,000"},
		{"9999.999", 2, "10k"},
		{"9999.994", 2, "9,999.99"},
		// Compact
		{"10000", 2, "10k"},
		{"12345", 2, "12.3k"},
		{"12350", 2, "12.4k"},
		{"12,345.678", 2, "12.3k"},
		{"99960", 2, "100k"},
		{"999950", 2, "1M"},
		{"999949", 2, "999.9k"},
		{"1000000", 2, "1M"},
		{"1234567.89", 2, "1.2M"},
		{"1050000", 2, "1.1M"},
		{"12345678901", 2, "12.3B"},
		{"999950000000", 2, "1T"},
		{"1234567890123456", 2, "1,234.6T"},
		{"999999999999999", 2, "1,000T"},
		// Sign
		{"-1234.5", 2, "-1,234.5"},
		{"-12345", 2, "-12.3k"},
		{"-9.995", 2, "-10"},
		{"-0.001", 2, "0"},
		{"-0", 2, "0"},
		// Not a decimal
		{"", 2, ""},
		{"abc", 2, "abc"},
		{"1e5", 2, "1e5"},
		{"1.2.3", 2, "1.2.3"},
		{"-", 2, "-"},
		{".", 2, "."},
		{"1.2,3", 2, "1.2,3"},
	}
	for _, tt := range tests {
		got := FormatQtyDisplay(tt.raw, tt.n)
		if got != tt.want {
			t.Errorf("FormatQtyDisplay(%q, %v) = %q, want %q", tt.raw, tt.n, got, tt.want)
		}
	}
}

func TestQuantity_Display(t *testing.T) {
	tests := []struct {
		q     string
		scale Scale
		n     int
		want  string
	}{
		{"1.50", 2, 2, "1.5"},
		{"12345.678", 3, 3, "12.3k"},
		{"-0.00001", 5, 2, "0"},
	}
	for _, tt := range tests {
		q := MustParseQuantity(tt.q, tt.scale)
		got := q.Display(tt.n)
		if got != tt.want {
			t.Errorf("%q.Display(%v) = %q, want %q", q, tt.n, got, tt.want)
		}
	}
}

func TestFormatMoneyCompact(t *testing.T) {
	symbol := func(m Money) string {
		return fmt.Sprintf("$%#f", m)
	}
	suffix := func(m Money) string {
		return fmt.Sprintf("%f %c", m, m)
	}
	tests := []struct {
		curr, amount string
		format       func(Money) string
		want         string
	}{
		{"USD", "9999.99", nil, "USD 9999.99"},
		{"USD", "10000", nil, "USD 10k"},
		{"USD", "1234567.89", nil, "USD 1.2M"},
		{"USD", "-1234567.89", nil, "USD -1.2M"},
		{"USD", "999950", nil, "USD 1M"},
		{"EUR", "12345.67", symbol, "$12.3k"},
		{"EUR", "1234.50", symbol, "$1,234.50"},
		{"EUR", "-99960", symbol, "$-100k"},
		{"EUR", "12345.67", suffix, "12.3k EUR"},
		{"EUR", "0.99", suffix, "0.99 EUR"},
	}
	for _, tt := range tests {
		m := MustParseMoney(tt.curr, tt.amount)
		got := FormatMoneyCompact(m, tt.format)
		if got != tt.want {
			t.Errorf("FormatMoneyCompact(%v) = %q, want %q", m, got, tt.want)
		}
	}
}
