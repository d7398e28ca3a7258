package services

import "testing"

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect float64
	}{
		{"integer", "12", 12},
		{"decimal", "3.75", 3.75},
		{"thousands separators", "1,234.56", 1234.56},
		{"negative", "-3.5", -3.5},
		{"explicit plus", "+10", 10},
		{"surrounding whitespace", "  7  ", 7},
		{"trailing garbage", "12abc", 12},
		{"second dot stops the scan", "3.5.7", 3.5},
		{"leading dot", ".5", 0.5},
		{"empty string", "", 0},
		{"not a number", "abc", 0},
		{"lone dot", ".", 0},
		{"lone sign", "-", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseNumber(tt.input)
			if got != tt.expect {
				t.Errorf("ParseNumber(%q) = %v, want %v", tt.input, got, tt.expect)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect string
	}{
		{"zero renders blank", 0, ""},
		{"small integer", 5, "5.00"},
		{"with decimals", 42.5, "42.50"},
		{"hundreds", 999.99, "999.99"},
		{"thousands", 1234.5, "1,234.50"},
		{"millions", 1000000, "1,000,000.00"},
		{"rounding to two decimals", 1234567.891, "1,234,567.89"},
		{"negative", -250000.5, "-250,000.50"},
		{"exact thousands boundary", 1000, "1,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatAmount(tt.input)
			if got != tt.expect {
				t.Errorf("FormatAmount(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"single digit", "5", "5"},
		{"three digits", "999", "999"},
		{"four digits", "1234", "1,234"},
		{"six digits", "123456", "123,456"},
		{"seven digits", "1234567", "1,234,567"},
		{"ten digits", "1234567890", "1,234,567,890"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := groupThousands(tt.input)
			if got != tt.expect {
				t.Errorf("groupThousands(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestMetaAccessors(t *testing.T) {
	meta := DocumentMeta{FXRate: "1,500", MultiplierValue: "2.5"}
	if got := FXRate(meta); got != 1500 {
		t.Errorf("FXRate = %v, want 1500", got)
	}
	if got := QtyMultiplier(meta); got != 2.5 {
		t.Errorf("QtyMultiplier = %v, want 2.5", got)
	}

	empty := DocumentMeta{FXRate: "n/a"}
	if got := FXRate(empty); got != 0 {
		t.Errorf("FXRate on unparsable input = %v, want 0", got)
	}
	if got := QtyMultiplier(empty); got != 0 {
		t.Errorf("QtyMultiplier on absent input = %v, want 0", got)
	}
}
