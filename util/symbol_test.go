package util

import "testing"

func TestNormalizeSymbol(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		foreign bool
	}{
		{"  msft ", "MSFT", false},
		{"", "", false},
		{"   ", "", false},
		{"aapl", "AAPL", false},
		{"7203.t", "7203.T", true},
		{"hsba.l", "HSBA.L", true},
		{"0700.hk", "0700.HK", true},
		{"BRK.B", "BRK.B", false},
	}
	for _, tt := range tests {
		got, foreign := NormalizeSymbol(tt.raw)
		if got != tt.want {
			t.Errorf("NormalizeSymbol(%q) = %q, want %q", tt.raw, got, tt.want)
		}
		if foreign != tt.foreign {
			t.Errorf("NormalizeSymbol(%q) foreign = %v, want %v", tt.raw, foreign, tt.foreign)
		}
	}
}

func TestForeignMarketAdvisory(t *testing.T) {
	msg := ForeignMarketAdvisory("7203.T")
	if msg == "" {
		t.Fatal("expected non-empty advisory")
	}
}
