package service

import "testing"

func TestDetectVoucherCategory(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"emergency plumber", "plumbing"},
		{"window cleaning", "cleaning"},
		{"rewiring quote", "electrical"},
		{"cheap tv", "electronics"},
		{"kitchen fitters", "home"},
		{"piano lessons", ""},
	}

	for _, tt := range tests {
		if got := detectVoucherCategory(tt.query); got != tt.want {
			t.Fatalf("detectVoucherCategory(%q) = %q, want %q", tt.query, got, tt.want)
		}
	}
}

func TestDetectVoucherCategory_FirstRuleWins(t *testing.T) {
	// "clean" appears before "drain" in the rule order.
	if got := detectVoucherCategory("drain cleaning"); got != "cleaning" {
		t.Fatalf("expected cleaning, got %q", got)
	}
}

func TestSelectVouchers_CategoryMatch(t *testing.T) {
	vouchers := selectVouchers("emergency plumber")

	if len(vouchers) != 2 {
		t.Fatalf("expected 2 plumbing vouchers, got %d", len(vouchers))
	}
	for _, voucher := range vouchers {
		if voucher.Category != "plumbing" {
			t.Fatalf("expected plumbing voucher, got category %q for %q", voucher.Category, voucher.Code)
		}
	}
}

func TestSelectVouchers_NoMatchReturnsEmpty(t *testing.T) {
	vouchers := selectVouchers("piano lessons")

	if vouchers == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(vouchers) != 0 {
		t.Fatalf("expected no vouchers, got %d", len(vouchers))
	}
}

func TestSelectVouchers_ReturnsCopy(t *testing.T) {
	first := selectVouchers("emergency plumber")
	first[0].Code = "MUTATED"

	second := selectVouchers("emergency plumber")
	if second[0].Code == "MUTATED" {
		t.Fatalf("curated voucher table was mutated through the returned slice")
	}
}
