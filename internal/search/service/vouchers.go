package service

import (
	"strings"

	"dealfinder_backend/internal/search/transport"
)

// Voucher category detection rules, checked in order. First match wins.
var voucherCategoryRules = []struct {
	category string
	keywords []string
}{
	{"cleaning", []string{"clean", "wash", "valet"}},
	{"plumbing", []string{"plumb", "pipe", "drain", "leak", "tap"}},
	{"electrical", []string{"electric", "wiring", "rewir", "socket", "light"}},
	{"electronics", []string{"tv", "television", "laptop", "phone", "tablet", "appliance", "fridge", "washing machine"}},
	{"home", []string{"kitchen", "bathroom", "furniture", "flooring", "decor", "garden", "diy"}},
}

// curatedVouchers is the fixed per-category voucher table. Only vouchers for
// the detected category are ever surfaced; showing a plumbing code on a TV
// search erodes trust faster than showing nothing.
var curatedVouchers = map[string][]transport.Voucher{
	"cleaning": {
		{Code: "SPARKLE10", Discount: "10% off first clean", Retailer: "Sparkle Home Services", Value: 10, Category: "cleaning", Terms: "New customers only"},
		{Code: "SHINE5", Discount: "£5 off window cleaning", Retailer: "ShineBright Cleaners", Value: 5, Category: "cleaning"},
	},
	"plumbing": {
		{Code: "PIPEFIX15", Discount: "15% off call-out fee", Retailer: "RapidFlow Plumbing", Value: 15, Category: "plumbing", Terms: "Weekdays only"},
		{Code: "DRAIN10", Discount: "£10 off drain unblocking", Retailer: "ClearDrain UK", Value: 10, Category: "plumbing"},
	},
	"electrical": {
		{Code: "SPARK20", Discount: "£20 off rewiring work", Retailer: "SafeSpark Electrical", Value: 20, Category: "electrical", Terms: "Jobs over £200"},
		{Code: "SOCKET5", Discount: "£5 off socket installation", Retailer: "PowerPoint Electricians", Value: 5, Category: "electrical"},
	},
	"electronics": {
		{Code: "TECH25", Discount: "£25 off orders over £250", Retailer: "TechDirect", Value: 25, Category: "electronics"},
		{Code: "GADGET10", Discount: "10% off refurbished tech", Retailer: "GadgetWorld", Value: 10, Category: "electronics", Terms: "Refurbished lines only"},
	},
	"home": {
		{Code: "HOME15", Discount: "15% off home improvement", Retailer: "HomeBase Direct", Value: 15, Category: "home"},
		{Code: "KITCHEN50", Discount: "£50 off kitchen orders over £500", Retailer: "Kitchen Kingdom", Value: 50, Category: "home", Terms: "Excludes appliances"},
	},
}

// detectVoucherCategory classifies the primary query into a voucher
// category, or "" when nothing matches.
func detectVoucherCategory(query string) string {
	query = strings.ToLower(query)
	for _, rule := range voucherCategoryRules {
		if containsAny(query, rule.keywords) {
			return rule.category
		}
	}
	return ""
}

// selectVouchers returns only vouchers curated for the query's detected
// category. No category means no vouchers: an empty list is better than an
// irrelevant code, even when the per-term fetch gathered candidates.
func selectVouchers(query string) []transport.Voucher {
	category := detectVoucherCategory(query)
	if category == "" {
		return []transport.Voucher{}
	}

	curated := curatedVouchers[category]
	out := make([]transport.Voucher, len(curated))
	copy(out, curated)
	return out
}
