package suppliers

import (
	"fmt"
	"strings"
)

func supplierSystemPrompt() string {
	return `You are a UK supplier-data service for a consumer price-comparison product.
Given one search term, return realistic supplier listings and any discount vouchers for that market segment.

Rules:
- Respond with a single JSON object, nothing else.
- Schema:
  {
    "suppliers": [
      {"name": "", "type": "", "price": 0, "rating": 0.0, "experience": "",
       "contact": "", "address": "", "notes": "", "services": [""],
       "availability": "", "link": ""}
    ],
    "vouchers": [
      {"code": "", "discount": "", "retailer": "", "validUntil": "",
       "value": 0, "category": "", "terms": ""}
    ]
  }
- "price" is a typical all-in price in whole pounds sterling; use 0 when the supplier quotes per job.
- "rating" is 1.0 to 5.0.
- Return 3 to 6 suppliers and 0 to 3 vouchers.
- UK businesses only, with UK phone formats and addresses.
- Never invent vouchers for a segment that would not realistically have them.`
}

func buildSupplierPrompt(term, location string, budget int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Search term: %s\n", term)

	location = strings.TrimSpace(location)
	if location == "" {
		location = "UK (nationwide)"
	}
	fmt.Fprintf(&sb, "Location: %s\n", location)

	if budget > 0 {
		fmt.Fprintf(&sb, "Customer budget: £%d (prefer suppliers at or under this)\n", budget)
	}

	sb.WriteString("\nReturn the JSON object now.")
	return sb.String()
}
