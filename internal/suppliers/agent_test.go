package suppliers

import (
	"strings"
	"testing"
)

func TestDecodeSupplierPayload(t *testing.T) {
	raw := `{
		"suppliers": [
			{"name": "TechDirect", "type": "retailer", "price": 300, "rating": 4.5,
			 "contact": "0800 111 222", "services": ["delivery", "installation"]},
			{"name": "  ", "price": 100}
		],
		"vouchers": [
			{"code": "TECH25", "discount": "£25 off", "retailer": "TechDirect", "value": 25, "category": "electronics"}
		]
	}`

	suppliers, vouchers, err := decodeSupplierPayload(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suppliers) != 1 {
		t.Fatalf("expected nameless supplier dropped, got %d suppliers", len(suppliers))
	}
	if suppliers[0].Name != "TechDirect" || suppliers[0].Price != 300 {
		t.Fatalf("unexpected supplier: %+v", suppliers[0])
	}
	if len(vouchers) != 1 || vouchers[0].Code != "TECH25" {
		t.Fatalf("unexpected vouchers: %+v", vouchers)
	}
}

func TestDecodeSupplierPayload_CodeFence(t *testing.T) {
	raw := "```json\n{\"suppliers\": [{\"name\": \"Acme\"}], \"vouchers\": []}\n```"

	suppliers, _, err := decodeSupplierPayload(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suppliers) != 1 || suppliers[0].Name != "Acme" {
		t.Fatalf("unexpected suppliers: %+v", suppliers)
	}
}

func TestDecodeSupplierPayload_InvalidJSON(t *testing.T) {
	if _, _, err := decodeSupplierPayload("not json"); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestBuildSupplierPrompt_Defaults(t *testing.T) {
	prompt := buildSupplierPrompt("tv", "", 0)

	if want := "Location: UK (nationwide)"; !strings.Contains(prompt, want) {
		t.Fatalf("expected %q in prompt:\n%s", want, prompt)
	}
	if strings.Contains(prompt, "budget") {
		t.Fatalf("did not expect budget line without a budget:\n%s", prompt)
	}
}
