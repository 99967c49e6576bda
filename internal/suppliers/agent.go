// Package suppliers provides the LLM-backed supplier-data source. A single
// agent answers one search term at a time with structured supplier and
// voucher data, decoded into the engine's port types.
package suppliers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"

	"dealfinder_backend/internal/search/ports"
	"dealfinder_backend/platform/ai/moonshot"
	"dealfinder_backend/platform/config"
)

const appName = "supplier-data-agent"

// Agent fetches supplier and voucher data for one search term.
type Agent struct {
	agent          agent.Agent
	runner         *runner.Runner
	sessionService session.Service
	runMu          sync.Mutex
}

// NewAgent creates the supplier-data agent. JSON mode is forced so the model
// cannot wrap the payload in prose.
func NewAgent(cfg config.SupplierAIConfig) (*Agent, error) {
	kimi := moonshot.NewModel(moonshot.Config{
		APIKey:   cfg.GetSupplierAIAPIKey(),
		BaseURL:  cfg.GetSupplierAIBaseURL(),
		Model:    cfg.GetSupplierAIModel(),
		JSONMode: true,
	})

	adkAgent, err := llmagent.New(llmagent.Config{
		Name:        "SupplierDataAgent",
		Model:       kimi,
		Description: "Returns UK supplier and voucher data for a search term as JSON.",
		Instruction: supplierSystemPrompt(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create supplier-data agent: %w", err)
	}

	sessionService := session.InMemoryService()
	r, err := runner.New(runner.Config{
		AppName:        appName,
		Agent:          adkAgent,
		SessionService: sessionService,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create supplier-data runner: %w", err)
	}

	return &Agent{
		agent:          adkAgent,
		runner:         r,
		sessionService: sessionService,
	}, nil
}

type supplierPayload struct {
	Suppliers []supplierJSON `json:"suppliers"`
	Vouchers  []voucherJSON  `json:"vouchers"`
}

type supplierJSON struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Price        int      `json:"price"`
	Rating       float64  `json:"rating"`
	Experience   string   `json:"experience"`
	Contact      string   `json:"contact"`
	Address      string   `json:"address"`
	Notes        string   `json:"notes"`
	Services     []string `json:"services"`
	Availability string   `json:"availability"`
	Link         string   `json:"link"`
}

type voucherJSON struct {
	Code       string `json:"code"`
	Discount   string `json:"discount"`
	Retailer   string `json:"retailer"`
	ValidUntil string `json:"validUntil"`
	Value      int    `json:"value"`
	Category   string `json:"category"`
	Terms      string `json:"terms"`
}

// FetchSuppliersAndVouchers asks the agent for one term's data. The run is
// serialized: the underlying session service is not safe for concurrent runs
// of the same agent.
func (a *Agent) FetchSuppliersAndVouchers(ctx context.Context, term, location string, budget int) ([]ports.RawSupplier, []ports.RawVoucher, error) {
	a.runMu.Lock()
	defer a.runMu.Unlock()

	sessionID := uuid.New().String()
	userID := "supplier-data"

	_, err := a.sessionService.Create(ctx, &session.CreateRequest{
		AppName:   appName,
		UserID:    userID,
		SessionID: sessionID,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("supplier data: create session: %w", err)
	}
	defer func() {
		_ = a.sessionService.Delete(ctx, &session.DeleteRequest{
			AppName:   appName,
			UserID:    userID,
			SessionID: sessionID,
		})
	}()

	userMessage := &genai.Content{
		Role: "user",
		Parts: []*genai.Part{{
			Text: buildSupplierPrompt(term, location, budget),
		}},
	}

	runConfig := agent.RunConfig{StreamingMode: agent.StreamingModeNone}

	var outputText strings.Builder
	for event, err := range a.runner.Run(ctx, userID, sessionID, userMessage, runConfig) {
		if err != nil {
			return nil, nil, fmt.Errorf("supplier data: run failed: %w", err)
		}
		if event.Content == nil {
			continue
		}
		for _, part := range event.Content.Parts {
			outputText.WriteString(part.Text)
		}
	}

	return decodeSupplierPayload(outputText.String())
}

func decodeSupplierPayload(raw string) ([]ports.RawSupplier, []ports.RawVoucher, error) {
	raw = stripCodeFence(raw)

	var payload supplierPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, nil, fmt.Errorf("supplier data: decode response: %w", err)
	}

	suppliers := make([]ports.RawSupplier, 0, len(payload.Suppliers))
	for _, s := range payload.Suppliers {
		if strings.TrimSpace(s.Name) == "" {
			continue
		}
		suppliers = append(suppliers, ports.RawSupplier{
			Name:         strings.TrimSpace(s.Name),
			Type:         s.Type,
			Price:        s.Price,
			Rating:       s.Rating,
			Experience:   s.Experience,
			Contact:      s.Contact,
			Address:      s.Address,
			Notes:        s.Notes,
			Services:     s.Services,
			Availability: s.Availability,
			Link:         s.Link,
		})
	}

	vouchers := make([]ports.RawVoucher, 0, len(payload.Vouchers))
	for _, v := range payload.Vouchers {
		if strings.TrimSpace(v.Code) == "" {
			continue
		}
		vouchers = append(vouchers, ports.RawVoucher{
			Code:       strings.TrimSpace(v.Code),
			Discount:   v.Discount,
			Retailer:   v.Retailer,
			ValidUntil: v.ValidUntil,
			Value:      v.Value,
			Category:   v.Category,
			Terms:      v.Terms,
		})
	}

	return suppliers, vouchers, nil
}

// stripCodeFence removes a markdown code fence if the model added one despite
// JSON mode.
func stripCodeFence(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "```") {
		return raw
	}
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "```")
	return strings.TrimSpace(raw)
}

var _ ports.SupplierSource = (*Agent)(nil)
