package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/debtplan/payoff-engine/internal/calculation"
	"github.com/debtplan/payoff-engine/internal/domain"
	"github.com/debtplan/payoff-engine/pkg/money"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of plan request files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan request from a YAML, JSON or TOML file and
// validates it.
func (ip *InputParser) LoadFromFile(filename string) (*domain.PlanRequest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	req, err := ip.Parse(data, formatFromExt(filename))
	if err != nil {
		return nil, err
	}

	if err := ip.ValidateRequest(req); err != nil {
		return nil, fmt.Errorf("request validation failed: %w", err)
	}

	return req, nil
}

// Parse decodes a request without validating it. format is "yaml", "json"
// or "toml"; JSON is read through the YAML decoder.
func (ip *InputParser) Parse(data []byte, format string) (*domain.PlanRequest, error) {
	var req domain.PlanRequest
	switch format {
	case "toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&req); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
		for i := range req.Debts {
			req.Debts[i].Type = domain.DebtType(strings.ToLower(strings.TrimSpace(string(req.Debts[i].Type))))
		}
	default:
		if err := yaml.Unmarshal(data, &req); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}
	return &req, nil
}

// ValidateRequest validates a loaded request
func (ip *InputParser) ValidateRequest(req *domain.PlanRequest) error {
	return calculation.ValidateRequest(req)
}

// SaveRequest writes a request in the format implied by the file extension.
func (ip *InputParser) SaveRequest(req *domain.PlanRequest, filename string) error {
	var (
		data []byte
		err  error
	)
	switch formatFromExt(filename) {
	case "json":
		data, err = json.MarshalIndent(req, "", "  ")
	case "toml":
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(req)
		data = buf.Bytes()
	default:
		data, err = yaml.Marshal(req)
	}
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// CreateExampleRequest creates a sample household request
func (ip *InputParser) CreateExampleRequest() *domain.PlanRequest {
	budget := money.Cents(350000)
	promoRate := decimal.Zero
	promoEnd := 6

	return &domain.PlanRequest{
		OrganizationID:       "org_example",
		AccountID:            "acct_example",
		ProfileOwner:         "user_example",
		MonthlyPaymentBudget: &budget,
		Debts: []domain.Debt{
			{
				ID:             "visa",
				Name:           "Visa Signature",
				Type:           domain.DebtTypeCreditCard,
				CurrentBalance: 612450,
				InterestRate:   decimal.RequireFromString("0.2449"),
				MinimumPayment: 18400,
			},
			{
				ID:                  "store-card",
				Name:                "Furniture Store Card",
				Type:                domain.DebtTypeCreditCard,
				CurrentBalance:      240000,
				InterestRate:        decimal.RequireFromString("0.2699"),
				MinimumPayment:      5000,
				PromotionalRate:     &promoRate,
				PromotionalEndMonth: &promoEnd,
				HasDeferredInterest: true,
			},
			{
				ID:             "auto",
				Name:           "Auto Loan",
				Type:           domain.DebtTypeLoan,
				CurrentBalance: 1485000,
				InterestRate:   decimal.RequireFromString("0.0649"),
				MinimumPayment: 38500,
			},
			{
				ID:             "student",
				Name:           "Student Loan",
				Type:           domain.DebtTypeLoan,
				CurrentBalance: 2210000,
				InterestRate:   decimal.RequireFromString("0.0499"),
				MinimumPayment: 24000,
			},
			{
				ID:             "mortgage",
				Name:           "Home Mortgage",
				Type:           domain.DebtTypeMortgage,
				CurrentBalance: 28750000,
				InterestRate:   decimal.RequireFromString("0.0425"),
				MinimumPayment: 165000,
			},
		},
	}
}

func formatFromExt(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return "toml"
	case ".json":
		return "json"
	default:
		return "yaml"
	}
}
