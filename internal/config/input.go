package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/sipgo/investment-calculator/internal/domain"
)

// Boundary policy for user-supplied inputs. The projection engine itself is
// total over its numeric domain; these limits apply only here, before the
// engine is invoked.
var (
	MaxHorizonYears = 50
	MinReturnRate   = decimal.NewFromFloat(0.1)
	MaxReturnRate   = decimal.NewFromInt(50)
)

// InputParser handles parsing of investment input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads investment inputs from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.InvestmentInputs, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var inputs domain.InvestmentInputs
	if err := yaml.Unmarshal(data, &inputs); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateInputs(&inputs); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return &inputs, nil
}

// ValidateInputs rejects malformed or out-of-range inputs before they reach
// the engine. Errors name the offending field.
func (ip *InputParser) ValidateInputs(inputs *domain.InvestmentInputs) error {
	if inputs.SIPAmount.IsNegative() {
		return fmt.Errorf("sip_amount cannot be negative")
	}
	if inputs.LumpsumAmount.IsNegative() {
		return fmt.Errorf("lumpsum_amount cannot be negative")
	}
	if inputs.SIPAmount.IsZero() && inputs.LumpsumAmount.IsZero() {
		return fmt.Errorf("sip_amount and lumpsum_amount cannot both be zero")
	}
	if inputs.HorizonYears < 1 {
		return fmt.Errorf("horizon_years must be at least 1")
	}
	if inputs.HorizonYears > MaxHorizonYears {
		return fmt.Errorf("horizon_years must be at most %d", MaxHorizonYears)
	}
	if inputs.AnnualReturnPercent.LessThan(MinReturnRate) {
		return fmt.Errorf("annual_return_percent must be at least %s", MinReturnRate)
	}
	if inputs.AnnualReturnPercent.GreaterThan(MaxReturnRate) {
		return fmt.Errorf("annual_return_percent must be at most %s", MaxReturnRate)
	}
	return nil
}

// CreateExampleInputs returns a populated example input set
func (ip *InputParser) CreateExampleInputs() *domain.InvestmentInputs {
	return &domain.InvestmentInputs{
		SIPAmount:           decimal.NewFromInt(5000),
		LumpsumAmount:       decimal.NewFromInt(50000),
		HorizonYears:        10,
		AnnualReturnPercent: decimal.NewFromInt(12),
	}
}

// SaveInputs writes investment inputs to a YAML file
func SaveInputs(inputs *domain.InvestmentInputs, filename string) error {
	b, err := yaml.Marshal(inputs)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
