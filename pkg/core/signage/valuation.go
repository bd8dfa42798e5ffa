// Package signage implements the capitalised income valuation of
// advertising signage assets (static and digital billboards).
package signage

import (
	"fmt"

	"property_valuation/pkg/core/validate"
)

// SignageInput carries all attributes required to value a signage asset.
// Monetary figures are annual dollars; CapRate is a percentage.
type SignageInput struct {
	// Location
	TrafficVolume string `json:"traffic_volume"` // "low", "medium", "high", "very-high"
	Demographics  string `json:"demographics"`   // "low-income", "mixed", "medium-income", "high-income"
	RoadType      string `json:"road_type"`      // "local", "arterial", "highway"

	// Physical
	Sides     int     `json:"sides"` // 1-3 display faces
	Width     float64 `json:"width"` // metres
	Height    float64 `json:"height"`
	IsDigital bool    `json:"is_digital"`

	// Financials
	CurrentRent      float64 `json:"current_rent"`
	OperatingCosts   float64 `json:"operating_costs"`
	MaintenanceCosts float64 `json:"maintenance_costs"`
	InsuranceCosts   float64 `json:"insurance_costs"`
	PublicBenefitFee float64 `json:"public_benefit_fee"`
	CapRate          float64 `json:"cap_rate"` // percent, must be > 0

	// Legal
	InterestType       string  `json:"interest_type"` // "freehold", "leasehold", "licence"
	LeaseTermYears     float64 `json:"lease_term_years"`
	RenewalRisk        string  `json:"renewal_risk"` // "low", "medium", "high"
	PermitExpiryMonths int     `json:"permit_expiry_months"`
}

// SignageResult holds the valuation outputs.
type SignageResult struct {
	MarketValue      float64 `json:"market_value"`
	CapitalizedValue float64 `json:"capitalized_value"`
	NetIncome        float64 `json:"net_income"`
	TotalOutgoings   float64 `json:"total_outgoings"`
	NetYield         float64 `json:"net_yield"`     // percent
	PricePerSqm      float64 `json:"price_per_sqm"` // per square metre of display face

	// Applied premiums, as percentages of capitalised value
	DemographicPremium float64 `json:"demographic_premium"`
	DigitalPremium     float64 `json:"digital_premium"`
	MultiSidePremium   float64 `json:"multi_side_premium"`

	RiskRating  string   `json:"risk_rating"` // Low | Medium | High
	RiskFactors []string `json:"risk_factors"`
}

// ComputeSignageValue capitalises the net signage income and applies the
// categorical market premiums.
func ComputeSignageValue(input SignageInput) (SignageResult, error) {
	return ComputeSignageValueWith(input, DefaultAssumptions())
}

// ComputeSignageValueWith is ComputeSignageValue with an explicit
// assumption set (used when a rate card config is loaded).
func ComputeSignageValueWith(input SignageInput, a Assumptions) (SignageResult, error) {
	// Structural inputs: both the capitalisation divisor and the face
	// area must be positive before anything downstream makes sense.
	var bad []string
	if input.CapRate <= 0 {
		bad = append(bad, "cap_rate")
	}
	if input.Width*input.Height <= 0 {
		bad = append(bad, "width/height")
	}
	if len(bad) > 0 {
		return SignageResult{}, validate.NewError(bad...)
	}

	// 1. Outgoings and net income
	totalOutgoings := input.OperatingCosts + input.MaintenanceCosts +
		input.InsuranceCosts + input.PublicBenefitFee
	netIncome := input.CurrentRent - totalOutgoings

	// 2. Capitalise at the market rate
	capitalizedValue := netIncome / (input.CapRate / 100)

	// 3. Additive categorical premiums
	demoPremium := a.DemographicPremiums[input.Demographics] // unmatched -> 0
	digitalPremium := 0.0
	if input.IsDigital {
		digitalPremium = a.DigitalPremium
	}
	multiSidePremium := a.MultiSidePremiums[input.Sides]

	marketValue := capitalizedValue * (1 + (demoPremium+digitalPremium+multiSidePremium)/100)

	// 4. Derived metrics
	area := input.Width * input.Height
	pricePerSqm := marketValue / area

	netYield := 0.0
	if marketValue != 0 {
		netYield = netIncome / marketValue * 100
	}

	rating, factors := assessRisk(input, a)

	return SignageResult{
		MarketValue:        marketValue,
		CapitalizedValue:   capitalizedValue,
		NetIncome:          netIncome,
		TotalOutgoings:     totalOutgoings,
		NetYield:           netYield,
		PricePerSqm:        pricePerSqm,
		DemographicPremium: demoPremium,
		DigitalPremium:     digitalPremium,
		MultiSidePremium:   multiSidePremium,
		RiskRating:         rating,
		RiskFactors:        factors,
	}, nil
}

// assessRisk rates tenure risk from the renewal outlook and remaining
// lease term, and accumulates the triggered risk-factor strings.
func assessRisk(input SignageInput, a Assumptions) (string, []string) {
	factors := []string{}

	shortLease := input.LeaseTermYears < a.ShortLeaseYears
	highRenewal := input.RenewalRisk == "high"

	rating := "Low"
	switch {
	case highRenewal && shortLease:
		rating = "High"
	case highRenewal || shortLease:
		rating = "Medium"
	case input.RenewalRisk == "medium" && input.LeaseTermYears < a.MediumLeaseYears:
		rating = "Medium"
	}

	if shortLease {
		factors = append(factors, fmt.Sprintf("Remaining lease term under %.0f years", a.ShortLeaseYears))
	}
	if highRenewal {
		factors = append(factors, "High renewal risk at lease expiry")
	}
	if input.PermitExpiryMonths > 0 && input.PermitExpiryMonths <= 12 {
		factors = append(factors, "Planning permit expiry within 12 months")
	}
	if input.InterestType == "licence" {
		factors = append(factors, "Licence interest only, no registered lease")
	}

	return rating, factors
}
