package signage

import (
	"math"
	"testing"

	"property_valuation/pkg/core/validate"
)

func baseInput() SignageInput {
	return SignageInput{
		TrafficVolume:    "high",
		Demographics:     "low-income",
		RoadType:         "arterial",
		Sides:            1,
		Width:            12,
		Height:           3,
		CurrentRent:      150000,
		OperatingCosts:   15000,
		MaintenanceCosts: 8000,
		InsuranceCosts:   3000,
		PublicBenefitFee: 5000,
		CapRate:          7.5,
		InterestType:     "leasehold",
		LeaseTermYears:   10,
		RenewalRisk:      "low",
	}
}

func TestComputeSignageValue(t *testing.T) {
	// Outgoings = 15000 + 8000 + 3000 + 5000 = 31000
	// Net Income = 150000 - 31000 = 119000
	// Capitalized = 119000 / 0.075 = 1,586,666.67
	// No premiums (low-income, static, single-sided)
	// Market Value = Capitalized
	// Price/sqm = MV / 36
	res, err := ComputeSignageValue(baseInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.TotalOutgoings != 31000 {
		t.Errorf("Expected outgoings 31000, got %f", res.TotalOutgoings)
	}
	if res.NetIncome != 119000 {
		t.Errorf("Expected net income 119000, got %f", res.NetIncome)
	}
	expectedCap := 119000 / 0.075
	if math.Abs(res.CapitalizedValue-expectedCap) > 0.01 {
		t.Errorf("Expected capitalized %f, got %f", expectedCap, res.CapitalizedValue)
	}
	if math.Abs(res.MarketValue-expectedCap) > 0.01 {
		t.Errorf("Expected market value %f (no premiums), got %f", expectedCap, res.MarketValue)
	}
	if math.Abs(res.PricePerSqm-res.MarketValue/36) > 0.01 {
		t.Errorf("Expected price/sqm %f, got %f", res.MarketValue/36, res.PricePerSqm)
	}
	// Yield = 119000 / MV * 100. With no premiums MV == Capitalized, so
	// yield returns to the cap rate.
	if math.Abs(res.NetYield-7.5) > 0.0001 {
		t.Errorf("Expected yield 7.5, got %f", res.NetYield)
	}
}

func TestSignagePremiums(t *testing.T) {
	input := baseInput()
	input.Demographics = "high-income" // +15
	input.IsDigital = true             // +20
	input.Sides = 2                    // +10

	res, err := ComputeSignageValue(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.DemographicPremium != 15 || res.DigitalPremium != 20 || res.MultiSidePremium != 10 {
		t.Errorf("Premiums wrong: demo=%f digital=%f sides=%f",
			res.DemographicPremium, res.DigitalPremium, res.MultiSidePremium)
	}
	expected := res.CapitalizedValue * 1.45
	if math.Abs(res.MarketValue-expected) > 0.01 {
		t.Errorf("Expected market value %f, got %f", expected, res.MarketValue)
	}
}

func TestSignageUnknownDemographicIsNoPremium(t *testing.T) {
	input := baseInput()
	input.Demographics = "industrial-corridor" // not in the table

	res, err := ComputeSignageValue(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.DemographicPremium != 0 {
		t.Errorf("Unmatched tier should be 0 premium, got %f", res.DemographicPremium)
	}
}

func TestSignageRentMonotonicity(t *testing.T) {
	low := baseInput()
	high := baseInput()
	high.CurrentRent = low.CurrentRent + 10000

	resLow, _ := ComputeSignageValue(low)
	resHigh, _ := ComputeSignageValue(high)

	if resHigh.NetIncome <= resLow.NetIncome {
		t.Error("Higher rent should strictly increase net income")
	}
	if resHigh.CapitalizedValue <= resLow.CapitalizedValue {
		t.Error("Higher rent should strictly increase capitalized value")
	}
	if resHigh.MarketValue <= resLow.MarketValue {
		t.Error("Higher rent should strictly increase market value")
	}
}

func TestSignageValidation(t *testing.T) {
	input := baseInput()
	input.CapRate = 0

	_, err := ComputeSignageValue(input)
	vErr, ok := err.(*validate.ValidationError)
	if !ok {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
	if len(vErr.Fields) != 1 || vErr.Fields[0] != "cap_rate" {
		t.Errorf("Expected cap_rate flagged, got %v", vErr.Fields)
	}

	input.Width = 0 // zero area too
	_, err = ComputeSignageValue(input)
	vErr, ok = err.(*validate.ValidationError)
	if !ok || len(vErr.Fields) != 2 {
		t.Errorf("Expected both fields flagged, got %v", err)
	}
}

func TestSignageRiskRating(t *testing.T) {
	input := baseInput()
	input.RenewalRisk = "high"
	input.LeaseTermYears = 2
	input.PermitExpiryMonths = 6
	input.InterestType = "licence"

	res, _ := ComputeSignageValue(input)
	if res.RiskRating != "High" {
		t.Errorf("Short term + high renewal risk should rate High, got %s", res.RiskRating)
	}
	// 4 factors: short lease, renewal, permit, licence
	if len(res.RiskFactors) != 4 {
		t.Errorf("Expected 4 risk factors, got %d: %v", len(res.RiskFactors), res.RiskFactors)
	}

	input.RenewalRisk = "low"
	input.LeaseTermYears = 15
	input.PermitExpiryMonths = 0
	input.InterestType = "leasehold"
	res, _ = ComputeSignageValue(input)
	if res.RiskRating != "Low" || len(res.RiskFactors) != 0 {
		t.Errorf("Clean tenure should rate Low with no factors, got %s %v", res.RiskRating, res.RiskFactors)
	}
}

func TestSignageIdempotence(t *testing.T) {
	a, _ := ComputeSignageValue(baseInput())
	b, _ := ComputeSignageValue(baseInput())
	if a.MarketValue != b.MarketValue || a.RiskRating != b.RiskRating {
		t.Error("Repeated calls with identical input must match")
	}
}
