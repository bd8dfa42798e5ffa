package report

import (
	"testing"

	"property_valuation/pkg/core/bidding"
	"property_valuation/pkg/core/signage"
	"property_valuation/pkg/models"
)

func draftReport() *models.ValuationReport {
	return &models.ValuationReport{
		ID:     "r-1",
		Status: models.StatusDraft,
		Property: &models.PropertyDetails{
			Address:      "12 Example Rd, Sunshine VIC",
			PropertyType: "commercial",
		},
	}
}

func TestBuildSummaryCompleteness(t *testing.T) {
	r := draftReport()
	summary := BuildSummary(r)

	if !summary.Completeness.Property {
		t.Error("Property section should be complete")
	}
	if summary.Completeness.Valuation || summary.Completeness.SalesEvidence {
		t.Error("No valuation or evidence yet")
	}
	if summary.Address != "12 Example Rd, Sunshine VIC" {
		t.Errorf("Address not carried through: %q", summary.Address)
	}
}

func TestBuildSummaryHeadlinesAndRiskFlags(t *testing.T) {
	r := draftReport()
	r.Signage = &models.SignageSection{
		Result: &signage.SignageResult{
			MarketValue: 1586666.67,
			RiskRating:  "High",
			RiskFactors: []string{"High renewal risk at lease expiry"},
		},
	}
	r.Bids = &models.BidComparison{
		Results: []bidding.BidResult{
			{BidderName: "Acme Outdoor", BidAmount: 1600000, Rank: 1},
			{BidderName: "Billboards R Us", BidAmount: 1500000, Rank: 2},
		},
	}

	summary := BuildSummary(r)
	if summary.SignageMarketValue != 1586666.67 {
		t.Errorf("Signage value missing: %f", summary.SignageMarketValue)
	}
	if summary.TopBidder != "Acme Outdoor" || summary.TopBidAmount != 1600000 {
		t.Errorf("Top bid wrong: %s / %f", summary.TopBidder, summary.TopBidAmount)
	}
	// Risk factor string plus the High-rating flag
	if len(summary.RiskFlags) != 2 {
		t.Errorf("Expected 2 risk flags, got %v", summary.RiskFlags)
	}
}

func TestFinalizeRequiresValuation(t *testing.T) {
	r := draftReport()
	if err := Finalize(r); err == nil {
		t.Error("Finalise without a valuation result must fail")
	}

	r.Signage = &models.SignageSection{Result: &signage.SignageResult{MarketValue: 1}}
	if err := Finalize(r); err != nil {
		t.Errorf("Finalise should succeed: %v", err)
	}
	if r.Status != models.StatusFinal {
		t.Errorf("Status should be final, got %s", r.Status)
	}

	if err := Finalize(r); err == nil {
		t.Error("Double finalise must fail")
	}
}

func TestCleanCommentary(t *testing.T) {
	wrapped := "```markdown\n## Market outlook\nSteady demand.\n```"
	cleaned := CleanCommentary(wrapped)
	if cleaned != "## Market outlook\nSteady demand." {
		t.Errorf("Fences not stripped: %q", cleaned)
	}

	plain := "## Market outlook"
	if CleanCommentary(plain) != plain {
		t.Error("Unfenced commentary must pass through unchanged")
	}
}

func TestValidCommentary(t *testing.T) {
	if !ValidCommentary("## Heading\n\n- point one\n- point two") {
		t.Error("Well-formed markdown should validate")
	}
}
