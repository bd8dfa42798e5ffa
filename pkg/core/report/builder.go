// Package report assembles the summary view of a valuation report and
// enforces the finalisation rule for drafts.
package report

import (
	"fmt"

	"property_valuation/pkg/models"
)

// SectionCompleteness flags which tabs of the report carry content.
type SectionCompleteness struct {
	Property      bool `json:"property"`
	Planning      bool `json:"planning"`
	SalesEvidence bool `json:"sales_evidence"`
	Environmental bool `json:"environmental"`
	Commentary    bool `json:"commentary"`
	Valuation     bool `json:"valuation"`
}

// ReportSummary is the flat headline view of a report document.
type ReportSummary struct {
	ReportID string              `json:"report_id"`
	Address  string              `json:"address"`
	Status   models.ReportStatus `json:"status"`

	SignageMarketValue float64 `json:"signage_market_value,omitempty"`
	PlatformValue      float64 `json:"platform_value,omitempty"`
	TopBidder          string  `json:"top_bidder,omitempty"`
	TopBidAmount       float64 `json:"top_bid_amount,omitempty"`
	ComparableCount    int     `json:"comparable_count"`

	Completeness SectionCompleteness `json:"completeness"`
	RiskFlags    []string            `json:"risk_flags"`
}

// BuildSummary assembles the headline summary from whichever sections
// the valuer has filled in. Pure and synchronous.
func BuildSummary(r *models.ValuationReport) ReportSummary {
	summary := ReportSummary{
		ReportID:  r.ID,
		Address:   r.Address(),
		Status:    r.Status,
		RiskFlags: []string{},
		Completeness: SectionCompleteness{
			Property:      r.Property != nil && r.Property.Address != "",
			Planning:      r.Planning != nil,
			SalesEvidence: len(r.SalesEvidence) > 0,
			Environmental: r.Environmental != nil,
			Commentary:    r.Commentary != nil && r.Commentary.Body != "",
			Valuation:     r.HasValuationResult(),
		},
	}

	summary.ComparableCount = len(r.SalesEvidence)

	if r.Signage != nil && r.Signage.Result != nil {
		summary.SignageMarketValue = r.Signage.Result.MarketValue
		summary.RiskFlags = append(summary.RiskFlags, r.Signage.Result.RiskFactors...)
		if r.Signage.Result.RiskRating == "High" {
			summary.RiskFlags = append(summary.RiskFlags, "Signage tenure rated High risk")
		}
	}

	if r.Platform != nil && r.Platform.Result != nil {
		summary.PlatformValue = r.Platform.Result.PlatformValue
		if r.Platform.Result.NetAnnualIncome <= 0 {
			summary.RiskFlags = append(summary.RiskFlags, "Platform income does not cover operating costs")
		}
	}

	if r.Bids != nil && len(r.Bids.Results) > 0 {
		top := r.Bids.Results[0]
		summary.TopBidder = top.BidderName
		summary.TopBidAmount = top.BidAmount
	}

	if r.Environmental != nil && r.Environmental.ContaminationRisk == "high" {
		summary.RiskFlags = append(summary.RiskFlags, "High contamination risk flagged in environmental audit")
	}

	return summary
}

// Finalize moves a draft to final. A report can only be finalised with
// the property tab filled in and at least one valuation result.
func Finalize(r *models.ValuationReport) error {
	if r.Status == models.StatusFinal {
		return fmt.Errorf("report %s is already final", r.ID)
	}
	if r.Property == nil || r.Property.Address == "" {
		return fmt.Errorf("cannot finalise: property details incomplete")
	}
	if !r.HasValuationResult() {
		return fmt.Errorf("cannot finalise: no valuation result attached")
	}
	r.Status = models.StatusFinal
	return nil
}
