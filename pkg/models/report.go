// Package models defines the valuation report document the form tabs
// assemble. Sections are optional; a draft carries whatever the valuer
// has filled in so far.
package models

import (
	"time"

	"property_valuation/pkg/core/bidding"
	"property_valuation/pkg/core/platform"
	"property_valuation/pkg/core/qualify"
	"property_valuation/pkg/core/signage"
)

// ReportStatus is the lifecycle state of a report document.
type ReportStatus string

const (
	StatusDraft ReportStatus = "draft"
	StatusFinal ReportStatus = "final"
)

// PropertyDetails is the first tab: the subject property itself.
type PropertyDetails struct {
	Address        string  `json:"address"`
	LotPlan        string  `json:"lot_plan"`
	LandAreaSqm    float64 `json:"land_area_sqm"`
	BuildingAreaSqm float64 `json:"building_area_sqm"`
	Zoning         string  `json:"zoning"`
	PropertyType   string  `json:"property_type"` // e.g. "commercial", "industrial"
	YearBuilt      int     `json:"year_built"`
	Description    string  `json:"description"`
}

// PlanningDetails captures the planning and permit position.
type PlanningDetails struct {
	PlanningScheme   string    `json:"planning_scheme"`
	Overlays         []string  `json:"overlays"`
	PermitNumber     string    `json:"permit_number"`
	PermitExpiry     time.Time `json:"permit_expiry"`
	PermitConditions string    `json:"permit_conditions"`
	HeritageListed   bool      `json:"heritage_listed"`
}

// ComparableSale is one row of sales evidence.
type ComparableSale struct {
	Address         string    `json:"address"`
	SaleDate        time.Time `json:"sale_date"`
	SalePrice       float64   `json:"sale_price"`
	LandAreaSqm     float64   `json:"land_area_sqm"`
	BuildingAreaSqm float64   `json:"building_area_sqm"`
	Notes           string    `json:"notes"`
}

// EnvironmentalAudit records the environmental position of the site.
type EnvironmentalAudit struct {
	AuditRequired     bool     `json:"audit_required"`
	Auditor           string   `json:"auditor"`
	ContaminationRisk string   `json:"contamination_risk"` // "low", "medium", "high"
	Findings          []string `json:"findings"`
	RemediationCost   float64  `json:"remediation_cost"`
}

// MarketCommentary is the free-text commentary tab, authored as
// Markdown in the UI.
type MarketCommentary struct {
	Body      string    `json:"body"`
	Author    string    `json:"author"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SignageSection pairs a signage calculator run with its result.
type SignageSection struct {
	Input  signage.SignageInput  `json:"input"`
	Result *signage.SignageResult `json:"result,omitempty"`
}

// PlatformSection pairs a platform calculator run with its result.
type PlatformSection struct {
	Input  platform.PlatformInput  `json:"input"`
	Result *platform.PlatformResult `json:"result,omitempty"`
}

// BidComparison holds the competing bids and the last scoring run.
type BidComparison struct {
	Bids    []bidding.BidInput            `json:"bids"`
	Weights bidding.VendorPriorityWeights `json:"weights"`
	Results []bidding.BidResult           `json:"results,omitempty"`
}

// BidderAssessment pairs a qualification run with its result.
type BidderAssessment struct {
	BidderName string                        `json:"bidder_name"`
	Input      qualify.QualificationInput    `json:"input"`
	Result     *qualify.QualificationResult  `json:"result,omitempty"`
}

// ValuationReport is the full report document.
type ValuationReport struct {
	ID        string       `json:"id"`
	Status    ReportStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`

	Property      *PropertyDetails    `json:"property,omitempty"`
	Planning      *PlanningDetails    `json:"planning,omitempty"`
	SalesEvidence []ComparableSale    `json:"sales_evidence,omitempty"`
	Environmental *EnvironmentalAudit `json:"environmental,omitempty"`
	Commentary    *MarketCommentary   `json:"commentary,omitempty"`

	Signage     *SignageSection    `json:"signage,omitempty"`
	Platform    *PlatformSection   `json:"platform,omitempty"`
	Bids        *BidComparison     `json:"bids,omitempty"`
	Assessments []BidderAssessment `json:"assessments,omitempty"`
}

// Address returns the subject property address, or empty when the
// property tab has not been filled in.
func (r *ValuationReport) Address() string {
	if r.Property == nil {
		return ""
	}
	return r.Property.Address
}

// HasValuationResult reports whether at least one calculator has been
// run against the report.
func (r *ValuationReport) HasValuationResult() bool {
	if r.Signage != nil && r.Signage.Result != nil {
		return true
	}
	if r.Platform != nil && r.Platform.Result != nil {
		return true
	}
	return false
}
