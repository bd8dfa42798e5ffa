// Package platform implements the income valuation of digital
// out-of-home display platforms: capitalised net ad revenue adjusted
// for audience quality and technical infrastructure.
package platform

import (
	"math"

	"property_valuation/pkg/core/validate"
)

// PlatformInput carries the specs, audience metrics and commercial
// terms of a digital display platform. Operating costs are monthly
// dollars; rates are percentages.
type PlatformInput struct {
	// Platform specs
	ScreenSizeSqm   float64 `json:"screen_size_sqm"`
	OperatingHours  float64 `json:"operating_hours"`  // per day
	PlayoutDuration float64 `json:"playout_duration"` // minutes per ad slot, must be > 0
	OccupancyRate   float64 `json:"occupancy_rate"`   // percent, clamped to [0,100]

	// Audience
	DailyImpressions float64 `json:"daily_impressions"`
	UniqueViewers    float64 `json:"unique_viewers"`

	// Commercial terms
	AdSlotPrice          float64 `json:"ad_slot_price"` // per play
	RevenueSharePct      float64 `json:"revenue_share_pct"`
	ContractYears        float64 `json:"contract_years"`
	OperatingCosts       float64 `json:"operating_costs"`
	MaintenanceCosts     float64 `json:"maintenance_costs"`
	ContentManagementFee float64 `json:"content_management_fee"`
}

// PlatformResult holds the valuation outputs.
type PlatformResult struct {
	PlatformValue   float64 `json:"platform_value"`
	AnnualRevenue   float64 `json:"annual_revenue"` // gross
	DailyRevenue    float64 `json:"daily_revenue"`
	NetAnnualIncome float64 `json:"net_annual_income"`
	ROI             float64 `json:"roi"` // percent
	CPM             float64 `json:"cpm"`
	PaybackYears    float64 `json:"payback_years"` // 0 when income is non-positive

	AudienceQualityScore float64 `json:"audience_quality_score"` // 0-100
	TechScore            float64 `json:"tech_score"`             // 0-100
	MarketPositionScore  float64 `json:"market_position_score"`  // 0-100

	Recommendations []string `json:"recommendations"`
}

// ComputeDigitalPlatformValue values a platform with the standard
// benchmarks.
func ComputeDigitalPlatformValue(input PlatformInput) (PlatformResult, error) {
	return ComputeDigitalPlatformValueWith(input, DefaultAssumptions())
}

// ComputeDigitalPlatformValueWith is ComputeDigitalPlatformValue with
// an explicit benchmark set.
func ComputeDigitalPlatformValueWith(input PlatformInput, a Assumptions) (PlatformResult, error) {
	if input.PlayoutDuration <= 0 {
		return PlatformResult{}, validate.NewError("playout_duration")
	}

	// Occupancy is a physical share of inventory; out-of-range values
	// are clamped rather than rejected.
	occupancy := clamp(input.OccupancyRate, 0, 100)

	// 1. Inventory
	dailySlots := math.Floor(input.OperatingHours * 60 / input.PlayoutDuration)

	// 2. Revenue
	dailyRevenue := input.AdSlotPrice * dailySlots * (occupancy / 100)
	grossAnnualRevenue := dailyRevenue * 365

	// 3. Costs (monthly -> annual)
	annualOperatingCosts := (input.OperatingCosts + input.MaintenanceCosts + input.ContentManagementFee) * 12
	netAnnualIncome := grossAnnualRevenue - annualOperatingCosts

	// 4. CPM. Zero impressions is an audience-data gap, not a
	// structural failure; report 0 rather than rejecting.
	cpm := 0.0
	if input.DailyImpressions > 0 {
		cpm = input.AdSlotPrice / (input.DailyImpressions / 1000)
	}

	// 5. Quality scores, each a weighted sum of capped sub-metrics
	audienceScore := audienceQuality(input, a)
	techScore := techInfrastructure(input, a)
	marketScore := marketPosition(input, a)

	// 6. Platform value: capitalise net income, then scale by the
	// blended quality multiplier (0.8x at score 0, 1.2x at score 100).
	platformValue := 0.0
	if netAnnualIncome > 0 {
		base := netAnnualIncome / a.PlatformCapRate
		blended := audienceScore*a.AudienceBlendWeight + techScore*(1-a.AudienceBlendWeight)
		platformValue = base * (a.QualityMultiplierFloor + a.QualityMultiplierRange*blended/100)
	}

	// 7. Returns
	roi := 0.0
	payback := 0.0
	if platformValue > 0 {
		roi = netAnnualIncome / platformValue * 100
		payback = platformValue / netAnnualIncome
	}

	res := PlatformResult{
		PlatformValue:        platformValue,
		AnnualRevenue:        grossAnnualRevenue,
		DailyRevenue:         dailyRevenue,
		NetAnnualIncome:      netAnnualIncome,
		ROI:                  roi,
		CPM:                  cpm,
		PaybackYears:         payback,
		AudienceQualityScore: audienceScore,
		TechScore:            techScore,
		MarketPositionScore:  marketScore,
	}
	res.Recommendations = recommend(input, res, occupancy, a)
	return res, nil
}

// audienceQuality blends reach and volume against benchmark audiences.
func audienceQuality(input PlatformInput, a Assumptions) float64 {
	impressionScore := cap100(input.DailyImpressions / a.ImpressionsBenchmark * 100)
	reachScore := cap100(input.UniqueViewers / a.UniqueViewersBenchmark * 100)
	return impressionScore*0.6 + reachScore*0.4
}

// techInfrastructure scores the physical installation: screen scale,
// operating window, and slot granularity.
func techInfrastructure(input PlatformInput, a Assumptions) float64 {
	screenScore := cap100(input.ScreenSizeSqm / a.ScreenSizeBenchmark * 100)
	hoursScore := cap100(input.OperatingHours / a.OperatingHoursBenchmark * 100)
	slotsPerHour := 60 / input.PlayoutDuration
	slotScore := cap100(slotsPerHour / a.SlotsPerHourBenchmark * 100)
	return screenScore*0.5 + hoursScore*0.3 + slotScore*0.2
}

// marketPosition scores the commercial terms: operator revenue share
// and contracted tail.
func marketPosition(input PlatformInput, a Assumptions) float64 {
	shareScore := cap100(input.RevenueSharePct)
	contractScore := cap100(input.ContractYears / a.ContractYearsBenchmark * 100)
	return shareScore*0.5 + contractScore*0.5
}

func recommend(input PlatformInput, res PlatformResult, occupancy float64, a Assumptions) []string {
	recs := []string{}
	if occupancy < a.LowOccupancyThreshold {
		recs = append(recs, "Increase inventory utilisation: occupancy is below market norms")
	}
	if res.NetAnnualIncome <= 0 {
		recs = append(recs, "Operating costs exceed ad revenue; review the cost base before acquisition")
	}
	if res.CPM > 0 && res.CPM < a.LowCPMThreshold {
		recs = append(recs, "Slot pricing is cheap for the audience delivered; test higher rates")
	}
	if input.ContractYears > 0 && input.ContractYears < a.ShortContractYears {
		recs = append(recs, "Short contracted tail; renegotiate term before relying on the income stream")
	}
	return recs
}

func cap100(v float64) float64 {
	return clamp(v, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
