// Package bidding scores competing purchase bids against vendor
// priorities and estimates the vendor's net financial benefit from
// each offer.
package bidding

import (
	"math"
	"sort"
)

// BidInput describes one competing purchase offer.
type BidInput struct {
	BidderName        string  `json:"bidder_name"`
	BidAmount         float64 `json:"bid_amount"`
	DepositPercentage float64 `json:"deposit_percentage"`
	SettlementDays    int     `json:"settlement_days"`
	EarnestMoney      float64 `json:"earnest_money"`
	PenaltyPerDay     float64 `json:"penalty_per_day"`

	CashBuyer                   bool `json:"cash_buyer"`
	FinanceApproved             bool `json:"finance_approved"`
	SubjectToFinance            bool `json:"subject_to_finance"`
	SubjectToBuildingInspection bool `json:"subject_to_building_inspection"`
	SubjectToPestInspection     bool `json:"subject_to_pest_inspection"`
	SubjectToStrataReport       bool `json:"subject_to_strata_report"`
}

// VendorPriorityWeights expresses the vendor's priorities as shares of
// 100 across the four scoring components. Scoring assumes the weights
// sum to 100 but does not enforce it.
type VendorPriorityWeights struct {
	Price     float64 `json:"price"`
	Speed     float64 `json:"speed"`
	Certainty float64 `json:"certainty"`
	Deposit   float64 `json:"deposit"`
}

// BidResult holds the per-bid component scores, the weighted
// composite, and the vendor benefit estimate.
type BidResult struct {
	BidderName string `json:"bidder_name"`
	BidAmount  float64 `json:"bid_amount"`

	PriceScore     float64 `json:"price_score"`
	SpeedScore     float64 `json:"speed_score"`
	CertaintyScore float64 `json:"certainty_score"`
	DepositScore   float64 `json:"deposit_score"`

	WeightedScore float64 `json:"weighted_score"`
	VendorBenefit float64 `json:"vendor_benefit"`
	TotalScore    float64 `json:"total_score"` // 0-100, rounded
	Rank          int     `json:"rank"`
}

// ScoreBids scores every bid against the vendor's priorities using the
// standard assumptions and returns the results ranked by total score.
func ScoreBids(bids []BidInput, weights VendorPriorityWeights) []BidResult {
	return ScoreBidsWith(bids, weights, DefaultAssumptions())
}

// ScoreBidsWith is ScoreBids with an explicit assumption set. Results
// are sorted by descending total score; equal scores keep submission
// order.
func ScoreBidsWith(bids []BidInput, weights VendorPriorityWeights, a Assumptions) []BidResult {
	if len(bids) == 0 {
		return []BidResult{}
	}

	// Reference for price normalisation: the highest bid in the
	// comparison set.
	referenceMax := 0.0
	for _, b := range bids {
		if b.BidAmount > referenceMax {
			referenceMax = b.BidAmount
		}
	}

	results := make([]BidResult, 0, len(bids))
	for _, b := range bids {
		res := scoreBid(b, weights, referenceMax, a)
		results = append(results, res)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalScore > results[j].TotalScore
	})
	for i := range results {
		results[i].Rank = i + 1
	}
	return results
}

func scoreBid(b BidInput, w VendorPriorityWeights, referenceMax float64, a Assumptions) BidResult {
	// 1. Price: share of the highest competing bid.
	priceScore := 0.0
	if referenceMax > 0 {
		priceScore = b.BidAmount / referenceMax * 100
	}

	// 2. Speed: linear penalty past the settlement baseline, floored.
	speedScore := math.Max(0, 100-float64(b.SettlementDays-a.SettlementBaselineDays)*a.SpeedPenaltyPerDay)

	// 3. Certainty: base plus fixed bonuses per risk-reducing
	// condition, capped at 100.
	certaintyScore := a.CertaintyBase
	if b.CashBuyer {
		certaintyScore += a.CashBuyerBonus
	}
	if b.FinanceApproved {
		certaintyScore += a.FinanceApprovedBonus
	}
	if !b.SubjectToFinance {
		certaintyScore += a.NoFinanceClauseBonus
	}
	if !b.SubjectToBuildingInspection {
		certaintyScore += a.NoBuildingClauseBonus
	}
	if !b.SubjectToPestInspection {
		certaintyScore += a.NoPestClauseBonus
	}
	if !b.SubjectToStrataReport {
		certaintyScore += a.NoStrataClauseBonus
	}
	certaintyScore = math.Min(100, certaintyScore)

	// 4. Deposit: normalised against the benchmark deposit, capped.
	depositScore := math.Min(100, b.DepositPercentage/a.DepositBenchmarkPct*100)

	weighted := priceScore*w.Price/100 +
		speedScore*w.Speed/100 +
		certaintyScore*w.Certainty/100 +
		depositScore*w.Deposit/100

	benefit := vendorBenefit(b, a)

	// Fixed blend of preference score and financial benefit score.
	benefitScore := 0.0
	if referenceMax > 0 {
		benefitScore = benefit / referenceMax * 100
	}
	total := math.Round(weighted*a.PreferenceBlend + benefitScore*a.BenefitBlend)

	return BidResult{
		BidderName:     b.BidderName,
		BidAmount:      b.BidAmount,
		PriceScore:     priceScore,
		SpeedScore:     speedScore,
		CertaintyScore: certaintyScore,
		DepositScore:   depositScore,
		WeightedScore:  weighted,
		VendorBenefit:  benefit,
		TotalScore:     total,
	}
}

// vendorBenefit approximates the vendor's time-value-adjusted proceeds:
// the bid amount discounted for the settlement period at the
// opportunity-cost rate, plus an early-settlement bonus and the access
// benefit on funds held before settlement (deposit plus earnest money).
func vendorBenefit(b BidInput, a Assumptions) float64 {
	carryCost := b.BidAmount * (float64(b.SettlementDays) / 365 * a.OpportunityCostRate)

	earlyBonus := 0.0
	if b.SettlementDays <= a.EarlySettlementDays {
		earlyBonus = b.BidAmount * a.EarlySettlementBonusRate
	}

	depositAmount := b.BidAmount * b.DepositPercentage / 100
	accessBenefit := (depositAmount + b.EarnestMoney) * a.DepositAccessRate

	return b.BidAmount - carryCost + earlyBonus + accessBenefit
}
