package qualify

import (
	"math"
	"testing"
)

func strongBidder() QualificationInput {
	// Engineered for a perfect score:
	//   employment 3y           -> 25
	//   credit 820              -> 25
	//   DTI <= 0.28             -> 20
	//   assets >= 2x min deposit -> 15
	//   banking 5y              -> 10
	//   pre-approval sufficient -> 5
	return QualificationInput{
		PropertyValue:        800000,
		GrossAnnualIncome:    180000,
		NetMonthlyIncome:     10000,
		LiquidAssets:         200000, // min deposit = 80000, 2x = 160000
		ExistingMortgageDebt: 12000,  // 1000/month
		OtherDebts:           0,
		MonthlyExpenses:      1500, // DTI = 2500/10000 = 0.25
		CreditScore:          820,
		BankingHistoryYears:  5,
		YearsInPosition:      3,
		HasPreApproval:       true,
		PreApprovalAmount:    850000,
	}
}

func TestPerfectScore(t *testing.T) {
	res := AssessQualification(strongBidder())

	if res.Score != 100 {
		t.Errorf("Expected score 100, got %f", res.Score)
	}
	if res.Tier != TierExcellent {
		t.Errorf("Expected Excellent, got %s", res.Tier)
	}
	if len(res.Concerns) != 0 {
		t.Errorf("Expected no concerns, got %v", res.Concerns)
	}
	// One strength per full-score band that records one
	if len(res.Strengths) != 5 {
		t.Errorf("Expected 5 strengths, got %v", res.Strengths)
	}
}

func TestDerivedRatios(t *testing.T) {
	res := AssessQualification(strongBidder())

	// DTI = ((12000+0)/12 + 1500) / 10000 = 0.25
	if math.Abs(res.DebtToIncomeRatio-0.25) > 0.0001 {
		t.Errorf("Expected DTI 0.25, got %f", res.DebtToIncomeRatio)
	}
	// Max affordable = 10000 * 0.28 * 12 * 25 + 200000 = 1,040,000
	if math.Abs(res.MaxAffordablePrice-1040000) > 0.01 {
		t.Errorf("Expected max affordable 1040000, got %f", res.MaxAffordablePrice)
	}
	// Affordability = 800000 / 1040000
	if math.Abs(res.AffordabilityRatio-800000.0/1040000) > 0.0001 {
		t.Errorf("Affordability ratio wrong: %f", res.AffordabilityRatio)
	}
	// Recommended deposit = 20% of property value
	if res.RecommendedDeposit != 160000 {
		t.Errorf("Expected recommended deposit 160000, got %f", res.RecommendedDeposit)
	}
}

// Tier boundaries are closed on the upper tier (score >= threshold).
func TestTierBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		tier  string
	}{
		{100, TierExcellent},
		{85, TierExcellent},
		{84, TierGood},
		{70, TierGood},
		{69, TierFair},
		{55, TierFair},
		{54, TierPoor},
		{40, TierPoor},
		{39, TierUnqualified},
		{0, TierUnqualified},
	}
	for _, c := range cases {
		if got := tierFor(c.score); got != c.tier {
			t.Errorf("Score %f: expected %s, got %s", c.score, c.tier, got)
		}
	}
}

func TestCreditBands(t *testing.T) {
	input := strongBidder()

	input.CreditScore = 700
	res := AssessQualification(input)
	if res.Score != 95 { // 25 -> 20
		t.Errorf("Credit 700 should drop 5 points, got %f", res.Score)
	}

	input.CreditScore = 600
	res = AssessQualification(input)
	if res.Score != 85 { // 25 -> 10
		t.Errorf("Credit 600 should drop to 85, got %f", res.Score)
	}

	input.CreditScore = 450
	res = AssessQualification(input)
	if res.Score != 75 {
		t.Errorf("Credit 450 should score 0 in band, got %f", res.Score)
	}
	if len(res.Concerns) != 1 || res.Concerns[0] != "Credit score below lending threshold" {
		t.Errorf("Expected low-credit concern, got %v", res.Concerns)
	}

	input.CreditScore = 0
	res = AssessQualification(input)
	if len(res.VerificationRequired) != 1 || res.VerificationRequired[0] != "Credit report required" {
		t.Errorf("Missing credit report must flag verification, got %v", res.VerificationRequired)
	}
	if len(res.Concerns) != 0 {
		t.Errorf("Missing report is a verification item, not a concern: %v", res.Concerns)
	}
}

func TestZeroIncomeShortCircuits(t *testing.T) {
	input := strongBidder()
	input.NetMonthlyIncome = 0

	res := AssessQualification(input)
	if res.Score != 0 || res.Tier != TierUnqualified {
		t.Errorf("Zero income must yield 0/Unqualified, got %f/%s", res.Score, res.Tier)
	}
	if len(res.VerificationRequired) != 1 {
		t.Errorf("Expected income verification flag, got %v", res.VerificationRequired)
	}
	if res.DebtToIncomeRatio != 0 {
		t.Errorf("No DTI should be computed without income, got %f", res.DebtToIncomeRatio)
	}
}

func TestDepositCoverBands(t *testing.T) {
	input := strongBidder() // min deposit 80000

	input.LiquidAssets = 100000 // >= 1x, < 2x
	res := AssessQualification(input)
	// Asset band 15 -> 10; max affordable also shrinks but bands are
	// independent of it.
	if res.Score != 95 {
		t.Errorf("1x deposit cover should score 10 in band, got %f", res.Score)
	}

	input.LiquidAssets = 50000 // >= 0.5x, < 1x
	res = AssessQualification(input)
	if res.Score != 89 {
		t.Errorf("Half deposit cover should score 4 in band, got %f", res.Score)
	}
	foundConcern := false
	for _, c := range res.Concerns {
		if c == "Liquid assets below the minimum deposit" {
			foundConcern = true
		}
	}
	if !foundConcern {
		t.Errorf("Expected deposit concern, got %v", res.Concerns)
	}

	input.LiquidAssets = 10000
	res = AssessQualification(input)
	if res.Score != 85 {
		t.Errorf("Negligible assets should score 0 in band, got %f", res.Score)
	}
}

func TestMalformedInputDoesNotCrash(t *testing.T) {
	// The engine does not validate; negative figures produce
	// nonsensical but finite results.
	input := QualificationInput{
		PropertyValue:    -500000,
		NetMonthlyIncome: 4000,
		MonthlyExpenses:  -2000,
		CreditScore:      720,
	}
	res := AssessQualification(input)
	if math.IsNaN(res.Score) || math.IsInf(res.AffordabilityRatio, 0) {
		t.Errorf("Malformed input must stay finite: %+v", res)
	}
}

func TestIdempotence(t *testing.T) {
	a := AssessQualification(strongBidder())
	b := AssessQualification(strongBidder())
	if a.Score != b.Score || a.Tier != b.Tier || len(a.Strengths) != len(b.Strengths) {
		t.Error("Repeated calls with identical input must match")
	}
}
