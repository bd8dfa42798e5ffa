// Package qualify scores a prospective bidder's capacity to complete a
// purchase: affordability, debt service, deposit cover, and credit
// standing, bucketed into qualification tiers.
package qualify

// Tier buckets for the overall score. Thresholds are closed on the
// upper tier: a score of exactly 85 is Excellent.
const (
	TierExcellent   = "Excellent"
	TierGood        = "Good"
	TierFair        = "Fair"
	TierPoor        = "Poor"
	TierUnqualified = "Unqualified"
)

// QualificationInput carries the bidder's financial and employment
// attributes. The caller is expected to supply pre-validated,
// non-negative figures; this engine does not validate and will produce
// degenerate but non-crashing results on malformed input.
type QualificationInput struct {
	PropertyValue float64 `json:"property_value"`

	// Financial
	GrossAnnualIncome    float64 `json:"gross_annual_income"`
	NetMonthlyIncome     float64 `json:"net_monthly_income"`
	LiquidAssets         float64 `json:"liquid_assets"`
	ExistingMortgageDebt float64 `json:"existing_mortgage_debt"` // annual servicing
	OtherDebts           float64 `json:"other_debts"`            // annual servicing
	MonthlyExpenses      float64 `json:"monthly_expenses"`
	CreditScore          int     `json:"credit_score"`
	BankingHistoryYears  float64 `json:"banking_history_years"`

	// Employment
	YearsInPosition float64 `json:"years_in_position"`

	// Pre-approval
	HasPreApproval    bool    `json:"has_pre_approval"`
	PreApprovalAmount float64 `json:"pre_approval_amount"`
}

// QualificationResult holds the overall score, its tier, the derived
// affordability figures, and the accumulated assessment notes.
type QualificationResult struct {
	Score float64 `json:"score"` // 0-100
	Tier  string  `json:"tier"`

	DebtToIncomeRatio  float64 `json:"debt_to_income_ratio"`
	AffordabilityRatio float64 `json:"affordability_ratio"`
	MaxAffordablePrice float64 `json:"max_affordable_price"`
	RecommendedDeposit float64 `json:"recommended_deposit"`

	Strengths            []string `json:"strengths"`
	Concerns             []string `json:"concerns"`
	VerificationRequired []string `json:"verification_required"`
}

// AssessQualification scores the bidder with the standard bands.
func AssessQualification(input QualificationInput) QualificationResult {
	return AssessQualificationWith(input, DefaultBands())
}

// AssessQualificationWith is AssessQualification with an explicit band
// configuration. Each band evaluation may push at most one string to
// each of the strengths/concerns/verification lists.
func AssessQualificationWith(input QualificationInput, b Bands) QualificationResult {
	res := QualificationResult{
		Tier:                 TierUnqualified,
		Strengths:            []string{},
		Concerns:             []string{},
		VerificationRequired: []string{},
	}

	// Income is the divisor for every serviceability figure. Without
	// it there is nothing to assess; return the zero-score result with
	// a verification flag rather than dividing.
	if input.NetMonthlyIncome <= 0 {
		res.VerificationRequired = append(res.VerificationRequired, "Income verification required before assessment")
		return res
	}

	// Derived ratios
	monthlyDebtPayments := (input.ExistingMortgageDebt + input.OtherDebts) / 12
	res.DebtToIncomeRatio = (monthlyDebtPayments + input.MonthlyExpenses) / input.NetMonthlyIncome

	// 28% payment-to-income rule capitalised over 25 years, plus
	// whatever the bidder holds in liquid assets.
	res.MaxAffordablePrice = input.NetMonthlyIncome*b.PaymentToIncomeRule*12*b.CapitalisationYears + input.LiquidAssets
	if res.MaxAffordablePrice > 0 {
		res.AffordabilityRatio = input.PropertyValue / res.MaxAffordablePrice
	}
	res.RecommendedDeposit = input.PropertyValue * b.RecommendedDepositRate

	score := 0.0
	score += scoreEmployment(input, &res, b)
	score += scoreCredit(input, &res)
	score += scoreDebtToIncome(res.DebtToIncomeRatio, &res)
	score += scoreDepositCover(input, &res, b)
	score += scoreBankingHistory(input.BankingHistoryYears)
	score += scorePreApproval(input, &res)

	res.Score = score
	res.Tier = tierFor(score)
	return res
}

// tierFor maps a score to its qualification tier.
func tierFor(score float64) string {
	switch {
	case score >= 85:
		return TierExcellent
	case score >= 70:
		return TierGood
	case score >= 55:
		return TierFair
	case score >= 40:
		return TierPoor
	default:
		return TierUnqualified
	}
}

// scoreEmployment allocates up to 25 points for tenure in the current
// position.
func scoreEmployment(input QualificationInput, res *QualificationResult, b Bands) float64 {
	switch {
	case input.YearsInPosition >= 3:
		res.Strengths = append(res.Strengths, "Stable employment tenure")
		return 25
	case input.YearsInPosition >= 1:
		return 15
	case input.YearsInPosition > 0:
		res.Concerns = append(res.Concerns, "Short employment tenure")
		return 5
	default:
		res.Concerns = append(res.Concerns, "No employment tenure recorded")
		return 0
	}
}

// scoreCredit allocates up to 25 points for the credit score. A score
// of zero means no report was supplied at all.
func scoreCredit(input QualificationInput, res *QualificationResult) float64 {
	switch {
	case input.CreditScore >= 800:
		res.Strengths = append(res.Strengths, "Excellent credit score")
		return 25
	case input.CreditScore >= 700:
		return 20
	case input.CreditScore >= 600:
		return 10
	case input.CreditScore > 0:
		res.Concerns = append(res.Concerns, "Credit score below lending threshold")
		return 0
	default:
		res.VerificationRequired = append(res.VerificationRequired, "Credit report required")
		return 0
	}
}

// scoreDebtToIncome allocates up to 20 points for debt service load.
func scoreDebtToIncome(dti float64, res *QualificationResult) float64 {
	switch {
	case dti <= 0.28:
		res.Strengths = append(res.Strengths, "Low debt-to-income ratio")
		return 20
	case dti <= 0.36:
		return 14
	case dti <= 0.45:
		return 6
	default:
		res.Concerns = append(res.Concerns, "High debt-to-income ratio")
		return 0
	}
}

// scoreDepositCover allocates up to 15 points for liquid asset cover
// of the minimum deposit.
func scoreDepositCover(input QualificationInput, res *QualificationResult, b Bands) float64 {
	minimumDeposit := input.PropertyValue * b.MinimumDepositRate
	switch {
	case input.LiquidAssets >= 2*minimumDeposit:
		res.Strengths = append(res.Strengths, "Liquid assets well above the minimum deposit")
		return 15
	case input.LiquidAssets >= minimumDeposit:
		return 10
	case input.LiquidAssets >= 0.5*minimumDeposit:
		res.Concerns = append(res.Concerns, "Liquid assets below the minimum deposit")
		return 4
	default:
		res.Concerns = append(res.Concerns, "Insufficient liquid assets for a deposit")
		return 0
	}
}

// scoreBankingHistory allocates up to 10 points for banking
// relationship length.
func scoreBankingHistory(years float64) float64 {
	switch {
	case years >= 5:
		return 10
	case years >= 2:
		return 6
	case years > 0:
		return 2
	default:
		return 0
	}
}

// scorePreApproval allocates up to 5 bonus points for finance
// pre-approval.
func scorePreApproval(input QualificationInput, res *QualificationResult) float64 {
	if !input.HasPreApproval {
		return 0
	}
	if input.PreApprovalAmount >= input.PropertyValue {
		res.Strengths = append(res.Strengths, "Pre-approval covers the property value")
		return 5
	}
	res.Concerns = append(res.Concerns, "Pre-approval below the property value")
	return 2
}
