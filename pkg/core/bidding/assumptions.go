package bidding

// Assumptions holds every constant in the bid scoring model so the
// rate card can adjust them without code changes.
type Assumptions struct {
	// Vendor benefit: annual opportunity cost of capital tied up until
	// settlement, and the access benefit rate on pre-settlement funds.
	OpportunityCostRate float64 `yaml:"opportunity_cost_rate" json:"opportunity_cost_rate"`
	DepositAccessRate   float64 `yaml:"deposit_access_rate" json:"deposit_access_rate"`

	// Early settlement bonus applies at or under this many days.
	EarlySettlementDays      int     `yaml:"early_settlement_days" json:"early_settlement_days"`
	EarlySettlementBonusRate float64 `yaml:"early_settlement_bonus_rate" json:"early_settlement_bonus_rate"`

	// Speed score: baseline settlement and per-day penalty past it.
	SettlementBaselineDays int     `yaml:"settlement_baseline_days" json:"settlement_baseline_days"`
	SpeedPenaltyPerDay     float64 `yaml:"speed_penalty_per_day" json:"speed_penalty_per_day"`

	// Deposit score benchmark (percent of bid).
	DepositBenchmarkPct float64 `yaml:"deposit_benchmark_pct" json:"deposit_benchmark_pct"`

	// Certainty score: base and per-condition bonuses.
	CertaintyBase         float64 `yaml:"certainty_base" json:"certainty_base"`
	CashBuyerBonus        float64 `yaml:"cash_buyer_bonus" json:"cash_buyer_bonus"`
	FinanceApprovedBonus  float64 `yaml:"finance_approved_bonus" json:"finance_approved_bonus"`
	NoFinanceClauseBonus  float64 `yaml:"no_finance_clause_bonus" json:"no_finance_clause_bonus"`
	NoBuildingClauseBonus float64 `yaml:"no_building_clause_bonus" json:"no_building_clause_bonus"`
	NoPestClauseBonus     float64 `yaml:"no_pest_clause_bonus" json:"no_pest_clause_bonus"`
	NoStrataClauseBonus   float64 `yaml:"no_strata_clause_bonus" json:"no_strata_clause_bonus"`

	// Final blend of preference score and benefit score.
	PreferenceBlend float64 `yaml:"preference_blend" json:"preference_blend"`
	BenefitBlend    float64 `yaml:"benefit_blend" json:"benefit_blend"`
}

// DefaultAssumptions returns the reference scoring constants.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		OpportunityCostRate:      0.05,
		DepositAccessRate:        0.03,
		EarlySettlementDays:      30,
		EarlySettlementBonusRate: 0.01,
		SettlementBaselineDays:   14,
		SpeedPenaltyPerDay:       2,
		DepositBenchmarkPct:      20,
		CertaintyBase:            50,
		CashBuyerBonus:           30,
		FinanceApprovedBonus:     20,
		NoFinanceClauseBonus:     15,
		NoBuildingClauseBonus:    10,
		NoPestClauseBonus:        10,
		NoStrataClauseBonus:      5,
		PreferenceBlend:          0.7,
		BenefitBlend:             0.3,
	}
}
