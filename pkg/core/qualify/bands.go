package qualify

// Bands holds the affordability constants used by the assessment.
// Point-band thresholds are fixed (behavioural parity with the
// reference rules); only the affordability heuristics are tunable.
type Bands struct {
	// Share of net income assumed serviceable as a payment.
	PaymentToIncomeRule float64 `yaml:"payment_to_income_rule" json:"payment_to_income_rule"`
	// Income-multiple capitalisation factor (years).
	CapitalisationYears float64 `yaml:"capitalisation_years" json:"capitalisation_years"`
	// Minimum deposit as a share of property value.
	MinimumDepositRate float64 `yaml:"minimum_deposit_rate" json:"minimum_deposit_rate"`
	// Recommended deposit as a share of property value.
	RecommendedDepositRate float64 `yaml:"recommended_deposit_rate" json:"recommended_deposit_rate"`
}

// DefaultBands returns the standard affordability constants.
func DefaultBands() Bands {
	return Bands{
		PaymentToIncomeRule:    0.28,
		CapitalisationYears:    25,
		MinimumDepositRate:     0.10,
		RecommendedDepositRate: 0.20,
	}
}
