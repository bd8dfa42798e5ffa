package signage

// Assumptions holds the market premium tables and risk thresholds used
// when capitalising signage income. Values come from the rate card
// config at runtime; DefaultAssumptions is the compiled-in fallback.
type Assumptions struct {
	// Demographic tier -> percentage uplift on capitalised value.
	// Unlisted tiers attract no premium.
	DemographicPremiums map[string]float64 `yaml:"demographic_premiums" json:"demographic_premiums"`

	// Uplift for digital display capability.
	DigitalPremium float64 `yaml:"digital_premium" json:"digital_premium"`

	// Display face count -> percentage uplift. Single-sided structures
	// attract no premium.
	MultiSidePremiums map[int]float64 `yaml:"multi_side_premiums" json:"multi_side_premiums"`

	// Remaining lease term thresholds (years) for the risk rating.
	ShortLeaseYears  float64 `yaml:"short_lease_years" json:"short_lease_years"`
	MediumLeaseYears float64 `yaml:"medium_lease_years" json:"medium_lease_years"`
}

// DefaultAssumptions returns the standard premium table.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		DemographicPremiums: map[string]float64{
			"high-income":   15,
			"medium-income": 8,
			"mixed":         3,
			"low-income":    0,
		},
		DigitalPremium: 20,
		MultiSidePremiums: map[int]float64{
			2: 10,
			3: 15,
		},
		ShortLeaseYears:  3,
		MediumLeaseYears: 7,
	}
}
