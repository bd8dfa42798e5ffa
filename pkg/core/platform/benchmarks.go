package platform

// Assumptions holds the market benchmarks the platform valuation
// normalises against. Loadable from the rate card config.
type Assumptions struct {
	// Capitalisation rate applied to net annual income (fraction).
	PlatformCapRate float64 `yaml:"platform_cap_rate" json:"platform_cap_rate"`

	// Quality adjustment: value multiplier runs from Floor (score 0)
	// to Floor+Range (score 100).
	QualityMultiplierFloor float64 `yaml:"quality_multiplier_floor" json:"quality_multiplier_floor"`
	QualityMultiplierRange float64 `yaml:"quality_multiplier_range" json:"quality_multiplier_range"`
	// Weight of the audience score in the blended quality score; the
	// remainder goes to the tech score.
	AudienceBlendWeight float64 `yaml:"audience_blend_weight" json:"audience_blend_weight"`

	// Sub-metric benchmarks (score 100 at the benchmark).
	ImpressionsBenchmark    float64 `yaml:"impressions_benchmark" json:"impressions_benchmark"`
	UniqueViewersBenchmark  float64 `yaml:"unique_viewers_benchmark" json:"unique_viewers_benchmark"`
	ScreenSizeBenchmark     float64 `yaml:"screen_size_benchmark" json:"screen_size_benchmark"`
	OperatingHoursBenchmark float64 `yaml:"operating_hours_benchmark" json:"operating_hours_benchmark"`
	SlotsPerHourBenchmark   float64 `yaml:"slots_per_hour_benchmark" json:"slots_per_hour_benchmark"`
	ContractYearsBenchmark  float64 `yaml:"contract_years_benchmark" json:"contract_years_benchmark"`

	// Recommendation thresholds
	LowOccupancyThreshold float64 `yaml:"low_occupancy_threshold" json:"low_occupancy_threshold"`
	LowCPMThreshold       float64 `yaml:"low_cpm_threshold" json:"low_cpm_threshold"`
	ShortContractYears    float64 `yaml:"short_contract_years" json:"short_contract_years"`
}

// DefaultAssumptions returns the standard digital out-of-home
// benchmarks.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		PlatformCapRate:         0.12,
		QualityMultiplierFloor:  0.8,
		QualityMultiplierRange:  0.4,
		AudienceBlendWeight:     0.6,
		ImpressionsBenchmark:    50000,
		UniqueViewersBenchmark:  20000,
		ScreenSizeBenchmark:     20,
		OperatingHoursBenchmark: 18,
		SlotsPerHourBenchmark:   120,
		ContractYearsBenchmark:  5,
		LowOccupancyThreshold:   60,
		LowCPMThreshold:         4,
		ShortContractYears:      2,
	}
}
