// Package valuation exposes the signage and platform calculators over
// HTTP. The calculators are pure; these handlers only decode, compute
// against the active rate card, and encode.
package valuation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"property_valuation/pkg/core/assumptions"
	"property_valuation/pkg/core/platform"
	"property_valuation/pkg/core/signage"
	"property_valuation/pkg/core/validate"
)

// HandleSignage computes a signage valuation from the posted input.
func HandleSignage(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var input signage.SignageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := signage.ComputeSignageValueWith(input, assumptions.Active().Signage)
	if err != nil {
		writeCalcError(w, err)
		return
	}

	fmt.Printf("[SIGNAGE] Valued %.0fx%.0f %d-sided: market value %.0f (%s risk)\n",
		input.Width, input.Height, input.Sides, res.MarketValue, res.RiskRating)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// HandlePlatform computes a digital platform valuation from the posted
// input.
func HandlePlatform(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var input platform.PlatformInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := platform.ComputeDigitalPlatformValueWith(input, assumptions.Active().Platform)
	if err != nil {
		writeCalcError(w, err)
		return
	}

	fmt.Printf("[PLATFORM] Valued platform: %.0f (net income %.0f, ROI %.1f%%)\n",
		res.PlatformValue, res.NetAnnualIncome, res.ROI)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// writeCalcError maps calculator failures onto HTTP statuses. Boundary
// validation failures are client errors and name the offending fields.
func writeCalcError(w http.ResponseWriter, err error) {
	var vErr *validate.ValidationError
	if errors.As(err, &vErr) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":  "validation failed",
			"fields": vErr.Fields,
		})
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
