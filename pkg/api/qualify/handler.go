// Package qualify exposes the bidder qualification engine over HTTP.
package qualify

import (
	"encoding/json"
	"fmt"
	"net/http"

	"property_valuation/pkg/core/assumptions"
	"property_valuation/pkg/core/qualify"
)

// HandleAssess scores the posted bidder profile.
func HandleAssess(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var input qualify.QualificationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res := qualify.AssessQualificationWith(input, assumptions.Active().Qualify)

	fmt.Printf("[QUALIFY] Assessed bidder: %.0f/100 (%s)\n", res.Score, res.Tier)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
