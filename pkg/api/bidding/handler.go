// Package bidding exposes the bid scoring engine over HTTP.
package bidding

import (
	"encoding/json"
	"fmt"
	"net/http"

	"property_valuation/pkg/core/assumptions"
	"property_valuation/pkg/core/bidding"
)

// ScoreRequest carries the comparison set and the vendor's priorities.
type ScoreRequest struct {
	Bids    []bidding.BidInput            `json:"bids"`
	Weights bidding.VendorPriorityWeights `json:"weights"`
}

// HandleScore ranks the posted bids against the vendor priorities.
func HandleScore(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	results := bidding.ScoreBidsWith(req.Bids, req.Weights, assumptions.Active().Bidding)

	if len(results) > 0 {
		fmt.Printf("[BIDS] Scored %d bids, top: %s (%.0f)\n",
			len(results), results[0].BidderName, results[0].TotalScore)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}
