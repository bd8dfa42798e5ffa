// Package config exposes the active rate card for inspection and
// adjustment. Updates are process-local and not persisted.
package config

import (
	"encoding/json"
	"fmt"
	"net/http"

	"property_valuation/pkg/core/assumptions"
)

// HandleAssumptions returns the active rate card.
func HandleAssumptions(w http.ResponseWriter, r *http.Request) {
	// Add CORS headers for local dev
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(assumptions.Active())
}

// HandleUpdateAssumptions replaces the active rate card. Decoding
// starts from the active card, so absent sections keep their values.
func HandleUpdateAssumptions(w http.ResponseWriter, r *http.Request) {
	// Add CORS headers
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	cfg := assumptions.Active()
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	assumptions.SetActive(cfg)
	fmt.Printf("[CONFIG] Rate card updated\n")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cfg)
}
