// Package evidence exposes the pasted-table sales evidence parser.
package evidence

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"property_valuation/pkg/core/evidence"
)

// HandleParseTable parses a pasted HTML fragment into comparable sale
// records. The body is raw HTML, not JSON.
func HandleParseTable(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	html, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sales, err := evidence.ParseSalesTable(string(html))
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	fmt.Printf("[EVIDENCE] Parsed %d comparable sales from pasted table\n", len(sales))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sales)
}
