// Package report exposes the report document endpoints: draft CRUD,
// tolerant import, summary assembly, and finalisation.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	coreReport "property_valuation/pkg/core/report"
	"property_valuation/pkg/core/store"
	"property_valuation/pkg/models"
)

// Handler holds the store dependency for the report endpoints.
type Handler struct {
	Store *store.ReportStore
}

// NewHandler creates a report handler backed by the given store.
func NewHandler(s *store.ReportStore) *Handler {
	return &Handler{Store: s}
}

func cors(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// HandleSave upserts the posted report document. Market commentary is
// cleaned and structurally validated before storage.
func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	cors(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var report models.ValuationReport
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if report.Commentary != nil && report.Commentary.Body != "" {
		report.Commentary.Body = coreReport.CleanCommentary(report.Commentary.Body)
		if !coreReport.ValidCommentary(report.Commentary.Body) {
			http.Error(w, "market commentary is not valid markdown", http.StatusBadRequest)
			return
		}
	}

	if err := h.Store.Save(r.Context(), &report); err != nil {
		fmt.Printf("[REPORT] Save failed: %v\n", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	fmt.Printf("[REPORT] Saved %s (%s)\n", report.ID, report.Address())
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

// HandleGet fetches a report by the id query parameter.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	cors(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing id parameter", http.StatusBadRequest)
		return
	}

	report, err := h.Store.Get(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if report == nil {
		http.Error(w, fmt.Sprintf("report not found: %s", id), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

// HandleList returns the stored report headers.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	cors(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	headers, err := h.Store.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(headers)
}

// HandleDelete removes a report by the id query parameter.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	cors(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing id parameter", http.StatusBadRequest)
		return
	}

	if err := h.Store.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleImport accepts an exported report document, possibly
// hand-edited, and stores it as a fresh draft via the tolerant parser.
func (h *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	cors(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := h.Store.ImportDraft(r.Context(), string(raw))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fmt.Printf("[REPORT] Imported draft %s (%s)\n", report.ID, report.Address())
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

// HandleSummary assembles the headline summary for a stored report.
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	cors(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing id parameter", http.StatusBadRequest)
		return
	}

	report, err := h.Store.Get(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if report == nil {
		http.Error(w, fmt.Sprintf("report not found: %s", id), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(coreReport.BuildSummary(report))
}

// HandleFinalize moves a draft to final when the finalisation rule
// allows it.
func (h *Handler) HandleFinalize(w http.ResponseWriter, r *http.Request) {
	cors(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing id parameter", http.StatusBadRequest)
		return
	}

	report, err := h.Store.Get(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if report == nil {
		http.Error(w, fmt.Sprintf("report not found: %s", id), http.StatusNotFound)
		return
	}

	if err := coreReport.Finalize(report); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err := h.Store.Save(r.Context(), report); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	fmt.Printf("[REPORT] Finalised %s\n", report.ID)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}
