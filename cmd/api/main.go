package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	apiBidding "property_valuation/pkg/api/bidding"
	"property_valuation/pkg/api/config"
	apiEvidence "property_valuation/pkg/api/evidence"
	apiQualify "property_valuation/pkg/api/qualify"
	apiReport "property_valuation/pkg/api/report"
	"property_valuation/pkg/api/valuation"
	"property_valuation/pkg/core/assumptions"
	"property_valuation/pkg/core/store"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Load the rate card (fail-open: missing file -> defaults)
	cardPath := os.Getenv("RATE_CARD_PATH")
	if cardPath == "" {
		cardPath = "config/assumptions.yaml"
	}
	cfg, err := assumptions.LoadFile(cardPath)
	if err != nil {
		fmt.Printf("[WARNING] Failed to load rate card: %v\n", err)
		fmt.Println("  Falling back to compiled-in defaults")
	} else {
		fmt.Printf("[CONFIG] Rate card loaded from %s\n", cardPath)
	}
	assumptions.SetActive(cfg)

	// Report store: DB when DATABASE_URL is set, file store otherwise
	ctx := context.Background()
	var reportStore *store.ReportStore
	if os.Getenv("DATABASE_URL") != "" {
		if err := store.InitDB(ctx); err != nil {
			fmt.Printf("[WARNING] DB init failed, using file store: %v\n", err)
			reportStore = store.NewReportStore(nil, "")
		} else {
			reportStore = store.NewReportStore(store.GetPool(), "")
			defer store.Close()
		}
	} else {
		reportStore = store.NewReportStore(nil, "")
	}

	// Calculator endpoints
	http.HandleFunc("/api/valuation/signage", valuation.HandleSignage)
	http.HandleFunc("/api/valuation/platform", valuation.HandlePlatform)
	http.HandleFunc("/api/bids/score", apiBidding.HandleScore)
	http.HandleFunc("/api/bidders/assess", apiQualify.HandleAssess)

	// Report endpoints
	reportHandler := apiReport.NewHandler(reportStore)
	http.HandleFunc("/api/reports", reportHandler.HandleSave)
	http.HandleFunc("/api/reports/get", reportHandler.HandleGet)
	http.HandleFunc("/api/reports/list", reportHandler.HandleList)
	http.HandleFunc("/api/reports/delete", reportHandler.HandleDelete)
	http.HandleFunc("/api/reports/import", reportHandler.HandleImport)
	http.HandleFunc("/api/reports/summary", reportHandler.HandleSummary)
	http.HandleFunc("/api/reports/finalize", reportHandler.HandleFinalize)

	// Sales evidence import
	http.HandleFunc("/api/evidence/parse-table", apiEvidence.HandleParseTable)

	// Rate card endpoints
	http.HandleFunc("/api/config/assumptions", config.HandleAssumptions)
	http.HandleFunc("/api/config/assumptions/update", config.HandleUpdateAssumptions)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("API server starting on :%s...\n", port)
	fmt.Println("  - POST /api/valuation/signage")
	fmt.Println("  - POST /api/valuation/platform")
	fmt.Println("  - POST /api/bids/score")
	fmt.Println("  - POST /api/bidders/assess")
	fmt.Println("  - POST /api/reports  (save)")
	fmt.Println("  - GET  /api/reports/get?id=")
	fmt.Println("  - GET  /api/reports/list")
	fmt.Println("  - POST /api/reports/import  (tolerant JSON)")
	fmt.Println("  - GET  /api/reports/summary?id=")
	fmt.Println("  - POST /api/evidence/parse-table")
	fmt.Println("  - GET  /api/config/assumptions")

	if err := http.ListenAndServe(":"+port, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
