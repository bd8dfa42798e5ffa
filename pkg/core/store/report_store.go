package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"property_valuation/pkg/models"
)

// ReportStore persists valuation report documents.
// Hybrid: DB (primary) with a file-system fallback for local use.
type ReportStore struct {
	pool    *pgxpool.Pool
	fileDir string
}

// NewReportStore creates a report store. If pool is nil it falls back
// to a file-based store in dir (defaulting to .cache/reports).
func NewReportStore(pool *pgxpool.Pool, dir string) *ReportStore {
	if pool == nil && dir == "" {
		dir = filepath.Join(".cache", "reports")
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Printf("[WARNING] Check report store dir: %v\n", err)
		}
	}
	return &ReportStore{pool: pool, fileDir: dir}
}

// ReportHeader is the listing view of a stored report.
type ReportHeader struct {
	ID        string              `json:"id"`
	Address   string              `json:"address"`
	Status    models.ReportStatus `json:"status"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// Save upserts a report. A report without an ID is assigned one and
// stamped as created now.
func (s *ReportStore) Save(ctx context.Context, report *models.ValuationReport) error {
	now := time.Now()
	if report.ID == "" {
		report.ID = uuid.New().String()
		report.CreatedAt = now
	}
	if report.Status == "" {
		report.Status = models.StatusDraft
	}
	report.UpdatedAt = now

	dataJSON, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	// 1. DB
	if s.pool != nil {
		query := `
			INSERT INTO valuation_reports (id, address, status, data, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id)
			DO UPDATE SET
				address = EXCLUDED.address,
				status = EXCLUDED.status,
				data = EXCLUDED.data,
				updated_at = EXCLUDED.updated_at
		`
		_, err = s.pool.Exec(ctx, query,
			report.ID, report.Address(), string(report.Status), dataJSON,
			report.CreatedAt, report.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to save report to db: %w", err)
		}
		return nil
	}

	// 2. File fallback
	if s.fileDir != "" {
		if err := os.WriteFile(s.reportPath(report.ID), dataJSON, 0644); err != nil {
			return fmt.Errorf("failed to save report file: %w", err)
		}
	}
	return nil
}

// Get retrieves a report by ID. Returns (nil, nil) when absent.
func (s *ReportStore) Get(ctx context.Context, id string) (*models.ValuationReport, error) {
	if s.pool != nil {
		query := `SELECT data FROM valuation_reports WHERE id = $1 LIMIT 1`
		var dataJSON []byte
		if err := s.pool.QueryRow(ctx, query, id).Scan(&dataJSON); err != nil {
			return nil, nil // not found
		}
		var report models.ValuationReport
		if err := json.Unmarshal(dataJSON, &report); err != nil {
			return nil, fmt.Errorf("failed to unmarshal stored report: %w", err)
		}
		return &report, nil
	}

	if s.fileDir != "" {
		bytes, err := os.ReadFile(s.reportPath(id))
		if err != nil {
			return nil, nil
		}
		var report models.ValuationReport
		if err := json.Unmarshal(bytes, &report); err != nil {
			return nil, fmt.Errorf("failed to unmarshal stored report: %w", err)
		}
		return &report, nil
	}

	return nil, nil
}

// List returns the headers of all stored reports, most recently
// updated first.
func (s *ReportStore) List(ctx context.Context) ([]ReportHeader, error) {
	if s.pool != nil {
		query := `SELECT id, address, status, updated_at FROM valuation_reports ORDER BY updated_at DESC`
		rows, err := s.pool.Query(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("failed to list reports: %w", err)
		}
		defer rows.Close()

		headers := []ReportHeader{}
		for rows.Next() {
			var h ReportHeader
			var status string
			if err := rows.Scan(&h.ID, &h.Address, &status, &h.UpdatedAt); err != nil {
				return nil, err
			}
			h.Status = models.ReportStatus(status)
			headers = append(headers, h)
		}
		return headers, rows.Err()
	}

	// File fallback: scan the directory
	headers := []ReportHeader{}
	if s.fileDir != "" {
		entries, err := os.ReadDir(s.fileDir)
		if err != nil {
			return headers, nil
		}
		for _, e := range entries {
			if filepath.Ext(e.Name()) != ".json" {
				continue
			}
			report, err := s.Get(ctx, strings.TrimSuffix(e.Name(), ".json"))
			if err != nil || report == nil {
				continue
			}
			headers = append(headers, ReportHeader{
				ID:        report.ID,
				Address:   report.Address(),
				Status:    report.Status,
				UpdatedAt: report.UpdatedAt,
			})
		}
		sort.Slice(headers, func(i, j int) bool {
			return headers[i].UpdatedAt.After(headers[j].UpdatedAt)
		})
	}
	return headers, nil
}

// Delete removes a report. Deleting an absent report is not an error.
func (s *ReportStore) Delete(ctx context.Context, id string) error {
	if s.pool != nil {
		_, err := s.pool.Exec(ctx, `DELETE FROM valuation_reports WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete report: %w", err)
		}
		return nil
	}
	if s.fileDir != "" {
		if err := os.Remove(s.reportPath(id)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to delete report file: %w", err)
		}
	}
	return nil
}

// ImportDraft parses a report exported or hand-edited outside the app.
// Such files routinely carry trailing commas, comments, or unquoted
// keys, so the tolerant parse chain runs before unmarshalling. The
// imported document is stored as a fresh draft with a new ID.
func (s *ReportStore) ImportDraft(ctx context.Context, raw string) (*models.ValuationReport, error) {
	var report models.ValuationReport
	if err := SmartUnmarshal(raw, &report); err != nil {
		return nil, fmt.Errorf("draft import failed: %w", err)
	}

	// Imported documents never keep identity or finality.
	report.ID = ""
	report.Status = models.StatusDraft

	if err := s.Save(ctx, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (s *ReportStore) reportPath(id string) string {
	// IDs are UUIDs, but sanitize anyway for hand-made files
	safe := strings.ReplaceAll(id, string(filepath.Separator), "_")
	return filepath.Join(s.fileDir, safe+".json")
}
