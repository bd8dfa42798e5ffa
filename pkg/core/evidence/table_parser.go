// Package evidence parses comparable-sales tables pasted from listing
// pages into structured sales evidence records.
package evidence

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"property_valuation/pkg/models"
)

// Column roles recognised in a pasted table.
const (
	colAddress = iota
	colSaleDate
	colSalePrice
	colLandArea
	colBuildingArea
	colUnknown
)

// headerAliases maps lowercased header fragments to column roles.
// First match wins; unmatched headers are ignored.
var headerAliases = []struct {
	fragment string
	role     int
}{
	{"address", colAddress},
	{"property", colAddress},
	{"sale date", colSaleDate},
	{"date", colSaleDate},
	{"sale price", colSalePrice},
	{"price", colSalePrice},
	{"land", colLandArea},
	{"site area", colLandArea},
	{"building", colBuildingArea},
	{"floor area", colBuildingArea},
	{"gla", colBuildingArea},
}

// ParseSalesTable extracts comparable sales from pasted HTML. It scans
// every table in the fragment and parses the first one with a
// recognisable header row; a table with no price column is rejected.
func ParseSalesTable(html string) ([]models.ComparableSale, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse pasted HTML: %w", err)
	}

	var sales []models.ComparableSale
	var parseErr error
	found := false

	doc.Find("table").EachWithBreak(func(i int, table *goquery.Selection) bool {
		roles, headerIdx := detectHeader(table)
		if roles == nil {
			return true // no recognisable header, try the next table
		}
		found = true

		if !hasRole(roles, colSalePrice) {
			parseErr = fmt.Errorf("pasted table has no recognisable price column")
			return false
		}
		if !hasRole(roles, colAddress) {
			parseErr = fmt.Errorf("pasted table has no recognisable address column")
			return false
		}

		table.Find("tr").Slice(headerIdx+1, goquery.ToEnd).Each(func(j int, row *goquery.Selection) {
			sale := parseRow(row, roles)
			if sale != nil {
				sales = append(sales, *sale)
			}
		})
		return false
	})

	if parseErr != nil {
		return nil, parseErr
	}
	if !found {
		return nil, fmt.Errorf("no comparable-sales table found in pasted HTML")
	}
	return sales, nil
}

// detectHeader finds the first row where at least two cells match
// known header aliases, and returns the per-column role mapping.
func detectHeader(table *goquery.Selection) ([]int, int) {
	var roles []int
	headerIdx := -1

	table.Find("tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		cells := row.Find("td, th")
		if cells.Length() < 2 {
			return true
		}

		candidate := make([]int, cells.Length())
		matched := 0
		cells.Each(func(j int, cell *goquery.Selection) {
			candidate[j] = roleFor(cell.Text())
			if candidate[j] != colUnknown {
				matched++
			}
		})

		if matched >= 2 {
			roles = candidate
			headerIdx = i
			return false
		}
		return true
	})

	if headerIdx < 0 {
		return nil, -1
	}
	return roles, headerIdx
}

func roleFor(header string) int {
	h := strings.ToLower(strings.TrimSpace(header))
	if h == "" {
		return colUnknown
	}
	for _, alias := range headerAliases {
		if strings.Contains(h, alias.fragment) {
			return alias.role
		}
	}
	return colUnknown
}

func hasRole(roles []int, role int) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// parseRow maps one data row onto a ComparableSale. Rows without an
// address are skipped (subtotal and spacer rows).
func parseRow(row *goquery.Selection, roles []int) *models.ComparableSale {
	sale := models.ComparableSale{}
	row.Find("td, th").Each(func(j int, cell *goquery.Selection) {
		if j >= len(roles) {
			return
		}
		text := strings.TrimSpace(cell.Text())
		switch roles[j] {
		case colAddress:
			sale.Address = text
		case colSaleDate:
			sale.SaleDate = parseDate(text)
		case colSalePrice:
			sale.SalePrice = parseNumber(text)
		case colLandArea:
			sale.LandAreaSqm = parseNumber(text)
		case colBuildingArea:
			sale.BuildingAreaSqm = parseNumber(text)
		}
	})

	if sale.Address == "" {
		return nil
	}
	return &sale
}

// parseNumber strips currency and unit decoration from a cell value.
// Unparseable cells yield 0.
func parseNumber(text string) float64 {
	cleaned := strings.NewReplacer("$", "", ",", "", "sqm", "", "m2", "", "m²", "").Replace(text)
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" || cleaned == "-" {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

var dateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"2006-01-02",
	"2 Jan 2006",
	"Jan 2006",
	"01/2006",
}

// parseDate tries the date layouts that appear in pasted sales tables.
// Unparseable cells yield the zero time.
func parseDate(text string) time.Time {
	text = strings.TrimSpace(text)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t
		}
	}
	return time.Time{}
}
