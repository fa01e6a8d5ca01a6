// Package csv normalizes raw delimited price-list text into validated
// price list records.
//
// The parsing here is deliberately NOT RFC 4180: column detection is a
// substring heuristic over the header row, fields are split on bare
// delimiters with quote characters stripped, and ragged rows are tolerated.
// Existing exported data depends on these exact heuristics, so they must
// not be "improved".
package csv

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/maxsviluppo/prezzario"
)

// Ordered candidate-name lists for heuristic header detection, matched
// case-insensitively as substrings. First matching header column wins.
var (
	codeColumns        = []string{"codice", "code", "cod", "id"}
	descriptionColumns = []string{"descrizione", "description", "desc", "voce"}
	unitColumns        = []string{"unità", "unita", "unit", "um", "u.m.", "misura"}
	priceColumns       = []string{"prezzo", "price", "importo", "costo", "euro", "€"}
	categoryColumns    = []string{"categoria", "category", "cat", "tipo", "capitolo"}
)

// Defaults substituted for absent optional fields.
const (
	DefaultUnit     = "cad"
	DefaultCategory = "Generale"
)

// Options configures one normalization run. Region, municipality and year
// are supplied by the caller and stamped onto every item in the batch; they
// are never read from the source columns.
type Options struct {
	// Name of the resulting price list. Falls back to Source when empty.
	Name string

	Region       string
	Municipality string

	// Year defaults to the current calendar year when zero; the source
	// file is not assumed to carry a year.
	Year int

	// Source records the origin filename or URL.
	Source string

	// AllowSemicolon widens the delimiter set from comma-only to
	// comma-or-semicolon. The remote/URL ingestion path enables it; the
	// local-file path does not.
	AllowSemicolon bool
}

// Result is the outcome of a normalization run. Skipped counts rows
// dropped for short value lists or unparsable prices.
type Result struct {
	PriceList *prezzario.PriceList
	Accepted  int
	Skipped   int
}

// Normalizer transforms raw delimited text into uniform price list records.
type Normalizer struct {
	now func() time.Time
}

// NewNormalizer creates a new Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{now: time.Now}
}

// Normalize parses raw delimited text into a price list. The first
// non-blank line is the header; code, description and price columns are
// mandatory. Rows that fail the value-count or price checks are skipped,
// and the run fails only when no row survives.
func (n *Normalizer) Normalize(raw string, opts Options) (*Result, error) {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, prezzario.Errorf(prezzario.EINVALID, "CSV input is empty")
	}

	records := make([][]string, 0, len(lines))
	for _, line := range lines {
		records = append(records, splitFields(line, opts.AllowSemicolon))
	}
	return n.NormalizeRecords(records, opts)
}

// NormalizeRecords is the row-based core of Normalize; the workbook
// ingestion path feeds already-split records through it so both paths share
// one set of heuristics. records[0] is the header.
func (n *Normalizer) NormalizeRecords(records [][]string, opts Options) (*Result, error) {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		if !blankRecord(rec) {
			rows = append(rows, rec)
		}
	}
	if len(rows) == 0 {
		return nil, prezzario.Errorf(prezzario.EINVALID, "CSV input is empty")
	}

	header := rows[0]
	rows = rows[1:]

	codeIdx := findColumn(header, codeColumns)
	descIdx := findColumn(header, descriptionColumns)
	priceIdx := findColumn(header, priceColumns)
	unitIdx := findColumn(header, unitColumns)
	categoryIdx := findColumn(header, categoryColumns)

	if codeIdx < 0 || descIdx < 0 || priceIdx < 0 {
		return nil, prezzario.Errorf(prezzario.EINVALID, "CSV must contain code, description, price columns")
	}

	year := opts.Year
	if year == 0 {
		year = n.now().Year()
	}

	minLen := codeIdx
	if descIdx > minLen {
		minLen = descIdx
	}
	if priceIdx > minLen {
		minLen = priceIdx
	}

	var items []*prezzario.PriceListItem
	skipped := 0
	for rowNum, values := range rows {
		values = repairDecimalOverflow(values, len(header), priceIdx)
		if len(values) <= minLen {
			skipped++
			continue
		}

		price, err := ParsePrice(values[priceIdx])
		if err != nil {
			skipped++
			continue
		}

		code := values[codeIdx]
		if code == "" {
			code = "VOCE-" + strconv.Itoa(rowNum+1)
		}
		description := values[descIdx]
		if description == "" {
			description = "Voce n. " + strconv.Itoa(rowNum+1)
		}

		items = append(items, &prezzario.PriceListItem{
			ID:           uuid.New().String(),
			Code:         code,
			Description:  description,
			Unit:         cellOrDefault(values, unitIdx, DefaultUnit),
			Price:        price,
			Category:     cellOrDefault(values, categoryIdx, DefaultCategory),
			Region:       opts.Region,
			Municipality: opts.Municipality,
			Year:         year,
		})
	}

	if len(items) == 0 {
		return nil, prezzario.Errorf(prezzario.EINVALID, "no valid rows in CSV input")
	}

	name := opts.Name
	if name == "" {
		name = opts.Source
	}

	pl := &prezzario.PriceList{
		ID:           uuid.New().String(),
		Name:         name,
		Region:       opts.Region,
		Municipality: opts.Municipality,
		Year:         year,
		Source:       opts.Source,
		ImportDate:   n.now().UTC(),
		ItemCount:    len(items),
		Items:        items,
	}
	return &Result{PriceList: pl, Accepted: len(items), Skipped: skipped}, nil
}

// splitFields splits one line on the delimiter set and strips quote
// characters. Quoting is NOT honored as an escape mechanism: a delimiter
// inside quotes still splits.
func splitFields(line string, allowSemicolon bool) []string {
	var out []string
	start := 0
	for i, r := range line {
		if r == ',' || (allowSemicolon && r == ';') {
			out = append(out, cleanField(line[start:i]))
			start = i + 1
		}
	}
	out = append(out, cleanField(line[start:]))
	return out
}

func cleanField(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, `"`, ""))
}

// repairDecimalOverflow re-joins a comma-decimal price that the delimiter
// split into separate fields. When a row carries more fields than the
// header has columns and every surplus fragment around the price column is
// a bare numeric run, the window is merged back with a comma so that
// "…,12,50,Scavi" under a five-column header yields the price token
// "12,50" and keeps later columns aligned.
func repairDecimalOverflow(values []string, headerLen, priceIdx int) []string {
	overflow := len(values) - headerLen
	if overflow <= 0 || priceIdx < 0 || priceIdx+overflow >= len(values) {
		return values
	}
	for i := priceIdx; i <= priceIdx+overflow; i++ {
		if !numericFragment(values[i]) {
			return values
		}
	}

	out := make([]string, 0, headerLen)
	out = append(out, values[:priceIdx]...)
	out = append(out, strings.Join(values[priceIdx:priceIdx+overflow+1], ","))
	out = append(out, values[priceIdx+overflow+1:]...)
	return out
}

// numericFragment reports whether s is a run of digits and dots starting
// with a digit, e.g. "12", "50" or "1.234".
func numericFragment(s string) bool {
	if s == "" || s[0] < '0' || s[0] > '9' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if (s[i] < '0' || s[i] > '9') && s[i] != '.' {
			return false
		}
	}
	return true
}

func blankRecord(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// findColumn returns the index of the first header column containing any
// of the candidate names, case-insensitively, or -1.
func findColumn(header []string, candidates []string) int {
	for i, col := range header {
		lower := strings.ToLower(col)
		for _, cand := range candidates {
			if strings.Contains(lower, cand) {
				return i
			}
		}
	}
	return -1
}

func cellOrDefault(values []string, idx int, def string) string {
	if idx < 0 || idx >= len(values) || values[idx] == "" {
		return def
	}
	return values[idx]
}

