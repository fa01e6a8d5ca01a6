// Package xlsx reads price-list workbooks so they can be fed through the
// same normalization heuristics as delimited text.
package xlsx

import (
	"bytes"

	"github.com/xuri/excelize/v2"

	"github.com/maxsviluppo/prezzario"
)

// Reader converts XLSX workbooks into row records.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Rows returns the cell values of the first sheet of the workbook, row by
// row. Cells are returned as displayed strings, so formatted prices reach
// the numeric parser in their source form.
func (r *Reader) Rows(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, prezzario.Errorf(prezzario.EINVALID, "not a readable XLSX workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, prezzario.Errorf(prezzario.EINVALID, "workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, prezzario.Errorf(prezzario.EINVALID, "cannot read sheet %q: %v", sheets[0], err)
	}
	return rows, nil
}
