package ingest

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfPage is the extracted content of one statement page. When the
// page yielded a usable table, table holds its rows (header first) and
// lines is unused; otherwise lines carries the raw text for the
// pattern-matching fallback.
type pdfPage struct {
	number int
	table  [][]string
	lines  []string
}

// cellGap is the horizontal distance (in PDF points) between two text
// runs on the same row beyond which they belong to different table
// cells.
const cellGap = 15

// readPDF extracts every page of a statement PDF, reconstructing table
// cells from text-run coordinates. The underlying library panics on
// some malformed files, so extraction failures surface as one
// file-scoped error.
func readPDF(path string) (pages []pdfPage, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf library crashed: %v", r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	numPages := reader.NumPage()
	if numPages == 0 {
		return nil, errors.New("pdf has no pages")
	}

	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, rowErr := page.GetTextByRow()
		if rowErr != nil {
			continue
		}

		var grid [][]string
		var lines []string
		for _, row := range rows {
			cells := rowCells(row)
			if len(cells) == 0 {
				continue
			}
			grid = append(grid, cells)
			lines = append(lines, strings.Join(cells, " "))
		}

		p := pdfPage{number: i}
		if len(grid) >= 2 && len(grid[0]) >= 2 {
			p.table = grid
		} else {
			p.lines = lines
		}
		pages = append(pages, p)
	}
	return pages, nil
}

// rowCells groups the text runs of one row into cells, splitting where
// the horizontal gap between runs exceeds cellGap.
func rowCells(row *pdf.Row) []string {
	words := make([]pdf.Text, len(row.Content))
	copy(words, row.Content)
	sort.Slice(words, func(a, b int) bool { return words[a].X < words[b].X })

	var cells []string
	var cell strings.Builder
	var prevEnd float64
	for i, w := range words {
		if strings.TrimSpace(w.S) == "" {
			continue
		}
		if i > 0 && cell.Len() > 0 {
			if w.X-prevEnd > cellGap {
				cells = append(cells, strings.TrimSpace(cell.String()))
				cell.Reset()
			} else {
				cell.WriteByte(' ')
			}
		}
		cell.WriteString(w.S)
		prevEnd = w.X + w.W
	}
	if cell.Len() > 0 {
		cells = append(cells, strings.TrimSpace(cell.String()))
	}
	return cells
}
