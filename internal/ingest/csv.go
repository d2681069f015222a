package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// readCSV loads a delimited statement export and splits it into the
// header row and the data rows. Files are decoded as UTF-8 first; when
// the bytes are not valid UTF-8 the whole file is re-decoded as
// Latin-1 before giving up. Both failures here are file-scoped.
func readCSV(path string) (header []string, rows [][]string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	if !utf8.Valid(data) {
		data, err = charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return nil, nil, fmt.Errorf("decoding as latin-1: %w", err)
		}
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // ragged rows become row-scoped errors downstream
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parsing delimited text: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, errors.New("file contains no rows")
	}
	return records[0], records[1:], nil
}
