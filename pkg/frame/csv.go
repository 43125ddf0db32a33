package frame

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
)

// missing reports whether a raw CSV cell marks a missing value.
func missing(s string) bool {
	return s == "" || s == "NA" || s == "NaN"
}

// ReadCSV loads a CSV file with a header row into a Frame. A column
// becomes numeric when every non-missing cell parses as a float;
// otherwise it stays a string column. Missing cells become NaN in
// numeric columns and "" in string columns.
func ReadCSV(path string) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("frame: %s has no header row", path)
	}
	headers := records[0]
	rows := records[1:]
	f := New(len(rows))

	for j, name := range headers {
		raw := make([]string, len(rows))
		numeric := true
		for i, rec := range rows {
			if j >= len(rec) {
				return nil, fmt.Errorf("frame: %s row %d has %d cells, want %d", path, i+1, len(rec), len(headers))
			}
			raw[i] = rec[j]
			if numeric && !missing(rec[j]) {
				if _, perr := strconv.ParseFloat(rec[j], 64); perr != nil {
					numeric = false
				}
			}
		}
		if numeric {
			vals := make([]float64, len(raw))
			for i, s := range raw {
				if missing(s) {
					vals[i] = math.NaN()
					continue
				}
				vals[i], _ = strconv.ParseFloat(s, 64)
			}
			if err := f.SetNumeric(name, vals); err != nil {
				return nil, err
			}
		} else {
			for i, s := range raw {
				if missing(s) {
					raw[i] = ""
				}
			}
			if err := f.SetStrings(name, raw); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}
