package grid

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/iosefa/pixltsnorm/harmonize"
)

// CSVOptions holds options for loading wide-format sensor tables: one row
// per pixel, one column per acquisition date, plus optional metadata
// columns (lon/lat by convention).
type CSVOptions struct {
	TimeFormat  string   // Layout for date column headers (default "2006-01")
	SkipColumns []string // Metadata columns to ignore (default lon, lat)
	Delimiter   rune     // Field delimiter (default ',')
	Name        string   // Sensor name for the resulting grid
}

// DefaultCSVOptions returns default options for grid loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		TimeFormat:  "2006-01",
		SkipColumns: []string{"lon", "lat"},
		Delimiter:   ',',
	}
}

// LoadCSV loads a wide-format sensor table from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Grid, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a wide-format sensor table from an io.Reader.
// Header columns parsing as dates under TimeFormat become the time axis;
// columns listed in SkipColumns, or not parseable as dates, are ignored.
// Empty, "NA", "NaN", "null", and unparseable cells become NaN.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Grid, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}

	skip := make(map[string]bool, len(opts.SkipColumns))
	for _, c := range opts.SkipColumns {
		skip[c] = true
	}

	type dateCol struct {
		col int
		ts  time.Time
	}
	var cols []dateCol
	for i, h := range header {
		h = strings.TrimSpace(strings.Trim(h, "\""))
		if skip[h] {
			continue
		}
		ts, perr := time.Parse(opts.TimeFormat, h)
		if perr != nil {
			continue
		}
		cols = append(cols, dateCol{col: i, ts: ts})
	}
	if len(cols) == 0 {
		return nil, errors.New("grid: no date columns found in CSV header")
	}
	sort.Slice(cols, func(i, j int) bool { return cols[i].ts.Before(cols[j].ts) })

	times := make([]time.Time, len(cols))
	for i, c := range cols {
		times[i] = c.ts
	}

	var data [][]float64
	for {
		record, rerr := reader.Read()
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return nil, rerr
		}

		row := make([]float64, len(cols))
		for i, c := range cols {
			row[i] = math.NaN()
			if c.col >= len(record) {
				continue
			}
			cell := strings.TrimSpace(strings.Trim(record[c.col], "\""))
			if cell == "" || cell == "NA" || cell == "NaN" || cell == "null" {
				continue
			}
			if v, verr := strconv.ParseFloat(cell, 64); verr == nil {
				row[i] = v
			}
		}
		data = append(data, row)
	}

	return New(opts.Name, times, data)
}

// WriteTransformsCSV writes a per-pixel chain result as CSV: one row per
// pixel with a slope and intercept column per sensor. Undefined
// transforms are written as NaN, which strconv round-trips exactly, so a
// written table reloads without losing the sentinel.
func WriteTransformsCSV(w io.Writer, res *RowChainResult, names []string) error {
	nSensors := 0
	if len(res.Rows) > 0 {
		nSensors = len(res.Rows[0])
	}

	header := []string{"row"}
	for s := 0; s < nSensors; s++ {
		name := fmt.Sprintf("sensor%d", s)
		if s < len(names) && names[s] != "" {
			name = names[s]
		}
		header = append(header, name+"_slope", name+"_intercept")
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return err
	}

	for r, row := range res.Rows {
		record := []string{strconv.Itoa(r)}
		for _, tr := range row {
			record = append(record,
				strconv.FormatFloat(tr.Slope, 'g', -1, 64),
				strconv.FormatFloat(tr.Intercept, 'g', -1, 64),
			)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// LoadTransformsCSV reads a table written by WriteTransformsCSV.
func LoadTransformsCSV(r io.Reader, target int) (*RowChainResult, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	if (len(header)-1)%2 != 0 {
		return nil, errors.New("grid: transform CSV needs slope/intercept column pairs")
	}
	nSensors := (len(header) - 1) / 2

	res := &RowChainResult{Target: target}
	for {
		record, rerr := reader.Read()
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return nil, rerr
		}

		row := make([]harmonize.Transform, nSensors)
		for s := 0; s < nSensors; s++ {
			slope, serr := strconv.ParseFloat(record[1+2*s], 64)
			intercept, ierr := strconv.ParseFloat(record[2+2*s], 64)
			if serr != nil || ierr != nil {
				return nil, errors.New("grid: malformed transform CSV cell")
			}
			// NewTransform collapses a partially NaN pair back to the
			// full undefined sentinel.
			row[s] = harmonize.NewTransform(slope, intercept)
		}
		res.Rows = append(res.Rows, row)
	}
	return res, nil
}
