package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"seriestat/domain/series"
	"seriestat/internal/errors"

	"github.com/xuri/excelize/v2"
)

// DataReader loads a two-column series from CSV or XLSX files
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a reader for the given path, picking the format from
// the file extension
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "csv"
	if ext == ".xlsx" {
		fileType = "xlsx"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// Read loads the file into a Series. The header row supplies the column
// titles; data is taken from the first two columns regardless of how many
// the file carries (the count is kept on the series for the caller to warn
// about).
func (r *DataReader) Read() (*series.Series, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.SourceError(r.filePath, err)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		rows, err = r.readCSVRows()
	}
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return nil, errors.EmptyDataset(r.filePath)
	}

	return r.buildSeries(rows)
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.SourceError(r.filePath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.SourceError(r.filePath, err)
	}
	return rows, nil
}

func (r *DataReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.SourceError(r.filePath, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, errors.SourceError(r.filePath, err)
	}
	return rows, nil
}

func (r *DataReader) buildSeries(rows [][]string) (*series.Series, error) {
	header := rows[0]
	columnCount := len(header)
	if columnCount < 2 {
		return nil, errors.InvalidInput(
			fmt.Sprintf("%s has %d column(s); X and Y data are expected in the first and second columns", r.filePath, columnCount))
	}

	xTitle := strings.TrimSpace(header[0])
	yTitle := strings.TrimSpace(header[1])

	x := make([]float64, 0, len(rows)-1)
	y := make([]float64, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) < 2 {
			return nil, errors.InvalidInput(
				fmt.Sprintf("row %d of %s has %d cell(s), expected 2", i+2, r.filePath, len(row)))
		}

		xv, err := parseX(row[0])
		if err != nil {
			return nil, errors.InvalidInput(
				fmt.Sprintf("row %d of %s: non-numeric X value %q", i+2, r.filePath, row[0]))
		}
		yv, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return nil, errors.InvalidInput(
				fmt.Sprintf("row %d of %s: non-numeric Y value %q", i+2, r.filePath, row[1]))
		}

		x = append(x, xv)
		y = append(y, yv)
	}

	if len(y) == 0 {
		return nil, errors.EmptyDataset(r.filePath)
	}

	s, err := series.New(series.Stem(r.filePath), xTitle, yTitle, x, y)
	if err != nil {
		return nil, err
	}
	s.Source = r.filePath
	s.ColumnCount = columnCount
	return s, nil
}

// xTimeFormats are tried when the independent column is not plain numeric
var xTimeFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
}

// parseX parses an independent-variable cell. Plain numbers are the common
// case; timestamp strings are converted to Unix seconds so the line charts
// keep a numeric axis.
func parseX(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if v, err := strconv.ParseFloat(cell, 64); err == nil {
		return v, nil
	}
	for _, format := range xTimeFormats {
		if ts, err := time.Parse(format, cell); err == nil {
			return float64(ts.Unix()), nil
		}
	}
	return 0, fmt.Errorf("unparseable value %q", cell)
}
