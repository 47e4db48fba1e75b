package service

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"polarplotter/config"
	"polarplotter/models"
)

// ParseUpload turns an uploaded spreadsheet into an InputTable. The file must
// follow the Label|Value schema; a header row is detected by its second column
// not being numeric and skipped. Extra columns are ignored.
func ParseUpload(filename string, r io.Reader) (models.InputTable, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return parseExcel(r)
	case ".csv":
		return parseCSVFile(r)
	default:
		return models.InputTable{}, fmt.Errorf("unsupported file type %q, expected .xlsx or .csv", filepath.Ext(filename))
	}
}

func parseExcel(r io.Reader) (models.InputTable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return models.InputTable{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return models.InputTable{}, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return models.InputTable{}, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	return rowsToTable(rows)
}

// rowsToTable converts raw string cells to the two-column table. Blank rows
// are skipped; any other malformed row rejects the whole upload so the user
// sees the problem instead of a silently truncated chart.
func rowsToTable(rows [][]string) (models.InputTable, error) {
	var table models.InputTable

	for i, row := range rows {
		if isBlankRow(row) {
			continue
		}
		if len(row) < 2 {
			return models.InputTable{}, fmt.Errorf("row %d has fewer than 2 columns", i+1)
		}

		label := strings.TrimSpace(row[0])
		raw := strings.TrimSpace(row[1])

		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			if i == 0 {
				// Header row (e.g. "Label", "Value").
				continue
			}
			return models.InputTable{}, fmt.Errorf("row %d: value %q is not a number", i+1, raw)
		}

		table.Rows = append(table.Rows, models.Row{Label: label, Value: value})
	}

	if len(table.Rows) == 0 {
		return models.InputTable{}, fmt.Errorf("no data rows found")
	}

	return table, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// LoadExampleTable parses the embedded example dataset.
func LoadExampleTable() (models.InputTable, error) {
	var table models.InputTable
	if err := json.Unmarshal([]byte(config.ExampleDataJSON), &table); err != nil {
		return models.InputTable{}, fmt.Errorf("failed to parse example dataset: %w", err)
	}
	return table, nil
}
