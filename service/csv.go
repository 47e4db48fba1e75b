package service

import (
	"encoding/csv"
	"fmt"
	"io"

	"polarplotter/models"
)

func parseCSVFile(r io.Reader) (models.InputTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // column count is validated per row

	rows, err := reader.ReadAll()
	if err != nil {
		return models.InputTable{}, fmt.Errorf("failed to parse CSV: %w", err)
	}

	return rowsToTable(rows)
}
