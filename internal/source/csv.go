package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"zipcode-jp/internal/models"
)

// ParseCSV parses KEN_ALL text into records. Every row must carry exactly
// models.FieldCount fields.
func ParseCSV(text string) ([]models.Record, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = models.FieldCount
	reader.ReuseRecord = true

	var records []models.Record
	for {
		values, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("source: failed to read record: %w", err)
		}

		r, err := models.NewRecord(values)
		if err != nil {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("source: line %d: %w", line, err)
		}
		records = append(records, r)
	}
	return records, nil
}
