package pipeline

import "zipcode-jp/internal/models"

// Deduplicate keeps the first occurrence of every distinct record, in input order.
func Deduplicate(records []models.Record) []models.Record {
	seen := make(map[models.Record]struct{}, len(records))
	unique := make([]models.Record, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		unique = append(unique, r)
	}
	return unique
}
