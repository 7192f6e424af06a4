package pipeline

import (
	"strings"

	"zipcode-jp/internal/models"
)

// Minimize derives the public projection of r. The town name drops the
// "no details" sentinel and any parenthesised detail.
func Minimize(r models.Record) models.Minimized {
	return models.Minimized{
		ZipCode:    r.ZipCodeValue(),
		Prefecture: r.Get(models.FieldPrefecture),
		City:       r.Get(models.FieldCity),
		Town:       minimizeTown(r.Get(models.FieldTown)),
	}
}

func minimizeTown(town string) string {
	if town == models.TownNoDetails {
		return ""
	}
	before, _, _ := strings.Cut(town, models.OpenBracket)
	return before
}

// MinimizeAll applies Minimize to each record.
func MinimizeAll(records []models.Record) []models.Minimized {
	minimized := make([]models.Minimized, len(records))
	for i, r := range records {
		minimized[i] = Minimize(r)
	}
	return minimized
}
