package pipeline

import "zipcode-jp/internal/models"

// Result is the output of a full pipeline run.
type Result struct {
	// Records holds the deduplicated records in input order.
	Records    []models.Record
	Buckets    Buckets
	InputRows  int
	UniqueRows int
	// CorrectedRows counts records whose town name was rebuilt from fragments.
	CorrectedRows int
}

// Minimized returns the projections for one prefix bucket.
func (r *Result) Minimized(prefix string) []models.Minimized {
	return MinimizeAll(r.Buckets[prefix])
}

// Build runs Normalize, Deduplicate and Segment in sequence.
func Build(records []models.Record) (*Result, error) {
	normalized, err := Normalize(records)
	if err != nil {
		return nil, err
	}

	corrected := 0
	for i := range records {
		if normalized[i] != records[i] {
			corrected++
		}
	}

	unique := Deduplicate(normalized)
	buckets, err := Segment(unique)
	if err != nil {
		return nil, err
	}

	return &Result{
		Records:       unique,
		Buckets:       buckets,
		InputRows:     len(records),
		UniqueRows:    buckets.Len(),
		CorrectedRows: corrected,
	}, nil
}
