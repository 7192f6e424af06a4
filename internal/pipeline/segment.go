package pipeline

import (
	"sort"
	"unicode/utf8"

	"zipcode-jp/internal/models"
)

// Buckets maps a zip code prefix to its records in input order.
type Buckets map[string][]models.Record

// Prefixes returns the bucket keys in ascending order.
func (b Buckets) Prefixes() []string {
	prefixes := make([]string, 0, len(b))
	for prefix := range b {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)
	return prefixes
}

// Len returns the total number of records across all buckets.
func (b Buckets) Len() int {
	n := 0
	for _, records := range b {
		n += len(records)
	}
	return n
}

// Prefix returns the leading models.PrefixLength characters of zipCode.
func Prefix(zipCode string) (string, bool) {
	if utf8.RuneCountInString(zipCode) < models.PrefixLength {
		return "", false
	}
	n := 0
	for i := range zipCode {
		if n == models.PrefixLength {
			return zipCode[:i], true
		}
		n++
	}
	return zipCode, true
}

// Segment partitions records by zip code prefix.
func Segment(records []models.Record) (Buckets, error) {
	buckets := make(Buckets)
	for i, r := range records {
		zipCode := r.ZipCodeValue()
		prefix, ok := Prefix(zipCode)
		if !ok {
			return nil, &MalformedFieldError{
				Row:    i + 1,
				Field:  models.FieldZipCode,
				Value:  zipCode,
				Reason: "shorter than prefix length",
			}
		}
		buckets[prefix] = append(buckets[prefix], r)
	}
	return buckets, nil
}
