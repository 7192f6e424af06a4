package models

import "fmt"

// Record is one row of KEN_ALL.CSV. Values are kept as opaque text.
// Records are comparable, so a Record is its own deduplication key.
type Record [FieldCount]string

// NewRecord builds a Record from a parsed CSV row.
func NewRecord(values []string) (Record, error) {
	var r Record
	if len(values) != FieldCount {
		return r, fmt.Errorf("models: expected %d fields, got %d", FieldCount, len(values))
	}
	copy(r[:], values)
	return r, nil
}

// Get returns the value of f.
func (r Record) Get(f Field) string {
	return r[f]
}

// With returns a copy of r with f set to value.
func (r Record) With(f Field, value string) Record {
	r[f] = value
	return r
}

// ZipCodeValue is shorthand for r.Get(FieldZipCode).
func (r Record) ZipCodeValue() string {
	return r[FieldZipCode]
}

// Values returns the fields in column order.
func (r Record) Values() []string {
	values := make([]string, FieldCount)
	copy(values, r[:])
	return values
}

// ZipCode converts r to its JSON representation.
func (r Record) ZipCode() ZipCode {
	return ZipCode{
		Code:                r[FieldCode],
		OldZipCode:          r[FieldOldZipCode],
		ZipCode:             r[FieldZipCode],
		PrefectureKana:      r[FieldPrefectureKana],
		CityKana:            r[FieldCityKana],
		TownKana:            r[FieldTownKana],
		Prefecture:          r[FieldPrefecture],
		City:                r[FieldCity],
		Town:                r[FieldTown],
		HasMultipleZipCodes: r[FieldHasMultipleZipCodes],
		NeedsKoaza:          r[FieldNeedsKoaza],
		HasChome:            r[FieldHasChome],
		SharesZipCode:       r[FieldSharesZipCode],
		UpdateStatus:        r[FieldUpdateStatus],
		ChangeReason:        r[FieldChangeReason],
	}
}
