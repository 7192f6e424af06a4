package models

import "encoding/json"

// ZipCode is the full published form of a record. JSON keys follow the column names
// and are emitted in column order.
type ZipCode struct {
	Code                string `json:"code"`
	OldZipCode          string `json:"old_zip_code"`
	ZipCode             string `json:"zip_code"`
	PrefectureKana      string `json:"prefecture_kana"`
	CityKana            string `json:"city_kana"`
	TownKana            string `json:"town_kana"`
	Prefecture          string `json:"prefecture"`
	City                string `json:"city"`
	Town                string `json:"town"`
	HasMultipleZipCodes string `json:"has_multiple_zip_codes"`
	NeedsKoaza          string `json:"needs_koaza"`
	HasChome            string `json:"has_chome"`
	SharesZipCode       string `json:"shares_zip_code"`
	UpdateStatus        string `json:"update_status"`
	ChangeReason        string `json:"change_reason"`
}

// Record converts z back to its positional form.
func (z ZipCode) Record() Record {
	return Record{
		FieldCode:                z.Code,
		FieldOldZipCode:          z.OldZipCode,
		FieldZipCode:             z.ZipCode,
		FieldPrefectureKana:      z.PrefectureKana,
		FieldCityKana:            z.CityKana,
		FieldTownKana:            z.TownKana,
		FieldPrefecture:          z.Prefecture,
		FieldCity:                z.City,
		FieldTown:                z.Town,
		FieldHasMultipleZipCodes: z.HasMultipleZipCodes,
		FieldNeedsKoaza:          z.NeedsKoaza,
		FieldHasChome:            z.HasChome,
		FieldSharesZipCode:       z.SharesZipCode,
		FieldUpdateStatus:        z.UpdateStatus,
		FieldChangeReason:        z.ChangeReason,
	}
}

// Minimized is the reduced public projection of a record:
// zip code, prefecture, city and a simplified town name.
type Minimized struct {
	ZipCode    string
	Prefecture string
	City       string
	Town       string
}

// Values returns the projection as a CSV row.
func (m Minimized) Values() []string {
	return []string{m.ZipCode, m.Prefecture, m.City, m.Town}
}

// MarshalJSON encodes the projection as a 4-element array.
func (m Minimized) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Values())
}

// UnmarshalJSON decodes a 4-element array.
func (m *Minimized) UnmarshalJSON(data []byte) error {
	var values [4]string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*m = Minimized{ZipCode: values[0], Prefecture: values[1], City: values[2], Town: values[3]}
	return nil
}
