package pipeline

import (
	"github.com/brianvoe/gofakeit/v6"

	"zipcode-jp/internal/models"
)

func record(zipCode, town, townKana string) models.Record {
	return models.Record{
		models.FieldCode:                "03209",
		models.FieldOldZipCode:          zipCode[:3] + "  ",
		models.FieldZipCode:             zipCode,
		models.FieldPrefectureKana:      "ｲﾜﾃｹﾝ",
		models.FieldCityKana:            "ｲﾁﾉｾｷｼ",
		models.FieldTownKana:            townKana,
		models.FieldPrefecture:          "岩手県",
		models.FieldCity:                "一関市",
		models.FieldTown:                town,
		models.FieldHasMultipleZipCodes: "1",
		models.FieldNeedsKoaza:          "0",
		models.FieldHasChome:            "0",
		models.FieldSharesZipCode:       "0",
		models.FieldUpdateStatus:        "0",
		models.FieldChangeReason:        "0",
	}
}

// fakeRecords generates n records without town fragments, drawing zip codes
// from a small pool so that prefixes and duplicates collide.
func fakeRecords(seed int64, n int) []models.Record {
	faker := gofakeit.New(seed)
	zipCodes := []string{"0600000", "0600001", "0640941", "1000001", "1000005", "9071801"}
	towns := []string{"大通西", "北一条西", "旭ケ丘", "千代田", "丸の内（次のビルを除く）", models.TownNoDetails}

	records := make([]models.Record, n)
	for i := range records {
		r := record(
			zipCodes[faker.Number(0, len(zipCodes)-1)],
			towns[faker.Number(0, len(towns)-1)],
			faker.RandomString([]string{"ｵｵﾄﾞｵﾘﾆｼ", "ｷﾀ1ｼﾞｮｳﾆｼ", "ｱｻﾋｶﾞｵｶ"}),
		)
		records[i] = r.With(models.FieldUpdateStatus, faker.RandomString([]string{"0", "1"}))
	}
	return records
}
