package models

import "fmt"

// Field identifies a column of the Japan Post KEN_ALL.CSV layout.
// See https://www.post.japanpost.jp/zipcode/dl/readme.html
type Field int

const (
	FieldCode                Field = iota // 全国地方公共団体コード
	FieldOldZipCode                       // (旧)郵便番号 5桁
	FieldZipCode                          // 郵便番号 7桁
	FieldPrefectureKana                   // 都道府県名 半角カタカナ
	FieldCityKana                         // 市区町村名 半角カタカナ
	FieldTownKana                         // 町域名 半角カタカナ
	FieldPrefecture                       // 都道府県名
	FieldCity                             // 市区町村名
	FieldTown                             // 町域名
	FieldHasMultipleZipCodes              // 一町域が二以上の郵便番号で表される場合
	FieldNeedsKoaza                       // 小字毎に番地が起番されている町域
	FieldHasChome                         // 丁目を有する町域
	FieldSharesZipCode                    // 一つの郵便番号で二以上の町域を表す場合
	FieldUpdateStatus                     // 更新の表示
	FieldChangeReason                     // 変更理由

	// FieldCount is the number of columns in every record.
	FieldCount int = iota
)

var fieldNames = [FieldCount]string{
	"code",
	"old_zip_code",
	"zip_code",
	"prefecture_kana",
	"city_kana",
	"town_kana",
	"prefecture",
	"city",
	"town",
	"has_multiple_zip_codes",
	"needs_koaza",
	"has_chome",
	"shares_zip_code",
	"update_status",
	"change_reason",
}

var fieldsByName = func() map[string]Field {
	m := make(map[string]Field, FieldCount)
	for i, name := range fieldNames {
		m[name] = Field(i)
	}
	return m
}()

// Name returns the attribute name used for JSON keys and database columns.
func (f Field) Name() string {
	if f < 0 || int(f) >= FieldCount {
		return fmt.Sprintf("field(%d)", int(f))
	}
	return fieldNames[f]
}

func (f Field) String() string {
	return f.Name()
}

// FieldByName resolves an attribute name to its column.
func FieldByName(name string) (Field, bool) {
	f, ok := fieldsByName[name]
	return f, ok
}

// FieldNames returns the attribute names in column order.
func FieldNames() []string {
	names := make([]string, FieldCount)
	copy(names, fieldNames[:])
	return names
}

// Markers and sentinel values used by the town-name corrections.
const (
	OpenBracket   = "（"
	CloseBracket  = "）"
	TownNoDetails = "以下に掲載がない場合"

	// PrefixLength is the number of leading zip code digits used to partition output.
	PrefixLength = 3
)
