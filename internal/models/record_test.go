package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleValues() []string {
	return []string{
		"01101", "060  ", "0600000", "ﾎｯｶｲﾄﾞｳ", "ｻｯﾎﾟﾛｼﾁｭｳｵｳｸ", "ｲｶﾆｹｲｻｲｶﾞﾅｲﾊﾞｱｲ",
		"北海道", "札幌市中央区", "以下に掲載がない場合", "0", "0", "0", "0", "0", "0",
	}
}

func TestFieldByName(t *testing.T) {
	for i, name := range FieldNames() {
		f, ok := FieldByName(name)
		require.True(t, ok, name)
		assert.Equal(t, Field(i), f)
		assert.Equal(t, name, f.Name())
	}

	_, ok := FieldByName("latitude")
	assert.False(t, ok)
	assert.Equal(t, "field(99)", Field(99).Name())
}

func TestLoadBearingFields(t *testing.T) {
	assert.Equal(t, 15, FieldCount)
	assert.Equal(t, "zip_code", FieldZipCode.Name())
	assert.Equal(t, "town", FieldTown.Name())
	assert.Equal(t, "town_kana", FieldTownKana.Name())
}

func TestNewRecord(t *testing.T) {
	r, err := NewRecord(sampleValues())
	require.NoError(t, err)
	assert.Equal(t, "0600000", r.ZipCodeValue())
	assert.Equal(t, "札幌市中央区", r.Get(FieldCity))
	assert.Equal(t, sampleValues(), r.Values())

	_, err = NewRecord(sampleValues()[:14])
	assert.Error(t, err)
}

func TestRecord_WithDoesNotMutate(t *testing.T) {
	r, err := NewRecord(sampleValues())
	require.NoError(t, err)

	changed := r.With(FieldTown, "大通西")
	assert.Equal(t, "以下に掲載がない場合", r.Get(FieldTown))
	assert.Equal(t, "大通西", changed.Get(FieldTown))
}

func TestZipCodeJSON(t *testing.T) {
	r, err := NewRecord(sampleValues())
	require.NoError(t, err)

	data, err := json.Marshal(r.ZipCode())
	require.NoError(t, err)
	assert.Equal(t,
		`{"code":"01101","old_zip_code":"060  ","zip_code":"0600000","prefecture_kana":"ﾎｯｶｲﾄﾞｳ",`+
			`"city_kana":"ｻｯﾎﾟﾛｼﾁｭｳｵｳｸ","town_kana":"ｲｶﾆｹｲｻｲｶﾞﾅｲﾊﾞｱｲ","prefecture":"北海道",`+
			`"city":"札幌市中央区","town":"以下に掲載がない場合","has_multiple_zip_codes":"0",`+
			`"needs_koaza":"0","has_chome":"0","shares_zip_code":"0","update_status":"0","change_reason":"0"}`,
		string(data))

	assert.Equal(t, r, r.ZipCode().Record())
}

func TestMinimizedJSON(t *testing.T) {
	m := Minimized{ZipCode: "0600000", Prefecture: "北海道", City: "札幌市中央区", Town: "大通西"}

	data, err := json.Marshal([]Minimized{m})
	require.NoError(t, err)
	assert.Equal(t, `[["0600000","北海道","札幌市中央区","大通西"]]`, string(data))

	var decoded []Minimized
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, []Minimized{m}, decoded)
}
