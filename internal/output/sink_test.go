package output

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zipcode-jp/internal/apperror"
	"zipcode-jp/internal/models"
	"zipcode-jp/internal/pipeline"
)

func record(zipCode, prefecture, city, town string) models.Record {
	return models.Record{
		models.FieldCode:       "01101",
		models.FieldZipCode:    zipCode,
		models.FieldPrefecture: prefecture,
		models.FieldCity:       city,
		models.FieldTown:       town,
	}
}

func buildResult(t *testing.T, records ...models.Record) *pipeline.Result {
	t.Helper()
	result, err := pipeline.Build(records)
	require.NoError(t, err)
	return result
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestFileSink_Publish(t *testing.T) {
	root := t.TempDir()
	stale := filepath.Join(root, DirFullJSON, "999.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0o755))
	require.NoError(t, os.WriteFile(stale, []byte("[]"), 0o644))

	result := buildResult(t,
		record("0600000", "北海道", "札幌市中央区", models.TownNoDetails),
		record("0640941", "北海道", "札幌市中央区", "旭ケ丘"),
		record("1000005", "東京都", "千代田区", "丸の内（次のビルを除く）"),
	)

	sink := NewFileSink(root, "$$zipcodejp", 2)
	require.NoError(t, sink.Publish(context.Background(), result))

	assert.NoFileExists(t, stale)
	for _, dir := range Dirs {
		entries, err := os.ReadDir(filepath.Join(root, dir))
		require.NoError(t, err)
		assert.Len(t, entries, 3, dir)
	}

	var full []models.ZipCode
	require.NoError(t, json.Unmarshal([]byte(readFile(t, filepath.Join(root, DirFullJSON, "100.json"))), &full))
	require.Len(t, full, 1)
	assert.Equal(t, "丸の内（次のビルを除く）", full[0].Town)

	assert.Equal(t,
		`$$zipcodejp([["0600000","北海道","札幌市中央区",""]]);`,
		readFile(t, filepath.Join(root, DirMinJSONP, "060.js")))
	assert.Equal(t,
		`[["0640941","北海道","札幌市中央区","旭ケ丘"]]`,
		readFile(t, filepath.Join(root, DirMinJSON, "064.json")))
	assert.Equal(t,
		"1000005,東京都,千代田区,丸の内\n",
		readFile(t, filepath.Join(root, DirMinCSV, "100.csv")))
	assert.Equal(t,
		"01101,,1000005,,,,東京都,千代田区,丸の内（次のビルを除く）,,,,,,\n",
		readFile(t, filepath.Join(root, DirFullCSV, "100.csv")))

	fullJSON := readFile(t, filepath.Join(root, DirFullJSON, "060.json"))
	assert.Equal(t, "$$zipcodejp("+fullJSON+");", readFile(t, filepath.Join(root, DirFullJSONP, "060.js")))
}

func TestFileSink_PublishUnsafePrefix(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{name: "separator", prefix: "a/b"},
		{name: "parent", prefix: ".."},
		{name: "backslash", prefix: `a\b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			result := &pipeline.Result{Buckets: pipeline.Buckets{
				tt.prefix: {record(tt.prefix+"0000", "北海道", "札幌市中央区", "大通西")},
			}}

			err := NewFileSink(root, "cb", 1).Publish(context.Background(), result)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnsafePrefix)

			code, ok := apperror.CodeOf(err)
			require.True(t, ok)
			assert.Equal(t, apperror.CodeFileSavingFailed, code)
			assert.Contains(t, err.Error(), "git checkout "+root)
			for _, dir := range Dirs {
				entries, err := os.ReadDir(filepath.Join(root, dir))
				require.NoError(t, err)
				assert.Empty(t, entries, dir)
			}
		})
	}
}

func TestFileSink_WritePrefixRollsBack(t *testing.T) {
	root := t.TempDir()
	// only the first three artifact directories exist, so the min-json write fails
	for _, dir := range []string{DirFullJSON, DirFullJSONP, DirFullCSV} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	}

	r := record("0600000", "北海道", "札幌市中央区", "大通西")
	artifacts, err := Render("060", "cb", []models.Record{r}, []models.Minimized{pipeline.Minimize(r)})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(DirMinJSON, "060.json"), artifacts[3].Path)

	sink := NewFileSink(root, "cb", 1)
	require.Error(t, sink.writePrefix(artifacts))

	for _, a := range artifacts {
		assert.NoFileExists(t, filepath.Join(root, a.Path))
	}
	for _, dir := range []string{DirFullJSON, DirFullJSONP, DirFullCSV} {
		entries, err := os.ReadDir(filepath.Join(root, dir))
		require.NoError(t, err)
		assert.Empty(t, entries, dir)
	}
}

func TestFileSink_PublishDirectoryFailure(t *testing.T) {
	root := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(root, []byte("x"), 0o644))

	err := NewFileSink(root, "cb", 4).Publish(context.Background(), buildResult(t, record("0600000", "北海道", "札幌市中央区", "大通西")))
	require.Error(t, err)

	code, ok := apperror.CodeOf(err)
	require.True(t, ok)
	assert.Contains(t, []apperror.Code{apperror.CodeDirectoryRemovingFailed, apperror.CodeDirectoryMakingFailed}, code)
}

func TestFileSink_PublishCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewFileSink(t.TempDir(), "cb", 1).Publish(ctx, buildResult(t, record("0600000", "北海道", "札幌市中央区", "大通西")))
	assert.ErrorIs(t, err, context.Canceled)
}
