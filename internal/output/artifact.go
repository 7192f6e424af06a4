package output

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"zipcode-jp/internal/models"
)

// Output directories, one per artifact family.
const (
	DirFullJSON  = "full-json"
	DirFullJSONP = "full-jsonp"
	DirFullCSV   = "full-csv"
	DirMinJSON   = "min-json"
	DirMinJSONP  = "min-jsonp"
	DirMinCSV    = "min-csv"
)

// Dirs lists every output directory.
var Dirs = []string{DirFullJSON, DirFullJSONP, DirFullCSV, DirMinJSON, DirMinJSONP, DirMinCSV}

// ErrUnsafePrefix is returned for a prefix that cannot be used as a file name.
var ErrUnsafePrefix = errors.New("output: prefix is not a valid file name")

// Artifact is one rendered output file, relative to the output root.
type Artifact struct {
	Path string
	Data []byte
}

// Render produces the six artifacts of one prefix bucket.
func Render(prefix, callback string, records []models.Record, minimized []models.Minimized) ([]Artifact, error) {
	if !safePrefix(prefix) {
		return nil, fmt.Errorf("%w: %q", ErrUnsafePrefix, prefix)
	}

	full := make([]models.ZipCode, len(records))
	fullRows := make([][]string, len(records))
	for i, r := range records {
		full[i] = r.ZipCode()
		fullRows[i] = r.Values()
	}
	minRows := make([][]string, len(minimized))
	for i, m := range minimized {
		minRows[i] = m.Values()
	}

	fullJSON, err := EncodeJSON(full)
	if err != nil {
		return nil, fmt.Errorf("output: %s: failed to encode full json: %w", prefix, err)
	}
	fullCSV, err := EncodeCSV(fullRows)
	if err != nil {
		return nil, fmt.Errorf("output: %s: failed to encode full csv: %w", prefix, err)
	}
	minJSON, err := EncodeJSON(minRows)
	if err != nil {
		return nil, fmt.Errorf("output: %s: failed to encode min json: %w", prefix, err)
	}
	minCSV, err := EncodeCSV(minRows)
	if err != nil {
		return nil, fmt.Errorf("output: %s: failed to encode min csv: %w", prefix, err)
	}

	return []Artifact{
		{Path: filepath.Join(DirFullJSON, prefix+".json"), Data: fullJSON},
		{Path: filepath.Join(DirFullJSONP, prefix+".js"), Data: EncodeJSONP(callback, fullJSON)},
		{Path: filepath.Join(DirFullCSV, prefix+".csv"), Data: fullCSV},
		{Path: filepath.Join(DirMinJSON, prefix+".json"), Data: minJSON},
		{Path: filepath.Join(DirMinJSONP, prefix+".js"), Data: EncodeJSONP(callback, minJSON)},
		{Path: filepath.Join(DirMinCSV, prefix+".csv"), Data: minCSV},
	}, nil
}

// safePrefix reports whether prefix stays a single element below its output directory.
func safePrefix(prefix string) bool {
	return prefix != "" && prefix != "." &&
		!strings.ContainsAny(prefix, "/\\\x00") &&
		!strings.Contains(prefix, "..")
}
