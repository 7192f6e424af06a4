package source

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

// ErrEmptyArchive is returned when the archive has no file entries.
var ErrEmptyArchive = errors.New("source: archive contains no files")

// Unzip returns the contents of the CSV file inside a zip archive. When no entry
// has a .csv extension the first file is used.
func Unzip(data []byte) ([]byte, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("source: failed to open archive: %w", err)
	}

	var picked *zip.File
	for _, f := range reader.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if picked == nil {
			picked = f
		}
		if strings.EqualFold(path.Ext(f.Name), ".csv") {
			picked = f
			break
		}
	}
	if picked == nil {
		return nil, ErrEmptyArchive
	}

	rc, err := picked.Open()
	if err != nil {
		return nil, fmt.Errorf("source: failed to open %s: %w", picked.Name, err)
	}
	defer rc.Close()

	contents, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("source: failed to extract %s: %w", picked.Name, err)
	}
	return contents, nil
}
