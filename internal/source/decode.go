package source

import (
	"fmt"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// DecodeShiftJIS converts Shift_JIS bytes to a UTF-8 string.
func DecodeShiftJIS(data []byte) (string, error) {
	decoded, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("source: failed to decode Shift_JIS: %w", err)
	}
	return string(decoded), nil
}
