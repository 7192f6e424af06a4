package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
)

// EncodeJSON renders v as compact JSON without escaping HTML or non-ASCII characters.
func EncodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// EncodeJSONP wraps JSON in a call to callback.
func EncodeJSONP(callback string, data []byte) []byte {
	out := make([]byte, 0, len(callback)+len(data)+3)
	out = append(out, callback...)
	out = append(out, '(')
	out = append(out, data...)
	out = append(out, ");"...)
	return out
}

// EncodeCSV renders rows without a header, quoting only where needed.
func EncodeCSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
