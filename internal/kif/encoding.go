package kif

import (
	"bytes"
	"errors"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// WriteFile writes a KIF text as Shift_JIS, the encoding the format is
// conventionally exchanged in.
func WriteFile(path, text string) error {
	encoded, err := EncodeShiftJIS(text)
	if err != nil {
		return err
	}
	return os.WriteFile(path, encoded, 0o644)
}

func EncodeShiftJIS(text string) ([]byte, error) {
	var buf bytes.Buffer
	w := transform.NewWriter(&buf, japanese.ShiftJIS.NewEncoder())
	if _, err := io.WriteString(w, text); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeAuto handles the encodings KIF files show up in: UTF-8 with or
// without BOM, otherwise Shift_JIS.
func DecodeAuto(data []byte) (string, error) {
	if bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		data = data[3:]
	}
	if utf8.Valid(data) {
		return string(data), nil
	}
	reader := transform.NewReader(bytes.NewReader(data), japanese.ShiftJIS.NewDecoder())
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(decoded) {
		return "", errors.New("failed to decode Shift-JIS KIF")
	}
	return string(decoded), nil
}
