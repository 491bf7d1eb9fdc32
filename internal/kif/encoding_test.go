package kif

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"
)

func TestShiftJISRoundTrip(t *testing.T) {
	text := "手合割：平手\n   1 ７六歩(77) ( 0:03/00:00:03)\nまで5手で先手の勝ち\n"

	encoded, err := EncodeShiftJIS(text)
	if err != nil {
		t.Fatal(err)
	}
	if utf8.Valid(encoded) {
		t.Fatal("Shift_JIS bytes should not be valid UTF-8 for Japanese text")
	}

	decoded, err := DecodeAuto(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if decoded != text {
		t.Fatalf("round trip mismatch: got %q want %q", decoded, text)
	}
}

func TestDecodeAuto_UTF8(t *testing.T) {
	text := "先手：先手\n"
	got, err := DecodeAuto([]byte(text))
	if err != nil {
		t.Fatal(err)
	}
	if got != text {
		t.Fatalf("got %q want %q", got, text)
	}
}

func TestDecodeAuto_UTF8BOM(t *testing.T) {
	text := "先手：先手\n"
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(text)...)
	got, err := DecodeAuto(data)
	if err != nil {
		t.Fatal(err)
	}
	if got != text {
		t.Fatalf("BOM not stripped: got %q", got)
	}
}

func TestWriteFile_ShiftJIS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.kif")
	text := "手数----指手---------消費時間--\n"
	if err := WriteFile(path, text); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want, err := EncodeShiftJIS(text)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, want) {
		t.Fatalf("file bytes differ from Shift_JIS encoding")
	}

	decoded, err := DecodeAuto(data)
	if err != nil {
		t.Fatal(err)
	}
	if decoded != text {
		t.Fatalf("got %q want %q", decoded, text)
	}
}
