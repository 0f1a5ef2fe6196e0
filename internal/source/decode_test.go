package source

import "testing"

func TestDecodeStripsUTF8BOM(t *testing.T) {
	got := Decode([]byte("\xEF\xBB\xBF# hi\r\n"))
	if string(got) != "# hi\n" {
		t.Fatalf("expected BOM and CR stripped, got %q", got)
	}
}

func TestDecodeUTF16(t *testing.T) {
	le := []byte{0xFF, 0xFE, 'h', 0, 'i', 0}
	if got := string(Decode(le)); got != "hi" {
		t.Fatalf("expected %q from UTF-16LE, got %q", "hi", got)
	}
	be := []byte{0xFE, 0xFF, 0, 'h', 0, 'i'}
	if got := string(Decode(be)); got != "hi" {
		t.Fatalf("expected %q from UTF-16BE, got %q", "hi", got)
	}
}

func TestDecodeNormalizesToNFC(t *testing.T) {
	got := string(Decode([]byte("e\u0301")))
	if got != "\u00e9" {
		t.Fatalf("expected composed e-acute, got %q", got)
	}
}
