package source

import "testing"

func TestLooksLikeText(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    bool
	}{
		{"empty", nil, true},
		{"markdown", []byte("# title\n\nbody\n"), true},
		{"utf16 with bom", []byte{0xFF, 0xFE, 'h', 0, 'i', 0}, true},
		{"nul bytes", []byte("PK\x03\x04\x00\x00"), false},
		{"latin1", []byte("caf\xe9 cr\xe8me\n"), true},
		{"control noise", []byte{0x01, 0x02, 0x03, 0xFF, 0x04, 0x05}, false},
	}
	for _, tt := range tests {
		if got := LooksLikeText(tt.content); got != tt.want {
			t.Fatalf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}
