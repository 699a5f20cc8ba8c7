package tmx

import (
	"errors"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ff8000", Color{R: 0xff, G: 0x80, B: 0x00, A: 0xff}},
		{"ff8000", Color{R: 0xff, G: 0x80, B: 0x00, A: 0xff}},
		{"#80ff0000", Color{R: 0xff, G: 0x00, B: 0x00, A: 0x80}},
		{"#000000", Color{A: 0xff}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#ff", "#ggff00", "#12345", "notacolor"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrInvalidColorFormat) {
			t.Errorf("ParseColor(%q): got %v, want ErrInvalidColorFormat", in, err)
		}
	}
}

func TestParseOptionalColor(t *testing.T) {
	if got := parseOptionalColor(""); got != nil {
		t.Errorf("empty: got %+v, want nil", got)
	}
	if got := parseOptionalColor("bogus"); got != nil {
		t.Errorf("malformed: got %+v, want nil", got)
	}
	got := parseOptionalColor("#102030")
	if got == nil || *got != (Color{R: 0x10, G: 0x20, B: 0x30, A: 0xff}) {
		t.Errorf("valid: got %+v", got)
	}
}
