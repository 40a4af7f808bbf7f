package directory

import (
	"testing"
)

func TestEncodeUnicodePwd(t *testing.T) {
	// "x" quoted is "\"x\"", UTF-16LE encoded.
	got := EncodeUnicodePwd("x")
	want := string([]byte{0x22, 0x00, 0x78, 0x00, 0x22, 0x00})
	if got != want {
		t.Errorf("EncodeUnicodePwd(%q) = %x, want %x", "x", got, want)
	}
}

func TestEncodeUnicodePwdLength(t *testing.T) {
	// Every ASCII character costs two bytes, plus the surrounding quotes.
	got := EncodeUnicodePwd("secret")
	if len(got) != (len("secret")+2)*2 {
		t.Errorf("EncodeUnicodePwd length = %d, want %d", len(got), (len("secret")+2)*2)
	}
}

func TestEncodeUnicodePwdNonASCII(t *testing.T) {
	// BMP runes still encode to a single UTF-16 unit.
	got := EncodeUnicodePwd("å")
	want := string([]byte{0x22, 0x00, 0xe5, 0x00, 0x22, 0x00})
	if got != want {
		t.Errorf("EncodeUnicodePwd(å) = %x, want %x", got, want)
	}
}
