package upload

import (
	"strings"
	"testing"
)

func TestTextContextPlainText(t *testing.T) {
	t.Parallel()

	text, err := TextContext("notes.txt", []byte("  course outline\nmodule one  "))
	if err != nil {
		t.Fatalf("text context: %v", err)
	}
	if text != "course outline\nmodule one" {
		t.Fatalf("text = %q", text)
	}
}

func TestTextContextEmptyFile(t *testing.T) {
	t.Parallel()

	text, err := TextContext("notes.txt", nil)
	if err != nil {
		t.Fatalf("text context: %v", err)
	}
	if text != "" {
		t.Fatalf("text = %q, want empty", text)
	}
}

func TestTextContextRejectsBinary(t *testing.T) {
	t.Parallel()

	if _, err := TextContext("photo.png", []byte{0x89, 0x50, 0x4e, 0x47, 0xff, 0xfe}); err == nil {
		t.Fatal("expected binary data to be rejected")
	}
}

func TestTextContextRejectsOversize(t *testing.T) {
	t.Parallel()

	if _, err := TextContext("big.txt", make([]byte, MaxUploadSize+1)); err == nil {
		t.Fatal("expected an oversize file to be rejected")
	}
}

func TestTextContextTruncatesLongText(t *testing.T) {
	t.Parallel()

	text, err := TextContext("long.txt", []byte(strings.Repeat("a", maxContextRunes+500)))
	if err != nil {
		t.Fatalf("text context: %v", err)
	}
	if len([]rune(text)) != maxContextRunes {
		t.Fatalf("len = %d, want %d", len([]rune(text)), maxContextRunes)
	}
}

func TestTextContextRejectsMalformedPDF(t *testing.T) {
	t.Parallel()

	if _, err := TextContext("context.pdf", []byte("%PDF-1.4 truncated")); err == nil {
		t.Fatal("expected a malformed pdf to be rejected")
	}
}
