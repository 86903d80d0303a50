package icccm

import "testing"

func TestSplitNUL(t *testing.T) {
	parts := splitNUL([]byte("xterm\x00XTerm\x00"))
	if len(parts) != 2 || parts[0] != "xterm" || parts[1] != "XTerm" {
		t.Fatalf("got %q", parts)
	}
}

func TestSplitNULMissingTrailingTerminator(t *testing.T) {
	parts := splitNUL([]byte("gimp\x00Gimp"))
	if len(parts) != 2 || parts[1] != "Gimp" {
		t.Fatalf("got %q", parts)
	}
}

func TestSplitNULEmpty(t *testing.T) {
	if parts := splitNUL(nil); parts != nil {
		t.Fatalf("expected nil for empty property, got %q", parts)
	}
}
