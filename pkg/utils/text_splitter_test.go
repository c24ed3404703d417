package utils

import (
	"strings"
	"testing"
)

func TestSplitTextShortInput(t *testing.T) {
	chunks := SplitText("short text", 100, 20)
	if len(chunks) != 1 || chunks[0] != "short text" {
		t.Errorf("chunks = %v, want single unchanged chunk", chunks)
	}
}

func TestSplitTextOverlap(t *testing.T) {
	text := strings.Repeat("abcdefghij", 5) // 50 chars
	chunks := SplitText(text, 20, 5)

	if len(chunks) < 3 {
		t.Fatalf("got %d chunks, want at least 3", len(chunks))
	}
	for i, chunk := range chunks {
		if len(chunk) > 20 {
			t.Errorf("chunk %d length = %d, want <= 20", i, len(chunk))
		}
	}

	// Consecutive chunks share the overlap region.
	first := chunks[0]
	second := chunks[1]
	if !strings.HasPrefix(second, first[len(first)-5:]) {
		t.Errorf("chunk 1 does not start with the last 5 chars of chunk 0: %q vs %q", second, first)
	}

	// Every character of the input is covered.
	if !strings.HasSuffix(chunks[len(chunks)-1], text[len(text)-5:]) {
		t.Errorf("final chunk does not reach end of input: %q", chunks[len(chunks)-1])
	}
}

func TestSplitTextOverlapLargerThanChunk(t *testing.T) {
	text := strings.Repeat("x", 30)
	chunks := SplitText(text, 10, 15)

	// Degenerate overlap falls back to non-overlapping steps instead of looping.
	if len(chunks) != 3 {
		t.Errorf("got %d chunks, want 3", len(chunks))
	}
}
