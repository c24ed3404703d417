package assistant

import (
	"strings"
	"testing"

	"paperspace-be/internal/entity"
)

func TestBuildContextFromPapersEmpty(t *testing.T) {
	got := BuildContextFromPapers(nil)
	if got != EmptyWorkspaceContext {
		t.Errorf("context = %q, want %q", got, EmptyWorkspaceContext)
	}
}

func TestBuildContextFromPapers(t *testing.T) {
	papers := []*entity.Paper{
		{
			Title:    "Attention Is All You Need",
			Authors:  []string{"Vaswani", "Shazeer"},
			Abstract: "The dominant sequence transduction models are based on complex recurrent or convolutional neural networks.",
		},
		{
			Title:    "Untitled Draft",
			Abstract: strings.Repeat("a", 500),
		},
	}

	got := BuildContextFromPapers(papers)

	if !strings.HasPrefix(got, "Here are the research papers in the current workspace:\n\n") {
		t.Errorf("missing context header, got %q", got)
	}
	if !strings.Contains(got, "1. Title: Attention Is All You Need\n") {
		t.Errorf("missing numbered first entry in %q", got)
	}
	if !strings.Contains(got, "   Authors: Vaswani, Shazeer\n") {
		t.Errorf("missing joined authors in %q", got)
	}
	if !strings.Contains(got, "2. Title: Untitled Draft\n") {
		t.Errorf("missing numbered second entry in %q", got)
	}

	// Papers without authors fall back to Unknown.
	if !strings.Contains(got, "   Authors: Unknown\n") {
		t.Errorf("missing Unknown author fallback in %q", got)
	}

	// Abstracts are truncated to 300 characters before the ellipsis.
	truncated := "   Abstract: " + strings.Repeat("a", 300) + "...\n"
	if !strings.Contains(got, truncated) {
		t.Errorf("abstract not truncated to 300 chars in %q", got)
	}
	if strings.Contains(got, strings.Repeat("a", 301)) {
		t.Errorf("abstract exceeds 300 chars in %q", got)
	}
}
