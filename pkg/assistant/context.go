package assistant

import (
	"fmt"
	"strings"

	"paperspace-be/internal/entity"
)

// EmptyWorkspaceContext is injected when a workspace holds no papers, so
// the model knows there is nothing to ground answers on.
const EmptyWorkspaceContext = "No papers available in the current workspace."

const abstractPreviewLimit = 300

// BuildContextFromPapers renders the workspace's papers as a numbered
// listing suitable for the system prompt.
func BuildContextFromPapers(papers []*entity.Paper) string {
	if len(papers) == 0 {
		return EmptyWorkspaceContext
	}

	var b strings.Builder
	b.WriteString("Here are the research papers in the current workspace:\n\n")
	for i, paper := range papers {
		authors := "Unknown"
		if len(paper.Authors) > 0 {
			authors = strings.Join(paper.Authors, ", ")
		}

		abstract := paper.Abstract
		if len(abstract) > abstractPreviewLimit {
			abstract = abstract[:abstractPreviewLimit]
		}

		fmt.Fprintf(&b, "%d. Title: %s\n", i+1, paper.Title)
		fmt.Fprintf(&b, "   Authors: %s\n", authors)
		fmt.Fprintf(&b, "   Abstract: %s...\n\n", abstract)
	}

	return b.String()
}
