package pdftext

import (
	"bytes"
	"fmt"
	"testing"
)

// minimalTextlessPDF builds a structurally valid one-page PDF whose only
// content stream carries no text operators, like a scanned page.
func minimalTextlessPDF() []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R >>\nendobj\n",
		"4 0 obj\n<< /Length 4 >>\nstream\nq Q\nendstream\nendobj\n",
	}

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		buf.WriteString(obj)
	}

	xrefPos := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefPos)

	return buf.Bytes()
}

func TestExtractAcceptsTextlessPDF(t *testing.T) {
	text, err := Extract(minimalTextlessPDF())
	if err != nil {
		t.Fatalf("textless PDF should extract without error, got: %v", err)
	}
	if text != "" {
		t.Errorf("text = %q, want empty for a page with no text layer", text)
	}
}

func TestExtractRejectsGarbage(t *testing.T) {
	_, err := Extract([]byte("this is not a pdf"))
	if err == nil {
		t.Fatal("expected error for non-PDF bytes")
	}
}

func TestExtractRejectsEmptyInput(t *testing.T) {
	_, err := Extract(nil)
	if err == nil {
		t.Fatal("expected error for empty input")
	}
}
