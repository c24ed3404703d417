package integration

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"paperspace-be/internal/dto"
	"paperspace-be/internal/repository/specification"
	"paperspace-be/internal/service"
	"paperspace-be/pkg/arxiv"
	"paperspace-be/pkg/embedding"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedEmbedder returns a zero vector of the schema's dimension.
type fixedEmbedder struct{}

func (fixedEmbedder) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: make([]float32, 768)},
	}, nil
}

// failingQueue rejects every publish, standing in for a broken channel.
type failingQueue struct{}

func (failingQueue) Publish(ctx context.Context, payload []byte) error {
	return errors.New("queue closed")
}

// textlessPDF builds a structurally valid one-page PDF with no text
// layer, like a scanned page.
func textlessPDF() []byte {
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

func TestUploadSurvivesQueueFailure(t *testing.T) {
	factory := newTestFactory(t)
	ctx := context.Background()

	paperService := service.NewPaperService(factory, arxiv.NewClient(""), fixedEmbedder{}, failingQueue{}, nil)

	res, err := paperService.UploadPaper(ctx, &dto.UploadPaperRequest{
		Filename: "scan.pdf",
		Title:    "Scanned Notes",
		Authors:  "",
		Content:  textlessPDF(),
	})
	require.NoError(t, err, "a queue failure after the insert must not fail the upload")
	require.NotNil(t, res)
	assert.Equal(t, "Scanned Notes", res.Title)

	uow := factory.NewUnitOfWork(ctx)
	stored, err := uow.PaperRepository().FindOne(ctx, specification.ByID{ID: res.Id})
	require.NoError(t, err)
	require.NotNil(t, stored, "the paper row should be persisted despite the queue failure")

	// Textless documents are accepted; the stored record simply has no
	// abstract or full text to show.
	assert.Equal(t, "", stored.Abstract)
}
