package arxiv

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const atomFixture = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <id>http://arxiv.org/abs/1706.03762v7</id>
    <title>Attention Is All You Need</title>
    <summary>
      The dominant sequence transduction models are based on complex recurrent networks.
    </summary>
    <published>2017-06-12T17:57:34Z</published>
    <author><name>Ashish Vaswani</name></author>
    <author><name>Noam Shazeer</name></author>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/2301.00001v1</id>
    <title>  </title>
    <summary>Abstract only.</summary>
    <published></published>
  </entry>
</feed>`

func TestSearch(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		q := r.URL.Query()
		if got := q.Get("search_query"); got != "all:transformers" {
			t.Errorf("search_query = %q, want %q", got, "all:transformers")
		}
		if got := q.Get("max_results"); got != "5" {
			t.Errorf("max_results = %q, want %q", got, "5")
		}
		w.Write([]byte(atomFixture))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	papers, err := client.Search(context.Background(), "transformers", 5)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(papers) != 2 {
		t.Fatalf("got %d papers, want 2", len(papers))
	}

	first := papers[0]
	if first.Title != "Attention Is All You Need" {
		t.Errorf("title = %q", first.Title)
	}
	if first.ArxivId != "1706.03762v7" {
		t.Errorf("arxiv id = %q, want 1706.03762v7", first.ArxivId)
	}
	if first.PdfUrl != "https://arxiv.org/pdf/1706.03762v7.pdf" {
		t.Errorf("pdf url = %q", first.PdfUrl)
	}
	if len(first.Authors) != 2 || first.Authors[0] != "Ashish Vaswani" {
		t.Errorf("authors = %v", first.Authors)
	}
	if first.PublicationDate == nil || first.PublicationDate.Format("2006-01-02") != "2017-06-12" {
		t.Errorf("publication date = %v", first.PublicationDate)
	}

	second := papers[1]
	if second.Title != "Untitled" {
		t.Errorf("blank title = %q, want Untitled", second.Title)
	}
	if second.PublicationDate != nil {
		t.Errorf("publication date = %v, want nil for empty published", second.PublicationDate)
	}

	// Second identical search is served from cache.
	_, err = client.Search(context.Background(), "transformers", 5)
	if err != nil {
		t.Fatalf("cached Search failed: %v", err)
	}
	if requests != 1 {
		t.Errorf("upstream requests = %d, want 1", requests)
	}
}

func TestSearchUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Search(context.Background(), "anything", 3)
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
