package arxiv

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const defaultBaseURL = "http://export.arxiv.org/api/query"

// Paper is one normalized search result from the arXiv Atom feed.
type Paper struct {
	Title           string
	Authors         []string
	Abstract        string
	PublicationDate *time.Time
	ArxivId         string
	PdfUrl          string
}

// Client queries the arXiv export API. Responses are cached briefly
// since the API rate-limits aggressively.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *gocache.Cache
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cache: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

// Atom feed structures

type atomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	Id        string       `xml:"id"`
	Title     string       `xml:"title"`
	Summary   string       `xml:"summary"`
	Published string       `xml:"published"`
	Authors   []atomAuthor `xml:"author"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

// Search runs a full-text query and returns at most limit normalized results.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Paper, error) {
	if limit <= 0 {
		limit = 10
	}

	cacheKey := fmt.Sprintf("%s|%d", query, limit)
	if cached, found := c.cache.Get(cacheKey); found {
		return cached.([]Paper), nil
	}

	params := url.Values{}
	params.Set("search_query", "all:"+query)
	params.Set("start", "0")
	params.Set("max_results", fmt.Sprintf("%d", limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("arxiv request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arxiv error: status %d", resp.StatusCode)
	}

	var feed atomFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("parse atom feed: %w", err)
	}

	papers := make([]Paper, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		papers = append(papers, normalizeEntry(entry))
	}

	c.cache.Set(cacheKey, papers, gocache.DefaultExpiration)
	return papers, nil
}

func normalizeEntry(entry atomEntry) Paper {
	title := strings.TrimSpace(entry.Title)
	if title == "" {
		title = "Untitled"
	}

	// The entry id looks like http://arxiv.org/abs/2301.00001v1;
	// everything after the last /abs/ is the arXiv id.
	arxivId := entry.Id
	if idx := strings.LastIndex(arxivId, "/abs/"); idx >= 0 {
		arxivId = arxivId[idx+len("/abs/"):]
	}

	authors := make([]string, 0, len(entry.Authors))
	for _, a := range entry.Authors {
		if name := strings.TrimSpace(a.Name); name != "" {
			authors = append(authors, name)
		}
	}

	var publicationDate *time.Time
	if datePart, _, found := strings.Cut(entry.Published, "T"); found || datePart != "" {
		if t, err := time.Parse("2006-01-02", datePart); err == nil {
			publicationDate = &t
		}
	}

	return Paper{
		Title:           title,
		Authors:         authors,
		Abstract:        strings.TrimSpace(entry.Summary),
		PublicationDate: publicationDate,
		ArxivId:         arxivId,
		PdfUrl:          fmt.Sprintf("https://arxiv.org/pdf/%s.pdf", arxivId),
	}
}
