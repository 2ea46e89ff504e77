package service

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const defaultArxivURL = "http://export.arxiv.org/api/query"

type Paper struct {
	Title     string
	Summary   string
	Published string // YYYY-MM-DD
}

// ArxivService searches the arXiv Atom API, newest submissions first.
type ArxivService struct {
	hc      *http.Client
	baseURL string
}

func NewArxivService(hc *http.Client, baseURL string) *ArxivService {
	if baseURL == "" {
		baseURL = defaultArxivURL
	}
	return &ArxivService{hc: hc, baseURL: baseURL}
}

type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	Title     string `xml:"title"`
	Summary   string `xml:"summary"`
	Published string `xml:"published"`
}

func (s *ArxivService) Search(ctx context.Context, query string, maxResults int) ([]Paper, error) {
	q := url.Values{}
	q.Set("search_query", "all:"+query)
	q.Set("start", "0")
	q.Set("max_results", strconv.Itoa(maxResults))
	q.Set("sortBy", "submittedDate")
	q.Set("sortOrder", "descending")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var feed atomFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}

	papers := make([]Paper, 0, len(feed.Entries))
	for _, e := range feed.Entries {
		published := e.Published
		if len(published) > 10 {
			published = published[:10]
		}
		papers = append(papers, Paper{
			Title:     collapseWhitespace(e.Title),
			Summary:   collapseWhitespace(e.Summary),
			Published: published,
		})
	}
	return papers, nil
}

// collapseWhitespace flattens the hard-wrapped text arXiv returns.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
