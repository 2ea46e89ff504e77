package tools

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/reagent/reagent/internal/service"
)

const (
	maxPaperResults  = 25
	summaryCharLimit = 200
)

// PapersTool searches arXiv for recent papers matching a query.
func PapersTool(svc *service.ArxivService) Tool {
	return Tool{
		Name:        "search_arxiv",
		Description: "Searches for research papers on arXiv",
		Usage:       `search_arxiv("transformers", 3)`,
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			query, err := stringArg(args, "query")
			if err != nil {
				return "", err
			}
			maxF, err := optNumberArg(args, "max_results", 3)
			if err != nil {
				return "", err
			}
			maxResults := int(maxF)
			if maxResults < 1 {
				maxResults = 1
			}
			if maxResults > maxPaperResults {
				maxResults = maxPaperResults
			}

			papers, err := svc.Search(ctx, query, maxResults)
			if err != nil {
				return fmt.Sprintf("arXiv API error: %v", err), nil
			}
			if len(papers) > maxResults {
				papers = papers[:maxResults]
			}
			if len(papers) == 0 {
				return fmt.Sprintf("No papers found for query '%s'", query), nil
			}

			lines := []string{fmt.Sprintf("Found %d recent paper(s) on '%s':", len(papers), query)}
			for i, p := range papers {
				summary := truncateSummary(p.Summary, summaryCharLimit)
				lines = append(lines, fmt.Sprintf("\n%d. %s", i+1, p.Title))
				lines = append(lines, fmt.Sprintf("   Published: %s", p.Published))
				lines = append(lines, fmt.Sprintf("   Summary: %s", summary))
			}
			return strings.Join(lines, "\n"), nil
		},
	}
}

// truncateSummary cuts an abstract to at most limit characters. Abstracts
// frequently contain accented names and math symbols, so the cut counts
// runes rather than bytes to avoid splitting a multi-byte character.
func truncateSummary(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "..."
}
