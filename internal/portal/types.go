package portal

import (
	"context"

	"github.com/legisclaro/legisclaro/internal/citations"
)

// maxContentLen caps statute text stored in a StatuteContent at 5000
// characters. Portal pages carry navigation chrome and full statute
// bodies far beyond what the verification prompt can use.
const maxContentLen = 5000

// ResultRef is the first search hit for a law query: where the statute
// lives and how the portal titles it.
type ResultRef struct {
	Title string
	Link  string
}

// StatuteContent is the fetched, truncated text of one statute.
type StatuteContent struct {
	ID      citations.LawID
	Title   string
	URL     string
	Content string
}

// Searcher finds the portal page for a law query.
type Searcher interface {
	Search(ctx context.Context, query string) (*ResultRef, error)
}

// TextFetcher retrieves the plain text of a statute page.
type TextFetcher interface {
	FetchText(ctx context.Context, link string) (string, error)
}

// Portal is the retrieval capability the pipeline depends on. Splitting
// search from text fetch keeps the concrete backend swappable without
// touching the analyzer or the orchestrator.
type Portal interface {
	Searcher
	TextFetcher
	// Fetch composes Search and FetchText for one law id. It returns nil,
	// never an error: retrieval failures are logged and swallowed so the
	// caller can continue with partial context.
	Fetch(ctx context.Context, lawID citations.LawID) *StatuteContent
}
