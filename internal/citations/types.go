package citations

// Kind classifies what a citation points at.
type Kind string

const (
	// KindLaw marks a citation of a whole statute ("Lei 8.078/90").
	KindLaw Kind = "lei"
	// KindArticle marks a citation of an article or code name.
	KindArticle Kind = "artigo"
)

// Citation is a single pattern match inside a source document. The same
// textual phrase may appear more than once when it matches more than one
// pattern; matches are never merged at extraction time.
type Citation struct {
	Text  string `json:"texto"`
	Start int    `json:"inicio"`
	End   int    `json:"fim"`
	Kind  Kind   `json:"tipo"`
}

// LawID is the normalized identifier a citation resolves to. It is the
// deduplication and lookup key for statute retrieval.
type LawID string
