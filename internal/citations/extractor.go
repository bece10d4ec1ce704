package citations

import (
	"regexp"
	"strings"
)

// patterns is the fixed, ordered rule set applied to every document. Each
// rule runs independently over the whole text, so overlapping matches from
// different rules are all reported.
var patterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Lei\s+n?º?\s*(\d+\.?\d*/?-?\d*)`),
	regexp.MustCompile(`(?i)artigo\s+(\d+[ºª]?)`),
	regexp.MustCompile(`(?i)art\.\s*(\d+[ºª]?)`),
	regexp.MustCompile(`(?i)Código\s+(Civil|Penal|de\s+Defesa\s+do\s+Consumidor)`),
	regexp.MustCompile(`(?i)CDC`),
	regexp.MustCompile(`(?i)CC`),
}

// Extract scans text for statute and article references. The result is
// deterministic for a given input: rules run in a fixed order and each
// match carries its exact byte span. Returns an empty slice when nothing
// matches.
func Extract(text string) []Citation {
	var found []Citation
	for _, re := range patterns {
		for _, span := range re.FindAllStringIndex(text, -1) {
			matched := text[span[0]:span[1]]
			kind := KindArticle
			if strings.Contains(matched, "Lei") {
				kind = KindLaw
			}
			found = append(found, Citation{
				Text:  matched,
				Start: span[0],
				End:   span[1],
				Kind:  kind,
			})
		}
	}
	if found == nil {
		found = []Citation{}
	}
	return found
}
