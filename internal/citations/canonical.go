package citations

import "strings"

// Canonical ids for the two codes the extractor recognizes by name.
const (
	ConsumerCodeID LawID = "Lei 8.078/90"
	CivilCodeID    LawID = "Lei 10.406/2002"
)

// aliasTable maps recognized substrings of a citation to the canonical id
// of the statute they refer to. Order matters: the full code names are
// checked before the bare abbreviations so "Código Civil" never falls
// through to the "CC" rule by accident.
var aliasTable = []struct {
	substr string
	id     LawID
}{
	{"Código de Defesa do Consumidor", ConsumerCodeID},
	{"CDC", ConsumerCodeID},
	{"Código Civil", CivilCodeID},
	{"CC", CivilCodeID},
}

// Canonicalize resolves a citation's text to the normalized law id used
// for statute lookup and deduplication. Citations that already name a law
// ("Lei 8.078/90") keep their literal text. Citations that match no rule,
// such as bare article references, report ok=false and are excluded from
// law retrieval without being dropped from the citation list itself.
func Canonicalize(text string) (LawID, bool) {
	if strings.Contains(text, "Lei") {
		return LawID(text), true
	}
	for _, alias := range aliasTable {
		if strings.Contains(text, alias.substr) {
			return alias.id, true
		}
	}
	return "", false
}

// LawLike reports whether a citation plausibly names a statute rather
// than a bare article, and so should contribute an entry to the found-laws
// summary.
func LawLike(c Citation) bool {
	return c.Kind == KindLaw ||
		strings.Contains(c.Text, "CDC") ||
		strings.Contains(c.Text, "Código")
}
