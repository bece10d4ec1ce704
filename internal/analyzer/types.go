package analyzer

// Discrepancy is one classified finding comparing what the document
// claims about a citation against what the cited statute actually says.
// Field names on the wire follow the public API shape.
type Discrepancy struct {
	// Kind is "erro", "alerta" or "ok".
	Kind string `json:"tipo"`
	// Severity is "alta", "média" or "baixa".
	Severity string `json:"gravidade"`
	// ArticleRef names the cited article, e.g. "Artigo 421 da Lei 10.406/2002".
	ArticleRef string `json:"artigo"`
	// OriginalText quotes the document fragment the finding refers to.
	OriginalText string `json:"textoOriginal"`
	// Problem describes what is wrong; null when the citation checks out.
	Problem *string `json:"problemaEncontrado"`
	// CorrectArticle points at the article that should have been cited,
	// when one applies.
	CorrectArticle *string `json:"artigoCorreto"`
	// Suggestion carries either a fix or a confirmation.
	Suggestion string `json:"sugestao"`
}
