// Package nlp defines the linguistic analysis capability used by the
// extraction engine and ships the backends that provide it: an in-process
// analyzer built on prose, an HTTP client for a remote spaCy service, and a
// caching decorator.
package nlp

import "context"

// Entity labels
const (
	LabelDate   = "DATE"
	LabelTime   = "TIME"
	LabelPerson = "PERSON"
	LabelGPE    = "GPE"
	LabelOrg    = "ORG"
)

// Dependency roles
const (
	DepXComp        = "xcomp" // open clausal complement
	DepAdvCl        = "advcl" // adverbial clause modifier
	DepRoot         = "ROOT"
	DepAux          = "aux"
	DepMark         = "mark"
	DepUnclassified = "dep"
)

// Entity is a span of text tagged with a semantic category
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Token is a single word with its syntactic dependency role
type Token struct {
	Text string `json:"text"`
	Dep  string `json:"dep"`
}

// Sentence is one segmented sentence of the input
type Sentence struct {
	Text string `json:"text"`
}

// AnalyzedText is the result of running linguistic analysis over raw text.
// All three sequences keep the order in which the backend produced them.
type AnalyzedText struct {
	Entities  []Entity   `json:"ents"`
	Tokens    []Token    `json:"tokens"`
	Sentences []Sentence `json:"sents"`
}

// Analyzer turns raw text into AnalyzedText.
// Implementations are built once per process and must be safe for concurrent use.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (*AnalyzedText, error)
}

// AnalyzerFunc adapts a function to the Analyzer interface
type AnalyzerFunc func(ctx context.Context, text string) (*AnalyzedText, error)

// Analyze calls f(ctx, text)
func (f AnalyzerFunc) Analyze(ctx context.Context, text string) (*AnalyzedText, error) {
	return f(ctx, text)
}
