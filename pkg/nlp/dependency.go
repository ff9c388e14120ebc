package nlp

import "strings"

// TaggedToken is a token with its Penn Treebank part-of-speech tag
type TaggedToken struct {
	Text string
	Tag  string
}

var subordinators = map[string]struct{}{
	"if": {}, "when": {}, "whenever": {}, "before": {}, "after": {},
	"because": {}, "while": {}, "once": {}, "until": {}, "unless": {},
	"since": {}, "although": {}, "though": {}, "whereas": {},
}

func isVerbTag(tag string) bool {
	return strings.HasPrefix(tag, "VB")
}

func isSentenceEnd(tag string) bool {
	return tag == "."
}

// LabelDependencies assigns a shallow dependency role to each tagged token.
//
// It approximates the two clausal roles the extractor reads:
//   - xcomp: a base-form verb introduced by "to" after another verb
//     ("we need to *finish* the report")
//   - advcl: the first verb after a subordinating conjunction
//     ("call me when you *arrive*")
//
// The first remaining main verb of each sentence is ROOT; everything else is
// "aux", "mark" or the unclassified "dep".
func LabelDependencies(tagged []TaggedToken) []Token {
	out := make([]Token, 0, len(tagged))

	var (
		sawVerb       bool
		pendingTo     bool
		pendingMarker bool
		rootAssigned  bool
	)

	for _, tt := range tagged {
		dep := DepUnclassified
		lower := strings.ToLower(tt.Text)

		switch {
		case isSentenceEnd(tt.Tag):
			sawVerb, pendingTo, pendingMarker, rootAssigned = false, false, false, false

		case tt.Tag == "TO":
			dep = DepAux
			pendingTo = sawVerb

		case isSubordinator(lower, tt.Tag):
			dep = DepMark
			pendingMarker = true
			pendingTo = false

		case isVerbTag(tt.Tag):
			switch {
			case pendingMarker:
				dep = DepAdvCl
				pendingMarker = false
			case pendingTo && tt.Tag == "VB":
				dep = DepXComp
			case !rootAssigned:
				dep = DepRoot
				rootAssigned = true
			}
			pendingTo = false
			sawVerb = true

		case tt.Tag == "MD":
			dep = DepAux

		case tt.Tag == "," || tt.Tag == ":":
			pendingMarker = false
			pendingTo = false

		case tt.Tag == "RB":
			// adverbs may sit between "to" and its verb ("to quickly review")

		default:
			pendingTo = false
		}

		out = append(out, Token{Text: tt.Text, Dep: dep})
	}

	return out
}

func isSubordinator(lower, tag string) bool {
	if tag != "IN" && tag != "WRB" {
		return false
	}
	_, ok := subordinators[lower]
	return ok
}
