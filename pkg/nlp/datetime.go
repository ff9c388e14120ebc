package nlp

import (
	"regexp"
	"sort"
)

// entitySpan is an Entity with its byte offsets in the source text
type entitySpan struct {
	Entity
	Start int
	End   int
}

type labelPattern struct {
	label string
	re    *regexp.Regexp
}

const (
	monthName = `(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|June?|July?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\.?`
	dayNumber = `(?:[12]\d|3[01]|0?[1-9])(?:st|nd|rd|th)?`
	yearNum   = `(?:19|20)\d{2}`
	weekday   = `(?i:monday|tuesday|wednesday|thursday|friday|saturday|sunday)s?`
	relative  = `(?i:next|this|last|coming)`
	count     = `(?i:a|one|two|three|four|five|six|seven|eight|nine|ten|a few|several|\d+)`
)

// Patterns are tried in order; when two matches start at the same offset
// the longer one wins, and ties go to the earlier pattern.
var dateTimePatterns = []labelPattern{
	// times first so "tomorrow morning" is TIME rather than DATE + leftover
	{LabelTime, regexp.MustCompile(`\b\d{1,2}(?::[0-5]\d)?\s*(?i:[ap]\.m\.|[ap]m\b)`)},
	{LabelTime, regexp.MustCompile(`\b(?:[01]?\d|2[0-3]):[0-5]\d\b`)},
	{LabelTime, regexp.MustCompile(`\b\d{1,2}\s+o'clock\b`)},
	{LabelTime, regexp.MustCompile(`\b(?i:(?:this|tomorrow|yesterday|` + relative + `\s+\w+day)\s+(?:morning|afternoon|evening|night)|tonight|noon|midday|midnight|in the (?:morning|afternoon|evening))\b`)},
	{LabelTime, regexp.MustCompile(`\b` + count + `\s+(?i:hours?|minutes?)\b`)},

	{LabelDate, regexp.MustCompile(`\b(?:` + relative + `\s+)?` + weekday + `\b`)},
	{LabelDate, regexp.MustCompile(`\b` + monthName + `\s+` + dayNumber + `(?:,?\s+` + yearNum + `)?\b`)},
	{LabelDate, regexp.MustCompile(`\b(?i:the\s+)?` + dayNumber + `\s+(?i:of\s+)?` + monthName + `(?:,?\s+` + yearNum + `)?\b`)},
	{LabelDate, regexp.MustCompile(`\b` + monthName + `\s+` + yearNum + `\b`)},
	{LabelDate, regexp.MustCompile(`\b(?:January|February|March|April|June|July|August|September|October|November|December)\b`)},
	{LabelDate, regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)},
	{LabelDate, regexp.MustCompile(`\b\d{1,2}/\d{1,2}(?:/\d{2,4})?\b`)},
	{LabelDate, regexp.MustCompile(`\b(?i:the day after tomorrow|today|tomorrow|yesterday)\b`)},
	{LabelDate, regexp.MustCompile(`\b` + relative + `\s+(?i:week|weekend|month|year|quarter)\b`)},
	{LabelDate, regexp.MustCompile(`\b(?i:end of (?:the )?(?:day|week|month|year|quarter))\b`)},
	{LabelDate, regexp.MustCompile(`\b` + count + `\s+(?i:days?|weeks?|months?|years?)\b`)},
}

// recognizeDateTimes finds DATE and TIME mentions in text, ordered by
// position and never overlapping.
func recognizeDateTimes(text string) []entitySpan {
	type candidate struct {
		entitySpan
		order int
	}

	var candidates []candidate
	for i, p := range dateTimePatterns {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			candidates = append(candidates, candidate{
				entitySpan: entitySpan{
					Entity: Entity{Text: text[loc[0]:loc[1]], Label: p.label},
					Start:  loc[0],
					End:    loc[1],
				},
				order: i,
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if la, lb := a.End-a.Start, b.End-b.Start; la != lb {
			return la > lb
		}
		return a.order < b.order
	})

	spans := make([]entitySpan, 0, len(candidates))
	end := -1
	for _, c := range candidates {
		if c.Start < end {
			continue
		}
		spans = append(spans, c.entitySpan)
		end = c.End
	}
	return spans
}
