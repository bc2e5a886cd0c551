// Package extract pulls candidate vehicle-model names out of free text.
package extract

import (
	"regexp"
	"strings"
)

// Candidate spans are one or two capitalized tokens, optionally preceded
// by a connector word which is consumed but never captured. Hyphenated
// trim levels ("F-150", "CX-5") count as a single token.
var modelPattern = regexp.MustCompile(
	`(?:(?i:\b(?:vs|versus|compare|between|and)\b)\s)?` +
		`([A-Z][a-zA-Z0-9-]+\s(?:[A-Z][a-zA-Z0-9-]+-?)+` +
		`|[A-Z][a-zA-Z0-9-]+\s[A-Z][a-zA-Z0-9-]+` +
		`|[A-Z][a-zA-Z0-9-]+)`)

// Capitalized words that start sentences or questions but never name a
// model. Matched case-sensitively against the whole candidate.
var stopWords = map[string]struct{}{
	"Compare": {},
	"Between": {},
	"And":     {},
	"The":     {},
	"A":       {},
}

// Models returns the candidate model names found in text, in order of
// appearance. Pure and deterministic; no lookup against reference data
// happens here, so false positives and negatives are expected. Callers
// must handle an empty result.
func Models(text string) []string {
	var out []string
	for _, idx := range modelPattern.FindAllStringSubmatchIndex(text, -1) {
		start, end := idx[2], idx[3]
		if start < 0 {
			continue
		}
		candidate := text[start:end]
		if _, stop := stopWords[candidate]; stop {
			continue
		}
		// A candidate cut short by an apostrophe is a contraction
		// ("What's", "Let's"), not a model name.
		if end < len(text) && text[end] == '\'' {
			continue
		}
		// A lone capitalized word opening the text is sentence
		// capitalization ("Tell me about..."), unless it carries a
		// digit or hyphen like a trim level does.
		if start == 0 && !strings.ContainsAny(candidate, " -0123456789") {
			continue
		}
		out = append(out, candidate)
	}
	return out
}
