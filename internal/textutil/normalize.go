package textutil

import (
	"regexp"
	"strings"
)

// boilerplatePrefixPattern strips leading organizational boilerplate such as
// "Hearing:", "Full Committee Markup:", or "Subcommittee on Health Hearing:".
var boilerplatePrefixPattern = regexp.MustCompile(`(?i)^(.*?)(hearing|markup|meeting|subcommittee|committee|full committee)\s*:\s*`)

// whitespacePattern collapses runs of whitespace.
var whitespacePattern = regexp.MustCompile(`\s+`)

// billPattern folds legislative designations ("H.R. 1234", "S. Res. 56") into
// single tokens so they survive tokenization.
var billPattern = regexp.MustCompile(`(?i)\b(h\.\s*r\.|h\.\s*res\.|s\.\s*res\.|h\.\s*j\.\s*res\.|s\.)\s*(\d)`)

// stopwords are tokens that carry no signal when comparing event titles.
// Organizational words (full, committee, subcommittee, joint) are filtered
// too; the category keywords (hearing, markup) stay because they carry the
// type signal.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "at": {}, "by": {}, "for": {},
	"in": {}, "of": {}, "on": {}, "or": {}, "the": {}, "to": {},
	"with": {}, "re": {},
	"full": {}, "committee": {}, "subcommittee": {}, "joint": {},
}

// NormalizeTitle prepares a title for comparison: boilerplate prefixes are
// removed, symbols are folded to words, whitespace is collapsed, and the
// result is lowercased.
func NormalizeTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	title = boilerplatePrefixPattern.ReplaceAllString(title, "")
	title = billPattern.ReplaceAllStringFunc(title, func(m string) string {
		sub := billPattern.FindStringSubmatch(m)
		designation := strings.NewReplacer(".", "", " ", "").Replace(sub[1])
		return designation + " " + sub[2]
	})
	lowered := strings.ToLower(title)
	lowered = strings.ReplaceAll(lowered, "&", " and ")
	lowered = strings.ReplaceAll(lowered, "+", " and ")
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(lowered, " "))
}

// IsStopword reports whether a token is filtered during tokenization.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}
