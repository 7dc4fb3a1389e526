// Package webpage normalises raw scraped career-page text into the
// canonical lowercase token stream the extractor and matcher consume.
package webpage

import (
	"regexp"
	"strings"
)

// boilerplate lists career-page phrases removed as whole-word matches so
// a phrase embedded inside a longer legitimate word is left intact.
var boilerplate = []string{
	"apply now",
	"apply online",
	"about us",
	"privacy policy",
	"cookie policy",
	"terms of use",
	"careers",
	"job openings",
	"current openings",
	"view more jobs",
	"subscribe",
	"sign up",
	"log in",
	"back to careers",
	"contact us",
}

// Pre-compiled regular expressions for the cleaning pipeline.
var (
	markupTag   = regexp.MustCompile(`<[^>]*?>`)
	urlLike     = regexp.MustCompile(`https?://\S+`)
	nonAlphanum = regexp.MustCompile(`[^a-zA-Z0-9 ]`)
	multiSpace  = regexp.MustCompile(`\s{2,}`)

	boilerplateRes = compileBoilerplate()
)

func compileBoilerplate() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(boilerplate))
	for i, phrase := range boilerplate {
		res[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(phrase) + `\b`)
	}
	return res
}

// Clean normalises raw scraped page text:
//
//   - strips markup tags and URL-like substrings
//   - replaces any character outside [A-Za-z0-9 ] with a space
//   - lowercases
//   - removes boilerplate phrases as whole words
//   - collapses whitespace runs and trims the ends
//
// Empty input returns an empty string.
func Clean(raw string) string {
	if raw == "" {
		return ""
	}

	text := markupTag.ReplaceAllString(raw, "")
	text = urlLike.ReplaceAllString(text, "")
	text = nonAlphanum.ReplaceAllString(text, " ")
	text = strings.ToLower(text)

	for _, re := range boilerplateRes {
		text = re.ReplaceAllString(text, " ")
	}

	text = multiSpace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
