package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Stop-words dropped before token matching. Short and deliberately
// generic: location names themselves must survive.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "of": {},
	"in": {}, "at": {}, "for": {}, "by": {}, "near": {}, "with": {},
}

// Tokenize lowercases s, splits on non-alphanumeric runes and drops
// stop-words and tokens shorter than minLen.
func Tokenize(s string, minLen int) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < minLen {
			continue
		}
		if _, skip := stopWords[f]; skip {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// MatchesAllTokens checks that every token appears, case-insensitively,
// somewhere in the haystack.
func MatchesAllTokens(haystack string, tokens []string) bool {
	lowered := strings.ToLower(haystack)
	for _, tok := range tokens {
		if !strings.Contains(lowered, tok) {
			return false
		}
	}
	return true
}

var slugStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// slugify lowercases, strips diacritics and special characters and
// hyphenates the remainder.
func slugify(s string) string {
	stripped, _, err := transform.String(slugStripper, s)
	if err != nil {
		stripped = s
	}

	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(stripped) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
