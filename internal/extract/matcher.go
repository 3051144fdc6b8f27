package extract

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

const octetPattern = `(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)`

// candidateRE has no \b anchors: RE2 word boundaries are ASCII only, so
// boundaries are checked on the surrounding runes instead.
var candidateRE = regexp.MustCompile(`(?:` + octetPattern + `\.){3}` + octetPattern)

// FindCandidates returns every dotted-quad shaped substring of text, left to
// right and without overlap. Duplicates are kept. A match touching a letter,
// digit or underscore of any script is not a candidate. It returns nil when
// text contains no candidates.
func FindCandidates(text string) []string {
	if text == "" {
		return nil
	}

	var out []string
	for pos := 0; pos < len(text); {
		loc := candidateRE.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if bounded(text, start, end) {
			out = append(out, text[start:end])
			pos = end
			continue
		}
		// A rejected match may still hide a candidate starting further in.
		_, size := utf8.DecodeRuneInString(text[start:])
		pos = start + size
	}
	return out
}

// bounded reports whether text[start:end] sits between word boundaries.
func bounded(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
