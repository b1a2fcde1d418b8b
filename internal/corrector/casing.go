package corrector

import (
	"strings"
	"unicode"
)

// Case is the letter-casing pattern of a word.
type Case int

const (
	CaseLower Case = iota
	CaseTitle
	CaseAllCaps
	CaseMixed
)

func (c Case) String() string {
	switch c {
	case CaseLower:
		return "lower"
	case CaseTitle:
		return "title"
	case CaseAllCaps:
		return "all-caps"
	case CaseMixed:
		return "mixed"
	}
	return "unknown"
}

// Classify inspects the letters of word and returns its casing pattern.
// Words of two or more letters that are entirely uppercase classify as
// CaseAllCaps; a single uppercase letter is CaseTitle, not an acronym.
func Classify(word string) Case {
	var letters []rune
	for _, r := range word {
		if unicode.IsLetter(r) {
			letters = append(letters, r)
		}
	}
	if len(letters) == 0 {
		return CaseLower
	}
	uppers := 0
	for _, r := range letters {
		if unicode.IsUpper(r) {
			uppers++
		}
	}
	switch {
	case uppers == len(letters) && len(letters) >= 2:
		return CaseAllCaps
	case uppers == 0:
		return CaseLower
	case uppers == 1 && unicode.IsUpper(letters[0]):
		return CaseTitle
	}
	return CaseMixed
}

// ApplyCase re-cases a lowercase replacement to match the casing of the
// original word. Mixed-case originals copy their case pattern letter by
// letter when lengths match; otherwise the first letter decides between
// title and lower casing.
func ApplyCase(replacement, original string, c Case) string {
	switch c {
	case CaseLower:
		return strings.ToLower(replacement)
	case CaseTitle:
		return title(replacement)
	case CaseAllCaps:
		return strings.ToUpper(replacement)
	}
	or := []rune(original)
	rr := []rune(replacement)
	if len(or) == len(rr) {
		for i, r := range rr {
			if unicode.IsUpper(or[i]) {
				rr[i] = unicode.ToUpper(r)
			} else {
				rr[i] = unicode.ToLower(r)
			}
		}
		return string(rr)
	}
	if len(or) > 0 && unicode.IsUpper(or[0]) {
		return title(replacement)
	}
	return strings.ToLower(replacement)
}

func title(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}
