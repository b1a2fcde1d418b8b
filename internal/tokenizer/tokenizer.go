// Package tokenizer splits plain text into word tokens with exact
// line/column coordinates so corrections can be written back in place.
package tokenizer

import (
	"strings"
	"unicode"
)

// Token is a single word-like substring with its source position.
// Line is 1-based; Col is the 0-based rune offset within the line.
type Token struct {
	Text string `json:"text"`
	Line int    `json:"line"`
	Col  int    `json:"col"`
}

// Tokenize extracts all word tokens from text. A word is a run of letters,
// optionally containing apostrophes or hyphens that are surrounded by letters
// on both sides ("don't", "well-known"). Everything else separates words.
// Tokens are returned in strictly increasing (line, col) order.
func Tokenize(text string) []Token {
	var tokens []Token
	for i, line := range strings.Split(text, "\n") {
		tokens = appendLineTokens(tokens, line, i+1)
	}
	return tokens
}

func appendLineTokens(tokens []Token, line string, lineNum int) []Token {
	rs := []rune(line)
	i := 0
	for i < len(rs) {
		if !unicode.IsLetter(rs[i]) {
			i++
			continue
		}
		start := i
		i++
		for i < len(rs) {
			r := rs[i]
			if unicode.IsLetter(r) {
				i++
				continue
			}
			// apostrophe/hyphen only joins when a letter follows
			if (r == '\'' || r == '-') && i+1 < len(rs) && unicode.IsLetter(rs[i+1]) {
				i += 2
				continue
			}
			break
		}
		tokens = append(tokens, Token{Text: string(rs[start:i]), Line: lineNum, Col: start})
	}
	return tokens
}
