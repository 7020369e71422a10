package domain

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// WordPunctuation is the set of characters stripped from both ends of a
// token before it is measured or looked up.
const WordPunctuation = ".,!?;:"

// StripPunctuation removes leading and trailing WordPunctuation characters.
// Inner punctuation ("don't", "well-known") is preserved.
func StripPunctuation(word string) string {
	return strings.Trim(word, WordPunctuation)
}

// WordLength returns the number of characters (not bytes) of word once
// punctuation has been stripped.
func WordLength(word string) int {
	return utf8.RuneCountInString(StripPunctuation(word))
}

// NormalizeWord prepares a single word for table lookup:
//   - converts to lowercase
//   - strips WordPunctuation from both ends
//
// Surrounding whitespace is not trimmed; a word never contains any.
func NormalizeWord(word string) string {
	// cases.Caser is stateful, so one is created per call.
	return StripPunctuation(cases.Lower(language.Und).String(word))
}

// Tokenize splits text into whitespace-delimited tokens, keeping each
// token's punctuation intact.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// Preview returns at most n characters of text, for logging.
func Preview(text string, n int) string {
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	runes := []rune(text)
	return string(runes[:n])
}
