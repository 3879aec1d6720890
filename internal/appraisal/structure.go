package appraisal

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// DomainSuffix is the extension marker stripped during normalization.
const DomainSuffix = ".sol"

var (
	tokenSeparator = regexp.MustCompile(`[\s\-_]+`)
	// silentEnding drops endings that rarely add a syllable ("-es", "-ed", silent "e").
	silentEnding = regexp.MustCompile(`(?:[^laeiouy]es|ed|[^laeiouy]e)$`)
	vowelGroup   = regexp.MustCompile(`[aeiouy]{1,2}`)
)

// Normalize folds a raw input into the canonical name: NFKC, lowercase,
// trimmed, with any trailing ".sol" markers removed. It is idempotent.
func Normalize(input string) string {
	name := strings.ToLower(norm.NFKC.String(input))
	for {
		trimmed := strings.TrimSpace(name)
		if !strings.HasSuffix(trimmed, DomainSuffix) {
			return trimmed
		}
		name = strings.TrimSuffix(trimmed, DomainSuffix)
	}
}

// Tokenize splits a name on runs of whitespace, hyphens and underscores.
func Tokenize(name string) []string {
	parts := tokenSeparator.Split(name, -1)
	tokens := parts[:0]
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// AnalyzeStructure measures an already-normalized name. An empty name yields a
// zero structure; rejecting it is the caller's job.
//
// Only the first token is checked against the dictionary: most names are a
// single compound word.
func AnalyzeStructure(name string) WordStructure {
	tokens := Tokenize(name)

	s := WordStructure{
		Length:         utf8.RuneCountInString(name),
		WordCount:      len(tokens),
		ContainsNumber: containsDigit(name),
		ContainsHyphen: strings.Contains(name, "-"),
	}

	if len(tokens) > 0 {
		s.IsWord = isDictionaryWord(tokens[0])
	}
	for _, t := range tokens {
		s.Syllables += countSyllables(t)
	}
	return s
}

func isDictionaryWord(token string) bool {
	if _, ok := dictionaryWords[token]; ok {
		return true
	}
	_, ok := brandWords[token]
	return ok
}

// countSyllables approximates syllables by counting vowel groups. Tokens of up
// to three characters always count as one; longer tokens without vowels count as zero.
func countSyllables(token string) int {
	if token == "" {
		return 0
	}
	if utf8.RuneCountInString(token) <= 3 {
		return 1
	}
	w := silentEnding.ReplaceAllString(token, "")
	w = strings.TrimPrefix(w, "y")
	return len(vowelGroup.FindAllString(w, -1))
}

func containsDigit(text string) bool {
	for _, r := range text {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
