package appraisal

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	shortNameMaxLength    = 4
	defaultBrandMaxLength = 15
)

// defianceMatcher flags names built on a negation prefix. It also matches plain
// words that merely start with those letters ("noble", "until").
var defianceMatcher = regexp.MustCompile(`\b(?:not|anti|un|non|no)\w*`)

// DetectCategories classifies a normalized name. The result is a set in
// detection order; it may be empty for long or digit/hyphenated names that
// match no keyword.
func DetectCategories(name string) []Category {
	var categories []Category
	add := func(c Category) {
		if !hasCategory(categories, c) {
			categories = append(categories, c)
		}
	}

	length := utf8.RuneCountInString(name)
	if length > 0 && length <= shortNameMaxLength {
		add(CategoryShort)
	}
	if containsBrandWord(name) {
		add(CategoryBrand)
	}
	for _, c := range allCategories {
		if containsAny(name, categoryKeywords[c]) {
			add(c)
		}
	}
	if defianceMatcher.MatchString(name) {
		add(CategoryDefiance)
	}

	if len(categories) == 0 &&
		length <= defaultBrandMaxLength &&
		!containsDigit(name) &&
		!strings.Contains(name, "-") {
		add(CategoryBrand)
	}
	return categories
}

func containsBrandWord(name string) bool {
	for w := range brandWords {
		if strings.Contains(name, w) {
			return true
		}
	}
	return false
}

func containsAny(name string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(name, k) {
			return true
		}
	}
	return false
}

// firstMatch returns the first keyword contained in name.
func firstMatch(name string, keywords []string) (string, bool) {
	for _, k := range keywords {
		if strings.Contains(name, k) {
			return k, true
		}
	}
	return "", false
}
