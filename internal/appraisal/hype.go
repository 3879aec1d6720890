package appraisal

import (
	"strings"
	"unicode/utf8"
)

const (
	maxMemeBoost        = 30
	maxHypeBoost        = 10
	shortMemeyMaxLength = 5
	shortMemeyBonus     = 3
)

// ScoreHype scores the raw normalized name against the cultural-reference,
// slang and trending-pattern tables. Every matching keyword in a table
// contributes its points; each keyword is listed at most once.
func ScoreHype(name string) HypeScore {
	h := HypeScore{
		CulturalRelevance: []string{},
		SlangMatches:      []string{},
	}

	var memeBoost float64
	for _, k := range culturalReferences {
		if strings.Contains(name, k.Keyword) {
			memeBoost += k.Points
			h.CulturalRelevance = append(h.CulturalRelevance, k.Keyword)
		}
	}
	for _, k := range memeSlang {
		if strings.Contains(name, k.Keyword) {
			memeBoost += k.Points
			h.SlangMatches = append(h.SlangMatches, k.Keyword)
		}
	}

	var hypeBoost float64
	for _, p := range trendingPatterns {
		if matchesTrending(name, p.Keyword) {
			hypeBoost += p.Points
		}
	}
	if memeBoost > 0 && utf8.RuneCountInString(name) <= shortMemeyMaxLength {
		hypeBoost += shortMemeyBonus
	}

	h.MemeBoost = clampMax(memeBoost, maxMemeBoost)
	h.HypeBoost = clampMax(hypeBoost, maxHypeBoost)
	return h
}

// matchesTrending is true on exact equality, prefix or suffix; a pattern counts once.
func matchesTrending(name, pattern string) bool {
	return name == pattern ||
		strings.HasPrefix(name, pattern) ||
		strings.HasSuffix(name, pattern)
}
