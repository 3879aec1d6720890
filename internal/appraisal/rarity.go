package appraisal

import (
	"fmt"
	"strings"
)

const (
	maxBrand          = 10
	maxLinguistic     = 10
	maxCleanliness    = 10
	maxUseCase        = 5
	maxMemeAffinity   = 10
	defaultSemantic   = 3
	digitPenalty      = 3
	hyphenPenalty     = 2
	cringePenalty     = 5
	linguisticMaxSize = 6
)

// ScoreRarity derives the rarity sub-scores from a name, its structure and its
// categories. Each sub-score is clamped to its documented range.
func ScoreRarity(name string, s WordStructure, categories []Category) RarityScore {
	cleanliness, alerts := scoreCleanliness(name, s)
	return RarityScore{
		Brand:            scoreBrand(name, s),
		Linguistic:       scoreLinguistic(s),
		CleanlinessScore: cleanliness,
		LengthValue:      LengthValue(s.Length),
		SemanticValue:    semanticValue(categories),
		UseCaseScore:     scoreUseCase(name),
		MemeAffinity:     scoreMemeAffinity(categories),
		Alerts:           alerts,
	}
}

func scoreBrand(name string, s WordStructure) float64 {
	var score float64
	if s.IsWord {
		score += 3
	}
	if lowSyllable(s) {
		score += 2
	}
	if !s.ContainsNumber && !s.ContainsHyphen {
		score += 2
	}
	if containsAny(name, startupKeywords) {
		score += 2
	}
	if hasTechAffix(name) {
		score += 1
	}
	return clampMax(score, maxBrand)
}

func scoreLinguistic(s WordStructure) float64 {
	var score float64
	if s.IsWord {
		score += 4
	}
	if lowSyllable(s) {
		score += 3
	}
	if s.WordCount == 1 {
		score += 2
	}
	if s.Length <= linguisticMaxSize {
		score += 1
	}
	return clampMax(score, maxLinguistic)
}

// scoreCleanliness starts at 10 and deducts per independent trigger, appending
// one alert per deduction.
func scoreCleanliness(name string, s WordStructure) (float64, []string) {
	score := float64(maxCleanliness)
	alerts := []string{}

	if s.ContainsNumber {
		score -= digitPenalty
		alerts = append(alerts, fmt.Sprintf("Contains numbers (-%d cleanliness)", digitPenalty))
	}
	if s.ContainsHyphen {
		score -= hyphenPenalty
		alerts = append(alerts, fmt.Sprintf("Contains hyphen (-%d cleanliness)", hyphenPenalty))
	}
	if flag, ok := firstMatch(name, cringeFlags); ok {
		score -= cringePenalty
		alerts = append(alerts, fmt.Sprintf("Cringe flag %q detected (-%d cleanliness)", flag, cringePenalty))
	}

	if score < 0 {
		score = 0
	}
	return score, alerts
}

// LengthValue is the length-tier lookup: 3-5 character names are premium.
func LengthValue(length int) float64 {
	switch {
	case length == 3:
		return 15
	case length == 4:
		return 12
	case length == 5:
		return 10
	case length <= 7:
		return 7
	case length <= 10:
		return 5
	case length <= 15:
		return 3
	default:
		return 1
	}
}

func semanticValue(categories []Category) float64 {
	if len(categories) == 0 {
		return defaultSemantic
	}
	var best float64
	for _, c := range categories {
		if v := semanticValues[c]; v > best {
			best = v
		}
	}
	return best
}

func scoreUseCase(name string) float64 {
	var best float64
	for _, k := range useCaseKeywords {
		if k.Points > best && strings.Contains(name, k.Keyword) {
			best = k.Points
		}
	}
	return clampMax(best, maxUseCase)
}

func scoreMemeAffinity(categories []Category) float64 {
	var score float64
	if hasCategory(categories, CategoryMeme) {
		score += 5
	}
	if hasCategory(categories, CategoryDegen) {
		score += 5
	}
	return clampMax(score, maxMemeAffinity)
}

func lowSyllable(s WordStructure) bool {
	return s.Syllables >= 1 && s.Syllables <= 2
}

func hasTechAffix(name string) bool {
	for _, p := range techPrefixes {
		if strings.HasPrefix(name, p) && name != p {
			return true
		}
	}
	for _, sfx := range techSuffixes {
		if strings.HasSuffix(name, sfx) && name != sfx {
			return true
		}
	}
	return false
}

func clampMax(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	return v
}
