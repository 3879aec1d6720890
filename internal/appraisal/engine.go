package appraisal

import "math"

const (
	maxBrandability = 30
	maxMeme         = 30
	maxNonMemeMeme  = 15
	maxValue        = 40
	maxFinalScore   = 100
)

// priceBand maps a minimum final score to a SOL estimate range.
type priceBand struct {
	MinScore float64
	Low      float64
	High     float64
}

// priceBands is ordered from the highest threshold down.
var priceBands = []priceBand{
	{MinScore: 80, Low: 12, High: 50},
	{MinScore: 60, Low: 5, High: 12},
	{MinScore: 30, Low: 2, High: 5},
	{MinScore: 0, Low: 0.5, High: 2},
}

// Appraise scores a domain name.
// Parameters:
//   - input: raw name, optionally with a ".sol" suffix and surrounding whitespace.
//
// Returns:
//   - *Breakdown: the full appraisal; numeric fields rounded to one decimal.
//   - error: *InvalidDomainNameError (matching ErrInvalidDomainName) if the
//     name is empty after normalization.
func Appraise(input string) (*Breakdown, error) {
	name := Normalize(input)
	if name == "" {
		return nil, &InvalidDomainNameError{Input: input}
	}

	structure := AnalyzeStructure(name)
	categories := DetectCategories(name)
	rarity := ScoreRarity(name, structure, categories)
	hype := ScoreHype(name)

	brandability := math.Min(maxBrandability,
		2*rarity.Brand+2*rarity.Linguistic+rarity.CleanlinessScore)

	var meme float64
	if hasCategory(categories, CategoryDegen) || hasCategory(categories, CategoryMeme) {
		meme = math.Min(maxMeme, hype.MemeBoost+rarity.MemeAffinity)
	} else {
		meme = math.Min(maxNonMemeMeme, hype.MemeBoost*0.5)
	}

	value := math.Min(maxValue,
		rarity.LengthValue+1.5*rarity.SemanticValue+2*rarity.UseCaseScore+2*hype.HypeBoost)

	finalScore := math.Min(maxFinalScore, brandability+meme+value)
	low, high := PriceEstimate(finalScore)

	if categories == nil {
		categories = []Category{}
	}

	return &Breakdown{
		Name:            name,
		Brandability:    round1(brandability),
		Meme:            round1(meme),
		Value:           round1(value),
		FinalScore:      round1(finalScore),
		SolEstimateLow:  low,
		SolEstimateHigh: high,
		Tier:            TierForScore(finalScore),
		Categories:      categories,
		Alerts:          rarity.Alerts,
		Quip:            GenerateQuip(name, brandability, meme, value, finalScore, categories),
		Structure:       structure,
		Rarity:          roundRarity(rarity),
		Hype:            roundHype(hype),
	}, nil
}

// PriceEstimate returns the SOL range for a final score. Bands are
// non-decreasing in score.
func PriceEstimate(finalScore float64) (low, high float64) {
	for _, b := range priceBands {
		if finalScore >= b.MinScore {
			return b.Low, b.High
		}
	}
	last := priceBands[len(priceBands)-1]
	return last.Low, last.High
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func roundRarity(r RarityScore) RarityScore {
	r.Brand = round1(r.Brand)
	r.Linguistic = round1(r.Linguistic)
	r.CleanlinessScore = round1(r.CleanlinessScore)
	r.LengthValue = round1(r.LengthValue)
	r.SemanticValue = round1(r.SemanticValue)
	r.UseCaseScore = round1(r.UseCaseScore)
	r.MemeAffinity = round1(r.MemeAffinity)
	return r
}

func roundHype(h HypeScore) HypeScore {
	h.MemeBoost = round1(h.MemeBoost)
	h.HypeBoost = round1(h.HypeBoost)
	return h
}
