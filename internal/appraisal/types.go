// Package appraisal scores .sol domain names for brandability, meme potential
// and market value, and maps the result to a SOL price band and a quip.
//
// Every function in this package is pure: keyword tables are read-only and
// initialized once, so Appraise is safe for concurrent use.
package appraisal

// Category is a semantic tag a domain name may carry.
type Category string

const (
	CategoryShort     Category = "short"
	CategoryBrand     Category = "brand"
	CategoryTech      Category = "tech"
	CategoryMeme      Category = "meme"
	CategoryDegen     Category = "degen"
	CategoryFinance   Category = "finance"
	CategoryGaming    Category = "gaming"
	CategoryDAO       Category = "dao"
	CategoryCreator   Category = "creator"
	CategoryAesthetic Category = "aesthetic"
	CategoryDefiance  Category = "defiance"
)

// allCategories is the closed enumeration in detection order.
var allCategories = []Category{
	CategoryShort,
	CategoryBrand,
	CategoryTech,
	CategoryMeme,
	CategoryDegen,
	CategoryFinance,
	CategoryGaming,
	CategoryDAO,
	CategoryCreator,
	CategoryAesthetic,
	CategoryDefiance,
}

// Tone is the flavor register of a quip. Tier labels reuse the same values.
type Tone string

const (
	ToneScav    Tone = "scav"
	ToneMid     Tone = "mid"
	TonePremium Tone = "premium"
	ToneMythic  Tone = "mythic"
	ToneDegen   Tone = "degen"
)

// WordStructure describes the shape of a normalized name.
type WordStructure struct {
	Length         int  `json:"length"`
	WordCount      int  `json:"word_count"`
	ContainsNumber bool `json:"contains_number"`
	ContainsHyphen bool `json:"contains_hyphen"`
	IsWord         bool `json:"is_word"`
	Syllables      int  `json:"syllables"`
}

// RarityScore holds the independent rarity sub-scores.
type RarityScore struct {
	Brand            float64  `json:"brand"`             // 0-10
	Linguistic       float64  `json:"linguistic"`        // 0-10
	CleanlinessScore float64  `json:"cleanliness_score"` // 0-10
	LengthValue      float64  `json:"length_value"`      // 0-15
	SemanticValue    float64  `json:"semantic_value"`    // 0-10
	UseCaseScore     float64  `json:"use_case_score"`    // 0-5
	MemeAffinity     float64  `json:"meme_affinity"`     // 0-10
	Alerts           []string `json:"alerts"`
}

// HypeScore holds meme and trend boosts derived from the raw name.
type HypeScore struct {
	MemeBoost         float64  `json:"meme_boost"` // 0-30
	HypeBoost         float64  `json:"hype_boost"` // 0-10
	CulturalRelevance []string `json:"cultural_relevance"`
	SlangMatches      []string `json:"slang_matches"`
}

// Quip is a line of Retailrunner commentary.
type Quip struct {
	Text string `json:"text"`
	Tone Tone   `json:"tone"`
}

// Breakdown is the full appraisal of a single name.
type Breakdown struct {
	Name            string        `json:"name"`
	Brandability    float64       `json:"brandability"` // 0-30
	Meme            float64       `json:"meme"`         // 0-30
	Value           float64       `json:"value"`        // 0-40
	FinalScore      float64       `json:"final_score"`  // 0-100
	SolEstimateLow  float64       `json:"sol_estimate_low"`
	SolEstimateHigh float64       `json:"sol_estimate_high"`
	Tier            Tone          `json:"tier"`
	Categories      []Category    `json:"categories"`
	Alerts          []string      `json:"alerts"`
	Quip            Quip          `json:"quip"`
	Structure       WordStructure `json:"structure"`
	Rarity          RarityScore   `json:"rarity"`
	Hype            HypeScore     `json:"hype"`
}

// HasCategory reports whether the breakdown carries category c.
func (b *Breakdown) HasCategory(c Category) bool {
	return hasCategory(b.Categories, c)
}

// CategoryInfo describes a category and its semantic weight.
type CategoryInfo struct {
	Name          Category `json:"name"`
	SemanticValue float64  `json:"semantic_value"`
}

// Categories returns every category with its semantic value, in detection order.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, 0, len(allCategories))
	for _, c := range allCategories {
		out = append(out, CategoryInfo{Name: c, SemanticValue: semanticValues[c]})
	}
	return out
}

func hasCategory(categories []Category, c Category) bool {
	for _, existing := range categories {
		if existing == c {
			return true
		}
	}
	return false
}
