package appraisal

import "hash/fnv"

var quipLines = map[Tone][]string{
	ToneDegen: {
		"Pure degen fuel. Brand team will cry, the timeline will love it.",
		"This one was minted at 3am in a group chat. Respect.",
		"Zero polish, maximum send. Retailrunner approves the chaos.",
	},
	TonePremium: {
		"Clean shelf item. This goes in the front window of the mall.",
		"Premium aisle material. Buyers with taste will circle back.",
		"Short, sharp and sellable. Keep the price tag visible.",
	},
	ToneMythic: {
		"Mythic drop. Lock the vault and call security.",
		"Top-floor listing. People will screenshot this one.",
		"This name has its own lore already.",
	},
	ToneMid: {
		"Solid mid-mall stock. Not a headliner, still moves.",
		"Decent pick. Needs a story to climb the rack.",
		"Middle shelf, honest price. Someone will want it.",
	},
	ToneScav: {
		"Bargain bin energy. Scavs only.",
		"Found this behind the vending machine on level B2.",
		"Clearance rack. Maybe flip it for a sandwich.",
	},
}

// GenerateQuip picks a tone from the sub-scores using the first matching rule,
// then a line for that tone keyed on the name so output is reproducible.
func GenerateQuip(name string, brandability, meme, value, finalScore float64, categories []Category) Quip {
	tone := quipTone(brandability, meme, value, finalScore, categories)
	lines := quipLines[tone]
	return Quip{
		Text: lines[pickIndex(name, len(lines))],
		Tone: tone,
	}
}

// quipTone evaluates the rules in order; the order is significant.
func quipTone(brandability, meme, value, finalScore float64, categories []Category) Tone {
	switch {
	case meme > 20 && brandability < 15:
		return ToneDegen
	case brandability > 20 && meme < 10:
		return TonePremium
	case value > 25 && hasCategory(categories, CategoryShort):
		return TonePremium
	case meme > 25:
		return TonePremium
	case brandability < 10 && meme < 10 && value < 15:
		return ToneScav
	default:
		return TierForScore(finalScore)
	}
}

// TierForScore maps a final score to its tier band.
func TierForScore(finalScore float64) Tone {
	switch {
	case finalScore >= 80:
		return ToneMythic
	case finalScore >= 60:
		return TonePremium
	case finalScore >= 30:
		return ToneMid
	default:
		return ToneScav
	}
}

func pickIndex(name string, n int) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return int(h.Sum32() % uint32(n))
}
