package appraisal

// weightedKeyword pairs a keyword with the points it contributes when matched.
type weightedKeyword struct {
	Keyword string
	Points  float64
}

// ============================================
// Dictionary / Brand Words
// ============================================

// dictionaryWords is a small built-in dictionary used for the first-token word test.
var dictionaryWords = toSet(
	"moon", "sun", "star", "fire", "gold", "king", "queen", "lion", "wolf", "tiger",
	"bear", "bull", "cat", "dog", "fox", "apple", "rocket", "ocean", "river", "stone",
	"cloud", "light", "dark", "night", "day", "blue", "red", "green", "black", "white",
	"cool", "hot", "fast", "good", "best", "art", "music", "game", "play", "shop",
	"store", "mall", "market", "bank", "cash", "coin", "money", "home", "house", "city",
	"world", "life", "love", "hope", "dream", "mint", "swap", "pay", "trade", "vault",
	"chain", "block", "link", "node", "code", "data", "web", "app", "lab", "labs",
	"hub", "club", "zone", "land", "space", "time", "wave", "storm", "rain", "snow",
	"ice", "ninja", "pirate", "ghost", "shadow", "spirit", "magic", "crypto", "token", "wallet",
)

// brandWords is the curated list of words that read as brands on their own.
var brandWords = toSet(
	"zen", "nova", "apex", "nexus", "pulse", "vertex", "prime", "quantum", "flux", "orbit",
	"vibe", "spark", "echo", "atlas", "titan", "omega", "alpha", "sigma", "delta", "zenith",
	"lumen", "aura", "ember", "halo", "onyx", "vortex", "neon", "solar", "luna", "astra",
	"hyper", "ultra", "retail", "retailstar",
)

// ============================================
// Category Keyword Sets
// ============================================

var categoryKeywords = map[Category][]string{
	CategoryTech: {
		"ai", "bot", "dev", "code", "data", "cloud", "cyber", "tech", "node", "chain",
		"block", "web3", "protocol", "labs", "quantum", "byte", "api", "gpt", "algo", "compute",
	},
	CategoryMeme: {
		"meme", "pepe", "doge", "wif", "bonk", "shib", "wojak", "frog", "cat", "dog",
		"lol", "kek", "chad", "inu", "elon", "popcat",
	},
	CategoryDegen: {
		"degen", "ape", "rug", "pump", "dump", "wagmi", "ngmi", "rekt", "fomo", "yolo",
		"gamble", "casino", "bet", "lambo", "hodl", "moon",
	},
	CategoryFinance: {
		"bank", "pay", "cash", "fund", "vault", "swap", "dex", "trade", "money", "coin",
		"capital", "invest", "finance", "defi", "lend", "loan", "yield", "stake", "treasury", "credit",
	},
	CategoryGaming: {
		"game", "play", "quest", "guild", "arena", "loot", "raid", "pixel", "arcade", "esport",
		"level", "boss", "clan",
	},
	CategoryDAO: {
		"dao", "gov", "vote", "council", "collective", "community", "assembly", "senate",
	},
	CategoryCreator: {
		"art", "studio", "create", "creator", "music", "film", "media", "design", "photo", "writer",
		"canvas", "beats", "gallery",
	},
	CategoryAesthetic: {
		"vibe", "aura", "neon", "glow", "dream", "luxe", "velvet", "chrome", "pastel", "vapor",
		"mist", "lunar", "star", "soft", "noir", "haze", "bloom",
	},
}

// semanticValues is the per-category value table (0-10).
var semanticValues = map[Category]float64{
	CategoryFinance:   10,
	CategoryTech:      9,
	CategoryShort:     9,
	CategoryBrand:     8,
	CategoryDAO:       7,
	CategoryGaming:    6,
	CategoryCreator:   6,
	CategoryDegen:     5,
	CategoryMeme:      5,
	CategoryAesthetic: 4,
	CategoryDefiance:  2,
}

// ============================================
// Rarity Tables
// ============================================

var startupKeywords = []string{
	"labs", "hq", "app", "hub", "stack", "works", "ventures", "base", "launch",
}

var techPrefixes = []string{"meta", "cyber", "neo", "hyper", "zk", "sol"}

var techSuffixes = []string{"ai", "io", "ly", "ify", "fi", "bot", "verse"}

// useCaseKeywords are scored by their maximum matching weight, not summed.
var useCaseKeywords = []weightedKeyword{
	{"exchange", 5},
	{"protocol", 4},
	{"wallet", 4},
	{"pay", 4},
	{"swap", 4},
	{"bank", 4},
	{"finance", 4},
	{"dex", 3},
	{"vault", 3},
	{"market", 3},
	{"mint", 3},
	{"stake", 3},
	{"labs", 3},
	{"app", 3},
	{"fund", 3},
	{"chain", 3},
	{"dao", 3},
	{"store", 2},
	{"shop", 2},
	{"mall", 2},
	{"club", 2},
	{"hub", 2},
	{"bot", 2},
	{"studio", 2},
	{"nft", 2},
	{"games", 2},
	{"news", 1},
	{"blog", 1},
	{"fan", 1},
}

// cringeFlags penalize cleanliness when found anywhere in the name.
var cringeFlags = []string{
	"420", "69", "lol", "lmao", "rofl", "xd", "xoxo", "uwu", "rawr", "666", "1337", "xxx", "bruh",
}

// ============================================
// Hype Tables
// ============================================

var culturalReferences = []weightedKeyword{
	{"wif", 8},
	{"bonk", 8},
	{"pepe", 8},
	{"doge", 7},
	{"shib", 6},
	{"wojak", 6},
	{"elon", 6},
	{"trump", 6},
	{"popcat", 5},
	{"chad", 5},
	{"gigachad", 4},
	{"frog", 4},
	{"mog", 4},
	{"sigma", 4},
}

var memeSlang = []weightedKeyword{
	{"wagmi", 6},
	{"hodl", 6},
	{"ngmi", 5},
	{"rekt", 5},
	{"fomo", 5},
	{"lfg", 5},
	{"degen", 5},
	{"moon", 4},
	{"pump", 4},
	{"ape", 4},
	{"based", 4},
	{"yolo", 4},
	{"lambo", 4},
	{"kek", 4},
	{"gm", 3},
	{"fren", 3},
	{"rug", 3},
	{"ser", 2},
}

// trendingPatterns match on exact equality, prefix, or suffix.
var trendingPatterns = []weightedKeyword{
	{"ai", 3},
	{"gpt", 3},
	{"agent", 3},
	{"inu", 3},
	{"sol", 2},
	{"coin", 2},
	{"pump", 2},
	{"meme", 2},
	{"cat", 2},
	{"dog", 2},
	{"bot", 2},
	{"onchain", 2},
	{"fun", 1},
}

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
