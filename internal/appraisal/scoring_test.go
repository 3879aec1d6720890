package appraisal

import (
	"reflect"
	"strings"
	"testing"
)

func TestLengthValue(t *testing.T) {
	tests := []struct {
		length int
		want   float64
	}{
		{3, 15},
		{4, 12},
		{5, 10},
		{6, 7},
		{7, 7},
		{8, 5},
		{10, 5},
		{11, 3},
		{15, 3},
		{16, 1},
		{40, 1},
	}
	for _, tt := range tests {
		if got := LengthValue(tt.length); got != tt.want {
			t.Errorf("LengthValue(%d) = %.0f, want %.0f", tt.length, got, tt.want)
		}
	}

	b, err := Appraise("abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Rarity.LengthValue != 15 {
		t.Errorf("abc: length value %.1f, want 15", b.Rarity.LengthValue)
	}
	b, err = Appraise("abcdefghijklmnop")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Rarity.LengthValue != 1 {
		t.Errorf("16 chars: length value %.1f, want 1", b.Rarity.LengthValue)
	}
}

func TestScoreRarity_Cleanliness(t *testing.T) {
	tests := []struct {
		name       string
		want       float64
		alertCount int
	}{
		{"moonshot", 10, 0},
		{"moon7", 7, 1},
		{"moon-shot", 8, 1},
		{"a-1", 5, 2},
		{"bruhmoment", 5, 1},
		{"lol-420", 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ScoreRarity(tt.name, AnalyzeStructure(tt.name), DetectCategories(tt.name))
			if r.CleanlinessScore != tt.want {
				t.Errorf("cleanliness = %.0f, want %.0f", r.CleanlinessScore, tt.want)
			}
			if len(r.Alerts) != tt.alertCount {
				t.Errorf("alerts = %v, want %d", r.Alerts, tt.alertCount)
			}
			if r.Alerts == nil {
				t.Error("alerts must be non-nil")
			}
		})
	}
}

func TestScoreRarity_DigitAlwaysDeducts(t *testing.T) {
	for _, name := range []string{"a1", "moon420", "9lives", "xk7q9z", "sol-2024"} {
		b, err := Appraise(name)
		if err != nil {
			t.Fatalf("Appraise(%q): %v", name, err)
		}
		if b.Rarity.CleanlinessScore > 7 {
			t.Errorf("%s: cleanliness %.1f, want <= 7", name, b.Rarity.CleanlinessScore)
		}
		found := false
		for _, a := range b.Alerts {
			if strings.Contains(a, "numbers") {
				found = true
			}
		}
		if !found {
			t.Errorf("%s: expected digit alert, got %v", name, b.Alerts)
		}
	}
}

func TestScoreRarity_SubScores(t *testing.T) {
	r := ScoreRarity("nova", AnalyzeStructure("nova"), DetectCategories("nova"))
	if r.Brand != 7 {
		t.Errorf("nova brand = %.0f, want 7", r.Brand)
	}
	if r.Linguistic != 10 {
		t.Errorf("nova linguistic = %.0f, want 10", r.Linguistic)
	}

	r = ScoreRarity("metalabs", AnalyzeStructure("metalabs"), DetectCategories("metalabs"))
	if r.Brand != 5 {
		t.Errorf("metalabs brand = %.0f, want 5", r.Brand)
	}

	if got := scoreUseCase("exchange"); got != 5 {
		t.Errorf("use case exchange = %.0f, want 5", got)
	}
	if got := scoreUseCase("protocolstore"); got != 4 {
		t.Errorf("use case protocolstore = %.0f, want 4", got)
	}
	if got := scoreUseCase("qwerty"); got != 0 {
		t.Errorf("use case qwerty = %.0f, want 0", got)
	}

	if got := semanticValue([]Category{CategoryMeme, CategoryFinance}); got != 10 {
		t.Errorf("semantic value = %.0f, want 10", got)
	}
	if got := semanticValue(nil); got != 3 {
		t.Errorf("uncategorized semantic value = %.0f, want 3", got)
	}
	if got := scoreMemeAffinity([]Category{CategoryMeme, CategoryDegen}); got != 10 {
		t.Errorf("meme affinity = %.0f, want 10", got)
	}
}

func TestScoreHype(t *testing.T) {
	tests := []struct {
		name      string
		memeBoost float64
		hypeBoost float64
		cultural  []string
		slang     []string
	}{
		{"wif", 8, 3, []string{"wif"}, []string{}},
		{"gigachad", 9, 0, []string{"chad", "gigachad"}, []string{}},
		{"wagmi-hodl-lfg", 20, 0, []string{}, []string{"wagmi", "hodl", "lfg", "gm"}},
		{"pepedogebonkwifshib", 30, 0, []string{"wif", "bonk", "pepe", "doge", "shib"}, []string{}},
		{"catbot", 0, 4, []string{}, []string{}},
		{"ai", 0, 3, []string{}, []string{}},
		{"qwerty", 0, 0, []string{}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := ScoreHype(tt.name)
			if h.MemeBoost != tt.memeBoost {
				t.Errorf("meme boost = %.0f, want %.0f", h.MemeBoost, tt.memeBoost)
			}
			if h.HypeBoost != tt.hypeBoost {
				t.Errorf("hype boost = %.0f, want %.0f", h.HypeBoost, tt.hypeBoost)
			}
			if !reflect.DeepEqual(h.CulturalRelevance, tt.cultural) {
				t.Errorf("cultural = %v, want %v", h.CulturalRelevance, tt.cultural)
			}
			if !reflect.DeepEqual(h.SlangMatches, tt.slang) {
				t.Errorf("slang = %v, want %v", h.SlangMatches, tt.slang)
			}
		})
	}
}

func TestQuipTone_RuleOrder(t *testing.T) {
	short := []Category{CategoryShort}
	tests := []struct {
		name                             string
		brandability, meme, value, final float64
		categories                       []Category
		want                             Tone
	}{
		{"degen beats late premium", 10, 26, 10, 46, nil, ToneDegen},
		{"degen", 12, 22, 20, 54, nil, ToneDegen},
		{"clean premium", 25, 5, 10, 40, nil, TonePremium},
		{"short high value", 15, 15, 30, 60, short, TonePremium},
		{"high value not short", 15, 15, 30, 45, nil, ToneMid},
		{"meme heavy", 16, 26, 10, 52, nil, TonePremium},
		{"scav", 5, 5, 10, 20, nil, ToneScav},
		{"fallback mythic", 20, 20, 40, 80, nil, ToneMythic},
		{"fallback premium", 20, 15, 25, 60, nil, TonePremium},
		{"fallback mid", 12, 12, 12, 36, nil, ToneMid},
		{"fallback scav", 12, 2, 10, 24, nil, ToneScav},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := quipTone(tt.brandability, tt.meme, tt.value, tt.final, tt.categories)
			if got != tt.want {
				t.Errorf("quipTone = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestGenerateQuip_StableText(t *testing.T) {
	a := GenerateQuip("wif", 30, 13, 34.5, 77.5, []Category{CategoryShort})
	b := GenerateQuip("wif", 30, 13, 34.5, 77.5, []Category{CategoryShort})
	if a != b {
		t.Errorf("quip not stable: %+v vs %+v", a, b)
	}
	found := false
	for _, line := range quipLines[a.Tone] {
		if line == a.Text {
			found = true
		}
	}
	if !found {
		t.Errorf("quip text %q not from %s lines", a.Text, a.Tone)
	}
}
