package service

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	"github.com/kongx-dev/retailstar-sol-sub001/internal/appraisal"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	cardWidth   = 600
	cardHeight  = 320
	cardPadding = 24
	titleScale  = 3
	barWidth    = 300
	barHeight   = 10
)

type cardTheme struct {
	background color.RGBA
	accent     color.RGBA
	text       color.RGBA
	muted      color.RGBA
}

var cardThemes = map[appraisal.Tone]cardTheme{
	appraisal.ToneMythic:  {color.RGBA{0x1e, 0x0b, 0x36, 0xff}, color.RGBA{0xf5, 0xc5, 0x18, 0xff}, color.RGBA{0xff, 0xff, 0xff, 0xff}, color.RGBA{0xb8, 0xa6, 0xd9, 0xff}},
	appraisal.TonePremium: {color.RGBA{0x0b, 0x2a, 0x33, 0xff}, color.RGBA{0x2d, 0xd4, 0xbf, 0xff}, color.RGBA{0xff, 0xff, 0xff, 0xff}, color.RGBA{0x9c, 0xc9, 0xc4, 0xff}},
	appraisal.ToneMid:     {color.RGBA{0x1f, 0x24, 0x2e, 0xff}, color.RGBA{0x60, 0xa5, 0xfa, 0xff}, color.RGBA{0xf1, 0xf5, 0xf9, 0xff}, color.RGBA{0x94, 0xa3, 0xb8, 0xff}},
	appraisal.ToneScav:    {color.RGBA{0x29, 0x20, 0x18, 0xff}, color.RGBA{0xd9, 0x77, 0x06, 0xff}, color.RGBA{0xf5, 0xf0, 0xe8, 0xff}, color.RGBA{0xa8, 0x96, 0x80, 0xff}},
}

func themeFor(tier appraisal.Tone) cardTheme {
	if t, ok := cardThemes[tier]; ok {
		return t
	}
	return cardThemes[appraisal.ToneScav]
}

// RenderCard draws a fixed-layout PNG summary of a breakdown. Output depends
// only on the breakdown, so the same name always yields the same bytes.
func RenderCard(b *appraisal.Breakdown) ([]byte, error) {
	if b == nil {
		return nil, fmt.Errorf("render card: nil breakdown")
	}

	theme := themeFor(b.Tier)
	img := image.NewRGBA(image.Rect(0, 0, cardWidth, cardHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(theme.background), image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(0, 0, cardWidth, 6), image.NewUniform(theme.accent), image.Point{}, draw.Src)

	drawScaledText(img, fitText(b.Name+appraisal.DomainSuffix, (cardWidth-2*cardPadding)/(7*titleScale)), cardPadding, 28, titleScale, theme.text)

	tier := strings.ToUpper(string(b.Tier))
	drawText(img, fmt.Sprintf("SCORE %.1f / 100", b.FinalScore), cardPadding, 96, theme.text)
	drawText(img, tier, cardWidth-cardPadding-textWidth(tier), 96, theme.accent)
	drawText(img, fmt.Sprintf("EST. %s - %s SOL", formatSOL(b.SolEstimateLow), formatSOL(b.SolEstimateHigh)), cardPadding, 116, theme.muted)

	bars := []struct {
		label string
		value float64
		max   float64
	}{
		{"BRAND", b.Brandability, 30},
		{"MEME", b.Meme, 30},
		{"VALUE", b.Value, 40},
	}
	y := 146
	for _, bar := range bars {
		drawText(img, bar.label, cardPadding, y, theme.muted)
		drawBar(img, cardPadding+70, y, bar.value/bar.max, theme)
		drawText(img, fmt.Sprintf("%.1f", bar.value), cardPadding+80+barWidth, y, theme.text)
		y += 24
	}

	categories := "NO CATEGORY"
	if len(b.Categories) > 0 {
		parts := make([]string, len(b.Categories))
		for i, c := range b.Categories {
			parts[i] = strings.ToUpper(string(c))
		}
		categories = strings.Join(parts, " / ")
	}
	drawText(img, fitText(categories, maxChars()), cardPadding, 230, theme.accent)

	y = 258
	for _, line := range wrapText(b.Quip.Text, maxChars(), 3) {
		drawText(img, line, cardPadding, y, theme.text)
		y += 16
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("render card: %w", err)
	}
	return buf.Bytes(), nil
}

// drawText writes s with its top-left corner at (x, y).
func drawText(dst draw.Image, s string, x, y int, c color.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y+face.Ascent),
	}
	d.DrawString(s)
}

// drawScaledText renders s at 1x and scales it up with nearest neighbour so
// the bitmap font stays crisp.
func drawScaledText(dst draw.Image, s string, x, y, scale int, c color.Color) {
	face := basicfont.Face7x13
	w := textWidth(s)
	if w == 0 {
		return
	}
	small := image.NewRGBA(image.Rect(0, 0, w, face.Height))
	drawText(small, s, 0, 0, c)
	target := image.Rect(x, y, x+w*scale, y+face.Height*scale)
	draw.NearestNeighbor.Scale(dst, target, small, small.Bounds(), draw.Over, nil)
}

func drawBar(dst draw.Image, x, y int, ratio float64, theme cardTheme) {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	top := y + 2
	draw.Draw(dst, image.Rect(x, top, x+barWidth, top+barHeight), image.NewUniform(theme.muted), image.Point{}, draw.Src)
	filled := int(ratio * barWidth)
	if filled > 0 {
		draw.Draw(dst, image.Rect(x, top, x+filled, top+barHeight), image.NewUniform(theme.accent), image.Point{}, draw.Src)
	}
}

func textWidth(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Ceil()
}

func maxChars() int {
	return (cardWidth - 2*cardPadding) / basicfont.Face7x13.Advance
}

func fitText(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	if limit <= 3 {
		return string(r[:limit])
	}
	return string(r[:limit-3]) + "..."
}

// wrapText splits s on spaces into at most maxLines lines of width chars.
func wrapText(s string, width, maxLines int) []string {
	var lines []string
	var current string
	for _, word := range strings.Fields(s) {
		switch {
		case current == "":
			current = word
		case len([]rune(current))+1+len([]rune(word)) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
		lines[maxLines-1] = fitText(lines[maxLines-1]+" ...", width)
	}
	for i, line := range lines {
		lines[i] = fitText(line, width)
	}
	return lines
}

func formatSOL(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
