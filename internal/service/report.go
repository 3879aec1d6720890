package service

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/kongx-dev/retailstar-sol-sub001/internal/appraisal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdownRenderer = goldmark.New(goldmark.WithExtensions(extension.GFM))

var mdEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "[", `\[`, "]", `\]`,
	"<", `\<`, ">", `\>`, "#", `\#`, "|", `\|`, "~", `\~`,
)

// ReportMarkdown renders the full breakdown as a markdown document.
func ReportMarkdown(b *appraisal.Breakdown) string {
	var sb strings.Builder
	name := mdEscaper.Replace(b.Name + appraisal.DomainSuffix)

	fmt.Fprintf(&sb, "# %s\n\n", name)
	fmt.Fprintf(&sb, "**Final score:** %.1f / 100 | **Tier:** %s | **Estimate:** %s - %s SOL\n\n",
		b.FinalScore, b.Tier, formatSOL(b.SolEstimateLow), formatSOL(b.SolEstimateHigh))
	fmt.Fprintf(&sb, "> %s\n\n", mdEscaper.Replace(b.Quip.Text))

	sb.WriteString("## Scores\n\n")
	sb.WriteString("| Component | Score | Max |\n|---|---:|---:|\n")
	fmt.Fprintf(&sb, "| Brandability | %.1f | 30 |\n", b.Brandability)
	fmt.Fprintf(&sb, "| Meme | %.1f | 30 |\n", b.Meme)
	fmt.Fprintf(&sb, "| Value | %.1f | 40 |\n\n", b.Value)

	r := b.Rarity
	sb.WriteString("## Rarity\n\n")
	sb.WriteString("| Signal | Score | Max |\n|---|---:|---:|\n")
	fmt.Fprintf(&sb, "| Brand | %.1f | 10 |\n", r.Brand)
	fmt.Fprintf(&sb, "| Linguistic | %.1f | 10 |\n", r.Linguistic)
	fmt.Fprintf(&sb, "| Cleanliness | %.1f | 10 |\n", r.CleanlinessScore)
	fmt.Fprintf(&sb, "| Length | %.1f | 15 |\n", r.LengthValue)
	fmt.Fprintf(&sb, "| Semantic | %.1f | 10 |\n", r.SemanticValue)
	fmt.Fprintf(&sb, "| Use case | %.1f | 5 |\n", r.UseCaseScore)
	fmt.Fprintf(&sb, "| Meme affinity | %.1f | 10 |\n\n", r.MemeAffinity)

	h := b.Hype
	sb.WriteString("## Hype\n\n")
	fmt.Fprintf(&sb, "- Meme boost: %.1f / 30\n", h.MemeBoost)
	fmt.Fprintf(&sb, "- Hype boost: %.1f / 10\n", h.HypeBoost)
	fmt.Fprintf(&sb, "- Cultural references: %s\n", joinOrNone(h.CulturalRelevance))
	fmt.Fprintf(&sb, "- Slang: %s\n\n", joinOrNone(h.SlangMatches))

	s := b.Structure
	sb.WriteString("## Structure\n\n")
	fmt.Fprintf(&sb, "- Length: %d\n- Words: %d\n- Syllables: %d\n", s.Length, s.WordCount, s.Syllables)
	fmt.Fprintf(&sb, "- Dictionary word: %s\n- Digits: %s\n- Hyphen: %s\n\n",
		yesNo(s.IsWord), yesNo(s.ContainsNumber), yesNo(s.ContainsHyphen))

	categories := make([]string, len(b.Categories))
	for i, c := range b.Categories {
		categories[i] = string(c)
	}
	sb.WriteString("## Categories\n\n")
	fmt.Fprintf(&sb, "%s\n\n", joinOrNone(categories))

	if len(b.Alerts) > 0 {
		sb.WriteString("## Alerts\n\n")
		for _, alert := range b.Alerts {
			fmt.Fprintf(&sb, "- %s\n", mdEscaper.Replace(alert))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// RenderReportHTML converts the markdown report to a standalone HTML page.
func RenderReportHTML(b *appraisal.Breakdown) ([]byte, error) {
	if b == nil {
		return nil, fmt.Errorf("render report: nil breakdown")
	}

	var body bytes.Buffer
	if err := markdownRenderer.Convert([]byte(ReportMarkdown(b)), &body); err != nil {
		return nil, fmt.Errorf("markdown convert: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("<!doctype html><html><head><meta charset='utf-8'><title>")
	page.WriteString(html.EscapeString(b.Name + appraisal.DomainSuffix))
	page.WriteString(" appraisal</title><style>" + reportCSS + "</style></head><body><main class='report tier-")
	page.WriteString(html.EscapeString(string(b.Tier)))
	page.WriteString("'>")
	page.Write(body.Bytes())
	page.WriteString("</main></body></html>")
	return page.Bytes(), nil
}

const reportCSS = "body{font-family:system-ui,sans-serif;background:#111318;color:#e5e7eb;margin:0;padding:2rem;} " +
	".report{max-width:760px;margin:0 auto;} " +
	".report table{border-collapse:collapse;width:100%;margin-bottom:1rem;} " +
	".report th,.report td{border:1px solid #374151;padding:0.3rem 0.5rem;} " +
	".report blockquote{border-left:3px solid #60a5fa;margin:0;padding-left:1rem;color:#cbd5e1;} " +
	".tier-mythic h1{color:#f5c518;} .tier-premium h1{color:#2dd4bf;} .tier-mid h1{color:#60a5fa;} .tier-scav h1{color:#d97706;}"

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	escaped := make([]string, len(items))
	for i, item := range items {
		escaped[i] = mdEscaper.Replace(item)
	}
	return strings.Join(escaped, ", ")
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
