// Package format renders typed advisor results as Markdown text.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/autovisory/autovisory/internal/chat"
)

// Price renders a price range as "$25,000 - $35,000 (New)". Both bounds
// must be positive; anything else renders as "Not available".
func Price(p chat.PriceRange) string {
	if p.MinPrice <= 0 || p.MaxPrice <= 0 {
		return "Not available"
	}
	return fmt.Sprintf("$%s - $%s (%s)", commas(p.MinPrice), commas(p.MaxPrice), p.Type)
}

// commas formats n with thousands separators.
func commas(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// Recommendations renders the recommend layout: header, then per item a
// subheading, summary line and price line.
func Recommendations(items []chat.RecommendationItem) string {
	var b strings.Builder
	b.WriteString("Based on your preferences, here are 3 solid options:\n")
	for _, r := range items {
		fmt.Fprintf(&b, "\n### 🚗 %s %s\n", r.Make, r.Model)
		fmt.Fprintf(&b, "- **Summary**: %s\n", r.Summary)
		fmt.Fprintf(&b, "- **Estimated Price**: %s\n", Price(r.PriceRange))
	}
	return b.String()
}

// Analysis renders the single-model analysis layout.
func Analysis(a chat.AnalysisResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### Analysis of the %s\n", a.Model)
	fmt.Fprintf(&b, "**📘 Overview:** %s\n\n", a.Overview)
	b.WriteString("**✅ Pros:**\n")
	for _, pro := range a.Pros {
		fmt.Fprintf(&b, "- %s\n", pro)
	}
	b.WriteString("\n**⚠️ Cons:**\n")
	for _, con := range a.Cons {
		fmt.Fprintf(&b, "- %s\n", con)
	}
	fmt.Fprintf(&b, "\n**👥 Ideal For:** %s\n", orNA(a.Audience))
	fmt.Fprintf(&b, "**💰 Estimated Price:** %s", orNA(a.PriceEstimate))
	return b.String()
}

// Comparison renders the side-by-side layout with comma-joined
// strengths and weaknesses per model.
func Comparison(items []chat.ComparisonItem) string {
	var b strings.Builder
	b.WriteString("Here's a comparison of your choices:\n")
	for _, c := range items {
		fmt.Fprintf(&b, "\n### 🚘 %s\n", c.Model)
		fmt.Fprintf(&b, "- **Summary**: %s\n", c.Summary)
		fmt.Fprintf(&b, "- **✅ Strengths**: %s\n", strings.Join(c.Strengths, ", "))
		fmt.Fprintf(&b, "- **⚠️ Weaknesses**: %s\n", strings.Join(c.Weaknesses, ", "))
	}
	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
