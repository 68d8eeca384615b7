package calculator

import (
	"fmt"
	"strings"
)

// catalystEntry maps a headline keyword to a short "why is IV elevated"
// label. Declaration order is the priority order - the first keyword found
// anywhere in the combined headline text wins, regardless of which
// headline contained it.
type catalystEntry struct {
	keyword string
	label   string
}

var catalystTable = []catalystEntry{
	{"earnings", "Earnings event"},
	{"beats", "Earnings beat"},
	{"misses", "Earnings miss"},
	{"guidance", "Guidance update"},
	{"bitcoin", "Bitcoin volatility"},
	{"crypto", "Crypto exposure"},
	{"satellite", "Satellite launch/deployment"},
	{"launch", "Launch event"},
	{"deployment", "Deployment news"},
	{"bluebird", "BlueBird satellite news"},
	{"spacex", "SpaceX partnership"},
	{"orbit", "Orbital operations"},
	{"coverage", "Network coverage expansion"},
	{"acquisition", "M&A activity"},
	{"merger", "Merger announcement"},
	{"lawsuit", "Legal action"},
	{"investigation", "Regulatory probe"},
	{"fda", "FDA decision"},
	{"approval", "Regulatory approval"},
	{"cut", "Analyst downgrade"},
	{"downgrade", "Downgrade"},
	{"upgrade", "Upgrade"},
	{"surge", "Price surge"},
	{"plunge", "Sharp decline"},
	{"rally", "Strong rally"},
	{"sell-off", "Selling pressure"},
	{"short", "Short interest spike"},
	{"breakthrough", "Major breakthrough"},
	{"recall", "Product recall"},
	{"layoff", "Restructuring"},
	{"partnership", "Partnership announced"},
	{"contract", "Major contract win"},
	{"revenue", "Revenue announcement"},
	{"bankruptcy", "Bankruptcy concerns"},
	{"delisting", "Delisting risk"},
	{"halt", "Trading halt"},
}

const NoRecentNews = "No recent news available"

// ClassifyCatalyst is a lossy keyword heuristic, not sentiment analysis.
// It scans up to three headlines and annotates the match with a snippet of
// the most recent one.
func ClassifyCatalyst(headlines []string) string {
	if len(headlines) > 3 {
		headlines = headlines[:3]
	}

	cleaned := make([]string, 0, len(headlines))
	for _, h := range headlines {
		if strings.TrimSpace(h) != "" {
			cleaned = append(cleaned, h)
		}
	}
	if len(cleaned) == 0 {
		return NoRecentNews
	}

	combined := strings.ToLower(strings.Join(cleaned, " "))
	for _, entry := range catalystTable {
		if strings.Contains(combined, entry.keyword) {
			return fmt.Sprintf("%s: %s", entry.label, truncate(cleaned[0], 50))
		}
	}

	return fmt.Sprintf("News: %s", truncate(cleaned[0], 70))
}

// AppendIVPercentile tacks the implied-vs-historical vol ratio onto a
// catalyst annotation when the enrichment source supplied one.
func AppendIVPercentile(reason string, ivPercentile *float64) string {
	if ivPercentile == nil {
		return reason
	}
	return fmt.Sprintf("%s (IV: %.0f%% of HV)", reason, *ivPercentile)
}

// truncate counts runes, not bytes, so a multi-byte character can never be
// split at the cut point.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
