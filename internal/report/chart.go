package report

import (
	"time"

	"gh-wrapped/internal/i18n"
	"gh-wrapped/internal/stats"
)

const (
	// MinMonthHeight keeps low and empty months visible in the chart.
	MinMonthHeight = 30.0

	LanguageRevealDelay = 100 * time.Millisecond
	MonthRevealDelay    = 200 * time.Millisecond
)

// Languages renders one bar per language in ranking order. Bars start at
// zero width and grow to their percentage after LanguageRevealDelay.
func Languages(langs stats.Ranking) Region {
	if len(langs) == 0 {
		return emptyRegion(RegionLanguages, i18n.SectionLanguages, i18n.EmptyLanguages)
	}
	reg := Region{ID: RegionLanguages, Title: i18n.SectionLanguages}
	for _, l := range langs {
		reg.Nodes = append(reg.Nodes, Node{
			Kind:    KindLanguageBar,
			ID:      l.Name,
			Text:    l.Name,
			Percent: l.Value,
			Animate: true,
			Delay:   LanguageRevealDelay,
		})
	}
	return reg
}

// Monthly renders all twelve months, filling gaps with zero. Heights are
// relative to the busiest month and floored at MinMonthHeight.
func Monthly(dist map[string]int) Region {
	peak := 1
	for _, v := range dist {
		peak = max(peak, v)
	}

	reg := Region{ID: RegionMonthly, Title: i18n.SectionMonthly, Nodes: make([]Node, 0, len(stats.Months))}
	for _, month := range stats.Months {
		v := dist[month]
		reg.Nodes = append(reg.Nodes, Node{
			Kind:    KindMonthBar,
			ID:      month,
			Text:    month,
			Value:   v,
			Percent: MonthHeight(v, peak),
			Animate: true,
			Delay:   MonthRevealDelay,
		})
	}
	return reg
}

// MonthHeight returns the bar height in percent of the chart.
func MonthHeight(value, peak int) float64 {
	if peak < 1 {
		peak = 1
	}
	return max(float64(value)/float64(peak)*100, MinMonthHeight)
}

// MonthLabel resolves the localized abbreviation of a month bar.
func MonthLabel(t *i18n.Table, n Node) string {
	for i, m := range stats.Months {
		if m == n.ID {
			return t.Month(i)
		}
	}
	return n.ID
}
