package report

import (
	"gh-wrapped/internal/i18n"
	"gh-wrapped/internal/stats"
)

// Section is a region with every key resolved against one language table.
// Free text is kept raw; each adapter escapes for its own medium.
type Section struct {
	ID      RegionID
	Title   string
	Empty   string
	Entries []Entry
}

// Entry is a resolved node.
type Entry struct {
	Kind    Kind
	ID      string
	Label   string
	Value   string
	Raw     int
	Text    string
	Detail  string
	Tag     string
	URL     string
	Icon    string
	Items   []string
	Stats   []string
	Percent float64
}

// Resolve localizes regions. Calling it again with another table is all a
// language switch needs.
func Resolve(t *i18n.Table, regions []Region) []Section {
	out := make([]Section, 0, len(regions))
	for _, reg := range regions {
		sec := Section{ID: reg.ID, Title: t.Label(reg.Title)}
		if reg.Empty() {
			sec.Empty = t.Label(reg.Nodes[0].Label)
			out = append(out, sec)
			continue
		}
		for _, n := range reg.Nodes {
			sec.Entries = append(sec.Entries, resolveNode(t, n))
		}
		out = append(out, sec)
	}
	return out
}

func resolveNode(t *i18n.Table, n Node) Entry {
	e := Entry{
		Kind:    n.Kind,
		ID:      n.ID,
		Label:   t.Label(n.Label),
		Value:   t.FormatInt(n.Value),
		Raw:     n.Value,
		Text:    n.Text,
		Detail:  n.Detail,
		Tag:     n.Tag,
		URL:     n.URL,
		Icon:    n.Icon,
		Items:   n.Items,
		Percent: n.Percent,
	}
	if n.Unit != "" {
		e.Value += " " + t.Label(n.Unit)
	}
	for _, s := range n.Stats {
		v := s.Icon + " " + t.FormatInt(s.Value)
		if s.Unit != "" {
			v += " " + t.Label(s.Unit)
		}
		e.Stats = append(e.Stats, v)
	}

	switch n.Kind {
	case KindRepoCard:
		e.Label = t.Label(n.Badge)
	case KindMonthBar:
		e.Label = MonthLabel(t, n)
	case KindPersona:
		p := t.Persona(stats.PersonaID(n.ID))
		e.Label = p.Title
		e.Detail = p.Desc
	case KindNotice:
		e.Text = NoticeText(t, n)
	case KindLanguageBar:
		e.Value = formatPercent(n.Percent)
	}
	return e
}

// NoticeText resolves the private-contribution banner.
func NoticeText(t *i18n.Table, n Node) string {
	if n.ID == "included" {
		return t.PrivateIncluded
	}
	return t.PrivateExcluded
}
