package i18n

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"gh-wrapped/internal/stats"
)

// Language is a supported interface language code.
type Language string

const (
	Turkish Language = "tr"
	English Language = "en"

	// Primary is the default language, Secondary the toggle target.
	Primary   = Turkish
	Secondary = English
)

// Valid reports whether the code has a translation table.
func (l Language) Valid() bool {
	return l == Turkish || l == English
}

// Toggle flips between the primary and secondary language.
func (l Language) Toggle() Language {
	if l == Secondary {
		return Primary
	}
	return Secondary
}

// Key identifies a localized label. Renderable regions store keys, never
// resolved text, so a language switch only re-resolves them.
type Key string

// PersonaText is the localized title and description of a persona.
type PersonaText struct {
	Title string
	Desc  string
}

// Table is the string table of one language.
type Table struct {
	Lang Language
	tag  language.Tag

	Title            string
	Subtitle         string
	InputPlaceholder string
	Loading          string
	WrappedTitle     string
	ResultsTitle     string
	ResultsSubtitle  string
	PrivateIncluded  string
	PrivateExcluded  string
	NewSearch        string

	QuizTitle    string
	QuizContinue string
	QuizCorrect  string
	QuizWrong    string
	QuizScore    string
	Q1           string
	Q1Expl       string
	Q1Tier1      string
	Q1Tier2      string
	Q1Tier3      string
	Q2           string
	Q2Expl       string
	Q3           string
	Q3Expl       string

	PreviewTitle   string
	Download       string
	CopyShare      string
	ShareX         string
	ShareLinkedIn  string
	Generating     string
	PasteHint      string
	Downloaded     string
	ImageFailed    string
	XShareTemplate string

	ErrUsernameRequired string
	ErrGeneric          string
	ErrNetwork          string

	Months   [12]string
	Labels   map[Key]string
	Personas map[stats.PersonaID]PersonaText
}

// DefaultYear is the reporting year used by Lookup.
const DefaultYear = 2025

// Lookup returns the table for a language in DefaultYear, falling back to the
// primary language.
func Lookup(lang Language) *Table {
	return LookupYear(lang, DefaultYear)
}

// LookupYear returns the table for a language with every {year} placeholder
// filled in.
func LookupYear(lang Language, year int) *Table {
	base, ok := tables[lang]
	if !ok {
		base = tables[Primary]
	}
	return base.withYear(year)
}

func (t *Table) withYear(year int) *Table {
	y := strconv.Itoa(year)
	out := *t
	for _, s := range []*string{
		&out.Title, &out.Subtitle, &out.WrappedTitle, &out.ResultsTitle,
		&out.ResultsSubtitle, &out.Q1, &out.Q3, &out.XShareTemplate,
	} {
		*s = Fill(*s, "year", y)
	}
	out.Labels = make(map[Key]string, len(t.Labels))
	for k, v := range t.Labels {
		out.Labels[k] = Fill(v, "year", y)
	}
	return &out
}

// Label resolves a key. Unknown keys resolve to themselves.
func (t *Table) Label(k Key) string {
	if v, ok := t.Labels[k]; ok {
		return v
	}
	return string(k)
}

// Persona resolves a persona, falling back to the consistent coder text.
func (t *Table) Persona(id stats.PersonaID) PersonaText {
	if p, ok := t.Personas[id]; ok {
		return p
	}
	return t.Personas[stats.ConsistentCoder]
}

// Month returns the abbreviation of the month at index 0..11.
func (t *Table) Month(i int) string {
	if i < 0 || i >= len(t.Months) {
		return ""
	}
	return t.Months[i]
}

// FormatInt renders n with the language's digit grouping.
func (t *Table) FormatInt(n int) string {
	return message.NewPrinter(t.tag).Sprintf("%d", n)
}

// Fill substitutes {name} placeholders. Arguments come in name, value pairs.
func Fill(tmpl string, pairs ...string) string {
	args := make([]string, 0, len(pairs))
	for i := 0; i+1 < len(pairs); i += 2 {
		args = append(args, "{"+pairs[i]+"}", pairs[i+1])
	}
	return strings.NewReplacer(args...).Replace(tmpl)
}
