package compositor

import (
	"strconv"

	"gh-wrapped/internal/i18n"
	"gh-wrapped/internal/stats"
)

// Canvas geometry of the share card.
const (
	Width  = 1200
	Height = 1500

	AvatarY      = 250.0
	AvatarRadius = 120.0
	RingWidth    = 8.0

	CardWidth  = 350.0
	CardHeight = 220.0
	CardGap    = 40.0
	CardStartY = 750.0
	CardRadius = 20.0

	PillHeight  = 100.0
	PillPadding = 80.0
	PillRadius  = 50.0
	PillBorder  = 2.0
)

// Measure returns the advance width of text in pixels at a font size.
type Measure func(text string, size float64, bold bool) float64

// Text is a centered run of text anchored on its baseline.
type Text struct {
	Value string
	X, Y  float64
	Size  float64
	Bold  bool
	Alpha float64
}

// Rect is a rounded rectangle.
type Rect struct {
	X, Y, W, H, Radius float64
}

// Card is one stat tile of the grid.
type Card struct {
	Box   Rect
	Value Text
	Label Text
}

// Pill is the persona badge under the handle.
type Pill struct {
	Box  Rect
	Text Text
}

// Layout is everything Compose draws, in draw order.
type Layout struct {
	CenterX float64
	Name    Text
	Handle  Text
	Title   Text
	Pill    *Pill
	Cards   []Card
}

// Plan lays out the share card without touching any pixels.
func Plan(r *stats.Report, t *i18n.Table, measure Measure) Layout {
	cx := float64(Width) / 2
	l := Layout{
		CenterX: cx,
		Name:    Text{Value: r.DisplayName(), X: cx, Y: AvatarY + 200, Size: 64, Bold: true, Alpha: 1},
		Handle:  Text{Value: "@" + r.Username, X: cx, Y: AvatarY + 260, Size: 40, Alpha: 0.9},
		Title:   Text{Value: t.WrappedTitle, X: cx, Y: 100, Size: 72, Bold: true, Alpha: 1},
	}

	if r.Persona != nil {
		text := r.Persona.Icon + " " + t.Persona(r.Persona.ID).Title
		w := measure(text, 52, true) + PillPadding
		y := AvatarY + 320
		l.Pill = &Pill{
			Box:  Rect{X: cx - w/2, Y: y, W: w, H: PillHeight, Radius: PillRadius},
			Text: Text{Value: text, X: cx, Y: y + 65, Size: 52, Bold: true, Alpha: 1},
		}
	}

	s := r.Stats
	metrics := []struct {
		value string
		label i18n.Key
	}{
		{t.FormatInt(s.TotalCommits), i18n.StatCommit},
		{strconv.Itoa(s.TotalRepos), i18n.StatProjects},
		{strconv.Itoa(s.ActiveDays), i18n.StatActiveDays},
		{strconv.Itoa(s.TotalMerges), i18n.StatMerge},
		{strconv.Itoa(s.TotalPRs), i18n.StatTotalPRs},
		{strconv.Itoa(s.LongestStreak), i18n.StatLongestStreakDays},
	}

	startX := (float64(Width) - (CardWidth*2 + CardGap)) / 2
	for i, m := range metrics {
		x := startX + float64(i%2)*(CardWidth+CardGap)
		y := CardStartY + float64(i/2)*(CardHeight+CardGap)
		mid := x + CardWidth/2
		l.Cards = append(l.Cards, Card{
			Box:   Rect{X: x, Y: y, W: CardWidth, H: CardHeight, Radius: CardRadius},
			Value: Text{Value: m.value, X: mid, Y: y + 100, Size: 64, Bold: true, Alpha: 1},
			Label: Text{Value: t.Label(m.label), X: mid, Y: y + 160, Size: 32, Alpha: 0.85},
		})
	}
	return l
}
