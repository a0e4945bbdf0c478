package commands

import "gh-wrapped/internal/prefs"

const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
)

// palette maps roles to ANSI codes for one theme.
type palette struct {
	accent string
	muted  string
	good   string
	bad    string
	bar    string
	plain  bool
}

func paletteFor(theme prefs.Theme, plain bool) palette {
	if theme == prefs.Light {
		return palette{accent: "\033[35m", muted: "\033[2m", good: "\033[32m", bad: "\033[31m", bar: "\033[34m", plain: plain}
	}
	return palette{accent: "\033[95m", muted: "\033[90m", good: "\033[92m", bad: "\033[91m", bar: "\033[96m", plain: plain}
}

func (p palette) paint(code, text string) string {
	if p.plain || code == "" {
		return text
	}
	return code + text + colorReset
}

func (p palette) title(text string) string {
	return p.paint(colorBold+p.accent, text)
}
