package report

import "html"

// EscapeHTML makes free text safe to place inside markup. Plain text without
// markup-significant characters is returned unchanged.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}
