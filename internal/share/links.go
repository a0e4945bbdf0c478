package share

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"gh-wrapped/internal/i18n"
	"gh-wrapped/internal/stats"
)

const (
	xIntentBase     = "https://x.com/intent/tweet"
	LinkedInFeedURL = "https://www.linkedin.com/feed/?shareActive=true"
)

// FileName is the download name of a share image.
func FileName(product string, year int, username string) string {
	return fmt.Sprintf("%s-%d-%s.png", product, year, username)
}

// Text fills the localized share template with the headline counters.
func Text(t *i18n.Table, s stats.Totals) string {
	return i18n.Fill(t.XShareTemplate,
		"commits", t.FormatInt(s.TotalCommits),
		"repos", strconv.Itoa(s.TotalRepos),
		"days", strconv.Itoa(s.ActiveDays),
		"stars", strconv.Itoa(s.StarsReceived),
	)
}

// XIntentURL builds the X compose link. Spaces are encoded as %20.
func XIntentURL(text string) string {
	return xIntentBase + "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
