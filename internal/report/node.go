package report

import (
	"time"

	"gh-wrapped/internal/i18n"
)

// RegionID is the stable identifier of a dashboard section. Adapters key
// their output on it, so relabeling never depends on previously rendered text.
type RegionID string

const (
	RegionNotice     RegionID = "notice"
	RegionPersona    RegionID = "persona"
	RegionHero       RegionID = "hero"
	RegionActivity   RegionID = "activity"
	RegionTopRepos   RegionID = "top-repos"
	RegionStarsForks RegionID = "stars-forks"
	RegionCreated    RegionID = "created-repos"
	RegionOrgs       RegionID = "orgs"
	RegionCommits    RegionID = "commit-messages"
	RegionLanguages  RegionID = "languages"
	RegionMonthly    RegionID = "monthly"
	RegionSplit      RegionID = "split"
	RegionSummary    RegionID = "summary"
)

// Kind tells an adapter how to draw a node.
type Kind int

const (
	KindCounter Kind = iota
	KindSummaryItem
	KindRepoCard
	KindCreatedRepo
	KindOrg
	KindMessage
	KindLanguageBar
	KindMonthBar
	KindPersona
	KindNotice
	KindEmpty
)

// Node describes one visual element. Label, Badge and Unit are i18n keys;
// Text and Detail carry free text from the service, unescaped.
type Node struct {
	Kind  Kind
	ID    string
	Label i18n.Key
	Badge i18n.Key
	Unit  i18n.Key

	Text   string
	Detail string
	Tag    string
	URL    string
	Icon   string
	Items  []string
	Stats  []Stat

	Value   int
	Percent float64

	// Animated nodes start from zero (counters) or zero size (bars) and
	// reach their target after Delay.
	Animate bool
	Delay   time.Duration
}

// Stat is a small inline counter attached to a list entry.
type Stat struct {
	Icon  string
	Value int
	Unit  i18n.Key
}

// Region is one section of the dashboard.
type Region struct {
	ID    RegionID
	Title i18n.Key
	Nodes []Node
}

// Empty reports whether the region only holds an empty-state placeholder.
func (r Region) Empty() bool {
	return len(r.Nodes) == 1 && r.Nodes[0].Kind == KindEmpty
}

func emptyRegion(id RegionID, title, msg i18n.Key) Region {
	return Region{ID: id, Title: title, Nodes: []Node{{Kind: KindEmpty, Label: msg}}}
}
