package stats

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// RankEntry is one position of an ordered ranking.
type RankEntry struct {
	Name  string
	Value float64
}

// Ranking is an ordered name -> value mapping. The service ranks entries
// before sending them, so the JSON object order is kept as-is.
type Ranking []RankEntry

// UnmarshalJSON walks the object in document order.
func (r *Ranking) UnmarshalJSON(data []byte) error {
	res := gjson.ParseBytes(data)
	if res.Type == gjson.Null {
		*r = nil
		return nil
	}
	if !res.IsObject() {
		return fmt.Errorf("ranking: expected object, got %s", res.Type)
	}

	var out Ranking
	res.ForEach(func(key, value gjson.Result) bool {
		out = append(out, RankEntry{Name: key.String(), Value: value.Float()})
		return true
	})
	*r = out
	return nil
}

// Names returns the ranked names in order.
func (r Ranking) Names() []string {
	names := make([]string, len(r))
	for i, e := range r {
		names[i] = e.Name
	}
	return names
}

// RepoCategory identifies one "top repository" highlight.
type RepoCategory string

const (
	MostCommits         RepoCategory = "most_commits"
	MostPRs             RepoCategory = "most_prs"
	MostChanges         RepoCategory = "most_changes"
	LongestContribution RepoCategory = "longest_contribution"
	MostStarred         RepoCategory = "most_starred"
)

// RepoCategories lists the categories in display order.
var RepoCategories = []RepoCategory{MostCommits, MostPRs, MostChanges, LongestContribution, MostStarred}

// metricKeys maps each category to the JSON key carrying its metric.
var metricKeys = map[RepoCategory]string{
	MostCommits:         "count",
	MostPRs:             "count",
	MostChanges:         "changes",
	LongestContribution: "days",
	MostStarred:         "stars",
}

// TopRepo is a highlighted repository with the metric that earned the highlight.
type TopRepo struct {
	Name        string
	URL         string
	MetricValue int
}

// TopRepos maps categories to their highlighted repository.
type TopRepos map[RepoCategory]TopRepo

// UnmarshalJSON normalizes the per-category metric key into MetricValue.
func (t *TopRepos) UnmarshalJSON(data []byte) error {
	res := gjson.ParseBytes(data)
	out := make(TopRepos)
	if res.Type == gjson.Null {
		*t = out
		return nil
	}
	if !res.IsObject() {
		return fmt.Errorf("top_repos: expected object, got %s", res.Type)
	}

	for _, cat := range RepoCategories {
		entry := res.Get(string(cat))
		if !entry.Exists() || !entry.IsObject() {
			continue
		}
		out[cat] = TopRepo{
			Name:        entry.Get("name").String(),
			URL:         entry.Get("url").String(),
			MetricValue: nonNegative(int(entry.Get(metricKeys[cat]).Int())),
		}
	}
	*t = out
	return nil
}

// Get returns the repository for a category.
func (t TopRepos) Get(cat RepoCategory) (TopRepo, bool) {
	repo, ok := t[cat]
	return repo, ok
}

// Decode parses a service payload and clamps counters to be non-negative.
func Decode(data []byte) (*Report, error) {
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode stats report: %w", err)
	}
	r.normalize()
	return &r, nil
}

func (r *Report) normalize() {
	s := &r.Stats
	for _, v := range []*int{
		&s.TotalCommits, &s.TotalContributions, &s.TotalRepos, &s.ActiveDays,
		&s.LongestStreak, &s.TotalPRs, &s.TotalMerges, &s.TotalIssues,
		&s.TotalReviews, &s.StarsReceived, &s.ForksReceived, &s.ReposCreated,
		&s.ReposForked, &s.OwnProjectCommits, &s.OthersProjectCommits,
	} {
		*v = nonNegative(*v)
	}
	if r.TopRepos == nil {
		r.TopRepos = make(TopRepos)
	}
	if r.CommitAnalysis.MonthlyDistribution == nil {
		r.CommitAnalysis.MonthlyDistribution = make(map[string]int)
	}
	if r.Persona != nil && r.Persona.ID == "" {
		r.Persona = nil
	}
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
