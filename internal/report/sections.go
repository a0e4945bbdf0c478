package report

import (
	"strconv"

	"gh-wrapped/internal/i18n"
	"gh-wrapped/internal/stats"
)

// Build projects the whole report into regions in dashboard order. Each
// region comes from an independent render function that can be called on
// its own.
func Build(r *stats.Report) []Region {
	regions := make([]Region, 0, 13)
	if n, ok := Notice(r.HasPrivateContributions, r.HasToken); ok {
		regions = append(regions, n)
	}
	if p, ok := PersonaBadge(r.Persona); ok {
		regions = append(regions, p)
	}
	return append(regions,
		Hero(r.Stats),
		Activity(r.Stats),
		TopRepos(r.TopRepos),
		StarsForks(r.Stats),
		CreatedRepos(r.CreatedRepos),
		Orgs(r.OrgContributions),
		CommitMessages(r.CommitAnalysis.MostCommonMessages),
		Languages(r.Languages),
		Monthly(r.CommitAnalysis.MonthlyDistribution),
		Split(r.Stats),
		Summary(r.Stats),
	)
}

func counter(id string, label i18n.Key, v int) Node {
	return Node{Kind: KindCounter, ID: id, Label: label, Value: v, Animate: true}
}

// Hero renders the four headline counters.
func Hero(s stats.Totals) Region {
	return Region{ID: RegionHero, Title: i18n.SectionHero, Nodes: []Node{
		counter("total-commits", i18n.StatTotalContribution, s.Contributions()),
		counter("total-repos", i18n.StatProjects, s.TotalRepos),
		counter("active-days", i18n.StatActiveDays, s.ActiveDays),
		counter("longest-streak", i18n.StatLongestStreak, s.LongestStreak),
	}}
}

// Activity renders the per-type contribution counters.
func Activity(s stats.Totals) Region {
	return Region{ID: RegionActivity, Title: i18n.SectionActivity, Nodes: []Node{
		counter("activity-commits", i18n.StatCommit, s.TotalCommits),
		counter("activity-prs", i18n.StatPullRequest, s.TotalPRs),
		counter("activity-merges", i18n.StatMerge, s.TotalMerges),
		counter("activity-issues", i18n.StatIssue, s.TotalIssues),
		counter("activity-reviews", i18n.StatReview, s.TotalReviews),
	}}
}

var topRepoLabels = map[stats.RepoCategory]struct{ badge, unit i18n.Key }{
	stats.MostCommits:         {i18n.RepoMostCommits, i18n.UnitCommits},
	stats.MostPRs:             {i18n.RepoMostPRs, i18n.UnitPRs},
	stats.MostChanges:         {i18n.RepoMostChanges, i18n.UnitChanges},
	stats.LongestContribution: {i18n.RepoLongestContribution, i18n.UnitDays},
	stats.MostStarred:         {i18n.RepoMostStarred, i18n.UnitStars},
}

// TopRepos renders one card per highlighted repository in category order.
func TopRepos(top stats.TopRepos) Region {
	reg := Region{ID: RegionTopRepos, Title: i18n.SectionTopRepos}
	for _, cat := range stats.RepoCategories {
		repo, ok := top.Get(cat)
		if !ok {
			continue
		}
		l := topRepoLabels[cat]
		reg.Nodes = append(reg.Nodes, Node{
			Kind:  KindRepoCard,
			ID:    string(cat),
			Badge: l.badge,
			Unit:  l.unit,
			Text:  repo.Name,
			URL:   repo.URL,
			Value: repo.MetricValue,
		})
	}
	return reg
}

// StarsForks renders the repository popularity counters.
func StarsForks(s stats.Totals) Region {
	return Region{ID: RegionStarsForks, Title: i18n.SectionStarsForks, Nodes: []Node{
		counter("stars-received", i18n.StatStarsReceived, s.StarsReceived),
		counter("forks-received", i18n.StatForksReceived, s.ForksReceived),
		counter("repos-created", i18n.StatReposCreated, s.ReposCreated),
		counter("repos-forked", i18n.StatReposForked, s.ReposForked),
	}}
}

// CreatedRepos renders the repositories created this year in service order.
func CreatedRepos(repos []stats.CreatedRepo) Region {
	if len(repos) == 0 {
		return emptyRegion(RegionCreated, i18n.SectionCreated, i18n.EmptyCreated)
	}
	reg := Region{ID: RegionCreated, Title: i18n.SectionCreated}
	for _, repo := range repos {
		reg.Nodes = append(reg.Nodes, Node{
			Kind:   KindCreatedRepo,
			ID:     repo.Name,
			Text:   repo.Name,
			Detail: repo.Description,
			Tag:    repo.Language,
			URL:    repo.URL,
			Stats: []Stat{
				{Icon: "⭐", Value: repo.Stars},
				{Icon: "🍴", Value: repo.Forks},
			},
		})
	}
	return reg
}

// Orgs renders organization contributions in service order.
func Orgs(orgs []stats.OrgContribution) Region {
	if len(orgs) == 0 {
		return emptyRegion(RegionOrgs, i18n.SectionOrgs, i18n.EmptyOrgs)
	}
	reg := Region{ID: RegionOrgs, Title: i18n.SectionOrgs}
	for _, org := range orgs {
		reg.Nodes = append(reg.Nodes, Node{
			Kind:  KindOrg,
			ID:    org.Name,
			Text:  org.Name,
			Unit:  i18n.UnitRepos,
			Value: org.RepoCount,
			Items: append([]string(nil), org.RepoNames...),
			Stats: []Stat{
				{Icon: "💻", Value: org.Commits, Unit: i18n.UnitCommits},
				{Icon: "🔀", Value: org.PRs, Unit: i18n.UnitPRs},
			},
		})
	}
	return reg
}

// CommitMessages renders the most common messages in service order.
func CommitMessages(msgs []stats.CommitMessage) Region {
	if len(msgs) == 0 {
		return emptyRegion(RegionCommits, i18n.SectionCommits, i18n.EmptyCommits)
	}
	reg := Region{ID: RegionCommits, Title: i18n.SectionCommits}
	for i, m := range msgs {
		reg.Nodes = append(reg.Nodes, Node{
			Kind:  KindMessage,
			ID:    strconv.Itoa(i),
			Text:  m.Message,
			Value: m.Count,
		})
	}
	return reg
}

// Split renders own versus others' project commits.
func Split(s stats.Totals) Region {
	return Region{ID: RegionSplit, Title: i18n.SectionSplit, Nodes: []Node{
		counter("own-commits", i18n.StatOwnProjects, s.OwnProjectCommits),
		counter("others-commits", i18n.StatOthersProjects, s.OthersProjectCommits),
	}}
}

// Summary renders every counter as a static list.
func Summary(s stats.Totals) Region {
	items := []struct {
		label i18n.Key
		value int
	}{
		{i18n.StatTotalContribution, s.Contributions()},
		{i18n.StatTotalCommits, s.TotalCommits},
		{i18n.StatTotalPRs, s.TotalPRs},
		{i18n.StatTotalMerges, s.TotalMerges},
		{i18n.StatTotalIssues, s.TotalIssues},
		{i18n.StatTotalReviews, s.TotalReviews},
		{i18n.StatActiveProjects, s.TotalRepos},
		{i18n.StatActiveDays, s.ActiveDays},
		{i18n.StatLongestStreakDays, s.LongestStreak},
		{i18n.StatStarsReceived, s.StarsReceived},
		{i18n.StatForksReceived, s.ForksReceived},
		{i18n.StatCreatedRepos, s.ReposCreated},
	}
	reg := Region{ID: RegionSummary, Title: i18n.SectionSummary}
	for _, it := range items {
		reg.Nodes = append(reg.Nodes, Node{Kind: KindSummaryItem, ID: string(it.label), Label: it.label, Value: it.value})
	}
	return reg
}

// PersonaBadge renders the persona section when the service assigned one.
// Unknown ids fall back to the consistent coder text at resolve time.
func PersonaBadge(p *stats.Persona) (Region, bool) {
	if p == nil {
		return Region{}, false
	}
	return Region{ID: RegionPersona, Title: i18n.SectionPersona, Nodes: []Node{
		{Kind: KindPersona, ID: string(p.ID), Icon: p.Icon, Text: string(p.ID)},
	}}, true
}

// Notice renders the private-contribution banner. Nothing is shown when a
// token is configured but no private work was found.
func Notice(hasPrivate, hasToken bool) (Region, bool) {
	var text string
	switch {
	case hasPrivate && hasToken:
		text = "included"
	case !hasToken:
		text = "excluded"
	default:
		return Region{}, false
	}
	return Region{ID: RegionNotice, Title: i18n.SectionNotice, Nodes: []Node{
		{Kind: KindNotice, ID: text, Text: text},
	}}, true
}
