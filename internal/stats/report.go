package stats

import "time"

// Report is the aggregated year-in-review payload returned by the stats service.
// It is fetched once per session and treated as immutable afterwards.
type Report struct {
	Username                string            `json:"username"`
	Year                    int               `json:"year"`
	UserInfo                UserInfo          `json:"user_info"`
	Stats                   Totals            `json:"stats"`
	TopRepos                TopRepos          `json:"top_repos"`
	CreatedRepos            []CreatedRepo     `json:"created_repos"`
	OrgContributions        []OrgContribution `json:"org_contributions"`
	CommitAnalysis          CommitAnalysis    `json:"commit_analysis"`
	Languages               Ranking           `json:"languages"`
	Persona                 *Persona          `json:"persona,omitempty"`
	HasPrivateContributions bool              `json:"has_private_contributions"`
	HasToken                bool              `json:"has_token"`
	FromCache               bool              `json:"from_cache"`
}

// UserInfo is the public profile of the analysed account.
type UserInfo struct {
	Name        string `json:"name"`
	AvatarURL   string `json:"avatar_url"`
	Bio         string `json:"bio"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	CreatedAt   string `json:"created_at"`
}

// Totals holds the headline counters. Missing fields decode as zero.
type Totals struct {
	TotalCommits         int `json:"total_commits"`
	TotalContributions   int `json:"total_contributions"`
	TotalRepos           int `json:"total_repos"`
	ActiveDays           int `json:"active_days"`
	LongestStreak        int `json:"longest_streak"`
	TotalPRs             int `json:"total_prs"`
	TotalMerges          int `json:"total_merges"`
	TotalIssues          int `json:"total_issues"`
	TotalReviews         int `json:"total_reviews"`
	StarsReceived        int `json:"stars_received"`
	ForksReceived        int `json:"forks_received"`
	ReposCreated         int `json:"repos_created"`
	ReposForked          int `json:"repos_forked"`
	OwnProjectCommits    int `json:"own_project_commits"`
	OthersProjectCommits int `json:"others_project_commits"`
}

// Contributions returns the total contribution count, falling back to commits
// when the service did not report contributions.
func (t Totals) Contributions() int {
	if t.TotalContributions > 0 {
		return t.TotalContributions
	}
	return t.TotalCommits
}

// CreatedRepo is a repository the user created during the year.
type CreatedRepo struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	Language    string `json:"language"`
}

// OrgContribution summarises work done inside one organization.
type OrgContribution struct {
	Name      string   `json:"name"`
	RepoCount int      `json:"repos"`
	Commits   int      `json:"commits"`
	PRs       int      `json:"prs"`
	RepoNames []string `json:"repo_names"`
}

// CommitMessage is one entry of the most common commit messages list.
type CommitMessage struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// CommitAnalysis groups the commit message ranking and the monthly histogram.
type CommitAnalysis struct {
	MostCommonMessages  []CommitMessage `json:"most_common_messages"`
	MonthlyDistribution map[string]int  `json:"monthly_distribution"`
}

// Months lists the English month names used as keys of MonthlyDistribution.
var Months = [12]string{
	time.January.String(), time.February.String(), time.March.String(),
	time.April.String(), time.May.String(), time.June.String(),
	time.July.String(), time.August.String(), time.September.String(),
	time.October.String(), time.November.String(), time.December.String(),
}

// DisplayName returns the profile name, or the handle when no name is set.
func (r *Report) DisplayName() string {
	if r.UserInfo.Name != "" {
		return r.UserInfo.Name
	}
	return r.Username
}

// TopLanguage returns the highest ranked language, if any.
func (r *Report) TopLanguage() (string, bool) {
	if len(r.Languages) == 0 {
		return "", false
	}
	return r.Languages[0].Name, true
}
