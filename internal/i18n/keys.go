package i18n

// Section titles.
const (
	SectionHero       Key = "sections.heroStats"
	SectionActivity   Key = "sections.activity"
	SectionTopRepos   Key = "sections.topRepos"
	SectionStarsForks Key = "sections.starsForks"
	SectionCreated    Key = "sections.created"
	SectionOrgs       Key = "sections.org"
	SectionCommits    Key = "sections.commits"
	SectionLanguages  Key = "sections.langs"
	SectionMonthly    Key = "sections.monthly"
	SectionSplit      Key = "sections.split"
	SectionSummary    Key = "sections.summary"
	SectionPersona    Key = "sections.persona"
	SectionNotice     Key = "sections.notice"
)

// Stat labels.
const (
	StatTotalContribution Key = "stats.totalContribution"
	StatProjects          Key = "stats.projects"
	StatActiveDays        Key = "stats.activeDays"
	StatLongestStreak     Key = "stats.longestStreak"
	StatCommit            Key = "stats.commit"
	StatPullRequest       Key = "stats.pullRequest"
	StatMerge             Key = "stats.merge"
	StatIssue             Key = "stats.issue"
	StatReview            Key = "stats.review"
	StatStarsReceived     Key = "stats.starsReceived"
	StatForksReceived     Key = "stats.forksReceived"
	StatReposCreated      Key = "stats.reposCreated"
	StatReposForked       Key = "stats.reposForked"
	StatOwnProjects       Key = "stats.ownProjects"
	StatOthersProjects    Key = "stats.othersProjects"
	StatTotalCommits      Key = "stats.totalCommits"
	StatTotalPRs          Key = "stats.totalPRs"
	StatTotalMerges       Key = "stats.totalMerges"
	StatTotalIssues       Key = "stats.totalIssues"
	StatTotalReviews      Key = "stats.totalReviews"
	StatActiveProjects    Key = "stats.activeProjects"
	StatLongestStreakDays Key = "stats.longestStreakDays"
	StatCreatedRepos      Key = "stats.createdRepos"
)

// Top repository badges and units.
const (
	RepoMostCommits         Key = "repoLabels.mostCommits"
	RepoMostPRs             Key = "repoLabels.mostPRs"
	RepoMostChanges         Key = "repoLabels.mostChanges"
	RepoLongestContribution Key = "repoLabels.longestContribution"
	RepoMostStarred         Key = "repoLabels.mostStarred"
	UnitCommits             Key = "repoLabels.commits"
	UnitPRs                 Key = "repoLabels.prs"
	UnitChanges             Key = "repoLabels.changes"
	UnitDays                Key = "repoLabels.days"
	UnitStars               Key = "repoLabels.stars"
	UnitRepos               Key = "repoLabels.repos"
)

// Empty-state messages.
const (
	EmptyCreated   Key = "empty.created"
	EmptyOrgs      Key = "empty.orgs"
	EmptyCommits   Key = "empty.commits"
	EmptyLanguages Key = "empty.languages"
	NotAvailable   Key = "empty.na"
)
