package i18n

import (
	"golang.org/x/text/language"

	"gh-wrapped/internal/stats"
)

var tables = map[Language]*Table{
	Turkish: turkish,
	English: english,
}

var turkish = &Table{
	Lang: Turkish,
	tag:  language.Turkish,

	Title:            "GitHub Wrapped",
	Subtitle:         "{year} yılındaki GitHub aktivitelerinizi keşfedin",
	InputPlaceholder: "GitHub kullanıcı adı",
	Loading:          "Veriler analiz ediliyor...",
	WrappedTitle:     "🎉 {year} GitHub Özetim",
	ResultsTitle:     "{year} GitHub Özetiniz",
	ResultsSubtitle:  "İşte tüm istatistikleriniz!",
	PrivateIncluded:  "✓ Private repo katkıları dahil",
	PrivateExcluded:  "⚠️ Private repo katkıları dahil değil",
	NewSearch:        "Yeni Arama",

	QuizTitle:    "🎯 Tahmin Et!",
	QuizContinue: "Devam Et →",
	QuizCorrect:  "✅ Doğru!",
	QuizWrong:    "❌ Yanlış!",
	QuizScore:    "{score}/{total} doğru tahmin",
	Q1:           "{year} yılında kaç commit attığını tahmin et?",
	Q1Expl:       "Tam olarak {count} commit attınız! {emoji}",
	Q1Tier1:      "🔥 İnanılmaz!",
	Q1Tier2:      "💪 Harika!",
	Q1Tier3:      "👍 Güzel çalışma!",
	Q2:           "En çok hangi projeye commit attın?",
	Q2Expl:       `{count} commit ile "{repo}" en aktif projeniz! 🏆`,
	Q3:           "{year} yılında en çok hangi programlama dilini kullandın?",
	Q3Expl:       `"{lang}" en çok kullandığınız dil! 🔤`,

	PreviewTitle:   "Görsel Önizleme",
	Download:       "İndir",
	CopyShare:      "Panoya Kopyala & Paylaş",
	ShareX:         "X'te Paylaş",
	ShareLinkedIn:  "LinkedIn'de Paylaş",
	Generating:     "📸 LinkedIn görseli oluşturuluyor...",
	PasteHint:      "✅ Görsel kopyalandı! LinkedIn açılıyor, lütfen orada yapıştırın (Ctrl+V).",
	Downloaded:     "Görsel indirildi.",
	ImageFailed:    "Görsel oluşturulurken hata oluştu. Lütfen tekrar deneyin.",
	XShareTemplate: "🎉 Benim {year} GitHub Wrapped sonuçlarım!\n\n💻 {commits} Commit\n📦 {repos} Proje\n🔥 {days} Aktif Gün\n⭐ {stars} Star\n\nSenin sonuçların nasıl? #GitHubWrapped",

	ErrUsernameRequired: "Lütfen kullanıcı adı girin",
	ErrGeneric:          "Hata oluştu",
	ErrNetwork:          "Sunucuya ulaşılamadı",

	Months: [12]string{"Oca", "Şub", "Mar", "Nis", "May", "Haz", "Tem", "Ağu", "Eyl", "Eki", "Kas", "Ara"},

	Labels: map[Key]string{
		SectionHero:       "📊 Ana İstatistikler",
		SectionActivity:   "📈 Aktivite Dağılımı",
		SectionTopRepos:   "🏆 En Aktif Projeler",
		SectionStarsForks: "⭐ Star & Fork",
		SectionCreated:    "🆕 {year} Yılında Oluşturulan",
		SectionOrgs:       "🏢 Organizasyon Katkıları",
		SectionCommits:    "💬 Commit Mesajları",
		SectionLanguages:  "🔤 {year} Yılında Kullanılan Diller",
		SectionMonthly:    "📅 Aylık Aktivite",
		SectionSplit:      "🎯 Katkı Dağılımı",
		SectionSummary:    "📊 Tüm İstatistikler",
		SectionPersona:    "🎭 Geliştirici Kişiliğin",
		SectionNotice:     "ℹ️ Not",

		StatTotalContribution: "Toplam Katkı",
		StatProjects:          "Proje",
		StatActiveDays:        "Aktif Gün",
		StatLongestStreak:     "En Uzun Seri",
		StatCommit:            "Commit",
		StatPullRequest:       "Pull Request",
		StatMerge:             "Merge",
		StatIssue:             "Issue",
		StatReview:            "Review",
		StatStarsReceived:     "Aldığınız Star",
		StatForksReceived:     "Aldığınız Fork",
		StatReposCreated:      "Oluşturulan",
		StatReposForked:       "Fork Edilen",
		StatOwnProjects:       "Kendi Projelerim",
		StatOthersProjects:    "Diğer Projeler",
		StatTotalCommits:      "Toplam Commit",
		StatTotalPRs:          "Pull Request",
		StatTotalMerges:       "Merge",
		StatTotalIssues:       "Issue",
		StatTotalReviews:      "Review",
		StatActiveProjects:    "Aktif Proje",
		StatLongestStreakDays: "En Uzun Seri",
		StatCreatedRepos:      "Oluşturulan Repo",

		RepoMostCommits:         "En Çok Commit",
		RepoMostPRs:             "En Çok PR",
		RepoMostChanges:         "En Çok Değişiklik",
		RepoLongestContribution: "En Uzun Katkı",
		RepoMostStarred:         "En Çok Star",
		UnitCommits:             "commit",
		UnitPRs:                 "PR",
		UnitChanges:             "değişiklik",
		UnitDays:                "gün",
		UnitStars:               "star",
		UnitRepos:               "repo",

		EmptyCreated:   "Bu yıl yeni repo oluşturulmadı",
		EmptyOrgs:      "Organizasyon katkısı yok",
		EmptyCommits:   "Commit mesajı bulunamadı",
		EmptyLanguages: "Dil bilgisi bulunamadı",
		NotAvailable:   "N/A",
	},

	Personas: map[stats.PersonaID]PersonaText{
		stats.Polyglot:        {"Polyglot", "Sınır tanımayan bir dil ustasısın! 🌍"},
		stats.NightOwl:        {"Gece Kuşu", "Geceleri kod yazmak senin süper gücün! 🦉"},
		stats.WeekendWarrior:  {"Hafta Sonu Savaşçısı", "Hafta sonlarını koda adıyorsun! ⚔️"},
		stats.PRMachine:       {"PR Makinesi", "İşbirliği ve katkı senin göbek adın! 🤖"},
		stats.EarlyBird:       {"Erkenci Kuş", "Güne kodla başlıyorsun! 🌅"},
		stats.ConsistentCoder: {"İstikrarlı Kodlayıcı", "Düzenli ve güvenilir bir geliştiricisin! 👨‍💻"},
		stats.MarathonRunner:  {"Maratoncu", "İnanılmaz bir commit serisine sahipsin! 🏃"},
		stats.StarGazer:       {"Yıldız Avcısı", "Projelerinle herkesin ilgisini çekiyorsun! 🤩"},
		stats.TheReviewer:     {"Gözlemci", "Kod kalitesini artırmak senin işin! 👀"},
		stats.BugHunter:       {"Böcek Avcısı", "Hiçbir hata senden kaçamaz! 🐛"},
	},
}

var english = &Table{
	Lang: English,
	tag:  language.English,

	Title:            "GitHub Wrapped",
	Subtitle:         "Discover your GitHub activity in {year}",
	InputPlaceholder: "GitHub username",
	Loading:          "Analyzing data...",
	WrappedTitle:     "🎉 {year} GitHub Wrapped",
	ResultsTitle:     "Your {year} GitHub Wrapped",
	ResultsSubtitle:  "Here are all your statistics!",
	PrivateIncluded:  "✓ Private repo contributions included",
	PrivateExcluded:  "⚠️ Private repo contributions not included",
	NewSearch:        "New Search",

	QuizTitle:    "🎯 Guess!",
	QuizContinue: "Continue →",
	QuizCorrect:  "✅ Correct!",
	QuizWrong:    "❌ Wrong!",
	QuizScore:    "{score}/{total} correct guesses",
	Q1:           "Guess how many commits you made in {year}?",
	Q1Expl:       "Exactly {count} commits! {emoji}",
	Q1Tier1:      "🔥 Incredible!",
	Q1Tier2:      "💪 Great!",
	Q1Tier3:      "👍 Good work!",
	Q2:           "Which project did you commit to most?",
	Q2Expl:       `{count} commits to "{repo}" - your most active project! 🏆`,
	Q3:           "Which programming language did you use most in {year}?",
	Q3Expl:       `"{lang}" is your most used language! 🔤`,

	PreviewTitle:   "Image Preview",
	Download:       "Download",
	CopyShare:      "Copy & Share",
	ShareX:         "Share on X",
	ShareLinkedIn:  "Share on LinkedIn",
	Generating:     "📸 Generating LinkedIn image...",
	PasteHint:      "✅ Image copied! Opening LinkedIn, please paste it there (Ctrl+V).",
	Downloaded:     "Image downloaded.",
	ImageFailed:    "Error generating image. Please try again.",
	XShareTemplate: "🎉 My {year} GitHub Wrapped results!\n\n💻 {commits} Commits\n📦 {repos} Projects\n🔥 {days} Active Days\n⭐ {stars} Stars\n\nWhat are your stats? #GitHubWrapped",

	ErrUsernameRequired: "Please enter a username",
	ErrGeneric:          "Something went wrong",
	ErrNetwork:          "Could not reach the server",

	Months: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},

	Labels: map[Key]string{
		SectionHero:       "📊 Main Statistics",
		SectionActivity:   "📈 Activity Breakdown",
		SectionTopRepos:   "🏆 Most Active Projects",
		SectionStarsForks: "⭐ Stars & Forks",
		SectionCreated:    "🆕 Created in {year}",
		SectionOrgs:       "🏢 Organization Contributions",
		SectionCommits:    "💬 Commit Messages",
		SectionLanguages:  "🔤 Languages Used in {year}",
		SectionMonthly:    "📅 Monthly Activity",
		SectionSplit:      "🎯 Contribution Split",
		SectionSummary:    "📊 All Statistics",
		SectionPersona:    "🎭 Your Developer Persona",
		SectionNotice:     "ℹ️ Note",

		StatTotalContribution: "Total Contributions",
		StatProjects:          "Projects",
		StatActiveDays:        "Active Days",
		StatLongestStreak:     "Longest Streak",
		StatCommit:            "Commits",
		StatPullRequest:       "Pull Requests",
		StatMerge:             "Merges",
		StatIssue:             "Issues",
		StatReview:            "Reviews",
		StatStarsReceived:     "Stars Received",
		StatForksReceived:     "Forks Received",
		StatReposCreated:      "Created",
		StatReposForked:       "Forked",
		StatOwnProjects:       "My Projects",
		StatOthersProjects:    "Other Projects",
		StatTotalCommits:      "Total Commits",
		StatTotalPRs:          "Pull Requests",
		StatTotalMerges:       "Merges",
		StatTotalIssues:       "Issues",
		StatTotalReviews:      "Reviews",
		StatActiveProjects:    "Active Projects",
		StatLongestStreakDays: "Longest Streak",
		StatCreatedRepos:      "Created Repos",

		RepoMostCommits:         "Most Commits",
		RepoMostPRs:             "Most PRs",
		RepoMostChanges:         "Most Changes",
		RepoLongestContribution: "Longest Contribution",
		RepoMostStarred:         "Most Starred",
		UnitCommits:             "commits",
		UnitPRs:                 "PRs",
		UnitChanges:             "changes",
		UnitDays:                "days",
		UnitStars:               "stars",
		UnitRepos:               "repos",

		EmptyCreated:   "No new repositories created this year",
		EmptyOrgs:      "No organization contributions",
		EmptyCommits:   "No commit messages found",
		EmptyLanguages: "No language data found",
		NotAvailable:   "N/A",
	},

	Personas: map[stats.PersonaID]PersonaText{
		stats.Polyglot:        {"Polyglot", "A master of many languages! 🌍"},
		stats.NightOwl:        {"Night Owl", "Coding at night is your superpower! 🦉"},
		stats.WeekendWarrior:  {"Weekend Warrior", "Dedicating weekends to code! ⚔️"},
		stats.PRMachine:       {"PR Machine", "Collaboration is your middle name! 🤖"},
		stats.EarlyBird:       {"Early Bird", "Starting the day with code! 🌅"},
		stats.ConsistentCoder: {"Consistent Coder", "Reliable and steady developer! 👨‍💻"},
		stats.MarathonRunner:  {"Marathon Runner", "You have an incredible commit streak! 🏃"},
		stats.StarGazer:       {"Star Gazer", "Your projects attract everyone's attention! 🤩"},
		stats.TheReviewer:     {"The Reviewer", "Improving code quality is your job! 👀"},
		stats.BugHunter:       {"Bug Hunter", "No bug can escape from you! 🐛"},
	},
}
