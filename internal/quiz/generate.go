package quiz

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"gh-wrapped/internal/i18n"
	"gh-wrapped/internal/stats"
)

// OptionCount is the number of choices every question offers.
const OptionCount = 4

// commonLanguages pads the language question when the report ranks fewer than four.
var commonLanguages = []string{"JavaScript", "Python", "Java", "TypeScript", "Go", "C++", "Ruby", "PHP"}

// Question is one multiple-choice prompt derived from a report.
type Question struct {
	Prompt      string
	Options     []string
	Correct     string
	Explanation string
}

// Shuffler randomizes option order. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// DefaultShuffler uses the process-wide random source.
var DefaultShuffler Shuffler = globalShuffler{}

// Generate derives between one and three questions from the report. The
// commit count question is always present; the repository and language
// questions need their source data.
func Generate(r *stats.Report, t *i18n.Table, rng Shuffler) []Question {
	if rng == nil {
		rng = DefaultShuffler
	}

	questions := []Question{commitQuestion(r, t, rng)}
	if q, ok := repoQuestion(r, t, rng); ok {
		questions = append(questions, q)
	}
	if q, ok := languageQuestion(r, t, rng); ok {
		questions = append(questions, q)
	}
	return questions
}

// CommitCandidates returns the correct commit count followed by its three
// distractors, clamped at zero. Distractors may repeat each other. A
// distractor equal to the correct value is moved further up the scale so the
// answer stays unique.
func CommitCandidates(correct int) []int {
	spread := max(50, correct*3/10)
	out := []int{correct}
	bump := 2
	for _, d := range []int{correct - spread, correct + spread, correct / 2} {
		d = max(0, d)
		if d == correct {
			d = correct + bump*spread
			bump++
		}
		out = append(out, d)
	}
	return out
}

func commitQuestion(r *stats.Report, t *i18n.Table, rng Shuffler) Question {
	correct := r.Stats.TotalCommits

	candidates := CommitCandidates(correct)
	options := make([]string, len(candidates))
	for i, c := range candidates {
		options[i] = strconv.Itoa(c)
	}
	shuffle(rng, options)

	return Question{
		Prompt:      t.Q1,
		Options:     options,
		Correct:     strconv.Itoa(correct),
		Explanation: i18n.Fill(t.Q1Expl, "count", t.FormatInt(correct), "emoji", commitTier(correct, t)),
	}
}

func commitTier(commits int, t *i18n.Table) string {
	switch {
	case commits > 500:
		return t.Q1Tier1
	case commits > 200:
		return t.Q1Tier2
	default:
		return t.Q1Tier3
	}
}

func repoQuestion(r *stats.Report, t *i18n.Table, rng Shuffler) (Question, bool) {
	top, ok := r.TopRepos.Get(stats.MostCommits)
	if !ok || top.MetricValue <= 0 {
		return Question{}, false
	}

	correct := top.Name
	options := []string{correct}
	if prs, ok := r.TopRepos.Get(stats.MostPRs); ok && prs.Name != correct {
		options = append(options, prs.Name)
	}
	if longest, ok := r.TopRepos.Get(stats.LongestContribution); ok && !contains(options, longest.Name) && len(options) < 3 {
		options = append(options, longest.Name)
	}
	for n := len(options); len(options) < OptionCount; n++ {
		placeholder := fmt.Sprintf("Repo-%d", n)
		if contains(options, placeholder) {
			continue
		}
		options = append(options, placeholder)
	}
	shuffle(rng, options)

	return Question{
		Prompt:      t.Q2,
		Options:     options,
		Correct:     correct,
		Explanation: i18n.Fill(t.Q2Expl, "count", t.FormatInt(top.MetricValue), "repo", correct),
	}, true
}

func languageQuestion(r *stats.Report, t *i18n.Table, rng Shuffler) (Question, bool) {
	correct, ok := r.TopLanguage()
	if !ok {
		return Question{}, false
	}

	names := r.Languages.Names()
	options := append([]string(nil), names[:min(3, len(names))]...)
	for _, lang := range commonLanguages {
		if len(options) >= OptionCount {
			break
		}
		if !contains(options, lang) {
			options = append(options, lang)
		}
	}
	shuffle(rng, options)

	return Question{
		Prompt:      t.Q3,
		Options:     options,
		Correct:     correct,
		Explanation: i18n.Fill(t.Q3Expl, "lang", correct),
	}, true
}

func shuffle(rng Shuffler, s []string) {
	rng.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}

func contains(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
