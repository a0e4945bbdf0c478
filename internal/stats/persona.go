package stats

// PersonaID is one of the ten activity archetypes assigned by the service.
type PersonaID string

const (
	Polyglot        PersonaID = "polyglot"
	NightOwl        PersonaID = "night_owl"
	WeekendWarrior  PersonaID = "weekend_warrior"
	PRMachine       PersonaID = "pr_machine"
	EarlyBird       PersonaID = "early_bird"
	ConsistentCoder PersonaID = "consistent_coder"
	MarathonRunner  PersonaID = "marathon_runner"
	StarGazer       PersonaID = "star_gazer"
	TheReviewer     PersonaID = "the_reviewer"
	BugHunter       PersonaID = "bug_hunter"
)

// Personas lists every known archetype.
var Personas = []PersonaID{
	Polyglot, NightOwl, WeekendWarrior, PRMachine, EarlyBird,
	ConsistentCoder, MarathonRunner, StarGazer, TheReviewer, BugHunter,
}

// Persona is the badge shown on the report and the share image.
type Persona struct {
	ID   PersonaID `json:"id"`
	Icon string    `json:"icon"`
}

// Known reports whether the id is one of the ten archetypes.
func (id PersonaID) Known() bool {
	for _, p := range Personas {
		if p == id {
			return true
		}
	}
	return false
}
