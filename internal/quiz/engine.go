package quiz

import (
	"errors"
	"fmt"
)

// Phase is the engine's position in NotStarted -> Showing -> Answered -> ... -> Complete.
type Phase int

const (
	NotStarted Phase = iota
	Showing
	Answered
	Complete
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not_started"
	case Showing:
		return "showing"
	case Answered:
		return "answered"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

var (
	ErrNotShowing      = errors.New("quiz: no question is awaiting an answer")
	ErrAlreadyAnswered = errors.New("quiz: question already answered")
	ErrWrongQuestion   = errors.New("quiz: answer is for a different question")
	ErrNotAnswered     = errors.New("quiz: current question has not been answered")
)

// Result is the feedback for one selection.
type Result struct {
	Index       int
	Chosen      string
	Correct     bool
	Answer      string
	Explanation string
}

// Engine walks a fixed question sequence. It is not safe for concurrent use;
// the session controller serializes access.
type Engine struct {
	questions []Question
	index     int
	phase     Phase
	results   []Result
}

// NewEngine creates an engine in the NotStarted phase.
func NewEngine(questions []Question) *Engine {
	return &Engine{questions: questions}
}

// Start shows the first question. An empty sequence completes immediately.
func (e *Engine) Start() Phase {
	if e.phase != NotStarted {
		return e.phase
	}
	if len(e.questions) == 0 {
		e.phase = Complete
		return e.phase
	}
	e.index = 0
	e.phase = Showing
	return e.phase
}

// Current returns the question being shown or answered.
func (e *Engine) Current() (Question, bool) {
	if e.phase != Showing && e.phase != Answered {
		return Question{}, false
	}
	return e.questions[e.index], true
}

// Select answers the question at index. Only the first selection on a
// question counts; later ones are rejected.
func (e *Engine) Select(index int, chosen string) (Result, error) {
	switch e.phase {
	case Answered:
		return Result{}, ErrAlreadyAnswered
	case Showing:
	default:
		return Result{}, ErrNotShowing
	}
	if index != e.index {
		return Result{}, ErrWrongQuestion
	}

	q := e.questions[e.index]
	res := Result{
		Index:       e.index,
		Chosen:      chosen,
		Correct:     chosen == q.Correct,
		Answer:      q.Correct,
		Explanation: q.Explanation,
	}
	e.results = append(e.results, res)
	e.phase = Answered
	return res, nil
}

// Advance moves past an answered question, completing after the last one.
func (e *Engine) Advance() (Phase, error) {
	if e.phase == Complete {
		return e.phase, nil
	}
	if e.phase != Answered {
		return e.phase, ErrNotAnswered
	}
	e.index++
	if e.index >= len(e.questions) {
		e.phase = Complete
	} else {
		e.phase = Showing
	}
	return e.phase, nil
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.phase }

// Index returns the zero-based position of the current question.
func (e *Engine) Index() int { return e.index }

// Len returns the number of questions.
func (e *Engine) Len() int { return len(e.questions) }

// Score returns how many answers were correct so far.
func (e *Engine) Score() int {
	n := 0
	for _, r := range e.results {
		if r.Correct {
			n++
		}
	}
	return n
}

// Results returns the recorded answers in order.
func (e *Engine) Results() []Result {
	return append([]Result(nil), e.results...)
}
