package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"gh-wrapped/internal/api"
	"gh-wrapped/internal/i18n"
	"gh-wrapped/internal/metrics"
	"gh-wrapped/internal/quiz"
)

// State is the visible panel. Exactly one is shown at a time.
type State int

const (
	Input State = iota
	Loading
	Quiz
	Report
)

func (s State) String() string {
	switch s {
	case Input:
		return "input"
	case Loading:
		return "loading"
	case Quiz:
		return "quiz"
	case Report:
		return "report"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	// ErrSuperseded is returned by Submit when a new search started while the
	// fetch was in flight. Its result has been discarded.
	ErrSuperseded = errors.New("session: lookup superseded by a new search")
	ErrWrongState = errors.New("session: action not allowed in current state")
	ErrNoSession  = errors.New("session: no active session")
)

// View receives every visible change the controller makes.
type View interface {
	Show(State)
	ShowError(msg string)
	ClearError()
	SetLoading(bool)
	FocusInput()
}

// Controller drives Input -> Loading -> Quiz -> Report and back. All state
// changes happen under one lock; only the stats fetch runs outside it.
type Controller struct {
	client api.Client
	view   View
	year   int
	rng    quiz.Shuffler

	mu      sync.Mutex
	table   *i18n.Table
	state   State
	epoch   uint64
	session *Session
}

// NewController starts in the Input state. A nil rng uses quiz.DefaultShuffler.
func NewController(client api.Client, view View, table *i18n.Table, year int, rng quiz.Shuffler) *Controller {
	c := &Controller{client: client, view: view, table: table, year: year, rng: rng}
	view.Show(Input)
	view.FocusInput()
	return c
}

// State returns the visible panel.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Session returns the active session, or nil outside Quiz and Report.
func (c *Controller) Session() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// SetTable switches the language used for subsequent messages and quizzes.
func (c *Controller) SetTable(t *i18n.Table) {
	c.mu.Lock()
	c.table = t
	c.mu.Unlock()
}

// Submit looks up username and blocks until the fetch finishes. On success
// the quiz is shown; on failure the input panel returns with one error
// message. If NewSearch runs meanwhile the outcome is dropped and
// ErrSuperseded returned.
func (c *Controller) Submit(ctx context.Context, username string) error {
	c.mu.Lock()
	if c.state != Input {
		c.mu.Unlock()
		return ErrWrongState
	}
	username = strings.TrimSpace(username)
	if username == "" {
		err := &api.ValidationError{Field: "username", Message: "required"}
		metrics.StatsFetchTotal.WithLabelValues(metrics.OutcomeValidation).Inc()
		c.view.ShowError(userMessage(err, c.table))
		c.mu.Unlock()
		return err
	}

	c.epoch++
	epoch := c.epoch
	c.state = Loading
	c.view.ClearError()
	c.view.SetLoading(true)
	c.view.Show(Loading)
	c.mu.Unlock()

	report, err := c.client.FetchStats(ctx, username, c.year)

	c.mu.Lock()
	defer c.mu.Unlock()
	if epoch != c.epoch {
		log.Debug().Str("username", username).Msg("Discarding superseded lookup")
		return ErrSuperseded
	}

	c.view.SetLoading(false)
	if err != nil {
		metrics.StatsFetchTotal.WithLabelValues(outcome(err)).Inc()
		log.Error().Err(err).Str("username", username).Msg("Stats lookup failed")
		c.state = Input
		c.view.Show(Input)
		c.view.ShowError(userMessage(err, c.table))
		return err
	}
	metrics.StatsFetchTotal.WithLabelValues(metrics.OutcomeOK).Inc()

	engine := quiz.NewEngine(quiz.Generate(report, c.table, c.rng))
	c.session = newSession(report, engine)
	if engine.Start() == quiz.Complete {
		c.state = Report
	} else {
		c.state = Quiz
	}
	c.view.Show(c.state)
	return nil
}

// Answer records a choice for the current question.
func (c *Controller) Answer(choice string) (quiz.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Quiz {
		return quiz.Result{}, ErrWrongState
	}
	res, err := c.session.quiz.Select(c.session.quiz.Index(), choice)
	if err != nil {
		return res, err
	}
	metrics.QuizAnswersTotal.WithLabelValues(strconv.FormatBool(res.Correct)).Inc()
	return res, nil
}

// Next advances past an answered question. Finishing the last one shows the
// report.
func (c *Controller) Next() (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Quiz {
		return c.state, ErrWrongState
	}
	phase, err := c.session.quiz.Advance()
	if err != nil {
		return c.state, err
	}
	if phase == quiz.Complete {
		c.state = Report
		c.view.Show(Report)
	}
	return c.state, nil
}

// NewSearch drops the session from any state and returns to an empty input.
// An in-flight fetch is superseded.
func (c *Controller) NewSearch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	c.session = nil
	c.state = Input
	c.view.SetLoading(false)
	c.view.ClearError()
	c.view.Show(Input)
	c.view.FocusInput()
}

// SetImage stores the composed share image on the report session.
func (c *Controller) SetImage(png []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Report || c.session == nil {
		return ErrNoSession
	}
	c.session.image = png
	return nil
}

// ReleaseImage forgets the share image.
func (c *Controller) ReleaseImage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != nil {
		c.session.image = nil
	}
}

// userMessage reduces any lookup failure to the one line the user sees.
func userMessage(err error, t *i18n.Table) string {
	var (
		ve *api.ValidationError
		se *api.ServiceError
		ne *api.NetworkError
	)
	switch {
	case errors.As(err, &ve):
		return t.ErrUsernameRequired
	case errors.As(err, &se):
		if se.Message != "" {
			return se.Message
		}
		return t.ErrGeneric
	case errors.As(err, &ne):
		return t.ErrNetwork
	default:
		return t.ErrGeneric
	}
}

func outcome(err error) string {
	var (
		ve *api.ValidationError
		se *api.ServiceError
	)
	switch {
	case errors.As(err, &ve):
		return metrics.OutcomeValidation
	case errors.As(err, &se):
		return metrics.OutcomeService
	default:
		return metrics.OutcomeNetwork
	}
}
