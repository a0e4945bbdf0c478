package session

import (
	"gh-wrapped/internal/quiz"
	"gh-wrapped/internal/stats"
)

// Session is the state of one lookup: the fetched report, the quiz over it
// and the pending share image. It is replaced wholesale on a new search.
type Session struct {
	report *stats.Report
	quiz   *quiz.Engine
	image  []byte
}

func newSession(r *stats.Report, q *quiz.Engine) *Session {
	return &Session{report: r, quiz: q}
}

// Report returns the immutable stats of this session.
func (s *Session) Report() *stats.Report { return s.report }

// Quiz returns the quiz engine.
func (s *Session) Quiz() *quiz.Engine { return s.quiz }

// Image returns the composed share image, or nil.
func (s *Session) Image() []byte { return s.image }
