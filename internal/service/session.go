package service

import (
	"context"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"

	"github.com/you/skyfinder/internal/log"
	"github.com/you/skyfinder/internal/models"
	"github.com/you/skyfinder/internal/present"
	"github.com/you/skyfinder/internal/providers"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// FailureKind tells apart the reasons a search ended in PhaseFailed.
// An empty result is reported as a failure so it shares the error display,
// but callers can still distinguish it.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureValidation
	FailureTransport
	FailureEmptyResult
)

const (
	MsgFetchFailed = "Failed to fetch flights"
	MsgUnreadable  = "Something went wrong. Please try again."
	MsgNoFlights   = "No flights found for your search criteria"
)

// Outcome is the state of the latest search. Offers is only set in
// PhaseReady; Failure and Message only in PhaseFailed.
type Outcome struct {
	Phase   Phase
	Offers  []models.Offer
	Failure FailureKind
	Message string
}

// Ticket identifies one issued search. Only the newest ticket may complete.
type Ticket struct {
	Criteria models.Criteria
	seq      uint64
}

// Session holds the search form and its outcome and defines every allowed
// transition between phases. It is driven from a single goroutine and is not
// safe for concurrent use.
type Session struct {
	provider  providers.FlightProvider
	criteria  models.Criteria
	submitted models.Criteria
	outcome   Outcome
	sortKey   present.SortKey
	attempted bool
	seq       uint64
	logger    *zap.Logger
}

func NewSession(p providers.FlightProvider) *Session {
	return &Session{
		provider: p,
		sortKey:  present.SortRelevance,
		logger:   log.Logger.Named("session"),
	}
}

func (s *Session) Criteria() models.Criteria { return s.criteria }

func (s *Session) SetCriteria(c models.Criteria) { s.criteria = c }

func (s *Session) SetOrigin(v string) { s.criteria.Origin = v }

func (s *Session) SetDestination(v string) { s.criteria.Destination = v }

func (s *Session) SetDate(v string) { s.criteria.Date = v }

// Outcome returns a copy of the current state.
func (s *Session) Outcome() Outcome {
	out := s.outcome
	out.Offers = append([]models.Offer(nil), s.outcome.Offers...)
	return out
}

// Attempted reports whether a search has ever been issued. It decides
// whether an empty idle screen should say "no flights found".
func (s *Session) Attempted() bool { return s.attempted }

func (s *Session) SortKey() present.SortKey { return s.sortKey }

func (s *Session) SetSortKey(k present.SortKey) { s.sortKey = k }

// Begin validates the form and, when it is complete, moves to PhaseLoading
// and hands back the ticket for the one request to issue. A validation
// failure moves to PhaseFailed and returns the ValidationError; no request
// must be made in that case.
func (s *Session) Begin() (Ticket, error) {
	if s.outcome.Phase == PhaseLoading {
		s.logger.Debug("search issued while another is in flight", zap.Uint64("superseded", s.seq))
	}

	c := s.criteria.Normalize()
	if err := c.Validate(); err != nil {
		if s.outcome.Phase != PhaseLoading {
			s.outcome = Outcome{Phase: PhaseFailed, Failure: FailureValidation, Message: err.Error()}
		}
		return Ticket{}, err
	}

	s.attempted = true
	s.seq++
	s.outcome = Outcome{Phase: PhaseLoading}
	s.logger.Info("search started",
		zap.String("from", c.Origin),
		zap.String("to", c.Destination),
		zap.String("date", c.Date),
		zap.Uint64("seq", s.seq))

	return Ticket{Criteria: c, seq: s.seq}, nil
}

// Fetch issues the request for t. It does not touch session state, so it
// may run off the UI goroutine.
func (s *Session) Fetch(ctx context.Context, t Ticket) ([]models.Offer, error) {
	if s.provider == nil {
		return nil, errors.New("no flight provider configured")
	}
	return s.provider.Search(ctx, t.Criteria)
}

// Complete applies the result of t's request. Results for any ticket other
// than the newest are dropped and Complete returns false.
func (s *Session) Complete(t Ticket, offers []models.Offer, err error) bool {
	if t.seq == 0 || t.seq != s.seq || s.outcome.Phase != PhaseLoading {
		s.logger.Debug("dropping stale search result", zap.Uint64("seq", t.seq), zap.Uint64("latest", s.seq))
		return false
	}

	switch {
	case err != nil:
		msg := MsgFetchFailed
		if errors.Is(err, models.ErrMalformedBody) {
			msg = MsgUnreadable
		}
		s.logger.Warn("search failed", zap.Error(err), zap.Uint64("seq", t.seq))
		s.outcome = Outcome{Phase: PhaseFailed, Failure: FailureTransport, Message: msg}
	case len(offers) == 0:
		s.logger.Info("search returned no offers", zap.Uint64("seq", t.seq))
		s.outcome = Outcome{Phase: PhaseFailed, Failure: FailureEmptyResult, Message: MsgNoFlights}
	default:
		s.logger.Info("search ready", zap.Int("offers", len(offers)), zap.Uint64("seq", t.seq))
		s.submitted = t.Criteria
		s.outcome = Outcome{Phase: PhaseReady, Offers: append([]models.Offer(nil), offers...)}
	}
	return true
}

// Submit runs a whole search synchronously.
func (s *Session) Submit(ctx context.Context) error {
	t, err := s.Begin()
	if err != nil {
		return err
	}
	offers, err := s.Fetch(ctx, t)
	s.Complete(t, offers, err)
	return err
}

// Dismiss is the "try again" action: it clears a failure and returns to
// PhaseIdle. Other phases are left alone.
func (s *Session) Dismiss() {
	if s.outcome.Phase == PhaseFailed {
		s.outcome = Outcome{Phase: PhaseIdle}
	}
}

// Records projects the ready offers through the current sort key. Missing
// route and date fall back to the criteria the results were fetched with,
// not to whatever the form holds now.
func (s *Session) Records(loc *time.Location) []present.Record {
	if s.outcome.Phase != PhaseReady {
		return nil
	}
	return present.Records(s.outcome.Offers, s.sortKey, s.submitted, loc)
}
