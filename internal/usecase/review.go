package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/vibe-english-platform/vocabcli/internal/entity"
)

// reviewGateway is the slice of the API client the session uses.
type reviewGateway interface {
	DueCards(ctx context.Context) ([]entity.DueCard, error)
	ReviewQuestion(ctx context.Context, collectionID, cardID string) (*entity.ReviewQuestion, error)
	RecordReview(ctx context.Context, rec entity.ReviewRecord) (*entity.ReviewOutcome, error)
}

// ReviewSession walks the server's due batch one card at a time. The batch
// is loaded once at Start; positions are not persisted, so an abandoned
// session restarts from the server's current due set. Scheduling state is
// entirely server-computed — every rating is a round-trip and the outcome
// carries the authoritative card state back.
type ReviewSession struct {
	gw    reviewGateway
	clock func() time.Time

	cards      []entity.DueCard
	idx        int
	question   *entity.ReviewQuestion
	revealed   bool
	shownAt    time.Time
	completed  bool
	onComplete func()
}

// NewReviewSession builds an unstarted session.
func NewReviewSession(gw reviewGateway) *ReviewSession {
	return &ReviewSession{gw: gw, clock: time.Now}
}

// OnComplete registers a callback fired exactly once when the session
// finishes, including the empty-batch case.
func (s *ReviewSession) OnComplete(fn func()) {
	s.onComplete = fn
}

// Start loads the due batch. An empty batch completes the session
// immediately with no flashcard interaction.
func (s *ReviewSession) Start(ctx context.Context) error {
	cards, err := s.gw.DueCards(ctx)
	if err != nil {
		return fmt.Errorf("load due cards: %w", err)
	}
	s.cards = cards
	s.idx = 0
	if len(cards) == 0 {
		s.complete()
	} else {
		s.shownAt = s.clock()
	}
	return nil
}

// Completed reports whether the session is over.
func (s *ReviewSession) Completed() bool { return s.completed }

// Total returns the size of the loaded batch.
func (s *ReviewSession) Total() int { return len(s.cards) }

// Remaining returns how many cards are left, the current one included.
func (s *ReviewSession) Remaining() int {
	if s.completed {
		return 0
	}
	return len(s.cards) - s.idx
}

// Current returns the card under review.
func (s *ReviewSession) Current() (*entity.DueCard, bool) {
	if s.completed || s.idx >= len(s.cards) {
		return nil, false
	}
	return &s.cards[s.idx], true
}

// Question fetches (once per card) the server-chosen exercise for the
// current card. The answer stays hidden until Reveal.
func (s *ReviewSession) Question(ctx context.Context) (*entity.ReviewQuestion, error) {
	cur, ok := s.Current()
	if !ok {
		return nil, entity.ErrSessionCompleted
	}
	if s.question != nil {
		return s.question, nil
	}
	q, err := s.gw.ReviewQuestion(ctx, cur.CollectionID, cur.Card.ID)
	if err != nil {
		return nil, err
	}
	s.question = q
	s.shownAt = s.clock()
	return q, nil
}

// Revealed reports whether the answer has been shown for the current card.
func (s *ReviewSession) Revealed() bool { return s.revealed }

// Reveal exposes the correct answer, either after the user responded or on
// explicit request.
func (s *ReviewSession) Reveal() (string, error) {
	if _, ok := s.Current(); !ok {
		return "", entity.ErrSessionCompleted
	}
	if s.question == nil {
		return "", fmt.Errorf("no question loaded for current card")
	}
	s.revealed = true
	return s.question.Answer, nil
}

// Submit records one 1-4 rating with optional confidence, then advances.
// The last card completes the session exactly once.
func (s *ReviewSession) Submit(ctx context.Context, rating entity.Rating, confidence int) (*entity.ReviewOutcome, error) {
	cur, ok := s.Current()
	if !ok {
		return nil, entity.ErrSessionCompleted
	}
	if !rating.Valid() {
		return nil, entity.ErrInvalidRating
	}

	now := s.clock()
	rec := entity.ReviewRecord{
		CollectionID: cur.CollectionID,
		CardID:       cur.Card.ID,
		Rating:       rating,
		Confidence:   confidence,
		ElapsedMs:    now.Sub(s.shownAt).Milliseconds(),
		ReviewedAt:   now,
	}
	outcome, err := s.gw.RecordReview(ctx, rec)
	if err != nil {
		return nil, err
	}

	s.idx++
	s.question = nil
	s.revealed = false
	s.shownAt = s.clock()
	if s.idx >= len(s.cards) {
		s.complete()
	}
	return outcome, nil
}

func (s *ReviewSession) complete() {
	if s.completed {
		return
	}
	s.completed = true
	if s.onComplete != nil {
		s.onComplete()
	}
}
