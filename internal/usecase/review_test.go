package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vibe-english-platform/vocabcli/internal/entity"
)

type fakeReviewGateway struct {
	due      []entity.DueCard
	dueErr   error
	records  []entity.ReviewRecord
	recordEr error
}

func (g *fakeReviewGateway) DueCards(ctx context.Context) ([]entity.DueCard, error) {
	return g.due, g.dueErr
}

func (g *fakeReviewGateway) ReviewQuestion(ctx context.Context, collectionID, cardID string) (*entity.ReviewQuestion, error) {
	return &entity.ReviewQuestion{
		Type:    entity.QuestionShortAnswer,
		Prompt:  "define " + cardID,
		Answer:  "a strong desire for success",
	}, nil
}

func (g *fakeReviewGateway) RecordReview(ctx context.Context, rec entity.ReviewRecord) (*entity.ReviewOutcome, error) {
	if g.recordEr != nil {
		return nil, g.recordEr
	}
	g.records = append(g.records, rec)
	return &entity.ReviewOutcome{
		CardID: rec.CardID,
		SRS:    entity.SRSState{Status: entity.CardStatusLearning, IntervalDays: 1, ReviewCount: 1},
	}, nil
}

func dueCard(id string) entity.DueCard {
	return entity.DueCard{
		CollectionID: "col-1",
		Card: entity.CollectionCard{
			LearningCard: entity.LearningCard{ID: id, Word: "ambitious", Meaning: entity.Meaning{Definition: "d"}},
			SRS:          entity.SRSState{Status: entity.CardStatusNew},
		},
	}
}

func TestEmptyBatchCompletesImmediately(t *testing.T) {
	gw := &fakeReviewGateway{}
	s := NewReviewSession(gw)
	completions := 0
	s.OnComplete(func() { completions++ })

	if err := s.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !s.Completed() {
		t.Fatal("empty due set must complete immediately")
	}
	if completions != 1 {
		t.Fatalf("completion fired %d times, want 1", completions)
	}
	if _, ok := s.Current(); ok {
		t.Fatal("no flashcard should be presented")
	}
}

func TestSubmitAdvancesAndCompletesOnce(t *testing.T) {
	gw := &fakeReviewGateway{due: []entity.DueCard{dueCard("c1"), dueCard("c2")}}
	s := NewReviewSession(gw)
	completions := 0
	s.OnComplete(func() { completions++ })

	if err := s.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	if s.Remaining() != 2 {
		t.Fatalf("remaining = %d", s.Remaining())
	}

	if _, err := s.Submit(context.Background(), entity.RatingAgain, 0); err != nil {
		t.Fatal(err)
	}
	if s.Completed() || s.Remaining() != 1 {
		t.Fatalf("after first rating: completed=%v remaining=%d", s.Completed(), s.Remaining())
	}
	if got := gw.records[0].Rating; got != entity.RatingAgain {
		t.Fatalf("submitted rating %d, want 1", got)
	}

	if _, err := s.Submit(context.Background(), entity.RatingGood, 0); err != nil {
		t.Fatal(err)
	}
	if !s.Completed() {
		t.Fatal("last card must complete the session")
	}
	if completions != 1 {
		t.Fatalf("completion fired %d times, want exactly 1", completions)
	}

	if _, err := s.Submit(context.Background(), entity.RatingGood, 0); !errors.Is(err, entity.ErrSessionCompleted) {
		t.Fatalf("err = %v, want session completed", err)
	}
}

func TestSubmitRejectsInvalidRating(t *testing.T) {
	gw := &fakeReviewGateway{due: []entity.DueCard{dueCard("c1")}}
	s := NewReviewSession(gw)
	if err := s.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Submit(context.Background(), entity.Rating(5), 0); !errors.Is(err, entity.ErrInvalidRating) {
		t.Fatalf("err = %v, want invalid rating", err)
	}
	if s.Remaining() != 1 {
		t.Fatal("invalid rating must not advance the session")
	}
}

func TestSubmitFailureKeepsPosition(t *testing.T) {
	gw := &fakeReviewGateway{due: []entity.DueCard{dueCard("c1")}, recordEr: errors.New("backend down")}
	s := NewReviewSession(gw)
	if err := s.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Submit(context.Background(), entity.RatingGood, 0); err == nil {
		t.Fatal("expected record error")
	}
	if s.Completed() || s.Remaining() != 1 {
		t.Fatal("failed submission must not advance")
	}
}

func TestQuestionFetchedOncePerCard(t *testing.T) {
	gw := &fakeReviewGateway{due: []entity.DueCard{dueCard("c1")}}
	s := NewReviewSession(gw)
	if err := s.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	q1, err := s.Question(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	q2, err := s.Question(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if q1 != q2 {
		t.Fatal("question should be cached for the current card")
	}
}

func TestRevealOnlyAfterQuestion(t *testing.T) {
	gw := &fakeReviewGateway{due: []entity.DueCard{dueCard("c1")}}
	s := NewReviewSession(gw)
	if err := s.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Reveal(); err == nil {
		t.Fatal("reveal before loading a question should fail")
	}
	if _, err := s.Question(context.Background()); err != nil {
		t.Fatal(err)
	}
	answer, err := s.Reveal()
	if err != nil {
		t.Fatal(err)
	}
	if answer == "" || !s.Revealed() {
		t.Fatal("reveal should expose the answer")
	}
}

func TestSubmitRecordsElapsedTime(t *testing.T) {
	gw := &fakeReviewGateway{due: []entity.DueCard{dueCard("c1")}}
	s := NewReviewSession(gw)
	now := time.Now()
	s.clock = func() time.Time { return now }

	if err := s.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Question(context.Background()); err != nil {
		t.Fatal(err)
	}
	now = now.Add(7 * time.Second)

	if _, err := s.Submit(context.Background(), entity.RatingHard, 3); err != nil {
		t.Fatal(err)
	}
	rec := gw.records[0]
	if rec.ElapsedMs != 7000 {
		t.Fatalf("elapsed = %dms, want 7000", rec.ElapsedMs)
	}
	if rec.Confidence != 3 {
		t.Fatalf("confidence = %d", rec.Confidence)
	}
}
