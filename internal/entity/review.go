package entity

import (
	"fmt"
	"strings"
	"time"
)

// Rating is the 1-4 flashcard grade submitted after each card.
type Rating int

const (
	RatingAgain Rating = 1
	RatingHard  Rating = 2
	RatingGood  Rating = 3
	RatingEasy  Rating = 4
)

// Valid reports whether the rating is in the accepted 1-4 range.
func (r Rating) Valid() bool {
	return r >= RatingAgain && r <= RatingEasy
}

func (r Rating) String() string {
	switch r {
	case RatingAgain:
		return "again"
	case RatingHard:
		return "hard"
	case RatingGood:
		return "good"
	case RatingEasy:
		return "easy"
	default:
		return fmt.Sprintf("rating(%d)", int(r))
	}
}

// QuestionType discriminates the exercise the server chose for a card.
type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionTrueFalse      QuestionType = "true_false"
	QuestionFillBlank      QuestionType = "fill_blank"
	QuestionShortAnswer    QuestionType = "short_answer"
	QuestionFreeWriting    QuestionType = "free_writing"
	QuestionSpeaking       QuestionType = "speaking"
)

// ReviewQuestion is one server-generated exercise. Options are only present
// for choice-based types; Answer is revealed to the user only after they
// respond or explicitly give up.
type ReviewQuestion struct {
	Type    QuestionType `json:"type"`
	Prompt  string       `json:"prompt"`
	Options []string     `json:"options,omitempty"`
	Answer  string       `json:"answer"`
	Hint    string       `json:"hint,omitempty"`
}

// Validate enforces the per-type shape at the decode boundary.
func (q *ReviewQuestion) Validate() error {
	if strings.TrimSpace(q.Prompt) == "" {
		return fmt.Errorf("review question: empty prompt")
	}
	switch q.Type {
	case QuestionMultipleChoice:
		if len(q.Options) < 2 {
			return fmt.Errorf("review question: multiple_choice needs at least 2 options, got %d", len(q.Options))
		}
	case QuestionTrueFalse:
		// options implied; nothing extra to check
	case QuestionFillBlank, QuestionShortAnswer:
		if strings.TrimSpace(q.Answer) == "" {
			return fmt.Errorf("review question: %s without an answer", q.Type)
		}
	case QuestionFreeWriting, QuestionSpeaking:
		// open-ended; the server grades on record, no fixed answer required
	default:
		return fmt.Errorf("review question: unknown type %q", q.Type)
	}
	return nil
}

// DueCard is one entry of the server's due batch.
type DueCard struct {
	CollectionID string         `json:"collection_id"`
	Card         CollectionCard `json:"card"`
}

// ReviewRecord is a single rating submission.
type ReviewRecord struct {
	CollectionID string    `json:"collection_id"`
	CardID       string    `json:"card_id"`
	Rating       Rating    `json:"rating"`
	Confidence   int       `json:"confidence,omitempty"`
	ElapsedMs    int64     `json:"elapsed_ms,omitempty"`
	ReviewedAt   time.Time `json:"reviewed_at"`
}

// ReviewOutcome is the server's authoritative card state after a rating.
type ReviewOutcome struct {
	CardID string   `json:"card_id"`
	SRS    SRSState `json:"srs"`
}

// ReviewStats aggregates the user's review history server-side.
type ReviewStats struct {
	DueNow        int     `json:"due_now"`
	ReviewedToday int     `json:"reviewed_today"`
	TotalReviews  int     `json:"total_reviews"`
	Accuracy      float64 `json:"accuracy"`
	StreakDays    int     `json:"streak_days"`
}
