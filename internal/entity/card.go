package entity

import (
	"strings"
	"time"
)

// CardStatus mirrors the server's spaced-repetition card lifecycle.
type CardStatus string

const (
	CardStatusNew        CardStatus = "new"
	CardStatusLearning   CardStatus = "learning"
	CardStatusReview     CardStatus = "review"
	CardStatusRelearning CardStatus = "relearning"
)

// LearningStage describes the depth of recall the server is currently
// training for a card.
type LearningStage string

const (
	StageRecognition LearningStage = "recognition"
	StageRecall      LearningStage = "recall"
	StageProduction  LearningStage = "production"
)

// ParseCardStatus falls back to "new" for unknown values so older server
// payloads still render.
func ParseCardStatus(s string) CardStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "learning":
		return CardStatusLearning
	case "review":
		return CardStatusReview
	case "relearning":
		return CardStatusRelearning
	default:
		return CardStatusNew
	}
}

// LearningCard is a generated study card: a word, the meaning the user chose,
// an example sentence, and an illustration. Immutable once generated except
// through an explicit edit after saving.
type LearningCard struct {
	ID        string    `json:"id,omitempty"`
	Word      string    `json:"word"`
	Meaning   Meaning   `json:"meaning"`
	Example   string    `json:"example,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Validate rejects generated cards missing the fields the card display needs.
func (c *LearningCard) Validate() error {
	if strings.TrimSpace(c.Word) == "" {
		return ErrInvalidWordText
	}
	if strings.TrimSpace(c.Meaning.Definition) == "" {
		return ErrInvalidWordText
	}
	return nil
}

// SRSState is the server-authoritative scheduling bookkeeping attached to a
// saved card. The client never computes or mutates any of these fields; every
// rating is a round-trip and the authoritative state is refetched afterwards.
type SRSState struct {
	ReviewCount   int           `json:"review_count"`
	EaseFactor    float64       `json:"ease_factor"`
	IntervalDays  int           `json:"interval_days"`
	NextReviewAt  *time.Time    `json:"next_review_at,omitempty"`
	Lapses        int           `json:"lapses"`
	Status        CardStatus    `json:"status"`
	Stage         LearningStage `json:"stage"`
	Confidence    int           `json:"confidence"`
	CorrectStreak int           `json:"correct_streak"`
}

// Due reports whether the card needs review at the given time. New cards are
// always due.
func (s SRSState) Due(now time.Time) bool {
	if s.Status == CardStatusNew || s.NextReviewAt == nil {
		return true
	}
	return !s.NextReviewAt.After(now)
}

// CollectionCard is a learning card saved into a collection, plus its
// scheduling state.
type CollectionCard struct {
	LearningCard
	SRS     SRSState  `json:"srs"`
	AddedAt time.Time `json:"added_at"`
}
