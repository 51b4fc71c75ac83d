package entity

import (
	"errors"
	"testing"
	"time"
)

func TestWordValidate(t *testing.T) {
	w := Word{Text: "serendipity", Meanings: []Meaning{{Definition: "a happy accident"}}}
	if err := w.Validate(); err != nil {
		t.Fatal(err)
	}

	w.Text = "  "
	if err := w.Validate(); !errors.Is(err, ErrInvalidWordText) {
		t.Fatalf("err = %v, want ErrInvalidWordText", err)
	}

	w.Text = "serendipity"
	w.Meanings = nil
	if err := w.Validate(); !errors.Is(err, ErrWordNotFound) {
		t.Fatalf("err = %v, want ErrWordNotFound", err)
	}
}

func TestRatingValid(t *testing.T) {
	for r := RatingAgain; r <= RatingEasy; r++ {
		if !r.Valid() {
			t.Errorf("%v should be valid", r)
		}
	}
	if Rating(0).Valid() || Rating(5).Valid() {
		t.Error("out-of-range ratings accepted")
	}
}

func TestReviewQuestionValidate(t *testing.T) {
	cases := []struct {
		name    string
		q       ReviewQuestion
		wantErr bool
	}{
		{"multiple choice ok", ReviewQuestion{Type: QuestionMultipleChoice, Prompt: "pick one", Options: []string{"a", "b", "c"}}, false},
		{"multiple choice one option", ReviewQuestion{Type: QuestionMultipleChoice, Prompt: "pick one", Options: []string{"a"}}, true},
		{"fill blank ok", ReviewQuestion{Type: QuestionFillBlank, Prompt: "the ___ cat", Answer: "lazy"}, false},
		{"fill blank no answer", ReviewQuestion{Type: QuestionFillBlank, Prompt: "the ___ cat"}, true},
		{"free writing no answer", ReviewQuestion{Type: QuestionFreeWriting, Prompt: "use it in a sentence"}, false},
		{"empty prompt", ReviewQuestion{Type: QuestionTrueFalse, Prompt: " "}, true},
		{"unknown type", ReviewQuestion{Type: "matching", Prompt: "match"}, true},
	}
	for _, tc := range cases {
		err := tc.q.Validate()
		if (err != nil) != tc.wantErr {
			t.Errorf("%s: err = %v, wantErr %v", tc.name, err, tc.wantErr)
		}
	}
}

func TestSRSStateDue(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	later := now.Add(24 * time.Hour)
	earlier := now.Add(-time.Minute)

	if !(SRSState{Status: CardStatusNew}).Due(now) {
		t.Error("new card should be due")
	}
	if !(SRSState{Status: CardStatusReview}).Due(now) {
		t.Error("card without a next review time should be due")
	}
	if (SRSState{Status: CardStatusReview, NextReviewAt: &later}).Due(now) {
		t.Error("future card should not be due")
	}
	if !(SRSState{Status: CardStatusReview, NextReviewAt: &earlier}).Due(now) {
		t.Error("past card should be due")
	}
	if !(SRSState{Status: CardStatusReview, NextReviewAt: &now}).Due(now) {
		t.Error("card due exactly now should be due")
	}
}

func TestParseCardStatus(t *testing.T) {
	if got := ParseCardStatus(" Review "); got != CardStatusReview {
		t.Errorf("got %v", got)
	}
	if got := ParseCardStatus("archived"); got != CardStatusNew {
		t.Errorf("unknown status = %v, want new", got)
	}
}

func TestCollectionNormalizeDraft(t *testing.T) {
	c := Collection{Name: "  Travel ", Description: " trips\n", Tags: []string{" B1 ", "", "travel"}}
	if err := c.NormalizeDraft(); err != nil {
		t.Fatal(err)
	}
	if c.Name != "Travel" || c.Description != "trips" {
		t.Fatalf("normalized = %+v", c)
	}
	if len(c.Tags) != 2 || c.Tags[0] != "b1" || c.Tags[1] != "travel" {
		t.Fatalf("tags = %v", c.Tags)
	}

	c = Collection{Name: "   "}
	if err := c.NormalizeDraft(); !errors.Is(err, ErrInvalidCollectionName) {
		t.Fatalf("err = %v, want ErrInvalidCollectionName", err)
	}
}

func TestCollectionDueCount(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	later := now.Add(time.Hour)
	c := Collection{Cards: []CollectionCard{
		{SRS: SRSState{Status: CardStatusNew}},
		{SRS: SRSState{Status: CardStatusReview, NextReviewAt: &later}},
		{SRS: SRSState{Status: CardStatusRelearning}},
	}}
	if got := c.DueCount(now); got != 2 {
		t.Fatalf("due = %d, want 2", got)
	}
	if got := c.CardCount(); got != 3 {
		t.Fatalf("count = %d", got)
	}
}
