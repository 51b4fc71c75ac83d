package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/vibe-english-platform/vocabcli/internal/entity"
)

// DueCards fetches the current due batch. An empty slice means nothing is
// due and the review session completes immediately.
func (c *Client) DueCards(ctx context.Context) ([]entity.DueCard, error) {
	var out []entity.DueCard
	if err := c.do(ctx, http.MethodGet, "/users/review/due", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ReviewQuestion fetches the server-chosen exercise for one card.
func (c *Client) ReviewQuestion(ctx context.Context, collectionID, cardID string) (*entity.ReviewQuestion, error) {
	var out entity.ReviewQuestion
	path := "/users/review/question/" + url.PathEscape(collectionID) + "/" + url.PathEscape(cardID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, mapCardErr(err)
	}
	return &out, nil
}

// RecordReview submits one rating and returns the server's updated card
// state. The client never computes scheduling locally.
func (c *Client) RecordReview(ctx context.Context, rec entity.ReviewRecord) (*entity.ReviewOutcome, error) {
	if !rec.Rating.Valid() {
		return nil, entity.ErrInvalidRating
	}
	var out entity.ReviewOutcome
	if err := c.do(ctx, http.MethodPost, "/users/review/record", rec, &out); err != nil {
		return nil, mapCardErr(err)
	}
	return &out, nil
}

// ReviewStats fetches the user's aggregate review statistics.
func (c *Client) ReviewStats(ctx context.Context) (*entity.ReviewStats, error) {
	var out entity.ReviewStats
	if err := c.do(ctx, http.MethodGet, "/users/review/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
