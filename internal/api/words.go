package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/vibe-english-platform/vocabcli/internal/entity"
)

// LookupMeanings fetches the plain dictionary senses for a word. 404 maps to
// entity.ErrWordNotFound so the learn flow can render its not-found state.
func (c *Client) LookupMeanings(ctx context.Context, word string) (*entity.Word, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, entity.ErrInvalidWordText
	}
	var out entity.Word
	err := c.do(ctx, http.MethodGet, "/words/meanings/"+url.PathEscape(word), nil, &out)
	if err != nil {
		return nil, mapLookupErr(err)
	}
	return &out, nil
}

// LookupEnhanced fetches the AI-augmented analysis for a word. A cached
// result fresh within the cache TTL is returned without a network call; on
// quota exhaustion any cached copy, fresh or stale, is served as a degraded
// answer before the error propagates.
func (c *Client) LookupEnhanced(ctx context.Context, word string) (*entity.Word, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, entity.ErrInvalidWordText
	}
	if cached, ok := c.words.Get(word); ok {
		return cached, nil
	}

	var out entity.Word
	err := c.do(ctx, http.MethodGet, "/words/enhanced/"+url.PathEscape(word), nil, &out)
	if err != nil {
		if errors.Is(err, entity.ErrQuotaExceeded) {
			if cached, ok := c.words.GetAny(word); ok {
				c.logger.WithField("word", word).Info("quota exceeded, serving cached lookup")
				return cached, nil
			}
		}
		return nil, mapLookupErr(err)
	}
	c.words.Put(word, &out)
	return &out, nil
}

// GenerateCardRequest asks the backend to build a learning card for a chosen
// meaning.
type GenerateCardRequest struct {
	Word    string         `json:"word"`
	Meaning entity.Meaning `json:"meaning"`
}

// GenerateCard builds an illustrated learning card server-side.
func (c *Client) GenerateCard(ctx context.Context, req GenerateCardRequest) (*entity.LearningCard, error) {
	if strings.TrimSpace(req.Word) == "" {
		return nil, entity.ErrInvalidWordText
	}
	var out entity.LearningCard
	if err := c.do(ctx, http.MethodPost, "/words/generate-learning-card", req, &out); err != nil {
		return nil, fmt.Errorf("generate card: %w", err)
	}
	return &out, nil
}

func mapLookupErr(err error) error {
	var se *StatusError
	if errors.As(err, &se) && se.NotFound() {
		return fmt.Errorf("%w: %v", entity.ErrWordNotFound, err)
	}
	return err
}
