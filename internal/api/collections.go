package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/vibe-english-platform/vocabcli/internal/entity"
)

// CollectionDraft carries the writable collection fields for create/update.
type CollectionDraft struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Color       string   `json:"color,omitempty"`
	Default     bool     `json:"is_default,omitempty"`
}

// ListCollections fetches the user's collections with their cards.
func (c *Client) ListCollections(ctx context.Context) ([]entity.Collection, error) {
	var out []entity.Collection
	if err := c.do(ctx, http.MethodGet, "/users/collections", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCollection creates a collection and returns the server copy.
func (c *Client) CreateCollection(ctx context.Context, draft CollectionDraft) (*entity.Collection, error) {
	var out entity.Collection
	if err := c.do(ctx, http.MethodPost, "/users/collections/create", draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCollection replaces the writable fields of a collection.
func (c *Client) UpdateCollection(ctx context.Context, id string, draft CollectionDraft) (*entity.Collection, error) {
	var out entity.Collection
	err := c.do(ctx, http.MethodPut, "/users/collections/"+url.PathEscape(id), draft, &out)
	if err != nil {
		return nil, mapCollectionErr(err)
	}
	return &out, nil
}

// DeleteCollection removes a collection and all its cards.
func (c *Client) DeleteCollection(ctx context.Context, id string) error {
	err := c.do(ctx, http.MethodDelete, "/users/collections/"+url.PathEscape(id), nil, nil)
	return mapCollectionErr(err)
}

// CloneCollection duplicates a collection, cards included, and returns the
// new copy.
func (c *Client) CloneCollection(ctx context.Context, id string) (*entity.Collection, error) {
	var out entity.Collection
	err := c.do(ctx, http.MethodPost, "/users/collections/"+url.PathEscape(id)+"/clone", nil, &out)
	if err != nil {
		return nil, mapCollectionErr(err)
	}
	return &out, nil
}

// SaveCard adds a generated learning card to a collection.
func (c *Client) SaveCard(ctx context.Context, collectionID string, card entity.LearningCard) (*entity.CollectionCard, error) {
	if err := card.Validate(); err != nil {
		return nil, err
	}
	var out entity.CollectionCard
	path := "/users/collections/" + url.PathEscape(collectionID) + "/cards"
	if err := c.do(ctx, http.MethodPost, path, card, &out); err != nil {
		return nil, mapCollectionErr(err)
	}
	return &out, nil
}

// UpdateCard edits a saved card's content fields. Scheduling state is
// server-owned and ignored in the request.
func (c *Client) UpdateCard(ctx context.Context, collectionID, cardID string, card entity.LearningCard) (*entity.CollectionCard, error) {
	if err := card.Validate(); err != nil {
		return nil, err
	}
	var out entity.CollectionCard
	path := "/users/collections/" + url.PathEscape(collectionID) + "/cards/" + url.PathEscape(cardID)
	if err := c.do(ctx, http.MethodPut, path, card, &out); err != nil {
		return nil, mapCardErr(err)
	}
	return &out, nil
}

// DeleteCard removes a card from a collection.
func (c *Client) DeleteCard(ctx context.Context, collectionID, cardID string) error {
	path := "/users/collections/" + url.PathEscape(collectionID) + "/cards/" + url.PathEscape(cardID)
	return mapCardErr(c.do(ctx, http.MethodDelete, path, nil, nil))
}

func mapCollectionErr(err error) error {
	var se *StatusError
	if errors.As(err, &se) && se.NotFound() {
		return fmt.Errorf("%w: %v", entity.ErrCollectionNotFound, err)
	}
	return err
}

func mapCardErr(err error) error {
	var se *StatusError
	if errors.As(err, &se) && se.NotFound() {
		return fmt.Errorf("%w: %v", entity.ErrCardNotFound, err)
	}
	return err
}
