package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/vibe-english-platform/vocabcli/internal/api"
	"github.com/vibe-english-platform/vocabcli/internal/entity"
	"github.com/vibe-english-platform/vocabcli/pkg/filterexpr"
)

// collectionGateway is the slice of the API client the browser uses.
type collectionGateway interface {
	ListCollections(ctx context.Context) ([]entity.Collection, error)
	CreateCollection(ctx context.Context, draft api.CollectionDraft) (*entity.Collection, error)
	UpdateCollection(ctx context.Context, id string, draft api.CollectionDraft) (*entity.Collection, error)
	DeleteCollection(ctx context.Context, id string) error
	CloneCollection(ctx context.Context, id string) (*entity.Collection, error)
	UpdateCard(ctx context.Context, collectionID, cardID string, card entity.LearningCard) (*entity.CollectionCard, error)
	DeleteCard(ctx context.Context, collectionID, cardID string) error
}

// collectionSchema whitelists the fields a --filter expression may use.
var collectionSchema = filterexpr.Schema{
	"name":        filterexpr.KindString,
	"description": filterexpr.KindString,
	"color":       filterexpr.KindString,
	"tags":        filterexpr.KindStringList,
	"default":     filterexpr.KindBool,
	"cardCount":   filterexpr.KindInt,
	"dueCount":    filterexpr.KindInt,
	"createdAt":   filterexpr.KindTimestamp,
}

// CollectionBrowser wraps the collection endpoints with client-side
// filtering. The server owns all collection state; the browser never derives
// anything beyond counts for display and filter input.
type CollectionBrowser struct {
	gw    collectionGateway
	clock func() time.Time
}

// NewCollectionBrowser wires the browser.
func NewCollectionBrowser(gw collectionGateway) *CollectionBrowser {
	return &CollectionBrowser{gw: gw, clock: time.Now}
}

// List fetches collections, optionally filtered by a CEL expression such as
// `cardCount >= 10 && "travel" in tags`.
func (b *CollectionBrowser) List(ctx context.Context, filter string) ([]entity.Collection, error) {
	collections, err := b.gw.ListCollections(ctx)
	if err != nil {
		return nil, err
	}
	if filter == "" {
		return collections, nil
	}

	pred, err := filterexpr.Compile(filter, collectionSchema)
	if err != nil {
		return nil, err
	}

	now := b.clock()
	var evalErr error
	filtered := lo.Filter(collections, func(c entity.Collection, _ int) bool {
		if evalErr != nil {
			return false
		}
		ok, err := pred(collectionVars(&c, now))
		if err != nil {
			evalErr = err
			return false
		}
		return ok
	})
	if evalErr != nil {
		return nil, evalErr
	}
	return filtered, nil
}

// Create normalizes and creates a collection.
func (b *CollectionBrowser) Create(ctx context.Context, draft api.CollectionDraft) (*entity.Collection, error) {
	if err := normalizeDraft(&draft); err != nil {
		return nil, err
	}
	return b.gw.CreateCollection(ctx, draft)
}

// Update normalizes and applies a collection edit.
func (b *CollectionBrowser) Update(ctx context.Context, id string, draft api.CollectionDraft) (*entity.Collection, error) {
	if err := normalizeDraft(&draft); err != nil {
		return nil, err
	}
	return b.gw.UpdateCollection(ctx, id, draft)
}

// Delete removes a collection.
func (b *CollectionBrowser) Delete(ctx context.Context, id string) error {
	return b.gw.DeleteCollection(ctx, id)
}

// Clone duplicates a collection server-side.
func (b *CollectionBrowser) Clone(ctx context.Context, id string) (*entity.Collection, error) {
	return b.gw.CloneCollection(ctx, id)
}

// EditCard updates a saved card's content.
func (b *CollectionBrowser) EditCard(ctx context.Context, collectionID, cardID string, card entity.LearningCard) (*entity.CollectionCard, error) {
	return b.gw.UpdateCard(ctx, collectionID, cardID, card)
}

// RemoveCard deletes a saved card.
func (b *CollectionBrowser) RemoveCard(ctx context.Context, collectionID, cardID string) error {
	return b.gw.DeleteCard(ctx, collectionID, cardID)
}

func normalizeDraft(draft *api.CollectionDraft) error {
	c := entity.Collection{
		Name:        draft.Name,
		Description: draft.Description,
		Tags:        draft.Tags,
	}
	if err := c.NormalizeDraft(); err != nil {
		return fmt.Errorf("collection draft: %w", err)
	}
	draft.Name = c.Name
	draft.Description = c.Description
	draft.Tags = c.Tags
	return nil
}

func collectionVars(c *entity.Collection, now time.Time) map[string]any {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	return map[string]any{
		"name":        c.Name,
		"description": c.Description,
		"color":       c.Color,
		"tags":        tags,
		"default":     c.Default,
		"cardCount":   c.CardCount(),
		"dueCount":    c.DueCount(now),
		"createdAt":   c.CreatedAt,
	}
}
