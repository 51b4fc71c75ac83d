package entity

import (
	"strings"
	"time"
)

// Collection groups saved cards under a user-chosen name. Owned and persisted
// server-side; the client holds the last-fetched copy only.
type Collection struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Tags        []string         `json:"tags,omitempty"`
	Color       string           `json:"color,omitempty"`
	Default     bool             `json:"is_default"`
	Cards       []CollectionCard `json:"cards,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// CardCount returns the number of cards, tolerating a nil slice from sparse
// list payloads.
func (c *Collection) CardCount() int {
	return len(c.Cards)
}

// DueCount counts cards due at the given time.
func (c *Collection) DueCount(now time.Time) int {
	n := 0
	for _, card := range c.Cards {
		if card.SRS.Due(now) {
			n++
		}
	}
	return n
}

// HasTag reports whether the collection carries the tag (case-insensitive).
func (c *Collection) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// NormalizeDraft trims free-form fields before a create or update call.
func (c *Collection) NormalizeDraft() error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrInvalidCollectionName
	}
	c.Description = strings.TrimSpace(c.Description)
	tags := make([]string, 0, len(c.Tags))
	for _, t := range c.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, strings.ToLower(t))
		}
	}
	c.Tags = tags
	return nil
}
