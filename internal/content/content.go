package content

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// DefaultLanguage is the language new content sets are created with.
const DefaultLanguage = "zh-TW"

// Item is a single term/definition pair, e.g. a question and its answer.
type Item struct {
	ID         string `json:"id"`
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// Content is a content set that can be played as any compatible game.
type Content struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Items       []Item    `json:"items"`
	Tags        []string  `json:"tags"`
	Language    string    `json:"language"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// UserID references the owner. It is opaque to this package.
	UserID string `json:"userId"`
}

// New creates an empty content set with a fresh ID.
func New(title, userID string) *Content {
	now := time.Now().UTC()
	return &Content{
		ID:        uuid.NewString(),
		Title:     title,
		Items:     []Item{},
		Tags:      []string{},
		Language:  DefaultLanguage,
		CreatedAt: now,
		UpdatedAt: now,
		UserID:    userID,
	}
}

// NewItem creates an item with a fresh ID.
func NewItem(term, definition string) Item {
	return Item{
		ID:         uuid.NewString(),
		Term:       term,
		Definition: definition,
	}
}

// Clone returns a deep copy of c.
func (c *Content) Clone() *Content {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Items = slices.Clone(c.Items)
	cp.Tags = slices.Clone(c.Tags)
	return &cp
}

// WithItems returns a copy of c with items appended. c is left untouched.
func (c *Content) WithItems(items ...Item) *Content {
	cp := c.Clone()
	if cp == nil {
		cp = &Content{}
	}
	cp.Items = append(cp.Items, items...)
	cp.UpdatedAt = time.Now().UTC()
	return cp
}

// ItemCount returns the number of items; nil content has none.
func (c *Content) ItemCount() int {
	if c == nil {
		return 0
	}
	return len(c.Items)
}
