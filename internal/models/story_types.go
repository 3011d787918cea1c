package models

import (
	"strings"
	"time"

	"github.com/01moynul/taptosell-console/internal/normalize"
)

// Story types.
const (
	StoryImage   = "image"
	StoryVideo   = "video"
	StoryText    = "text"
	StoryProduct = "product"
)

// StoryTypes lists the closed set of story types.
var StoryTypes = []string{StoryImage, StoryVideo, StoryText, StoryProduct}

// StoryLifetime is how long a story stays visible when the platform sends no expiry.
const StoryLifetime = 24 * time.Hour

// Story is a 24h piece of content (story or reel) posted by a model,
// influencer or merchant. Exactly one of MediaURL / TextContent is set:
// text stories carry text, every other type carries media.
type Story struct {
	ID          string    `json:"id"`
	AuthorID    string    `json:"authorId"`
	AuthorName  string    `json:"authorName,omitempty"`
	Type        string    `json:"type"`
	MediaURL    string    `json:"mediaUrl,omitempty"`
	TextContent string    `json:"textContent,omitempty"`
	Caption     string    `json:"caption,omitempty"`
	ProductID   string    `json:"productId,omitempty"`
	Views       int       `json:"views"`
	CreatedAt   time.Time `json:"createdAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// NormalizeStory builds a story from an upstream record.
func NormalizeStory(raw map[string]any) Story {
	storyType := strings.ToLower(normalize.ToString(raw["type"]))
	if !oneOf(storyType, StoryTypes) {
		storyType = StoryImage
	}

	s := Story{
		ID:          normalize.ID(raw["id"]),
		AuthorID:    normalize.ID(normalize.First(raw, "user_id", "userId", "author_id")),
		AuthorName:  normalize.ToString(normalize.First(raw, "author_name", "authorName", "user_name")),
		Type:        storyType,
		MediaURL:    normalize.ToString(normalize.First(raw, "media_url", "mediaUrl")),
		TextContent: normalize.ToString(normalize.First(raw, "text_content", "textContent")),
		Caption:     normalize.ToString(raw["caption"]),
		ProductID:   normalize.ID(normalize.First(raw, "product_id", "productId")),
		Views:       normalize.ToInt(raw["views"]),
		CreatedAt:   normalize.ToTime(normalize.First(raw, "created_at", "createdAt")),
		ExpiresAt:   normalize.ToTime(normalize.First(raw, "expires_at", "expiresAt")),
	}

	if s.Type == StoryText {
		s.MediaURL = ""
	} else {
		s.TextContent = ""
	}
	if s.Views < 0 {
		s.Views = 0
	}
	if s.ExpiresAt.IsZero() && !s.CreatedAt.IsZero() {
		s.ExpiresAt = s.CreatedAt.Add(StoryLifetime)
	}
	return s
}

// Active reports whether s is still visible at now.
func (s Story) Active(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.Before(s.ExpiresAt)
}

func (s Story) SearchFields() []string {
	return []string{s.Caption, s.TextContent, s.AuthorName}
}

func (s Story) FilterValue(key string) string {
	if key == "type" {
		return s.Type
	}
	return ""
}
