package forms

import (
	"strings"

	"github.com/01moynul/taptosell-console/internal/models"
)

// StoryForm backs the content creation dialog (image, video, text and product tabs).
type StoryForm struct {
	Type        string `json:"type" validate:"required,oneof=image video text product"`
	MediaURL    string `json:"media_url" validate:"omitempty,url"`
	TextContent string `json:"text_content" validate:"max=500"`
	ProductID   string `json:"product_id"`
	Caption     string `json:"caption" validate:"max=300"`

	// HasUpload is set when a media file accompanies the form.
	HasUpload bool `json:"-"`
}

func (f StoryForm) Validate() error {
	errs := check(f)
	switch f.Type {
	case models.StoryImage, models.StoryVideo:
		if !f.HasUpload && strings.TrimSpace(f.MediaURL) == "" {
			errs["media"] = "media is required"
		}
	case models.StoryText:
		if strings.TrimSpace(f.TextContent) == "" {
			errs["text_content"] = "text_content is required"
		}
	case models.StoryProduct:
		if strings.TrimSpace(f.ProductID) == "" {
			errs["product_id"] = "product_id is required"
		}
	}
	return errs.orNil()
}

// WithMedia returns a copy that points at an uploaded file.
func (f StoryForm) WithMedia(url string) StoryForm {
	f.MediaURL = url
	f.HasUpload = false
	return f
}

// Payload only carries the content field that matches the story type.
func (f StoryForm) Payload() map[string]any {
	payload := map[string]any{
		"type":    f.Type,
		"caption": strings.TrimSpace(f.Caption),
	}
	switch f.Type {
	case models.StoryText:
		payload["text_content"] = strings.TrimSpace(f.TextContent)
	case models.StoryProduct:
		payload["product_id"] = strings.TrimSpace(f.ProductID)
		if f.MediaURL != "" {
			payload["media_url"] = f.MediaURL
		}
	default:
		payload["media_url"] = f.MediaURL
	}
	return payload
}
