package handlers

import (
	"context"
	"mime/multipart"
	"net/http"

	"github.com/01moynul/taptosell-console/internal/apiclient"
	"github.com/01moynul/taptosell-console/internal/forms"
	"github.com/01moynul/taptosell-console/internal/models"
	"github.com/01moynul/taptosell-console/internal/resource"
	"github.com/01moynul/taptosell-console/internal/stats"
	"github.com/gin-gonic/gin"
)

//
// --- Stories & Reels ---
//

// GetStories is the handler for GET /v1/admin/stories
// Filters: search, type.
func (h *Handlers) GetStories(c *gin.Context) {
	listView(c, h, h.Stories, "type")
}

// CreateStory is the handler for POST /v1/stories
// It accepts JSON (text, product or already-hosted media) or multipart with a
// "media" file. The file is uploaded only once the form is valid, then the
// story is created with a single POST.
func (h *Handlers) CreateStory(c *gin.Context) {
	// 1. --- Read the form ---
	var form forms.StoryForm
	var file *multipart.FileHeader
	if c.ContentType() == "multipart/form-data" {
		form = forms.StoryForm{
			Type:        c.PostForm("type"),
			MediaURL:    c.PostForm("media_url"),
			TextContent: c.PostForm("text_content"),
			ProductID:   c.PostForm("product_id"),
			Caption:     c.PostForm("caption"),
		}
		if f, err := c.FormFile("media"); err == nil {
			file = f
			form.HasUpload = true
		}
	} else if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	authorID := c.GetInt64("userID")

	// 2. --- Validate, upload, create ---
	submitDialog(c, h, form, func(ctx context.Context, f forms.StoryForm) error {
		if file != nil {
			url, err := h.uploadMedia(ctx, f.Type, file)
			if err != nil {
				h.noticesFor(c).Error(apiclient.Message(err, err.Error()))
				return err
			}
			f = f.WithMedia(url)
		}
		payload := f.Payload()
		payload["user_id"] = authorID
		return h.Stories.Create(ctx, payload)
	}, http.StatusCreated, func() any { return h.storiesFor(c) })
}

// storiesFor answers admins with every story and everyone else with their own.
func (h *Handlers) storiesFor(c *gin.Context) any {
	if c.GetInt("roleID") == models.RoleAdmin {
		return h.Stories.View(resource.Query{})
	}
	author := itoa(c.GetInt64("userID"))
	mine := []models.Story{}
	for _, story := range h.Stories.Data() {
		if story.AuthorID == author {
			mine = append(mine, story)
		}
	}
	return gin.H{"items": mine, "total": len(mine), "stats": stats.Stories(mine, h.now())}
}

// DeleteStory is the handler for DELETE /v1/stories/:id and DELETE /v1/admin/stories/:id
// Only admins may delete a story they did not write.
func (h *Handlers) DeleteStory(c *gin.Context) {
	ctx := h.requestContext(c)
	id := c.Param("id")

	// 1. --- Check ownership ---
	if c.GetInt("roleID") != models.RoleAdmin {
		raw, err := h.Client.Get(ctx, "stories", id)
		if err != nil {
			respondUpstreamError(c, err, "Failed to delete story")
			return
		}
		if models.NormalizeStory(raw).AuthorID != itoa(c.GetInt64("userID")) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own stories"})
			return
		}
	}

	// 2. --- Delete ---
	if err := h.Stories.Delete(ctx, id); err != nil {
		respondUpstreamError(c, err, "Failed to delete story")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Story deleted successfully"})
}
