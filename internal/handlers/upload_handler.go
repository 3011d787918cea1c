package handlers

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/01moynul/taptosell-console/internal/forms"
)

// maxMediaSize caps story uploads (videos included).
const maxMediaSize = 50 << 20

var mediaExtensions = map[string]map[string]bool{
	"image": {".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true},
	"video": {".mp4": true, ".mov": true, ".webm": true},
}

// uploadMedia checks a story file against its type and forwards it to the
// platform's upload endpoint, returning the public URL. Check failures are
// field errors on "media".
func (h *Handlers) uploadMedia(ctx context.Context, storyType string, file *multipart.FileHeader) (string, error) {
	// 1. Check size and extension.
	if file.Size > maxMediaSize {
		return "", forms.ValidationErrors{"media": fmt.Sprintf("media must be at most %d MB", maxMediaSize>>20)}
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowed, ok := mediaExtensions[storyType]
	if !ok {
		allowed = mediaExtensions["image"]
	}
	if !allowed[ext] {
		return "", forms.ValidationErrors{"media": fmt.Sprintf("media type %q is not allowed for %s stories", ext, storyType)}
	}

	// 2. Open and forward it.
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	defer src.Close()

	return h.Client.Upload(ctx, file.Filename, src)
}
