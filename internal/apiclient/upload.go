package apiclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrNoUploadURL is returned when /upload answers 2xx without a URL.
var ErrNoUploadURL = errors.New("apiclient: upload response carried no url")

// Upload posts a multipart form with a single "file" field to /upload and
// returns the public URL reported by the platform ({"imageUrl": "..."}).
// The file is renamed to a uuid keeping its extension.
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	// 1. --- Build the multipart body ---
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	safeName := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(filename))
	part, err := writer.CreateFormFile("file", safeName)
	if err != nil {
		return "", fmt.Errorf("apiclient: create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("apiclient: copy upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("apiclient: close multipart: %w", err)
	}

	// 2. --- Send it ---
	req, err := c.newRequest(ctx, http.MethodPost, "upload", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var body map[string]any
	if err := c.send(req, &body); err != nil {
		return "", err
	}

	// 3. --- Read the URL ---
	for _, key := range []string{"imageUrl", "url", "image_url"} {
		if u, ok := body[key].(string); ok && u != "" {
			return u, nil
		}
	}
	return "", ErrNoUploadURL
}
