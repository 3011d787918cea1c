// Package ai suggests captions for stories, reels and product listings with Gemini.
package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ErrDisabled is returned when no Gemini API key is configured.
var ErrDisabled = errors.New("ai: caption suggestions are not configured")

// CaptionRequest describes what needs a caption.
type CaptionRequest struct {
	// Kind is "story", "reel" or "product".
	Kind        string `json:"kind" binding:"required,oneof=story reel product"`
	StoryType   string `json:"story_type"`
	ProductName string `json:"product_name" binding:"max=200"`
	Notes       string `json:"notes" binding:"max=500"`
	Tone        string `json:"tone" binding:"omitempty,oneof=friendly playful luxury informative"`
}

type generateFunc func(ctx context.Context, prompt string) (string, error)

// Service holds the Gemini client. The zero value is a disabled service.
type Service struct {
	client   *genai.Client
	generate generateFunc
}

// NewService initializes the Gemini client. An empty apiKey yields a disabled service.
func NewService(ctx context.Context, apiKey, modelName string) (*Service, error) {
	if apiKey == "" {
		return &Service{}, nil
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	// 1. Configure the model once; it is safe to share between requests.
	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.8)
	model.SetMaxOutputTokens(120)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(`
			You are the TapToSell content assistant.
			Write one short social caption (max 200 characters, at most 2 hashtags).
			Answer with the caption only. No quotes, no explanations.
		`)},
	}

	return &Service{
		client: client,
		generate: func(ctx context.Context, prompt string) (string, error) {
			res, err := model.GenerateContent(ctx, genai.Text(prompt))
			if err != nil {
				return "", fmt.Errorf("error sending message: %w", err)
			}
			return responseText(res), nil
		},
	}, nil
}

// Enabled reports whether suggestions can be generated.
func (s *Service) Enabled() bool {
	return s != nil && s.generate != nil
}

// SuggestCaption returns a caption for req.
func (s *Service) SuggestCaption(ctx context.Context, req CaptionRequest) (string, error) {
	if !s.Enabled() {
		return "", ErrDisabled
	}
	caption, err := s.generate(ctx, buildPrompt(req))
	if err != nil {
		log.Printf("ai: caption for %s failed: %v", req.Kind, err)
		return "", err
	}
	caption = cleanCaption(caption)
	if caption == "" {
		return "", errors.New("ai: empty suggestion")
	}
	return caption, nil
}

// Close releases the Gemini client.
func (s *Service) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

func buildPrompt(req CaptionRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a caption for a %s", req.Kind)
	if req.StoryType != "" && req.Kind != "product" {
		fmt.Fprintf(&b, " (%s post)", req.StoryType)
	}
	b.WriteString(".")
	if req.ProductName != "" {
		fmt.Fprintf(&b, " Featured product: %s.", req.ProductName)
	}
	if req.Notes != "" {
		fmt.Fprintf(&b, " Creator notes: %s.", strings.TrimSpace(req.Notes))
	}
	tone := req.Tone
	if tone == "" {
		tone = "friendly"
	}
	fmt.Fprintf(&b, " Tone: %s.", tone)
	return b.String()
}

// responseText joins the text parts of the first candidate.
func responseText(res *genai.GenerateContentResponse) string {
	if res == nil || len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range res.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String()
}

// cleanCaption trims whitespace and wrapping quotes, and caps the length at 300 runes.
func cleanCaption(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"“”'`)
	s = strings.TrimSpace(s)
	if r := []rune(s); len(r) > 300 {
		s = string(r[:300])
	}
	return s
}
