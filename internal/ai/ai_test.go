package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"
)

func TestDisabledService(t *testing.T) {
	s, err := NewService(context.Background(), "", "")
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	if s.Enabled() {
		t.Fatalf("service without key must be disabled")
	}
	if _, err := s.SuggestCaption(context.Background(), CaptionRequest{Kind: "story"}); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestSuggestCaptionCleansOutput(t *testing.T) {
	var prompt string
	s := &Service{generate: func(_ context.Context, p string) (string, error) {
		prompt = p
		return "  \"Glow all day ✨ #taptosell\"\n", nil
	}}

	caption, err := s.SuggestCaption(context.Background(), CaptionRequest{Kind: "reel", StoryType: "video", ProductName: "Rose Lip Tint", Notes: "summer launch"})
	if err != nil {
		t.Fatalf("SuggestCaption: %v", err)
	}
	if caption != "Glow all day ✨ #taptosell" {
		t.Fatalf("caption = %q", caption)
	}
	for _, want := range []string{"reel (video post)", "Rose Lip Tint", "summer launch", "Tone: friendly"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt %q misses %q", prompt, want)
		}
	}
}

func TestSuggestCaptionRejectsEmptyAnswer(t *testing.T) {
	s := &Service{generate: func(context.Context, string) (string, error) { return " \"\" ", nil }}
	if _, err := s.SuggestCaption(context.Background(), CaptionRequest{Kind: "story"}); err == nil {
		t.Fatalf("expected error for an empty suggestion")
	}
}

func TestResponseText(t *testing.T) {
	res := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
		Content: &genai.Content{Parts: []genai.Part{genai.Text("Hello "), genai.Text("world")}},
	}}}
	if got := responseText(res); got != "Hello world" {
		t.Fatalf("responseText = %q", got)
	}
	if got := responseText(nil); got != "" {
		t.Fatalf("nil response gave %q", got)
	}
}
