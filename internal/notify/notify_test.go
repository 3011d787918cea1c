package notify

import (
	"context"
	"testing"
)

func TestCenterKeepsNewestFirstAndBounds(t *testing.T) {
	c := NewCenter(2)
	c.Success("one")
	c.Error("two")
	c.Success("three")

	got := c.Recent(0)
	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(got))
	}
	if got[0].Message != "three" || got[1].Message != "two" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if got[1].Level != LevelError {
		t.Fatalf("expected error level, got %s", got[1].Level)
	}
	if got[0].ID == "" || got[0].ID == got[1].ID {
		t.Fatalf("expected distinct ids")
	}
	if one := c.Recent(1); len(one) != 1 || one[0].Message != "three" {
		t.Fatalf("Recent(1) = %+v", one)
	}
}

func TestHubKeepsUsersApart(t *testing.T) {
	hub := NewHub(10)
	hub.For(1).Error("db password for root rejected")
	hub.For(2).Success("Story created successfully")

	if got := hub.For(2).Recent(0); len(got) != 1 || got[0].Message != "Story created successfully" {
		t.Fatalf("user 2 sees %+v", got)
	}
	if got := hub.For(1).Recent(0); len(got) != 1 || got[0].Level != LevelError {
		t.Fatalf("user 1 sees %+v", got)
	}
	if len(hub.For(3).Recent(0)) != 0 {
		t.Fatalf("a new user starts with no notifications")
	}
}

func TestFromPrefersTheContextNotifier(t *testing.T) {
	fallback := NewCenter(5)
	own := NewCenter(5)

	From(context.Background(), fallback).Error("background")
	From(WithNotifier(context.Background(), own), fallback).Error("request")

	if got := own.Recent(0); len(got) != 1 || got[0].Message != "request" {
		t.Fatalf("context notifier got %+v", got)
	}
	if got := fallback.Recent(0); len(got) != 1 || got[0].Message != "background" {
		t.Fatalf("fallback got %+v", got)
	}
}
