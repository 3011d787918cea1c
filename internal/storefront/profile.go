package storefront

import (
	"context"
	"net/url"
	"sort"
	"time"

	"github.com/01moynul/taptosell-console/internal/models"
	"github.com/01moynul/taptosell-console/internal/normalize"
	"github.com/gosimple/slug"
)

// ModelProfile is a public model page.
type ModelProfile struct {
	ID          string         `json:"id"`
	DisplayName string         `json:"displayName"`
	Handle      string         `json:"handle"`
	Bio         string         `json:"bio"`
	AvatarURL   string         `json:"avatarUrl"`
	Followers   int            `json:"followers"`
	Stories     []models.Story `json:"stories"`
}

// ProfileView builds a profile page. Only stories still live at now are kept,
// newest first.
func ProfileView(raw map[string]any, stories []map[string]any, now time.Time) ModelProfile {
	id := normalize.ID(raw["id"])
	name := normalize.Default(normalize.ToString(normalize.First(raw, "display_name", "displayName", "name")), "Model "+id)

	handle := slug.Make(name)
	if handle == "" {
		handle = "model-" + id
	}

	p := ModelProfile{
		ID:          id,
		DisplayName: name,
		Handle:      "@" + handle,
		Bio:         normalize.ToString(raw["bio"]),
		AvatarURL:   normalize.ToString(normalize.First(raw, "avatar_url", "avatarUrl", "profile_image")),
		Followers:   normalize.ToInt(normalize.First(raw, "followers", "followers_count", "followersCount")),
		Stories:     []models.Story{},
	}

	if stories == nil {
		if embedded, ok := raw["stories"].([]any); ok {
			for _, s := range embedded {
				if m := normalize.Map(s); m != nil {
					stories = append(stories, m)
				}
			}
		}
	}
	for _, s := range stories {
		story := models.NormalizeStory(s)
		if story.Active(now) {
			p.Stories = append(p.Stories, story)
		}
	}
	sort.SliceStable(p.Stories, func(i, j int) bool {
		return p.Stories[i].CreatedAt.After(p.Stories[j].CreatedAt)
	})
	return p
}

// ProfileSource is what LoadProfile reads through.
type ProfileSource interface {
	Get(ctx context.Context, resource, id string) (map[string]any, error)
	ListQuery(ctx context.Context, resource string, query url.Values) ([]map[string]any, error)
}

// LoadProfile fetches a model and, unless the record embeds them, its stories.
func LoadProfile(ctx context.Context, src ProfileSource, id string, now time.Time) (ModelProfile, error) {
	raw, err := src.Get(ctx, "models", id)
	if err != nil {
		return ModelProfile{}, err
	}
	var stories []map[string]any
	if _, embedded := raw["stories"]; !embedded {
		stories, err = src.ListQuery(ctx, "stories", url.Values{"author_id": {id}})
		if err != nil {
			return ModelProfile{}, err
		}
	}
	return ProfileView(raw, stories, now), nil
}
