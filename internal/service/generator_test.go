package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jpalmer/promoboost/internal/domain"
	"github.com/jpalmer/promoboost/internal/llm"
	"github.com/jpalmer/promoboost/internal/pipeline"
)

type stubCompleter struct {
	enabled    bool
	completeFn func(prompt string) (string, error)
	calls      int
}

func (s *stubCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	s.calls++
	return s.completeFn(prompt)
}

func (s *stubCompleter) Enabled(ctx context.Context) bool {
	return s.enabled
}

type stubPostStore struct {
	hashtags domain.StringArray
	err      error
}

func (s *stubPostStore) UpdateHashtags(ctx context.Context, id uint, hashtags domain.StringArray) error {
	s.hashtags = hashtags
	return s.err
}

type stubContentStore struct {
	saved []*domain.GeneratedContent
	err   error
}

func (s *stubContentStore) Upsert(ctx context.Context, content *domain.GeneratedContent) error {
	s.saved = append(s.saved, content)
	return s.err
}

func newTestGenerator(completer *stubCompleter) (*Generator, *stubPostStore, *stubContentStore) {
	posts := &stubPostStore{}
	contents := &stubContentStore{}
	return NewGenerator(completer, posts, contents, nil), posts, contents
}

func testPost(content string) *domain.Post {
	return &domain.Post{ID: 1, Title: "Test", Content: content}
}

func TestGenerateOne_EmptyContent(t *testing.T) {
	completer := &stubCompleter{enabled: true}
	gen, _, _ := newTestGenerator(completer)

	_, err := gen.GenerateOne(context.Background(), testPost("   "), socialTestProfile("facebook"))

	if !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
	if completer.calls != 0 {
		t.Errorf("model should not be called for empty content")
	}
}

func TestGenerateOne_InvalidPlatform(t *testing.T) {
	completer := &stubCompleter{enabled: true}
	gen, _, _ := newTestGenerator(completer)

	_, err := gen.GenerateOne(context.Background(), testPost("content"), socialTestProfile("bad platform!"))

	if !errors.Is(err, ErrInvalidPlatform) {
		t.Fatalf("expected ErrInvalidPlatform, got %v", err)
	}
}

func TestGenerateOne_DisabledProviderFailsFast(t *testing.T) {
	completer := &stubCompleter{
		enabled: false,
		completeFn: func(string) (string, error) {
			return "should not happen", nil
		},
	}
	gen, _, _ := newTestGenerator(completer)

	_, err := gen.GenerateOne(context.Background(), testPost("content"), socialTestProfile("facebook"))

	if !errors.Is(err, llm.ErrProviderDisabled) {
		t.Fatalf("expected ErrProviderDisabled, got %v", err)
	}
	if completer.calls != 0 {
		t.Errorf("disabled provider must fail before any model call, got %d calls", completer.calls)
	}
}

func TestGenerateOne_IntroPhrasesStripped(t *testing.T) {
	completer := &stubCompleter{
		enabled: true,
		completeFn: func(string) (string, error) {
			return "Here is your facebook post: I found something great this week. Read my full post!", nil
		},
	}
	gen, _, _ := newTestGenerator(completer)

	got, err := gen.GenerateOne(context.Background(), testPost("blog content"), socialTestProfile("facebook"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(got, "Here is your") {
		t.Errorf("intro phrase survived post-processing: %q", got)
	}
	if !strings.Contains(got, "found something great") {
		t.Errorf("real content lost: %q", got)
	}
}

func TestGenerateOne_LengthCapHeld(t *testing.T) {
	completer := &stubCompleter{
		enabled: true,
		completeFn: func(string) (string, error) {
			return strings.Repeat("plenty of words flowing onward ", 30), nil
		},
	}
	gen, _, _ := newTestGenerator(completer)

	profile := socialTestProfile("mastodon")
	profile.MaxLength = 100

	got, err := gen.GenerateOne(context.Background(), testPost("blog content"), profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if textLen := pipeline.TextLength(got); textLen > 100+3 {
		t.Errorf("text length %d exceeds budget plus ellipsis", textLen)
	}
}

func TestGenerateOne_HashtagsAppended(t *testing.T) {
	completer := &stubCompleter{
		enabled: true,
		completeFn: func(prompt string) (string, error) {
			if strings.Contains(prompt, "Hashtags:") {
				return "golang, devops", nil
			}
			return "I shipped a new pipeline this week and wrote up every lesson.", nil
		},
	}
	gen, _, _ := newTestGenerator(completer)

	profile := socialTestProfile("facebook")
	profile.IncludeHashtags = true
	profile.HashtagCount = 2

	got, err := gen.GenerateOne(context.Background(), testPost("blog content"), profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(got, "#golang #devops") {
		t.Errorf("hashtags missing from output: %q", got)
	}
}

func TestGenerateAll_PartialFailure(t *testing.T) {
	completer := &stubCompleter{
		enabled: true,
		completeFn: func(prompt string) (string, error) {
			if strings.Contains(prompt, "Hashtags:") {
				return "golang", nil
			}
			if strings.Contains(prompt, "Write a failing post") {
				return "", errors.New("model exploded")
			}
			return "I wrote up my findings and you should read my full post.", nil
		},
	}
	gen, _, contents := newTestGenerator(completer)

	profiles := []domain.PlatformProfile{
		*socialTestProfile("working"),
		*socialTestProfile("failing"),
	}

	results := gen.GenerateAll(context.Background(), testPost("blog content"), profiles)

	if len(results) != 2 {
		t.Fatalf("expected 2 result slots, got %d", len(results))
	}
	if !results["working"].Ok() {
		t.Errorf("working platform failed: %v", results["working"].Err)
	}
	if results["failing"].Ok() {
		t.Errorf("failing platform reported success")
	}
	if got := results["failing"].String(); !strings.HasPrefix(got, "Error: ") {
		t.Errorf("failure slot not rendered with Error prefix: %q", got)
	}
	if len(contents.saved) != 1 || contents.saved[0].Platform != "working" {
		t.Errorf("expected only the working platform persisted, got %+v", contents.saved)
	}
}

func TestGenerateAll_SkipsDisabledProfiles(t *testing.T) {
	completer := &stubCompleter{
		enabled: true,
		completeFn: func(prompt string) (string, error) {
			if strings.Contains(prompt, "Hashtags:") {
				return "golang", nil
			}
			return "I wrote this up in detail.", nil
		},
	}
	gen, _, _ := newTestGenerator(completer)

	off := socialTestProfile("dormant")
	off.Enabled = false
	profiles := []domain.PlatformProfile{*off, *socialTestProfile("active")}

	results := gen.GenerateAll(context.Background(), testPost("blog content"), profiles)

	if _, ok := results["dormant"]; ok {
		t.Errorf("disabled profile must be skipped entirely")
	}
	if _, ok := results["active"]; !ok {
		t.Errorf("enabled profile missing from results")
	}
}

func TestGenerateAll_HashtagPrePassPersisted(t *testing.T) {
	completer := &stubCompleter{
		enabled: true,
		completeFn: func(prompt string) (string, error) {
			if strings.Contains(prompt, "Hashtags:") {
				return "golang, devops, testing", nil
			}
			return "I wrote this up in detail.", nil
		},
	}
	gen, posts, _ := newTestGenerator(completer)

	post := testPost("blog content")
	gen.GenerateAll(context.Background(), post, []domain.PlatformProfile{*socialTestProfile("facebook")})

	want := domain.StringArray{"golang", "devops", "testing"}
	if len(posts.hashtags) != 3 {
		t.Fatalf("hashtag pre-pass not persisted: %v", posts.hashtags)
	}
	for i, tag := range want {
		if posts.hashtags[i] != tag {
			t.Errorf("hashtag %d = %q, want %q", i, posts.hashtags[i], tag)
		}
	}
	if len(post.Hashtags) != 3 {
		t.Errorf("post not updated in memory: %v", post.Hashtags)
	}
}

func TestGenerateHashtags_FallbackOnModelError(t *testing.T) {
	completer := &stubCompleter{
		enabled: true,
		completeFn: func(string) (string, error) {
			return "", errors.New("model unavailable")
		},
	}
	gen, _, _ := newTestGenerator(completer)

	tags, err := gen.GenerateHashtags(context.Background(), "docker docker docker kubernetes kubernetes helm", 2)
	if err != nil {
		t.Fatalf("fallback path must not error, got %v", err)
	}

	if len(tags) != 2 || tags[0] != "docker" || tags[1] != "kubernetes" {
		t.Errorf("expected frequency-ranked fallback keywords, got %v", tags)
	}
}

func TestGenerateHashtags_DisabledProvider(t *testing.T) {
	completer := &stubCompleter{enabled: false}
	gen, _, _ := newTestGenerator(completer)

	_, err := gen.GenerateHashtags(context.Background(), "some content here", 5)

	if !errors.Is(err, llm.ErrProviderDisabled) {
		t.Fatalf("expected ErrProviderDisabled, got %v", err)
	}
}

func TestGenerateHashtags_EmptyContent(t *testing.T) {
	completer := &stubCompleter{enabled: false}
	gen, _, _ := newTestGenerator(completer)

	tags, err := gen.GenerateHashtags(context.Background(), "<p> </p>", 5)
	if err != nil || tags != nil {
		t.Errorf("empty content should yield nothing, got %v, %v", tags, err)
	}
}

func socialTestProfile(platform string) *domain.PlatformProfile {
	return &domain.PlatformProfile{
		Platform:    platform,
		ProfileType: domain.ProfileTypeSocial,
		Enabled:     true,
	}
}
