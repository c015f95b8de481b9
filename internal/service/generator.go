package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jpalmer/promoboost/internal/domain"
	"github.com/jpalmer/promoboost/internal/llm"
	"github.com/jpalmer/promoboost/internal/logger"
	"github.com/jpalmer/promoboost/internal/pipeline"
	"github.com/jpalmer/promoboost/internal/prompts"
)

var (
	// ErrEmptyContent is returned when generation is requested for a post
	// with no content.
	ErrEmptyContent = errors.New("blog content is required")

	// ErrInvalidPlatform is returned for platform keys that fail validation.
	ErrInvalidPlatform = errors.New("invalid platform name")
)

// defaultHashtagCount is used for the post-level hashtag pre-pass.
const defaultHashtagCount = 10

// hashtagReservePerTag is the estimated visible width of one appended
// hashtag including the # prefix and separating space.
const hashtagReservePerTag = 20

// hashtagSourceLimit caps how much plain text is sent to the model when
// generating hashtags.
const hashtagSourceLimit = 2000

// Completer is the LLM collaborator consumed by the generator.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Enabled(ctx context.Context) bool
}

// PostStore is the post persistence surface the generator needs.
type PostStore interface {
	UpdateHashtags(ctx context.Context, id uint, hashtags domain.StringArray) error
}

// ContentStore is the generated-content persistence surface the generator
// needs.
type ContentStore interface {
	Upsert(ctx context.Context, content *domain.GeneratedContent) error
}

// Result is the outcome of one platform's generation. Exactly one of
// Content or Err is meaningful.
type Result struct {
	Content string
	Err     error
}

// Ok reports whether generation succeeded.
func (r Result) Ok() bool {
	return r.Err == nil
}

// String renders the result for API payloads, using the "Error: <message>"
// convention for failures so callers can distinguish slots uniformly.
func (r Result) String() string {
	if r.Err != nil {
		return "Error: " + r.Err.Error()
	}
	return r.Content
}

// Generator orchestrates the content pipeline: prompt construction, the LLM
// call, post-processing, length enforcement, hashtags, quality guards, UTM
// injection, and persistence of results.
type Generator struct {
	completer Completer
	posts     PostStore
	contents  ContentStore
	tracking  *TrackingService
}

// NewGenerator creates a Generator.
// Parameters:
//   - completer: LLM client.
//   - posts: post repository, used to persist the hashtag pre-pass.
//   - contents: generated content repository.
//   - tracking: tracking service for UTM injection.
// Returns:
//   - *Generator: orchestrator instance.
func NewGenerator(completer Completer, posts PostStore, contents ContentStore, tracking *TrackingService) *Generator {
	return &Generator{
		completer: completer,
		posts:     posts,
		contents:  contents,
		tracking:  tracking,
	}
}

// GenerateOne runs the full pipeline for a single platform and returns the
// finished content. It does not persist anything; callers decide.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - post: source post; Content and SourceURL are read.
//   - profile: platform profile controlling the pipeline.
// Returns:
//   - string: finished content markup.
//   - error: ErrEmptyContent, ErrInvalidPlatform, llm.ErrProviderDisabled,
//     or a wrapped LLM error.
func (g *Generator) GenerateOne(ctx context.Context, post *domain.Post, profile *domain.PlatformProfile) (string, error) {
	if strings.TrimSpace(post.Content) == "" {
		return "", ErrEmptyContent
	}
	if !domain.PlatformKeyPattern.MatchString(profile.Platform) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPlatform, profile.Platform)
	}
	if !g.completer.Enabled(ctx) {
		return "", llm.ErrProviderDisabled
	}

	// Body budget is computed once up front: the hashtag reserve comes out
	// of maxLength before truncation, and the hashtag step re-checks the
	// full budget as a tighter safety net.
	bodyBudget := 0
	if profile.MaxLength > 0 {
		reserve := 0
		if profile.IncludeHashtags && profile.HashtagCount > 0 {
			reserve = profile.HashtagCount * hashtagReservePerTag
		}
		bodyBudget = profile.MaxLength - reserve
	}

	start := time.Now()
	prompt := pipeline.BuildPrompt(post.Content, profile)

	raw, err := g.completer.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}

	content := pipeline.PostProcess(raw, profile)

	content, ratio := pipeline.CheckQuality(post.Content, content, profile.MaxLength)
	if ratio > 0.7 && profile.MaxLength > 500 {
		logger.CtxWarn(ctx, "Content for %s may be too similar to original (%d%% word overlap), consider regenerating",
			profile.Platform, int(ratio*100))
	}

	if bodyBudget > 0 {
		if textLen := pipeline.TextLength(content); textLen > bodyBudget {
			content = pipeline.Truncate(content, bodyBudget)
			logger.CtxWarn(ctx, "Content for %s exceeded length budget (%d > %d), truncated",
				profile.Platform, textLen, bodyBudget)
		}
	}

	if profile.IncludeHashtags && profile.HashtagCount > 0 {
		tags, err := g.GenerateHashtags(ctx, post.Content, profile.HashtagCount)
		if err != nil {
			logger.CtxWarn(ctx, "Skipping hashtags for %s: %v", profile.Platform, err)
		} else {
			content = pipeline.AppendHashtags(content, tags, profile.MaxLength)
		}
	}

	if post.SourceURL != "" && g.tracking != nil {
		content = g.tracking.InjectTrackingURL(content, profile, post.SourceURL)
	}

	logger.With(logger.Fields{
		logger.FieldComponent:  "generator",
		logger.FieldPlatform:   profile.Platform,
		logger.FieldDurationMs: time.Since(start).Milliseconds(),
		logger.FieldSize:       pipeline.TextLength(content),
	}).Info(ctx, "Generated content for %s", profile.Platform)

	return content, nil
}

// GenerateAll runs generation for every enabled profile sequentially. One
// platform's failure never aborts the batch; its slot carries the error.
// Successful results are persisted as upserts; the post's hashtag list is
// filled in once before any platform runs.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - post: source post.
//   - profiles: candidate profiles; disabled ones are skipped.
// Returns:
//   - map[string]Result: one entry per attempted platform.
func (g *Generator) GenerateAll(ctx context.Context, post *domain.Post, profiles []domain.PlatformProfile) map[string]Result {
	g.ensureHashtags(ctx, post)

	results := make(map[string]Result)
	for i := range profiles {
		profile := &profiles[i]
		if !profile.Enabled {
			continue
		}

		ctx := logger.SetPlatform(ctx, profile.Platform)
		content, err := g.GenerateOne(ctx, post, profile)
		if err != nil {
			logger.CtxError(ctx, "Generation failed for %s: %v", profile.Platform, err)
			results[profile.Platform] = Result{Err: err}
			continue
		}

		if err := g.contents.Upsert(ctx, &domain.GeneratedContent{
			PostID:   post.ID,
			Platform: profile.Platform,
			Content:  content,
		}); err != nil {
			logger.CtxError(ctx, "Failed to save generated content for %s: %v", profile.Platform, err)
			results[profile.Platform] = Result{Err: fmt.Errorf("failed to save generated content: %w", err)}
			continue
		}

		results[profile.Platform] = Result{Content: content}
	}

	return results
}

// ensureHashtags fills the post's hashtag list once, before platform
// generation. Failures are logged and swallowed; generation proceeds
// without hashtags.
func (g *Generator) ensureHashtags(ctx context.Context, post *domain.Post) {
	if len(post.Hashtags) > 0 {
		return
	}

	tags, err := g.GenerateHashtags(ctx, post.Content, defaultHashtagCount)
	if err != nil {
		logger.CtxWarn(ctx, "Hashtag pre-pass failed, continuing without hashtags: %v", err)
		return
	}
	if len(tags) == 0 {
		return
	}

	if err := g.posts.UpdateHashtags(ctx, post.ID, domain.StringArray(tags)); err != nil {
		logger.CtxWarn(ctx, "Failed to persist post hashtags: %v", err)
		return
	}
	post.Hashtags = domain.StringArray(tags)
}

// GenerateHashtags asks the model for a hashtag list for the given content.
// When the model call fails, it falls back to local frequency-based keyword
// extraction and never returns an error for that path; only a disabled
// provider is surfaced as an error.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - blogContent: source post markup.
//   - count: number of hashtags requested.
// Returns:
//   - []string: cleaned tags, possibly empty.
//   - error: llm.ErrProviderDisabled when the provider is off.
func (g *Generator) GenerateHashtags(ctx context.Context, blogContent string, count int) ([]string, error) {
	text := pipeline.PlainText(blogContent)
	if text == "" {
		return nil, nil
	}

	if !g.completer.Enabled(ctx) {
		return nil, llm.ErrProviderDisabled
	}

	excerpt := text
	if runes := []rune(excerpt); len(runes) > hashtagSourceLimit {
		excerpt = string(runes[:hashtagSourceLimit]) + "..."
	}

	raw, err := g.completer.Complete(ctx, fmt.Sprintf(prompts.HashtagPrompt, count, excerpt))
	if err != nil {
		logger.CtxWarn(ctx, "Hashtag generation failed, falling back to keyword extraction: %v", err)
		return pipeline.FallbackKeywords(text, count), nil
	}

	return pipeline.ParseHashtags(raw, count), nil
}
