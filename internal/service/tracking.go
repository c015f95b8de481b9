package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/jpalmer/promoboost/internal/domain"
	"github.com/jpalmer/promoboost/internal/logger"
	"github.com/jpalmer/promoboost/internal/repository"
	"gorm.io/gorm"
)

// ctaPattern recognizes call-to-action phrasing in generated content. Used
// to decide whether an explicit link should be appended.
var ctaPattern = regexp.MustCompile(`(?i)(read\s+(?:my\s+)?(?:full\s+)?(?:blog\s+)?post|check\s+out\s+(?:my\s+)?(?:blog\s+)?post|read\s+more|full\s+article|complete\s+article)`)

// shortCodeLength is the length of generated redirect short codes.
const shortCodeLength = 10

// TrackingService generates UTM-tagged URLs, injects them into generated
// content, manages short-code redirects, and aggregates click analytics.
type TrackingService struct {
	repo    *repository.TrackingRepository
	baseURL string
}

// NewTrackingService creates a TrackingService.
// Parameters:
//   - repo: tracking repository.
//   - baseURL: public base URL used to build short redirect links.
// Returns:
//   - *TrackingService: service instance.
func NewTrackingService(repo *repository.TrackingRepository, baseURL string) *TrackingService {
	return &TrackingService{repo: repo, baseURL: strings.TrimRight(baseURL, "/")}
}

// GenerateUTMURL appends a utm_source parameter to sourceURL. Returns the
// URL unchanged when UTM tagging is disabled or inputs are missing. When
// the URL does not parse, the parameter is appended textually instead of
// failing.
// Parameters:
//   - sourceURL: original blog post URL.
//   - platform: platform key, used as the default source.
//   - utmSource: custom source name, empty to default to the platform key.
//   - utmEnabled: whether tagging applies.
// Returns:
//   - string: tagged (or original) URL.
func (s *TrackingService) GenerateUTMURL(sourceURL, platform, utmSource string, utmEnabled bool) string {
	if sourceURL == "" || platform == "" || !utmEnabled {
		return sourceURL
	}

	source := utmSource
	if source == "" {
		source = strings.ToLower(platform)
	}

	parsed, err := url.Parse(sourceURL)
	if err != nil || parsed.Scheme == "" {
		separator := "?"
		if strings.Contains(sourceURL, "?") {
			separator = "&"
		}
		return sourceURL + separator + "utm_source=" + url.QueryEscape(source)
	}

	query := parsed.Query()
	query.Set("utm_source", source)
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

// InjectTrackingURL rewrites source-URL references in content to their
// UTM-tagged form, and appends a linked call-to-action when the content
// mentions reading the post but carries no link at all.
// Parameters:
//   - content: generated content markup.
//   - profile: platform profile supplying UTM settings.
//   - sourceURL: original blog post URL.
// Returns:
//   - string: content with tracking links applied.
func (s *TrackingService) InjectTrackingURL(content string, profile *domain.PlatformProfile, sourceURL string) string {
	if sourceURL == "" || profile.Platform == "" {
		return content
	}

	utmURL := s.GenerateUTMURL(sourceURL, profile.Platform, profile.UTMSource, profile.UTMEnabled)

	if strings.Contains(content, sourceURL) {
		content = strings.ReplaceAll(content, sourceURL, utmURL)
	}

	hasLink := strings.Contains(content, "http") || strings.Contains(content, "href=")
	if ctaPattern.MatchString(content) && !hasLink {
		content += fmt.Sprintf(` <a href="%s" target="_blank" rel="noopener noreferrer">Read the full post</a>`, utmURL)
	}

	return content
}

// TrackingURLsForPost builds UTM-tagged URLs for every profile, keyed by
// platform. Profiles with UTM disabled map to the untagged source URL.
// Parameters:
//   - sourceURL: original blog post URL; empty yields an empty map.
//   - profiles: platform profiles to tag for.
// Returns:
//   - map[string]string: platform key to tagged URL.
func (s *TrackingService) TrackingURLsForPost(sourceURL string, profiles []domain.PlatformProfile) map[string]string {
	urls := make(map[string]string)
	if sourceURL == "" {
		return urls
	}
	for i := range profiles {
		p := &profiles[i]
		urls[p.Platform] = s.GenerateUTMURL(sourceURL, p.Platform, p.EffectiveUTMSource(), p.UTMEnabled)
	}
	return urls
}

// EnsureShortLink returns the short-code redirect record for a (post,
// platform) pair, creating it on first use and refreshing the destination
// when the source URL changed.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - postID: post ID.
//   - platform: platform key.
//   - destination: URL the short code should redirect to.
// Returns:
//   - *domain.TrackingURL: redirect record.
//   - error: non-nil if persistence fails.
func (s *TrackingService) EnsureShortLink(ctx context.Context, postID uint, platform, destination string) (*domain.TrackingURL, error) {
	existing, err := s.repo.GetByPostAndPlatform(ctx, postID, platform)
	if err == nil {
		if existing.OriginalURL != destination {
			existing.OriginalURL = destination
			if err := s.repo.Upsert(ctx, existing); err != nil {
				return nil, err
			}
		}
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	record := &domain.TrackingURL{
		ShortCode:   newShortCode(),
		OriginalURL: destination,
		PostID:      postID,
		Platform:    platform,
	}
	if err := s.repo.Upsert(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// ShortURL renders the public redirect URL for a short code.
func (s *TrackingService) ShortURL(code string) string {
	return s.baseURL + "/t/" + code
}

// Resolve looks up a short code, records the click, and returns the
// destination URL. Click recording failures are logged, not surfaced; the
// redirect must not break because analytics did.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - code: short code from the redirect path.
//   - click: click metadata; TrackingURLID is filled in here.
// Returns:
//   - string: destination URL.
//   - error: non-nil when the code is unknown.
func (s *TrackingService) Resolve(ctx context.Context, code string, click *domain.TrackingClick) (string, error) {
	record, err := s.repo.GetByShortCode(ctx, code)
	if err != nil {
		return "", err
	}

	click.TrackingURLID = record.ID
	if err := s.repo.RecordClick(ctx, click); err != nil {
		logger.CtxWarn(ctx, "Failed to record click for %s: %v", code, err)
	}

	return record.OriginalURL, nil
}

// StatsByPost aggregates click counts per platform for a post.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - postID: post ID.
// Returns:
//   - []domain.PlatformClickStats: per-platform click counts.
//   - error: non-nil if the query fails.
func (s *TrackingService) StatsByPost(ctx context.Context, postID uint) ([]domain.PlatformClickStats, error) {
	return s.repo.ClickStatsByPost(ctx, postID)
}

func newShortCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return raw[:shortCodeLength]
}
