package service

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/jpalmer/promoboost/internal/config"
)

// Article is the result of fetching a blog post from an external source.
type Article struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	URL           string `json:"url"`
	Excerpt       string `json:"excerpt,omitempty"`
	FeaturedImage string `json:"featured_image,omitempty"`
}

// Selector lists tried in order when extracting article markup. Ghost CMS
// layouts first, generic blog layouts as fallback.
var (
	ghostSelectors = []string{
		"article.gh-article",
		"article.post-content",
		".post-content",
		".gh-content",
		"[data-ghost-content]",
	}
	genericSelectors = []string{
		"article",
		".post-content",
		".entry-content",
		".article-content",
		".content",
	}
)

const strippedElements = "script, style, nav, header, footer, aside, .sidebar, .comments, .gh-comments, .gh-navigation, .gh-header, .gh-footer, .gh-sidebar"

var titleWhitespace = regexp.MustCompile(`\s+`)

// FetcherService imports blog posts from arbitrary URLs and from the Ghost
// Content API.
type FetcherService struct {
	http *resty.Client
}

// NewFetcherService creates a FetcherService.
// Parameters:
//   - cfg: fetch configuration (timeout, user agent).
// Returns:
//   - *FetcherService: service instance.
func NewFetcherService(cfg config.FetchConfig) *FetcherService {
	client := resty.New()
	client.SetHeader("User-Agent", cfg.UserAgent)
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	client.SetTimeout(timeout)
	return &FetcherService{http: client}
}

// FetchArticle downloads a page and extracts the main article content,
// title, and featured image.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - rawURL: page URL.
// Returns:
//   - *Article: extracted article; Content may be empty if no candidate
//     container was found.
//   - error: non-nil on transport or parse failure.
func (s *FetcherService) FetchArticle(ctx context.Context, rawURL string) (*Article, error) {
	resp, err := s.http.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("error fetching content: %w", err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, fmt.Errorf("failed to fetch URL: %d %s", resp.StatusCode(), resp.Status())
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(resp.Body())))
	if err != nil {
		return nil, fmt.Errorf("error parsing page: %w", err)
	}

	content := extractContent(doc)

	return &Article{
		Title:         extractTitle(doc),
		Content:       content,
		URL:           rawURL,
		FeaturedImage: resolveImageURL(extractFeaturedImage(doc), rawURL),
	}, nil
}

func extractContent(doc *goquery.Document) string {
	var container *goquery.Selection
	for _, selector := range ghostSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			container = sel
			break
		}
	}
	if container == nil {
		for _, selector := range genericSelectors {
			if sel := doc.Find(selector).First(); sel.Length() > 0 {
				container = sel
				break
			}
		}
	}
	if container == nil {
		container = doc.Find("body").First()
	}
	if container.Length() == 0 {
		return ""
	}

	// Drop navigation and UI chrome, keep Ghost formatting classes
	container.Find(strippedElements).Remove()

	html, err := container.Html()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(html)
}

func extractTitle(doc *goquery.Document) string {
	title, _ := doc.Find(`meta[property="og:title"]`).First().Attr("content")
	if title == "" {
		title = doc.Find("title").First().Text()
	}
	if title == "" {
		title = doc.Find("h1").First().Text()
	}
	if title == "" {
		return "Untitled Post"
	}
	return strings.TrimSpace(titleWhitespace.ReplaceAllString(title, " "))
}

func extractFeaturedImage(doc *goquery.Document) string {
	if img, ok := doc.Find(`meta[property="og:image"]`).First().Attr("content"); ok && img != "" {
		return img
	}
	if img, ok := doc.Find(`meta[name="twitter:image"]`).First().Attr("content"); ok && img != "" {
		return img
	}
	if img, ok := doc.Find(`link[rel="image_src"]`).First().Attr("href"); ok && img != "" {
		return img
	}
	return ""
}

// resolveImageURL converts protocol-relative and path-relative image URLs
// into absolute ones using the page URL as base. Unresolvable input is
// returned as-is.
func resolveImageURL(image, pageURL string) string {
	if image == "" {
		return ""
	}
	if strings.HasPrefix(image, "//") {
		return "https:" + image
	}
	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return image
	}
	resolved, err := base.Parse(image)
	if err != nil {
		return image
	}
	return resolved.String()
}

type ghostPostsResponse struct {
	Posts []struct {
		ID           string `json:"id"`
		Title        string `json:"title"`
		HTML         string `json:"html"`
		URL          string `json:"url"`
		Excerpt      string `json:"excerpt"`
		FeatureImage string `json:"feature_image"`
	} `json:"posts"`
}

// FetchGhostPosts lists recent posts from a Ghost CMS Content API.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - ghostURL: Ghost site base URL.
//   - apiKey: Content API key.
//   - limit: maximum number of posts.
// Returns:
//   - []Article: posts with Ghost HTML preserved as-is.
//   - error: non-nil on transport failure or an invalid API response.
func (s *FetcherService) FetchGhostPosts(ctx context.Context, ghostURL, apiKey string, limit int) ([]Article, error) {
	if limit <= 0 {
		limit = 10
	}
	apiURL := fmt.Sprintf("%s/ghost/api/content/posts/?key=%s&limit=%d&fields=id,title,html,url,excerpt,feature_image",
		strings.TrimRight(ghostURL, "/"), url.QueryEscape(apiKey), limit)

	var result ghostPostsResponse
	resp, err := s.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetResult(&result).
		Get(apiURL)
	if err != nil {
		return nil, fmt.Errorf("error fetching Ghost posts: %w", err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, fmt.Errorf("ghost API error: %d %s", resp.StatusCode(), resp.Status())
	}
	if result.Posts == nil {
		return nil, fmt.Errorf("invalid Ghost API response")
	}

	articles := make([]Article, 0, len(result.Posts))
	for _, post := range result.Posts {
		articles = append(articles, Article{
			Title:         post.Title,
			Content:       post.HTML,
			URL:           post.URL,
			Excerpt:       post.Excerpt,
			FeaturedImage: post.FeatureImage,
		})
	}
	return articles, nil
}
