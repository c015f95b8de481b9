package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jpalmer/promoboost/internal/config"
)

const articlePage = `<!DOCTYPE html>
<html>
<head>
<title>Raw Title</title>
<meta property="og:title" content="My Article Title">
<meta property="og:image" content="/images/cover.png">
</head>
<body>
<nav>site nav</nav>
<article class="gh-article">
<script>var tracked = true;</script>
<p>First paragraph of the post.</p>
<p>Second paragraph with <strong>emphasis</strong>.</p>
</article>
<footer>site footer</footer>
</body>
</html>`

func TestFetchArticle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, articlePage)
	}))
	defer srv.Close()

	svc := NewFetcherService(config.FetchConfig{})

	article, err := svc.FetchArticle(context.Background(), srv.URL+"/post")
	if err != nil {
		t.Fatalf("FetchArticle: %v", err)
	}

	if article.Title != "My Article Title" {
		t.Errorf("Title = %q, want og:title value", article.Title)
	}
	if !strings.Contains(article.Content, "First paragraph of the post.") {
		t.Errorf("article body missing: %q", article.Content)
	}
	if strings.Contains(article.Content, "var tracked") {
		t.Errorf("script content not stripped: %q", article.Content)
	}
	if strings.Contains(article.Content, "site nav") || strings.Contains(article.Content, "site footer") {
		t.Errorf("page chrome leaked into content: %q", article.Content)
	}
	if want := srv.URL + "/images/cover.png"; article.FeaturedImage != want {
		t.Errorf("FeaturedImage = %q, want %q", article.FeaturedImage, want)
	}
}

func TestFetchArticle_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	svc := NewFetcherService(config.FetchConfig{})

	if _, err := svc.FetchArticle(context.Background(), srv.URL); err == nil {
		t.Fatalf("expected error for 404 response")
	}
}

func TestFetchArticle_TitleFallbacks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head></head><body><article><p>body</p></article></body></html>`)
	}))
	defer srv.Close()

	svc := NewFetcherService(config.FetchConfig{})

	article, err := svc.FetchArticle(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchArticle: %v", err)
	}
	if article.Title != "Untitled Post" {
		t.Errorf("Title = %q, want fallback", article.Title)
	}
}

func TestResolveImageURL(t *testing.T) {
	tests := []struct {
		image   string
		pageURL string
		want    string
	}{
		{"", "https://blog.example.com/post", ""},
		{"//cdn.example.com/a.png", "https://blog.example.com/post", "https://cdn.example.com/a.png"},
		{"https://cdn.example.com/a.png", "https://blog.example.com/post", "https://cdn.example.com/a.png"},
		{"/images/a.png", "https://blog.example.com/post", "https://blog.example.com/images/a.png"},
		{"a.png", "https://blog.example.com/posts/one", "https://blog.example.com/posts/a.png"},
	}

	for _, tt := range tests {
		if got := resolveImageURL(tt.image, tt.pageURL); got != tt.want {
			t.Errorf("resolveImageURL(%q, %q) = %q, want %q", tt.image, tt.pageURL, got, tt.want)
		}
	}
}

func TestFetchGhostPosts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/ghost/api/content/posts/") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "content-key" {
			t.Errorf("API key not forwarded")
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"posts":[{"id":"1","title":"Post One","html":"<p>body</p>","url":"https://g.example.com/one/","excerpt":"teaser","feature_image":"https://g.example.com/img.png"}]}`)
	}))
	defer srv.Close()

	svc := NewFetcherService(config.FetchConfig{})

	articles, err := svc.FetchGhostPosts(context.Background(), srv.URL, "content-key", 5)
	if err != nil {
		t.Fatalf("FetchGhostPosts: %v", err)
	}
	if len(articles) != 1 {
		t.Fatalf("expected 1 article, got %d", len(articles))
	}
	got := articles[0]
	if got.Title != "Post One" || got.Content != "<p>body</p>" || got.Excerpt != "teaser" {
		t.Errorf("article = %+v", got)
	}
}

func TestFetchGhostPosts_InvalidResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	svc := NewFetcherService(config.FetchConfig{})

	if _, err := svc.FetchGhostPosts(context.Background(), srv.URL, "k", 5); err == nil {
		t.Fatalf("expected error for response without posts array")
	}
}
