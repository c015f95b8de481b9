package pipeline

import (
	"strings"
	"testing"
)

func TestTruncate_WithinBudgetUnchanged(t *testing.T) {
	content := "<p>short text</p>"
	if got := Truncate(content, 100); got != content {
		t.Errorf("expected content unchanged, got %q", got)
	}
}

func TestTruncate_Idempotent(t *testing.T) {
	content := "<p>" + strings.Repeat("word and more ", 40) + "</p>"

	once := Truncate(content, 100)
	twice := Truncate(once, 100)

	if once != twice {
		t.Errorf("truncation not idempotent:\nonce:  %q\ntwice: %q", once, twice)
	}
	if got := TextLength(once); got > 103 {
		t.Errorf("expected text length <= 103 (budget + ellipsis), got %d", got)
	}
}

func TestTruncate_NeverBreaksTags(t *testing.T) {
	inputs := []string{
		"<p>hello <strong>bold world</strong> and some more text here</p>",
		"<h3>heading</h3><p>body with <em>emphasis</em> spanning the cut point somewhere</p>",
		"plain text with no tags at all but plenty of words to cut through",
		"<ul><li>first item</li><li>second item</li><li>third item</li></ul>",
	}

	for _, input := range inputs {
		for n := 1; n < 40; n += 3 {
			got := Truncate(input, n)

			depth := 0
			for _, ch := range got {
				switch ch {
				case '<':
					if depth != 0 {
						t.Fatalf("nested '<' in output for input %q n=%d: %q", input, n, got)
					}
					depth++
				case '>':
					if depth != 1 {
						t.Fatalf("unmatched '>' in output for input %q n=%d: %q", input, n, got)
					}
					depth--
				}
			}
			if depth != 0 {
				t.Fatalf("unterminated tag in output for input %q n=%d: %q", input, n, got)
			}
		}
	}
}

func TestTruncate_WordBoundaryBackoff(t *testing.T) {
	// Last space at position 89 of 100 is within the final 20%, so the cut
	// backs off to it instead of splitting the word
	content := strings.Repeat("aaaaaaaaa ", 10) // 100 chars, spaces at 9, 19, ... 99
	got := Truncate(content, 95)

	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
	trimmed := strings.TrimSuffix(got, "...")
	if strings.HasSuffix(trimmed, "a") && len(trimmed) == 95 {
		t.Errorf("expected word-boundary backoff, got cut mid-run: %q", got)
	}
}

func TestTextLength_CountsOnlyVisibleText(t *testing.T) {
	tests := []struct {
		markup string
		want   int
	}{
		{"<p>hello</p>", 5},
		{"plain", 5},
		{"<strong></strong>", 0},
		{"<h3>ab</h3><p>cd</p>", 4},
	}
	for _, tt := range tests {
		if got := TextLength(tt.markup); got != tt.want {
			t.Errorf("TextLength(%q) = %d, want %d", tt.markup, got, tt.want)
		}
	}
}

func TestAppendHashtags_FitsWithinBudget(t *testing.T) {
	content := "<p>" + strings.Repeat("x", 250) + "</p>"
	tags := []string{"golang", "webdev", "coding", "blogging", "tutorial"}

	got := AppendHashtags(content, tags, 280)

	if !strings.Contains(got, "#golang") {
		t.Fatalf("expected hashtags in output, got %q", got)
	}
	if textLen := TextLength(got); textLen > 280+3 {
		t.Errorf("expected text length <= 283 after hashtag append, got %d", textLen)
	}
}

func TestAppendHashtags_SkippedWhenNoRoom(t *testing.T) {
	content := "<p>abc</p>"
	longTag := strings.Repeat("verylongtag", 4)

	got := AppendHashtags(content, []string{longTag}, 10)

	if got != content {
		t.Errorf("expected hashtags skipped when they cannot fit, got %q", got)
	}
}

func TestAppendHashtags_SeparatorAfterBlockBoundary(t *testing.T) {
	got := AppendHashtags("<p>body</p>", []string{"tag"}, 0)
	if !strings.HasSuffix(got, "</p><br>#tag") {
		t.Errorf("expected single <br> separator after block end, got %q", got)
	}

	got = AppendHashtags("bare text", []string{"tag"}, 0)
	if !strings.HasSuffix(got, "bare text<br><br>#tag") {
		t.Errorf("expected inserted line break before separator, got %q", got)
	}
}

func TestPlainText_TagsBecomeSpaces(t *testing.T) {
	got := PlainText("<p>one</p><p>two</p>")
	if got != "one two" {
		t.Errorf("PlainText = %q, want %q", got, "one two")
	}
}
