package pipeline

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripTags removes all markup tags, leaving only the visible text.
func StripTags(markup string) string {
	return tagPattern.ReplaceAllString(markup, "")
}

// TextLength returns the visible text length of markup in characters. All
// length budgets in the pipeline are computed on this count, never on raw
// markup length.
func TextLength(markup string) int {
	return len([]rune(StripTags(markup)))
}

// PlainText renders markup as plain text: tags become spaces so adjacent
// words do not merge, whitespace runs collapse, and the result is trimmed.
func PlainText(markup string) string {
	text := tagPattern.ReplaceAllString(markup, " ")
	return strings.TrimSpace(whitespaceRuns.ReplaceAllString(text, " "))
}

// Truncate cuts markup down to at most maxLength visible characters while
// keeping every tag intact. Tags are copied through unconditionally; only
// text characters count against the budget, so a tag is never cut mid-tag.
// Overall tag balance is not guaranteed: a truncation point inside an open
// element leaves that element unclosed.
// Parameters:
//   - content: markup to truncate.
//   - maxLength: visible-character budget.
// Returns:
//   - string: content unchanged if within budget, otherwise truncated with a
//     "..." suffix, backed off to a word boundary when one is close enough.
func Truncate(content string, maxLength int) string {
	if TextLength(content) <= maxLength {
		return content
	}

	var out strings.Builder
	var tagBuf strings.Builder
	inTag := false
	textCount := 0

scan:
	for _, ch := range content {
		switch {
		case ch == '<':
			inTag = true
			tagBuf.Reset()
			tagBuf.WriteRune(ch)
		case ch == '>':
			inTag = false
			tagBuf.WriteRune(ch)
			out.WriteString(tagBuf.String())
			tagBuf.Reset()
		case inTag:
			tagBuf.WriteRune(ch)
		default:
			if textCount >= maxLength {
				break scan
			}
			out.WriteRune(ch)
			textCount++
		}
	}

	truncated := out.String()

	// Back off to a word boundary only when the last space falls in the
	// final 20% of the output, otherwise too much text would be lost
	lastSpace := strings.LastIndex(truncated, " ")
	lastTag := strings.LastIndex(truncated, ">")
	if lastSpace > lastTag && float64(lastSpace) > float64(len(truncated))*0.8 {
		truncated = truncated[:lastSpace] + "..."
	} else {
		truncated += "..."
	}

	return truncated
}

// AppendHashtags appends formatted hashtags to content without violating the
// visible-length budget. If the tags do not fit, the content is truncated
// first to make room; if no room remains at all, the tags are dropped
// silently and content is returned unchanged.
// Parameters:
//   - content: finished content markup.
//   - hashtags: bare tag names without the # prefix.
//   - maxLength: visible-character budget, 0 for unlimited.
// Returns:
//   - string: content with a "#tag1 #tag2 ..." line appended after a <br>
//     separator.
func AppendHashtags(content string, hashtags []string, maxLength int) string {
	if len(hashtags) == 0 {
		return content
	}

	tags := make([]string, len(hashtags))
	for i, tag := range hashtags {
		tags[i] = "#" + tag
	}
	hashtagString := strings.Join(tags, " ")

	if maxLength > 0 {
		// +1 for the separator space rendered before the tag line
		needed := len([]rune(hashtagString)) + 1
		if TextLength(content)+needed > maxLength {
			available := maxLength - needed
			if available <= 0 {
				return content
			}
			content = Truncate(content, available)
		}
	}

	if !strings.HasSuffix(content, "<br>") && !strings.HasSuffix(content, "</p>") && !strings.HasSuffix(content, "</h3>") {
		content += "<br>"
	}
	return content + "<br>" + hashtagString
}
