package pipeline

import (
	"regexp"
	"sort"
	"strings"
)

var (
	leadingHashes = regexp.MustCompile(`^#+`)
	nonWordChars  = regexp.MustCompile(`[^\w\s]`)
)

// ParseHashtags extracts a clean tag list from a raw model completion.
// Tags are split on commas, lowercased, stripped of leading # and internal
// whitespace, filtered to 1-49 characters, and capped at count entries.
// Parameters:
//   - response: raw completion text.
//   - count: maximum number of tags to keep.
// Returns:
//   - []string: cleaned tags, possibly empty.
func ParseHashtags(response string, count int) []string {
	var tags []string
	for _, part := range strings.Split(strings.TrimSpace(response), ",") {
		tag := strings.TrimSpace(part)
		tag = leadingHashes.ReplaceAllString(tag, "")
		tag = whitespaceRuns.ReplaceAllString(tag, "")
		tag = strings.ToLower(tag)
		if tag == "" || len([]rune(tag)) >= 50 {
			continue
		}
		tags = append(tags, tag)
		if len(tags) == count {
			break
		}
	}
	return tags
}

// FallbackKeywords extracts the most frequent words from plain text, for use
// when hashtag generation via the model fails. Never returns an error.
// Parameters:
//   - text: plain text to mine.
//   - count: maximum number of keywords.
// Returns:
//   - []string: up to count keywords, most frequent first; ties keep their
//     order of first appearance.
func FallbackKeywords(text string, count int) []string {
	cleaned := nonWordChars.ReplaceAllString(strings.ToLower(text), " ")

	type wordStat struct {
		word  string
		freq  int
		first int
	}

	stats := make(map[string]*wordStat)
	order := make([]*wordStat, 0)
	for _, word := range strings.Fields(cleaned) {
		if len([]rune(word)) <= 3 {
			continue
		}
		if s, ok := stats[word]; ok {
			s.freq++
		} else {
			s := &wordStat{word: word, freq: 1, first: len(order)}
			stats[word] = s
			order = append(order, s)
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].freq != order[j].freq {
			return order[i].freq > order[j].freq
		}
		return order[i].first < order[j].first
	})

	if len(order) > count {
		order = order[:count]
	}
	keywords := make([]string, len(order))
	for i, s := range order {
		keywords[i] = s.word
	}
	return keywords
}
