package pipeline

import (
	"strings"
)

// Fallback call-to-action blocks injected by the quality guards.
const (
	similarityCTA = "<br><br><strong>Want to read the complete article? Check out my full blog post for all the details!</strong>"
	lengthCTA     = "<br><br><p><strong>Read my full blog post to discover more insights and complete details!</strong></p>"
)

// SimilarityRatio measures vocabulary overlap between source and generated
// text. Both are stripped of markup, lowercased, and tokenized into words
// longer than three characters; the ratio is the share of generated words
// that also appear in the source.
// Parameters:
//   - original: source blog content markup.
//   - generated: generated content markup.
// Returns:
//   - float64: overlap ratio in [0, 1]; 0 when the generated text has no
//     qualifying words.
func SimilarityRatio(original, generated string) float64 {
	originalWords := tokenizeWords(original)
	generatedWords := tokenizeWords(generated)
	if len(generatedWords) == 0 {
		return 0
	}

	originalSet := make(map[string]struct{}, len(originalWords))
	for _, w := range originalWords {
		originalSet[w] = struct{}{}
	}

	matching := 0
	for _, w := range generatedWords {
		if _, ok := originalSet[w]; ok {
			matching++
		}
	}
	return float64(matching) / float64(len(generatedWords))
}

func tokenizeWords(markup string) []string {
	text := strings.ToLower(tagPattern.ReplaceAllString(markup, " "))
	fields := strings.Fields(text)
	words := fields[:0]
	for _, w := range fields {
		if len([]rune(w)) > 3 {
			words = append(words, w)
		}
	}
	return words
}

// CheckQuality applies the similarity guard and the call-to-action guard to
// generated content and returns it, possibly with fallback CTA blocks
// appended. Both guards can fire on the same content and append back to
// back; duplicates are not collapsed.
// Parameters:
//   - original: source blog content markup.
//   - generated: pipeline output after post-processing.
//   - maxLength: profile's visible-character budget, 0 when unset.
// Returns:
//   - string: generated content, with CTAs appended where a guard fired.
//   - float64: the computed similarity ratio, for caller-side logging.
func CheckQuality(original, generated string, maxLength int) (string, float64) {
	ratio := SimilarityRatio(original, generated)

	if ratio > 0.7 && maxLength > 500 {
		textOnly := strings.ToLower(StripTags(generated))
		if !strings.Contains(textOnly, "read") && !strings.Contains(textOnly, "check out") && !strings.Contains(textOnly, "full post") {
			generated += similarityCTA
		}
	}

	if maxLength > 1000 {
		textOnly := strings.ToLower(StripTags(generated))
		hasCTA := strings.Contains(textOnly, "read") ||
			strings.Contains(textOnly, "check out") ||
			strings.Contains(textOnly, "full post") ||
			strings.Contains(textOnly, "blog post") ||
			strings.Contains(textOnly, "article") ||
			strings.Contains(textOnly, "learn more")
		if !hasCTA {
			generated += lengthCTA
		}
	}

	return generated, ratio
}
