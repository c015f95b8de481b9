package pipeline

import (
	"regexp"
	"strings"

	"github.com/jpalmer/promoboost/internal/domain"
)

// introRules is the ordered catalogue of meta-commentary patterns stripped
// from the start of model output. Each rule removes its first match; rules
// are applied top to bottom, so broader patterns sit below narrower ones.
// Kept as a table so the set can be tested independently of the pipeline.
var introRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^here is your .*? post:?\s*`),
	regexp.MustCompile(`(?i)^here's your .*? post:?\s*`),
	regexp.MustCompile(`(?i)^here is the .*? post:?\s*`),
	regexp.MustCompile(`(?i)^here's the .*? post:?\s*`),
	regexp.MustCompile(`(?i)^your .*? post:?\s*`),
	regexp.MustCompile(`(?i)^the .*? post:?\s*`),
	regexp.MustCompile(`(?i)^.*? post:\s*`),
	regexp.MustCompile(`(?i)^here it is:?\s*`),
	regexp.MustCompile(`(?i)^here you go:?\s*`),
	regexp.MustCompile(`(?i)^it looks like you've (shared|provided|written|posted) .*?:?\s*`),
	regexp.MustCompile(`(?i)^it looks like you've .*?:?\s*`),
	regexp.MustCompile(`(?i)^it seems like you've (shared|provided|written|posted) .*?:?\s*`),
	regexp.MustCompile(`(?i)^it seems like you've .*?:?\s*`),
	regexp.MustCompile(`(?i)^it seems you've (shared|provided|written|posted) .*?:?\s*`),
	regexp.MustCompile(`(?i)^it seems you've .*?:?\s*`),
	regexp.MustCompile(`(?i)^it appears you've (shared|provided|written|posted) .*?:?\s*`),
	regexp.MustCompile(`(?i)^it appears you've .*?:?\s*`),
	regexp.MustCompile(`(?i)^you've (shared|provided|written|posted) .*?:?\s*`),
	regexp.MustCompile(`(?i)^you describe .*?:?\s*`),
	regexp.MustCompile(`(?i)^you've described .*?:?\s*`),
	regexp.MustCompile(`(?i)^i'll summarize .*?:?\s*`),
	regexp.MustCompile(`(?i)^i'll create .*?:?\s*`),
	regexp.MustCompile(`(?i)^here's a .*?:?\s*`),
	regexp.MustCompile(`(?i)^here is a .*?:?\s*`),
	regexp.MustCompile(`(?i)^based on .*?, i'll .*?:?\s*`),
	regexp.MustCompile(`(?i)^i'll help you .*?:?\s*`),
	regexp.MustCompile(`(?i)^let me .*?:?\s*`),
	regexp.MustCompile(`(?i)^i'll .*?:?\s*`),
	regexp.MustCompile(`(?i)^your blog post .*?:?\s*`),
	regexp.MustCompile(`(?i)^the blog post .*?:?\s*`),
	regexp.MustCompile(`(?i)^this blog post .*?:?\s*`),
	regexp.MustCompile(`(?i)^the article .*?:?\s*`),
	regexp.MustCompile(`(?i)^your article .*?:?\s*`),
	regexp.MustCompile(`(?i)^this article .*?:?\s*`),
	regexp.MustCompile(`(?i)^you've written .*?:?\s*`),
	regexp.MustCompile(`(?i)^you've posted .*?:?\s*`),
	regexp.MustCompile(`(?i)^you've created .*?:?\s*`),
	regexp.MustCompile(`(?i)^you're sharing .*?:?\s*`),
	regexp.MustCompile(`(?i)^you're describing .*?:?\s*`),
	regexp.MustCompile(`(?i)^if i understand correctly.*?:?\s*`),
	regexp.MustCompile(`(?i)^if i understand.*?:?\s*`),
	regexp.MustCompile(`(?i)^the author appears.*?:?\s*`),
	regexp.MustCompile(`(?i)^here are some (possible|ways|options).*?:?\s*`),

	// Full descriptive opening sentences, removed including the period.
	regexp.MustCompile(`(?i)^you (describe|share|mention|discuss|talk about|wrote|written|posted|created|provided) .*?\.\s*`),
	regexp.MustCompile(`(?i)^your (blog post|article|post) (is|describes|shares|mentions|discusses|talks about) .*?\.\s*`),
	regexp.MustCompile(`(?i)^the (blog post|article|post) (is|describes|shares|mentions|discusses|talks about) .*?\.\s*`),
	regexp.MustCompile(`(?i)^it (seems|looks|appears) (like|that) (you've|you have) (shared|written|posted|created|described|provided) .*?\.\s*`),
	regexp.MustCompile(`(?i)^it (seems|looks|appears) (like|that) .*? (article|post|blog) .*?\.\s*`),
	regexp.MustCompile(`(?i)^it (seems|looks|appears) .*? (about|regarding|concerning) .*?\.\s*`),
	regexp.MustCompile(`(?i)^if (i|you) (understand|see) (correctly|right).*?\.\s*`),
	regexp.MustCompile(`(?i)^the (author|post|article) (appears|seems|looks) (to be|is).*?\.\s*`),
	regexp.MustCompile(`(?i)^here are (some|a few) (possible|ways|options|ideas).*?\.\s*`),
}

var (
	paragraphSplit  = regexp.MustCompile(`\n{2,}`)
	thirdPersonOpen = regexp.MustCompile(`(?i)^(it|if|the|here|you|your|this|that) (looks|seems|appears|is|are|was|were|has|have|contains|mentions|describes|talks about|discusses)`)
	firstPersonOpen = regexp.MustCompile(`(?i)^(i|my|me|we|our)`)

	mdBold = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	mdEm   = regexp.MustCompile(`\*([^*]+)\*`)

	leadingBoldLine  = regexp.MustCompile(`(?im)^(<strong>[^<]+</strong>)\s*\n+`)
	leadingH3        = regexp.MustCompile(`(?im)^<h3>.*?</h3>\s*`)
	boldLine         = regexp.MustCompile(`(?i)^<strong>([^<]+)</strong>$`)
	headerAttention  = regexp.MustCompile(`(?i)^(EXCLUSIVE|BREAKING|NEW|UPDATE|ALERT|LOOK|CHECK|SEE|READ|WATCH|LISTEN)`)
	firstBoldLine    = regexp.MustCompile(`(?i)^<strong>[^<]+</strong>\s*\n+`)
	lineSplit        = regexp.MustCompile(`\n+`)
	newlineRuns      = regexp.MustCompile(`\n+`)
	whitespaceRuns   = regexp.MustCompile(`\s+`)
	brTag            = regexp.MustCompile(`(?i)<br\s*/?>`)
	startsWithTag    = regexp.MustCompile(`(?i)^<[a-z]`)
	sceneTagSpacing  = regexp.MustCompile(`(?i)\[SCENE\s*:`)
	narrTagSpacing   = regexp.MustCompile(`(?i)\[NARRATION\s*:`)
	speakTagSpacing  = regexp.MustCompile(`(?i)\[SPEAK\s*:`)
	speakingTag      = regexp.MustCompile(`(?i)\[SPEAKING\s*:`)
	voiceTag         = regexp.MustCompile(`(?i)\[VOICE\s*:`)
	timingCueSpacing = regexp.MustCompile(`\[(\d+)\s*-\s*(\d+)s\]`)
)

// PostProcess cleans raw model output into final markup for the given
// profile. Deterministic, no I/O. Steps run in a fixed order: intro-phrase
// stripping, third-person paragraph filtering, markdown conversion, header
// removal, script tag normalization, single-line collapsing, and markup
// wrapping.
// Parameters:
//   - content: raw completion text.
//   - profile: platform profile selecting the processing branches.
// Returns:
//   - string: cleaned markup (or normalized script text for script profiles).
func PostProcess(content string, profile *domain.PlatformProfile) string {
	isScript := profile.IsScript()

	content = StripIntroPhrases(content)

	if !isScript {
		content = filterThirdPersonParagraphs(content)
	}

	content = strings.TrimSpace(content)
	content = convertMarkdownEmphasis(content)

	if profile.AvoidHeaderGeneration && !isScript {
		content = removeRedundantHeaders(content)
	}

	if isScript {
		content = normalizeScriptTags(content)
	}

	if profile.SingleLineContent && !isScript {
		content = newlineRuns.ReplaceAllString(content, " ")
		content = brTag.ReplaceAllString(content, " ")
		content = whitespaceRuns.ReplaceAllString(content, " ")
		content = strings.TrimSpace(content)
	}

	if content != "" && !startsWithTag.MatchString(content) && !isScript {
		content = wrapParagraphs(content)
	} else if isScript {
		content = strings.ReplaceAll(content, "\n", "<br>")
	}

	return content
}

// StripIntroPhrases removes each intro-rule's first match from the start of
// the text, applying the rules in order. Exported so the rule table can be
// exercised directly in tests.
func StripIntroPhrases(content string) string {
	for _, rule := range introRules {
		if loc := rule.FindStringIndex(content); loc != nil {
			content = content[:loc[0]] + content[loc[1]:]
		}
	}
	return content
}

// filterThirdPersonParagraphs drops paragraphs that open with third-person
// descriptive language. A paragraph that also opens with a first-person word
// is kept; the first-person check wins.
func filterThirdPersonParagraphs(content string) string {
	paragraphs := paragraphSplit.Split(content, -1)
	kept := paragraphs[:0]
	for _, para := range paragraphs {
		trimmed := strings.TrimSpace(para)
		if thirdPersonOpen.MatchString(trimmed) && !firstPersonOpen.MatchString(trimmed) {
			continue
		}
		kept = append(kept, para)
	}
	return strings.Join(kept, "\n\n")
}

// convertMarkdownEmphasis turns **bold** into <strong> and *emphasis* into
// <em>. Bold runs convert first; any leftover double asterisks are masked so
// they are never misread as emphasis markers.
func convertMarkdownEmphasis(content string) string {
	content = mdBold.ReplaceAllString(content, "<strong>$1</strong>")
	content = strings.ReplaceAll(content, "**", "\x00")
	content = mdEm.ReplaceAllString(content, "<em>$1</em>")
	return strings.ReplaceAll(content, "\x00", "**")
}

// removeRedundantHeaders strips a leading bold or <h3> line that looks like a
// header (short, all-caps, attention word, or trailing colon/bang), and any
// bold line whose text is repeated by the following line. If stripping leaves
// almost nothing of a non-trivial input, the original is restored with only
// the first bold line removed.
func removeRedundantHeaders(content string) string {
	original := content

	content = leadingBoldLine.ReplaceAllString(content, "")
	content = leadingH3.ReplaceAllString(content, "")

	lines := lineSplit.Split(content, -1)
	filtered := make([]string, 0, len(lines))
	removedFirstBold := false

	for i, raw := range lines {
		line := strings.TrimSpace(raw)

		if m := boldLine.FindStringSubmatch(line); m != nil {
			headerText := strings.TrimSpace(m[1])

			atTop := i == 0 || (i == 1 && strings.TrimSpace(lines[0]) == "")
			if atTop && looksLikeHeader(headerText) {
				removedFirstBold = true
				continue
			}

			if i < len(lines)-1 {
				nextLine := strings.ToLower(StripTags(strings.TrimSpace(lines[i+1])))
				headerLower := strings.ToLower(headerText)
				if len(headerLower) > 10 {
					prefixLen := len(headerLower)
					if prefixLen > 40 {
						prefixLen = 40
					}
					if strings.Contains(nextLine, headerLower[:prefixLen]) {
						continue
					}
				}
			}
		}

		if removedFirstBold && i == len(filtered) && line == "" {
			continue
		}

		filtered = append(filtered, raw)
	}

	content = strings.TrimSpace(strings.Join(filtered, "\n"))

	// Safety fallback so aggressive removal cannot gut real content
	if len(content) < 50 && len(original) > 100 {
		content = firstBoldLine.ReplaceAllString(original, "")
	}

	return content
}

func looksLikeHeader(text string) bool {
	if len(text) >= 80 {
		return false
	}
	return text == strings.ToUpper(text) ||
		headerAttention.MatchString(text) ||
		strings.HasSuffix(text, ":") ||
		strings.HasSuffix(text, "!")
}

// normalizeScriptTags canonicalizes scene/narration/speak tag spellings and
// timing-cue spacing, and wraps tagless output in a fallback envelope.
func normalizeScriptTags(content string) string {
	content = sceneTagSpacing.ReplaceAllString(content, "[SCENE:")
	content = narrTagSpacing.ReplaceAllString(content, "[NARRATION:")
	content = speakTagSpacing.ReplaceAllString(content, "[SPEAK:")
	content = speakingTag.ReplaceAllString(content, "[SPEAK:")
	content = voiceTag.ReplaceAllString(content, "[SPEAK:")
	content = timingCueSpacing.ReplaceAllString(content, "[$1-$2s]")

	if !strings.Contains(content, "[SCENE") && !strings.Contains(content, "[SPEAK") && !strings.Contains(content, "[NARRATION") {
		content = "[VIDEO SCRIPT FORMAT]\n\n" + content + "\n\n[Note: Format as script with [SCENE:] and [SPEAK:] tags]"
	}

	return content
}

var sentenceEnd = regexp.MustCompile(`[.!?]$`)

// wrapParagraphs wraps plain-text output in block markup: short paragraphs
// without closing punctuation become <h3> headings, everything else <p>,
// with intra-paragraph newlines converted to <br>.
func wrapParagraphs(content string) string {
	var b strings.Builder
	for _, para := range strings.Split(content, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		inner := strings.ReplaceAll(para, "\n", "<br>")
		if len([]rune(para)) < 100 && !sentenceEnd.MatchString(para) {
			b.WriteString("<h3>" + inner + "</h3>")
		} else {
			b.WriteString("<p>" + inner + "</p>")
		}
	}
	return b.String()
}
