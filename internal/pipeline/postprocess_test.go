package pipeline

import (
	"strings"
	"testing"

	"github.com/jpalmer/promoboost/internal/domain"
)

func socialProfile(platform string) *domain.PlatformProfile {
	return &domain.PlatformProfile{
		Platform:    platform,
		ProfileType: domain.ProfileTypeSocial,
		Enabled:     true,
	}
}

func scriptProfile(platform string) *domain.PlatformProfile {
	return &domain.PlatformProfile{
		Platform:    platform,
		ProfileType: domain.ProfileTypeScript,
		Enabled:     true,
	}
}

func TestStripIntroPhrases(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "here is your post",
			input: "Here is your facebook post: The real content",
			want:  "The real content",
		},
		{
			name:  "here it is",
			input: "Here it is: My content",
			want:  "My content",
		},
		{
			name:  "descriptive opening sentence removed whole",
			input: "It seems that this article misses a point. Real hook.",
			want:  "Real hook.",
		},
		{
			name:  "clean content untouched",
			input: "I just shipped something big. Check it out",
			want:  "I just shipped something big. Check it out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripIntroPhrases(tt.input); got != tt.want {
				t.Errorf("StripIntroPhrases(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPostProcess_FirstPersonOverrideKeepsParagraph(t *testing.T) {
	// "It" satisfies the first-person prefix check, so the paragraph
	// survives the third-person filter
	input := "It seems like I discovered something amazing in Go runtimes.\n\nI wrote it all down."

	got := PostProcess(input, socialProfile("facebook"))

	if !strings.Contains(got, "discovered something amazing") {
		t.Errorf("first-person paragraph was removed: %q", got)
	}
}

func TestPostProcess_ThirdPersonParagraphRemoved(t *testing.T) {
	input := "I found three tricks that changed how I deploy.\n\nThis is a summary of the deployment strategies covered."

	got := PostProcess(input, socialProfile("facebook"))

	if strings.Contains(got, "deployment strategies") {
		t.Errorf("third-person paragraph survived: %q", got)
	}
	if !strings.Contains(got, "three tricks") {
		t.Errorf("promotional paragraph was removed: %q", got)
	}
}

func TestPostProcess_MarkdownConversion(t *testing.T) {
	got := PostProcess("**bold** and *italic* here.", socialProfile("facebook"))

	if !strings.Contains(got, "<strong>bold</strong>") {
		t.Errorf("bold not converted: %q", got)
	}
	if !strings.Contains(got, "<em>italic</em>") {
		t.Errorf("italic not converted: %q", got)
	}
	if strings.Contains(got, "*") {
		t.Errorf("asterisks left in output: %q", got)
	}
}

func TestPostProcess_HeaderRemovalSafetyNet(t *testing.T) {
	// Both bold lines look like headers; stripping them would leave nothing,
	// so the fallback restores everything except the first
	input := "<strong>BREAKING NEWS</strong>\n\n" +
		"<strong>CHECK OUT THESE FIVE DEPLOYMENT TRICKS THAT SAVED ME HOURS!</strong>"

	profile := socialProfile("facebook")
	profile.AvoidHeaderGeneration = true

	got := PostProcess(input, profile)

	if !strings.Contains(got, "DEPLOYMENT TRICKS") {
		t.Errorf("safety net failed, content gutted: %q", got)
	}
	if strings.Contains(got, "BREAKING NEWS") {
		t.Errorf("leading header should stay removed: %q", got)
	}
}

func TestPostProcess_HeaderRemoved(t *testing.T) {
	body := "I dug into connection pooling this week and found some surprising numbers worth sharing with everyone who runs Go services in production."
	input := "<strong>EXCLUSIVE LOOK:</strong>\n" + body

	profile := socialProfile("facebook")
	profile.AvoidHeaderGeneration = true

	got := PostProcess(input, profile)

	if strings.Contains(got, "EXCLUSIVE LOOK") {
		t.Errorf("header-like bold line not removed: %q", got)
	}
	if !strings.Contains(got, "connection pooling") {
		t.Errorf("body lost during header removal: %q", got)
	}
}

func TestPostProcess_ScriptTagNormalization(t *testing.T) {
	input := "[SCENE 1: Hook]\n[VOICE: \"hello\"]\n[SPEAKING: \"world\"]\n[NARRATION : \"closing\"]"

	got := PostProcess(input, scriptProfile("youtube"))

	if strings.Contains(got, "[VOICE:") || strings.Contains(got, "[SPEAKING:") {
		t.Errorf("voice/speaking variants not canonicalized: %q", got)
	}
	if strings.Count(got, "[SPEAK:") != 2 {
		t.Errorf("expected both variants to become [SPEAK:, got %q", got)
	}
	if !strings.Contains(got, "[NARRATION:") {
		t.Errorf("narration tag spacing not normalized: %q", got)
	}
}

func TestPostProcess_ScriptFallbackEnvelope(t *testing.T) {
	got := PostProcess("Just some prose with no script structure at all.", scriptProfile("youtube"))

	if !strings.Contains(got, "[VIDEO SCRIPT FORMAT]") {
		t.Errorf("expected fallback envelope for tagless script output: %q", got)
	}
}

func TestPostProcess_ScriptKeepsPlainStructure(t *testing.T) {
	input := "[SCENE 1: Hook]\n[NARRATION: \"hi\"]"
	got := PostProcess(input, scriptProfile("youtube"))

	if strings.Contains(got, "<p>") || strings.Contains(got, "<h3>") {
		t.Errorf("script output must not be wrapped in paragraph markup: %q", got)
	}
	if !strings.Contains(got, "<br>") {
		t.Errorf("script newlines should become <br>: %q", got)
	}
}

func TestPostProcess_SingleLineCollapse(t *testing.T) {
	profile := socialProfile("bluesky")
	profile.SingleLineContent = true

	got := PostProcess("First line.\n\nSecond line.\nThird line.", profile)

	if strings.Contains(got, "\n") {
		t.Errorf("newlines survived single-line mode: %q", got)
	}
	if strings.Contains(StripTags(got), "  ") {
		t.Errorf("whitespace runs survived single-line mode: %q", got)
	}
}

func TestPostProcess_ParagraphWrapping(t *testing.T) {
	input := "My Big Discovery\n\nI wrote up a full explanation of what I found, with plenty of detail, and it ends properly."

	got := PostProcess(input, socialProfile("facebook"))

	if !strings.Contains(got, "<h3>My Big Discovery</h3>") {
		t.Errorf("short unpunctuated paragraph should become heading: %q", got)
	}
	if !strings.Contains(got, "<p>I wrote up a full explanation") {
		t.Errorf("long paragraph should become <p>: %q", got)
	}
}

func TestPostProcess_AlreadyMarkupNotRewrapped(t *testing.T) {
	input := "<p>Already wrapped content that stays as is.</p>"
	got := PostProcess(input, socialProfile("facebook"))

	if strings.Contains(got, "<p><p>") {
		t.Errorf("markup input was double wrapped: %q", got)
	}
}
