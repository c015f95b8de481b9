// Package pipeline turns raw blog content plus a platform profile into a
// finished promotional artifact: prompt construction, post-processing of
// model output, length enforcement, hashtag appending, and quality guards.
// All functions are pure string transforms; I/O stays in the service layer.
package pipeline

import (
	"fmt"
	"strings"

	"github.com/jpalmer/promoboost/internal/domain"
	"github.com/jpalmer/promoboost/internal/prompts"
)

// Script defaults applied when the profile leaves duration or scene bounds
// unset.
const (
	defaultMinDurationSeconds = 30
	defaultMaxDurationSeconds = 60
	defaultMinScenes          = 2
	defaultMaxScenes          = 5
)

// BuildPrompt assembles the full generation prompt for one platform.
// Deterministic, no I/O.
// Parameters:
//   - blogContent: source blog post markup.
//   - profile: platform profile controlling instructions and constraints.
// Returns:
//   - string: complete prompt text ending with the blog content.
func BuildPrompt(blogContent string, profile *domain.PlatformProfile) string {
	var b strings.Builder

	fmt.Fprintf(&b, prompts.CoreHeader, profile.Platform)
	b.WriteString(prompts.CoreInstructions)

	if profile.AvoidHeaderGeneration {
		b.WriteString(prompts.AvoidHeaderInstruction)
	}

	if profile.MaxLength > 1000 {
		fmt.Fprintf(&b, prompts.LongPostGuidance, profile.MaxLength)
	}

	if profile.MaxLength > 0 {
		fmt.Fprintf(&b, prompts.MaxLengthConstraint, profile.MaxLength, profile.MaxLength)
	}
	if profile.MinLength > 0 {
		fmt.Fprintf(&b, prompts.MinLengthConstraint, profile.MinLength)
	}
	if profile.HookLength > 0 {
		fmt.Fprintf(&b, prompts.HookLengthConstraint, profile.HookLength, profile.HookLength, profile.HookLength)
	}

	if profile.Tone != "" {
		fmt.Fprintf(&b, "Tone: %s. ", profile.Tone)
	}
	if profile.Style != "" {
		fmt.Fprintf(&b, "Style: %s. ", profile.Style)
	}

	if profile.IsScript() {
		writeScriptInstructions(&b, profile)
	} else if guidance, ok := prompts.PlatformGuidance[profile.Platform]; ok {
		b.WriteString(guidance)
	}

	if profile.CustomInstructions != "" {
		fmt.Fprintf(&b, prompts.CustomInstructions, profile.CustomInstructions)
	}

	fmt.Fprintf(&b, prompts.BlogContentFooter, blogContent)

	return b.String()
}

func writeScriptInstructions(b *strings.Builder, profile *domain.PlatformProfile) {
	minDuration := profile.MinDurationSeconds
	if minDuration == 0 {
		minDuration = defaultMinDurationSeconds
	}
	maxDuration := profile.MaxDurationSeconds
	if maxDuration == 0 {
		maxDuration = defaultMaxDurationSeconds
	}
	minScenes := profile.MinScenes
	if minScenes == 0 {
		minScenes = defaultMinScenes
	}
	maxScenes := profile.MaxScenes
	if maxScenes == 0 {
		maxScenes = defaultMaxScenes
	}

	fmt.Fprintf(b, prompts.ScriptRequirements, minDuration, maxDuration, minScenes, maxScenes)

	visuals := prompts.ScriptVisualsVoiceover
	if profile.NarratorOnCamera {
		b.WriteString(prompts.ScriptNarratorOnCamera)
		visuals = prompts.ScriptVisualsOnCamera
	} else {
		b.WriteString(prompts.ScriptNarratorVoiceover)
	}

	b.WriteString(prompts.ScriptFormattingRules)
	fmt.Fprintf(b, prompts.ScriptExample, visuals[0], visuals[1], visuals[2])
}
