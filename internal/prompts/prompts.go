package prompts

// ============================================================================
// Core Promotional Framing
// ============================================================================

// CoreHeader opens every prompt and fixes the author-voice framing. The %s
// verb slot takes the platform key.
const CoreHeader = `You are the AUTHOR of this blog post. Write a %s post PROMOTING your own blog post as if you wrote it yourself. CRITICAL INSTRUCTIONS - THIS IS A PROMOTION, NOT A COPY: `

// CoreInstructions are the numbered rules sent on every generation regardless
// of platform. Rule 9 is what the post-processor's intro-phrase stripping
// backs up when the model ignores it.
const CoreInstructions = `1. Write AS THE AUTHOR - use first person ("I", "my", "me"). Write as if YOU wrote the blog post and are now promoting it. This is YOUR content, YOUR experience, YOUR insights. ` +
	`2. DO NOT COPY THE FULL CONTENT. DO NOT REPRODUCE THE ENTIRE BLOG POST. This is a PROMOTIONAL TEASER that makes people want to read the full post. You are SELLING the blog post, not giving it away for free. ` +
	`3. DO NOT describe or summarize the post from an outside perspective. DO NOT use phrases like "It looks like", "It seems like", "You've provided", "The post is about", "If I understand correctly", "The author appears", "Here are some ways", or any third-person language. ` +
	`4. Create a PROMOTIONAL HOOK - start with the most compelling, interesting, or valuable insight from YOUR blog post. Use actual content/examples from the post, but DON'T give away everything. Create curiosity. Make it sound like YOU are excited to share YOUR knowledge. ` +
	`5. Use SPECIFIC details from the blog post - mention specific topics, tools, resources, or insights that are in the full post, but DON'T explain them fully. Tease the value. Don't be vague, but also don't give away the complete answer. ` +
	`6. Write with ENTHUSIASM - sound excited about sharing YOUR content. Use engaging, personal language. ` +
	`7. CREATE CURIOSITY GAPS - mention interesting points from the blog but leave readers wanting more. Say things like "I discovered X, Y, and Z" but don't fully explain them. Hint at valuable insights without revealing everything. ` +
	`8. Include MULTIPLE call-to-actions encouraging readers to read YOUR full post. For longer posts, include CTAs both in the middle and at the end (e.g., "Read my full post to learn more about...", "Check out the complete article on my blog to discover...", "Want to know how I did it? Read the full post..."). ` +
	`9. Output ONLY the promotional post content - start immediately with the hook. NO introductory phrases, NO "Here is", NO "I'll summarize", NO descriptions of what the post contains. Just write the promotional post itself. ` +
	`10. Format with HTML ONLY: use <strong>text</strong> for bold, <em>text</em> for italic, <h3>text</h3> for important subheadings, <ul><li>item</li></ul> for bullet lists, <p>text</p> for paragraphs, and <br> for line breaks. DO NOT use markdown syntax like **bold** or *italic* - use HTML tags only. ` +
	`11. Make it visually engaging with strategic use of bold text for key points and subheadings for structure. Always use <strong> tags for bold, never ** markdown syntax. `

// AvoidHeaderInstruction is appended when the profile asks to suppress
// redundant leading headers.
const AvoidHeaderInstruction = `12. CRITICAL: DO NOT create a header or title at the start that repeats information. DO NOT start with a bold header like "**EXCLUSIVE LOOK:**" or "**BREAKING:**" followed by the same information in the paragraph. Start directly with the content itself - jump straight into the hook without a separate header line. If you need emphasis, use bold within the paragraph text, not as a separate header above it. `

// LongPostGuidance is appended for platforms whose max length exceeds 1000
// characters.
const LongPostGuidance = `IMPORTANT FOR LONGER POSTS: Even though you have %d characters available, this is STILL a PROMOTION, not a copy. Use the extra space to: ` +
	`- Build more curiosity with multiple interesting points from the blog ` +
	`- Include multiple call-to-actions throughout the post ` +
	`- Share specific examples or insights that make people want to read more ` +
	`- Create anticipation for what's in the full post ` +
	`- DO NOT copy large sections of the original blog post. This is a TEASER that SELLS the full post. `

// ============================================================================
// Length and Hook Constraints
// ============================================================================

const MaxLengthConstraint = `CRITICAL: The post MUST be exactly %d characters or less (count only the visible text, not HTML tags). Do NOT exceed %d characters under any circumstances. `

const MinLengthConstraint = `The post should be at least %d characters (count only visible text). `

const HookLengthConstraint = `CRITICAL FOR ENGAGEMENT: Only the first %d characters are visible before users must click "more" to see the rest. The first %d characters MUST be extremely compelling, attention-grabbing, and make users want to read more. Start with your strongest hook, most interesting insight, or most valuable tip. Make those first %d characters count! `

// ============================================================================
// Video Script Format
// ============================================================================

// ScriptRequirements takes min duration, max duration, min scenes, max scenes.
const ScriptRequirements = `FORMAT AS A VIDEO SCRIPT: Create a video script that promotes YOUR blog post. ` + "\n\n" +
	`SCRIPT REQUIREMENTS: ` + "\n" +
	`- Total duration: %d to %d seconds ` + "\n" +
	`- Number of scenes: %d to %d scenes `

const ScriptNarratorOnCamera = "\n" + `- The narrator WILL BE ON CAMERA - write for a talking-head style with the presenter visible `

const ScriptNarratorVoiceover = "\n" + `- The narrator will be OFF CAMERA (voiceover) - write for b-roll/graphics with voiceover `

const ScriptFormattingRules = "\n\n" + `FORMATTING RULES - FOLLOW EXACTLY: ` + "\n" +
	`- Start each scene with [SCENE X: description] where X is the scene number ` + "\n" +
	`- Include timing for each scene like [0:00-0:05] ` + "\n" +
	`- Use [VISUAL: description] to describe what's shown on screen ` + "\n" +
	`- Use [NARRATION: "text"] for what the narrator says (include the quotes) ` + "\n" +
	`- The first scene (0-3 seconds) MUST have a hook that grabs attention immediately ` + "\n" +
	`- End with a clear call-to-action scene to read the full blog post ` + "\n" +
	`- Write narration in first person as the author promoting YOUR content `

// ScriptExample takes three visual descriptions, chosen by on-camera mode.
const ScriptExample = "\n\n" + `EXAMPLE FORMAT: ` + "\n\n" +
	`[SCENE 1: Hook] ` + "\n" +
	`[0:00-0:03] ` + "\n" +
	`[VISUAL: %s] ` + "\n" +
	`[NARRATION: "I just discovered something that changed everything..."] ` + "\n\n" +
	`[SCENE 2: Main Content] ` + "\n" +
	`[0:03-0:20] ` + "\n" +
	`[VISUAL: %s] ` + "\n" +
	`[NARRATION: "Here's what I learned..."] ` + "\n\n" +
	`[SCENE 3: Call to Action] ` + "\n" +
	`[0:20-0:30] ` + "\n" +
	`[VISUAL: %s] ` + "\n" +
	`[NARRATION: "Read my full post to learn more - link in bio!"] ` + "\n\n" +
	`Now create your script following this exact format: `

// Example visuals for the on-camera presenter style.
var ScriptVisualsOnCamera = [3]string{
	"Presenter looking excited at camera",
	"Presenter explaining with hand gestures",
	"Presenter pointing to link/bio area",
}

// Example visuals for the voiceover style.
var ScriptVisualsVoiceover = [3]string{
	"Eye-catching title card or thumbnail",
	"B-roll footage or graphics showing key points",
	"Blog post title with link overlay",
}

// ============================================================================
// Platform Guidance
// ============================================================================

// PlatformGuidance holds extra per-platform coaching for non-script profiles.
// Platforms without an entry get no extra guidance.
var PlatformGuidance = map[string]string{
	"facebook":  `Write as the author promoting YOUR OWN post. Use first person ("I", "my"). Start with YOUR most interesting insight or experience from the post. Be enthusiastic and personal. Mention specific details from YOUR post. Then encourage readers to read YOUR full post. `,
	"linkedin":  `Write as the author promoting YOUR OWN post. Use first person ("I", "my"). Start with YOUR key professional insight or learning from the post. Sound like YOU are sharing YOUR expertise. Mention specific takeaways from YOUR post. Focus on the value readers will get from reading YOUR full post. `,
	"instagram": `Write as the author promoting YOUR OWN post. Use first person ("I", "my"). Start with YOUR most attention-grabbing insight or tip from the post. Be engaging and enthusiastic about YOUR content. Mention specific details. Then encourage followers to read YOUR full post. `,
	"email":     `Create an email newsletter preview as the author. Include a compelling subject line (on the first line, prefixed with "Subject: ") and a preview text (on the second line, prefixed with "Preview: "), followed by the email body written in first person promoting YOUR post with specific insights and encouraging clicking through to read YOUR full post. `,
}

// ============================================================================
// Prompt Closing
// ============================================================================

// CustomInstructions wraps per-profile operator instructions. Takes the raw
// instruction text.
const CustomInstructions = "\nAdditional instructions: %s\n"

// BlogContentFooter closes every prompt with the source material. Takes the
// blog content.
const BlogContentFooter = "\nHere's the blog post:\n\n%s"

// ============================================================================
// Hashtag Generation
// ============================================================================

// HashtagPrompt asks for a bare comma-separated hashtag list. Takes the
// requested count, then the plain-text blog content (caller truncates it).
const HashtagPrompt = `Based on the following blog post content, generate %d relevant hashtags/keywords that would be useful for social media promotion.

Requirements:
- Return ONLY a comma-separated list of hashtags/keywords
- No explanations, no prefixes, just the tags separated by commas
- Each tag should be 1-3 words, lowercase, no spaces (use camelCase or remove spaces)
- Focus on main topics, technologies, tools, concepts mentioned
- Make them specific and relevant to the content

Blog post content:
%s

Hashtags:`
