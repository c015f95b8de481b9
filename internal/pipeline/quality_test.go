package pipeline

import (
	"strings"
	"testing"
)

func TestSimilarityRatio(t *testing.T) {
	tests := []struct {
		name      string
		original  string
		generated string
		want      float64
	}{
		{
			name:      "identical text",
			original:  "kubernetes deployment pipelines explained",
			generated: "kubernetes deployment pipelines explained",
			want:      1.0,
		},
		{
			name:      "no overlap",
			original:  "kubernetes deployment pipelines",
			generated: "baking sourdough bread",
			want:      0.0,
		},
		{
			name:      "half overlap",
			original:  "kubernetes deployment",
			generated: "kubernetes sourdough",
			want:      0.5,
		},
		{
			name:      "short words ignored",
			original:  "the cat sat",
			generated: "the dog ran",
			want:      0.0,
		},
		{
			name:      "markup stripped before comparison",
			original:  "<p>kubernetes</p>",
			generated: "<strong>kubernetes</strong>",
			want:      1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SimilarityRatio(tt.original, tt.generated); got != tt.want {
				t.Errorf("SimilarityRatio = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckQuality_SimilarityCTAAppended(t *testing.T) {
	original := "kubernetes deployment pipelines production rollouts monitoring"
	generated := "kubernetes deployment pipelines production rollouts monitoring"

	got, ratio := CheckQuality(original, generated, 600)

	if ratio <= 0.7 {
		t.Fatalf("expected high similarity, got %v", ratio)
	}
	if !strings.Contains(got, "Check out my full blog post") {
		t.Errorf("similarity CTA not appended: %q", got)
	}
}

func TestCheckQuality_SimilarityCTASkippedWhenCTAPresent(t *testing.T) {
	original := "kubernetes deployment pipelines production rollouts monitoring"
	generated := "kubernetes deployment pipelines production rollouts monitoring - read more!"

	got, _ := CheckQuality(original, generated, 600)

	if strings.Contains(got, "Check out my full blog post") {
		t.Errorf("similarity CTA appended despite existing CTA: %q", got)
	}
}

func TestCheckQuality_SimilarityGuardNeedsLongBudget(t *testing.T) {
	original := "kubernetes deployment pipelines production rollouts monitoring"

	got, _ := CheckQuality(original, original, 280)

	if got != original {
		t.Errorf("guard fired under the 500-char threshold: %q", got)
	}
}

func TestCheckQuality_LengthCTAAppended(t *testing.T) {
	generated := "something completely different with zero promotion inside"

	got, _ := CheckQuality("unrelated source words here", generated, 1500)

	if !strings.Contains(got, "Read my full blog post to discover more") {
		t.Errorf("length CTA not appended: %q", got)
	}
}

func TestCheckQuality_LengthCTASkippedWhenCTAPresent(t *testing.T) {
	generated := "something different, and you can learn more on my blog"

	got, _ := CheckQuality("unrelated source words here", generated, 1500)

	if strings.Contains(got, "Read my full blog post to discover more") {
		t.Errorf("length CTA appended despite learn-more phrase: %q", got)
	}
}

func TestCheckQuality_BothGuardsCanFire(t *testing.T) {
	// The similarity CTA contains "read", which satisfies the length guard,
	// so a near-copy with a large budget ends up with exactly one CTA. A
	// non-promotional near-copy wording that dodges the first guard's terms
	// still triggers the second.
	original := "kubernetes deployment pipelines production rollouts monitoring"

	got, _ := CheckQuality(original, original, 1500)

	similarityHits := strings.Count(got, "Check out my full blog post")
	lengthHits := strings.Count(got, "Read my full blog post to discover more")
	if similarityHits != 1 || lengthHits != 0 {
		t.Errorf("expected similarity CTA to satisfy the length guard, got %q", got)
	}
}
