package domain

import (
	"strings"
	"testing"
)

func TestPlatformKeyPattern(t *testing.T) {
	valid := []string{"facebook", "my-platform", "Platform_2", "x"}
	for _, key := range valid {
		if !PlatformKeyPattern.MatchString(key) {
			t.Errorf("%q should be a valid platform key", key)
		}
	}

	invalid := []string{"", "has space", "emoji💥", "a/b", "dot.com",
		strings.Repeat("z", 51)}
	for _, key := range invalid {
		if PlatformKeyPattern.MatchString(key) {
			t.Errorf("%q should be rejected", key)
		}
	}
}

func TestIsScript(t *testing.T) {
	if (&PlatformProfile{ProfileType: ProfileTypeSocial}).IsScript() {
		t.Errorf("social profile reported as script")
	}
	if !(&PlatformProfile{ProfileType: ProfileTypeScript}).IsScript() {
		t.Errorf("script profile not recognized")
	}
	if !(&PlatformProfile{ProfileType: ProfileTypeSocial, IsVideoScript: true}).IsScript() {
		t.Errorf("legacy video script flag ignored")
	}
}

func TestEffectiveUTMSource(t *testing.T) {
	p := &PlatformProfile{Platform: "facebook"}
	if got := p.EffectiveUTMSource(); got != "facebook" {
		t.Errorf("EffectiveUTMSource = %q", got)
	}
	p.UTMSource = "fb-page"
	if got := p.EffectiveUTMSource(); got != "fb-page" {
		t.Errorf("EffectiveUTMSource = %q", got)
	}
}

func TestSortProfiles(t *testing.T) {
	profiles := []PlatformProfile{
		{Platform: "c", Enabled: false, SortOrder: 0},
		{Platform: "b", Enabled: true, SortOrder: 2},
		{Platform: "a", Enabled: true, SortOrder: 1},
		{Platform: "d", Enabled: false, SortOrder: 5},
	}

	SortProfiles(profiles)

	want := []string{"a", "b", "c", "d"}
	for i, platform := range want {
		if profiles[i].Platform != platform {
			t.Errorf("position %d = %q, want %q", i, profiles[i].Platform, platform)
		}
	}
}
