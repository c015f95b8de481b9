package domain

import (
	"regexp"
	"sort"
	"time"
)

// ProfileType discriminates which field subset of a PlatformProfile applies.
type ProfileType string

const (
	ProfileTypeSocial ProfileType = "social"
	ProfileTypeScript ProfileType = "script"
)

// PlatformKeyPattern validates user-chosen platform keys.
var PlatformKeyPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,50}$`)

// PlatformProfile describes how promotional content is generated for one
// destination. Profiles are shared globally (not per user) and keyed by the
// platform string.
type PlatformProfile struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Platform    string      `gorm:"type:text;not null;uniqueIndex:idx_profiles_platform" json:"platform"`
	DisplayName string      `gorm:"type:text" json:"display_name"`
	ProfileType ProfileType `gorm:"type:text;default:social" json:"profile_type"`

	// Social fields. Lengths are text-only character counts (markup stripped).
	MaxLength             int    `json:"max_length,omitempty"`
	MinLength             int    `json:"min_length,omitempty"`
	HookLength            int    `json:"hook_length,omitempty"`
	IncludeHashtags       bool   `json:"include_hashtags"`
	HashtagCount          int    `json:"hashtag_count"`
	AvoidHeaderGeneration bool   `json:"avoid_header_generation"`
	SingleLineContent     bool   `json:"single_line_content"`

	// Script fields.
	MinDurationSeconds int  `json:"min_duration_seconds,omitempty"`
	MaxDurationSeconds int  `json:"max_duration_seconds,omitempty"`
	MinScenes          int  `json:"min_scenes,omitempty"`
	MaxScenes          int  `json:"max_scenes,omitempty"`
	NarratorOnCamera   bool `json:"narrator_on_camera"`

	// Legacy flag, implies ProfileTypeScript when set.
	IsVideoScript bool `json:"is_video_script"`

	// Shared fields.
	Tone               string `gorm:"type:text" json:"tone,omitempty"`
	Style              string `gorm:"type:text" json:"style,omitempty"`
	CustomInstructions string `gorm:"type:text" json:"custom_instructions,omitempty"`
	UTMEnabled         bool   `gorm:"default:true" json:"utm_enabled"`
	UTMSource          string `gorm:"type:text" json:"utm_source,omitempty"`
	Enabled            bool   `gorm:"default:true" json:"enabled"`
	SortOrder          int    `gorm:"default:0" json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for PlatformProfile.
func (PlatformProfile) TableName() string {
	return "platform_profiles"
}

// IsScript reports whether the script generation branch applies.
// The legacy IsVideoScript flag implies a script profile.
func (p *PlatformProfile) IsScript() bool {
	return p.ProfileType == ProfileTypeScript || p.IsVideoScript
}

// EffectiveUTMSource returns the UTM source for this profile, defaulting to
// the platform key.
func (p *PlatformProfile) EffectiveUTMSource() string {
	if p.UTMSource != "" {
		return p.UTMSource
	}
	return p.Platform
}

// SortProfiles orders profiles for display: enabled profiles first by
// sort_order, disabled profiles always last, also by sort_order.
func SortProfiles(profiles []PlatformProfile) {
	sort.SliceStable(profiles, func(i, j int) bool {
		if profiles[i].Enabled != profiles[j].Enabled {
			return profiles[i].Enabled
		}
		return profiles[i].SortOrder < profiles[j].SortOrder
	})
}
