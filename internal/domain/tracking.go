package domain

import "time"

// TrackingURL maps a short code to a destination URL for click analytics.
type TrackingURL struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PostID      uint      `gorm:"index" json:"post_id"`
	Platform    string    `gorm:"type:text;not null" json:"platform"`
	ShortCode   string    `gorm:"type:text;not null;uniqueIndex:idx_tracking_short_code" json:"short_code"`
	OriginalURL string    `gorm:"type:text;not null" json:"original_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the database table name for TrackingURL.
func (TrackingURL) TableName() string {
	return "tracking_urls"
}

// TrackingClick records a single redirect through a tracking URL.
type TrackingClick struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	TrackingURLID uint      `gorm:"not null;index" json:"tracking_url_id"`
	IPAddress     string    `gorm:"type:text" json:"ip_address"`
	UserAgent     string    `gorm:"type:text" json:"user_agent"`
	Referer       string    `gorm:"type:text" json:"referer"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName returns the database table name for TrackingClick.
func (TrackingClick) TableName() string {
	return "tracking_clicks"
}

// PlatformClickStats aggregates click counts for one platform of a post.
type PlatformClickStats struct {
	Platform string `json:"platform"`
	Clicks   int64  `json:"clicks"`
}
