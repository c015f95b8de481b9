package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// StringArray is a custom type for storing string arrays as JSON in the database.
type StringArray []string

// Value implements the driver.Valuer interface for database serialization.
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface for database deserialization.
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		str, ok := value.(string)
		if !ok {
			return errors.New("failed to scan StringArray")
		}
		bytes = []byte(str)
	}
	return json.Unmarshal(bytes, a)
}

// Post is a blog post, typed in or imported from a URL / Ghost site.
// Posts are shared across all users.
type Post struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	UserID        uint        `gorm:"index" json:"user_id"`
	Title         string      `gorm:"type:text;not null" json:"title"`
	Content       string      `gorm:"type:text;not null" json:"content"`
	SourceURL     string      `gorm:"type:text" json:"source_url,omitempty"`
	Hashtags      StringArray `gorm:"type:text" json:"hashtags"`
	FeaturedImage string      `gorm:"type:text" json:"featured_image,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// TableName returns the database table name for Post.
func (Post) TableName() string {
	return "posts"
}

// GeneratedContent is a finished promotional variant for one (post, platform)
// pair. Content is the final pipeline output including appended hashtags/CTA.
type GeneratedContent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_generated_post_platform" json:"post_id"`
	Platform  string    `gorm:"type:text;not null;uniqueIndex:idx_generated_post_platform" json:"platform"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for GeneratedContent.
func (GeneratedContent) TableName() string {
	return "generated_content"
}
