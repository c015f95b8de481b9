package domain

import "time"

// Well-known setting keys for the LLM provider gate.
const (
	SettingOllamaEnabled = "ollama_enabled"
	SettingOllamaURL     = "ollama_url"
	SettingOllamaModel   = "ollama_model"
)

// Setting is a key/value system setting row.
type Setting struct {
	Key         string    `gorm:"type:text;primaryKey" json:"key"`
	Value       string    `gorm:"type:text" json:"value"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the database table name for Setting.
func (Setting) TableName() string {
	return "system_settings"
}
