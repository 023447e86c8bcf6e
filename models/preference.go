// Preference rows + the render/toggle DTOs.

package models

// Preference is one per-viewer key/value row. The rambutan plugin owns two
// keys per viewer (rambutanmode and rambutanmode-enabled-at) but the table is
// generic on purpose -- the host platform stores other prefs the same way.
type Preference struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"index:idx_pref_user_key,unique;not null" json:"user_id"` //composite unique with Key
	Key    string `gorm:"size:64;index:idx_pref_user_key,unique;not null" json:"key"`
	Value  string `gorm:"size:255" json:"value"` // everything stored as string; callers parse
}

// ToggleResponse is what the preference endpoints return: the stored state
// plus the live time-gate verdict (the stored flag can outlive its own
// expiry, so "enabled" and "active" are not the same thing).
type ToggleResponse struct {
	Enabled   bool  `json:"enabled"`              // stored flag as-is
	EnabledAt int64 `json:"enabled_at,omitempty"` // epoch seconds; 0 = absent
	Active    bool  `json:"active"`               // time-gate evaluation right now
}

//payload for flipping the toggle
type ToggleRequest struct {
	Enabled *bool `json:"enabled" binding:"required"` // pointer so "false" still binds
}

// RenderRequest carries the raw content source to expand.
type RenderRequest struct {
	Content string `json:"content" binding:"required"`
}

// RenderResponse is the expanded output plus cache/UI metadata.
type RenderResponse struct {
	Output         string `json:"output"`          // content with directives expanded
	Cached         bool   `json:"cached"`          // true when served from the render cache
	RambutanActive bool   `json:"rambutan_active"` // the partition this render belongs to
	ShowToggle     bool   `json:"show_toggle"`     // UI hint: widget only for registered viewers
}
