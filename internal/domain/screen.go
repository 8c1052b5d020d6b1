package domain

import "time"

// ScreenType classifies one output screen of an assembled message.
// Values are derived positionally during assembly; any screen that receives
// an image is forced to ScreenTypePhoto.
type ScreenType string

const (
	ScreenTypePersonal ScreenType = "personal_message"
	ScreenTypeIntro    ScreenType = "intro"
	ScreenTypeContent  ScreenType = "content"
	ScreenTypeMemory   ScreenType = "memory"
	ScreenTypePhoto    ScreenType = "photo"
	ScreenTypeFinal    ScreenType = "final"
)

// MessageScreen is one persisted screen of an assembled message, ordered by
// Index within its message. Immutable once written; regeneration replaces the
// whole set for a message.
type MessageScreen struct {
	ID         string      `gorm:"type:text;primaryKey" json:"id"`
	MessageID  string      `gorm:"type:text;not null;index:idx_screens_message,unique,composite:msg_idx" json:"message_id"`
	Index      int         `gorm:"not null;index:idx_screens_message,unique,composite:msg_idx;column:screen_index" json:"index"`
	Type       ScreenType  `gorm:"type:text;not null" json:"type"`
	Content    string      `gorm:"type:text" json:"content"`
	Lines      StringArray `gorm:"type:text" json:"lines"`
	HasImage   bool        `gorm:"default:false" json:"has_image"`
	ImageURL   string      `gorm:"type:text" json:"image_url,omitempty"`
	ImageIndex *int        `json:"image_index,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

// TableName returns the database table name for MessageScreen.
// Parameters: none.
// Returns:
//   - string: table name for GORM mapping.
func (MessageScreen) TableName() string {
	return "message_screens"
}
