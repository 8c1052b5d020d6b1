package domain

import "time"

// MessagePhoto is one uploaded photo attached to a message. At most five
// photos are accepted per message; the cap is enforced at the upload
// boundary, not during assembly.
type MessagePhoto struct {
	ID         string    `gorm:"type:text;primaryKey" json:"id"`
	MessageID  string    `gorm:"type:text;not null;index:idx_photos_message" json:"message_id"`
	Position   int       `gorm:"not null" json:"position"`
	StorageKey string    `gorm:"type:text;not null" json:"storage_key"`
	URL        string    `gorm:"type:text;not null" json:"url"`
	Caption    string    `gorm:"type:text" json:"caption,omitempty"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Format     string    `gorm:"type:text" json:"format"`
	FileSize   int64     `json:"file_size"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the database table name for MessagePhoto.
// Parameters: none.
// Returns:
//   - string: table name for GORM mapping.
func (MessagePhoto) TableName() string {
	return "message_photos"
}

// MaxPhotosPerMessage is the hard cap on photos attached to one message.
const MaxPhotosPerMessage = 5
