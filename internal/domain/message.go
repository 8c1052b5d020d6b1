package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// MessageStatus represents the lifecycle status of a message record.
// Values include MessageStatusCreated and MessageStatusGenerated.
type MessageStatus string

const (
	MessageStatusCreated   MessageStatus = "created"
	MessageStatusGenerated MessageStatus = "generated"
)

// StringArray is a custom type for storing string arrays as JSON in the database.
type StringArray []string

// Value implements the driver.Valuer interface for database serialization.
// Parameters: none.
// Returns:
//   - driver.Value: JSON-encoded string representation of the slice.
//   - error: non-nil if marshaling fails.
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
// Parameters:
//   - value: raw database value to decode.
// Returns:
//   - error: non-nil if decoding fails or the type is unexpected.
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

// Message represents one user-created memory message and its generation state.
// The sender-supplied fields are free text from the UI; they are normalized
// into canonical content keys only at generation time.
type Message struct {
	ID             string        `gorm:"type:text;primaryKey" json:"id"`
	SenderName     string        `gorm:"type:text;not null" json:"sender_name"`
	ReceiverName   string        `gorm:"type:text;not null" json:"receiver_name"`
	Relationship   string        `gorm:"type:text;not null" json:"relationship"`
	ReceiverGender string        `gorm:"type:text" json:"receiver_gender"`
	Occasion       string        `gorm:"type:text" json:"occasion"`
	EmotionTag     string        `gorm:"type:text" json:"emotion_tag,omitempty"`
	TextContent    string        `gorm:"type:text" json:"text_content,omitempty"`
	ReceiverMemory string        `gorm:"type:text" json:"receiver_memory,omitempty"`
	Code           string        `gorm:"type:text;uniqueIndex:idx_messages_code,where:code <> ''" json:"code,omitempty"`
	Status         MessageStatus `gorm:"type:text;index:idx_messages_status;default:created" json:"status"`
	GeneratedAt    *time.Time    `json:"generated_at,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// TableName returns the database table name for Message.
// Parameters: none.
// Returns:
//   - string: table name for GORM mapping.
func (Message) TableName() string {
	return "messages"
}
