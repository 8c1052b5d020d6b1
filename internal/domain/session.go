package domain

import "time"

// ContentSession tracks which content fragments have already been shown for a
// given sender/receiver/relationship combination, so repeated generations can
// bias away from repeats. Its ID is a stable one-way hash of the lower-cased
// identity triple; see service.SessionKey.
//
// The session is an enhancement, not a correctness requirement: when it
// cannot be read or written, generation degrades to uniform random selection.
type ContentSession struct {
	ID              string      `gorm:"type:text;primaryKey" json:"id"`
	SenderName      string      `gorm:"type:text;not null" json:"sender_name"`
	ReceiverName    string      `gorm:"type:text;not null" json:"receiver_name"`
	Relationship    string      `gorm:"type:text;not null" json:"relationship"`
	Tone            string      `gorm:"type:text" json:"tone,omitempty"`
	UsedQuotes      StringArray `gorm:"type:text" json:"used_quotes"`
	UsedNotes       StringArray `gorm:"type:text" json:"used_notes"`
	UsedTransitions StringArray `gorm:"type:text" json:"used_transitions"`
	CreatedAt       time.Time   `json:"created_at"`
	LastUsedAt      time.Time   `json:"last_used_at"`
}

// TableName returns the database table name for ContentSession.
// Parameters: none.
// Returns:
//   - string: table name for GORM mapping.
func (ContentSession) TableName() string {
	return "content_sessions"
}
