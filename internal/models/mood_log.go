package models

import (
	"time"

	"github.com/google/uuid"
)

// MoodLog is a daily mood sample. At most one canonical row exists per
// calendar date; logging twice on the same day updates the existing row.
type MoodLog struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Mood       string    `gorm:"size:16;not null" json:"mood"`
	Note       string    `gorm:"type:text" json:"note"`
	LoggedDate time.Time `gorm:"type:date;not null;uniqueIndex" json:"logged_date"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Day returns the logged date truncated to midnight UTC.
func (m *MoodLog) Day() time.Time {
	y, mo, d := m.LoggedDate.UTC().Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}
