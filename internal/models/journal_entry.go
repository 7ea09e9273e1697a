package models

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry is a free-text journal record. Unlike MoodLog there is no
// uniqueness constraint on the entry date.
type JournalEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title     string    `gorm:"size:200" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	EntryDate time.Time `gorm:"type:date;not null;index" json:"entry_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
