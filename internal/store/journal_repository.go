package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/solaceapp/solace-backend/internal/models"
)

// JournalRepository persists free-form journal entries.
type JournalRepository struct {
	db *gorm.DB
}

func NewJournalRepository(db *gorm.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

func (r *JournalRepository) Create(entry *models.JournalEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	return r.db.Create(entry).Error
}

func (r *JournalRepository) Get(id uuid.UUID) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	if err := r.db.First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *JournalRepository) Update(entry *models.JournalEntry) error {
	result := r.db.Model(&models.JournalEntry{}).
		Where("id = ?", entry.ID).
		Updates(map[string]interface{}{
			"title":      entry.Title,
			"content":    entry.Content,
			"entry_date": entry.EntryDate,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *JournalRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.JournalEntry{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListRecent returns up to limit entries on or after since, newest first.
func (r *JournalRepository) ListRecent(limit int, since time.Time) ([]models.JournalEntry, error) {
	q := r.db.Order("entry_date DESC, created_at DESC")
	if !since.IsZero() {
		q = q.Where("entry_date >= ?", since)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var entries []models.JournalEntry
	if err := q.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *JournalRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.JournalEntry{}).Count(&total).Error
	return total, err
}
