package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/solaceapp/solace-backend/internal/models"
)

var ErrNotFound = errors.New("record not found")

// MoodRepository persists mood logs, one per calendar day.
type MoodRepository struct {
	db *gorm.DB
}

func NewMoodRepository(db *gorm.DB) *MoodRepository {
	return &MoodRepository{db: db}
}

// ListRecent returns up to limit mood logs on or after since, newest first.
// A zero since means no lower bound; limit <= 0 means no cap.
func (r *MoodRepository) ListRecent(limit int, since time.Time) ([]models.MoodLog, error) {
	q := r.db.Order("logged_date DESC")
	if !since.IsZero() {
		q = q.Where("logged_date >= ?", since)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var logs []models.MoodLog
	if err := q.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *MoodRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.MoodLog{}).Count(&total).Error
	return total, err
}

func (r *MoodRepository) GetByDate(day time.Time) (*models.MoodLog, error) {
	var log models.MoodLog
	if err := r.db.Where("logged_date = ?", day).First(&log).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

// UpsertForDate creates the day's mood log, or replaces mood and note when an
// entry for that date already exists. The returned flag reports whether an
// existing entry was updated.
func (r *MoodRepository) UpsertForDate(day time.Time, mood, note string) (*models.MoodLog, bool, error) {
	var log models.MoodLog
	updated := false

	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("logged_date = ?", day).First(&log).Error
		switch {
		case err == nil:
			log.Mood = mood
			log.Note = note
			updated = true
			return tx.Save(&log).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			log = models.MoodLog{
				ID:         uuid.New(),
				Mood:       mood,
				Note:       note,
				LoggedDate: day,
			}
			return tx.Create(&log).Error
		default:
			return err
		}
	})
	if err != nil {
		return nil, false, err
	}
	return &log, updated, nil
}

func (r *MoodRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.MoodLog{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CleanupDuplicates removes older duplicate entries sharing a logged_date,
// keeping the newest per day. Returns the number of rows removed.
func (r *MoodRepository) CleanupDuplicates() (int64, error) {
	var removed int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var logs []models.MoodLog
		if err := tx.Order("logged_date DESC, created_at DESC").Find(&logs).Error; err != nil {
			return err
		}

		seen := make(map[string]bool)
		var stale []uuid.UUID
		for _, log := range logs {
			key := log.LoggedDate.Format("2006-01-02")
			if seen[key] {
				stale = append(stale, log.ID)
				continue
			}
			seen[key] = true
		}

		if len(stale) == 0 {
			return nil
		}
		result := tx.Delete(&models.MoodLog{}, "id IN ?", stale)
		removed = result.RowsAffected
		return result.Error
	})
	return removed, err
}
