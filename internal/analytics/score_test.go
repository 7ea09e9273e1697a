package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/solaceapp/solace-backend/internal/models"
)

var testToday = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func moodAt(daysAgo int, mood, note string) models.MoodLog {
	return models.MoodLog{
		Mood:       mood,
		Note:       note,
		LoggedDate: testToday.AddDate(0, 0, -daysAgo),
	}
}

func TestScoreMood(t *testing.T) {
	assert.Equal(t, 5, ScoreMood("🤩"))
	assert.Equal(t, 5, ScoreMood("🥰"))
	assert.Equal(t, 4, ScoreMood("😊"))
	assert.Equal(t, 3, ScoreMood("😐"))
	assert.Equal(t, 2, ScoreMood("😴"))
	assert.Equal(t, 1, ScoreMood("😢"))
}

func TestScoreMoodUnknownIsNeutral(t *testing.T) {
	assert.Equal(t, 3, ScoreMood("🦄"))
	assert.Equal(t, 3, ScoreMood(""))
	assert.Equal(t, 3, ScoreMood("happy"))
}

func TestScoreMoodTrimsWhitespace(t *testing.T) {
	assert.Equal(t, 4, ScoreMood(" 😊 "))
}

func TestMoodSets(t *testing.T) {
	assert.True(t, IsPositive("😊"))
	assert.True(t, IsPositive("🤩"))
	assert.False(t, IsPositive("😐"))

	assert.True(t, IsChallenging("😢"))
	assert.True(t, IsChallenging("😤"))
	assert.False(t, IsChallenging("😴"))
	assert.False(t, IsChallenging("😊"))
}
