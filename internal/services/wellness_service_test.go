package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solaceapp/solace-backend/internal/models"
)

var testToday = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

type stubMoodStore struct {
	moods []models.MoodLog
	err   error
}

func (s *stubMoodStore) ListRecent(limit int, since time.Time) ([]models.MoodLog, error) {
	if s.err != nil {
		return nil, s.err
	}
	if limit > 0 && len(s.moods) > limit {
		return s.moods[:limit], nil
	}
	return s.moods, nil
}

func (s *stubMoodStore) Count() (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return int64(len(s.moods)), nil
}

type stubJournalStore struct {
	entries []models.JournalEntry
	err     error
}

func (s *stubJournalStore) ListRecent(limit int, since time.Time) ([]models.JournalEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	if limit > 0 && len(s.entries) > limit {
		return s.entries[:limit], nil
	}
	return s.entries, nil
}

func (s *stubJournalStore) Count() (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return int64(len(s.entries)), nil
}

func newTestService(moods []models.MoodLog, journals []models.JournalEntry) *WellnessService {
	svc := NewWellnessService(&stubMoodStore{moods: moods}, &stubJournalStore{entries: journals})
	return svc.WithClock(func() time.Time { return testToday })
}

func moodAt(daysAgo int, mood string) models.MoodLog {
	day := time.Date(2025, 6, 15-daysAgo, 0, 0, 0, 0, time.UTC)
	return models.MoodLog{Mood: mood, LoggedDate: day, CreatedAt: day}
}

func journalAt(daysAgo int, content string) models.JournalEntry {
	day := time.Date(2025, 6, 15-daysAgo, 0, 0, 0, 0, time.UTC)
	return models.JournalEntry{Title: "entry", Content: content, EntryDate: day, CreatedAt: day}
}

func TestMoodTrendsNoData(t *testing.T) {
	svc := newTestService(nil, nil)
	report := svc.MoodTrends()

	assert.Equal(t, "No data", report.OverallTrend)
}

func TestMoodTrendsDegradesOnStoreError(t *testing.T) {
	svc := NewWellnessService(&stubMoodStore{err: errors.New("connection refused")}, &stubJournalStore{})
	svc.WithClock(func() time.Time { return testToday })

	report := svc.MoodTrends()
	assert.Equal(t, "No data", report.OverallTrend)
}

func TestMoodTrendsWithHistory(t *testing.T) {
	svc := newTestService([]models.MoodLog{
		moodAt(0, "😊"), moodAt(1, "😊"), moodAt(2, "🤩"), moodAt(3, "😊"), moodAt(4, "😐"),
	}, nil)

	report := svc.MoodTrends()
	assert.Equal(t, 5, report.TotalEntries)
	assert.Equal(t, "Excellent", report.OverallTrend)
}

func TestPatternsAlwaysReturnsSomething(t *testing.T) {
	svc := newTestService(nil, nil)
	assert.NotEmpty(t, svc.Patterns())
}

func TestAdvancedPatternsNeedsHistory(t *testing.T) {
	svc := newTestService([]models.MoodLog{moodAt(0, "😊")}, nil)

	report, message := svc.AdvancedPatterns()
	assert.Equal(t, "Need more data for advanced pattern analysis", message)
	assert.Empty(t, report.PredictiveInsights)
}

func TestAdvancedPatternsWithHistory(t *testing.T) {
	svc := newTestService([]models.MoodLog{
		moodAt(0, "😊"), moodAt(1, "😊"), moodAt(2, "😐"), moodAt(3, "😐"), moodAt(4, "😔"),
	}, nil)

	report, message := svc.AdvancedPatterns()
	assert.Empty(t, message)
	assert.NotEmpty(t, report.PredictiveInsights)
}

func TestRecommendationsNeverEmpty(t *testing.T) {
	svc := newTestService(nil, nil)
	recs := svc.Recommendations()

	assert.NotEmpty(t, recs)
	assert.LessOrEqual(t, len(recs), 6)
}

func TestDashboardTotalsAndStreak(t *testing.T) {
	moods := []models.MoodLog{
		moodAt(0, "😊"), moodAt(1, "😐"), moodAt(2, "😊"), moodAt(10, "😔"),
	}
	journals := []models.JournalEntry{journalAt(1, "good day"), journalAt(12, "older entry")}
	svc := newTestService(moods, journals)

	summary := svc.Dashboard()

	assert.Equal(t, 4, summary.Summary.TotalMoodLogs)
	assert.Equal(t, 2, summary.Summary.TotalJournalEntries)
	assert.Equal(t, 3, summary.Summary.RecentMoods)
	assert.Equal(t, 1, summary.Summary.RecentJournals)
	assert.Equal(t, 3, summary.ActivityStreak)
	assert.Equal(t, map[string]int{"😊": 2, "😐": 1, "😔": 1}, summary.MoodDistribution)
	assert.Equal(t, "2025-06-15T10:30:00Z", summary.LastUpdated)
}

func TestInsightsConsistentMoodPattern(t *testing.T) {
	moods := make([]models.MoodLog, 7)
	for i := range moods {
		moods[i] = moodAt(i*3, "😊")
	}
	svc := newTestService(moods, nil)

	insights := svc.Insights()
	require.Len(t, insights, 1)
	assert.Equal(t, "info", insights[0].Type)
	assert.Equal(t, "Consistent Mood Pattern", insights[0].Title)
}

func TestInsightsGreatConsistency(t *testing.T) {
	moods := []models.MoodLog{
		moodAt(0, "😊"), moodAt(1, "😐"), moodAt(2, "😎"), moodAt(3, "😊"), moodAt(4, "🤔"),
	}
	svc := newTestService(moods, nil)

	insights := svc.Insights()
	require.Len(t, insights, 1)
	assert.Equal(t, "achievement", insights[0].Type)
	assert.Equal(t, "Great Consistency!", insights[0].Title)
}

func TestInsightsEmptyWithoutHistory(t *testing.T) {
	svc := newTestService(nil, nil)
	assert.Empty(t, svc.Insights())
}

func TestRiskAssessmentNoData(t *testing.T) {
	svc := newTestService(nil, nil)
	risk := svc.RiskAssessment()

	assert.Equal(t, "low", risk.Level)
	assert.Equal(t, "No data available for risk assessment. Start journaling to get insights.", risk.Message)
	assert.Empty(t, risk.Factors)
}

func TestRiskAssessmentLimitedData(t *testing.T) {
	svc := newTestService(nil, []models.JournalEntry{journalAt(0, "a calm day outside")})
	risk := svc.RiskAssessment()

	assert.Equal(t, "low", risk.Level)
	assert.Contains(t, risk.Factors, "Limited data available - continue journaling for better insights")
}

func TestRiskAssessmentRegularHabit(t *testing.T) {
	journals := []models.JournalEntry{
		journalAt(0, "walked in the park"), journalAt(1, "cooked dinner"),
		journalAt(2, "read a book"), journalAt(3, "called a friend"),
		journalAt(4, "watched a movie"),
	}
	svc := newTestService(nil, journals)
	risk := svc.RiskAssessment()

	assert.Equal(t, "low", risk.Level)
	assert.Equal(t, "Great job maintaining consistent wellness tracking!", risk.Message)
	assert.Contains(t, risk.Factors, "Regular journaling habit detected")
}

func TestRiskAssessmentConcerningLanguage(t *testing.T) {
	journals := []models.JournalEntry{
		journalAt(0, "I feel hopeless about everything"),
		journalAt(1, "a normal day"),
	}
	svc := newTestService(nil, journals)
	risk := svc.RiskAssessment()

	assert.Equal(t, "high", risk.Level)
	assert.Equal(t, "Some of your recent entries contain concerning language. Please consider reaching out for support.", risk.Message)
	assert.Contains(t, risk.Factors, "Crisis indicators detected")
}

func TestExportDataIncludesEverything(t *testing.T) {
	moods := []models.MoodLog{moodAt(0, "😊")}
	journals := []models.JournalEntry{journalAt(0, "a fine day")}
	svc := newTestService(moods, journals)

	export := svc.ExportData()
	assert.Equal(t, "2025-06-15T10:30:00Z", export.ExportDate)
	assert.Len(t, export.MoodLogs, 1)
	assert.Len(t, export.JournalEntries, 1)
}

func TestExportDataEmptySlicesNotNil(t *testing.T) {
	svc := NewWellnessService(&stubMoodStore{err: errors.New("down")}, &stubJournalStore{err: errors.New("down")})
	svc.WithClock(func() time.Time { return testToday })

	export := svc.ExportData()
	assert.NotNil(t, export.MoodLogs)
	assert.NotNil(t, export.JournalEntries)
	assert.Empty(t, export.MoodLogs)
	assert.Empty(t, export.JournalEntries)
}
