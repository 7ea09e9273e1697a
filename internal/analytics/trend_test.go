package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solaceapp/solace-backend/internal/models"
)

func TestAnalyzeTrendsNoData(t *testing.T) {
	report := AnalyzeTrends(nil, testToday)

	assert.Equal(t, "No data", report.OverallTrend)
	assert.Equal(t, "No mood data available. Start logging your moods to see trends!", report.Description)
	assert.Equal(t, 0, report.TrendPercentage)
	assert.Empty(t, report.WeeklyBreakdown)
	assert.Empty(t, report.MoodDistribution)
}

func TestAnalyzeTrendsSkipsEmptyMoodTokens(t *testing.T) {
	samples := []models.MoodLog{
		moodAt(0, "😊", ""),
		moodAt(1, "", ""),
		moodAt(2, "  ", ""),
	}
	report := AnalyzeTrends(samples, testToday)
	assert.Equal(t, 1, report.TotalEntries)
}

func TestAnalyzeTrendsNeutralBand(t *testing.T) {
	// scores 4, 4, 3, 2, 1 -> avg 2.8
	samples := []models.MoodLog{
		moodAt(0, "😊", ""),
		moodAt(1, "😌", ""),
		moodAt(2, "😐", ""),
		moodAt(3, "😴", ""),
		moodAt(4, "😢", ""),
	}
	report := AnalyzeTrends(samples, testToday)

	assert.Equal(t, "Neutral", report.OverallTrend)
	assert.Equal(t, "Balanced mood pattern. Consider activities to boost wellbeing. Average: 2.8/5.0", report.Description)
	assert.Equal(t, 2.8, report.AverageScore)
	assert.Equal(t, 56, report.TrendPercentage)
	assert.Equal(t, 5, report.TotalEntries)

	require.Len(t, report.WeeklyBreakdown, 1)
	bucket := report.WeeklyBreakdown[0]
	assert.Equal(t, "Week 4", bucket.Week)
	assert.Equal(t, 5, bucket.EntriesCount)
	assert.Equal(t, 2.8, bucket.AverageScore)
}

func TestAnalyzeTrendsExcellentBand(t *testing.T) {
	// scores 5, 5, 4, 4, 3 -> avg 4.2
	samples := []models.MoodLog{
		moodAt(0, "🤩", ""),
		moodAt(1, "🥰", ""),
		moodAt(2, "😊", ""),
		moodAt(3, "😎", ""),
		moodAt(4, "😐", ""),
	}
	report := AnalyzeTrends(samples, testToday)

	assert.Equal(t, "Excellent", report.OverallTrend)
	assert.Equal(t, "Outstanding mood trend! You're thriving with an average score of 4.2/5.0", report.Description)
	assert.Equal(t, 84, report.TrendPercentage)
}

func TestTrendBands(t *testing.T) {
	cases := []struct {
		avg  float64
		want string
	}{
		{4.0, "Excellent"},
		{3.5, "Very Positive"},
		{3.0, "Positive"},
		{2.5, "Neutral"},
		{2.0, "Needs Support"},
		{1.9, "Requires Attention"},
	}
	for _, tc := range cases {
		label, _ := trendBand(tc.avg)
		assert.Equal(t, tc.want, label, "avg %.1f", tc.avg)
	}
}

func TestWeeklyBreakdownSkipsEmptyWeeksAndLabels(t *testing.T) {
	// entries this week and three weeks back, nothing in between
	samples := []models.MoodLog{
		moodAt(1, "😊", ""),
		moodAt(2, "😊", ""),
		moodAt(16, "😢", ""),
	}
	report := AnalyzeTrends(samples, testToday)

	require.Len(t, report.WeeklyBreakdown, 2)
	assert.Equal(t, "Week 4", report.WeeklyBreakdown[0].Week)
	assert.Equal(t, "Week 2", report.WeeklyBreakdown[1].Week)

	start := DateOnly(testToday).AddDate(0, 0, -7)
	end := DateOnly(testToday)
	assert.Equal(t, fmt.Sprintf("%s - %s", start.Format("01/02"), end.Format("01/02")), report.WeeklyBreakdown[0].DateRange)
}

func TestAnalyzeTrendsAssessmentInsights(t *testing.T) {
	// most-recent-first: energy high then low, so last parsed < first and the
	// trend stays stable; sleep goes poor then excellent -> improving
	samples := []models.MoodLog{
		moodAt(0, "😊", "Assessment: Energy: high, Sleep: poor"),
		moodAt(1, "😐", "Assessment: Energy: low, Sleep: excellent"),
	}
	report := AnalyzeTrends(samples, testToday)

	energy, ok := report.AssessmentInsights[FactorEnergy]
	require.True(t, ok)
	assert.Equal(t, 2.0, energy.Average)
	assert.Equal(t, "stable", energy.Trend)
	assert.Equal(t, 2, energy.Count)

	sleep, ok := report.AssessmentInsights[FactorSleep]
	require.True(t, ok)
	assert.Equal(t, "improving", sleep.Trend)
}

func TestAnalyzeTrendsMoodDistribution(t *testing.T) {
	samples := []models.MoodLog{
		moodAt(0, "😊", ""),
		moodAt(1, "😊", ""),
		moodAt(2, "😢", ""),
	}
	report := AnalyzeTrends(samples, testToday)

	assert.Equal(t, map[string]int{"😊": 2, "😢": 1}, report.MoodDistribution)
}
