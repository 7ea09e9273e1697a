package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solaceapp/solace-backend/internal/models"
)

func TestDetectRiskIndicatorsProlongedLowMood(t *testing.T) {
	moods := []models.MoodLog{
		moodAt(0, "😢", ""), moodAt(1, "😰", ""), moodAt(2, "😫", ""),
		moodAt(3, "😞", ""), moodAt(4, "😊", ""),
	}
	risks := DetectRiskIndicators(moods)

	require.Len(t, risks, 1)
	assert.Equal(t, "high", risks[0].Level)
	assert.Equal(t, "prolonged_low_mood", risks[0].Type)
}

func TestDetectRiskIndicatorsConcerningTrend(t *testing.T) {
	moods := []models.MoodLog{
		moodAt(0, "😢", ""), moodAt(1, "😰", ""), moodAt(2, "😫", ""),
		moodAt(3, "😊", ""), moodAt(4, "😊", ""),
	}
	risks := DetectRiskIndicators(moods)

	require.Len(t, risks, 1)
	assert.Equal(t, "moderate", risks[0].Level)
	assert.Equal(t, "concerning_trend", risks[0].Type)
}

func TestDetectRiskIndicatorsChronicStressAndSleep(t *testing.T) {
	moods := []models.MoodLog{
		moodAt(0, "😊", "Assessment: Stress: high, Sleep: poor"),
		moodAt(1, "😊", "Assessment: Stress: high, Sleep: poor"),
		moodAt(2, "😊", "Assessment: Stress: high, Sleep: poor"),
	}
	risks := DetectRiskIndicators(moods)

	types := make([]string, 0, len(risks))
	for _, r := range risks {
		types = append(types, r.Type)
	}
	assert.Contains(t, types, "chronic_stress")
	assert.Contains(t, types, "sleep_issues")
}

func TestDetectRiskIndicatorsCleanHistory(t *testing.T) {
	moods := []models.MoodLog{
		moodAt(0, "😊", ""), moodAt(1, "😊", ""), moodAt(2, "😊", ""),
		moodAt(3, "😊", ""), moodAt(4, "😊", ""),
	}
	assert.Empty(t, DetectRiskIndicators(moods))
}

func TestAnalyzeAdvancedRequiresFiveMoods(t *testing.T) {
	moods := []models.MoodLog{moodAt(0, "😊", ""), moodAt(1, "😊", "")}
	report := AnalyzeAdvanced(moods, nil)

	assert.Empty(t, report.PredictiveInsights)
	assert.Empty(t, report.RiskIndicators)
	assert.Empty(t, report.BehavioralTrends)
}

func TestPredictMoodTrajectoryImproving(t *testing.T) {
	// newest 5, oldest 1: delta 4 -> high-confidence improvement
	moods := []models.MoodLog{
		moodAt(0, "🤩", ""), moodAt(1, "😊", ""), moodAt(2, "😐", ""),
		moodAt(3, "😴", ""), moodAt(4, "😢", ""),
	}
	insights := predictMoodTrajectory(moods)

	require.Len(t, insights, 1)
	assert.Equal(t, "positive_trend", insights[0].Type)
	assert.Equal(t, "high", insights[0].Confidence)
}

func TestPredictMoodTrajectoryDeclining(t *testing.T) {
	// newest 3, oldest 5: delta -2 -> moderate-confidence decline
	moods := []models.MoodLog{
		moodAt(0, "😐", ""), moodAt(1, "😊", ""), moodAt(2, "🤩", ""),
	}
	insights := predictMoodTrajectory(moods)

	require.Len(t, insights, 1)
	assert.Equal(t, "declining_trend", insights[0].Type)
	assert.Equal(t, "moderate", insights[0].Confidence)
}

func TestPredictMoodTrajectoryStable(t *testing.T) {
	moods := []models.MoodLog{
		moodAt(0, "😊", ""), moodAt(1, "😐", ""), moodAt(2, "😊", ""),
	}
	insights := predictMoodTrajectory(moods)

	require.Len(t, insights, 1)
	assert.Equal(t, "stable_trend", insights[0].Type)
}

func TestBehavioralTrendsWeekOverWeek(t *testing.T) {
	moods := make([]models.MoodLog, 14)
	for i := 0; i < 7; i++ {
		moods[i] = moodAt(i, "😊", "") // current week avg 4
	}
	for i := 7; i < 14; i++ {
		moods[i] = moodAt(i, "😔", "") // previous week avg 2
	}
	trends := behavioralTrends(moods)

	types := make([]string, 0, len(trends))
	for _, tr := range trends {
		types = append(types, tr.Type)
	}
	assert.Contains(t, types, "improvement")
	assert.Contains(t, types, "consistency")
}

func TestAnalyzeAdvancedFullReportShape(t *testing.T) {
	moods := []models.MoodLog{
		moodAt(0, "😊", ""), moodAt(1, "😊", ""), moodAt(2, "😐", ""),
		moodAt(3, "😐", ""), moodAt(4, "😔", ""),
	}
	report := AnalyzeAdvanced(moods, nil)

	assert.NotNil(t, report.PredictiveInsights)
	assert.NotNil(t, report.CorrelationAnalysis)
	assert.NotNil(t, report.BehavioralTrends)
	assert.NotNil(t, report.RiskIndicators)
	assert.NotNil(t, report.WellnessOpportunities)
	assert.NotEmpty(t, report.PredictiveInsights)
}
