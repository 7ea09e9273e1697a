package analytics

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/solaceapp/solace-backend/internal/models"
)

// WeeklyBucket aggregates moods over one 7-day window.
type WeeklyBucket struct {
	Week         string  `json:"week"`
	AverageScore float64 `json:"average_score"`
	EntriesCount int     `json:"entries_count"`
	DateRange    string  `json:"date_range"`
}

// FactorInsight summarizes one assessment factor across recent samples.
type FactorInsight struct {
	Average float64 `json:"average"`
	Trend   string  `json:"trend"`
	Count   int     `json:"count"`
}

// TrendReport is the full mood trend breakdown returned verbatim to the
// caller.
type TrendReport struct {
	OverallTrend       string                   `json:"overall_trend"`
	Description        string                   `json:"description"`
	TrendPercentage    int                      `json:"trend_percentage"`
	WeeklyBreakdown    []WeeklyBucket           `json:"weekly_breakdown"`
	AssessmentInsights map[string]FactorInsight `json:"assessment_insights"`
	MoodDistribution   map[string]int           `json:"mood_distribution"`
	TotalEntries       int                      `json:"total_entries"`
	AverageScore       float64                  `json:"average_score"`
}

// NoDataReport is the sentinel returned when there is nothing to analyze.
func NoDataReport() TrendReport {
	return TrendReport{
		OverallTrend:       "No data",
		Description:        "No mood data available. Start logging your moods to see trends!",
		TrendPercentage:    0,
		WeeklyBreakdown:    []WeeklyBucket{},
		AssessmentInsights: map[string]FactorInsight{},
		MoodDistribution:   map[string]int{},
	}
}

// ordinalFactors are the factors tracked in trend insights, in report order.
var ordinalFactors = []string{FactorEnergy, FactorStress, FactorSleep, FactorSocial}

// AnalyzeTrends scores the samples and produces the trend report. Samples
// are expected most-recent-first, as the store returns them.
func AnalyzeTrends(samples []models.MoodLog, today time.Time) TrendReport {
	var (
		total        int
		valid        int
		distribution = make(map[string]int)
		factorSeries = make(map[string][]int)
	)

	scores := make(map[int]int, len(samples)) // sample index -> score
	for i := range samples {
		mood := strings.TrimSpace(samples[i].Mood)
		if mood == "" {
			continue
		}
		score := ScoreMood(mood)
		scores[i] = score
		total += score
		valid++
		distribution[mood]++

		// Assessment factors, collected in scan order (most recent first).
		for factor, raw := range ParseAssessment(samples[i].Note) {
			if _, ok := factorOrdinals[factor]; ok {
				factorSeries[factor] = append(factorSeries[factor], FactorScore(factor, raw))
			}
		}
	}

	if valid == 0 {
		return NoDataReport()
	}

	avg := float64(total) / float64(valid)
	percentage := int(math.Round(math.Min(avg/5*100, 100)))

	report := TrendReport{
		TrendPercentage:    percentage,
		WeeklyBreakdown:    weeklyBreakdown(samples, scores, today),
		AssessmentInsights: factorInsights(factorSeries),
		MoodDistribution:   distribution,
		TotalEntries:       valid,
		AverageScore:       round1(avg),
	}
	report.OverallTrend, report.Description = trendBand(avg)
	return report
}

// trendBand maps the average score to its label and description. Bands are
// inclusive at the lower bound.
func trendBand(avg float64) (string, string) {
	switch {
	case avg >= 4.0:
		return "Excellent", fmt.Sprintf("Outstanding mood trend! You're thriving with an average score of %.1f/5.0", avg)
	case avg >= 3.5:
		return "Very Positive", fmt.Sprintf("Strong positive mood trend! Average score: %.1f/5.0", avg)
	case avg >= 3.0:
		return "Positive", fmt.Sprintf("Good mood stability with room for growth. Average score: %.1f/5.0", avg)
	case avg >= 2.5:
		return "Neutral", fmt.Sprintf("Balanced mood pattern. Consider activities to boost wellbeing. Average: %.1f/5.0", avg)
	case avg >= 2.0:
		return "Needs Support", fmt.Sprintf("Challenging period detected. Focus on self-care and support. Average: %.1f/5.0", avg)
	default:
		return "Requires Attention", fmt.Sprintf("Significant challenges present. Consider professional support. Average: %.1f/5.0", avg)
	}
}

// weeklyBreakdown buckets the scored samples into the trailing four 7-day
// windows. The most recent window is labeled "Week 4"; empty windows are
// skipped.
func weeklyBreakdown(samples []models.MoodLog, scores map[int]int, today time.Time) []WeeklyBucket {
	buckets := make([]WeeklyBucket, 0, 4)
	day := DateOnly(today)

	for week := 0; week < 4; week++ {
		start := day.AddDate(0, 0, -(week+1)*7)
		end := day.AddDate(0, 0, -week*7)

		sum, count := 0, 0
		for i := range samples {
			score, ok := scores[i]
			if !ok {
				continue
			}
			d := samples[i].Day()
			if d.Before(start) || d.After(end) {
				continue
			}
			sum += score
			count++
		}
		if count == 0 {
			continue
		}
		buckets = append(buckets, WeeklyBucket{
			Week:         fmt.Sprintf("Week %d", 4-week),
			AverageScore: round1(float64(sum) / float64(count)),
			EntriesCount: count,
			DateRange:    start.Format("01/02") + " - " + end.Format("01/02"),
		})
	}
	return buckets
}

// factorInsights reports average, trend and count per factor. The trend
// compares the last parsed value against the first in scan order.
func factorInsights(series map[string][]int) map[string]FactorInsight {
	insights := make(map[string]FactorInsight, len(series))
	for _, factor := range ordinalFactors {
		values := series[factor]
		if len(values) == 0 {
			continue
		}
		sum := 0
		for _, v := range values {
			sum += v
		}
		trend := "stable"
		if len(values) > 1 && values[len(values)-1] > values[0] {
			trend = "improving"
		}
		insights[factor] = FactorInsight{
			Average: round1(float64(sum) / float64(len(values))),
			Trend:   trend,
			Count:   len(values),
		}
	}
	return insights
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
