package analytics

import (
	"github.com/solaceapp/solace-backend/internal/models"
)

// RiskIndicator flags a concerning trend with a suggested response.
type RiskIndicator struct {
	Level          string `json:"level"`
	Type           string `json:"type"`
	Message        string `json:"message"`
	Recommendation string `json:"recommendation"`
}

// PredictiveInsight projects where the recent mood trajectory is heading.
type PredictiveInsight struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	Confidence string `json:"confidence"`
}

// BehavioralTrend describes a week-over-week or consistency observation.
type BehavioralTrend struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	Timeframe string `json:"timeframe"`
}

// WellnessOpportunity points at an underused part of the tracking routine.
type WellnessOpportunity struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Benefit string `json:"benefit"`
}

// AdvancedReport bundles the advanced pattern analysis.
type AdvancedReport struct {
	PredictiveInsights    []PredictiveInsight   `json:"predictive_insights"`
	CorrelationAnalysis   []Correlation         `json:"correlation_analysis"`
	BehavioralTrends      []BehavioralTrend     `json:"behavioral_trends"`
	RiskIndicators        []RiskIndicator       `json:"risk_indicators"`
	WellnessOpportunities []WellnessOpportunity `json:"wellness_opportunities"`
}

// EmptyAdvancedReport returns a report with all collections present but
// empty, so callers always serialize the full shape.
func EmptyAdvancedReport() AdvancedReport {
	return AdvancedReport{
		PredictiveInsights:    []PredictiveInsight{},
		CorrelationAnalysis:   []Correlation{},
		BehavioralTrends:      []BehavioralTrend{},
		RiskIndicators:        []RiskIndicator{},
		WellnessOpportunities: []WellnessOpportunity{},
	}
}

// DetectRiskIndicators scans recent moods and assessments for concerning
// trends. Moods are expected most-recent-first; each rule reads only the
// already-computed aggregates for its window.
func DetectRiskIndicators(moods []models.MoodLog) []RiskIndicator {
	risks := []RiskIndicator{}

	if len(moods) >= 5 {
		challenging := 0
		for i := 0; i < 5; i++ {
			if IsChallenging(moods[i].Mood) {
				challenging++
			}
		}
		if challenging >= 4 {
			risks = append(risks, RiskIndicator{
				Level:          "high",
				Type:           "prolonged_low_mood",
				Message:        "⚠️ Prolonged challenging mood period - consider professional support",
				Recommendation: "Reach out to a mental health professional or trusted support person",
			})
		} else if challenging >= 3 {
			risks = append(risks, RiskIndicator{
				Level:          "moderate",
				Type:           "concerning_trend",
				Message:        "🔍 Several challenging mood days - monitor closely",
				Recommendation: "Focus on self-care and consider talking to someone",
			})
		}
	}

	assessed := AssessedOnly(moods)
	if len(assessed) >= 3 {
		limit := len(assessed)
		if limit > 5 {
			limit = 5
		}
		highStress, poorSleep := 0, 0
		for i := 0; i < limit; i++ {
			factors := ParseAssessment(assessed[i].Note)
			if factors[FactorStress] == "high" {
				highStress++
			}
			if factors[FactorSleep] == "poor" {
				poorSleep++
			}
		}
		if highStress >= 3 {
			risks = append(risks, RiskIndicator{
				Level:          "moderate",
				Type:           "chronic_stress",
				Message:        "🌡️ Chronic high stress detected",
				Recommendation: "Implement stress management techniques and consider professional guidance",
			})
		}
		if poorSleep >= 3 {
			risks = append(risks, RiskIndicator{
				Level:          "moderate",
				Type:           "sleep_issues",
				Message:        "😴 Persistent sleep quality issues",
				Recommendation: "Focus on sleep hygiene and consider consulting a healthcare provider",
			})
		}
	}

	return risks
}

// AnalyzeAdvanced runs the full advanced pattern pass: predictive
// trajectory, factor correlations, behavioral trends, risk indicators and
// wellness opportunities. Callers should require at least 5 mood samples.
func AnalyzeAdvanced(moods []models.MoodLog, journals []models.JournalEntry) AdvancedReport {
	report := EmptyAdvancedReport()
	if len(moods) < 5 {
		return report
	}

	report.PredictiveInsights = predictMoodTrajectory(moods)
	if assessed := AssessedOnly(moods); len(assessed) >= 5 {
		report.CorrelationAnalysis = CorrelateFactors(assessed)
	}
	if len(moods) >= 10 {
		report.BehavioralTrends = behavioralTrends(moods)
	}
	report.RiskIndicators = DetectRiskIndicators(moods)
	report.WellnessOpportunities = wellnessOpportunities(moods, journals)
	return report
}

// predictMoodTrajectory compares the newest of the last 7 scores against
// the oldest to classify the short-term direction.
func predictMoodTrajectory(moods []models.MoodLog) []PredictiveInsight {
	limit := len(moods)
	if limit > 7 {
		limit = 7
	}
	scores := make([]int, 0, limit)
	for i := 0; i < limit; i++ {
		scores = append(scores, ScoreMood(moods[i].Mood))
	}
	if len(scores) < 3 {
		return []PredictiveInsight{}
	}

	delta := scores[0] - scores[len(scores)-1]
	switch {
	case delta > 1:
		confidence := "moderate"
		if delta > 2 {
			confidence = "high"
		}
		return []PredictiveInsight{{
			Type:       "positive_trend",
			Message:    "📈 Mood trajectory suggests continued improvement - maintain current wellness practices",
			Confidence: confidence,
		}}
	case delta < -1:
		confidence := "moderate"
		if delta < -2 {
			confidence = "high"
		}
		return []PredictiveInsight{{
			Type:       "declining_trend",
			Message:    "📉 Mood decline detected - consider proactive wellness interventions",
			Confidence: confidence,
		}}
	default:
		return []PredictiveInsight{{
			Type:       "stable_trend",
			Message:    "➡️ Stable mood pattern - good emotional regulation",
			Confidence: "moderate",
		}}
	}
}

func behavioralTrends(moods []models.MoodLog) []BehavioralTrend {
	trends := []BehavioralTrend{}

	if len(moods) >= 14 {
		weekAvg := func(set []models.MoodLog) float64 {
			sum := 0
			for i := range set {
				sum += ScoreMood(set[i].Mood)
			}
			return float64(sum) / float64(len(set))
		}
		current, previous := weekAvg(moods[:7]), weekAvg(moods[7:14])
		if current > previous+0.5 {
			trends = append(trends, BehavioralTrend{
				Type:      "improvement",
				Message:   "📈 Recent week shows significant mood improvement",
				Timeframe: "weekly",
			})
		} else if current < previous-0.5 {
			trends = append(trends, BehavioralTrend{
				Type:      "decline",
				Message:   "📉 Mood decline in recent week - consider wellness check-in",
				Timeframe: "weekly",
			})
		}
	}

	if len(moods) >= 7 {
		unique := map[string]struct{}{}
		for i := 0; i < 7; i++ {
			unique[moods[i].Mood] = struct{}{}
		}
		if len(unique) <= 2 {
			trends = append(trends, BehavioralTrend{
				Type:      "consistency",
				Message:   "🎯 Very consistent mood pattern - stable emotional state",
				Timeframe: "recent",
			})
		} else if len(unique) >= 5 {
			trends = append(trends, BehavioralTrend{
				Type:      "variability",
				Message:   "🌈 High emotional variety - rich emotional experience",
				Timeframe: "recent",
			})
		}
	}

	return trends
}

func wellnessOpportunities(moods []models.MoodLog, journals []models.JournalEntry) []WellnessOpportunity {
	opportunities := []WellnessOpportunity{}

	if len(journals) < 3 && len(moods) >= 5 {
		opportunities = append(opportunities, WellnessOpportunity{
			Type:    "journaling",
			Message: "📝 Consider adding journaling to complement your mood tracking",
			Benefit: "Deeper self-reflection and emotional processing",
		})
	}

	assessed := AssessedOnly(moods)
	if float64(len(assessed)) < float64(len(moods))*0.3 {
		opportunities = append(opportunities, WellnessOpportunity{
			Type:    "detailed_assessment",
			Message: "🧠 Use detailed assessments more often for richer insights",
			Benefit: "Better understanding of factors affecting your mood",
		})
	}

	if len(moods) >= 5 {
		limit := len(moods)
		if limit > 10 {
			limit = 10
		}
		totalGap := 0.0
		for i := 0; i < limit-1; i++ {
			totalGap += float64(moods[i].Day().Unix()-moods[i+1].Day().Unix()) / 86400
		}
		if limit >= 2 {
			avgGap := totalGap / float64(limit-1)
			if avgGap > 2 {
				opportunities = append(opportunities, WellnessOpportunity{
					Type:    "consistency",
					Message: "📅 More consistent daily tracking could reveal additional patterns",
					Benefit: "Better trend identification and self-awareness",
				})
			}
		}
	}

	if len(moods) >= 7 {
		positive := 0
		for i := 0; i < 7; i++ {
			if IsPositive(moods[i].Mood) {
				positive++
			}
		}
		if positive >= 4 {
			opportunities = append(opportunities, WellnessOpportunity{
				Type:    "strength_building",
				Message: "🌟 You're doing well! Consider identifying what's working to maintain this positive trend",
				Benefit: "Reinforce successful wellness strategies",
			})
		}
	}

	return opportunities
}
