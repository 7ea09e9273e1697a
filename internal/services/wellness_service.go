package services

import (
	"log/slog"
	"time"

	"github.com/solaceapp/solace-backend/internal/analytics"
	"github.com/solaceapp/solace-backend/internal/models"
	"github.com/solaceapp/solace-backend/internal/safety"
)

// MoodStore is the mood persistence the service reads from.
type MoodStore interface {
	ListRecent(limit int, since time.Time) ([]models.MoodLog, error)
	Count() (int64, error)
}

// JournalStore is the journal persistence the service reads from.
type JournalStore interface {
	ListRecent(limit int, since time.Time) ([]models.JournalEntry, error)
	Count() (int64, error)
}

// WellnessService computes analytics over mood and journal history. Store
// failures degrade to empty results rather than surfacing errors, so the
// analytics endpoints stay usable while the database is down.
type WellnessService struct {
	moods    MoodStore
	journals JournalStore
	now      func() time.Time
}

func NewWellnessService(moods MoodStore, journals JournalStore) *WellnessService {
	return &WellnessService{moods: moods, journals: journals, now: time.Now}
}

// WithClock overrides the time source, for tests.
func (s *WellnessService) WithClock(now func() time.Time) *WellnessService {
	s.now = now
	return s
}

func (s *WellnessService) allMoods() []models.MoodLog {
	moods, err := s.moods.ListRecent(0, time.Time{})
	if err != nil {
		slog.Warn("mood store unavailable", "action", "list_moods", "error", err.Error())
		return nil
	}
	return moods
}

func (s *WellnessService) allJournals() []models.JournalEntry {
	journals, err := s.journals.ListRecent(0, time.Time{})
	if err != nil {
		slog.Warn("journal store unavailable", "action", "list_journals", "error", err.Error())
		return nil
	}
	return journals
}

// MoodTrends builds the trend report over the full mood history.
func (s *WellnessService) MoodTrends() analytics.TrendReport {
	moods := s.allMoods()
	if len(moods) == 0 {
		return analytics.NoDataReport()
	}
	return analytics.AnalyzeTrends(moods, s.now())
}

// Patterns returns detected behavioral patterns.
func (s *WellnessService) Patterns() []string {
	return analytics.DetectPatterns(s.allMoods(), s.allJournals())
}

// AdvancedPatterns runs the full advanced analysis. The message is non-empty
// when there is not enough history yet.
func (s *WellnessService) AdvancedPatterns() (analytics.AdvancedReport, string) {
	moods := s.allMoods()
	if len(moods) < 5 {
		return analytics.EmptyAdvancedReport(), "Need more data for advanced pattern analysis"
	}
	return analytics.AnalyzeAdvanced(moods, s.allJournals()), ""
}

// Recommendations returns personalized wellness recommendations.
func (s *WellnessService) Recommendations() []string {
	return analytics.Recommend(s.allMoods(), s.allJournals())
}

// DashboardSummary aggregates totals, recent activity and streak.
type DashboardSummary struct {
	Summary struct {
		TotalJournalEntries int `json:"total_journal_entries"`
		TotalMoodLogs       int `json:"total_mood_logs"`
		RecentJournals      int `json:"recent_journals"`
		RecentMoods         int `json:"recent_moods"`
	} `json:"summary"`
	MoodDistribution map[string]int `json:"mood_distribution"`
	ActivityStreak   int            `json:"activity_streak"`
	LastUpdated      string         `json:"last_updated"`
}

// Dashboard summarizes the last 30 logs of each kind.
func (s *WellnessService) Dashboard() DashboardSummary {
	var out DashboardSummary

	moods, err := s.moods.ListRecent(30, time.Time{})
	if err != nil {
		slog.Warn("mood store unavailable", "action", "dashboard", "error", err.Error())
	}
	journals, err := s.journals.ListRecent(30, time.Time{})
	if err != nil {
		slog.Warn("journal store unavailable", "action", "dashboard", "error", err.Error())
	}

	today := analytics.DateOnly(s.now())
	weekAgo := today.AddDate(0, 0, -7)

	distribution := make(map[string]int)
	recentMoods := 0
	for _, m := range moods {
		distribution[m.Mood]++
		if !m.Day().Before(weekAgo) {
			recentMoods++
		}
	}
	recentJournals := 0
	for _, j := range journals {
		if !analytics.DateOnly(j.EntryDate).Before(weekAgo) {
			recentJournals++
		}
	}

	out.Summary.TotalJournalEntries = len(journals)
	out.Summary.TotalMoodLogs = len(moods)
	out.Summary.RecentJournals = recentJournals
	out.Summary.RecentMoods = recentMoods
	out.MoodDistribution = distribution
	out.ActivityStreak = analytics.Streak(moods, s.now())
	out.LastUpdated = s.now().UTC().Format(time.RFC3339)
	return out
}

// Insight is a single observation about the user's tracking history.
type Insight struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Insights inspects recent history for notable observations: mood variety
// over the last week and logging regularity over the last five entries.
func (s *WellnessService) Insights() []Insight {
	insights := []Insight{}

	moods, err := s.moods.ListRecent(30, time.Time{})
	if err != nil {
		slog.Warn("mood store unavailable", "action", "insights", "error", err.Error())
		return insights
	}

	if len(moods) >= 7 {
		variety := make(map[string]bool)
		for _, m := range moods[:7] {
			variety[m.Mood] = true
		}
		if len(variety) == 1 {
			insights = append(insights, Insight{
				Type:        "info",
				Title:       "Consistent Mood Pattern",
				Description: "You've been logging the same mood recently. Consider exploring different emotional states.",
			})
		}
	}

	if len(moods) >= 5 {
		var totalGap float64
		for i := 0; i < 4; i++ {
			totalGap += moods[i].Day().Sub(moods[i+1].Day()).Hours() / 24
		}
		if totalGap/4 <= 2 {
			insights = append(insights, Insight{
				Type:        "achievement",
				Title:       "Great Consistency!",
				Description: "You're maintaining a regular mood tracking habit. This helps build self-awareness.",
			})
		}
	}

	return insights
}

// RiskAssessment reports the journal-based risk level with contributing
// factors.
type RiskAssessment struct {
	Level   string   `json:"level"`
	Message string   `json:"message"`
	Factors []string `json:"factors"`
}

func (s *WellnessService) RiskAssessment() RiskAssessment {
	journals := s.allJournals()
	if len(journals) == 0 {
		return RiskAssessment{
			Level:   "low",
			Message: "No data available for risk assessment. Start journaling to get insights.",
			Factors: []string{},
		}
	}

	level := safety.RiskLevel(journals)
	factors := safety.RiskFactors(journals)
	message := "Your wellness indicators look positive. Keep up the good work!"

	if len(journals) < 3 {
		factors = append(factors, "Limited data available - continue journaling for better insights")
	}
	if len(journals) >= 5 {
		factors = append(factors, "Regular journaling habit detected")
		if level == "low" {
			message = "Great job maintaining consistent wellness tracking!"
		}
	}
	if level != "low" {
		message = "Some of your recent entries contain concerning language. Please consider reaching out for support."
	}

	return RiskAssessment{Level: level, Message: message, Factors: factors}
}

// Export is the full data dump for the JSON export endpoint.
type Export struct {
	ExportDate     string                `json:"export_date"`
	JournalEntries []models.JournalEntry `json:"journal_entries"`
	MoodLogs       []models.MoodLog      `json:"mood_logs"`
}

func (s *WellnessService) ExportData() Export {
	journals := s.allJournals()
	if journals == nil {
		journals = []models.JournalEntry{}
	}
	moods := s.allMoods()
	if moods == nil {
		moods = []models.MoodLog{}
	}
	return Export{
		ExportDate:     s.now().UTC().Format(time.RFC3339),
		JournalEntries: journals,
		MoodLogs:       moods,
	}
}
