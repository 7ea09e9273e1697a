package assistant

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/solaceapp/solace-backend/internal/analytics"
	"github.com/solaceapp/solace-backend/internal/models"
)

// Assistant generates wellness content: insights, tips, affirmations,
// exercises and supportive chat replies. Randomness comes from the injected
// source so tests can seed it.
type Assistant struct {
	rng *rand.Rand
}

func New(src rand.Source) *Assistant {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Assistant{rng: rand.New(src)}
}

// MoodInsight summarizes the last week of mood logs.
type MoodInsight struct {
	Pattern        string `json:"pattern"`
	Message        string `json:"message"`
	Recommendation string `json:"recommendation"`
	Trend          string `json:"trend,omitempty"`
}

// Milestone is the next tracking goal to hit.
type Milestone struct {
	Type      string `json:"type"`
	Target    int64  `json:"target"`
	Current   int64  `json:"current"`
	Remaining int64  `json:"remaining"`
	Message   string `json:"message"`
}

// ProgressSummary reports logging totals, streak and earned achievements.
type ProgressSummary struct {
	TotalMoodLogs       int64     `json:"total_mood_logs"`
	TotalJournalEntries int64     `json:"total_journal_entries"`
	CurrentStreak       int       `json:"current_streak"`
	Achievements        []string  `json:"achievements"`
	NextMilestone       Milestone `json:"next_milestone"`
}

// DailyInsights bundles the full daily briefing.
type DailyInsights struct {
	MoodInsight        MoodInsight         `json:"mood_insight"`
	WellnessTip        WellnessTip         `json:"wellness_tip"`
	ProgressUpdate     ProgressSummary     `json:"progress_update"`
	RecommendedActions []DailyAction       `json:"recommended_actions"`
	MindfulnessMoment  MindfulnessExercise `json:"mindfulness_moment"`
	Affirmation        Affirmation         `json:"affirmation"`
}

func (a *Assistant) Tip() WellnessTip {
	category := tipCategories[a.rng.Intn(len(tipCategories))]
	tips := tipsByCategory[category]
	return WellnessTip{
		Category:   titleize(category),
		Tip:        tips[a.rng.Intn(len(tips))],
		Difficulty: "easy",
	}
}

func (a *Assistant) Affirmation() Affirmation {
	return affirmations[a.rng.Intn(len(affirmations))]
}

func (a *Assistant) Mindfulness() MindfulnessExercise {
	return mindfulnessExercises[a.rng.Intn(len(mindfulnessExercises))]
}

// SuggestActions picks three distinct daily actions.
func (a *Assistant) SuggestActions() []DailyAction {
	perm := a.rng.Perm(len(dailyActions))
	picked := make([]DailyAction, 0, 3)
	for _, i := range perm[:3] {
		picked = append(picked, dailyActions[i])
	}
	return picked
}

func (a *Assistant) Plan() WellnessPlan {
	return defaultWellnessPlan
}

func (a *Assistant) Starters() []ConversationStarter {
	return conversationStarters
}

// AnalyzeMoods builds a mood insight from the past week's logs, newest first.
func (a *Assistant) AnalyzeMoods(recent []models.MoodLog) MoodInsight {
	if len(recent) == 0 {
		return MoodInsight{
			Pattern:        "insufficient_data",
			Message:        "Start logging your moods to see personalized insights!",
			Recommendation: "Try logging your mood daily for better patterns.",
		}
	}

	var sum int
	values := make([]int, len(recent))
	for i, m := range recent {
		values[i] = analytics.ScoreMood(m.Mood)
		sum += values[i]
	}
	avg := float64(sum) / float64(len(values))

	trend := "stable"
	if len(values) > 1 && values[0] > values[len(values)-1] {
		trend = "improving"
	}

	switch {
	case avg >= 3.5:
		return MoodInsight{
			Pattern:        "positive_trend",
			Message:        fmt.Sprintf("Your mood has been generally positive this week (avg: %.1f/5)!", avg),
			Recommendation: "Keep up the great work! Consider what's been helping you feel good.",
			Trend:          trend,
		}
	case avg >= 2.5:
		return MoodInsight{
			Pattern:        "neutral_trend",
			Message:        fmt.Sprintf("Your mood has been balanced this week (avg: %.1f/5).", avg),
			Recommendation: "Try incorporating more activities that bring you joy.",
			Trend:          trend,
		}
	default:
		return MoodInsight{
			Pattern:        "needs_attention",
			Message:        fmt.Sprintf("Your mood has been lower than usual (avg: %.1f/5).", avg),
			Recommendation: "Consider reaching out to someone you trust or trying some self-care activities.",
			Trend:          trend,
		}
	}
}

// Progress computes streak, achievements and the next milestone.
func (a *Assistant) Progress(moods []models.MoodLog, totalMoods, totalJournals int64, today time.Time) ProgressSummary {
	streak := analytics.Streak(moods, today)

	achievements := []string{}
	if totalMoods >= 7 {
		achievements = append(achievements, "Week Warrior - 7 days of mood tracking!")
	}
	if totalMoods >= 30 {
		achievements = append(achievements, "Monthly Master - 30 days of consistent tracking!")
	}
	if totalJournals >= 5 {
		achievements = append(achievements, "Reflection Rookie - 5 journal entries!")
	}
	if streak >= 3 {
		achievements = append(achievements, fmt.Sprintf("Streak Star - %d days in a row!", streak))
	}

	return ProgressSummary{
		TotalMoodLogs:       totalMoods,
		TotalJournalEntries: totalJournals,
		CurrentStreak:       streak,
		Achievements:        achievements,
		NextMilestone:       nextMilestone(totalMoods, totalJournals),
	}
}

func nextMilestone(moods, journals int64) Milestone {
	moodMilestones := []int64{7, 14, 30, 60, 100}
	journalMilestones := []int64{5, 10, 25, 50}

	nextMood := int64(365)
	for _, m := range moodMilestones {
		if m > moods {
			nextMood = m
			break
		}
	}
	nextJournal := int64(100)
	for _, j := range journalMilestones {
		if j > journals {
			nextJournal = j
			break
		}
	}

	if nextMood <= nextJournal {
		return Milestone{
			Type:      "mood_tracking",
			Target:    nextMood,
			Current:   moods,
			Remaining: nextMood - moods,
			Message:   fmt.Sprintf("Log %d more moods to reach your next milestone!", nextMood-moods),
		}
	}
	return Milestone{
		Type:      "journaling",
		Target:    nextJournal,
		Current:   journals,
		Remaining: nextJournal - journals,
		Message:   fmt.Sprintf("Write %d more journal entries for your next achievement!", nextJournal-journals),
	}
}

// Daily assembles the full briefing from recent mood logs and totals.
func (a *Assistant) Daily(recentMoods []models.MoodLog, totalMoods, totalJournals int64, today time.Time) DailyInsights {
	return DailyInsights{
		MoodInsight:        a.AnalyzeMoods(recentMoods),
		WellnessTip:        a.Tip(),
		ProgressUpdate:     a.Progress(recentMoods, totalMoods, totalJournals, today),
		RecommendedActions: a.SuggestActions(),
		MindfulnessMoment:  a.Mindfulness(),
		Affirmation:        a.Affirmation(),
	}
}

func titleize(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
