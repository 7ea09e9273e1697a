package analytics

import (
	"github.com/solaceapp/solace-backend/internal/models"
)

// generalRecommendations backfill the list when few specific rules fire.
var generalRecommendations = []string{
	"🙏 Practice gratitude by noting three things you're thankful for each day",
	"🚶 Take regular breaks and move your body throughout the day",
	"💧 Stay hydrated and maintain regular meal times",
	"📚 Engage in activities that bring you joy and fulfillment",
	"🌙 Maintain a regular sleep schedule for better mental health",
	"🎨 Try creative activities like drawing, music, or crafts for stress relief",
}

// Recommend produces rule-based wellness recommendations from the mood and
// journal history. At most six are returned; general recommendations pad
// the list up to five when few rules fire. Moods are most-recent-first.
func Recommend(moods []models.MoodLog, journals []models.JournalEntry) []string {
	recommendations := []string{}

	if len(journals) < 3 {
		recommendations = append(recommendations, "📝 Try journaling more frequently to gain better insights into your thoughts and feelings")
	}
	if len(moods) < 5 {
		recommendations = append(recommendations, "📊 Log your mood daily using our detailed assessment to track emotional patterns")
	}

	assessed := AssessedOnly(moods)
	if len(assessed) >= 3 {
		limit := len(assessed)
		if limit > 5 {
			limit = 5
		}
		var energyIssues, stressIssues, sleepIssues, socialIssues int
		for i := 0; i < limit; i++ {
			factors := ParseAssessment(assessed[i].Note)
			if factors[FactorEnergy] == "low" {
				energyIssues++
			}
			if factors[FactorStress] == "high" {
				stressIssues++
			}
			if factors[FactorSleep] == "poor" {
				sleepIssues++
			}
			if factors[FactorSocial] == "isolated" {
				socialIssues++
			}
		}

		if energyIssues >= 2 {
			recommendations = append(recommendations,
				"⚡ Consider light exercise or a short walk to boost energy levels",
				"🍎 Focus on nutritious meals and stay hydrated throughout the day",
				"☀️ Try to get some natural sunlight, especially in the morning",
			)
		}
		if stressIssues >= 2 {
			recommendations = append(recommendations,
				"🧘 Practice deep breathing exercises or meditation for 5-10 minutes daily",
				"📝 Try writing down your worries to help process stressful thoughts",
				"🎵 Listen to calming music or nature sounds when feeling overwhelmed",
			)
		}
		if sleepIssues >= 2 {
			recommendations = append(recommendations,
				"😴 Establish a consistent bedtime routine to improve sleep quality",
				"📱 Avoid screens 1 hour before bedtime for better rest",
				"🛏️ Create a comfortable sleep environment - cool, dark, and quiet",
			)
		}
		if socialIssues >= 2 {
			recommendations = append(recommendations,
				"👥 Reach out to a friend or family member for a conversation",
				"🤝 Consider joining a community group or activity that interests you",
				"💌 Send a message to someone you care about - connection helps wellbeing",
			)
		}
	}

	if len(moods) >= 5 {
		challenging := 0
		for i := 0; i < 5; i++ {
			if IsChallenging(moods[i].Mood) {
				challenging++
			}
		}
		if challenging >= 3 {
			recommendations = append(recommendations,
				"🌱 Consider speaking with a mental health professional for additional support",
				"💚 Practice self-compassion - be kind to yourself during difficult times",
				"🎯 Focus on small, achievable goals to build momentum",
			)
		} else {
			recommendations = append(recommendations, "🌟 Great job maintaining emotional awareness - keep up the good work!")
		}
	}

	for _, rec := range generalRecommendations {
		if len(recommendations) >= 5 {
			break
		}
		if !contains(recommendations, rec) {
			recommendations = append(recommendations, rec)
		}
	}

	if len(recommendations) > 6 {
		recommendations = recommendations[:6]
	}
	return recommendations
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
