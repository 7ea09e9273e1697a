package analytics

import (
	"github.com/solaceapp/solace-backend/internal/models"
)

// AssessedOnly filters to samples whose note carries an assessment segment,
// preserving order.
func AssessedOnly(samples []models.MoodLog) []models.MoodLog {
	out := make([]models.MoodLog, 0, len(samples))
	for i := range samples {
		if HasAssessment(samples[i].Note) {
			out = append(out, samples[i])
		}
	}
	return out
}

// DetectPatterns runs the deterministic pattern rule catalog over the mood
// and journal history and returns the insight strings of every rule that
// fires. Moods are expected most-recent-first.
func DetectPatterns(moods []models.MoodLog, journals []models.JournalEntry) []string {
	patterns := []string{}

	if len(journals) >= 3 {
		patterns = append(patterns, "📝 Regular journaling habit detected - great for self-reflection!")
	}
	if len(moods) >= 5 {
		patterns = append(patterns, "📊 Consistent mood tracking shows good self-awareness")
	}

	assessed := AssessedOnly(moods)
	if len(assessed) >= 3 {
		patterns = append(patterns, "🧠 Using detailed mood assessments - excellent for understanding emotional patterns!")
		patterns = append(patterns, assessmentPatterns(assessed)...)
	}

	if len(moods) >= 7 {
		patterns = append(patterns, recentMoodPatterns(moods[:7])...)
	}
	if len(moods) >= 14 {
		patterns = append(patterns, "📈 Long-term tracking commitment - valuable data for understanding trends")
		patterns = append(patterns, volatilityPattern(moods)...)
	}
	if len(moods) >= 10 {
		patterns = append(patterns, consistencyPatterns(moods)...)
	}
	if len(moods) >= 30 {
		patterns = append(patterns, "🗓️ Monthly tracking milestone reached - excellent commitment to mental health monitoring!")
		patterns = append(patterns, longTermPattern(moods)...)
	}

	if len(assessed) >= 5 && len(moods) >= 10 {
		ratio := float64(len(assessed)) / float64(len(moods))
		switch {
		case ratio >= 0.7:
			patterns = append(patterns, "🎯 High detailed assessment usage - you're getting maximum insight from your tracking!")
		case ratio >= 0.3:
			patterns = append(patterns, "📊 Good balance of quick and detailed mood logging")
		default:
			patterns = append(patterns, "💡 Consider using detailed assessments more often for deeper insights")
		}
	}

	if len(patterns) >= 8 {
		patterns = append(patterns, "🔍 Rich pattern data detected - you have excellent self-awareness through consistent tracking!")
	} else if len(patterns) >= 5 {
		patterns = append(patterns, "📈 Good pattern recognition emerging - continue consistent tracking for deeper insights")
	}

	if len(patterns) == 0 {
		patterns = append(patterns, "🌱 Keep logging moods and using assessments to identify meaningful patterns")
	}
	return patterns
}

// factorValues collects the raw categorical values per factor from up to
// the 15 most recent assessed samples, in scan order.
func factorValues(assessed []models.MoodLog) map[string][]string {
	values := make(map[string][]string)
	limit := len(assessed)
	if limit > 15 {
		limit = 15
	}
	for i := 0; i < limit; i++ {
		for factor, raw := range ParseAssessment(assessed[i].Note) {
			values[factor] = append(values[factor], raw)
		}
	}
	return values
}

func countOf(values []string, target string) int {
	n := 0
	for _, v := range values {
		if v == target {
			n++
		}
	}
	return n
}

func assessmentPatterns(assessed []models.MoodLog) []string {
	out := []string{}
	values := factorValues(assessed)

	energy := values[FactorEnergy]
	if n := len(energy); n > 0 {
		switch {
		case float64(countOf(energy, "high")) >= float64(n)*0.7:
			out = append(out, "⚡ Consistently high energy levels - you're maintaining excellent vitality!")
		case float64(countOf(energy, "low")) >= float64(n)*0.6:
			out = append(out, "🔋 Frequent low energy detected - consider sleep optimization, nutrition, and light exercise")
		case float64(countOf(energy, "moderate")) >= float64(n)*0.6:
			out = append(out, "🔄 Stable moderate energy levels - good baseline with potential for improvement")
		}
		if n >= 5 {
			recentHigh := countOf(energy[:3], "high")
			olderHigh := countOf(energy[n-3:], "high")
			if recentHigh > olderHigh {
				out = append(out, "📈 Energy levels trending upward - keep up whatever you're doing!")
			} else if recentHigh < olderHigh {
				out = append(out, "📉 Energy levels declining - consider reviewing sleep, diet, and stress factors")
			}
		}
	}

	stress := values[FactorStress]
	if n := len(stress); n > 0 {
		switch {
		case float64(countOf(stress, "high")) >= float64(n)*0.6:
			out = append(out, "🌡️ Chronic high stress detected - prioritize stress management techniques and consider professional support")
		case float64(countOf(stress, "low")) >= float64(n)*0.7:
			out = append(out, "🧘 Excellent stress management - you're maintaining healthy stress levels!")
		case float64(countOf(stress, "moderate")) >= float64(n)*0.5:
			out = append(out, "⚖️ Moderate stress levels - manageable but watch for triggers")
		}
		if len(energy) > 0 && n >= 5 {
			negative := 0
			for i := 0; i < n && i < len(energy); i++ {
				if stress[i] == "high" && energy[i] == "low" {
					negative++
				}
			}
			if negative >= 3 {
				out = append(out, "🔗 High stress correlates with low energy - stress management could boost your vitality")
			}
		}
	}

	sleep := values[FactorSleep]
	if n := len(sleep); n > 0 {
		switch {
		case float64(countOf(sleep, "poor")) >= float64(n)*0.5:
			out = append(out, "😴 Sleep quality concerns detected - focus on sleep hygiene for better rest")
		case float64(countOf(sleep, "excellent")) >= float64(n)*0.6:
			out = append(out, "🛏️ Excellent sleep quality pattern - this strongly supports your overall wellbeing!")
		case float64(countOf(sleep, "okay")) >= float64(n)*0.6:
			out = append(out, "💤 Decent sleep quality - small improvements could yield big benefits")
		}
		if len(energy) > 0 && n >= 5 {
			positive, negative := 0, 0
			for i := 0; i < n && i < len(energy); i++ {
				if sleep[i] == "excellent" && energy[i] == "high" {
					positive++
				} else if sleep[i] == "poor" && energy[i] == "low" {
					negative++
				}
			}
			if positive >= 2 {
				out = append(out, "🌙 Good sleep strongly correlates with high energy - maintain your sleep routine!")
			} else if negative >= 2 {
				out = append(out, "⚠️ Poor sleep is impacting your energy levels - prioritize sleep improvement")
			}
		}
	}

	social := values[FactorSocial]
	if n := len(social); n > 0 {
		switch {
		case float64(countOf(social, "isolated")) >= float64(n)*0.6:
			out = append(out, "👥 Social isolation pattern - consider reaching out to friends, family, or joining communities")
		case float64(countOf(social, "connected")) >= float64(n)*0.7:
			out = append(out, "🤝 Strong social connections - your relationships are supporting your wellbeing!")
		case float64(countOf(social, "somewhat")) >= float64(n)*0.5:
			out = append(out, "🌐 Moderate social engagement - opportunities to deepen connections")
		}
		if n >= 5 {
			recent := social[:3]
			if countOf(recent, "isolated") >= 2 {
				out = append(out, "🔍 Recent social isolation trend - consider scheduling social activities")
			} else if countOf(recent, "connected") >= 2 {
				out = append(out, "🌟 Recent increase in social connection - great for mental health!")
			}
		}
	}

	return out
}

func recentMoodPatterns(recent []models.MoodLog) []string {
	out := []string{}

	variety := map[string]struct{}{}
	positive, challenging := 0, 0
	for i := range recent {
		variety[recent[i].Mood] = struct{}{}
		if IsPositive(recent[i].Mood) {
			positive++
		}
		if IsChallenging(recent[i].Mood) {
			challenging++
		}
	}

	switch {
	case len(variety) == 1:
		out = append(out, "🎯 Very consistent mood pattern - consider exploring emotional range or checking for mood suppression")
	case len(variety) >= 5:
		out = append(out, "🌈 Rich emotional variety - you're experiencing a full range of feelings, which is healthy")
	case len(variety) <= 2:
		out = append(out, "📊 Limited emotional range detected - consider mindfulness practices to increase emotional awareness")
	}

	switch {
	case positive >= 5:
		out = append(out, "🌟 Strong positive mood trend - you're in a great mental space!")
	case challenging >= 4:
		out = append(out, "💙 Challenging period detected - be gentle with yourself and consider support")
	case positive >= 3 && challenging <= 1:
		out = append(out, "✨ Balanced positive outlook with good emotional resilience")
	}

	return out
}

func volatilityPattern(moods []models.MoodLog) []string {
	limit := len(moods)
	if limit > 10 {
		limit = 10
	}
	scores := make([]float64, 0, limit)
	for i := 0; i < limit; i++ {
		scores = append(scores, float64(ScoreMood(moods[i].Mood)))
	}
	if len(scores) < 5 {
		return nil
	}

	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	avg := sum / float64(len(scores))
	variance := 0.0
	for _, s := range scores {
		variance += (s - avg) * (s - avg)
	}
	variance /= float64(len(scores))

	switch {
	case variance <= 0.5:
		return []string{"🎯 Very stable mood pattern - consistent emotional regulation"}
	case variance >= 2.0:
		return []string{"🎢 High mood variability - consider identifying triggers for mood swings"}
	default:
		return []string{"⚖️ Moderate mood variability - normal emotional fluctuation"}
	}
}

func consistencyPatterns(moods []models.MoodLog) []string {
	out := []string{}
	limit := len(moods)
	if limit > 10 {
		limit = 10
	}
	dates := make([]int64, 0, limit)
	for i := 0; i < limit; i++ {
		dates = append(dates, moods[i].Day().Unix())
	}
	if len(dates) < 2 {
		return out
	}

	totalGap := 0.0
	for i := 0; i < len(dates)-1; i++ {
		totalGap += float64(dates[i]-dates[i+1]) / 86400
	}
	avgGap := totalGap / float64(len(dates)-1)

	switch {
	case avgGap <= 1.2:
		out = append(out, "📅 Excellent daily tracking consistency - building strong self-awareness habits!")
	case avgGap <= 2.0:
		out = append(out, "📊 Good tracking consistency with occasional gaps - try setting daily reminders")
	case avgGap <= 3.5:
		out = append(out, "📈 Regular tracking pattern - room for more consistency")
	default:
		out = append(out, "⏰ Irregular tracking pattern - consistent daily logging would provide better insights")
	}

	if len(dates) >= 7 {
		out = append(out, "📊 Sufficient data for weekly pattern analysis - consider tracking time of day for deeper insights")
	}
	return out
}

func longTermPattern(moods []models.MoodLog) []string {
	if len(moods) < 20 {
		return nil
	}
	recent, older := moods[:10], moods[10:20]

	positiveRatio := func(set []models.MoodLog) float64 {
		n := 0
		for i := range set {
			if IsPositive(set[i].Mood) {
				n++
			}
		}
		return float64(n) / float64(len(set))
	}

	diff := positiveRatio(recent) - positiveRatio(older)
	switch {
	case diff > 0.2:
		return []string{"📈 Significant mood improvement over time - your wellness efforts are paying off!"}
	case diff < -0.2:
		return []string{"📉 Mood decline detected over time - consider reviewing recent life changes or stressors"}
	default:
		return []string{"➡️ Stable mood patterns over time - consistent emotional baseline"}
	}
}
