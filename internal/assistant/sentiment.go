package assistant

import (
	"fmt"
	"strings"
)

// JournalAnalysis is the sentiment read of a journal entry.
type JournalAnalysis struct {
	Sentiment    string  `json:"sentiment"`
	Message      string  `json:"message"`
	Suggestion   string  `json:"suggestion"`
	Color        string  `json:"color"`
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
	WordCount    int     `json:"word_count"`
	ReadingTime  string  `json:"reading_time"`
}

var positiveWords = map[string]bool{
	"happy": true, "joy": true, "joyful": true, "grateful": true, "thankful": true,
	"excited": true, "love": true, "loved": true, "wonderful": true, "great": true,
	"good": true, "amazing": true, "calm": true, "peaceful": true, "proud": true,
	"hopeful": true, "better": true, "relaxed": true, "fun": true, "beautiful": true,
	"accomplished": true, "content": true, "energized": true, "optimistic": true,
}

var negativeWords = map[string]bool{
	"sad": true, "angry": true, "anxious": true, "worried": true, "stressed": true,
	"tired": true, "exhausted": true, "lonely": true, "hopeless": true, "awful": true,
	"terrible": true, "bad": true, "hurt": true, "afraid": true, "scared": true,
	"depressed": true, "miserable": true, "overwhelmed": true, "frustrated": true,
	"worthless": true, "empty": true, "crying": true, "pain": true, "hate": true,
}

// AnalyzeJournal scores a journal entry's polarity against a small sentiment
// lexicon and wraps it in a supportive response.
func (a *Assistant) AnalyzeJournal(content string) JournalAnalysis {
	words := strings.Fields(content)
	var pos, neg int
	for _, w := range words {
		token := strings.ToLower(strings.Trim(w, ".,!?;:'\"()-"))
		if positiveWords[token] {
			pos++
		}
		if negativeWords[token] {
			neg++
		}
	}

	var polarity, subjectivity float64
	if pos+neg > 0 {
		polarity = float64(pos-neg) / float64(pos+neg)
	}
	if len(words) > 0 {
		subjectivity = float64(pos+neg) / float64(len(words))
	}

	analysis := JournalAnalysis{
		Polarity:     polarity,
		Subjectivity: subjectivity,
		WordCount:    len(words),
		ReadingTime:  fmt.Sprintf("%d min read", max(1, len(words)/200)),
	}

	switch {
	case polarity > 0.3:
		analysis.Sentiment = "positive"
		analysis.Message = "Your writing reflects positive emotions and thoughts. This is wonderful to see!"
		analysis.Suggestion = "Consider what contributed to these positive feelings so you can nurture more of them."
		analysis.Color = "#00b894"
	case polarity < -0.3:
		analysis.Sentiment = "challenging"
		analysis.Message = "It sounds like you're going through a difficult time. Thank you for sharing these feelings."
		analysis.Suggestion = "Remember that difficult emotions are temporary. Consider reaching out to someone you trust."
		analysis.Color = "#fd79a8"
	default:
		analysis.Sentiment = "neutral"
		analysis.Message = "Your writing shows a balanced emotional state with mixed feelings."
		analysis.Suggestion = "This kind of emotional balance is natural. Keep reflecting on your experiences."
		analysis.Color = "#74b9ff"
	}

	return analysis
}
