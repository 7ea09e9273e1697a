package analytics

import "strings"

// moodScores is the fixed mood lexicon. 5 is most positive, 1 most
// challenging. Tokens outside the lexicon score neutral.
var moodScores = map[string]int{
	// very positive
	"🤩": 5, "🥰": 5, "🤗": 5,
	// positive
	"😊": 4, "😌": 4, "😎": 4, "🙂": 4,
	// neutral
	"😐": 3, "🤔": 3,
	// low energy
	"😴": 2, "😔": 2,
	// challenging
	"😰": 1, "😫": 1, "😤": 1, "😢": 1, "😡": 1, "😞": 1,
}

const neutralScore = 3

var positiveMoods = map[string]bool{
	"😊": true, "🥰": true, "😌": true, "🤗": true, "😎": true, "🤩": true, "🙂": true,
}

var challengingMoods = map[string]bool{
	"😔": true, "😰": true, "😫": true, "😢": true, "😞": true, "😡": true, "😤": true,
}

// ScoreMood maps a mood token to its ordinal score in 1..5. It is total:
// unknown or empty tokens score neutral (3).
func ScoreMood(token string) int {
	if s, ok := moodScores[strings.TrimSpace(token)]; ok {
		return s
	}
	return neutralScore
}

// IsPositive reports whether the token is in the positive mood set.
func IsPositive(token string) bool { return positiveMoods[strings.TrimSpace(token)] }

// IsChallenging reports whether the token is in the challenging mood set.
func IsChallenging(token string) bool { return challengingMoods[strings.TrimSpace(token)] }
