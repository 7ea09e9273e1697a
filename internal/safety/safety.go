package safety

import (
	"regexp"
	"strings"

	"github.com/solaceapp/solace-backend/internal/models"
)

// crisisPatterns is the fixed safety-gate catalog: case-insensitive,
// word-boundary phrase patterns grouped by category. Order matters only
// for short-circuiting; a single match flags the text.
var crisisPatterns = []*regexp.Regexp{
	// self-harm mention
	regexp.MustCompile(`(?i)\b(suicide|kill myself|end my life|self harm)\b`),
	// hopelessness
	regexp.MustCompile(`(?i)\b(hopeless|helpless|no point|give up)\b`),
	// suicidal ideation
	regexp.MustCompile(`(?i)\b(want to die|wish i was dead)\b`),
	// "can't go on" phrasing
	regexp.MustCompile(`(?i)\b(can't take it anymore|end it all)\b`),
}

// Detect reports whether the text contains crisis indicators. Pure and
// stateless; empty text never matches.
func Detect(text string) bool {
	if text == "" {
		return false
	}
	for _, pattern := range crisisPatterns {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}

// RiskLevel aggregates the crisis detector over journal entries. More than
// 30% flagged entries is "high", more than 10% is "medium", else "low".
func RiskLevel(entries []models.JournalEntry) string {
	if len(entries) == 0 {
		return "low"
	}
	flagged := 0
	for i := range entries {
		if Detect(entries[i].Content) {
			flagged++
		}
	}
	ratio := float64(flagged) / float64(len(entries))
	switch {
	case ratio > 0.3:
		return "high"
	case ratio > 0.1:
		return "medium"
	default:
		return "low"
	}
}

// RiskFactors lists the human-readable factors behind the risk level.
func RiskFactors(entries []models.JournalEntry) []string {
	factors := []string{}
	for i := range entries {
		if Detect(entries[i].Content) {
			factors = append(factors, "Crisis indicators detected")
			break
		}
	}
	return factors
}

// CrisisMessage returns the immediate-support message shown when the gate
// trips.
func CrisisMessage() string {
	return strings.Join([]string{
		"🆘 Crisis Support Available",
		"You are not alone. If you're having thoughts of self-harm, please reach out for help immediately.",
		"National Suicide Prevention Lifeline: 988",
		"Crisis Text Line: Text HOME to 741741",
		"Emergency Services: 911",
		"These services are available 24/7 and are free and confidential.",
	}, "\n")
}

// dangerousFragments are stripped from user input before it reaches any
// downstream consumer.
var dangerousFragments = []string{"<script", "</script", "javascript:", "onload=", "onerror="}

// Sanitize strips script fragments from text and caps its length.
func Sanitize(text string, maxLength int) string {
	if text == "" {
		return ""
	}
	for _, fragment := range dangerousFragments {
		text = strings.ReplaceAll(text, fragment, "")
	}
	if len(text) > maxLength {
		text = text[:maxLength]
	}
	return strings.TrimSpace(text)
}
