package safety

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solaceapp/solace-backend/internal/models"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"I want to kill myself", true},
		{"everything feels hopeless lately", true},
		{"I just want to give up", true},
		{"sometimes I wish i was dead", true},
		{"I can't take it anymore", true},
		{"SUICIDE", true},
		{"I had a lovely walk today", false},
		{"killing it at work this week", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Detect(tt.text), "text: %q", tt.text)
	}
}

func entryWith(content string) models.JournalEntry {
	return models.JournalEntry{Title: "note", Content: content}
}

func TestRiskLevel(t *testing.T) {
	assert.Equal(t, "low", RiskLevel(nil))

	calm := entryWith("went for a run, felt great")
	flagged := entryWith("I feel hopeless")

	assert.Equal(t, "low", RiskLevel([]models.JournalEntry{calm, calm, calm}))
	assert.Equal(t, "medium", RiskLevel([]models.JournalEntry{
		flagged, calm, calm, calm, calm, calm, calm, calm,
	}))
	assert.Equal(t, "high", RiskLevel([]models.JournalEntry{flagged, flagged, calm}))
}

func TestRiskFactors(t *testing.T) {
	assert.Empty(t, RiskFactors([]models.JournalEntry{entryWith("good day")}))

	factors := RiskFactors([]models.JournalEntry{
		entryWith("good day"),
		entryWith("no point in anything"),
		entryWith("I want to end my life"),
	})
	assert.Equal(t, []string{"Crisis indicators detected"}, factors)
}

func TestCrisisMessage(t *testing.T) {
	msg := CrisisMessage()
	assert.Contains(t, msg, "988")
	assert.Contains(t, msg, "741741")
	assert.Contains(t, msg, "911")
	assert.True(t, strings.HasPrefix(msg, "🆘 Crisis Support Available"))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "", Sanitize("", 100))
	assert.Equal(t, "hello", Sanitize("  hello  ", 100))
	assert.Equal(t, "alert('x')>", Sanitize("<scriptalert('x')</script>", 100))
	assert.Equal(t, "clickme", Sanitize("javascript:clickme", 100))
	assert.Equal(t, "abcde", Sanitize("abcdefgh", 5))
}
