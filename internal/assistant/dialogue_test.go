package assistant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplyCrisisLanguage(t *testing.T) {
	a := newTestAssistant()
	reply := a.Reply("everything feels hopeless and there's no point")

	assert.Contains(t, reply, "Immediate Help Available:")
	assert.Contains(t, reply, "National Suicide Prevention Lifeline: 988 (US)")
	assert.Contains(t, reply, "Crisis Text Line: Text HOME to 741741")
	assert.Contains(t, reply, "You matter, and there are people who want to help.")
}

func TestReplyGreeting(t *testing.T) {
	a := newTestAssistant()
	reply := a.Reply("Hello!")

	assert.Contains(t, greetingReplies, reply)
	assert.Contains(t, reply, "Solace")
}

func TestReplyHelp(t *testing.T) {
	a := newTestAssistant()

	assert.Equal(t, helpReply, a.Reply("help"))
	assert.Equal(t, helpReply, a.Reply(""))
	assert.Equal(t, helpReply, a.Reply("?"))
}

func TestReplyTopicMatch(t *testing.T) {
	a := newTestAssistant()
	reply := a.Reply("I keep having racing thoughts at night")

	assert.Contains(t, reply, "Here's something that might help:")
	assert.Contains(t, reply, "What situations tend to trigger your anxiety the most?")

	found := false
	for _, r := range topics["anxiety"].responses {
		if strings.Contains(reply, r) {
			found = true
		}
	}
	assert.True(t, found, "reply should open with an anxiety response")
}

func TestReplyEmotionFallback(t *testing.T) {
	a := newTestAssistant()
	reply := a.Reply("I'm so mad about my day")

	assert.Contains(t, emotionEntries[2].responses, reply)
}

func TestReplyGeneralFallback(t *testing.T) {
	a := newTestAssistant()
	reply := a.Reply("tell me about yourself")

	assert.Contains(t, generalReplies, reply)
}

func TestSuggestionsByKeyword(t *testing.T) {
	a := newTestAssistant()

	assert.Equal(t, suggestionGroups[0].suggestions, a.Suggestions("I feel anxious today"))
	assert.Equal(t, suggestionGroups[2].suggestions, a.Suggestions("so much pressure at work"))
	assert.Equal(t, suggestionGroups[3].suggestions, a.Suggestions("today was great"))
}

func TestSuggestionsGeneralFallback(t *testing.T) {
	a := newTestAssistant()
	assert.Equal(t, generalSuggestions, a.Suggestions("tell me more"))
}
