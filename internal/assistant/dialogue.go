package assistant

import "strings"

// topicEntry pairs recognizable symptoms with techniques, empathetic
// responses and a follow-up question for one wellness topic.
type topicEntry struct {
	symptoms   []string
	techniques []string
	responses  []string
	followUp   string
}

var topicOrder = []string{"anxiety", "depression", "stress", "sleep", "relationships", "academic_pressure"}

var topics = map[string]topicEntry{
	"anxiety": {
		symptoms: []string{"racing thoughts", "rapid heartbeat", "sweating", "restlessness", "worry", "panic"},
		techniques: []string{
			"4-7-8 breathing: Inhale for 4, hold for 7, exhale for 8",
			"5-4-3-2-1 grounding: Name 5 things you see, 4 you touch, 3 you hear, 2 you smell, 1 you taste",
			"Progressive muscle relaxation starting from your toes",
			"Mindful breathing focusing on the sensation of air entering and leaving",
		},
		responses: []string{
			"Anxiety can feel overwhelming, but you're not alone in this. Let's try some grounding techniques together.",
			"I can sense the anxiety in your words. Remember, anxiety is your body's way of trying to protect you, even when it feels too intense.",
			"Thank you for sharing this with me. Anxiety is very real and valid. What usually helps you feel a bit calmer?",
		},
		followUp: "What situations tend to trigger your anxiety the most?",
	},
	"depression": {
		symptoms: []string{"sadness", "hopelessness", "fatigue", "loss of interest", "sleep changes", "appetite changes"},
		techniques: []string{
			"Start with one small, achievable task each day",
			"Spend 10 minutes in sunlight or bright light",
			"Practice self-compassion - treat yourself as you would a good friend",
			"Connect with one person, even briefly",
		},
		responses: []string{
			"I can hear the heaviness in your words. Depression can make everything feel harder, but you're taking a brave step by reaching out.",
			"Thank you for trusting me with these feelings. Depression is real and treatable. You don't have to carry this alone.",
			"I'm here with you in this difficult moment. Even when it doesn't feel like it, this feeling is temporary.",
		},
		followUp: "What's one small thing that usually brings you even a tiny bit of comfort?",
	},
	"stress": {
		symptoms: []string{"tension", "overwhelm", "irritability", "difficulty concentrating", "headaches", "muscle tension"},
		techniques: []string{
			"Break large tasks into smaller, manageable steps",
			"Use the Pomodoro Technique: 25 minutes work, 5 minute break",
			"Practice saying 'no' to additional commitments when overwhelmed",
			"Take regular breaks to step away and breathe",
		},
		responses: []string{
			"Stress can feel like everything is happening at once. Let's break this down into manageable pieces.",
			"I can feel the pressure you're under. Stress is your body's response to demands, and it's okay to feel this way.",
			"You're dealing with a lot right now. What would feel most helpful - talking through it or learning some stress management techniques?",
		},
		followUp: "What's the biggest source of stress for you right now?",
	},
	"sleep": {
		symptoms: []string{"insomnia", "restless sleep", "early waking", "difficulty falling asleep", "nightmares"},
		techniques: []string{
			"Create a consistent bedtime routine 30-60 minutes before sleep",
			"Keep bedroom cool (65-68°F) and dark",
			"Avoid screens 1 hour before bed",
			"Try progressive muscle relaxation or body scan meditation",
		},
		responses: []string{
			"Sleep issues can affect everything else. Let's work on creating better sleep habits together.",
			"I understand how frustrating sleep problems can be. Good sleep is essential for mental health.",
			"Sleep difficulties are common, especially when we're stressed. What does your current bedtime routine look like?",
		},
		followUp: "What does your current bedtime routine look like?",
	},
	"relationships": {
		symptoms: []string{"conflict", "loneliness", "communication issues", "trust problems", "social anxiety"},
		techniques: []string{
			"Practice active listening - really hear what others are saying",
			"Use 'I' statements to express feelings without blame",
			"Set healthy boundaries to protect your emotional well-being",
			"Quality over quantity - nurture meaningful connections",
		},
		responses: []string{
			"Relationships can be complex and challenging. It's normal to have ups and downs with people we care about.",
			"Thank you for sharing this relationship concern. Healthy relationships require work from both sides.",
			"I can hear how much this relationship means to you. What would feel like a positive step forward?",
		},
		followUp: "What would feel like a positive step forward in this situation?",
	},
	"academic_pressure": {
		symptoms: []string{"exam anxiety", "perfectionism", "procrastination", "comparison with others", "fear of failure"},
		techniques: []string{
			"Set realistic, achievable study goals",
			"Use active recall and spaced repetition for better learning",
			"Take regular breaks to prevent burnout",
			"Remember that grades don't define your worth as a person",
		},
		responses: []string{
			"Academic pressure is real, especially in competitive environments. Your worth isn't determined by your grades.",
			"I can feel the stress you're experiencing about your studies. Let's find some strategies that work for you.",
			"Education is important, but so is your mental health. How can we balance both?",
		},
		followUp: "How can we balance your academic goals with your well-being?",
	},
}

var crisisIndicators = []string{
	"self-harm", "suicide", "hopeless", "worthless", "ending it all", "no point", "better off dead",
}

var crisisResponses = []string{
	"I'm very concerned about you right now. Your life has value and meaning, even when it doesn't feel that way.",
	"Thank you for trusting me with these difficult feelings. Please know that you're not alone and help is available.",
	"These feelings are temporary, even though they feel overwhelming right now. Let's get you connected with immediate support.",
}

var crisisResources = []string{
	"National Suicide Prevention Lifeline: 988 (US)",
	"Crisis Text Line: Text HOME to 741741",
	"International Association for Suicide Prevention: https://www.iasp.info/resources/Crisis_Centres/",
	"Your local emergency services: 911 (US), 112 (EU), or your local emergency number",
}

var greetingWords = []string{"hello", "hi", "hey", "namaste", "good morning", "good afternoon", "good evening"}

var greetingReplies = []string{
	"Namaste! I'm Solace, your wellness companion. I'm here to listen without judgment and support you through whatever you're experiencing. How are you feeling today?",
	"Hello! I'm Solace. I understand that reaching out can sometimes feel difficult, but I'm glad you're here. What's on your mind?",
	"Hey there! I'm Solace, and I'm here to provide a safe, supportive space for you. Whether you're having a great day or facing challenges, I'm here to listen. How can I support you today?",
}

const helpReply = "I'm here to support you with whatever you're going through. You can share your feelings, ask for coping strategies, " +
	"or we can try mindfulness exercises together. I have knowledge about anxiety, depression, stress, sleep issues, " +
	"relationships, and academic pressure. What would be most helpful for you right now?"

type emotionEntry struct {
	words     []string
	responses []string
}

var emotionEntries = []emotionEntry{
	{
		words: []string{"sad", "depressed", "down", "blue", "unhappy"},
		responses: []string{
			"I can hear the sadness in your words, and I want you to know that feeling this way is completely valid. Sadness is a natural human emotion, even though it's painful. What's been weighing on your heart lately?",
			"Thank you for trusting me with these difficult feelings. When we're sad, it can feel like the world has lost its color. You're not alone in this - I'm here with you. What would feel most supportive right now?",
			"I'm sensing a lot of pain in what you've shared. Sadness can feel overwhelming, but it's also a sign of your capacity to care deeply. What's one small thing that has brought you comfort in the past?",
		},
	},
	{
		words: []string{"anxious", "worried", "nervous", "panic", "stress"},
		responses: []string{
			"I can feel the anxiety in your message, and I want you to know that what you're experiencing is real and valid. Anxiety can make our minds race ahead of us. Let's try to ground you in this moment - can you name 3 things you can see around you right now?",
			"Anxiety can be really overwhelming and exhausting. You're showing strength by reaching out. Sometimes our anxiety is trying to protect us, but it can feel too intense. What does your anxiety feel like in your body right now?",
			"I hear how worried you're feeling. Anxiety often comes with a lot of 'what if' thoughts. Remember, you've gotten through anxious moments before, even when they felt impossible. What's one thing that has helped you feel calmer in the past?",
		},
	},
	{
		words: []string{"angry", "mad", "frustrated", "irritated"},
		responses: []string{
			"I can sense the frustration and anger in your words. Anger is a completely valid emotion - it often tells us that something important to us feels threatened or unfair. What's underneath this anger for you?",
			"Thank you for sharing these intense feelings with me. Anger can be really powerful and sometimes overwhelming. It takes courage to acknowledge and express it. What would help you feel heard and understood right now?",
			"I hear your anger, and I want you to know it's okay to feel this way. Sometimes anger is our way of protecting ourselves or standing up for what matters to us. What would help you channel this energy in a way that feels good for you?",
		},
	},
	{
		words: []string{"lonely", "alone", "isolated", "disconnected"},
		responses: []string{
			"Loneliness can feel so heavy and isolating. Thank you for reaching out - that takes real courage when you're feeling alone. Even in this moment, you're not truly alone because I'm here with you. What would meaningful connection look like for you right now?",
			"I can hear how lonely you're feeling, and I want you to acknowledge how brave you are for sharing this. Loneliness is something so many people experience, even when they're surrounded by others. What's one small way you could reach out to someone today?",
			"Feeling disconnected and alone is one of the most painful human experiences. You matter, and your feelings matter. Sometimes even small connections can help - is there anyone in your life you could reach out to, even just to say hello?",
		},
	},
	{
		words: []string{"tired", "exhausted", "drained", "burnout"},
		responses: []string{
			"I can hear how exhausted you're feeling, both physically and emotionally. Burnout is real, and it's your body and mind's way of telling you that you need rest and care. What would being gentle with yourself look like today?",
			"Feeling drained and tired can make everything seem harder than it usually is. You're doing your best, and that's enough. Sometimes the most important thing we can do is rest. What would feel most restorative for you right now?",
			"I hear how tired you are. When we're exhausted, it's hard to see clearly or feel hopeful. Your tiredness is valid - you've been carrying a lot. What's one way you could show yourself some kindness today?",
		},
	},
	{
		words: []string{"happy", "good", "great", "excited", "joy"},
		responses: []string{
			"I love hearing about your positive feelings! It's wonderful when we can notice and savor the good moments in life. What's bringing you this joy? I'd love to celebrate this with you.",
			"Your happiness is contagious! It's so important to acknowledge and appreciate these positive emotions when they come. What would you like to do to make the most of this good feeling?",
			"I'm so glad you're sharing this positivity with me! These moments of joy and contentment are precious. What's contributing to this good feeling, and how can you carry some of this energy forward?",
		},
	},
}

var generalReplies = []string{
	"Thank you for sharing this with me. I can sense that there's a lot going on for you right now. I'm here to listen without judgment and support you however I can. What feels most important for you to talk about?",
	"I'm listening, and I want you to know that whatever you're going through, you don't have to face it alone. Your experiences and feelings are valid. What would be most helpful for you in this moment?",
	"I appreciate you trusting me with your thoughts and feelings. Sometimes just having someone to talk to can make a difference. What's been on your mind lately that you'd like to explore together?",
	"I'm here with you in this moment. Every feeling you have is valid and deserves to be acknowledged. What would feel most supportive for you right now - talking through what you're experiencing, learning some coping strategies, or something else?",
}

// Reply produces a supportive response to a chat message. Crisis language is
// answered first with resource lines, then greetings, topic matches by
// symptom, emotion words, and finally a general supportive reply.
func (a *Assistant) Reply(message string) string {
	text := strings.TrimSpace(message)
	lower := strings.ToLower(text)

	for _, indicator := range crisisIndicators {
		if strings.Contains(lower, indicator) {
			response := crisisResponses[a.rng.Intn(len(crisisResponses))]
			return response + "\n\nImmediate Help Available:\n" +
				strings.Join(crisisResources, "\n\n") +
				"\n\nPlease reach out to one of these resources right away. You matter, and there are people who want to help."
		}
	}

	for _, g := range greetingWords {
		if strings.HasPrefix(lower, g) || strings.Contains(lower, g) {
			return greetingReplies[a.rng.Intn(len(greetingReplies))]
		}
	}

	if text == "" || text == "?" || lower == "help" {
		return helpReply
	}

	for _, name := range topicOrder {
		topic := topics[name]
		for _, symptom := range topic.symptoms {
			if strings.Contains(lower, symptom) {
				parts := []string{
					topic.responses[a.rng.Intn(len(topic.responses))],
					"Here's something that might help: " + topic.techniques[a.rng.Intn(len(topic.techniques))],
					topic.followUp,
				}
				return strings.Join(parts, " ")
			}
		}
	}

	for _, entry := range emotionEntries {
		for _, w := range entry.words {
			if strings.Contains(lower, w) {
				return entry.responses[a.rng.Intn(len(entry.responses))]
			}
		}
	}

	return generalReplies[a.rng.Intn(len(generalReplies))]
}

var suggestionGroups = []struct {
	words       []string
	suggestions []string
}{
	{
		words: []string{"anxious", "anxiety", "worried", "nervous"},
		suggestions: []string{
			"Can you tell me more about what's making you feel anxious?",
			"Would you like to try a breathing exercise together?",
			"What usually helps you when you feel this way?",
		},
	},
	{
		words: []string{"sad", "depressed", "down", "lonely"},
		suggestions: []string{
			"What's been weighing on your mind lately?",
			"Is there someone you feel comfortable talking to?",
			"What's one small thing that usually brings you comfort?",
		},
	},
	{
		words: []string{"stress", "stressed", "overwhelmed", "pressure"},
		suggestions: []string{
			"What's the biggest source of stress for you right now?",
			"How do you usually handle stressful situations?",
			"Would it help to break down what you're dealing with?",
		},
	},
	{
		words: []string{"happy", "good", "great", "excited", "joy"},
		suggestions: []string{
			"That's wonderful! What's making you feel so positive?",
			"I'd love to hear more about what's going well!",
			"How can you carry this positive energy forward?",
		},
	},
}

var generalSuggestions = []string{
	"How has your day been overall?",
	"What's one thing you're grateful for today?",
	"Is there anything specific you'd like to talk about?",
}

// Suggestions proposes follow-up prompts keyed off the user's last message.
func (a *Assistant) Suggestions(message string) []string {
	lower := strings.ToLower(message)
	for _, group := range suggestionGroups {
		for _, w := range group.words {
			if strings.Contains(lower, w) {
				return group.suggestions
			}
		}
	}
	return generalSuggestions
}
