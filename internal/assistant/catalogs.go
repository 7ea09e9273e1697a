package assistant

// WellnessTip is a short self-care suggestion grouped by category.
type WellnessTip struct {
	Category   string `json:"category"`
	Tip        string `json:"tip"`
	Difficulty string `json:"difficulty"`
}

// Affirmation is a themed positive statement.
type Affirmation struct {
	Text  string `json:"text"`
	Theme string `json:"theme"`
}

// MindfulnessExercise is a guided short practice.
type MindfulnessExercise struct {
	Name        string `json:"name"`
	Instruction string `json:"instruction"`
	Duration    string `json:"duration"`
	Benefit     string `json:"benefit"`
}

// DailyAction is a small actionable step with its expected payoff.
type DailyAction struct {
	Action   string `json:"action"`
	Duration string `json:"duration"`
	Benefit  string `json:"benefit"`
	Icon     string `json:"icon"`
}

// ConversationStarter seeds the chat with a prompt.
type ConversationStarter struct {
	Text     string `json:"text"`
	Category string `json:"category"`
	Icon     string `json:"icon"`
}

// WellnessPlan lays out goals across time horizons plus emergency resources.
type WellnessPlan struct {
	DailyGoals       []string `json:"daily_goals"`
	WeeklyGoals      []string `json:"weekly_goals"`
	MonthlyGoals     []string `json:"monthly_goals"`
	EmergencyToolkit []string `json:"emergency_toolkit"`
	Resources        []string `json:"resources"`
}

var tipCategories = []string{
	"stress_management",
	"mood_boosting",
	"sleep_hygiene",
	"mindfulness",
	"social_connection",
}

var tipsByCategory = map[string][]string{
	"stress_management": {
		"Try the 4-7-8 breathing technique: Inhale for 4, hold for 7, exhale for 8.",
		"Take a 5-minute walk outside to reset your mind and body.",
		"Practice progressive muscle relaxation starting from your toes.",
	},
	"mood_boosting": {
		"Listen to your favorite uplifting song and really focus on the lyrics.",
		"Write down three things you're grateful for today, no matter how small.",
		"Do something kind for someone else - it naturally boosts your mood.",
	},
	"sleep_hygiene": {
		"Create a wind-down routine 30 minutes before bed without screens.",
		"Keep your bedroom cool (65-68°F) for optimal sleep quality.",
		"Try the 'body scan' meditation to relax before sleep.",
	},
	"mindfulness": {
		"Practice the 5-4-3-2-1 grounding technique when feeling overwhelmed.",
		"Take three conscious breaths before starting any new task today.",
		"Notice one beautiful thing around you right now and appreciate it fully.",
	},
	"social_connection": {
		"Send a thoughtful message to someone you care about.",
		"Schedule a coffee date or call with a friend this week.",
		"Join a community group or activity that interests you.",
	},
}

var affirmations = []Affirmation{
	{Text: "I am worthy of love, care, and respect - especially from myself.", Theme: "self_worth"},
	{Text: "Every small step I take toward wellness matters and makes a difference.", Theme: "progress"},
	{Text: "I have the strength to handle whatever today brings me.", Theme: "resilience"},
	{Text: "My feelings are valid, and it's okay to experience them fully.", Theme: "emotional_acceptance"},
	{Text: "I choose to be patient and kind with myself as I grow and heal.", Theme: "self_compassion"},
	{Text: "I am not alone in my journey, and it's okay to ask for help.", Theme: "connection"},
}

var mindfulnessExercises = []MindfulnessExercise{
	{
		Name:        "5-4-3-2-1 Grounding",
		Instruction: "Notice 5 things you can see, 4 you can touch, 3 you can hear, 2 you can smell, 1 you can taste.",
		Duration:    "3-5 minutes",
		Benefit:     "Brings you into the present moment",
	},
	{
		Name:        "Box Breathing",
		Instruction: "Breathe in for 4 counts, hold for 4, exhale for 4, hold for 4. Repeat 4 times.",
		Duration:    "2-3 minutes",
		Benefit:     "Calms the nervous system",
	},
	{
		Name:        "Body Scan",
		Instruction: "Starting from your toes, slowly notice each part of your body, releasing any tension you find.",
		Duration:    "5-10 minutes",
		Benefit:     "Promotes relaxation and body awareness",
	},
	{
		Name:        "Loving Kindness",
		Instruction: "Send kind thoughts to yourself, then to loved ones, then to all beings: 'May you be happy, may you be peaceful.'",
		Duration:    "5-7 minutes",
		Benefit:     "Increases compassion and positive emotions",
	},
}

var dailyActions = []DailyAction{
	{Action: "Take 5 deep breaths", Duration: "2 minutes", Benefit: "Reduces stress and centers your mind", Icon: "🫁"},
	{Action: "Write one thing you're grateful for", Duration: "3 minutes", Benefit: "Shifts focus to positive aspects of life", Icon: "🙏"},
	{Action: "Step outside for fresh air", Duration: "5 minutes", Benefit: "Natural mood boost and vitamin D", Icon: "🌞"},
	{Action: "Listen to calming music", Duration: "10 minutes", Benefit: "Reduces anxiety and promotes relaxation", Icon: "🎵"},
	{Action: "Do gentle stretches", Duration: "5 minutes", Benefit: "Releases physical tension and improves mood", Icon: "🧘"},
}

var conversationStarters = []ConversationStarter{
	{Text: "How are you feeling today?", Category: "check_in", Icon: "💭"},
	{Text: "What's been on your mind lately?", Category: "reflection", Icon: "🤔"},
	{Text: "Tell me about something good that happened recently", Category: "positive", Icon: "😊"},
	{Text: "What's been challenging for you?", Category: "support", Icon: "🤗"},
	{Text: "What would help you feel better right now?", Category: "coping", Icon: "💪"},
	{Text: "How has your sleep been?", Category: "wellness", Icon: "😴"},
}

var defaultWellnessPlan = WellnessPlan{
	DailyGoals: []string{
		"Log your mood once per day",
		"Take 3 conscious deep breaths",
		"Write one sentence about your day",
	},
	WeeklyGoals: []string{
		"Complete 2-3 journal entries",
		"Try one new mindfulness exercise",
		"Connect with a friend or family member",
	},
	MonthlyGoals: []string{
		"Review your mood patterns",
		"Set one new wellness intention",
		"Celebrate your progress",
	},
	EmergencyToolkit: []string{
		"Call a trusted friend: [Your emergency contact]",
		"Use the 5-4-3-2-1 grounding technique",
		"Take slow, deep breaths for 2 minutes",
		"Go to your safe space or comfort area",
	},
	Resources: []string{
		"Crisis Text Line: Text HOME to 741741",
		"National Suicide Prevention Lifeline: 988",
		"Your local emergency services: 911",
	},
}
