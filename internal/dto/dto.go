package dto

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}

type LogMoodRequest struct {
	Mood string `json:"mood"`
	Note string `json:"note"`
}

type LogMoodResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
	Updated bool   `json:"updated"`
}

type JournalRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	EntryDate string `json:"entry_date"`
}

type JournalAnalysisRequest struct {
	Content string `json:"content"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
}

type ChatResponse struct {
	Reply              string   `json:"reply"`
	Crisis             bool     `json:"crisis"`
	RateLimitRemaining int      `json:"rate_limit_remaining"`
	MessageID          string   `json:"message_id"`
	Timestamp          string   `json:"timestamp"`
	Suggestions        []string `json:"suggestions,omitempty"`
}
