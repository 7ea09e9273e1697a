package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/solaceapp/solace-backend/internal/handlers"
	"github.com/solaceapp/solace-backend/internal/middleware"
	"github.com/solaceapp/solace-backend/internal/ratelimit"
)

func Setup(
	app *fiber.App,
	apiLimiter *ratelimit.Limiter,
	chatLimiter *ratelimit.Limiter,
	healthHandler *handlers.HealthHandler,
	moodHandler *handlers.MoodHandler,
	journalHandler *handlers.JournalHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	assistantHandler *handlers.AssistantHandler,
	chatHandler *handlers.ChatHandler,
) {
	api := app.Group("/api")

	api.Get("/health", healthHandler.Check)

	// Mood logging
	api.Post("/mood/log", moodHandler.Log)
	api.Get("/mood/entries", moodHandler.List)
	api.Delete("/mood/entries/:id", moodHandler.Delete)
	api.Post("/mood/cleanup-duplicates", moodHandler.CleanupDuplicates)

	// Journal CRUD
	api.Post("/journal", journalHandler.Create)
	api.Get("/journal", journalHandler.List)
	api.Get("/journal/:id", journalHandler.Get)
	api.Put("/journal/:id", journalHandler.Update)
	api.Delete("/journal/:id", journalHandler.Delete)

	// Analytics, rate limited with the general API window
	analytics := api.Group("/analytics", middleware.RateLimit(apiLimiter))
	analytics.Get("/mood-trends", analyticsHandler.MoodTrends)
	analytics.Get("/patterns", analyticsHandler.Patterns)
	analytics.Get("/advanced-patterns", analyticsHandler.AdvancedPatterns)
	analytics.Get("/recommendations", analyticsHandler.Recommendations)
	analytics.Get("/risk-assessment", analyticsHandler.RiskAssessment)
	analytics.Get("/dashboard", analyticsHandler.Dashboard)
	analytics.Get("/insights", analyticsHandler.Insights)
	analytics.Get("/export/json", analyticsHandler.ExportJSON)
	analytics.Get("/export/csv", analyticsHandler.ExportCSV)

	// Assistant features share the general API limiter
	ai := api.Group("/ai", middleware.RateLimit(apiLimiter))
	ai.Get("/daily-insights", assistantHandler.DailyInsights)
	ai.Get("/affirmation", assistantHandler.Affirmation)
	ai.Get("/wellness-tip", assistantHandler.WellnessTip)
	ai.Get("/mindfulness-exercise", assistantHandler.MindfulnessExercise)
	ai.Get("/conversation-starters", assistantHandler.ConversationStarters)
	ai.Get("/smart-suggestions", assistantHandler.SmartSuggestions)
	ai.Get("/progress-summary", assistantHandler.ProgressSummary)
	ai.Get("/wellness-plan", assistantHandler.WellnessPlan)
	ai.Post("/analyze-journal", assistantHandler.AnalyzeJournal)

	// Chat carries its own stricter limiter
	chat := api.Group("/chat", middleware.RateLimit(chatLimiter))
	chat.Post("/", chatHandler.Chat)
}
