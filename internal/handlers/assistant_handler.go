package handlers

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/solaceapp/solace-backend/internal/assistant"
	"github.com/solaceapp/solace-backend/internal/dto"
	"github.com/solaceapp/solace-backend/internal/models"
	"github.com/solaceapp/solace-backend/internal/store"
)

type AssistantHandler struct {
	assistant *assistant.Assistant
	moods     *store.MoodRepository
	journals  *store.JournalRepository
}

func NewAssistantHandler(a *assistant.Assistant, moods *store.MoodRepository, journals *store.JournalRepository) *AssistantHandler {
	return &AssistantHandler{assistant: a, moods: moods, journals: journals}
}

// DailyInsights returns the full daily briefing: mood insight, tip, progress,
// actions, mindfulness moment and affirmation.
func (h *AssistantHandler) DailyInsights(c *fiber.Ctx) error {
	recentMoods := h.recentMoods(7)
	totalMoods, totalJournals := h.totals()

	insights := h.assistant.Daily(recentMoods, totalMoods, totalJournals, time.Now())
	return c.JSON(fiber.Map{
		"insights":     insights,
		"generated_at": time.Now().UTC().Format(time.RFC3339),
		"personalized": len(recentMoods) > 0,
	})
}

func (h *AssistantHandler) Affirmation(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"affirmation": h.assistant.Affirmation(),
		"date":        time.Now().UTC().Format("2006-01-02"),
	})
}

func (h *AssistantHandler) WellnessTip(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"tip":          h.assistant.Tip(),
		"generated_at": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *AssistantHandler) MindfulnessExercise(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"exercise":     h.assistant.Mindfulness(),
		"generated_at": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *AssistantHandler) ConversationStarters(c *fiber.Ctx) error {
	starters := h.assistant.Starters()
	return c.JSON(fiber.Map{
		"conversation_starters": starters,
		"count":                 len(starters),
	})
}

func (h *AssistantHandler) SmartSuggestions(c *fiber.Ctx) error {
	suggestions := h.assistant.SuggestActions()
	return c.JSON(fiber.Map{
		"suggestions":  suggestions,
		"count":        len(suggestions),
		"generated_at": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *AssistantHandler) ProgressSummary(c *fiber.Ctx) error {
	totalMoods, totalJournals := h.totals()
	progress := h.assistant.Progress(h.recentMoods(30), totalMoods, totalJournals, time.Now())
	return c.JSON(fiber.Map{
		"progress":     progress,
		"generated_at": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *AssistantHandler) WellnessPlan(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"wellness_plan": h.assistant.Plan(),
		"created_at":    time.Now().UTC().Format(time.RFC3339),
		"duration":      "30_days",
	})
}

func (h *AssistantHandler) AnalyzeJournal(c *fiber.Ctx) error {
	var req dto.JournalAnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if strings.TrimSpace(req.Content) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Journal content cannot be empty",
		})
	}

	return c.JSON(fiber.Map{
		"analysis":    h.assistant.AnalyzeJournal(req.Content),
		"analyzed_at": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *AssistantHandler) recentMoods(limit int) []models.MoodLog {
	moods, err := h.moods.ListRecent(limit, time.Time{})
	if err != nil {
		slog.Warn("mood store unavailable", "action", "assistant_moods", "error", err.Error())
		return nil
	}
	return moods
}

func (h *AssistantHandler) totals() (int64, int64) {
	totalMoods, err := h.moods.Count()
	if err != nil {
		slog.Warn("mood count unavailable", "action", "assistant_totals", "error", err.Error())
	}
	totalJournals, err := h.journals.Count()
	if err != nil {
		slog.Warn("journal count unavailable", "action", "assistant_totals", "error", err.Error())
	}
	return totalMoods, totalJournals
}
