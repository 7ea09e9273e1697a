package handlers

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/solaceapp/solace-backend/internal/analytics"
	"github.com/solaceapp/solace-backend/internal/dto"
	"github.com/solaceapp/solace-backend/internal/safety"
	"github.com/solaceapp/solace-backend/internal/store"
)

type MoodHandler struct {
	moods *store.MoodRepository
}

func NewMoodHandler(moods *store.MoodRepository) *MoodHandler {
	return &MoodHandler{moods: moods}
}

// Log records today's mood, replacing any earlier entry for the same date.
func (h *MoodHandler) Log(c *fiber.Ctx) error {
	var req dto.LogMoodRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.Mood == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "mood is required",
		})
	}

	note := safety.Sanitize(req.Note, 2000)
	today := analytics.DateOnly(time.Now())

	log, updated, err := h.moods.UpsertForDate(today, req.Mood, note)
	if err != nil {
		slog.Error("failed to log mood", "action", "log_mood", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to log mood",
		})
	}

	message := "Mood logged successfully"
	if updated {
		message = "Mood updated for today"
	}
	return c.JSON(dto.LogMoodResponse{
		Message: message,
		ID:      log.ID.String(),
		Updated: updated,
	})
}

// List returns all mood entries, newest first.
func (h *MoodHandler) List(c *fiber.Ctx) error {
	logs, err := h.moods.ListRecent(0, time.Time{})
	if err != nil {
		slog.Error("failed to list moods", "action", "list_moods", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load mood entries",
		})
	}
	return c.JSON(logs)
}

func (h *MoodHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid mood id",
		})
	}

	if err := h.moods.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Entry not found",
			})
		}
		slog.Error("failed to delete mood", "action", "delete_mood", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete entry",
		})
	}
	return c.JSON(fiber.Map{"message": "Entry deleted successfully"})
}

// CleanupDuplicates drops older duplicate rows sharing a logged date.
func (h *MoodHandler) CleanupDuplicates(c *fiber.Ctx) error {
	removed, err := h.moods.CleanupDuplicates()
	if err != nil {
		slog.Error("mood cleanup failed", "action", "cleanup_moods", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Cleanup failed",
		})
	}
	return c.JSON(fiber.Map{"message": "Cleanup completed", "removed": removed})
}
