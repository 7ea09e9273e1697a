package handlers

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/solaceapp/solace-backend/internal/analytics"
	"github.com/solaceapp/solace-backend/internal/dto"
	"github.com/solaceapp/solace-backend/internal/models"
	"github.com/solaceapp/solace-backend/internal/safety"
	"github.com/solaceapp/solace-backend/internal/store"
)

type JournalHandler struct {
	journals *store.JournalRepository
}

func NewJournalHandler(journals *store.JournalRepository) *JournalHandler {
	return &JournalHandler{journals: journals}
}

func (h *JournalHandler) Create(c *fiber.Ctx) error {
	var req dto.JournalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "content is required",
		})
	}

	entryDate, err := parseEntryDate(req.EntryDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "entry_date must be YYYY-MM-DD",
		})
	}

	entry := &models.JournalEntry{
		Title:     safety.Sanitize(req.Title, 200),
		Content:   safety.Sanitize(req.Content, 10000),
		EntryDate: entryDate,
	}
	if err := h.journals.Create(entry); err != nil {
		slog.Error("failed to create journal entry", "action", "create_journal", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save entry",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "saved", "id": entry.ID})
}

func (h *JournalHandler) List(c *fiber.Ctx) error {
	entries, err := h.journals.ListRecent(0, time.Time{})
	if err != nil {
		slog.Error("failed to list journal entries", "action", "list_journal", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load entries",
		})
	}
	return c.JSON(entries)
}

func (h *JournalHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid entry id",
		})
	}

	entry, err := h.journals.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Entry not found",
			})
		}
		slog.Error("failed to load journal entry", "action", "get_journal", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load entry",
		})
	}
	return c.JSON(entry)
}

func (h *JournalHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid entry id",
		})
	}

	var req dto.JournalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "content is required",
		})
	}

	existing, err := h.journals.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Entry not found",
			})
		}
		slog.Error("failed to load journal entry", "action", "update_journal", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update entry",
		})
	}

	existing.Title = safety.Sanitize(req.Title, 200)
	existing.Content = safety.Sanitize(req.Content, 10000)
	if req.EntryDate != "" {
		entryDate, err := parseEntryDate(req.EntryDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "entry_date must be YYYY-MM-DD",
			})
		}
		existing.EntryDate = entryDate
	}

	if err := h.journals.Update(existing); err != nil {
		slog.Error("failed to update journal entry", "action", "update_journal", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update entry",
		})
	}
	return c.JSON(fiber.Map{"message": "Entry updated successfully"})
}

func (h *JournalHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid entry id",
		})
	}

	if err := h.journals.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Entry not found",
			})
		}
		slog.Error("failed to delete journal entry", "action", "delete_journal", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete entry",
		})
	}
	return c.JSON(fiber.Map{"message": "Entry deleted successfully"})
}

func parseEntryDate(raw string) (time.Time, error) {
	if raw == "" {
		return analytics.DateOnly(time.Now()), nil
	}
	return time.ParseInLocation("2006-01-02", raw, time.UTC)
}
