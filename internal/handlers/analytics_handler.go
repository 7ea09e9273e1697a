package handlers

import (
	"bytes"
	"encoding/csv"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/solaceapp/solace-backend/internal/dto"
	"github.com/solaceapp/solace-backend/internal/services"
)

type AnalyticsHandler struct {
	wellness *services.WellnessService
}

func NewAnalyticsHandler(wellness *services.WellnessService) *AnalyticsHandler {
	return &AnalyticsHandler{wellness: wellness}
}

func (h *AnalyticsHandler) MoodTrends(c *fiber.Ctx) error {
	return c.JSON(h.wellness.MoodTrends())
}

func (h *AnalyticsHandler) Patterns(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"patterns": h.wellness.Patterns()})
}

func (h *AnalyticsHandler) AdvancedPatterns(c *fiber.Ctx) error {
	report, message := h.wellness.AdvancedPatterns()
	if message != "" {
		return c.JSON(fiber.Map{"message": message, "advanced_patterns": report})
	}
	return c.JSON(fiber.Map{"advanced_patterns": report})
}

func (h *AnalyticsHandler) Recommendations(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"recommendations": h.wellness.Recommendations()})
}

func (h *AnalyticsHandler) RiskAssessment(c *fiber.Ctx) error {
	return c.JSON(h.wellness.RiskAssessment())
}

func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	return c.JSON(h.wellness.Dashboard())
}

func (h *AnalyticsHandler) Insights(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"insights": h.wellness.Insights()})
}

// ExportJSON downloads the full mood and journal history as a JSON file.
func (h *AnalyticsHandler) ExportJSON(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=solace_wellness_data.json`)
	return c.JSON(h.wellness.ExportData())
}

// ExportCSV downloads the mood history as a CSV file.
func (h *AnalyticsHandler) ExportCSV(c *fiber.Ctx) error {
	export := h.wellness.ExportData()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Date", "Mood", "Note", "Created At"}); err != nil {
		slog.Error("csv export failed", "action", "export_csv", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Export failed",
		})
	}
	for _, m := range export.MoodLogs {
		record := []string{
			m.Day().Format("2006-01-02"),
			m.Mood,
			m.Note,
			m.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			slog.Error("csv export failed", "action", "export_csv", "error", err.Error())
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Export failed",
			})
		}
	}
	w.Flush()

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=mood_data.csv`)
	return c.Send(buf.Bytes())
}
