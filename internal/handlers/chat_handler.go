package handlers

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/solaceapp/solace-backend/internal/assistant"
	"github.com/solaceapp/solace-backend/internal/dto"
	"github.com/solaceapp/solace-backend/internal/safety"
)

type ChatHandler struct {
	assistant *assistant.Assistant
}

func NewChatHandler(a *assistant.Assistant) *ChatHandler {
	return &ChatHandler{assistant: a}
}

// Chat answers the latest user message. Crisis language short-circuits to the
// crisis resource message followed by a supportive reply.
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if len(req.Messages) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "messages must be a non-empty list",
		})
	}

	sanitized := make([]dto.ChatMessage, 0, len(req.Messages))
	for _, msg := range req.Messages {
		role := msg.Role
		if role == "" {
			role = "user"
		}
		sanitized = append(sanitized, dto.ChatMessage{
			Role:    role,
			Content: safety.Sanitize(msg.Content, 2000),
		})
	}

	var latestUser string
	for i := len(sanitized) - 1; i >= 0; i-- {
		if sanitized[i].Role == "user" {
			latestUser = sanitized[i].Content
			break
		}
	}

	remaining, _ := strconv.Atoi(c.GetRespHeader("X-RateLimit-Remaining"))
	messageID := fmt.Sprintf("msg_%d_%d", len(sanitized), contentHash(latestUser)%10000)
	timestamp := time.Now().UTC().Format(time.RFC3339)

	if safety.Detect(latestUser) {
		supportive := h.assistant.Reply(latestUser)
		return c.JSON(dto.ChatResponse{
			Reply:              safety.CrisisMessage() + "\n\n" + supportive,
			Crisis:             true,
			RateLimitRemaining: remaining,
			MessageID:          messageID,
			Timestamp:          timestamp,
		})
	}

	return c.JSON(dto.ChatResponse{
		Reply:              h.assistant.Reply(latestUser),
		Crisis:             false,
		RateLimitRemaining: remaining,
		MessageID:          messageID,
		Timestamp:          timestamp,
		Suggestions:        h.assistant.Suggestions(latestUser),
	})
}

func contentHash(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}
