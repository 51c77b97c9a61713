package chatHandler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"golang.org/x/net/context"

	"EduBot/internal/api/chat"
	contextPkg "EduBot/pkg/context"
	"EduBot/pkg/handlerUtil"
	"EduBot/pkg/log"
)

func (h *ChatHandler) Webhook(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 5*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req chat.WebhookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, chat.ErrBadRequest, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if req.From == "" {
		req.From = "anon"
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
		"from":       req.From,
	}).Debug("Processing webhook message")

	reply, err := h.chatService.Resolve(c, req.Message)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "resolve_message")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
			"from":       req.From,
		}).Info("Message resolved")
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, chat.WebhookResponse{
			Reply: reply,
		})
	}
}

func (h *ChatHandler) ExtractEntities(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	var req chat.EntitiesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, chat.ErrBadRequest, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	entities := h.chatService.ExtractEntities(req.Message)

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, chat.EntitiesResponse{
		Entities: entities,
	})
}

func (h *ChatHandler) ListLessons(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log)

	lessons := h.chatService.LessonList()
	summaries := make([]chat.LessonSummary, 0, len(lessons))
	for _, lesson := range lessons {
		summaries = append(summaries, chat.LessonSummary{
			ID:    lesson.ID,
			Title: lesson.Title,
		})
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, chat.LessonListResponse{
		Materi: summaries,
	})
}

func (h *ChatHandler) handleChatWebSocket(c *websocket.Conn) {
	h.log.Info("Chat WebSocket client connected")
	defer h.log.Info("Chat WebSocket client disconnected")

	maxReadTimeout := 60 * time.Second

	for {
		if err := c.SetReadDeadline(time.Now().Add(maxReadTimeout)); err != nil {
			h.log.Errorf("Error setting read deadline: %v", err)
			break
		}

		var req chat.WebhookRequest
		if err := c.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Errorf("Chat WebSocket error: %v", err)
			} else {
				h.log.Info("Chat WebSocket connection closed")
			}
			break
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		reply, err := h.chatService.Resolve(ctx, req.Message)
		cancel()

		if err != nil {
			h.log.Errorf("Error resolving message: %v", err)
			if writeErr := c.WriteJSON(map[string]string{"error": err.Error()}); writeErr != nil {
				h.log.Errorf("Error sending error response: %v", writeErr)
				break
			}
			continue
		}

		if err := c.WriteJSON(chat.WebhookResponse{Reply: reply}); err != nil {
			h.log.Errorf("Error writing JSON response: %v", err)
			break
		}
	}
}
