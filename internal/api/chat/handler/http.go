package chatHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"

	chatService "EduBot/internal/api/chat/service"
	"EduBot/internal/middleware"
)

type ChatHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	chatService chatService.IChatService
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	cs chatService.IChatService,
) *ChatHandler {
	return &ChatHandler{
		log:         log,
		validator:   validator,
		middleware:  middleware,
		chatService: cs,
	}
}

func (h *ChatHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	chat := srv.Group("/chat")
	chat.Post("/webhook", h.middleware.NewRateLimiter, h.Webhook)
	chat.Post("/entities", h.ExtractEntities)
	chat.Get("/materi", h.ListLessons)
	chat.Use("/ws", wsMiddleware)
	chat.Get("/ws", websocket.New(h.handleChatWebSocket))
}
