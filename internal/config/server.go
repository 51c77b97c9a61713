package config

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	chatHandler "EduBot/internal/api/chat/handler"
	chatRepository "EduBot/internal/api/chat/repository"
	chatService "EduBot/internal/api/chat/service"
	"EduBot/internal/middleware"
	"EduBot/pkg/gemini"
	"EduBot/pkg/nlp"
)

const (
	defaultIntentsPath = "data/intents.json"
	defaultLessonsPath = "data/materi.json"
)

type ServerOption func(*Server) error

type Server struct {
	engine       *fiber.App
	log          *logrus.Logger
	middleware   middleware.Middleware
	validator    *validator.Validate
	handlers     []handler
	chatRepo     chatRepository.IChatRepository
	matcher      nlp.IMatcher
	extractor    nlp.IExtractor
	geminiClient gemini.IGemini
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

// WithChatRepository loads the intent corpus and lesson catalog once.
// A missing or malformed file aborts startup; the server never serves with a
// partial corpus.
func WithChatRepository() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before repository")
		}

		intentsPath := os.Getenv("INTENTS_PATH")
		if intentsPath == "" {
			intentsPath = defaultIntentsPath
		}
		lessonsPath := os.Getenv("MATERI_PATH")
		if lessonsPath == "" {
			lessonsPath = defaultLessonsPath
		}

		repo := chatRepository.New(s.log)
		if err := repo.Load(intentsPath, lessonsPath); err != nil {
			s.log.Errorf("Failed to load chat corpus: %v", err)
			return fmt.Errorf("failed to load chat corpus: %w", err)
		}
		s.chatRepo = repo
		return nil
	}
}

func WithMatcher(matcher nlp.IMatcher) ServerOption {
	return func(s *Server) error {
		s.matcher = matcher
		return nil
	}
}

func WithExtractor(extractor nlp.IExtractor) ServerOption {
	return func(s *Server) error {
		s.extractor = extractor
		return nil
	}
}

func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		client, err := gemini.NewGeminiClient()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to create Gemini client: %v", err)
			}
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		s.geminiClient = client
		return nil
	}
}

func (s *Server) RegisterHandler() {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	chatServices := chatService.NewChatService(s.log, s.chatRepo, s.matcher, s.extractor, s.geminiClient, rng)
	chatHandlers := chatHandler.New(s.log, s.validator, s.middleware, chatServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, chatHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
