package chatService

import (
	"math/rand"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	chatRepository "EduBot/internal/api/chat/repository"
	"EduBot/internal/entity"
	"EduBot/pkg/gemini"
	"EduBot/pkg/nlp"
)

type IChatService interface {
	Resolve(ctx context.Context, message string) (string, error)
	ExtractEntities(message string) []nlp.Entity
	LessonList() []entity.LessonEntry
}

type chatService struct {
	log        *logrus.Logger
	repository chatRepository.IChatRepository
	matcher    nlp.IMatcher
	extractor  nlp.IExtractor
	gemini     gemini.IGemini
	rng        *rand.Rand
	rngMu      sync.Mutex
}

func NewChatService(
	log *logrus.Logger,
	repository chatRepository.IChatRepository,
	matcher nlp.IMatcher,
	extractor nlp.IExtractor,
	gemini gemini.IGemini,
	rng *rand.Rand,
) IChatService {
	return &chatService{
		log:        log,
		repository: repository,
		matcher:    matcher,
		extractor:  extractor,
		gemini:     gemini,
		rng:        rng,
	}
}
