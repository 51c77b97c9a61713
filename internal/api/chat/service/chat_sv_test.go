package chatService

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"EduBot/internal/entity"
	"EduBot/pkg/nlp"
)

type stubRepository struct {
	intents []entity.Intent
	lessons []entity.LessonEntry
}

func (r *stubRepository) Load(intentsPath, lessonsPath string) error { return nil }
func (r *stubRepository) Intents() []entity.Intent                   { return r.intents }
func (r *stubRepository) Lessons() []entity.LessonEntry              { return r.lessons }
func (r *stubRepository) LookupLesson(key string) (entity.LessonEntry, bool) {
	for _, lesson := range r.lessons {
		if lesson.ID == key {
			return lesson, true
		}
	}
	return entity.LessonEntry{}, false
}

func newTestService() IChatService {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	repo := &stubRepository{
		intents: []entity.Intent{
			{
				Label:     "greeting",
				Patterns:  []string{"hello", "hi there"},
				Responses: []string{"Hi!", "Hey!"},
			},
			{
				Label:     "thanks",
				Patterns:  []string{"terima kasih"},
				Responses: []string{"Sama-sama!"},
			},
		},
		lessons: []entity.LessonEntry{
			{ID: "1", Title: "Pengenalan AI", Body: "AI adalah bidang ilmu komputer."},
			{ID: "2", Title: "Machine Learning Dasar", Body: "Belajar pola dari data."},
		},
	}

	rng := rand.New(rand.NewSource(42))

	return NewChatService(logger, repo, nlp.NewMatcher(), nlp.NewExtractor(), nil, rng)
}

func TestResolveIntentReturnsDeclaredResponse(t *testing.T) {
	s := newTestService()

	for i := 0; i < 20; i++ {
		reply, err := s.Resolve(context.Background(), "hello")
		assert.NoError(t, err)
		assert.Contains(t, []string{"Hi!", "Hey!"}, reply)
	}
}

func TestResolveIntentCaseInsensitive(t *testing.T) {
	s := newTestService()

	reply, err := s.Resolve(context.Background(), "TERIMA KASIH")

	assert.NoError(t, err)
	assert.Equal(t, "Sama-sama!", reply)
}

func TestResolveMenuTrigger(t *testing.T) {
	s := newTestService()

	tests := []struct {
		name    string
		message string
	}{
		{name: "plain menu word", message: "menu"},
		{name: "padded mixed case trigger", message: "  Mulai  "},
		{name: "multi word trigger", message: "saya mau belajar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, err := s.Resolve(context.Background(), tt.message)

			assert.NoError(t, err)
			assert.Contains(t, reply, "1. Pengenalan AI")
			assert.Contains(t, reply, "2. Machine Learning Dasar")
			assert.Less(t, strings.Index(reply, "Pengenalan AI"), strings.Index(reply, "Machine Learning Dasar"))
		})
	}
}

func TestResolveLessonLookup(t *testing.T) {
	s := newTestService()

	reply, err := s.Resolve(context.Background(), " 1 ")

	assert.NoError(t, err)
	assert.Contains(t, reply, "Pengenalan AI")
	assert.Contains(t, reply, "AI adalah bidang ilmu komputer.")
}

func TestResolveFallbackIsDeterministic(t *testing.T) {
	s := newTestService()

	first, err := s.Resolve(context.Background(), "xyzzy plugh")
	assert.NoError(t, err)

	second, err := s.Resolve(context.Background(), "xyzzy plugh")
	assert.NoError(t, err)

	assert.Equal(t, fallbackReply, first)
	assert.Equal(t, first, second)
}

func TestResolveUnknownLessonIDFallsBack(t *testing.T) {
	s := newTestService()

	reply, err := s.Resolve(context.Background(), "99")

	assert.NoError(t, err)
	assert.Equal(t, fallbackReply, reply)
}

func TestResolveWhitespaceOnlyFallsBack(t *testing.T) {
	s := newTestService()

	tests := []struct {
		name    string
		message string
	}{
		{name: "empty string", message: ""},
		{name: "spaces only", message: "   "},
		{name: "tabs and newlines", message: "\t\n "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, err := s.Resolve(context.Background(), tt.message)

			assert.NoError(t, err)
			assert.Equal(t, fallbackReply, reply)
		})
	}
}

func TestResolveCategoryIsStable(t *testing.T) {
	s := newTestService()

	for i := 0; i < 10; i++ {
		reply, err := s.Resolve(context.Background(), "hi there")
		assert.NoError(t, err)
		assert.Contains(t, []string{"Hi!", "Hey!"}, reply)
	}
}
