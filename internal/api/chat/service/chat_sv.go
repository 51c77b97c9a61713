package chatService

import (
	"fmt"
	"strings"

	"golang.org/x/net/context"

	"EduBot/internal/entity"
	"EduBot/pkg/nlp"
)

const fallbackReply = "Maaf, saya belum paham maksud Anda. Bisa ulangi dengan kata yang lebih jelas?"

// Exact phrases that open the lesson menu, compared case-insensitively after
// trimming.
var menuTriggers = []string{
	"halo", "hi", "mulai", "start",
	"saya mau belajar", "belajar ai", "menu", "pilihan belajar",
}

// Resolve turns one message into exactly one reply. The rules are a priority
// order: intent match, menu trigger, lesson lookup, fallback. Trimming
// happens once up front; menu triggers compare case-insensitively while
// lesson ids must match the trimmed message exactly. A blank message matches
// nothing and lands on the fallback like any other unrecognized input.
func (s *chatService) Resolve(ctx context.Context, message string) (string, error) {
	trimmed := strings.TrimSpace(message)

	// Advisory only: the extracted entities are logged for later dialogue
	// rules but never change the reply.
	if entities := s.extractor.Extract(trimmed); len(entities) > 0 {
		s.log.WithField("entities", entities).Debug("Entities detected in message")
	}

	result := s.matcher.Match(trimmed, s.repository.Intents(), nlp.DefaultThreshold)
	if result.Intent != nil {
		s.log.WithFields(map[string]interface{}{
			"intent": result.Intent.Label,
			"score":  result.Score,
		}).Debug("Intent matched")
		return s.pickResponse(result.Intent), nil
	}

	if s.isMenuTrigger(trimmed) {
		return s.menuReply(), nil
	}

	if lesson, ok := s.repository.LookupLesson(trimmed); ok {
		return fmt.Sprintf("📘 *%s*\n\n%s", lesson.Title, lesson.Body), nil
	}

	return fallbackReply, nil
}

func (s *chatService) ExtractEntities(message string) []nlp.Entity {
	return s.extractor.Extract(message)
}

func (s *chatService) LessonList() []entity.LessonEntry {
	return s.repository.Lessons()
}

func (s *chatService) pickResponse(intent *entity.Intent) string {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return intent.Responses[s.rng.Intn(len(intent.Responses))]
}

func (s *chatService) isMenuTrigger(message string) bool {
	for _, trigger := range menuTriggers {
		if strings.EqualFold(message, trigger) {
			return true
		}
	}
	return false
}

func (s *chatService) menuReply() string {
	var b strings.Builder
	b.WriteString("👋 Hai! Mau belajar apa?\n")
	for _, lesson := range s.repository.Lessons() {
		b.WriteString(fmt.Sprintf("%s. %s\n", lesson.ID, lesson.Title))
	}
	b.WriteString("\nKetik nomor pilihan kamu (misalnya: 1)")
	return b.String()
}
