package chatRepository

import (
	"EduBot/internal/entity"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type IChatRepository interface {
	Load(intentsPath, lessonsPath string) error
	Intents() []entity.Intent
	Lessons() []entity.LessonEntry
	LookupLesson(key string) (entity.LessonEntry, bool)
}

type chatRepository struct {
	log         *logrus.Logger
	intents     []entity.Intent
	lessons     []entity.LessonEntry
	lessonIndex map[string]entity.LessonEntry
}

func New(log *logrus.Logger) IChatRepository {
	return &chatRepository{
		log:         log,
		lessonIndex: make(map[string]entity.LessonEntry),
	}
}

// Load reads both corpus files once. Any failure here is fatal for the
// process; nothing is served on a partial load.
func (r *chatRepository) Load(intentsPath, lessonsPath string) error {
	intents, err := r.loadIntents(intentsPath)
	if err != nil {
		return err
	}

	lessons, err := r.loadLessons(lessonsPath)
	if err != nil {
		return err
	}

	r.intents = intents
	r.lessons = lessons
	for _, lesson := range lessons {
		r.lessonIndex[lesson.ID] = lesson
	}

	r.log.WithFields(logrus.Fields{
		"intents": len(intents),
		"lessons": len(lessons),
	}).Info("Chat corpus loaded")

	return nil
}

func (r *chatRepository) Intents() []entity.Intent {
	return r.intents
}

func (r *chatRepository) Lessons() []entity.LessonEntry {
	return r.lessons
}

func (r *chatRepository) LookupLesson(key string) (entity.LessonEntry, bool) {
	lesson, ok := r.lessonIndex[key]
	return lesson, ok
}
