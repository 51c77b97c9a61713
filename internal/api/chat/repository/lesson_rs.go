package chatRepository

import (
	"fmt"
	"os"
	"strconv"

	"EduBot/internal/entity"
)

// Source rows carry numeric ids; they become string keys so the resolver can
// compare them directly against raw user input.
type lessonRow struct {
	ID    int64  `json:"id"`
	Title string `json:"judul"`
	Body  string `json:"isi"`
}

type lessonsFile struct {
	Materi []lessonRow `json:"materi"`
}

func (r *chatRepository) loadLessons(path string) ([]entity.LessonEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lessons file %s: %w", path, err)
	}

	var file lessonsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse lessons file %s: %w", path, err)
	}

	lessons := make([]entity.LessonEntry, 0, len(file.Materi))
	seen := make(map[string]bool)

	for _, row := range file.Materi {
		if row.Title == "" {
			return nil, fmt.Errorf("lessons file %s: lesson %d has no title", path, row.ID)
		}

		id := strconv.FormatInt(row.ID, 10)
		if seen[id] {
			return nil, fmt.Errorf("lessons file %s: duplicate lesson id %s", path, id)
		}
		seen[id] = true

		lessons = append(lessons, entity.LessonEntry{
			ID:    id,
			Title: row.Title,
			Body:  row.Body,
		})
	}

	return lessons, nil
}
