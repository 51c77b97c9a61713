package chatRepository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validIntents = `{
  "intents": [
    {"tag": "greeting", "patterns": ["hello"], "responses": ["Hi!"]},
    {"tag": "thanks", "patterns": ["makasih"], "responses": ["Sama-sama!"]}
  ]
}`

const validLessons = `{
  "materi": [
    {"id": 1, "judul": "Pengenalan AI", "isi": "AI adalah bidang ilmu komputer."},
    {"id": 2, "judul": "Machine Learning Dasar", "isi": "Belajar pola dari data."}
  ]
}`

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadValidCorpus(t *testing.T) {
	dir := t.TempDir()
	intentsPath := writeFile(t, dir, "intents.json", validIntents)
	lessonsPath := writeFile(t, dir, "materi.json", validLessons)

	repo := New(testLogger())
	err := repo.Load(intentsPath, lessonsPath)

	require.NoError(t, err)
	assert.Len(t, repo.Intents(), 2)
	assert.Len(t, repo.Lessons(), 2)

	lesson, ok := repo.LookupLesson("1")
	assert.True(t, ok)
	assert.Equal(t, "Pengenalan AI", lesson.Title)
}

func TestLoadPreservesLessonOrder(t *testing.T) {
	dir := t.TempDir()
	intentsPath := writeFile(t, dir, "intents.json", validIntents)
	lessonsPath := writeFile(t, dir, "materi.json", validLessons)

	repo := New(testLogger())
	require.NoError(t, repo.Load(intentsPath, lessonsPath))

	lessons := repo.Lessons()
	assert.Equal(t, "1", lessons[0].ID)
	assert.Equal(t, "2", lessons[1].ID)
}

func TestLoadMissingIntentsFile(t *testing.T) {
	dir := t.TempDir()
	lessonsPath := writeFile(t, dir, "materi.json", validLessons)

	repo := New(testLogger())
	err := repo.Load(filepath.Join(dir, "missing.json"), lessonsPath)

	assert.Error(t, err)
}

func TestLoadMalformedIntentsFile(t *testing.T) {
	dir := t.TempDir()
	intentsPath := writeFile(t, dir, "intents.json", `{"intents": [`)
	lessonsPath := writeFile(t, dir, "materi.json", validLessons)

	repo := New(testLogger())
	err := repo.Load(intentsPath, lessonsPath)

	assert.Error(t, err)
}

func TestLoadIntentWithoutPatterns(t *testing.T) {
	dir := t.TempDir()
	intentsPath := writeFile(t, dir, "intents.json",
		`{"intents": [{"tag": "broken", "patterns": [], "responses": ["x"]}]}`)
	lessonsPath := writeFile(t, dir, "materi.json", validLessons)

	repo := New(testLogger())
	err := repo.Load(intentsPath, lessonsPath)

	assert.ErrorContains(t, err, "has no patterns")
}

func TestLoadIntentWithoutResponses(t *testing.T) {
	dir := t.TempDir()
	intentsPath := writeFile(t, dir, "intents.json",
		`{"intents": [{"tag": "broken", "patterns": ["x"], "responses": []}]}`)
	lessonsPath := writeFile(t, dir, "materi.json", validLessons)

	repo := New(testLogger())
	err := repo.Load(intentsPath, lessonsPath)

	assert.ErrorContains(t, err, "has no responses")
}

func TestLoadDuplicateLessonID(t *testing.T) {
	dir := t.TempDir()
	intentsPath := writeFile(t, dir, "intents.json", validIntents)
	lessonsPath := writeFile(t, dir, "materi.json",
		`{"materi": [{"id": 1, "judul": "A", "isi": "a"}, {"id": 1, "judul": "B", "isi": "b"}]}`)

	repo := New(testLogger())
	err := repo.Load(intentsPath, lessonsPath)

	assert.ErrorContains(t, err, "duplicate lesson id")
}

func TestLookupUnknownLesson(t *testing.T) {
	dir := t.TempDir()
	intentsPath := writeFile(t, dir, "intents.json", validIntents)
	lessonsPath := writeFile(t, dir, "materi.json", validLessons)

	repo := New(testLogger())
	require.NoError(t, repo.Load(intentsPath, lessonsPath))

	_, ok := repo.LookupLesson("99")
	assert.False(t, ok)
}
