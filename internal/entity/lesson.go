package entity

// LessonEntry is one addressable piece of learning material. ID is kept as a
// string so it can be compared directly against raw user input.
type LessonEntry struct {
	ID    string `json:"id"`
	Title string `json:"judul"`
	Body  string `json:"isi"`
}
