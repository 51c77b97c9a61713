package chat

import "EduBot/pkg/nlp"

type WebhookRequest struct {
	Message string `json:"message" validate:"required"`
	From    string `json:"from"`
}

type WebhookResponse struct {
	Reply string `json:"reply"`
}

type EntitiesRequest struct {
	Message string `json:"message" validate:"required"`
}

type EntitiesResponse struct {
	Entities []nlp.Entity `json:"entities"`
}

type LessonSummary struct {
	ID    string `json:"id"`
	Title string `json:"judul"`
}

type LessonListResponse struct {
	Materi []LessonSummary `json:"materi"`
}
