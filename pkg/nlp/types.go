package nlp

import "EduBot/internal/entity"

// MatchResult is the outcome of scanning one message against the full intent
// corpus. Intent is nil when nothing reached the threshold.
type MatchResult struct {
	Intent *entity.Intent `json:"intent,omitempty"`
	Score  float64        `json:"score"`
}

type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

type IMatcher interface {
	Match(message string, intents []entity.Intent, threshold float64) MatchResult
	TokenSortRatio(a, b string) float64
}

type IExtractor interface {
	Extract(message string) []Entity
}
