package nlp

import (
	"regexp"
	"strings"
)

const (
	LabelAmount = "AMOUNT"
	LabelEmail  = "EMAIL"
	LabelDate   = "DATE"
	LabelTopic  = "TOPIC"
	LabelPerson = "PERSON"
)

type entityExtractor struct {
	amountPattern *regexp.Regexp
	unitPattern   *regexp.Regexp
	emailPattern  *regexp.Regexp
	datePattern   *regexp.Regexp
	topicTerms    []string
	personTitles  []string
}

func NewExtractor() IExtractor {
	return &entityExtractor{
		amountPattern: regexp.MustCompile(`\d{1,3}(?:\.\d{3})+(?:,\d+)?|\d+`),
		unitPattern:   regexp.MustCompile(`(?i)\b\d+\s*(ribu|rebu|juta|jt|rb|k)\b`),
		emailPattern:  regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`),
		datePattern:   regexp.MustCompile(`\b\d{1,2}[-/]\d{1,2}[-/]\d{2,4}\b`),
		topicTerms: []string{
			"machine learning", "deep learning", "neural network",
			"artificial intelligence", "kecerdasan buatan", "data science",
			"computer vision", "nlp", "chatbot", "supervised learning",
			"unsupervised learning", "reinforcement learning",
		},
		personTitles: []string{"pak", "bu", "bapak", "ibu", "mas", "mbak"},
	}
}

// Extract is best effort: it pulls labeled spans out of the message with
// lexicon and pattern rules and never fails. An empty result is a valid
// answer for any input.
func (e *entityExtractor) Extract(message string) []Entity {
	entities := make([]Entity, 0)
	lowered := strings.ToLower(message)

	for _, match := range e.emailPattern.FindAllString(message, -1) {
		entities = append(entities, Entity{Text: match, Label: LabelEmail})
	}

	for _, match := range e.datePattern.FindAllString(message, -1) {
		entities = append(entities, Entity{Text: match, Label: LabelDate})
	}

	for _, term := range e.topicTerms {
		if idx := strings.Index(lowered, term); idx >= 0 {
			entities = append(entities, Entity{
				Text:  message[idx : idx+len(term)],
				Label: LabelTopic,
			})
		}
	}

	for _, match := range e.unitPattern.FindAllString(message, -1) {
		entities = append(entities, Entity{Text: match, Label: LabelAmount})
	}

	for _, match := range e.amountPattern.FindAllString(message, -1) {
		if containsSpan(entities, match) {
			continue
		}
		entities = append(entities, Entity{Text: match, Label: LabelAmount})
	}

	words := strings.Fields(message)
	for i, word := range words {
		if i+1 >= len(words) {
			break
		}
		for _, title := range e.personTitles {
			if strings.EqualFold(word, title) {
				entities = append(entities, Entity{
					Text:  words[i+1],
					Label: LabelPerson,
				})
			}
		}
	}

	return entities
}

func containsSpan(entities []Entity, text string) bool {
	for _, ent := range entities {
		if strings.Contains(ent.Text, text) {
			return true
		}
	}
	return false
}
