package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"EduBot/internal/entity"
)

func testIntents() []entity.Intent {
	return []entity.Intent{
		{
			Label:     "greeting",
			Patterns:  []string{"hello", "hi there"},
			Responses: []string{"Hi!", "Hey!"},
		},
		{
			Label:     "thanks",
			Patterns:  []string{"terima kasih", "makasih banyak"},
			Responses: []string{"Sama-sama!"},
		},
	}
}

func TestTokenSortRatio(t *testing.T) {
	m := NewMatcher().(*intentMatcher)

	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{name: "identical strings", a: "hello world", b: "hello world", want: 100},
		{name: "token order ignored", a: "world hello", b: "hello world", want: 100},
		{name: "case ignored", a: "Hello World", b: "hello world", want: 100},
		{name: "punctuation ignored", a: "hello, world!", b: "hello world", want: 100},
		{name: "both empty", a: "", b: "", want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.TokenSortRatio(tt.a, tt.b))
		})
	}
}

func TestTokenSortRatioBounds(t *testing.T) {
	m := NewMatcher().(*intentMatcher)

	score := m.TokenSortRatio("apa itu machine learning", "xyzzy")
	assert.GreaterOrEqual(t, score, 0.0)
	assert.Less(t, score, 60.0)

	partial := m.TokenSortRatio("hello there friend", "hello there")
	assert.Greater(t, partial, 0.0)
	assert.Less(t, partial, 100.0)
}

func TestMatchExactPattern(t *testing.T) {
	m := NewMatcher()

	result := m.Match("hello", testIntents(), DefaultThreshold)

	assert.NotNil(t, result.Intent)
	assert.Equal(t, "greeting", result.Intent.Label)
	assert.Equal(t, 100.0, result.Score)
}

func TestMatchCaseInsensitive(t *testing.T) {
	m := NewMatcher()

	result := m.Match("HELLO", testIntents(), DefaultThreshold)

	assert.NotNil(t, result.Intent)
	assert.Equal(t, "greeting", result.Intent.Label)
}

func TestMatchBelowThreshold(t *testing.T) {
	m := NewMatcher()

	result := m.Match("quantum entanglement propulsion", testIntents(), DefaultThreshold)

	assert.Nil(t, result.Intent)
}

func TestMatchEmptyCorpus(t *testing.T) {
	m := NewMatcher()

	result := m.Match("hello", nil, DefaultThreshold)

	assert.Nil(t, result.Intent)
	assert.Equal(t, 0.0, result.Score)
}

func TestMatchThresholdMonotonic(t *testing.T) {
	m := NewMatcher()
	intents := testIntents()

	low := m.Match("hello", intents, 60)
	high := m.Match("hello", intents, 101)

	assert.NotNil(t, low.Intent)
	assert.Nil(t, high.Intent)
}

func TestMatchTieKeepsFirstSeen(t *testing.T) {
	m := NewMatcher()
	intents := []entity.Intent{
		{Label: "first", Patterns: []string{"duplicate phrase"}, Responses: []string{"a"}},
		{Label: "second", Patterns: []string{"duplicate phrase"}, Responses: []string{"b"}},
	}

	result := m.Match("duplicate phrase", intents, DefaultThreshold)

	assert.NotNil(t, result.Intent)
	assert.Equal(t, "first", result.Intent.Label)
}
