package chatRepository

import (
	"fmt"
	"os"

	"EduBot/internal/entity"
)

type intentsFile struct {
	Intents []entity.Intent `json:"intents"`
}

func (r *chatRepository) loadIntents(path string) ([]entity.Intent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read intents file %s: %w", path, err)
	}

	var file intentsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse intents file %s: %w", path, err)
	}

	seen := make(map[string]bool)
	for _, intent := range file.Intents {
		if intent.Label == "" {
			return nil, fmt.Errorf("intents file %s: intent without tag", path)
		}
		if seen[intent.Label] {
			return nil, fmt.Errorf("intents file %s: duplicate intent tag %q", path, intent.Label)
		}
		seen[intent.Label] = true

		if len(intent.Patterns) == 0 {
			return nil, fmt.Errorf("intents file %s: intent %q has no patterns", path, intent.Label)
		}
		if len(intent.Responses) == 0 {
			return nil, fmt.Errorf("intents file %s: intent %q has no responses", path, intent.Label)
		}
	}

	return file.Intents, nil
}
