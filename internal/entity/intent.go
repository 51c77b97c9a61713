package entity

// Intent is one named category of user request. Patterns and Responses are
// loaded once at startup and never mutated afterwards.
type Intent struct {
	Label     string   `json:"tag"`
	Patterns  []string `json:"patterns"`
	Responses []string `json:"responses"`
}
