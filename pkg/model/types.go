package model

// Persona carries the character identity handed to a completion provider.
// Script, when set, is a curated instruction block that replaces the
// generated role-play template.
type Persona struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Traits      string `json:"traits"`
	Backstory   string `json:"backstory"`
	Script      string `json:"script,omitempty"`
}

// Turn is a single message in a conversation history.
type Turn struct {
	Role    string `json:"role"` // user|assistant
	Content string `json:"content"`
}

// Constants for roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
