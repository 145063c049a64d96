// Package provider defines the chat-completion contract and its OpenAI
// implementation.
package provider

import "context"

// Message is one turn of a chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Chat roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Completer produces an assistant reply for a conversation. Implementations
// return an error on any transport or protocol failure; callers decide how
// to degrade.
type Completer interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}
