// Package chat implements the banking assistant: scripted template answers
// with optional delegation to a chat-completion provider.
//
// The assistant never fails. Provider errors, timeouts and open circuits
// all degrade to the template path, so a ledger operator always gets an
// answer.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/securebank/securebank/pkg/money"
	"github.com/securebank/securebank/pkg/provider"
)

const systemPrompt = `You are a professional banking assistant for SecureBank. You help customers with:
- Account opening procedures and requirements
- Loan applications and documentation
- Banking services and interest rates
- General banking guidance and best practices

Always be helpful, professional, and accurate. Provide specific information about Indian banking regulations when relevant.`

// Context carries the bank snapshot lines added to the conversation.
type Context struct {
	AccountCount int
	TotalBalance money.Money
}

// Service answers assistant messages.
type Service struct {
	completer  provider.Completer
	maxHistory int
	logger     *slog.Logger

	mu      sync.Mutex
	history []provider.Message
}

// New creates the assistant. A nil completer keeps it template-only.
func New(completer provider.Completer, maxHistory int, logger *slog.Logger) *Service {
	return &Service{completer: completer, maxHistory: maxHistory, logger: logger}
}

// Respond answers the message. Delegation failures fall back to the
// scripted templates; the reply is always non-empty and err is always nil
// so chat trouble never reads like a ledger error.
func (s *Service) Respond(ctx context.Context, message string, bankCtx Context) string {
	if s.completer == nil {
		return templateReply(message)
	}

	reply, err := s.complete(ctx, message, bankCtx)
	if err != nil {
		s.logger.Warn("completion failed, falling back to templates", "error", err)
		return templateReply(message)
	}

	s.remember(provider.Message{Role: provider.RoleUser, Content: message})
	s.remember(provider.Message{Role: provider.RoleAssistant, Content: reply})
	return reply
}

func (s *Service) complete(ctx context.Context, message string, bankCtx Context) (string, error) {
	messages := []provider.Message{{Role: provider.RoleSystem, Content: systemPrompt}}
	if bankCtx.AccountCount > 0 {
		messages = append(messages, provider.Message{
			Role: provider.RoleSystem,
			Content: fmt.Sprintf("Current bank status: %d accounts, total balance: %s",
				bankCtx.AccountCount, bankCtx.TotalBalance),
		})
	}
	messages = append(messages, s.recentHistory()...)
	messages = append(messages, provider.Message{Role: provider.RoleUser, Content: message})
	return s.completer.Complete(ctx, messages)
}

func (s *Service) recentHistory() []provider.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]provider.Message, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Service) remember(msg provider.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, msg)
	if len(s.history) > s.maxHistory {
		s.history = s.history[len(s.history)-s.maxHistory:]
	}
}
