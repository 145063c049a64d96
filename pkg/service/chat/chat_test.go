package chat

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/securebank/securebank/pkg/money"
	"github.com/securebank/securebank/pkg/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateReplyTopics(t *testing.T) {
	cases := []struct {
		name     string
		message  string
		fragment string
	}{
		{"account creation", "How do I create an account?", "account opening form"},
		{"loan documents", "Which documents do I need for a loan?", "Income proof"},
		{"account types", "what account types do you have", "Savings Account"},
		{"personal loan", "tell me about a personal loan", "Personal loan highlights"},
		{"interest rates", "current interest rates please", "per annum"},
		{"minimum balance", "what is the minimum balance", "Minimum balance requirements"},
		{"default welcome", "hello there", "Welcome to SecureBank"},
		{"empty message", "", "Welcome to SecureBank"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reply := templateReply(tc.message)
			require.NotEmpty(t, reply)
			assert.Contains(t, reply, tc.fragment)
		})
	}
}

func TestTemplateReplyDeterministic(t *testing.T) {
	msg := "I want to CREATE a new Account"
	assert.Equal(t, templateReply(msg), templateReply(msg))
	assert.Equal(t, templateReply("create account"), templateReply(msg), "matching is case-insensitive")
}

func TestRespondTemplateOnly(t *testing.T) {
	svc := New(nil, 10, slog.Default())
	reply := svc.Respond(context.Background(), "how do I create an account?", Context{})
	assert.Contains(t, reply, "account opening form")
}

type stubCompleter struct {
	reply string
	err   error
	seen  [][]provider.Message
}

func (s *stubCompleter) Complete(_ context.Context, messages []provider.Message) (string, error) {
	s.seen = append(s.seen, messages)
	return s.reply, s.err
}

func TestRespondDelegates(t *testing.T) {
	stub := &stubCompleter{reply: "delegated answer"}
	svc := New(stub, 10, slog.Default())

	reply := svc.Respond(context.Background(), "anything", Context{
		AccountCount: 3,
		TotalBalance: money.FromRupees(6000),
	})
	assert.Equal(t, "delegated answer", reply)

	require.Len(t, stub.seen, 1)
	msgs := stub.seen[0]
	assert.Equal(t, provider.RoleSystem, msgs[0].Role)
	assert.Contains(t, msgs[1].Content, "3 accounts")
	assert.Contains(t, msgs[1].Content, "₹6000.00")
	assert.Equal(t, "anything", msgs[len(msgs)-1].Content)
}

func TestRespondFallsBackOnError(t *testing.T) {
	stub := &stubCompleter{err: errors.New("upstream down")}
	svc := New(stub, 10, slog.Default())

	reply := svc.Respond(context.Background(), "what are the interest rates?", Context{})
	assert.Contains(t, reply, "per annum", "template answer, not an error")
}

func TestHistoryBounded(t *testing.T) {
	stub := &stubCompleter{reply: "ok"}
	svc := New(stub, 4, slog.Default())
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		svc.Respond(ctx, "ping", Context{})
	}

	last := stub.seen[len(stub.seen)-1]
	for _, m := range last {
		if m.Role == provider.RoleAssistant {
			assert.Equal(t, "ok", m.Content)
		}
	}
	// system prompt + at most 4 history turns + current message
	assert.LessOrEqual(t, len(last), 1+4+1)
}

func TestHistoryExcludesFailedTurns(t *testing.T) {
	stub := &stubCompleter{err: errors.New("down")}
	svc := New(stub, 10, slog.Default())
	ctx := context.Background()

	svc.Respond(ctx, "first", Context{})
	stub.err = nil
	stub.reply = "ok"
	svc.Respond(ctx, "second", Context{})

	last := stub.seen[len(stub.seen)-1]
	for _, m := range last {
		assert.False(t, strings.Contains(m.Content, "first"), "failed turn is not remembered")
	}
}
