package handler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"

	"namebot/internal/domain"
	"namebot/internal/usecase"
)

type stubConversation struct {
	mu    sync.Mutex
	reply domain.Reply
	err   error
	in    []usecase.MessageInput
}

func (s *stubConversation) Handle(_ context.Context, in usecase.MessageInput) (domain.Reply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.in = append(s.in, in)
	return s.reply, s.err
}

// blockingConversation only returns once its context is done.
type blockingConversation struct{}

func (blockingConversation) Handle(ctx context.Context, _ usecase.MessageInput) (domain.Reply, error) {
	<-ctx.Done()
	return domain.Reply{}, &usecase.Error{Code: usecase.ErrorInternal, Reason: "issue_cancelled", Err: ctx.Err()}
}

type sentReply struct {
	chatID  int64
	replyTo int
	reply   domain.Reply
}

type stubSender struct {
	mu      sync.Mutex
	err     error
	sent    []sentReply
	ctxErrs []error
}

func (s *stubSender) Send(ctx context.Context, chatID int64, replyTo int, r domain.Reply) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, sentReply{chatID: chatID, replyTo: replyTo, reply: r})
	s.ctxErrs = append(s.ctxErrs, ctx.Err())
	return s.err
}

func textUpdate(id int, chatID, userID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{
		UpdateID: id,
		Message: &tgbotapi.Message{
			MessageID: id * 10,
			Chat:      &tgbotapi.Chat{ID: chatID, Type: "private"},
			From:      &tgbotapi.User{ID: userID},
			Text:      text,
		},
	}
}

func newTestBot(t *testing.T, conv Conversation, sender Sender) *Bot {
	t.Helper()
	b, err := NewBot(conv, sender, nil)
	require.NoError(t, err)
	return b
}

func TestNewBot_ValidatesDependencies(t *testing.T) {
	_, err := NewBot(nil, &stubSender{}, nil)
	require.Error(t, err)
	_, err = NewBot(&stubConversation{}, nil, nil)
	require.Error(t, err)
}

func TestHandleUpdate_SendsConversationReply(t *testing.T) {
	conv := &stubConversation{reply: domain.Reply{Text: "Zaɓi ƙasa:"}}
	sender := &stubSender{}
	b := newTestBot(t, conv, sender)

	require.NoError(t, b.HandleUpdate(context.Background(), textUpdate(1, 100, 200, "/start")))
	require.Equal(t, []usecase.MessageInput{{SessionID: "100:200", Text: "/start"}}, conv.in)
	require.Equal(t, []sentReply{{chatID: 100, replyTo: 10, reply: domain.Reply{Text: "Zaɓi ƙasa:"}}}, sender.sent)
}

func TestHandleUpdate_FallsBackToChatIDWithoutSender(t *testing.T) {
	conv := &stubConversation{}
	b := newTestBot(t, conv, &stubSender{})

	u := textUpdate(1, -500, 0, "/start")
	u.Message.From = nil
	require.NoError(t, b.HandleUpdate(context.Background(), u))
	require.Equal(t, "-500:-500", conv.in[0].SessionID)
}

func TestHandleUpdate_IgnoresNonTextUpdates(t *testing.T) {
	conv := &stubConversation{}
	sender := &stubSender{}
	b := newTestBot(t, conv, sender)

	require.NoError(t, b.HandleUpdate(context.Background(), tgbotapi.Update{UpdateID: 1}))
	require.NoError(t, b.HandleUpdate(context.Background(), textUpdate(2, 100, 200, "")))
	require.Empty(t, conv.in)
	require.Empty(t, sender.sent)
}

func TestHandleUpdate_ConversationErrorSendsFailureNotice(t *testing.T) {
	cases := []error{
		&usecase.Error{Code: usecase.ErrorStorage, Reason: "store_insert_error"},
		errors.New("boom"),
	}
	for _, convErr := range cases {
		conv := &stubConversation{err: convErr}
		sender := &stubSender{}
		b := newTestBot(t, conv, sender)

		require.NoError(t, b.HandleUpdate(context.Background(), textUpdate(1, 100, 200, "👨 Male")))
		require.Len(t, sender.sent, 1)
		require.Equal(t, usecase.FailureReply(), sender.sent[0].reply)
	}
}

func TestHandleUpdate_RunawayConversationEndsAtUpdateTimeout(t *testing.T) {
	sender := &stubSender{}
	b, err := NewBot(blockingConversation{}, sender, nil, WithUpdateTimeout(50*time.Millisecond))
	require.NoError(t, err)

	start := time.Now()
	require.NoError(t, b.HandleUpdate(context.Background(), textUpdate(1, 100, 200, "👨 Male")))
	require.Less(t, time.Since(start), 5*time.Second)

	require.Len(t, sender.sent, 1)
	require.Equal(t, usecase.FailureReply(), sender.sent[0].reply)
	require.NoError(t, sender.ctxErrs[0], "the failure notice must be sent on a live context")
}

func TestNewBot_DefaultUpdateTimeout(t *testing.T) {
	b, err := NewBot(&stubConversation{}, &stubSender{}, nil, WithUpdateTimeout(0))
	require.NoError(t, err)
	require.Equal(t, DefaultUpdateTimeout, b.timeout)
}

func TestHandleUpdate_SendError(t *testing.T) {
	b := newTestBot(t, &stubConversation{}, &stubSender{err: errors.New("network")})
	err := b.HandleUpdate(context.Background(), textUpdate(1, 100, 200, "/start"))
	require.ErrorContains(t, err, "network")
}

func TestServe_HandlesEveryUpdate(t *testing.T) {
	conv := &stubConversation{reply: domain.Reply{Text: "ok"}}
	sender := &stubSender{}
	b := newTestBot(t, conv, sender)

	updates := make(chan tgbotapi.Update)
	done := make(chan struct{})
	go func() {
		b.Serve(context.Background(), updates)
		close(done)
	}()

	const n = 20
	for i := range n {
		updates <- textUpdate(i+1, int64(i), int64(i), "/start")
	}
	close(updates)
	<-done

	require.Len(t, sender.sent, n)
	seen := map[int64]bool{}
	for _, s := range sender.sent {
		seen[s.chatID] = true
	}
	require.Len(t, seen, n)
}
