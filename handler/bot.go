package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"namebot/internal/domain"
	"namebot/internal/usecase"
)

type Conversation interface {
	Handle(ctx context.Context, in usecase.MessageInput) (domain.Reply, error)
}

// Sender delivers a reply to a chat. replyTo is the inbound message id.
type Sender interface {
	Send(ctx context.Context, chatID int64, replyTo int, r domain.Reply) error
}

type correlationKey struct{}

// WithCorrelationID attaches a request id that HandleUpdate logs with.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

func correlationIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(correlationKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}

// DefaultUpdateTimeout bounds how long one update may spend in the conversation.
const DefaultUpdateTimeout = 20 * time.Second

// Bot turns Telegram updates into conversation steps and sends the replies.
type Bot struct {
	conv    Conversation
	sender  Sender
	log     *slog.Logger
	timeout time.Duration
}

type BotOption func(*Bot)

// WithUpdateTimeout sets the per-update deadline. Non-positive values keep
// the default.
func WithUpdateTimeout(d time.Duration) BotOption {
	return func(b *Bot) {
		if d > 0 {
			b.timeout = d
		}
	}
}

func NewBot(conv Conversation, sender Sender, log *slog.Logger, opts ...BotOption) (*Bot, error) {
	if conv == nil {
		return nil, errors.New("handler: conversation must not be nil")
	}
	if sender == nil {
		return nil, errors.New("handler: sender must not be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	b := &Bot{conv: conv, sender: sender, log: log, timeout: DefaultUpdateTimeout}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// HandleUpdate processes one update. Updates without a text message are
// ignored. The conversation step runs under the update timeout; when it fails
// or overruns, the user gets the generic failure notice. Only a failed send
// is returned.
func (b *Bot) HandleUpdate(ctx context.Context, u tgbotapi.Update) error {
	msg := u.Message
	if msg == nil || msg.Chat == nil || msg.Text == "" {
		return nil
	}

	chatID := msg.Chat.ID
	userID := chatID
	if msg.From != nil {
		userID = msg.From.ID
	}
	sessionID := fmt.Sprintf("%d:%d", chatID, userID)
	log := b.log.With("correlation_id", correlationIDFrom(ctx), "session", sessionID)

	handleCtx, cancel := context.WithTimeout(ctx, b.timeout)
	reply, err := b.conv.Handle(handleCtx, usecase.MessageInput{SessionID: sessionID, Text: msg.Text})
	cancel()
	if err != nil {
		var ucErr *usecase.Error
		if errors.As(err, &ucErr) {
			log.ErrorContext(ctx, "failed to handle message", "code", ucErr.Code, "reason", ucErr.Reason, "err", err)
		} else {
			log.ErrorContext(ctx, "failed to handle message", "err", err)
		}
		reply = usecase.FailureReply()
	}

	if err := b.sender.Send(ctx, chatID, msg.MessageID, reply); err != nil {
		return fmt.Errorf("handler: send reply: %w", err)
	}
	log.DebugContext(ctx, "reply sent", "update_id", u.UpdateID)
	return nil
}

// Serve handles every update from updates in its own goroutine until the
// channel is closed, then waits for in-flight updates to finish.
func (b *Bot) Serve(ctx context.Context, updates <-chan tgbotapi.Update) {
	var wg sync.WaitGroup
	for u := range updates {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					b.log.ErrorContext(ctx, "panic while handling update", "update_id", u.UpdateID, "panic", r)
				}
			}()
			if err := b.HandleUpdate(ctx, u); err != nil {
				b.log.ErrorContext(ctx, "failed to handle update", "update_id", u.UpdateID, "err", err)
			}
		}()
	}
	wg.Wait()
}
