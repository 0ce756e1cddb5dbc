package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"namebot/internal/domain"
	"namebot/internal/integrations/paramstore"
)

const (
	defaultPollTimeout = 30 * time.Second
	pollRetryDelay     = 3 * time.Second
)

// Client sends replies and receives updates through the Telegram Bot API.
type Client struct {
	getter      paramstore.Getter
	tokenParam  string
	token       string
	apiEndpoint string
	httpClient  tgbotapi.HTTPClient
	pollTimeout time.Duration
	debug       bool
	log         *slog.Logger

	botOnce sync.Once
	bot     *tgbotapi.BotAPI
	botErr  error
}

type Option func(*Client)

// WithToken uses a fixed bot token instead of reading it from SSM.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = strings.TrimSpace(token)
	}
}

// WithAPIEndpoint overrides the Bot API URL pattern, which takes the token
// and the method name in that order.
func WithAPIEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.apiEndpoint = strings.TrimSpace(endpoint)
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

func WithPollTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.pollTimeout = d
		}
	}
}

func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// NewClient creates a Client. The bot token is taken from WithToken when set,
// otherwise it is read from the tokenParam SSM parameter on first use and
// reused for the lifetime of the process.
func NewClient(ps paramstore.Getter, tokenParam string, opts ...Option) (*Client, error) {
	c := &Client{
		getter:      ps,
		tokenParam:  strings.TrimSpace(tokenParam),
		apiEndpoint: tgbotapi.APIEndpoint,
		httpClient:  &http.Client{Timeout: defaultPollTimeout + 10*time.Second},
		pollTimeout: defaultPollTimeout,
		log:         slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.token == "" {
		if c.getter == nil {
			return nil, errors.New("telegram: paramstore getter must not be nil without a static token")
		}
		if c.tokenParam == "" {
			return nil, errors.New("telegram: token parameter name must not be empty without a static token")
		}
	}
	if !strings.Contains(c.apiEndpoint, "%s") {
		return nil, fmt.Errorf("telegram: api endpoint %q must contain token and method placeholders", c.apiEndpoint)
	}
	return c, nil
}

// resolveBot builds the bot on the first call and returns the cached result
// afterwards. Construction calls getMe, so a bad token fails here.
func (c *Client) resolveBot(ctx context.Context) (*tgbotapi.BotAPI, error) {
	c.botOnce.Do(func() {
		token := c.token
		if token == "" {
			var err error
			token, err = paramstore.GetToken(ctx, c.getter, c.tokenParam)
			if err != nil {
				c.botErr = fmt.Errorf("telegram: fetch token: %w", err)
				return
			}
		}
		bot, err := tgbotapi.NewBotAPIWithClient(token, c.apiEndpoint, c.httpClient)
		if err != nil {
			c.botErr = fmt.Errorf("telegram: connect bot: %w", err)
			return
		}
		bot.Debug = c.debug
		c.bot = bot
		c.log.Info("telegram bot authorized", "username", bot.Self.UserName)
	})
	return c.bot, c.botErr
}

// Send delivers the reply to chatID. replyTo is the inbound message id and is
// only used when the reply asks to quote it.
func (c *Client) Send(ctx context.Context, chatID int64, replyTo int, r domain.Reply) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	bot, err := c.resolveBot(ctx)
	if err != nil {
		return err
	}
	if _, err := bot.Send(newMessage(chatID, replyTo, r)); err != nil {
		return fmt.Errorf("telegram: send message to %d: %w", chatID, err)
	}
	return nil
}

func newMessage(chatID int64, replyTo int, r domain.Reply) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, r.Text)
	if r.HTML {
		msg.ParseMode = tgbotapi.ModeHTML
	}
	if r.Quote && replyTo != 0 {
		msg.ReplyToMessageID = replyTo
	}
	if len(r.Keyboard) > 0 {
		rows := make([][]tgbotapi.KeyboardButton, 0, len(r.Keyboard))
		for _, labels := range r.Keyboard {
			buttons := make([]tgbotapi.KeyboardButton, 0, len(labels))
			for _, l := range labels {
				buttons = append(buttons, tgbotapi.NewKeyboardButton(l))
			}
			rows = append(rows, tgbotapi.NewKeyboardButtonRow(buttons...))
		}
		kb := tgbotapi.NewReplyKeyboard(rows...)
		kb.ResizeKeyboard = true
		msg.ReplyMarkup = kb
	}
	return msg
}

// Updates long-polls getUpdates and streams the results until ctx is
// cancelled, then closes the channel. Failed polls are retried after a pause.
func (c *Client) Updates(ctx context.Context) (<-chan tgbotapi.Update, error) {
	bot, err := c.resolveBot(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan tgbotapi.Update)
	go func() {
		defer close(out)
		cfg := tgbotapi.NewUpdate(0)
		cfg.Timeout = int(c.pollTimeout / time.Second)
		cfg.AllowedUpdates = []string{"message"}

		for ctx.Err() == nil {
			updates, err := bot.GetUpdates(cfg)
			if err != nil {
				c.log.Warn("failed to get updates", "err", err)
				select {
				case <-ctx.Done():
					return
				case <-time.After(pollRetryDelay):
				}
				continue
			}
			for _, u := range updates {
				if u.UpdateID < cfg.Offset {
					continue
				}
				cfg.Offset = u.UpdateID + 1
				select {
				case out <- u:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
