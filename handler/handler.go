package handler

import (
	"context"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
)

const (
	headerCorrelationID = "X-Correlation-Id"
	headerSecretToken   = "X-Telegram-Bot-Api-Secret-Token"

	errorUnauthorized  = "UNAUTHORIZED"
	errorInvalidUpdate = "INVALID_UPDATE"
)

type UpdateHandler interface {
	HandleUpdate(ctx context.Context, u tgbotapi.Update) error
}

// Handler is the API Gateway entry point for the Telegram webhook.
type Handler struct {
	bot    UpdateHandler
	secret string
	log    *slog.Logger
}

type okResponse struct {
	OK bool `json:"ok"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewHandler creates a Handler. When secret is set, requests must carry it in
// the X-Telegram-Bot-Api-Secret-Token header.
func NewHandler(bot UpdateHandler, secret string, log *slog.Logger) (*Handler, error) {
	if bot == nil {
		return nil, errors.New("handler: update handler must not be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Handler{bot: bot, secret: strings.TrimSpace(secret), log: log}, nil
}

// Handle always acknowledges a well-formed update with 200, even when the reply
// could not be sent, so Telegram does not redeliver it and issue a second name.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	correlationID := header(req.Headers, headerCorrelationID)
	if correlationID == "" {
		correlationID = uuid.NewString()
	}
	log := h.log.With("correlation_id", correlationID)

	if h.secret != "" {
		got := header(req.Headers, headerSecretToken)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) != 1 {
			log.WarnContext(ctx, "rejected webhook call with a bad secret token")
			return jsonResponse(http.StatusUnauthorized, correlationID, errorResponse{Error: errorUnauthorized}), nil
		}
	}

	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			log.WarnContext(ctx, "failed to decode webhook body", "err", err)
			return jsonResponse(http.StatusBadRequest, correlationID, errorResponse{Error: errorInvalidUpdate}), nil
		}
		body = decoded
	}

	var update tgbotapi.Update
	if err := json.Unmarshal(body, &update); err != nil {
		log.WarnContext(ctx, "failed to parse webhook update", "err", err)
		return jsonResponse(http.StatusBadRequest, correlationID, errorResponse{Error: errorInvalidUpdate}), nil
	}

	if err := h.bot.HandleUpdate(WithCorrelationID(ctx, correlationID), update); err != nil {
		log.ErrorContext(ctx, "failed to handle update", "update_id", update.UpdateID, "err", err)
	}
	return jsonResponse(http.StatusOK, correlationID, okResponse{OK: true}), nil
}

// header looks a header up case-insensitively.
func header(headers map[string]string, name string) string {
	if v, ok := headers[name]; ok {
		return strings.TrimSpace(v)
	}
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func jsonResponse(status int, correlationID string, body any) events.APIGatewayProxyResponse {
	raw, err := json.Marshal(body)
	if err != nil {
		raw = []byte(`{}`)
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type":      "application/json",
			headerCorrelationID: correlationID,
		},
		Body: string(raw),
	}
}
