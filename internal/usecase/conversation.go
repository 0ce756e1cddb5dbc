package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"namebot/internal/domain"
)

type CountryCatalog interface {
	Contains(label string) bool
	Labels() []string
}

type Issuer interface {
	Issue(ctx context.Context, country string, gender domain.Gender) (string, error)
}

// SessionStore keeps ConversationState per session id. Get returns the idle
// state for unknown sessions.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (domain.ConversationState, error)
	Save(ctx context.Context, sessionID string, st domain.ConversationState) error
}

type MessageInput struct {
	SessionID string
	Text      string
}

// ConversationService runs the country, gender, name dialogue.
type ConversationService struct {
	catalog  CountryCatalog
	issuer   Issuer
	sessions SessionStore
	log      *slog.Logger
}

func NewConversationService(c CountryCatalog, i Issuer, s SessionStore, log *slog.Logger) (*ConversationService, error) {
	if c == nil {
		return nil, errors.New("usecase: country catalog must not be nil")
	}
	if i == nil {
		return nil, errors.New("usecase: issuer must not be nil")
	}
	if s == nil {
		return nil, errors.New("usecase: session store must not be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &ConversationService{catalog: c, issuer: i, sessions: s, log: log}, nil
}

// Handle advances the session by one inbound message and returns the reply.
// A non-nil error means the request failed; the session is unchanged and the
// caller should show FailureReply.
func (s *ConversationService) Handle(ctx context.Context, in MessageInput) (domain.Reply, error) {
	sessionID := strings.TrimSpace(in.SessionID)
	if sessionID == "" {
		return domain.Reply{}, newError(ErrorInternal, "empty_session_id", nil)
	}
	text := strings.TrimSpace(in.Text)

	if isCommand(text, CommandStart) || text == ButtonBackToMenu {
		return s.restart(ctx, sessionID)
	}

	st, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return domain.Reply{}, newError(ErrorStorage, "session_load_error", err)
	}

	switch st.CurrentPhase() {
	case domain.PhaseChoosingCountry:
		if s.catalog.Contains(text) {
			return s.chooseCountry(ctx, sessionID, st, text)
		}
	case domain.PhaseChoosingGender:
		if gender, ok := genderFromButton(text); ok {
			return s.issue(ctx, sessionID, st, gender)
		}
		if text == ButtonRegenerate && st.Gender.Valid() {
			return s.issue(ctx, sessionID, st, st.Gender)
		}
	}

	s.log.DebugContext(ctx, "unrecognized input", "session", sessionID, "phase", st.CurrentPhase())
	return useButtonsNotice(), nil
}

// restart drops every selection and shows the country keyboard. Save replaces
// the whole state, so a failed save leaves the previous one intact.
func (s *ConversationService) restart(ctx context.Context, sessionID string) (domain.Reply, error) {
	st := domain.ConversationState{Phase: domain.PhaseChoosingCountry}
	if err := s.sessions.Save(ctx, sessionID, st); err != nil {
		return domain.Reply{}, newError(ErrorStorage, "session_save_error", err)
	}
	return countryPrompt(s.catalog.Labels()), nil
}

func (s *ConversationService) chooseCountry(ctx context.Context, sessionID string, st domain.ConversationState, country string) (domain.Reply, error) {
	st.Phase = domain.PhaseChoosingGender
	st.Country = country
	st.Gender = ""
	if err := s.sessions.Save(ctx, sessionID, st); err != nil {
		return domain.Reply{}, newError(ErrorStorage, "session_save_error", err)
	}
	return genderPrompt(country), nil
}

// issue asks for a fresh name and remembers the gender for regeneration only
// once the name has been recorded.
func (s *ConversationService) issue(ctx context.Context, sessionID string, st domain.ConversationState, gender domain.Gender) (domain.Reply, error) {
	name, err := s.issuer.Issue(ctx, st.Country, gender)
	if err != nil {
		var ucErr *Error
		if errors.As(err, &ucErr) && ucErr.Code == ErrorInvalidSelection {
			return useButtonsNotice(), nil
		}
		return domain.Reply{}, err
	}

	if st.Gender != gender {
		st.Gender = gender
		if err := s.sessions.Save(ctx, sessionID, st); err != nil {
			// The name is already recorded; show it anyway.
			s.log.WarnContext(ctx, "failed to save gender selection", "session", sessionID, "err", err)
		}
	}
	return nameResult(name), nil
}

// isCommand matches "/name" and "/name@botname", ignoring any arguments.
func isCommand(text, name string) bool {
	if !strings.HasPrefix(text, "/") {
		return false
	}
	cmd := strings.Fields(text[1:])
	if len(cmd) == 0 {
		return false
	}
	head, _, _ := strings.Cut(cmd[0], "@")
	return head == name
}
