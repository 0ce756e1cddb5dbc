package usecase

import (
	"context"
	"errors"
	"log/slog"

	"namebot/internal/domain"
	"namebot/internal/locale"
)

type LocaleResolver interface {
	Resolve(label string) (locale.ID, error)
}

type NameGenerator interface {
	Generate(localeID string, gender domain.Gender) (first, last string, err error)
}

// NameStore must insert atomically and return domain.ErrNameTaken when the
// full name already exists.
type NameStore interface {
	InsertName(ctx context.Context, n domain.IssuedName) (domain.IssuedName, error)
}

// attemptOutcome tags the result of one generate-and-insert round.
type attemptOutcome int

const (
	outcomeIssued attemptOutcome = iota
	outcomeCollision
	outcomeFailed
)

// IssueService hands out names that have never been issued before.
type IssueService struct {
	locales     LocaleResolver
	generator   NameGenerator
	store       NameStore
	maxAttempts int
	log         *slog.Logger
}

// NewIssueService builds the service. maxAttempts caps the collisions one call
// may absorb before giving up with EXHAUSTED; maxAttempts <= 0 retries without
// limit, which only ends when ctx does.
func NewIssueService(l LocaleResolver, g NameGenerator, s NameStore, maxAttempts int, log *slog.Logger) (*IssueService, error) {
	if l == nil {
		return nil, errors.New("usecase: locale resolver must not be nil")
	}
	if g == nil {
		return nil, errors.New("usecase: name generator must not be nil")
	}
	if s == nil {
		return nil, errors.New("usecase: name store must not be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &IssueService{
		locales:     l,
		generator:   g,
		store:       s,
		maxAttempts: maxAttempts,
		log:         log,
	}, nil
}

// Issue returns a full name for the country label and gender that no earlier
// call has returned, recording it before returning.
func (s *IssueService) Issue(ctx context.Context, country string, gender domain.Gender) (string, error) {
	localeID, err := s.locales.Resolve(country)
	if err != nil {
		return "", newError(ErrorInvalidSelection, "unknown_country", err)
	}
	if !gender.Valid() {
		return "", newError(ErrorInvalidSelection, "unknown_gender", nil)
	}

	collisions := 0
	for {
		if err := ctx.Err(); err != nil {
			return "", newError(ErrorInternal, "issue_cancelled", err)
		}
		if s.maxAttempts > 0 && collisions >= s.maxAttempts {
			return "", newError(ErrorExhausted, "issue_attempts_exhausted", nil)
		}

		name, outcome, err := s.attempt(ctx, country, string(localeID), gender)
		switch outcome {
		case outcomeIssued:
			if collisions > 0 {
				s.log.DebugContext(ctx, "issued name after collisions", "collisions", collisions, "locale", localeID)
			}
			return name, nil
		case outcomeCollision:
			collisions++
		default:
			return "", err
		}
	}
}

func (s *IssueService) attempt(ctx context.Context, country, localeID string, gender domain.Gender) (string, attemptOutcome, error) {
	first, last, err := s.generator.Generate(localeID, gender)
	if err != nil {
		return "", outcomeFailed, newError(ErrorInternal, "generator_error", err)
	}
	candidate := first + " " + last

	_, err = s.store.InsertName(ctx, domain.IssuedName{
		Country:  country,
		Gender:   gender,
		FullName: candidate,
	})
	switch {
	case err == nil:
		return candidate, outcomeIssued, nil
	case errors.Is(err, domain.ErrNameTaken):
		return "", outcomeCollision, nil
	case ctx.Err() != nil:
		return "", outcomeFailed, newError(ErrorInternal, "issue_cancelled", ctx.Err())
	default:
		return "", outcomeFailed, newError(ErrorStorage, "store_insert_error", err)
	}
}
