package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"namebot/internal/domain"
)

type store interface {
	Get(ctx context.Context, sessionID string) (domain.ConversationState, error)
	Save(ctx context.Context, sessionID string, st domain.ConversationState) error
}

// exerciseStore checks the behaviour every backend shares.
func exerciseStore(t *testing.T, s store) {
	t.Helper()
	ctx := context.Background()

	st, err := s.Get(ctx, "1:1")
	require.NoError(t, err)
	require.Equal(t, domain.PhaseIdle, st.CurrentPhase())
	require.Empty(t, st.Country)

	want := domain.ConversationState{Phase: domain.PhaseChoosingGender, Country: "Nepal🇳🇵", Gender: domain.GenderFemale}
	require.NoError(t, s.Save(ctx, "1:1", want))

	got, err := s.Get(ctx, "1:1")
	require.NoError(t, err)
	require.Equal(t, want, got)

	other, err := s.Get(ctx, "2:2")
	require.NoError(t, err)
	require.Equal(t, domain.PhaseIdle, other.CurrentPhase())

	// A save replaces the whole state rather than merging fields.
	require.NoError(t, s.Save(ctx, "1:1", domain.ConversationState{Phase: domain.PhaseChoosingCountry}))
	got, err = s.Get(ctx, "1:1")
	require.NoError(t, err)
	require.Equal(t, domain.PhaseChoosingCountry, got.CurrentPhase())
	require.Empty(t, got.Country)
	require.Empty(t, got.Gender)
}

func TestMemory(t *testing.T) {
	exerciseStore(t, NewMemory())
}
