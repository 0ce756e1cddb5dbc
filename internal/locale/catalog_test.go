package locale

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault_ResolvesEveryCountry(t *testing.T) {
	c := Default()
	cases := map[string]ID{
		"Nigeria🇳🇬":      "en_NG",
		"Nepal🇳🇵":        "ne_NP",
		"Ivory coast🇨🇮":  "fr_FR",
		"Afghanistan🇦🇫":  "fa_IR",
		"Bangladesh🇧🇩":   "bn_BD",
		"Saudi Arabia🇸🇦": "ar_SA",
	}
	for label, want := range cases {
		got, err := c.Resolve(label)
		require.NoError(t, err, label)
		require.Equal(t, want, got)
		require.True(t, c.Contains(label))
	}
}

func TestResolve_UnknownLabel(t *testing.T) {
	c := Default()
	for _, label := range []string{"", "Nigeria", "nigeria🇳🇬", "France🇫🇷", "👨 Male"} {
		_, err := c.Resolve(label)
		require.ErrorIs(t, err, ErrUnknownLabel, label)
		require.False(t, c.Contains(label))
	}
}

func TestLabels_KeepsOrder(t *testing.T) {
	labels := Default().Labels()
	require.Len(t, labels, 6)
	require.Equal(t, "Nigeria🇳🇬", labels[0])
	require.Equal(t, "Saudi Arabia🇸🇦", labels[5])

	labels[0] = "mutated"
	require.Equal(t, "Nigeria🇳🇬", Default().Labels()[0])
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)

	_, err = New([]Entry{{Label: " ", ID: "en_NG"}})
	require.ErrorContains(t, err, "label must not be empty")

	_, err = New([]Entry{{Label: "A", ID: "en_NG"}, {Label: "A", ID: "fr_FR"}})
	require.ErrorContains(t, err, "duplicate label")

	_, err = New([]Entry{{Label: "A", ID: "not a locale"}})
	require.ErrorContains(t, err, "invalid locale")
}

func TestID_Tag(t *testing.T) {
	tag, err := ID("ne_NP").Tag()
	require.NoError(t, err)
	require.Equal(t, "ne-NP", tag.String())
}
