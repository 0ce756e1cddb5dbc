package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNameTaken is returned by issued-name stores when the uniqueness
// constraint on the full name rejects an insert.
var ErrNameTaken = errors.New("domain: name already issued")

// Gender selects which first-name dictionary a name is drawn from.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ParseGender accepts the persisted form of a gender.
func ParseGender(s string) (Gender, error) {
	switch Gender(strings.ToLower(strings.TrimSpace(s))) {
	case GenderMale:
		return GenderMale, nil
	case GenderFemale:
		return GenderFemale, nil
	default:
		return "", fmt.Errorf("domain: unknown gender %q", s)
	}
}

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// IssuedName is a single row of the append-only issued-name history.
// FullName is unique across every country and gender.
type IssuedName struct {
	ID        int64
	Country   string
	Gender    Gender
	FullName  string
	CreatedAt time.Time
}
