package locale

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// ErrUnknownLabel is returned when a label is not one of the catalog's countries.
var ErrUnknownLabel = errors.New("locale: unknown country label")

// ID is a generator locale identifier such as "en_NG".
type ID string

// Tag converts the identifier to its BCP 47 form.
func (id ID) Tag() (language.Tag, error) {
	return language.Parse(strings.ReplaceAll(string(id), "_", "-"))
}

// Entry pairs a user-facing country label with the locale names are drawn from.
type Entry struct {
	Label string
	ID    ID
}

// DefaultEntries is the fixed set of countries offered to users, in keyboard order.
var DefaultEntries = []Entry{
	{Label: "Nigeria🇳🇬", ID: "en_NG"},
	{Label: "Nepal🇳🇵", ID: "ne_NP"},
	{Label: "Ivory coast🇨🇮", ID: "fr_FR"},
	{Label: "Afghanistan🇦🇫", ID: "fa_IR"},
	{Label: "Bangladesh🇧🇩", ID: "bn_BD"},
	{Label: "Saudi Arabia🇸🇦", ID: "ar_SA"},
}

// Catalog is an immutable label to locale lookup.
type Catalog struct {
	entries []Entry
	byLabel map[string]ID
}

// New builds a catalog, rejecting duplicate labels and malformed locale ids.
func New(entries []Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, errors.New("locale: catalog must not be empty")
	}
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		byLabel: make(map[string]ID, len(entries)),
	}
	for _, e := range entries {
		if strings.TrimSpace(e.Label) == "" {
			return nil, errors.New("locale: label must not be empty")
		}
		if _, dup := c.byLabel[e.Label]; dup {
			return nil, fmt.Errorf("locale: duplicate label %q", e.Label)
		}
		if _, err := e.ID.Tag(); err != nil {
			return nil, fmt.Errorf("locale: invalid locale %q for %q: %w", e.ID, e.Label, err)
		}
		c.byLabel[e.Label] = e.ID
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// Default returns the catalog of DefaultEntries.
func Default() *Catalog {
	c, err := New(DefaultEntries)
	if err != nil {
		panic(err)
	}
	return c
}

// Resolve maps a label to its locale. Labels match exactly, flag included.
func (c *Catalog) Resolve(label string) (ID, error) {
	id, ok := c.byLabel[label]
	if !ok {
		return "", ErrUnknownLabel
	}
	return id, nil
}

func (c *Catalog) Contains(label string) bool {
	_, ok := c.byLabel[label]
	return ok
}

// Labels returns the country labels in catalog order.
func (c *Catalog) Labels() []string {
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Label
	}
	return out
}
