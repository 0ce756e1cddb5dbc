package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"namebot/internal/domain"
	"namebot/internal/pg"
)

const fullnameConstraint = "used_names_fullname_key"

// pgxAPI is the subset of *pgxpool.Pool used by Postgres.
type pgxAPI interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres stores issued names in the used_names table. Uniqueness is
// enforced by the table's constraint on fullname.
type Postgres struct {
	db pgxAPI
}

func NewPostgres(db pgxAPI) (*Postgres, error) {
	if db == nil {
		return nil, errors.New("repository: db must not be nil")
	}
	return &Postgres{db: db}, nil
}

// InsertName records a name in a single statement. A constraint violation on
// fullname is reported as domain.ErrNameTaken.
func (p *Postgres) InsertName(ctx context.Context, n domain.IssuedName) (domain.IssuedName, error) {
	if err := validateName(n); err != nil {
		return domain.IssuedName{}, err
	}

	const q = `INSERT INTO used_names (country, gender, fullname)
VALUES ($1, $2, $3)
RETURNING id, created_at`

	err := p.db.QueryRow(ctx, q, n.Country, string(n.Gender), n.FullName).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		if pg.IsDuplicateKeyError(err, fullnameConstraint) {
			return domain.IssuedName{}, domain.ErrNameTaken
		}
		return domain.IssuedName{}, fmt.Errorf("repository: InsertName: %w", err)
	}
	return n, nil
}

// CountNames returns the number of names issued so far.
func (p *Postgres) CountNames(ctx context.Context) (int64, error) {
	var n int64
	if err := p.db.QueryRow(ctx, `SELECT count(*) FROM used_names`).Scan(&n); err != nil {
		return 0, fmt.Errorf("repository: CountNames: %w", err)
	}
	return n, nil
}

func validateName(n domain.IssuedName) error {
	if n.FullName == "" {
		return errors.New("repository: full name is required")
	}
	if n.Country == "" {
		return errors.New("repository: country is required")
	}
	if !n.Gender.Valid() {
		return fmt.Errorf("repository: invalid gender %q", n.Gender)
	}
	return nil
}
