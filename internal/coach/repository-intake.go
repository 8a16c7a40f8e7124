package coach

import (
	"context"
	"time"

	"github.com/ironcoach/ironcoach/internal/errors"
	"github.com/ironcoach/ironcoach/internal/supplement"
)

// intakeRepository logs supplement intake by day.
type intakeRepository struct {
	baseRepository
}

// Log records an intake. Logging the same supplement twice on a day is a
// no-op.
func (r *intakeRepository) Log(ctx context.Context, entry supplement.Intake) error {
	if _, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO supplement_intake (supplement, taken_on)
		VALUES (?, ?)
		ON CONFLICT (supplement, taken_on) DO NOTHING`,
		string(entry.Supplement), entry.Date.UTC().Format(time.DateOnly)); err != nil {
		return errors.Wrap(err, "insert intake")
	}
	return nil
}

// List returns every logged intake.
func (r *intakeRepository) List(ctx context.Context) (_ []supplement.Intake, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT supplement, taken_on
		FROM supplement_intake
		ORDER BY taken_on, supplement`)
	if err != nil {
		return nil, errors.Wrap(err, "query intake")
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, errors.Wrap(closeErr, "close rows"))
		}
	}()

	var entries []supplement.Intake
	for rows.Next() {
		var (
			name    string
			takenOn string
		)
		if err = rows.Scan(&name, &takenOn); err != nil {
			return nil, errors.Wrap(err, "scan intake row")
		}
		date, err := time.Parse(time.DateOnly, takenOn)
		if err != nil {
			return nil, errors.Wrap(err, "parse intake date")
		}
		entries = append(entries, supplement.Intake{
			Supplement: supplement.Supplement(name),
			Date:       date,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate intake rows")
	}
	return entries, nil
}
