package coach

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/ironcoach/ironcoach/internal/errors"
	"github.com/ironcoach/ironcoach/internal/sqlite"
)

// baseRepository carries the shared database handles and logging for the
// aggregate repositories.
type baseRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func newBaseRepository(db *sqlite.Database, logger *slog.Logger) baseRepository {
	return baseRepository{db: db, logger: logger}
}

// rollback logs a failed rollback instead of masking the original error.
func (r baseRepository) rollback(ctx context.Context, tx *sql.Tx) func() {
	return func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			r.logger.LogAttrs(ctx, slog.LevelError, "rollback transaction",
				slog.Any("error", err))
		}
	}
}

// repository bundles the aggregate repositories behind the service.
type repository struct {
	exercises *exerciseRepository
	sessions  *sessionRepository
	profile   *profileRepository
	routines  *routineRepository
	intake    *intakeRepository
}

func newRepository(db *sqlite.Database, logger *slog.Logger) *repository {
	base := newBaseRepository(db, logger)
	return &repository{
		exercises: &exerciseRepository{baseRepository: base},
		sessions:  &sessionRepository{baseRepository: base},
		profile:   &profileRepository{baseRepository: base},
		routines:  &routineRepository{baseRepository: base},
		intake:    &intakeRepository{baseRepository: base},
	}
}
