package coach

import (
	"context"
	"strings"

	"github.com/ironcoach/ironcoach/internal/catalog"
	"github.com/ironcoach/ironcoach/internal/errors"
)

// exerciseRepository mirrors the built-in exercise catalog into the database
// so that history rows have a referential home and external tools can query
// exercise metadata with plain SQL.
type exerciseRepository struct {
	baseRepository
}

const muscleListSeparator = ","

func joinMuscles(muscles []catalog.MuscleGroup) string {
	parts := make([]string, 0, len(muscles))
	for _, muscle := range muscles {
		parts = append(parts, string(muscle))
	}
	return strings.Join(parts, muscleListSeparator)
}

func splitMuscles(joined string) []catalog.MuscleGroup {
	if joined == "" {
		return nil
	}
	parts := strings.Split(joined, muscleListSeparator)
	muscles := make([]catalog.MuscleGroup, 0, len(parts))
	for _, part := range parts {
		muscles = append(muscles, catalog.MuscleGroup(part))
	}
	return muscles
}

// Sync upserts every catalog exercise. Called once on startup.
func (r *exerciseRepository) Sync(ctx context.Context, c catalog.Catalog) error {
	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	defer r.rollback(ctx, tx)()

	for _, ex := range c.All() {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO exercises (id, name, body_part, equipment, primary_muscles, secondary_muscles,
			                       description_markdown, isometric, plyometric)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (id) DO UPDATE SET name                 = excluded.name,
			                               body_part            = excluded.body_part,
			                               equipment            = excluded.equipment,
			                               primary_muscles      = excluded.primary_muscles,
			                               secondary_muscles    = excluded.secondary_muscles,
			                               description_markdown = excluded.description_markdown,
			                               isometric            = excluded.isometric,
			                               plyometric           = excluded.plyometric`,
			ex.ID, ex.Name, string(ex.BodyPart), string(ex.Equipment),
			joinMuscles(ex.PrimaryMuscles), joinMuscles(ex.SecondaryMuscles),
			ex.DescriptionMarkdown, ex.Isometric, ex.Plyometric); err != nil {
			return errors.Wrap(err, "upsert exercise")
		}
	}

	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "commit transaction")
	}
	return nil
}

// List reads the stored catalog back, in id order.
func (r *exerciseRepository) List(ctx context.Context) (_ []catalog.Exercise, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, name, body_part, equipment, primary_muscles, secondary_muscles,
		       description_markdown, isometric, plyometric
		FROM exercises
		ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "query exercises")
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, errors.Wrap(closeErr, "close rows"))
		}
	}()

	var exercises []catalog.Exercise
	for rows.Next() {
		var (
			ex                 catalog.Exercise
			bodyPart           string
			equipment          string
			primary, secondary string
		)
		if err = rows.Scan(&ex.ID, &ex.Name, &bodyPart, &equipment, &primary, &secondary,
			&ex.DescriptionMarkdown, &ex.Isometric, &ex.Plyometric); err != nil {
			return nil, errors.Wrap(err, "scan exercise row")
		}
		ex.BodyPart = catalog.BodyPart(bodyPart)
		ex.Equipment = catalog.Equipment(equipment)
		ex.PrimaryMuscles = splitMuscles(primary)
		ex.SecondaryMuscles = splitMuscles(secondary)
		exercises = append(exercises, ex)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate exercise rows")
	}
	return exercises, nil
}
