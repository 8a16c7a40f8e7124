package coach

import (
	"context"

	"github.com/ironcoach/ironcoach/internal/errors"
	"github.com/ironcoach/ironcoach/internal/history"
	"github.com/ironcoach/ironcoach/internal/routine"
)

// routineRepository persists the user's custom routines.
type routineRepository struct {
	baseRepository
}

// List returns all stored routines with their exercise prescriptions.
func (r *routineRepository) List(ctx context.Context) (_ []routine.Routine, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, name, description, is_template
		FROM routines
		ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "query routines")
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, errors.Wrap(closeErr, "close rows"))
		}
	}()

	var routines []routine.Routine
	for rows.Next() {
		var item routine.Routine
		if err = rows.Scan(&item.ID, &item.Name, &item.Description, &item.IsTemplate); err != nil {
			return nil, errors.Wrap(err, "scan routine row")
		}
		routines = append(routines, item)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate routine rows")
	}

	for i := range routines {
		if routines[i].Exercises, err = r.loadExercises(ctx, routines[i].ID); err != nil {
			return nil, err
		}
	}
	return routines, nil
}

func (r *routineRepository) loadExercises(ctx context.Context, routineID int) (_ []history.WorkoutExercise, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT exercise_id, sets, reps, hold_seconds, rest_seconds
		FROM routine_exercises
		WHERE routine_id = ?
		ORDER BY position`, routineID)
	if err != nil {
		return nil, errors.Wrap(err, "query routine exercises")
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, errors.Wrap(closeErr, "close rows"))
		}
	}()

	var exercises []history.WorkoutExercise
	for rows.Next() {
		var (
			exercise history.WorkoutExercise
			sets     int
			reps     int
			hold     int
			rest     int
		)
		if err = rows.Scan(&exercise.ExerciseID, &sets, &reps, &hold, &rest); err != nil {
			return nil, errors.Wrap(err, "scan routine exercise")
		}
		for range sets {
			exercise.Sets = append(exercise.Sets, history.PerformedSet{
				Reps:              reps,
				HoldSeconds:       hold,
				TargetRestSeconds: rest,
			})
		}
		exercises = append(exercises, exercise)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate routine exercises")
	}
	return exercises, nil
}

// Save stores a routine and its prescription, returning the assigned id.
func (r *routineRepository) Save(ctx context.Context, item routine.Routine) (int, error) {
	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "begin transaction")
	}
	defer r.rollback(ctx, tx)()

	result, err := tx.ExecContext(ctx, `
		INSERT INTO routines (name, description, is_template)
		VALUES (?, ?, ?)`,
		item.Name, item.Description, item.IsTemplate)
	if err != nil {
		return 0, errors.Wrap(err, "insert routine")
	}
	routineID, err := result.LastInsertId()
	if err != nil {
		return 0, errors.Wrap(err, "routine id")
	}

	for position, exercise := range item.Exercises {
		prescription := prescriptionOf(exercise)
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO routine_exercises (routine_id, position, exercise_id, sets, reps, hold_seconds, rest_seconds)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			routineID, position, exercise.ExerciseID,
			len(exercise.Sets), prescription.Reps, prescription.HoldSeconds,
			prescription.TargetRestSeconds); err != nil {
			return 0, errors.Wrap(err, "insert routine exercise")
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "commit transaction")
	}
	return int(routineID), nil
}

// prescriptionOf reads the per-set prescription off the first set. Generated
// routines prescribe every set of an exercise identically.
func prescriptionOf(exercise history.WorkoutExercise) history.PerformedSet {
	if len(exercise.Sets) == 0 {
		return history.PerformedSet{}
	}
	return exercise.Sets[0]
}
