package coach

import (
	"context"
	"log/slog"

	"github.com/ironcoach/ironcoach/internal/errors"
	"github.com/ironcoach/ironcoach/internal/history"
)

// sessionRepository persists completed workout sessions.
type sessionRepository struct {
	baseRepository
}

// List returns the full session history, newest first, with exercises and
// sets attached.
func (r *sessionRepository) List(ctx context.Context) (_ history.History, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, routine_id, started_at, completed_at
		FROM workout_sessions
		ORDER BY completed_at DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "query sessions")
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, errors.Wrap(closeErr, "close rows"))
		}
	}()

	var h history.History
	for rows.Next() {
		var session history.Session
		if err = rows.Scan(&session.ID, &session.RoutineID,
			&session.StartedAt, &session.CompletedAt); err != nil {
			return nil, errors.Wrap(err, "scan session row")
		}
		h = append(h, session)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate session rows")
	}

	for i := range h {
		if h[i].Exercises, err = r.loadExercises(ctx, h[i].ID); err != nil {
			return nil, errors.Wrap(err, "load session exercises",
				slog.Int("session_id", h[i].ID))
		}
	}
	return h, nil
}

func (r *sessionRepository) loadExercises(ctx context.Context, sessionID int) (_ []history.WorkoutExercise, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT we.position, we.exercise_id,
		       ws.reps, ws.weight_kg, ws.kind, ws.completed,
		       ws.actual_rest_seconds, ws.target_rest_seconds, ws.hold_seconds
		FROM workout_exercises we
		         JOIN workout_sets ws ON ws.session_id = we.session_id AND ws.position = we.position
		WHERE we.session_id = ?
		ORDER BY we.position, ws.set_index`, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "query session sets")
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, errors.Wrap(closeErr, "close rows"))
		}
	}()

	var (
		exercises []history.WorkoutExercise
		current   *history.WorkoutExercise
		position  int
	)
	for rows.Next() {
		var (
			rowPosition int
			exerciseID  int
			set         history.PerformedSet
			kind        string
		)
		if err = rows.Scan(&rowPosition, &exerciseID,
			&set.Reps, &set.WeightKg, &kind, &set.Completed,
			&set.ActualRestSeconds, &set.TargetRestSeconds, &set.HoldSeconds); err != nil {
			return nil, errors.Wrap(err, "scan set row")
		}
		set.Kind = history.SetKind(kind)

		if current == nil || rowPosition != position {
			if current != nil {
				exercises = append(exercises, *current)
			}
			current = &history.WorkoutExercise{ExerciseID: exerciseID}
			position = rowPosition
		}
		current.Sets = append(current.Sets, set)
	}
	if current != nil {
		exercises = append(exercises, *current)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate set rows")
	}
	return exercises, nil
}

// Save stores a completed session with its exercises and sets in one
// transaction and returns the assigned session id.
func (r *sessionRepository) Save(ctx context.Context, session history.Session) (int, error) {
	if err := session.Validate(); err != nil {
		return 0, errors.Wrap(err, "validate session")
	}

	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "begin transaction")
	}
	defer r.rollback(ctx, tx)()

	result, err := tx.ExecContext(ctx, `
		INSERT INTO workout_sessions (routine_id, started_at, completed_at)
		VALUES (?, ?, ?)`,
		session.RoutineID, session.StartedAt.UTC(), session.CompletedAt.UTC())
	if err != nil {
		return 0, errors.Wrap(err, "insert session")
	}
	sessionID, err := result.LastInsertId()
	if err != nil {
		return 0, errors.Wrap(err, "session id")
	}

	for position, exercise := range session.Exercises {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO workout_exercises (session_id, position, exercise_id)
			VALUES (?, ?, ?)`,
			sessionID, position, exercise.ExerciseID); err != nil {
			return 0, errors.Wrap(err, "insert session exercise")
		}
		for setIndex, set := range exercise.Sets {
			if _, err = tx.ExecContext(ctx, `
				INSERT INTO workout_sets (session_id, position, set_index, reps, weight_kg, kind,
				                          completed, actual_rest_seconds, target_rest_seconds, hold_seconds)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				sessionID, position, setIndex, set.Reps, set.WeightKg, string(set.Kind),
				set.Completed, set.ActualRestSeconds, set.TargetRestSeconds, set.HoldSeconds); err != nil {
				return 0, errors.Wrap(err, "insert set")
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "commit transaction")
	}
	return int(sessionID), nil
}
