package coach

import (
	"context"
	"time"

	"github.com/ironcoach/ironcoach/internal/errors"
	"github.com/ironcoach/ironcoach/internal/history"
)

// profileRepository persists the singleton profile row together with the
// recorded maxes and active snoozes.
type profileRepository struct {
	baseRepository
}

// Get assembles the profile from its three tables.
func (r *profileRepository) Get(ctx context.Context) (history.Profile, error) {
	var (
		profile    history.Profile
		gender     string
		goal       string
		experience string
	)
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT gender, goal, experience, adaptive_efficiency
		FROM profile
		WHERE id = 1`).Scan(&gender, &goal, &experience, &profile.AdaptiveEfficiency)
	if err != nil {
		return history.Profile{}, errors.Wrap(err, "query profile")
	}
	profile.Gender = history.Gender(gender)
	profile.Goal = history.Goal(goal)
	profile.Experience = history.Experience(experience)

	if profile.RecordedMaxes, err = r.recordedMaxes(ctx); err != nil {
		return history.Profile{}, err
	}
	if profile.Snoozes, err = r.snoozes(ctx); err != nil {
		return history.Profile{}, err
	}
	return profile, nil
}

func (r *profileRepository) recordedMaxes(ctx context.Context) (_ map[int]history.RecordedMax, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT exercise_id, weight_kg, recorded_at
		FROM recorded_maxes`)
	if err != nil {
		return nil, errors.Wrap(err, "query recorded maxes")
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, errors.Wrap(closeErr, "close rows"))
		}
	}()

	maxes := make(map[int]history.RecordedMax)
	for rows.Next() {
		var (
			exerciseID int
			max        history.RecordedMax
		)
		if err = rows.Scan(&exerciseID, &max.WeightKg, &max.Date); err != nil {
			return nil, errors.Wrap(err, "scan recorded max")
		}
		maxes[exerciseID] = max
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate recorded maxes")
	}
	return maxes, nil
}

func (r *profileRepository) snoozes(ctx context.Context) (_ map[string]time.Time, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT kind, snoozed_at
		FROM snoozes`)
	if err != nil {
		return nil, errors.Wrap(err, "query snoozes")
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, errors.Wrap(closeErr, "close rows"))
		}
	}()

	snoozes := make(map[string]time.Time)
	for rows.Next() {
		var (
			kind      string
			snoozedAt time.Time
		)
		if err = rows.Scan(&kind, &snoozedAt); err != nil {
			return nil, errors.Wrap(err, "scan snooze")
		}
		snoozes[kind] = snoozedAt
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate snoozes")
	}
	return snoozes, nil
}

// Set updates the profile row and replaces the recorded maxes.
func (r *profileRepository) Set(ctx context.Context, profile history.Profile) error {
	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	defer r.rollback(ctx, tx)()

	if _, err = tx.ExecContext(ctx, `
		UPDATE profile
		SET gender              = ?,
		    goal                = ?,
		    experience          = ?,
		    adaptive_efficiency = ?
		WHERE id = 1`,
		string(profile.Gender), string(profile.Goal), string(profile.Experience),
		profile.AdaptiveEfficiency); err != nil {
		return errors.Wrap(err, "update profile")
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM recorded_maxes`); err != nil {
		return errors.Wrap(err, "clear recorded maxes")
	}
	for exerciseID, max := range profile.RecordedMaxes {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO recorded_maxes (exercise_id, weight_kg, recorded_at)
			VALUES (?, ?, ?)`,
			exerciseID, max.WeightKg, max.Date.UTC()); err != nil {
			return errors.Wrap(err, "insert recorded max")
		}
	}

	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "commit transaction")
	}
	return nil
}

// Snooze records a suppression for a recommendation kind starting at the
// given time.
func (r *profileRepository) Snooze(ctx context.Context, kind string, at time.Time) error {
	if _, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO snoozes (kind, snoozed_at)
		VALUES (?, ?)
		ON CONFLICT (kind) DO UPDATE SET snoozed_at = excluded.snoozed_at`,
		kind, at.UTC()); err != nil {
		return errors.Wrap(err, "upsert snooze")
	}
	return nil
}
