// Package coach glues the persistence layer to the recommendation, routine,
// and supplement engines. All engine computations stay pure; the service
// loads their inputs, runs them, and stores their outputs.
package coach

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ironcoach/ironcoach/internal/catalog"
	"github.com/ironcoach/ironcoach/internal/errors"
	"github.com/ironcoach/ironcoach/internal/fatigue"
	"github.com/ironcoach/ironcoach/internal/history"
	"github.com/ironcoach/ironcoach/internal/recommend"
	"github.com/ironcoach/ironcoach/internal/routine"
	"github.com/ironcoach/ironcoach/internal/sqlite"
	"github.com/ironcoach/ironcoach/internal/supplement"
)

// Service is the application-facing API over the training engines.
type Service struct {
	repo      *repository
	catalog   catalog.Catalog
	generator *routine.Generator
	engine    *recommend.Engine
	db        *sqlite.Database
	logger    *slog.Logger
}

// NewService builds the service and syncs the exercise catalog into the
// database.
func NewService(ctx context.Context, db *sqlite.Database, logger *slog.Logger) (*Service, error) {
	c := catalog.Default()
	generator := routine.NewGenerator(c, nil)
	s := &Service{
		repo:      newRepository(db, logger),
		catalog:   c,
		generator: generator,
		engine:    recommend.NewEngine(c, generator),
		db:        db,
		logger:    logger,
	}
	if err := s.repo.exercises.Sync(ctx, c); err != nil {
		return nil, errors.Wrap(err, "sync exercise catalog")
	}
	return s, nil
}

// Catalog exposes the in-memory exercise catalog.
func (s *Service) Catalog() catalog.Catalog {
	return s.catalog
}

// checkInInput loads the engine input with the reads running concurrently on
// the read-only pool.
func (s *Service) checkInInput(ctx context.Context, settings routine.Settings, now time.Time) (recommend.Input, error) {
	in := recommend.Input{Settings: settings, Now: now}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		in.History, err = s.repo.sessions.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		in.Profile, err = s.repo.profile.Get(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		in.Routines, err = s.repo.routines.List(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return recommend.Input{}, errors.Wrap(err, "load check-in input")
	}
	return in, nil
}

// CheckIn loads the user's state and runs the recommendation cascade.
func (s *Service) CheckIn(ctx context.Context, settings routine.Settings, now time.Time) (recommend.Recommendation, error) {
	in, err := s.checkInInput(ctx, settings, now)
	if err != nil {
		return recommend.Recommendation{}, err
	}
	rec, err := s.engine.CheckIn(in)
	if err != nil {
		return recommend.Recommendation{}, errors.Wrap(err, "run cascade")
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "check-in evaluated",
		slog.String("kind", string(rec.Kind)),
		slog.Int("sessions", len(in.History)))
	return rec, nil
}

// Freshness computes the current per-muscle freshness map.
func (s *Service) Freshness(ctx context.Context, now time.Time) (fatigue.FreshnessMap, error) {
	var (
		h       history.History
		profile history.Profile
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		h, err = s.repo.sessions.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		profile, err = s.repo.profile.Get(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "load freshness input")
	}
	return fatigue.Freshness(h, s.catalog, profile.GoalOrDefault(), profile, now), nil
}

// GenerateRoutine builds a routine for the focus, preferring the user's
// proven favorites.
func (s *Service) GenerateRoutine(ctx context.Context, focus routine.Focus, settings routine.Settings) (routine.Routine, error) {
	h, err := s.repo.sessions.List(ctx)
	if err != nil {
		return routine.Routine{}, errors.Wrap(err, "load history")
	}
	generated, err := s.generator.GenerateSmartRoutine(focus, settings, h.ExerciseFrequency())
	if err != nil {
		return routine.Routine{}, errors.Wrap(err, "generate routine",
			slog.String("focus", string(focus)))
	}
	return generated, nil
}

// GenerateGapSession builds a low-risk session scaled to current fatigue.
func (s *Service) GenerateGapSession(ctx context.Context, protected []catalog.MuscleGroup, settings routine.Settings, now time.Time) (routine.Routine, error) {
	freshness, err := s.Freshness(ctx, now)
	if err != nil {
		return routine.Routine{}, err
	}
	gap, err := s.generator.GenerateGapSession(protected, settings, freshness)
	if err != nil {
		return routine.Routine{}, errors.Wrap(err, "generate gap session")
	}
	return gap, nil
}

// SaveRoutine persists a custom routine and returns its id.
func (s *Service) SaveRoutine(ctx context.Context, item routine.Routine) (int, error) {
	return s.repo.routines.Save(ctx, item)
}

// Routines lists the stored routines.
func (s *Service) Routines(ctx context.Context) ([]routine.Routine, error) {
	return s.repo.routines.List(ctx)
}

// SaveSession persists a completed workout session.
func (s *Service) SaveSession(ctx context.Context, session history.Session) (int, error) {
	return s.repo.sessions.Save(ctx, session)
}

// History returns the stored workout history, newest first.
func (s *Service) History(ctx context.Context) (history.History, error) {
	return s.repo.sessions.List(ctx)
}

// Profile returns the stored profile.
func (s *Service) Profile(ctx context.Context) (history.Profile, error) {
	return s.repo.profile.Get(ctx)
}

// SetProfile updates the stored profile.
func (s *Service) SetProfile(ctx context.Context, profile history.Profile) error {
	return s.repo.profile.Set(ctx, profile)
}

// Snooze suppresses a recommendation kind starting now.
func (s *Service) Snooze(ctx context.Context, kind recommend.Kind, now time.Time) error {
	return s.repo.profile.Snooze(ctx, string(kind), now)
}

// SupplementPlan derives the dosage plan from the profile.
func (s *Service) SupplementPlan(ctx context.Context) ([]supplement.Dose, error) {
	profile, err := s.repo.profile.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load profile")
	}
	return supplement.Plan(profile), nil
}

// LogIntake records a supplement intake.
func (s *Service) LogIntake(ctx context.Context, entry supplement.Intake) error {
	return s.repo.intake.Log(ctx, entry)
}

// SupplementReport correlates logged intake against session volume.
func (s *Service) SupplementReport(ctx context.Context) ([]supplement.Correlation, error) {
	var (
		h      history.History
		intake []supplement.Intake
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		h, err = s.repo.sessions.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		intake, err = s.repo.intake.List(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "load supplement report input")
	}
	return supplement.Correlate(h, intake), nil
}

// Export snapshots the database into a file under basePath.
func (s *Service) Export(ctx context.Context, basePath string) (string, error) {
	return s.db.Export(ctx, basePath)
}
