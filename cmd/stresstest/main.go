// Command stresstest hammers a running server with concurrent check-in and
// session-logging scenarios and fails when the success rate drops below the
// threshold.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/ironcoach/ironcoach/internal/catalog"
	"github.com/ironcoach/ironcoach/internal/e2etest"
	"github.com/ironcoach/ironcoach/internal/history"
	"github.com/ironcoach/ironcoach/internal/logging"
	"github.com/ironcoach/ironcoach/internal/testhelpers"
	"golang.org/x/sync/errgroup"
)

const (
	clientCount            = 50
	maxConcurrentScenarios = 20
	scenarioTimeout        = 30 * time.Second
	successRateThreshold   = 95.0
	percentageMultiplier   = 100
	baseWeight             = 40.0
	weightRange            = 40
	baseReps               = 5
	repsRange              = 8
	expectedArgsCount      = 2
	sessionDurationMinutes = 45
	sessionsPerScenario    = 3
	daysBetweenSessions    = 2
)

// scenario logs a few workout sessions and reads the recommendation back.
func scenario(ctx context.Context, client *e2etest.Client) error {
	ctx, cancel := context.WithTimeout(ctx, scenarioTimeout)
	defer cancel()

	for i := range sessionsPerScenario {
		completedAt := time.Now().AddDate(0, 0, -i*daysBetweenSessions)
		session := history.Session{
			StartedAt:   completedAt.Add(-sessionDurationMinutes * time.Minute),
			CompletedAt: completedAt,
			Exercises: []history.WorkoutExercise{
				{
					ExerciseID: catalog.ExerciseBenchPress,
					Sets: []history.PerformedSet{
						{
							Reps:      baseReps + rand.IntN(repsRange),
							WeightKg:  baseWeight + float64(rand.IntN(weightRange)),
							Kind:      history.SetNormal,
							Completed: true,
						},
					},
				},
			},
		}
		if err := client.PostJSON(ctx, "/api/sessions", session, nil); err != nil {
			return fmt.Errorf("post session: %w", err)
		}
	}

	var checkIn struct {
		Kind string `json:"kind"`
	}
	if err := client.GetJSON(ctx, "/api/checkin", &checkIn); err != nil {
		return fmt.Errorf("get check-in: %w", err)
	}
	if checkIn.Kind == "" {
		return fmt.Errorf("check-in returned no kind")
	}

	var sessions []history.Session
	if err := client.GetJSON(ctx, "/api/sessions", &sessions); err != nil {
		return fmt.Errorf("get sessions: %w", err)
	}
	if len(sessions) == 0 {
		return fmt.Errorf("no sessions listed after logging")
	}
	return nil
}

func run(ctx context.Context, logger *slog.Logger, url string) error {
	probe, err := e2etest.NewClient(url)
	if err != nil {
		return fmt.Errorf("create probe client: %w", err)
	}
	if err = probe.WaitForReady(ctx, "/api/healthy"); err != nil {
		return fmt.Errorf("server not ready: %w", err)
	}

	var successCount atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentScenarios)
	start := time.Now()

	for i := range clientCount {
		g.Go(func() error {
			client, clientErr := e2etest.NewClient(url)
			if clientErr != nil {
				return fmt.Errorf("create client %d: %w", i, clientErr)
			}
			if scenarioErr := scenario(ctx, client); scenarioErr != nil {
				logger.LogAttrs(ctx, slog.LevelWarn, "scenario failed",
					slog.Int("client", i), slog.Any("error", scenarioErr))
				return nil
			}
			successCount.Add(1)
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return fmt.Errorf("run scenarios: %w", err)
	}

	successRate := float64(successCount.Load()) / float64(clientCount) * percentageMultiplier
	logger.LogAttrs(ctx, slog.LevelInfo, "stress test finished",
		slog.Duration("duration", time.Since(start)),
		slog.Float64("success_rate", successRate))
	if successRate < successRateThreshold {
		return fmt.Errorf("load test failed: success rate %.1f%% below threshold", successRate)
	}
	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != expectedArgsCount {
		logger.LogAttrs(ctx, slog.LevelError, "usage: stresstest <hostname>")
		os.Exit(1)
	}

	hostname := os.Args[1]
	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))
	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}

	if err := run(ctx, logger, url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "stress test failed", slog.Any("error", err))
		os.Exit(1)
	}
}
