package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ironcoach/ironcoach/internal/e2etest"
	"github.com/ironcoach/ironcoach/internal/logging"
	"github.com/ironcoach/ironcoach/internal/testhelpers"
)

// TestCheckIn exercises the core read path: check-in, catalog, and the
// supplement plan.
func TestCheckIn(client *e2etest.Client) error {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second) //nolint:mnd // 10 seconds
	defer cancel()

	var checkIn struct {
		Kind  string `json:"kind"`
		Title string `json:"title"`
	}
	if err := client.GetJSON(ctx, "/api/checkin", &checkIn); err != nil {
		return fmt.Errorf("get check-in: %w", err)
	}
	if checkIn.Kind == "" {
		return fmt.Errorf("check-in returned no kind")
	}

	var exercises []struct {
		ID int `json:"id"`
	}
	if err := client.GetJSON(ctx, "/api/exercises", &exercises); err != nil {
		return fmt.Errorf("get exercises: %w", err)
	}
	if len(exercises) == 0 {
		return fmt.Errorf("exercise catalog is empty")
	}

	var plan []struct {
		Supplement string `json:"supplement"`
	}
	if err := client.GetJSON(ctx, "/api/supplements/plan", &plan); err != nil {
		return fmt.Errorf("get supplement plan: %w", err)
	}
	if len(plan) == 0 {
		return fmt.Errorf("supplement plan is empty")
	}
	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		client   *e2etest.Client
		err      error
		start    = time.Now()
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))
	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}

	if client, err = e2etest.NewClient(url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", slog.Any("error", err))
		os.Exit(1)
	}
	if err = client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}
	if err = TestCheckIn(client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing check-in", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌", slog.Duration("duration", time.Since(start)))
	os.Exit(0)
}
