package main

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/ironcoach/ironcoach/internal/supplement"
)

type doseBody struct {
	Supplement   string            `json:"supplement"`
	ReferenceKey string            `json:"reference_key"`
	Params       map[string]string `json:"params"`
	Text         string            `json:"text"`
}

func TestSupplementPlan(t *testing.T) {
	t.Parallel()
	server := startServer(t)
	ctx := t.Context()

	var plan []doseBody
	if err := server.Client().GetJSON(ctx, "/api/supplements/plan", &plan); err != nil {
		t.Fatalf("get plan: %v", err)
	}
	if len(plan) != 3 {
		t.Fatalf("plan has %d doses, want 3", len(plan))
	}
	for _, dose := range plan {
		if dose.Text == "" {
			t.Errorf("dose %s has no resolved text", dose.Supplement)
		}
		if strings.Contains(dose.Text, "{") {
			t.Errorf("dose %s text %q has unresolved placeholders", dose.Supplement, dose.Text)
		}
	}
}

func TestSupplementIntakeAndReport(t *testing.T) {
	t.Parallel()
	server := startServer(t)
	ctx := t.Context()
	client := server.Client()

	day := time.Now().Format(time.DateOnly)
	body := map[string]string{"supplement": string(supplement.Creatine), "date": day}
	if err := client.PostJSON(ctx, "/api/supplements/intake", body, nil); err != nil {
		t.Fatalf("post intake: %v", err)
	}
	// Logging the same day twice must not fail.
	if err := client.PostJSON(ctx, "/api/supplements/intake", body, nil); err != nil {
		t.Fatalf("post intake repeat: %v", err)
	}

	var report []struct {
		Supplement   string `json:"supplement"`
		ReferenceKey string `json:"reference_key"`
		Text         string `json:"text"`
	}
	if err := client.GetJSON(ctx, "/api/supplements/report", &report); err != nil {
		t.Fatalf("get report: %v", err)
	}
	if len(report) != 1 {
		t.Fatalf("report has %d entries, want 1", len(report))
	}
	if report[0].ReferenceKey != "supp_effect_early" {
		t.Errorf("reference key = %q, want supp_effect_early with no sessions", report[0].ReferenceKey)
	}
}

func TestSupplementIntakeRejectsUnknown(t *testing.T) {
	t.Parallel()
	server := startServer(t)
	ctx := t.Context()

	err := server.Client().PostJSON(ctx, "/api/supplements/intake", map[string]string{"supplement": "bogus"}, nil)
	if err == nil {
		t.Fatal("expected error for unknown supplement")
	}
}

func TestExportWritesSnapshot(t *testing.T) {
	t.Parallel()
	server := startServer(t)
	ctx := t.Context()

	var result map[string]string
	if err := server.Client().PostJSON(ctx, "/api/export", map[string]any{}, &result); err != nil {
		t.Fatalf("post export: %v", err)
	}
	path := result["path"]
	if path == "" {
		t.Fatal("export returned no path")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("stat export file: %v", err)
	}
}
