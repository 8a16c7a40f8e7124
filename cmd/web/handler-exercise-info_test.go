package main

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/ironcoach/ironcoach/internal/catalog"
)

func TestExercisesList(t *testing.T) {
	t.Parallel()
	server := startServer(t)
	ctx := t.Context()

	var exercises []catalog.Exercise
	if err := server.Client().GetJSON(ctx, "/api/exercises", &exercises); err != nil {
		t.Fatalf("get exercises: %v", err)
	}
	if len(exercises) == 0 {
		t.Fatal("catalog is empty")
	}
	found := false
	for _, exercise := range exercises {
		if exercise.ID == catalog.ExerciseBenchPress {
			found = true
			if exercise.Name != "Bench Press" {
				t.Errorf("name = %q, want Bench Press", exercise.Name)
			}
		}
	}
	if !found {
		t.Error("bench press missing from catalog listing")
	}
}

func TestExerciseInfoRendersMarkdown(t *testing.T) {
	t.Parallel()
	server := startServer(t)
	ctx := t.Context()

	var info struct {
		catalog.Exercise
		DescriptionHTML string `json:"description_html"`
	}
	path := fmt.Sprintf("/api/exercises/%d/info", catalog.ExerciseBenchPress)
	if err := server.Client().GetJSON(ctx, path, &info); err != nil {
		t.Fatalf("get exercise info: %v", err)
	}
	if info.Name != "Bench Press" {
		t.Errorf("name = %q, want Bench Press", info.Name)
	}
	if !strings.Contains(info.DescriptionHTML, "<h1>Bench Press</h1>") {
		t.Errorf("description HTML %q missing rendered heading", info.DescriptionHTML)
	}
}

func TestExerciseInfoUnknownID(t *testing.T) {
	t.Parallel()
	server := startServer(t)
	ctx := t.Context()

	resp, err := server.Client().Get(ctx, "/api/exercises/99999/info")
	if err != nil {
		t.Fatalf("get exercise info: %v", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}
