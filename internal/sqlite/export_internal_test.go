package sqlite

import (
	"database/sql"
	"testing"

	"github.com/ironcoach/ironcoach/internal/testhelpers"
)

func TestDatabase_Export(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))

	db, err := NewDatabase(ctx, ":memory:", logger)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		if err = db.Close(); err != nil {
			t.Errorf("Failed to close database: %v", err)
		}
	}()

	if _, err = db.ReadWrite.ExecContext(ctx,
		`INSERT INTO workout_sessions (routine_id, started_at, completed_at)
		 VALUES (0, '2026-02-02 10:00:00', '2026-02-02 11:00:00')`); err != nil {
		t.Fatalf("Failed to insert session: %v", err)
	}

	exportPath, err := db.Export(ctx, t.TempDir())
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	exported, err := sql.Open("sqlite3", exportPath)
	if err != nil {
		t.Fatalf("Failed to open exported database: %v", err)
	}
	defer func() {
		if err = exported.Close(); err != nil {
			t.Errorf("Failed to close exported database: %v", err)
		}
	}()

	var count int
	if err = exported.QueryRowContext(ctx, "SELECT COUNT(*) FROM workout_sessions").Scan(&count); err != nil {
		t.Fatalf("Failed to count sessions in export: %v", err)
	}
	if count != 1 {
		t.Errorf("exported session count = %d, want 1", count)
	}
}
