package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"time"
)

// Export writes a consistent snapshot of the whole database into a new file
// under basePath and returns its path.
//
// VACUUM INTO produces a compacted copy that is safe to take while readers
// and the writer are active, which makes it suitable for user data export
// and offline backups.
func (db *Database) Export(ctx context.Context, basePath string) (string, error) {
	exportPath := filepath.Join(basePath, fmt.Sprintf("ironcoach-export-%d.sqlite3", time.Now().Unix()))
	if _, err := db.ReadWrite.ExecContext(ctx, "VACUUM INTO ?", exportPath); err != nil {
		return "", fmt.Errorf("vacuum into %s: %w", exportPath, err)
	}
	return exportPath, nil
}
