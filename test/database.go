package test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// DatabaseFile returns the path of a fresh SQLite database file that is
// removed together with the test's temporary directory.
func DatabaseFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), fmt.Sprintf("finance-tracker-%s.db", uuid.NewString()))
}
