package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/pgfmt/pkg/consts"
	"github.com/stretchr/testify/require"
)

// SQLDir is a temporary directory of SQL files.
type SQLDir struct {
	Dir string
	t   *testing.T
}

// NewSQLDir creates an empty SQLDir that is removed when the test ends.
func NewSQLDir(t *testing.T) *SQLDir {
	t.Helper()
	return &SQLDir{Dir: t.TempDir(), t: t}
}

// WithFiles writes files, keyed by slash separated path relative to the directory.
func (d *SQLDir) WithFiles(files map[string]string) *SQLDir {
	d.t.Helper()

	for name, content := range files {
		d.Write(name, content)
	}
	return d
}

// Write writes a single file, creating parent directories, and returns its path.
func (d *SQLDir) Write(name, content string) string {
	d.t.Helper()

	path := d.Path(name)
	require.NoError(d.t, os.MkdirAll(filepath.Dir(path), os.ModePerm), "Failed to create directory for %s", name)
	require.NoError(d.t, os.WriteFile(path, []byte(content), consts.ModeFile), "Failed to write %s", name)
	return path
}

// Path returns the absolute path of name inside the directory.
func (d *SQLDir) Path(name string) string {
	return filepath.Join(d.Dir, filepath.FromSlash(name))
}
