package cmd

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/pgfmt/pkg/config"
	"github.com/pseudomuto/pgfmt/pkg/consts"
	"github.com/pseudomuto/pgfmt/pkg/parser"
	"github.com/urfave/cli/v3"
)

// stdinPath is the path argument that reads SQL from standard input.
const stdinPath = "-"

// requirePath returns the single path argument of cmd.
func requirePath(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() != 1 {
		return "", errors.New("exactly one path argument is required")
	}

	return cmd.Args().First(), nil
}

// sqlFiles resolves path into the SQL files to process. A file is returned as is; a directory
// is walked recursively for .sql files, skipping those the config excludes. Files are
// returned in lexical order.
func sqlFiles(path string, cfg *config.Config) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to access path: %s", path)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !strings.EqualFold(filepath.Ext(d.Name()), consts.SQLExt) {
			return nil
		}

		rel, err := filepath.Rel(path, p)
		if err != nil {
			return err
		}

		if cfg == nil || !cfg.Excluded(rel) {
			files = append(files, p)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk directory: %s", path)
	}

	if len(files) == 0 {
		return nil, errors.Errorf("no SQL files found in directory: %s", path)
	}

	return files, nil
}

// readSQL reads and parses the file at path, or standard input when path is "-".
func readSQL(cmd *cli.Command, path string) (string, *parser.SQL, error) {
	var (
		content []byte
		err     error
	)

	if path == stdinPath {
		content, err = io.ReadAll(cmd.Root().Reader)
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		return "", nil, errors.Wrapf(err, "failed to read file: %s", path)
	}

	sql, err := parser.ParseString(string(content))
	if err != nil {
		return "", nil, errors.Wrapf(err, "failed to parse SQL in file: %s", path)
	}

	return string(content), sql, nil
}
