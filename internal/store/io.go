package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"quatex/internal/domain"
)

// ErrInvalidName is returned for session names that are not safe file names.
var ErrInvalidName = errors.New("session name must match [A-Za-z0-9][A-Za-z0-9._-]{0,63}")

var nameRE = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,63}$`)

// ValidateName checks that name can be used as a file name.
func ValidateName(name domain.SessionName) error {
	if !nameRE.MatchString(name.String()) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// readJSON decodes path into out. It reports false, with no error, when the
// file does not exist.
func readJSON(path string, out any) (bool, error) {
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	case err != nil:
		return false, err
	}
	if err := json.Unmarshal(b, out); err != nil {
		return true, fmt.Errorf("store: %s: %w", filepath.Base(path), err)
	}
	return true, nil
}

// writeJSON replaces path with the indented JSON of v. The bytes land in a
// sibling temp file first so readers never see a partial session.
func writeJSON(path string, v any, mode os.FileMode) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	_, err = tmp.Write(b)
	if err == nil {
		err = tmp.Chmod(mode)
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
