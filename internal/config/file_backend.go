package config

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/fernandofreitas03/textfmt/internal/errors"
)

// FileBackend stores documents as files in Directory. Reads additionally
// consult LegacyDirectories, in order, and migrate any value found there into
// Directory so older installations keep their settings.
type FileBackend struct {
	Directory         string
	LegacyDirectories []string
}

func NewFileBackend(dir string, legacyDirs ...string) (*FileBackend, error) {
	directory, err := expandTilde(dir)
	if err != nil {
		return nil, err
	}

	legacyDirectories := make([]string, len(legacyDirs))
	for i, legacyDir := range legacyDirs {
		legacyDirectories[i], err = expandTilde(legacyDir)
		if err != nil {
			return nil, err
		}
	}

	return &FileBackend{
		Directory:         directory,
		LegacyDirectories: legacyDirectories,
	}, nil
}

func (f FileBackend) Get(filename string) (string, error) {
	value, err := f.getFrom(f.Directory, filename)

	if err != nil && errors.Is(err, fs.ErrNotExist) {
		for _, dir := range f.LegacyDirectories {
			value, err = f.getFrom(dir, filename)

			if err != nil && errors.Is(err, fs.ErrNotExist) {
				continue
			}

			if err != nil {
				return value, err
			}

			if err := f.Set(filename, value); err != nil {
				return "", errors.Wrapf(err, "unable to migrate %q from %q to %q", filename, dir, f.Directory)
			}

			return value, nil
		}

		return "", nil
	}

	return value, err
}

func (f FileBackend) getFrom(dir, filename string) (string, error) {
	path := filepath.Join(dir, filename)
	fd, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "unable to open %q", path)
	}
	defer fd.Close()

	contents, err := io.ReadAll(fd)
	if err != nil {
		return "", errors.Wrapf(err, "error reading %q", path)
	}

	return strings.TrimSpace(string(contents)), nil
}

func (f FileBackend) Set(filename, value string) error {
	err := os.MkdirAll(f.Directory, os.ModePerm)
	if err != nil {
		return errors.Wrapf(err, "unable to create %q", f.Directory)
	}

	path := filepath.Join(f.Directory, filename)
	fd, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "unable to create %q", path)
	}
	defer fd.Close()

	_, err = io.WriteString(fd, value)
	if err != nil {
		return errors.Wrapf(err, "unable to write to %q", path)
	}

	return nil
}

var tildeSlash = fmt.Sprintf("~%v", string(os.PathSeparator))

func expandTilde(dir string) (string, error) {
	user, err := user.Current()
	if err != nil {
		return "", err
	}

	if strings.HasPrefix(dir, tildeSlash) {
		return filepath.Join(user.HomeDir, strings.TrimPrefix(dir, tildeSlash)), nil
	} else if dir == "~" {
		return user.HomeDir, nil
	} else {
		return dir, nil
	}
}
