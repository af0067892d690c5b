// Package records reads and writes YAML files holding sequences of tuple-like records.
//
// Every file is a YAML sequence with one entry per record. With the tuple package
// types each record is itself a flow sequence:
//
//	- [5, hi0, true]
//	- [6, hi1, false]
package records

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Load reads the records stored in the file name.
// An empty file holds no records.
func Load[R any](fs afero.Fs, name string) ([]R, error) {
	f, err := fs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("unable to open file %q: %w", name, err)
	}
	defer f.Close()

	rows, err := decode[R](f)
	if err != nil {
		return nil, fmt.Errorf("unable to read file %q: %w", name, err)
	}

	return rows, nil
}

// LoadAllFromFs reads all record files that match the default FileMatcher from the fs root.
func LoadAllFromFs[R any](fs afero.Fs) (map[string][]R, error) {
	return LoadAll[R](fs, defaultMatcher)
}

// LoadAll reads all record files in the fs root accepted by matcher, keyed by dataset name.
func LoadAll[R any](fs afero.Fs, matcher FileMatcher) (map[string][]R, error) {
	entries, err := afero.ReadDir(fs, ".")
	if err != nil {
		return nil, fmt.Errorf("unable to read fs: %w", err)
	}

	files := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if !matcher.IsMatch(entry.Name()) {
			continue
		}

		dataset, err := matcher.Dataset(entry.Name())
		if err != nil {
			return nil, fmt.Errorf("unable to parse dataset %q: %w", entry.Name(), err)
		}

		if existing, ok := files[dataset]; ok {
			return nil, fmt.Errorf("duplicate dataset %q in files %q and %q", dataset, existing, entry.Name())
		}

		files[dataset] = entry.Name()
	}

	sets := make(map[string][]R, len(files))
	for dataset, file := range files {
		rows, err := Load[R](fs, file)
		if err != nil {
			return nil, err
		}

		sets[dataset] = rows
	}

	return sets, nil
}

// Save writes rows to the file name, replacing its content.
func Save[R any](fs afero.Fs, name string, rows []R) error {
	file, err := fs.Create(name)
	if err != nil {
		return fmt.Errorf("error opening file: %w", err)
	}
	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	if err := encoder.Encode(rows); err != nil {
		return fmt.Errorf("error writing yaml: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("error writing yaml: %w", err)
	}

	return file.Close()
}

func decode[R any](content io.Reader) ([]R, error) {
	var rows []R

	err := yaml.NewDecoder(content).Decode(&rows)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unable to decode yaml: %w", err)
	}

	return rows, nil
}
