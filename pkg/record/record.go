// Package record reads the install-file manifest written by the
// setup.py install step (one installed path per line). Its presence is
// the durable evidence that the bootstrap ran to completion.
package record

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/pipstrap/pkg/errors"
	"github.com/arthur-debert/pipstrap/pkg/logging"
)

var log = logging.GetLogger("record")

// DefaultName is the relative path setup.py writes the record to.
const DefaultName = "record.txt"

// Record is the list of files the install step placed on disk.
type Record struct {
	Path  string
	Files []string
}

// Read parses a record file. Blank lines are ignored.
func Read(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrRecordMissing, "no install record at %s", path)
		}
		return nil, errors.Wrapf(err, errors.ErrRecordRead, "failed to read install record %s", path)
	}

	rec := &Record{Path: path}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rec.Files = append(rec.Files, line)
		}
	}

	log.Debug().Str("path", path).Int("files", len(rec.Files)).Msg("Install record read")
	return rec, nil
}

// Len returns the number of recorded files.
func (r *Record) Len() int {
	return len(r.Files)
}

// Verify reads the record at its default location inside dir and
// requires it to be non-empty.
func Verify(dir string) (*Record, error) {
	rec, err := Read(filepath.Join(dir, DefaultName))
	if err != nil {
		return nil, err
	}
	if rec.Len() == 0 {
		return nil, errors.Newf(errors.ErrRecordEmpty, "install record %s lists no files", rec.Path)
	}
	return rec, nil
}
