// Package store reads and atomically writes the skyset document file.
package store

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	skyerrors "github.com/dbmrq/skyset/internal/errors"
	"github.com/dbmrq/skyset/internal/skyset"
)

// DefaultFilename is the document name inside a skyset directory.
const DefaultFilename = "latest.yml"

// ReadOutcome is the result of reading the document file.
type ReadOutcome struct {
	// Doc is the parsed document, or defaults when the file is missing,
	// blank or unparsable.
	Doc *skyset.Skyset
	// Raw is the file content as read. It is empty for a missing or blank
	// file and kept verbatim for an unparsable one.
	Raw string
	// ParseErr is set when Raw was present but did not decode.
	ParseErr error
}

// Read reads and decodes the document at path. A missing file is not an
// error. Any other I/O failure is returned as a storage error.
func Read(path string) (ReadOutcome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ReadOutcome{Doc: skyset.Default()}, nil
		}
		return ReadOutcome{}, skyerrors.ReadFailed(path, err)
	}

	content := string(data)
	if strings.TrimSpace(content) == "" {
		return ReadOutcome{Doc: skyset.Default()}, nil
	}

	doc, err := skyset.Parse(data)
	if err != nil {
		return ReadOutcome{
			Doc:      skyset.Default(),
			Raw:      content,
			ParseErr: skyerrors.DecodeFailed(path, err),
		}, nil
	}

	return ReadOutcome{Doc: doc, Raw: content}, nil
}

// Load is Read for startup: every failure falls back to defaults with empty
// raw content.
func Load(path string) ReadOutcome {
	outcome, err := Read(path)
	if err != nil {
		return ReadOutcome{Doc: skyset.Default()}
	}
	return outcome
}

// Write replaces the file at path with contents. Parent directories are
// created first; the data goes to a temporary sibling that is then renamed
// over path.
func Write(path string, contents []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return skyerrors.WriteFailed(path, err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(contents)); err != nil {
		return skyerrors.WriteFailed(path, err)
	}
	return nil
}
