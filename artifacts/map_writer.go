package artifacts

import (
	"errors"
	"io"
)

var ErrFileAlreadyExists = errors.New("file already exists")

// MapWriter is an in-memory ArtifactWriter used by tests that need to
// assert on written check results without touching the filesystem.
// Contents are materialized at write time so later reads of the source
// reader cannot change what was recorded.
type MapWriter struct {
	files map[string][]byte
}

// NewMapWriter returns an empty in-memory artifact writer.
func NewMapWriter() (*MapWriter, error) {
	return &MapWriter{
		files: map[string][]byte{},
	}, nil
}

// WriteFile records contents under filename. Unlike the filesystem
// writer, writing the same filename twice is refused rather than
// overwritten, so a test catches double writes.
func (w *MapWriter) WriteFile(filename string, contents io.Reader) (string, error) {
	if _, exists := w.files[filename]; exists {
		return "", ErrFileAlreadyExists
	}

	data, err := io.ReadAll(contents)
	if err != nil {
		return "", err
	}

	w.files[filename] = data
	return filename, nil
}

// Files exposes everything written so far, keyed by filename.
func (w *MapWriter) Files() map[string][]byte {
	return w.files
}
