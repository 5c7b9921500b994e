// ABOUTME: Knowledge corpus loading from a well-known file path
// ABOUTME: Read fresh on every request; a missing file means an empty corpus
package retrieval

import (
	"errors"
	"io/fs"
	"os"
)

// FileCorpus loads the knowledge file at Path on every call. The corpus
// is small enough that re-reading beats maintaining a cache.
type FileCorpus struct {
	Path string
}

// Load returns the file contents. A missing file is an empty corpus, not
// an error, so a freshly deployed site degrades to the canned answer.
func (f FileCorpus) Load() (string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}
