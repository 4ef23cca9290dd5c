package duckdb

import (
	"os"
	"path/filepath"
	"time"
)

// FileFingerprint identifies a file version by its absolute path, size and
// modification time.
type FileFingerprint struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// StatFile fingerprints the file at path. The returned error is the one from
// os.Stat, so a missing file still matches fs.ErrNotExist.
func StatFile(path string) (FileFingerprint, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	info, err := os.Stat(abs)
	if err != nil {
		return FileFingerprint{}, err
	}
	return FileFingerprint{
		Path:    abs,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

// Matches reports whether two fingerprints describe the same file version.
// Times are compared at nanosecond resolution.
func (f FileFingerprint) Matches(other FileFingerprint) bool {
	return f.Path == other.Path &&
		f.Size == other.Size &&
		f.ModTime.UnixNano() == other.ModTime.UnixNano()
}
