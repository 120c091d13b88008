// Package artifact resolves handoff files deposited by the external tools the
// pipeline wraps. The only signal that an interactive tool finished its job is
// a new file on disk, so "the file the operator just produced" is defined as
// the most recently modified match in the watched directory.
package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Resolved is the outcome of a successful resolution.
type Resolved struct {
	Path    string    // absolute or config-relative path to the winning file
	ModTime time.Time // its modification timestamp at resolution time
}

// Reason distinguishes why a resolution came up empty. The sequencer treats
// all three the same, but the operator needs to know which upstream step to
// fix.
type Reason int

const (
	// ReasonMissingDir means the watched directory does not exist.
	ReasonMissingDir Reason = iota
	// ReasonEmptyDir means the directory exists but holds no entries at all.
	ReasonEmptyDir
	// ReasonNoMatch means the directory has entries, but none match the
	// extension filter (or all matches are empty files).
	ReasonNoMatch
)

func (r Reason) String() string {
	switch r {
	case ReasonMissingDir:
		return "directory does not exist"
	case ReasonEmptyDir:
		return "directory is empty"
	case ReasonNoMatch:
		return "no file matches the extension filter"
	default:
		return "unknown"
	}
}

// NotFoundError reports that no usable artifact exists where one was
// required. This is the dominant failure mode of the whole pipeline.
type NotFoundError struct {
	Dir    string
	Exts   []string
	Reason Reason
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s artifact found in %s: %s",
		strings.Join(e.Exts, "/"), e.Dir, e.Reason)
}

// Resolver picks the artifact an external tool most recently produced.
// It is an interface so the sequencer can be tested against fake directory
// state instead of real filesystem timestamps.
type Resolver interface {
	// Resolve returns the newest regular, non-empty file in dir whose name
	// ends in one of exts, or a *NotFoundError.
	Resolve(dir string, exts []string) (*Resolved, error)
}

// DirResolver resolves against the real filesystem.
type DirResolver struct{}

// NewDirResolver creates a filesystem-backed Resolver.
func NewDirResolver() *DirResolver {
	return &DirResolver{}
}

// Resolve enumerates the direct entries of dir (subdirectories are not
// descended into) and selects the matching file with the greatest
// modification time. Ties go to the lexicographically greatest name, so
// repeated calls over unchanged contents always return the same file.
// Reads only; never modifies the directory.
func (r *DirResolver) Resolve(dir string, exts []string) (*Resolved, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Dir: dir, Exts: exts, Reason: ReasonMissingDir}
		}
		return nil, fmt.Errorf("reading artifact directory %s: %w", dir, err)
	}
	if len(entries) == 0 {
		return nil, &NotFoundError{Dir: dir, Exts: exts, Reason: ReasonEmptyDir}
	}

	// ReadDir returns sorted entries already; sort again so the tie-break
	// does not depend on that implementation detail.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	var best *Resolved
	for _, entry := range entries {
		if entry.IsDir() || !matchesExt(entry.Name(), exts) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// Entry vanished between listing and stat. External tools own
			// these directories, so just skip it.
			continue
		}
		if !info.Mode().IsRegular() || info.Size() == 0 {
			continue
		}
		// Not Before = newer or same mtime; iterating in ascending name
		// order this leaves the greatest name on a timestamp tie.
		if best == nil || !info.ModTime().Before(best.ModTime) {
			best = &Resolved{
				Path:    filepath.Join(dir, entry.Name()),
				ModTime: info.ModTime(),
			}
		}
	}

	if best == nil {
		return nil, &NotFoundError{Dir: dir, Exts: exts, Reason: ReasonNoMatch}
	}
	return best, nil
}

// matchesExt reports whether name carries one of the accepted suffixes.
// Comparison is case-insensitive since the save dialogs of the external
// tools are not consistent about it.
func matchesExt(name string, exts []string) bool {
	ext := filepath.Ext(name)
	for _, want := range exts {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}
