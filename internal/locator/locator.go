// Package locator finds candidate calibre library directories on the
// local filesystem. A directory is a library when it directly contains a
// readable metadata.db. Only a fixed set of roots and one level of their
// children is probed, so startup latency stays bounded regardless of
// filesystem size.
package locator

import (
	"iter"
	"os"
	"path/filepath"
	"runtime"
	"slices"
)

// MetadataFile is the database file every calibre library contains.
const MetadataFile = "metadata.db"

// Discover scans the default roots plus any extra paths and returns the
// valid library paths found, deduplicated by canonical path. Scanning the
// same filesystem state twice yields the same result. Discovery order is
// a scanning strategy only; presentation order is owned by the history
// store.
func Discover(extra ...string) []string {
	return slices.Collect(Candidates(append(defaultRoots(), extra...)))
}

// Candidates yields valid library paths found under the given roots,
// lazily and without duplicates. Each root is checked itself, then one
// level of its children. Unreadable or missing locations are skipped
// silently: absence of a library at a scanned location is expected.
func Candidates(roots []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]struct{})

		emit := func(path string) bool {
			canon := Canonical(path)
			if _, ok := seen[canon]; ok {
				return true
			}
			seen[canon] = struct{}{}
			return yield(canon)
		}

		for _, root := range roots {
			if root == "" {
				continue
			}
			if IsLibrary(root) {
				if !emit(root) {
					return
				}
			}

			entries, err := os.ReadDir(root)
			if err != nil {
				continue
			}
			for _, entry := range entries {
				if !entry.IsDir() {
					continue
				}
				child := filepath.Join(root, entry.Name())
				if !IsLibrary(child) {
					continue
				}
				if !emit(child) {
					return
				}
			}
		}
	}
}

// IsLibrary reports whether dir directly contains a readable metadata.db.
func IsLibrary(dir string) bool {
	db := filepath.Join(dir, MetadataFile)
	info, err := os.Stat(db)
	if err != nil || info.IsDir() {
		return false
	}
	f, err := os.Open(db)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// Canonical resolves path to its canonical absolute form, so the same
// library reached through different spellings (symlinks, relative paths)
// gets one identity. Falls back to the cleaned absolute path when
// resolution fails.
func Canonical(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

// defaultRoots returns the conventional scan roots for the current OS:
// the working directory, the home directory and its common book folders,
// then shared system locations.
func defaultRoots() []string {
	var roots []string

	if cwd, err := os.Getwd(); err == nil {
		roots = append(roots, cwd)
	}

	if home, err := os.UserHomeDir(); err == nil {
		roots = append(roots,
			home,
			filepath.Join(home, "Documents"),
			filepath.Join(home, "Calibre Libraries"),
			filepath.Join(home, "Books"),
			filepath.Join(home, "Library"),
		)
	}

	switch runtime.GOOS {
	case "linux":
		roots = append(roots, "/home", "/media", "/mnt")
	case "darwin":
		roots = append(roots, "/Users", "/Volumes")
	case "windows":
		for _, drive := range []string{"C:\\", "D:\\", "E:\\", "F:\\"} {
			if _, err := os.Stat(drive); err == nil {
				roots = append(roots, drive)
			}
		}
	}

	return roots
}
