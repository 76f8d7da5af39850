package tui

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

const pathCompletionMaxResults = 200

var pathCompletionSkipDirs = map[string]struct{}{
	".git":         {},
	".reviewer":    {},
	"node_modules": {},
	"vendor":       {},
}

var errPathCompletionLimit = errors.New("path completion limit reached")

// PathCompletion tracks the candidate list shown under the file input.
type PathCompletion struct {
	Open     bool
	Matches  []string
	Selected int
}

func (c *PathCompletion) Close() {
	*c = PathCompletion{Selected: -1}
}

func (c *PathCompletion) SetMatches(matches []string) {
	c.Matches = matches
	c.Open = len(matches) > 0
	c.Selected = -1
	if c.Open {
		c.Selected = 0
	}
}

func (c *PathCompletion) MoveSelection(delta int) {
	if len(c.Matches) == 0 {
		c.Selected = -1
		return
	}
	c.Selected = (c.Selected + delta + len(c.Matches)) % len(c.Matches)
}

func (c PathCompletion) SelectedMatch() (string, bool) {
	if !c.Open || c.Selected < 0 || c.Selected >= len(c.Matches) {
		return "", false
	}
	return c.Matches[c.Selected], true
}

// completePath lists files under root whose slash-separated relative path
// starts with query.
func completePath(root string, query string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = pathCompletionMaxResults
	}
	prefix := normalizePath(query)
	matches := make([]string, 0, min(limit, 64))

	walkErr := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = normalizePath(rel)
		if entry.IsDir() {
			if _, skip := pathCompletionSkipDirs[entry.Name()]; skip && path != root {
				return filepath.SkipDir
			}
			// Skip directories that cannot contain a match.
			if rel != "." && prefix != "" && !strings.HasPrefix(rel+"/", prefix) && !strings.HasPrefix(prefix, rel+"/") {
				return filepath.SkipDir
			}
			return nil
		}
		if prefix != "" && !strings.HasPrefix(rel, prefix) {
			return nil
		}
		matches = append(matches, rel)
		if len(matches) >= limit {
			return errPathCompletionLimit
		}
		return nil
	})
	if walkErr != nil && !errors.Is(walkErr, errPathCompletionLimit) {
		return nil, walkErr
	}

	sort.Strings(matches)
	return matches, nil
}

// commonPrefix returns the longest shared leading string of values, cut on
// a rune boundary.
func commonPrefix(values []string) string {
	if len(values) == 0 {
		return ""
	}
	prefix := values[0]
	for _, v := range values[1:] {
		for !strings.HasPrefix(v, prefix) {
			_, size := utf8.DecodeLastRuneInString(prefix)
			prefix = prefix[:len(prefix)-size]
			if prefix == "" {
				return ""
			}
		}
	}
	return prefix
}

func normalizePath(value string) string {
	return strings.ReplaceAll(filepath.ToSlash(value), "\\", "/")
}
