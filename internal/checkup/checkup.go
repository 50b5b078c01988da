// Package checkup verifies that files a program depends on exist and are
// readable, and turns the findings into a renderable uerr block.
package checkup

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/mmrzaf/uerr"
)

// Problem is a file that matched a required pattern but could not be read.
type Problem struct {
	Path string // slash-separated, relative to the check root
	Err  error
}

// Report is the outcome of a Check run.
type Report struct {
	Required   []string  // patterns checked, in input order
	Matched    int       // files probed across all patterns
	Missing    []string  // patterns with no matching files
	Unreadable []Problem // matched files that failed the read probe
}

// OK reports whether every pattern matched and every match was readable.
func (r *Report) OK() bool {
	return len(r.Missing) == 0 && len(r.Unreadable) == 0
}

// Err converts a failed report into a UserError, one reason per finding in
// report order. It returns nil when the report is OK.
func (r *Report) Err() *uerr.UserError {
	if r.OK() {
		return nil
	}
	failed := len(r.Missing) + len(r.Unreadable)
	e := uerr.New(fmt.Sprintf("%d of %d required file check(s) failed", failed, len(r.Required)))
	for _, pat := range r.Missing {
		e.AddReasonf("no files match %q", pat)
	}
	for _, p := range r.Unreadable {
		e.AddReasonf("cannot read %s: %v", p.Path, p.Err)
	}
	return e
}

// OSCode returns the raw OS error code of the first unreadable file, if any.
func (r *Report) OSCode() (int, bool) {
	for _, p := range r.Unreadable {
		if code, ok := uerr.OSCode(p.Err); ok {
			return code, true
		}
	}
	return 0, false
}

// Checker expands required-file glob patterns under a root, skipping files
// excluded by gitignore rules or ignore globs.
type Checker struct {
	root    string
	ignore  []string
	matcher gitignore.Matcher
	logger  *slog.Logger
}

// New builds a checker for the given root. When useGitignore is set,
// .gitignore patterns under root are loaded and matching files are skipped.
func New(root string, useGitignore bool, ignoreGlobs []string, logger *slog.Logger) (*Checker, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("abs root: %w", err)
	}

	var matcher gitignore.Matcher
	if useGitignore {
		bfs := osfs.New(abs)
		pats, err := gitignore.ReadPatterns(bfs, nil)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read gitignore: %w", err)
		}
		matcher = gitignore.NewMatcher(pats)
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Checker{
		root:    abs,
		ignore:  ignoreGlobs,
		matcher: matcher,
		logger:  logger,
	}, nil
}

// Check expands each pattern and probes every surviving match for
// readability. A malformed pattern is the only error condition; missing and
// unreadable files are findings, reported through the Report.
func (c *Checker) Check(patterns []string) (*Report, error) {
	rep := &Report{Required: patterns}
	fsys := os.DirFS(c.root)

	for _, pat := range patterns {
		if !doublestar.ValidatePattern(pat) {
			return nil, fmt.Errorf("invalid pattern %q", pat)
		}
		matches, err := doublestar.Glob(fsys, pat)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pat, err)
		}

		found := 0
		for _, rel := range matches {
			st, err := os.Lstat(filepath.Join(c.root, filepath.FromSlash(rel)))
			if err != nil {
				rep.Unreadable = append(rep.Unreadable, Problem{Path: rel, Err: err})
				found++
				continue
			}
			// Symlinks can escape root and/or loop.
			if st.Mode()&os.ModeSymlink != 0 {
				c.logger.Debug("skipping symlink", "path", rel)
				continue
			}
			if st.IsDir() {
				continue
			}
			if c.skip(rel) {
				c.logger.Debug("skipping ignored file", "path", rel)
				continue
			}

			found++
			rep.Matched++
			if err := probe(filepath.Join(c.root, filepath.FromSlash(rel))); err != nil {
				rep.Unreadable = append(rep.Unreadable, Problem{Path: rel, Err: err})
				continue
			}
			c.logger.Debug("checked file", "path", rel)
		}

		if found == 0 {
			rep.Missing = append(rep.Missing, pat)
		}
	}
	return rep, nil
}

func (c *Checker) skip(rel string) bool {
	for _, pat := range c.ignore {
		if ok, err := doublestar.Match(pat, rel); err == nil && ok {
			return true
		}
	}
	if c.matcher != nil && c.matcher.Match(strings.Split(rel, "/"), false) {
		return true
	}
	return false
}

// probe opens the file for reading and reads one byte to surface permission
// and I/O errors without pulling whole files into memory.
func probe(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	buf := make([]byte, 1)
	if _, err := f.Read(buf); err != nil && err != io.EOF {
		return err
	}
	return nil
}
