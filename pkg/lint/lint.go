// Package lint validates a skill collection against the conventions the
// collection's contributing guide states but nothing otherwise enforces:
// every skill directory pairs a SKILL.md with a skill.yaml, ids are
// unique and match their directory, required metadata fields are
// present, and documents carry the conventional sections.
//
// Violations of hard conventions (missing files, missing required
// fields, duplicate ids) are error findings; everything stated as
// convention rather than contract surfaces as a warning.
package lint

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/getskill/skillshare/pkg/logger"
)

// Severity classifies a finding
type Severity string

const (
	// SeverityError marks violations of hard conventions
	SeverityError Severity = "error"
	// SeverityWarning marks violations of soft conventions
	SeverityWarning Severity = "warning"
)

// Finding is a single lint result
type Finding struct {
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	SkillID  string   `json:"skillId,omitempty"`
	Path     string   `json:"path"`
	Message  string   `json:"message"`
}

// Result aggregates the findings of a lint run
type Result struct {
	Findings []Finding `json:"findings"`
	Checked  int       `json:"checked"`
}

// ErrorCount returns the number of error-severity findings
func (r *Result) ErrorCount() int {
	count := 0
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			count++
		}
	}
	return count
}

// WarningCount returns the number of warning-severity findings
func (r *Result) WarningCount() int {
	return len(r.Findings) - r.ErrorCount()
}

// HasErrors reports whether any error-severity finding exists
func (r *Result) HasErrors() bool {
	return r.ErrorCount() > 0
}

// sortFindings orders findings by path, then rule, for stable output
func (r *Result) sortFindings() {
	sort.Slice(r.Findings, func(i, j int) bool {
		if r.Findings[i].Path != r.Findings[j].Path {
			return r.Findings[i].Path < r.Findings[j].Path
		}
		return r.Findings[i].Rule < r.Findings[j].Rule
	})
}

// Linter validates the skill directories under a collection root
type Linter struct {
	root        string
	ignore      []string
	allowedTags []string
}

// Option is a function that configures a Linter
type Option func(*Linter)

// WithIgnorePatterns sets doublestar glob patterns for directory names
// to exclude from linting
func WithIgnorePatterns(patterns ...string) Option {
	return func(l *Linter) {
		l.ignore = patterns
	}
}

// WithAllowedTags restricts the tag vocabulary; tags outside the list
// produce warnings. An empty list allows any tag.
func WithAllowedTags(tags ...string) Option {
	return func(l *Linter) {
		l.allowedTags = tags
	}
}

// New creates a Linter for the given collection root
func New(root string, opts ...Option) *Linter {
	l := &Linter{root: root}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run lints every skill directory under the root. Findings are data;
// the returned error covers hard I/O failures only.
func (l *Linter) Run(ctx context.Context) (*Result, error) {
	entries, err := os.ReadDir(l.root)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read collection root %s", l.root)
	}

	result := &Result{}
	coll := newCollectionState()
	var merr *multierror.Error

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if l.isIgnored(entry.Name()) {
			logger.G(ctx).WithField("dir", entry.Name()).Debug("Skipping ignored directory")
			continue
		}

		dir := filepath.Join(l.root, entry.Name())
		if err := l.lintSkillDir(ctx, dir, entry.Name(), result, coll); err != nil {
			merr = multierror.Append(merr, err)
		}
		result.Checked++
	}

	coll.finish(result)
	result.sortFindings()

	return result, merr.ErrorOrNil()
}

// isIgnored matches a directory name against the configured ignore globs
func (l *Linter) isIgnored(name string) bool {
	for _, pattern := range l.ignore {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}
