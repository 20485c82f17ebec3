// Package discovery walks skill collection roots and loads the skill
// records found under them. A collection root contains one directory
// per skill, each pairing a SKILL.md with a skill.yaml sidecar.
package discovery

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"

	"github.com/getskill/skillshare/pkg/skill"
)

// Discovery handles skill discovery from configured collection roots
type Discovery struct {
	roots []string
}

// Option is a function that configures a Discovery
type Option func(*Discovery) error

// WithRoots sets custom collection roots
func WithRoots(roots ...string) Option {
	return func(d *Discovery) error {
		d.roots = roots
		return nil
	}
}

// WithDefaultRoots initializes with default collection roots
func WithDefaultRoots() Option {
	return func(d *Discovery) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return errors.Wrap(err, "failed to get user home directory")
		}
		d.roots = []string{
			"./skills",           // Collection checkout (highest precedence)
			".skillshare/skills", // Project-local installs
			filepath.Join(homeDir, ".skillshare", "skills"), // User-global installs
		}
		return nil
	}
}

// New creates a new skill discovery instance
func New(opts ...Option) (*Discovery, error) {
	d := &Discovery{}

	if len(opts) == 0 {
		if err := WithDefaultRoots()(d); err != nil {
			return nil, err
		}
	} else {
		for _, opt := range opts {
			if err := opt(d); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}

// Roots returns the configured collection roots
func (d *Discovery) Roots() []string {
	return d.roots
}

// Discover finds all skills under the configured roots, keyed by id.
// Earlier roots take precedence: a project-local skill shadows a
// user-global one with the same id.
func (d *Discovery) Discover() (map[string]*skill.Skill, error) {
	found := make(map[string]*skill.Skill)

	for _, root := range d.roots {
		d.discoverFromRoot(root, found)
	}

	return found, nil
}

// discoverFromRoot loads all loadable skill directories under a root.
// Unreadable roots and malformed skill directories are skipped; the
// layout convention is unenforced, so discovery is best-effort.
func (d *Discovery) discoverFromRoot(root string, found map[string]*skill.Skill) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return
	}

	for _, entry := range entries {
		entryPath := filepath.Join(root, entry.Name())

		info, err := os.Stat(entryPath)
		if err != nil || !info.IsDir() {
			continue
		}

		s, err := skill.Load(entryPath)
		if err != nil {
			continue
		}

		id := s.ID
		if id == "" {
			id = entry.Name()
			s.ID = id
		}

		if _, exists := found[id]; !exists {
			found[id] = s
		}
	}
}

// Get returns a specific skill by id
func (d *Discovery) Get(id string) (*skill.Skill, error) {
	all, err := d.Discover()
	if err != nil {
		return nil, err
	}

	s, exists := all[id]
	if !exists {
		return nil, errors.Errorf("skill '%s' not found", id)
	}

	return s, nil
}

// ListIDs returns the sorted ids of all discovered skills
func (d *Discovery) ListIDs() ([]string, error) {
	all, err := d.Discover()
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids, nil
}

// Search returns skills whose id, name, description, or tags contain the
// query, filtered to those carrying all of the given tags. An empty
// query matches everything.
func (d *Discovery) Search(query string, tags []string) ([]*skill.Skill, error) {
	all, err := d.Discover()
	if err != nil {
		return nil, err
	}

	var matched []*skill.Skill
	for _, s := range all {
		if !matchesQuery(s, query) {
			continue
		}
		if !hasAllTags(s, tags) {
			continue
		}
		matched = append(matched, s)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].ID < matched[j].ID
	})

	return matched, nil
}
