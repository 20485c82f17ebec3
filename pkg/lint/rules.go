package lint

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"

	"github.com/getskill/skillshare/pkg/skill"
)

var idFormat = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// collectionState accumulates cross-skill facts during a run: which
// directories claim which id, and where each tag appears.
type collectionState struct {
	idDirs  map[string][]string
	tagDirs map[string][]string
	skills  int
}

func newCollectionState() *collectionState {
	return &collectionState{
		idDirs:  make(map[string][]string),
		tagDirs: make(map[string][]string),
	}
}

// finish emits the collection-wide findings once every directory has
// been visited
func (c *collectionState) finish(result *Result) {
	ids := make([]string, 0, len(c.idDirs))
	for id := range c.idDirs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		dirs := c.idDirs[id]
		if len(dirs) < 2 {
			continue
		}
		for _, dir := range dirs {
			result.Findings = append(result.Findings, Finding{
				Rule:     "unique-id",
				Severity: SeverityError,
				SkillID:  id,
				Path:     dir,
				Message:  fmt.Sprintf("id '%s' is also used by %s", id, strings.Join(otherDirs(dirs, dir), ", ")),
			})
		}
	}

	// A tag appearing on a single skill suggests vocabulary drift, but
	// only once the collection is large enough for shared tags to exist
	if c.skills < 2 {
		return
	}

	tags := make([]string, 0, len(c.tagDirs))
	for tag := range c.tagDirs {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	for _, tag := range tags {
		dirs := c.tagDirs[tag]
		if len(dirs) != 1 {
			continue
		}
		result.Findings = append(result.Findings, Finding{
			Rule:     "tag-vocabulary",
			Severity: SeverityWarning,
			Path:     dirs[0],
			Message:  fmt.Sprintf("tag '%s' appears on only one skill", tag),
		})
	}
}

func otherDirs(dirs []string, self string) []string {
	others := make([]string, 0, len(dirs)-1)
	for _, d := range dirs {
		if d != self {
			others = append(others, d)
		}
	}
	return others
}

// lintSkillDir runs every per-directory rule. The returned error covers
// unexpected I/O failures; convention violations become findings.
func (l *Linter) lintSkillDir(ctx context.Context, dir, dirName string, result *Result, coll *collectionState) error {
	yamlPath := filepath.Join(dir, skill.MetadataFileName)
	docPath := filepath.Join(dir, skill.DocumentFileName)

	hasYAML := fileExists(yamlPath)
	hasDoc := fileExists(docPath)

	if !hasYAML {
		result.Findings = append(result.Findings, Finding{
			Rule:     "pair-exists",
			Severity: SeverityError,
			Path:     dir,
			Message:  fmt.Sprintf("missing %s", skill.MetadataFileName),
		})
	}
	if !hasDoc {
		result.Findings = append(result.Findings, Finding{
			Rule:     "pair-exists",
			Severity: SeverityError,
			Path:     dir,
			Message:  fmt.Sprintf("missing %s", skill.DocumentFileName),
		})
	}

	var metadata *skill.Metadata
	if hasYAML {
		var err error
		metadata, err = skill.LoadMetadata(yamlPath)
		if err != nil {
			result.Findings = append(result.Findings, Finding{
				Rule:     "metadata-parse",
				Severity: SeverityError,
				Path:     yamlPath,
				Message:  err.Error(),
			})
		} else {
			l.lintMetadata(metadata, dirName, yamlPath, result, coll)
		}
	}

	coll.skills++

	if hasDoc {
		source, err := os.ReadFile(docPath)
		if err != nil {
			return errors.Wrapf(err, "failed to read %s", docPath)
		}
		l.lintDocument(ctx, source, dir, docPath, metadata, result)
	}

	return nil
}

// lintMetadata checks the skill.yaml record and registers ids and tags
// with the collection state
func (l *Linter) lintMetadata(metadata *skill.Metadata, dirName, yamlPath string, result *Result, coll *collectionState) {
	for _, field := range []struct {
		name  string
		value string
	}{
		{"id", metadata.ID},
		{"name", metadata.Name},
		{"description", metadata.Description},
	} {
		if strings.TrimSpace(field.value) == "" {
			result.Findings = append(result.Findings, Finding{
				Rule:     "required-fields",
				Severity: SeverityError,
				SkillID:  metadata.ID,
				Path:     yamlPath,
				Message:  fmt.Sprintf("field '%s' must be a non-empty string", field.name),
			})
		}
	}

	if metadata.ID != "" {
		coll.idDirs[metadata.ID] = append(coll.idDirs[metadata.ID], filepath.Dir(yamlPath))

		if metadata.ID != dirName {
			result.Findings = append(result.Findings, Finding{
				Rule:     "id-matches-dir",
				Severity: SeverityWarning,
				SkillID:  metadata.ID,
				Path:     yamlPath,
				Message:  fmt.Sprintf("id '%s' does not match directory name '%s'", metadata.ID, dirName),
			})
		}

		if !idFormat.MatchString(metadata.ID) {
			result.Findings = append(result.Findings, Finding{
				Rule:     "id-format",
				Severity: SeverityWarning,
				SkillID:  metadata.ID,
				Path:     yamlPath,
				Message:  fmt.Sprintf("id '%s' is not lowercase kebab-case", metadata.ID),
			})
		}
	}

	switch {
	case metadata.Version == "":
		result.Findings = append(result.Findings, Finding{
			Rule:     "valid-version",
			Severity: SeverityWarning,
			SkillID:  metadata.ID,
			Path:     yamlPath,
			Message:  "version is empty",
		})
	default:
		if _, err := semver.NewVersion(metadata.Version); err != nil {
			result.Findings = append(result.Findings, Finding{
				Rule:     "valid-version",
				Severity: SeverityWarning,
				SkillID:  metadata.ID,
				Path:     yamlPath,
				Message:  fmt.Sprintf("version '%s' is not a semantic version", metadata.Version),
			})
		}
	}

	for _, tag := range metadata.Tags {
		coll.tagDirs[tag] = append(coll.tagDirs[tag], filepath.Dir(yamlPath))

		if len(l.allowedTags) > 0 && !contains(l.allowedTags, tag) {
			result.Findings = append(result.Findings, Finding{
				Rule:     "tag-vocabulary",
				Severity: SeverityWarning,
				SkillID:  metadata.ID,
				Path:     yamlPath,
				Message:  fmt.Sprintf("tag '%s' is not in the allowed tag list", tag),
			})
		}
	}
}

// lintDocument checks the SKILL.md structure: conventional sections,
// relative link targets, and frontmatter drift against the sidecar
func (l *Linter) lintDocument(_ context.Context, source []byte, dir, docPath string, metadata *skill.Metadata, result *Result) {
	doc := skill.ParseDocument(source)

	for _, section := range []string{"Trigger", "Success Criteria"} {
		if !doc.HasHeading(section) {
			result.Findings = append(result.Findings, Finding{
				Rule:     "required-sections",
				Severity: SeverityWarning,
				SkillID:  metadataID(metadata),
				Path:     docPath,
				Message:  fmt.Sprintf("missing '%s' heading", section),
			})
		}
	}

	for _, link := range doc.Links {
		dest := link.Destination
		if !isRelativeLink(dest) {
			continue
		}
		dest = stripFragment(dest)
		if dest == "" {
			continue
		}
		if !fileExists(filepath.Join(dir, filepath.FromSlash(dest))) {
			result.Findings = append(result.Findings, Finding{
				Rule:     "broken-links",
				Severity: SeverityWarning,
				SkillID:  metadataID(metadata),
				Path:     docPath,
				Message:  fmt.Sprintf("link target '%s' does not exist", link.Destination),
			})
		}
	}

	if metadata == nil {
		return
	}

	fm := skill.ParseFrontmatter(source)
	if fm == nil {
		return
	}

	if fm.Name != "" && fm.Name != metadata.Name {
		result.Findings = append(result.Findings, Finding{
			Rule:     "frontmatter-sync",
			Severity: SeverityWarning,
			SkillID:  metadata.ID,
			Path:     docPath,
			Message:  fmt.Sprintf("frontmatter name '%s' disagrees with skill.yaml name '%s'", fm.Name, metadata.Name),
		})
	}
	if fm.Description != "" && fm.Description != metadata.Description {
		result.Findings = append(result.Findings, Finding{
			Rule:     "frontmatter-sync",
			Severity: SeverityWarning,
			SkillID:  metadata.ID,
			Path:     docPath,
			Message:  "frontmatter description disagrees with skill.yaml description",
		})
	}
}

func metadataID(metadata *skill.Metadata) string {
	if metadata == nil {
		return ""
	}
	return metadata.ID
}

// isRelativeLink reports whether a link destination points into the
// collection rather than at an external resource or in-page anchor
func isRelativeLink(dest string) bool {
	if dest == "" || strings.HasPrefix(dest, "#") {
		return false
	}
	if strings.Contains(dest, "://") || strings.HasPrefix(dest, "mailto:") {
		return false
	}
	return true
}

// stripFragment drops an in-page anchor from a link destination
func stripFragment(dest string) string {
	if idx := strings.Index(dest, "#"); idx != -1 {
		return dest[:idx]
	}
	return dest
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
