package skill

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// Load reads a skill record from its directory. Both skill.yaml and
// SKILL.md must exist; skill.yaml is the canonical metadata source.
func Load(dir string) (*Skill, error) {
	metadata, err := LoadMetadata(filepath.Join(dir, MetadataFileName))
	if err != nil {
		return nil, err
	}

	docPath := filepath.Join(dir, DocumentFileName)
	content, err := os.ReadFile(docPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", docPath)
	}

	s := &Skill{
		Metadata: *metadata,
		Dir:      dir,
		Content:  StripFrontmatter(string(content)),
	}

	if fm := ParseFrontmatter(content); fm != nil {
		s.Frontmatter = fm
	}

	return s, nil
}

// LoadMetadata reads and decodes a skill.yaml file
func LoadMetadata(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	var metadata Metadata
	if err := yaml.Unmarshal(data, &metadata); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}

	return &metadata, nil
}

// ParseFrontmatter extracts the optional YAML frontmatter from a SKILL.md file.
// Returns nil when the document has no frontmatter.
func ParseFrontmatter(source []byte) *Frontmatter {
	md := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
	)

	pctx := parser.NewContext()
	md.Parser().Parse(text.NewReader(source), parser.WithContext(pctx))

	metaData := meta.Get(pctx)
	if metaData == nil {
		return nil
	}

	name, _ := metaData["name"].(string)
	description, _ := metaData["description"].(string)

	return &Frontmatter{
		Name:        name,
		Description: description,
	}
}

// StripFrontmatter removes YAML frontmatter and returns the body
func StripFrontmatter(content string) string {
	if !strings.HasPrefix(content, "---") {
		return content
	}

	lines := strings.Split(content, "\n")
	frontmatterEnd := -1

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			frontmatterEnd = i
			break
		}
	}

	if frontmatterEnd == -1 {
		return content
	}

	return strings.TrimLeft(strings.Join(lines[frontmatterEnd+1:], "\n"), "\n")
}
