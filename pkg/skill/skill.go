// Package skill defines the skill record model: a directory pairing a
// SKILL.md instruction document with a skill.yaml metadata sidecar.
// The sidecar is the canonical source of metadata; SKILL.md may carry
// YAML frontmatter, which is advisory only.
package skill

const (
	// DocumentFileName is the conventional filename for a skill's instructional content
	DocumentFileName = "SKILL.md"
	// MetadataFileName is the conventional filename for a skill's metadata record
	MetadataFileName = "skill.yaml"
)

// Metadata is the flat record stored in skill.yaml
type Metadata struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Version     string   `yaml:"version,omitempty" json:"version,omitempty"`
	Author      string   `yaml:"author,omitempty" json:"author,omitempty"`
	Tags        []string `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// Frontmatter holds the optional YAML frontmatter of a SKILL.md file
type Frontmatter struct {
	Name        string
	Description string
}

// Skill is a loaded skill record
type Skill struct {
	Metadata

	// Dir is the full path to the skill directory
	Dir string
	// Content is the SKILL.md body with frontmatter stripped
	Content string
	// Frontmatter is non-nil when SKILL.md carried frontmatter
	Frontmatter *Frontmatter
}

// HasTag reports whether the skill carries the given tag
func (s *Skill) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
