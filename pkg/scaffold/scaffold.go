// Package scaffold renders the file pair of a new skill from embedded
// templates, giving contributors a starting point that already follows
// the collection's conventions.
package scaffold

import (
	"bytes"
	"embed"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/pkg/errors"

	"github.com/getskill/skillshare/pkg/skill"
)

//go:embed templates/SKILL.md.tmpl templates/skill.yaml.tmpl
var templateFS embed.FS

// Params drives template rendering for a new skill
type Params struct {
	ID          string
	Name        string
	Description string
	Version     string
	Author      string
	Tags        []string
}

// NewParams returns Params with defaults derived from the id: the name
// is the title-cased id, and the version starts at 0.1.0
func NewParams(id string) Params {
	return Params{
		ID:          id,
		Name:        titleFromID(id),
		Description: "Describe what this skill helps an assistant do",
		Version:     "0.1.0",
	}
}

// Create renders SKILL.md and skill.yaml for a new skill under root.
// It refuses to touch an existing directory. Returns the skill dir.
func Create(root string, p Params) (string, error) {
	if p.ID == "" {
		return "", errors.New("skill id is required")
	}

	dir := filepath.Join(root, p.ID)
	if _, err := os.Stat(dir); err == nil {
		return "", errors.Errorf("directory %s already exists", dir)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "failed to create %s", dir)
	}

	files := map[string]string{
		skill.DocumentFileName: "templates/SKILL.md.tmpl",
		skill.MetadataFileName: "templates/skill.yaml.tmpl",
	}

	for name, tmplPath := range files {
		content, err := render(tmplPath, p)
		if err != nil {
			return "", err
		}
		if err := os.WriteFile(filepath.Join(dir, name), content, 0o644); err != nil {
			return "", errors.Wrapf(err, "failed to write %s", name)
		}
	}

	return dir, nil
}

// render executes a single embedded template
func render(tmplPath string, p Params) ([]byte, error) {
	tmpl, err := template.ParseFS(templateFS, tmplPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse template %s", tmplPath)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, p); err != nil {
		return nil, errors.Wrapf(err, "failed to render template %s", tmplPath)
	}

	return buf.Bytes(), nil
}

// titleFromID turns "commit-messages" into "Commit Messages"
func titleFromID(id string) string {
	words := strings.Split(id, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
