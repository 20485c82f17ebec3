package discovery

import (
	"strings"

	"github.com/getskill/skillshare/pkg/skill"
)

// matchesQuery reports whether a skill's id, name, description, or tags
// contain the query, compared case-insensitively
func matchesQuery(s *skill.Skill, query string) bool {
	if query == "" {
		return true
	}

	query = strings.ToLower(query)

	if strings.Contains(strings.ToLower(s.ID), query) {
		return true
	}
	if strings.Contains(strings.ToLower(s.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(s.Description), query) {
		return true
	}
	for _, tag := range s.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}

	return false
}

// hasAllTags reports whether a skill carries every tag in the filter
func hasAllTags(s *skill.Skill, tags []string) bool {
	for _, tag := range tags {
		if !s.HasTag(tag) {
			return false
		}
	}
	return true
}
