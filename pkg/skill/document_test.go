package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument(t *testing.T) {
	source := []byte(`# Commit Messages

One-line summary.

## Trigger

When committing changes.

## Instructions

1. Read the diff with [this guide](./diff-guide.md).
2. See ![example](images/example.png).

## Success Criteria

- [ ] Subject under 50 characters
`)

	doc := ParseDocument(source)

	require.Len(t, doc.Headings, 4)
	assert.Equal(t, Heading{Level: 1, Text: "Commit Messages"}, doc.Headings[0])
	assert.Equal(t, Heading{Level: 2, Text: "Trigger"}, doc.Headings[1])
	assert.Equal(t, Heading{Level: 2, Text: "Instructions"}, doc.Headings[2])
	assert.Equal(t, Heading{Level: 2, Text: "Success Criteria"}, doc.Headings[3])

	require.Len(t, doc.Links, 2)
	assert.Equal(t, "./diff-guide.md", doc.Links[0].Destination)
	assert.Equal(t, "images/example.png", doc.Links[1].Destination)
}

func TestParseDocumentSkipsFrontmatter(t *testing.T) {
	source := []byte(`---
name: test
description: a test
---

# Title
`)

	doc := ParseDocument(source)
	require.Len(t, doc.Headings, 1)
	assert.Equal(t, "Title", doc.Headings[0].Text)
}

func TestHasHeading(t *testing.T) {
	doc := ParseDocument([]byte("## Trigger\n\n## Success Criteria\n"))

	assert.True(t, doc.HasHeading("Trigger"))
	assert.True(t, doc.HasHeading("success criteria"))
	assert.False(t, doc.HasHeading("Prerequisites"))
}

func TestHeadingWithInlineFormatting(t *testing.T) {
	doc := ParseDocument([]byte("## Common *Pitfalls*\n"))

	require.Len(t, doc.Headings, 1)
	assert.Equal(t, "Common Pitfalls", doc.Headings[0].Text)
}
