// Package corpus loads a directory tree of Markdown guides for analysis.
package corpus

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is one loaded Markdown file. Content is the complete on-disk
// text so that line numbers reported downstream match the real file.
type Document struct {
	// Path is the slash-separated path relative to the corpus root
	Path    string
	Content string

	// Title comes from YAML frontmatter when present
	Title       string
	Frontmatter map[string]any
}

// parseFrontmatter extracts a leading YAML frontmatter block. The returned
// map is nil when the document has no frontmatter or it fails to parse;
// a bad frontmatter block never fails the load.
func parseFrontmatter(content string) map[string]any {
	if !strings.HasPrefix(content, "---\n") && !strings.HasPrefix(content, "---\r\n") {
		return nil
	}

	const delimiter = "---"

	start := len(delimiter)
	if len(content) > start && content[start] == '\r' {
		start++
	}
	if len(content) > start && content[start] == '\n' {
		start++
	}

	closeIdx := strings.Index(content[start:], "\n"+delimiter)
	if closeIdx == -1 {
		return nil
	}

	var meta map[string]any
	if err := yaml.Unmarshal([]byte(content[start:start+closeIdx]), &meta); err != nil {
		return nil
	}
	return meta
}

// applyFrontmatter fills the document metadata fields from its content
func (d *Document) applyFrontmatter() {
	d.Frontmatter = parseFrontmatter(d.Content)
	if d.Frontmatter == nil {
		return
	}
	if title, ok := d.Frontmatter["title"]; ok {
		d.Title = fmt.Sprintf("%v", title)
	}
}
