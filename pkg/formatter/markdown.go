// Package formatter renders a resolved design-library catalog as a markdown
// document, ready to drop into project documentation.
package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hellenic-development/design-resolver/pkg/catalog"
)

// ToMarkdown renders a Library as a markdown catalog: a header with
// provenance, then one table per category in alphabetical order.
func ToMarkdown(lib *catalog.Library) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", lib.Name))
	if lib.Description != "" {
		sb.WriteString(lib.Description + "\n\n")
	}
	sb.WriteString(fmt.Sprintf("- **Source**: %s\n", lib.Source))
	if lib.SourceURL != "" {
		sb.WriteString(fmt.Sprintf("- **URL**: %s\n", lib.SourceURL))
	}
	sb.WriteString(fmt.Sprintf("- **Components**: %d\n\n", len(lib.Components)))

	byCategory := make(map[string][]catalog.Component)
	for _, c := range lib.Components {
		category := c.Category
		if category == "" {
			category = "Components"
		}
		byCategory[category] = append(byCategory[category], c)
	}

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		sb.WriteString(fmt.Sprintf("## %s\n\n", category))
		sb.WriteString("| Component | Description |\n")
		sb.WriteString("|-----------|-------------|\n")

		components := byCategory[category]
		sort.Slice(components, func(i, j int) bool {
			return components[i].Name < components[j].Name
		})
		for _, c := range components {
			description := c.Description
			if description == "" {
				description = "-"
			}
			sb.WriteString(fmt.Sprintf("| %s | %s |\n", c.Name, sanitizeCell(description)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// sanitizeCell keeps multi-line or pipe-bearing descriptions from breaking
// the table layout.
func sanitizeCell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.TrimSpace(s)
}
