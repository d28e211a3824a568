// Package catalog defines the data model shared by every discovery strategy:
// resolved design libraries, their components, and the name normalization
// rules used to deduplicate components within and across strategies.
package catalog

import (
	"strings"

	"github.com/google/uuid"
)

// Source identifies which discovery strategy produced a Library.
type Source string

const (
	SourceCurated Source = "curated"
	SourceGitHub  Source = "github"
	SourceFigma   Source = "figma"
	SourceHTML    Source = "html-derived"
)

// Component is one named, categorized entry within a Library.
// ID is unique within the owning Library; Name, after normalization,
// is the deduplication key used by each discovery strategy.
type Component struct {
	ID          string `json:"id" yaml:"id,omitempty"`
	Name        string `json:"name" yaml:"name"`
	Category    string `json:"category" yaml:"category,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Library is the resolved catalog describing one external design system.
// Every Library is freshly constructed per resolution call; instances are
// never mutated after being returned.
type Library struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Source      Source      `json:"source"`
	SourceURL   string      `json:"sourceUrl"`
	Components  []Component `json:"components"`
	Active      bool        `json:"active"`
}

// NewID returns a fresh unique identifier for libraries and components.
func NewID() string {
	return uuid.NewString()
}

// NormalizeName case-folds a component name and collapses separator
// characters, so that "date-picker", "Date Picker" and "date_picker"
// all map to the same deduplication key.
func NormalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch r {
		case ' ', '-', '_', '.', '/':
			// separators are dropped entirely
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TitleCase converts a kebab-case, snake_case or lowercase identifier into
// a display name: "date-picker" -> "Date Picker", "alert_dialog" -> "Alert Dialog".
func TitleCase(s string) string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, f := range fields {
		if f == "" {
			continue
		}
		fields[i] = strings.ToUpper(f[:1]) + f[1:]
	}
	return strings.Join(fields, " ")
}
