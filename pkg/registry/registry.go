// Package registry holds the curated table of well-known design systems.
// Lookups are pattern matches against a static in-memory table: no I/O,
// deterministic, and safe under concurrent reads.
package registry

import (
	"strings"

	"github.com/hellenic-development/design-resolver/pkg/catalog"
)

// Entry is one curated design system: an ordered list of URL patterns and a
// pre-populated component catalog. Entries are immutable after process start.
type Entry struct {
	Patterns    []string            `yaml:"patterns"`
	Name        string              `yaml:"name"`
	Description string              `yaml:"description"`
	Source      catalog.Source      `yaml:"source"`
	SourceURL   string              `yaml:"sourceUrl"`
	Components  []catalog.Component `yaml:"components"`
}

// Registry is an ordered set of curated entries. The built-in table always
// comes first so operator-supplied entries can never shadow it.
type Registry struct {
	entries []Entry
}

// New returns a Registry containing the built-in curated table followed by
// any extra entries, in the order given.
func New(extra ...Entry) *Registry {
	entries := make([]Entry, 0, len(curated)+len(extra))
	entries = append(entries, curated...)
	entries = append(entries, extra...)
	return &Registry{entries: entries}
}

// Lookup matches a raw URL or library name against the curated table and
// materializes a fresh Library from the first matching entry. Matching is
// case-insensitive substring containment, table order then pattern order.
// Returns nil when nothing matches.
func (r *Registry) Lookup(rawURL string) *catalog.Library {
	needle := strings.ToLower(strings.TrimSpace(rawURL))
	if needle == "" {
		return nil
	}
	for i := range r.entries {
		for _, pattern := range r.entries[i].Patterns {
			if strings.Contains(needle, pattern) {
				return materialize(&r.entries[i])
			}
		}
	}
	return nil
}

// Names returns the display names of all curated entries in table order,
// for selection and autocomplete UIs.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i := range r.entries {
		names[i] = r.entries[i].Name
	}
	return names
}

// Build instantiates a fresh Library for a curated entry chosen by display
// name (exact match first, then case-folded). Returns nil for unknown names.
func (r *Registry) Build(name string) *catalog.Library {
	for i := range r.entries {
		if r.entries[i].Name == name {
			return materialize(&r.entries[i])
		}
	}
	folded := strings.ToLower(strings.TrimSpace(name))
	for i := range r.entries {
		if strings.ToLower(r.entries[i].Name) == folded {
			return materialize(&r.entries[i])
		}
	}
	return nil
}

// materialize builds a Library from a curated entry. Components are copied
// and assigned fresh IDs so callers can never mutate the table.
func materialize(e *Entry) *catalog.Library {
	components := make([]catalog.Component, len(e.Components))
	for i, c := range e.Components {
		c.ID = catalog.NewID()
		components[i] = c
	}
	return &catalog.Library{
		ID:          catalog.NewID(),
		Name:        e.Name,
		Description: e.Description,
		Source:      e.Source,
		SourceURL:   e.SourceURL,
		Components:  components,
		Active:      true,
	}
}
