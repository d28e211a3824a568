package figma

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hellenic-development/design-resolver/pkg/catalog"
)

// Scanner derives a component catalog from a Figma file.
type Scanner struct {
	client *Client
	logger zerolog.Logger
}

// NewScanner creates a Scanner backed by the given client.
func NewScanner(client *Client, logger zerolog.Logger) *Scanner {
	return &Scanner{client: client, logger: logger}
}

// Scan resolves a Figma file URL into a Library. Components are extracted
// from three regions of the file payload, in order: the published components
// map, the published component-sets map, and, only when both maps are
// empty, a depth-first walk of the document tree collecting COMPONENT and
// COMPONENT_SET nodes. Names are deduplicated case-insensitively across all
// regions (first occurrence wins) and the result is sorted alphabetically,
// since Figma's natural node order means nothing to someone scanning a
// catalog. Returns nil on any failure or when nothing is found.
func (s *Scanner) Scan(rawURL string) *catalog.Library {
	fileKey, err := ExtractFileKey(rawURL)
	if err != nil {
		return nil
	}

	file, err := s.client.GetFile(fileKey)
	if err != nil {
		s.logger.Warn().Err(err).Str("fileKey", fileKey).Msg("figma file request failed")
		return nil
	}

	seen := make(map[string]bool)
	var components []catalog.Component

	add := func(name, description string) {
		name = strings.TrimSpace(name)
		// Case-fold only, not the shared normalized key: separator
		// stripping would collapse distinct slash-named variants like
		// "Button/Primary" and "Button Primary".
		key := strings.ToLower(name)
		if name == "" || seen[key] {
			return
		}
		seen[key] = true
		components = append(components, componentFromName(name, description))
	}

	for _, id := range sortedKeys(file.Components) {
		c := file.Components[id]
		add(c.Name, c.Description)
	}
	for _, id := range sortedKeys(file.ComponentSets) {
		c := file.ComponentSets[id]
		add(c.Name, c.Description)
	}

	if len(components) == 0 {
		walk(&file.Document, func(n *Node) {
			if n.Type == "COMPONENT" || n.Type == "COMPONENT_SET" {
				add(n.Name, "")
			}
		})
	}

	if len(components) == 0 {
		s.logger.Debug().Str("fileKey", fileKey).Msg("figma file contains no components")
		return nil
	}

	sort.Slice(components, func(i, j int) bool {
		return components[i].Name < components[j].Name
	})

	return &catalog.Library{
		ID:          catalog.NewID(),
		Name:        file.Name,
		Description: "Components extracted from the Figma file " + file.Name,
		Source:      catalog.SourceFigma,
		SourceURL:   rawURL,
		Components:  components,
		Active:      true,
	}
}

// componentFromName builds a component record from a Figma node name.
// Figma convention nests variants with slashes ("Button/Primary"); the
// leading segment becomes the category. The full name is kept so that
// variants of different components stay distinct under deduplication.
func componentFromName(name, description string) catalog.Component {
	category := "Components"
	if idx := strings.Index(name, "/"); idx > 0 {
		category = strings.TrimSpace(name[:idx])
	}
	return catalog.Component{
		ID:          catalog.NewID(),
		Name:        name,
		Category:    category,
		Description: description,
	}
}

// walk visits nodes depth first.
func walk(n *Node, visit func(*Node)) {
	visit(n)
	for i := range n.Children {
		walk(&n.Children[i], visit)
	}
}

// sortedKeys gives map iteration a stable order so first-occurrence
// deduplication is deterministic across runs.
func sortedKeys(m map[string]Component) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
