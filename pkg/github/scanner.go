package github

import (
	"fmt"
	"path"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hellenic-development/design-resolver/pkg/catalog"
)

// componentExtensions are the source-file extensions recognized as defining
// one UI component.
var componentExtensions = map[string]bool{
	".tsx":    true,
	".jsx":    true,
	".vue":    true,
	".svelte": true,
}

// deniedFragments reject paths that are tests, stories, build output or
// vendored dependencies rather than canonical component sources.
var deniedFragments = []string{
	".test.", ".spec.", ".stories.", ".story.", ".d.ts",
	"__tests__/", "__mocks__/", "node_modules/",
	"dist/", "build/", "coverage/", "vendor/",
	"examples/", "example/", "demo/", "scripts/",
}

// deniedNames reject filenames that are plumbing rather than components.
var deniedNames = map[string]bool{
	"index": true, "utils": true, "helpers": true, "types": true,
	"constants": true, "config": true, "context": true, "provider": true,
}

// genericDirs never serve as a component category.
var genericDirs = map[string]bool{
	"src": true, "lib": true, "components": true, "component": true,
	"packages": true, "ui": true, "app": true, "pages": true,
}

// Scanner derives a component catalog from a repository's file tree.
type Scanner struct {
	client *Client
	logger zerolog.Logger
}

// NewScanner creates a Scanner backed by the given client.
func NewScanner(client *Client, logger zerolog.Logger) *Scanner {
	return &Scanner{client: client, logger: logger}
}

// Scan resolves a GitHub repository URL into a Library by fetching the
// recursive file tree and keeping recognized component source files.
// It returns nil (never an error) on any failure or when nothing
// recognizable survives filtering, so the caller can continue its waterfall.
func (s *Scanner) Scan(rawURL string) *catalog.Library {
	owner, repo, ok := ParseRepoURL(rawURL)
	if !ok {
		return nil
	}

	branch, err := s.client.DefaultBranch(owner, repo)
	if err != nil {
		s.logger.Warn().Err(err).Str("repo", owner+"/"+repo).Msg("github metadata request failed")
		return nil
	}

	tree, err := s.client.Tree(owner, repo, branch)
	if err != nil {
		s.logger.Warn().Err(err).Str("repo", owner+"/"+repo).Msg("github tree request failed")
		return nil
	}

	components := componentsFromTree(tree)
	if len(components) == 0 {
		s.logger.Debug().Str("repo", owner+"/"+repo).Msg("no component files in tree")
		return nil
	}

	return &catalog.Library{
		ID:          catalog.NewID(),
		Name:        repo,
		Description: fmt.Sprintf("Components discovered in github.com/%s/%s", owner, repo),
		Source:      catalog.SourceGitHub,
		SourceURL:   fmt.Sprintf("https://github.com/%s/%s", owner, repo),
		Components:  components,
		Active:      true,
	}
}

// componentsFromTree filters tree entries down to component source files and
// derives component records from the surviving paths. Duplicate names keep
// the entry with the shortest path: shallower files are more likely the
// canonical definition than a sub-part or variant.
func componentsFromTree(tree []TreeEntry) []catalog.Component {
	type candidate struct {
		component catalog.Component
		path      string
	}
	best := make(map[string]candidate)
	var order []string

	for _, entry := range tree {
		if entry.Type != "blob" || !keepPath(entry.Path) {
			continue
		}

		base := path.Base(entry.Path)
		name := catalog.TitleCase(strings.TrimSuffix(base, path.Ext(base)))
		key := catalog.NormalizeName(name)

		prev, seen := best[key]
		if seen && len(prev.path) <= len(entry.Path) {
			continue
		}
		if !seen {
			order = append(order, key)
		}
		best[key] = candidate{
			component: catalog.Component{
				ID:          catalog.NewID(),
				Name:        name,
				Category:    categoryFor(entry.Path, key),
				Description: entry.Path,
			},
			path: entry.Path,
		}
	}

	// Tree (first-seen) order is kept; only the Figma strategy sorts its
	// output.
	components := make([]catalog.Component, 0, len(order))
	for _, key := range order {
		components = append(components, best[key].component)
	}
	return components
}

// keepPath reports whether a tree path looks like a canonical component
// source file.
func keepPath(p string) bool {
	lower := strings.ToLower(p)
	if !componentExtensions[path.Ext(lower)] {
		return false
	}
	for _, fragment := range deniedFragments {
		if strings.Contains(lower, fragment) {
			return false
		}
	}
	base := strings.TrimSuffix(path.Base(lower), path.Ext(lower))
	return !deniedNames[base]
}

// categoryFor walks up from the file to the nearest parent directory whose
// name is meaningful as a category, skipping generic structure directories
// and a directory named after the component itself.
func categoryFor(p, componentKey string) string {
	dir := path.Dir(p)
	for dir != "." && dir != "/" {
		base := path.Base(dir)
		if !genericDirs[strings.ToLower(base)] && catalog.NormalizeName(base) != componentKey {
			return catalog.TitleCase(base)
		}
		dir = path.Dir(dir)
	}
	return "Components"
}
