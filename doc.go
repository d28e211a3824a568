// Package designresolver resolves a user-supplied identifier, a library
// name or a URL, into a structured catalog of an external UI design
// system's components.
//
// Four discovery strategies are tried in strict priority order with a
// short-circuit on the first non-empty result:
//
//  1. A curated table of well-known design systems, matched by URL pattern
//     with no network access.
//  2. The Figma REST API, for figma.com file URLs (requires an API token;
//     Figma URLs never fall through to HTML scraping).
//  3. The GitHub REST API, deriving components from a repository's
//     recursive file tree.
//  4. Best-effort HTML heuristics over the fetched page.
//
// The CLI lives in cmd/design-resolver; this root package exposes the same
// pipeline as a Go API.
//
// # Quick start
//
//	resolver := designresolver.New(designresolver.Options{
//	    FigmaToken: os.Getenv("FIGMA_TOKEN"),
//	})
//	lib, err := resolver.Resolve("https://github.com/shadcn-ui/ui")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, c := range lib.Components {
//	    fmt.Println(c.Category, c.Name)
//	}
//
// # Progress events
//
// Pass an [Options.OnStatus] callback to observe resolution progress. The
// callback fires before each strategy attempt and once at final resolution,
// with a tri-state [Status] of resolving, resolved, or error.
//
// # Failure model
//
// Strategies never raise errors across the package boundary. Each either
// yields a catalog or silently passes control to the next strategy; the two
// terminal conditions are [ErrNoComponents] (every applicable strategy
// failed) and [ErrFigmaToken] (a Figma URL with no configured token).
package designresolver
