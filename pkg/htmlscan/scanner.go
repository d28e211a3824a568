// Package htmlscan discovers design-system components from an arbitrary web
// page. It is the lowest-confidence strategy: three independent text
// heuristics run over one fetched document and their results are merged.
package htmlscan

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/html"

	"github.com/hellenic-development/design-resolver/pkg/catalog"
)

// maxBodyBytes caps how much of a page is read. Component documentation
// pages fit comfortably; anything larger is unlikely to be one.
const maxBodyBytes = 4 << 20

// Scanner extracts component names from a fetched HTML document.
type Scanner struct {
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewScanner creates a Scanner. A nil httpClient gets a default with a
// short timeout, since heuristic scraping is not worth waiting long for.
func NewScanner(httpClient *http.Client, logger zerolog.Logger) *Scanner {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Scanner{httpClient: httpClient, logger: logger}
}

// page holds everything one traversal of the document collects; each
// heuristic then works off this local snapshot.
type page struct {
	title       string
	anchorHrefs []string
	headings    []string
	jsonLD      []string
}

// Scan fetches the page and runs three independent heuristics over it:
// component-path anchor links, headings matched against a fixed component
// vocabulary, and embedded structured-data item lists. Results are merged
// with deduplication by normalized name. Returns nil on fetch or parse
// failure, or when no heuristic finds anything.
func (s *Scanner) Scan(rawURL string) *catalog.Library {
	doc, err := s.fetch(rawURL)
	if err != nil {
		s.logger.Warn().Err(err).Str("url", rawURL).Msg("page fetch failed")
		return nil
	}

	var p page
	collect(doc, &p)

	seen := make(map[string]bool)
	var components []catalog.Component
	add := func(name, category string) {
		key := catalog.NormalizeName(name)
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		components = append(components, catalog.Component{
			ID:       catalog.NewID(),
			Name:     name,
			Category: category,
		})
	}

	for _, name := range navLinkComponents(p.anchorHrefs) {
		add(name, "Navigation Links")
	}
	for _, name := range headingComponents(p.headings) {
		add(name, "Headings")
	}
	for _, name := range structuredDataComponents(p.jsonLD) {
		add(name, "Structured Data")
	}

	if len(components) == 0 {
		s.logger.Debug().Str("url", rawURL).Msg("no components extracted from page")
		return nil
	}

	name := libraryName(p.title)
	if name == "" {
		name = rawURL
	}
	return &catalog.Library{
		ID:          catalog.NewID(),
		Name:        name,
		Description: "Components derived from " + rawURL,
		Source:      catalog.SourceHTML,
		SourceURL:   rawURL,
		Components:  components,
		Active:      true,
	}
}

func (s *Scanner) fetch(rawURL string) (*html.Node, error) {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "text/html")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("page fetch status %d", resp.StatusCode)
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}

// collect walks the parsed document once, snapshotting the title, anchor
// targets, h2-h4 text, and ld+json script bodies.
func collect(n *html.Node, p *page) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "title":
			if p.title == "" {
				p.title = strings.TrimSpace(textContent(n))
			}
		case "a":
			for _, attr := range n.Attr {
				if attr.Key == "href" {
					p.anchorHrefs = append(p.anchorHrefs, attr.Val)
				}
			}
		case "h2", "h3", "h4":
			p.headings = append(p.headings, strings.TrimSpace(textContent(n)))
		case "script":
			for _, attr := range n.Attr {
				if attr.Key == "type" && attr.Val == "application/ld+json" {
					p.jsonLD = append(p.jsonLD, textContent(n))
				}
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collect(c, p)
	}
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return sb.String()
}

var componentPathPattern = regexp.MustCompile(`/(?:components?|docs)/([a-z0-9][a-z0-9-]{1,39})(?:[/?#]|$)`)

// navLinkComponents scans anchor targets for a /component(s)/<slug> or
// /docs/<slug> path segment and title-cases the slug.
func navLinkComponents(hrefs []string) []string {
	var names []string
	for _, href := range hrefs {
		matches := componentPathPattern.FindStringSubmatch(strings.ToLower(href))
		if len(matches) < 2 {
			continue
		}
		names = append(names, catalog.TitleCase(matches[1]))
	}
	return names
}

// headingComponents keeps only headings whose normalized text exactly
// matches the fixed component vocabulary, filtering out arbitrary page
// headings.
func headingComponents(headings []string) []string {
	var names []string
	for _, h := range headings {
		if display, ok := componentVocabulary[catalog.NormalizeName(h)]; ok {
			names = append(names, display)
		}
	}
	return names
}

// itemList mirrors the schema.org ItemList shape, tolerating both direct
// names and nested item objects.
type itemList struct {
	Type     string     `json:"@type"`
	Elements []listItem `json:"itemListElement"`
}

type listItem struct {
	Name string `json:"name"`
	Item *struct {
		Name string `json:"name"`
	} `json:"item"`
}

// structuredDataComponents parses embedded ld+json blocks and pulls item
// names from any item list present. Malformed blocks are skipped.
func structuredDataComponents(blocks []string) []string {
	var names []string
	for _, block := range blocks {
		var lists []itemList
		if err := json.Unmarshal([]byte(block), &lists); err != nil {
			var single itemList
			if err := json.Unmarshal([]byte(block), &single); err != nil {
				continue
			}
			lists = []itemList{single}
		}
		for _, list := range lists {
			for _, el := range list.Elements {
				if el.Name != "" {
					names = append(names, el.Name)
				} else if el.Item != nil && el.Item.Name != "" {
					names = append(names, el.Item.Name)
				}
			}
		}
	}
	return names
}

var titleSeparators = []string{"|", "–", "—", "·", " - ", ":"}

// libraryName derives a display name from the page title: the text before
// the first separator character.
func libraryName(title string) string {
	cut := len(title)
	for _, sep := range titleSeparators {
		if idx := strings.Index(title, sep); idx >= 0 && idx < cut {
			cut = idx
		}
	}
	return strings.TrimSpace(title[:cut])
}
