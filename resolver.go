package designresolver

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hellenic-development/design-resolver/pkg/catalog"
	"github.com/hellenic-development/design-resolver/pkg/figma"
	"github.com/hellenic-development/design-resolver/pkg/github"
	"github.com/hellenic-development/design-resolver/pkg/htmlscan"
	"github.com/hellenic-development/design-resolver/pkg/registry"
)

var (
	// ErrNoComponents is returned when every applicable strategy failed to
	// produce a non-empty catalog.
	ErrNoComponents = errors.New("no components found at this URL")

	// ErrFigmaToken is returned for Figma URLs when no API token is
	// configured. It is terminal: scraping Figma's rendered application
	// shell yields no usable component data, so there is no fallback.
	ErrFigmaToken = errors.New("figma API token not configured: set a token to resolve Figma files")
)

// Options configures a Resolver.
type Options struct {
	FigmaToken  string // empty disables the Figma strategy
	GithubToken string // optional, raises rate limits

	// HTTPClient is shared by all network strategies. Nil gets each
	// strategy its own default client.
	HTTPClient *http.Client

	// OnStatus receives progress events. Nil means silent operation.
	OnStatus StatusFunc

	// ExtraEntries extends the curated registry after the built-in table.
	ExtraEntries []registry.Entry

	Logger zerolog.Logger
}

// Resolver turns a user-supplied identifier (a library name, a generic page
// URL, a GitHub repository URL, or a Figma file URL) into a component
// catalog. Strategies run sequentially in fixed priority order and every
// resolution call owns its own state, so a single Resolver is safe for
// concurrent use.
type Resolver struct {
	registry *registry.Registry
	github   *github.Scanner
	figma    *figma.Scanner // nil when no token is configured
	html     *htmlscan.Scanner
	onStatus StatusFunc
	logger   zerolog.Logger
}

// New creates a Resolver from the given options.
func New(opts Options) *Resolver {
	r := &Resolver{
		registry: registry.New(opts.ExtraEntries...),
		github:   github.NewScanner(github.NewClient(opts.GithubToken, opts.HTTPClient), opts.Logger),
		html:     htmlscan.NewScanner(opts.HTTPClient, opts.Logger),
		onStatus: opts.OnStatus,
		logger:   opts.Logger,
	}
	if opts.FigmaToken != "" {
		r.figma = figma.NewScanner(figma.NewClient(opts.FigmaToken, opts.HTTPClient), opts.Logger)
	}
	return r
}

// strategy is one discovery mechanism in the waterfall. All strategies share
// a single shape, so adding one means appending to the chain.
type strategy struct {
	name string
	scan func(string) *catalog.Library
}

// Resolve runs the strategy waterfall for one identifier and returns the
// first non-empty catalog. The curated registry is always tried first with
// no network access. Figma URLs then go to the Figma strategy exclusively;
// its failure is terminal. GitHub URLs try the tree scanner and fall through
// to HTML heuristics, which are also the last resort for everything else.
// Exactly one attempt is made per strategy; there are no retries.
func (r *Resolver) Resolve(rawURL string) (*catalog.Library, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		r.emit(StatusError, ErrNoComponents.Error())
		return nil, ErrNoComponents
	}

	r.emit(StatusResolving, "Checking known design systems...")
	if lib := r.registry.Lookup(rawURL); lib != nil {
		r.resolved(lib)
		return lib, nil
	}

	if isFigmaURL(rawURL) {
		return r.resolveFigma(rawURL)
	}

	chain := []strategy{}
	if _, _, ok := github.ParseRepoURL(rawURL); ok {
		chain = append(chain, strategy{"Scanning GitHub repository...", r.github.Scan})
	}
	chain = append(chain, strategy{"Scanning page for components...", r.html.Scan})

	for _, st := range chain {
		r.emit(StatusResolving, st.name)
		if lib := r.attempt(st.scan, rawURL); lib != nil {
			r.resolved(lib)
			return lib, nil
		}
	}

	r.emit(StatusError, ErrNoComponents.Error())
	return nil, ErrNoComponents
}

// resolveFigma handles the Figma-only branch of the waterfall. Both a
// missing token and a failed scan are terminal: the HTML heuristics are
// never attempted for a Figma URL.
func (r *Resolver) resolveFigma(rawURL string) (*catalog.Library, error) {
	if r.figma == nil {
		r.emit(StatusError, ErrFigmaToken.Error())
		return nil, ErrFigmaToken
	}
	r.emit(StatusResolving, "Fetching Figma file...")
	if lib := r.attempt(r.figma.Scan, rawURL); lib != nil {
		r.resolved(lib)
		return lib, nil
	}
	r.emit(StatusError, ErrNoComponents.Error())
	return nil, ErrNoComponents
}

// attempt runs one strategy, containing any panic so that nothing escapes
// the resolver boundary as an exception.
func (r *Resolver) attempt(scan func(string) *catalog.Library, rawURL string) (lib *catalog.Library) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Warn().Interface("panic", rec).Str("url", rawURL).Msg("strategy panicked")
			lib = nil
		}
	}()
	return scan(rawURL)
}

func (r *Resolver) resolved(lib *catalog.Library) {
	r.emit(StatusResolved, fmt.Sprintf("Resolved %s (%d components)", lib.Name, len(lib.Components)))
}

func (r *Resolver) emit(status Status, message string) {
	if r.onStatus != nil {
		r.onStatus(status, message)
	}
}

// CuratedNames lists the display names of all curated design systems, for
// selection and autocomplete UIs.
func (r *Resolver) CuratedNames() []string {
	return r.registry.Names()
}

// CuratedLibrary builds a fresh Library from a curated entry chosen by name,
// for when a user explicitly picks a known library instead of supplying a
// URL. Returns nil for unknown names.
func (r *Resolver) CuratedLibrary(name string) *catalog.Library {
	return r.registry.Build(name)
}

func isFigmaURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return strings.Contains(strings.ToLower(rawURL), "figma.com/")
	}
	host := strings.ToLower(u.Hostname())
	return host == "figma.com" || strings.HasSuffix(host, ".figma.com")
}
