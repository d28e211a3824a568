package github

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hellenic-development/design-resolver/pkg/catalog"
)

func TestParseRepoURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantOwner string
		wantRepo  string
		wantOK    bool
	}{
		{
			name:      "plain repository URL",
			url:       "https://github.com/shadcn-ui/ui",
			wantOwner: "shadcn-ui",
			wantRepo:  "ui",
			wantOK:    true,
		},
		{
			name:      "URL with trailing path",
			url:       "https://github.com/mui/material-ui/tree/master/packages",
			wantOwner: "mui",
			wantRepo:  "material-ui",
			wantOK:    true,
		},
		{
			name:      "URL with .git suffix",
			url:       "https://github.com/acme/widgets.git",
			wantOwner: "acme",
			wantRepo:  "widgets",
			wantOK:    true,
		},
		{
			name:      "URL with query string",
			url:       "https://github.com/acme/widgets?tab=readme",
			wantOwner: "acme",
			wantRepo:  "widgets",
			wantOK:    true,
		},
		{
			name:   "owner only",
			url:    "https://github.com/acme",
			wantOK: false,
		},
		{
			name:   "not github",
			url:    "https://gitlab.com/acme/widgets",
			wantOK: false,
		},
		{
			name:   "not a URL",
			url:    "shadcn",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, ok := ParseRepoURL(tt.url)
			if ok != tt.wantOK {
				t.Fatalf("ParseRepoURL(%q) ok = %v, want %v", tt.url, ok, tt.wantOK)
			}
			if owner != tt.wantOwner || repo != tt.wantRepo {
				t.Errorf("ParseRepoURL(%q) = %q/%q, want %q/%q", tt.url, owner, repo, tt.wantOwner, tt.wantRepo)
			}
		})
	}
}

func TestComponentsFromTree(t *testing.T) {
	tree := []TreeEntry{
		{Path: "components/Button.tsx", Type: "blob"},
		{Path: "components/button/Button.test.tsx", Type: "blob"},
		{Path: "utils/helpers.ts", Type: "blob"},
	}

	components := componentsFromTree(tree)
	if len(components) != 1 {
		t.Fatalf("componentsFromTree() returned %d components, want 1: %+v", len(components), components)
	}
	if components[0].Name != "Button" {
		t.Errorf("component name = %q, want Button", components[0].Name)
	}
	if components[0].Description != "components/Button.tsx" {
		t.Errorf("component derived from %q, want the non-test file", components[0].Description)
	}
}

func TestComponentsFromTreePreservesTreeOrder(t *testing.T) {
	// Only the Figma strategy sorts its output; tree results keep the
	// repository's first-seen order.
	tree := []TreeEntry{
		{Path: "components/Zebra.tsx", Type: "blob"},
		{Path: "components/Alpha.tsx", Type: "blob"},
		{Path: "components/Modal.tsx", Type: "blob"},
	}

	components := componentsFromTree(tree)
	want := []string{"Zebra", "Alpha", "Modal"}
	if len(components) != len(want) {
		t.Fatalf("componentsFromTree() returned %d components, want %d", len(components), len(want))
	}
	for i, name := range want {
		if components[i].Name != name {
			t.Errorf("component %d = %q, want %q (tree order)", i, components[i].Name, name)
		}
	}
}

func TestComponentsFromTreeKeepsShallowestDuplicate(t *testing.T) {
	tree := []TreeEntry{
		{Path: "a/b/Button.tsx", Type: "blob"},
		{Path: "a/Button.tsx", Type: "blob"},
	}

	components := componentsFromTree(tree)
	if len(components) != 1 {
		t.Fatalf("componentsFromTree() returned %d components, want 1", len(components))
	}
	if components[0].Description != "a/Button.tsx" {
		t.Errorf("kept %q, want the shallower a/Button.tsx", components[0].Description)
	}
}

func TestComponentsFromTreeFiltering(t *testing.T) {
	tests := []struct {
		name string
		path string
		keep bool
	}{
		{"component file", "src/components/Dialog.tsx", true},
		{"vue component", "src/DatePicker.vue", true},
		{"svelte component", "lib/Modal.svelte", true},
		{"jsx component", "src/Carousel.jsx", true},
		{"story file", "src/Button.stories.tsx", false},
		{"spec file", "src/Button.spec.tsx", false},
		{"dunder tests dir", "src/__tests__/Button.tsx", false},
		{"type declarations", "src/types.d.ts", false},
		{"plain typescript", "src/useButton.ts", false},
		{"node modules", "node_modules/react/Button.tsx", false},
		{"build output", "dist/Button.tsx", false},
		{"examples dir", "examples/Button.tsx", false},
		{"index file", "src/components/index.tsx", false},
		{"utils file", "src/components/utils.tsx", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keepPath(tt.path); got != tt.keep {
				t.Errorf("keepPath(%q) = %v, want %v", tt.path, got, tt.keep)
			}
		})
	}
}

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		path string
		key  string
		want string
	}{
		{"src/components/forms/Input.tsx", "input", "Forms"},
		{"src/components/Button.tsx", "button", "Components"},
		{"packages/overlay/src/Dialog.tsx", "dialog", "Overlay"},
		{"components/button/Button.tsx", "button", "Components"},
		{"Button.tsx", "button", "Components"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := categoryFor(tt.path, tt.key); got != tt.want {
				t.Errorf("categoryFor(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func newTestScanner(t *testing.T, handler http.Handler) *Scanner {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient("", server.Client())
	client.BaseURL = server.URL
	return NewScanner(client, zerolog.Nop())
}

func TestScan(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/widgets", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"default_branch": "main"}`))
	})
	mux.HandleFunc("/repos/acme/widgets/git/trees/main", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("recursive") != "1" {
			t.Error("tree request missing recursive=1")
		}
		w.Write([]byte(`{"tree": [
			{"path": "src/components/Button.tsx", "type": "blob"},
			{"path": "src/components/forms/date-picker.tsx", "type": "blob"},
			{"path": "src/components", "type": "tree"},
			{"path": "src/components/Button.test.tsx", "type": "blob"}
		]}`))
	})

	scanner := newTestScanner(t, mux)
	lib := scanner.Scan("https://github.com/acme/widgets")
	if lib == nil {
		t.Fatal("Scan() = nil, want a library")
	}
	if lib.Source != catalog.SourceGitHub {
		t.Errorf("Source = %q, want github", lib.Source)
	}
	if lib.Name != "widgets" {
		t.Errorf("Name = %q, want widgets", lib.Name)
	}
	if len(lib.Components) != 2 {
		t.Fatalf("got %d components, want 2: %+v", len(lib.Components), lib.Components)
	}
	// Tree order: Button first, then date-picker.
	if lib.Components[0].Name != "Button" || lib.Components[1].Name != "Date Picker" {
		t.Errorf("components = %q, %q", lib.Components[0].Name, lib.Components[1].Name)
	}
	if lib.Components[1].Category != "Forms" {
		t.Errorf("date picker category = %q, want Forms", lib.Components[1].Category)
	}
}

func TestScanFailuresYieldNil(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "metadata request forbidden",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			},
		},
		{
			name: "rate limited",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
		},
		{
			name: "empty tree",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/repos/acme/widgets" {
					w.Write([]byte(`{"default_branch": "main"}`))
					return
				}
				w.Write([]byte(`{"tree": []}`))
			},
		},
		{
			name: "malformed payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`not json`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scanner := newTestScanner(t, tt.handler)
			if lib := scanner.Scan("https://github.com/acme/widgets"); lib != nil {
				t.Errorf("Scan() = %+v, want nil", lib)
			}
		})
	}
}

func TestScanSkipsNetworkForUnparseableURL(t *testing.T) {
	scanner := newTestScanner(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected network request for unparseable URL")
	}))

	if lib := scanner.Scan("https://example.com/not-a-repo"); lib != nil {
		t.Errorf("Scan() = %+v, want nil", lib)
	}
}
