package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hellenic-development/design-resolver/pkg/catalog"
)

func TestLookup(t *testing.T) {
	r := New()

	tests := []struct {
		name     string
		url      string
		wantName string
	}{
		{
			name:     "shadcn docs URL",
			url:      "https://ui.shadcn.com/docs/components/button",
			wantName: "shadcn/ui",
		},
		{
			name:     "shadcn bare name",
			url:      "shadcn",
			wantName: "shadcn/ui",
		},
		{
			name:     "material ui URL",
			url:      "https://mui.com/material-ui/react-button/",
			wantName: "Material UI",
		},
		{
			name:     "ant design URL",
			url:      "https://ant.design/components/overview",
			wantName: "Ant Design",
		},
		{
			name:     "chakra URL",
			url:      "https://chakra-ui.com/docs/components",
			wantName: "Chakra UI",
		},
		{
			name:     "mantine URL",
			url:      "https://mantine.dev/core/button/",
			wantName: "Mantine",
		},
		{
			name:     "radix URL",
			url:      "https://www.radix-ui.com/primitives",
			wantName: "Radix UI",
		},
		{
			name:     "daisyui URL",
			url:      "https://daisyui.com/components/",
			wantName: "daisyUI",
		},
		{
			name:     "case insensitive",
			url:      "HTTPS://UI.SHADCN.COM/",
			wantName: "shadcn/ui",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib := r.Lookup(tt.url)
			if lib == nil {
				t.Fatalf("Lookup(%q) = nil, want %q", tt.url, tt.wantName)
			}
			if lib.Name != tt.wantName {
				t.Errorf("Lookup(%q).Name = %q, want %q", tt.url, lib.Name, tt.wantName)
			}
			if lib.Source != catalog.SourceCurated {
				t.Errorf("Lookup(%q).Source = %q, want %q", tt.url, lib.Source, catalog.SourceCurated)
			}
			if len(lib.Components) == 0 {
				t.Errorf("Lookup(%q) returned empty component list", tt.url)
			}
		})
	}
}

func TestLookupMiss(t *testing.T) {
	r := New()
	for _, url := range []string{"https://example.com", "https://github.com/acme/widgets", "", "   "} {
		if lib := r.Lookup(url); lib != nil {
			t.Errorf("Lookup(%q) = %q, want nil", url, lib.Name)
		}
	}
}

// Each entry's source URL is a realistic input for that design system; no
// other entry may match it, or the table has become ambiguous.
func TestNoAmbiguousPatterns(t *testing.T) {
	r := New()
	for i := range r.entries {
		lib := r.Lookup(r.entries[i].SourceURL)
		if lib == nil {
			t.Errorf("entry %q does not match its own source URL %q", r.entries[i].Name, r.entries[i].SourceURL)
			continue
		}
		if lib.Name != r.entries[i].Name {
			t.Errorf("source URL %q resolved to %q, want %q", r.entries[i].SourceURL, lib.Name, r.entries[i].Name)
		}
	}
}

// Two resolutions of the same URL are structurally equal except for
// generated IDs, and neither aliases the table.
func TestLookupIdempotent(t *testing.T) {
	r := New()
	a := r.Lookup("https://ui.shadcn.com")
	b := r.Lookup("https://ui.shadcn.com")

	if a == nil || b == nil {
		t.Fatal("expected both lookups to resolve")
	}
	if a.ID == b.ID {
		t.Error("two lookups shared a library ID")
	}
	if a.Name != b.Name || a.Source != b.Source || len(a.Components) != len(b.Components) {
		t.Error("two lookups of the same URL differ structurally")
	}
	for i := range a.Components {
		if a.Components[i].Name != b.Components[i].Name || a.Components[i].Category != b.Components[i].Category {
			t.Errorf("component %d differs between lookups", i)
		}
		if a.Components[i].ID == b.Components[i].ID {
			t.Errorf("component %d shares an ID between lookups", i)
		}
	}

	// Mutating a result must not leak into later lookups.
	a.Components[0].Name = "Mutated"
	c := r.Lookup("https://ui.shadcn.com")
	if c.Components[0].Name == "Mutated" {
		t.Error("mutating a returned library leaked into the registry table")
	}
}

func TestNames(t *testing.T) {
	names := New().Names()
	if len(names) != len(curated) {
		t.Fatalf("Names() returned %d entries, want %d", len(names), len(curated))
	}
	if names[0] != "shadcn/ui" {
		t.Errorf("Names()[0] = %q, want table order preserved", names[0])
	}
}

func TestBuild(t *testing.T) {
	r := New()

	lib := r.Build("Material UI")
	if lib == nil {
		t.Fatal("Build(\"Material UI\") = nil")
	}
	if lib.Source != catalog.SourceCurated {
		t.Errorf("Build() source = %q, want curated", lib.Source)
	}

	if lib := r.Build("material ui"); lib == nil {
		t.Error("Build() should match case-insensitively")
	}
	if lib := r.Build("No Such Library"); lib != nil {
		t.Errorf("Build(unknown) = %q, want nil", lib.Name)
	}
}

func TestExtraEntriesComeAfterBuiltins(t *testing.T) {
	extra := Entry{
		Patterns:   []string{"ui.shadcn.com", "internal.example.com"},
		Name:       "Internal Kit",
		Source:     catalog.SourceCurated,
		SourceURL:  "https://internal.example.com",
		Components: group("Core", "Button"),
	}
	r := New(extra)

	// The built-in entry keeps priority on the shared pattern.
	if lib := r.Lookup("https://ui.shadcn.com"); lib == nil || lib.Name != "shadcn/ui" {
		t.Error("extra entry shadowed a built-in pattern")
	}
	if lib := r.Lookup("https://internal.example.com/kit"); lib == nil || lib.Name != "Internal Kit" {
		t.Error("extra entry did not match its own pattern")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.yaml")
	content := `entries:
  - name: Acme Design
    patterns: ["design.acme.com"]
    sourceUrl: https://design.acme.com
    components:
      - name: Button
        category: Forms
      - name: Modal
        category: Overlay
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	entries, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("LoadFile() returned %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Name != "Acme Design" || len(e.Components) != 2 {
		t.Errorf("LoadFile() entry = %+v", e)
	}
	if e.Source != catalog.SourceCurated {
		t.Errorf("LoadFile() source defaulted to %q, want curated", e.Source)
	}
}

func TestLoadFileRejectsIncompleteEntries(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing name",
			content: "entries:\n  - patterns: [\"x.com\"]\n    components: [{name: Button}]\n",
		},
		{
			name:    "missing patterns",
			content: "entries:\n  - name: X\n    components: [{name: Button}]\n",
		},
		{
			name:    "empty components",
			content: "entries:\n  - name: X\n    patterns: [\"x.com\"]\n",
		},
		{
			name:    "malformed yaml",
			content: "entries: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "registry.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadFile(path); err == nil {
				t.Error("LoadFile() accepted an invalid file")
			}
		})
	}
}
