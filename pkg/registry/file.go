package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// entriesFile is the on-disk shape of an operator-supplied registry file.
type entriesFile struct {
	Entries []Entry `yaml:"entries"`
}

// LoadFile reads extra curated entries from a YAML file. Loaded entries are
// validated minimally: a name, at least one pattern, and a non-empty
// component list, since an empty catalog can never satisfy a resolution.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry file: %w", err)
	}

	var file entriesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse registry file: %w", err)
	}

	for i, e := range file.Entries {
		if e.Name == "" {
			return nil, fmt.Errorf("registry entry %d: missing name", i)
		}
		if len(e.Patterns) == 0 {
			return nil, fmt.Errorf("registry entry %q: no patterns", e.Name)
		}
		if len(e.Components) == 0 {
			return nil, fmt.Errorf("registry entry %q: no components", e.Name)
		}
		if file.Entries[i].Source == "" {
			file.Entries[i].Source = "curated"
		}
	}

	return file.Entries, nil
}
