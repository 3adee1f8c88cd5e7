package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
)

// ErrManifestParse is returned (wrapped) when a manifest file exists but is
// not valid JSON.
var ErrManifestParse = errors.New("malformed manifest")

// Manifest holds the recognized top-level fields of a package.json file.
// Unrecognized keys are ignored. The manifest is read-only; this tool never
// writes it back.
type Manifest struct {
	Name                 string            `json:"name"`
	Version              string            `json:"version"`
	Description          string            `json:"description,omitempty"`
	Scripts              map[string]string `json:"scripts,omitempty"`
	Dependencies         map[string]string `json:"dependencies,omitempty"`
	DevDependencies      map[string]string `json:"devDependencies,omitempty"`
	PeerDependencies     map[string]string `json:"peerDependencies,omitempty"`
	BundledDependencies  map[string]string `json:"bundledDependencies,omitempty"`
	OptionalDependencies map[string]string `json:"optionalDependencies,omitempty"`
}

// DependencyGroup identifies which manifest section a dependency came from.
type DependencyGroup string

const (
	GroupRegular  DependencyGroup = "dependencies"
	GroupDev      DependencyGroup = "devDependencies"
	GroupPeer     DependencyGroup = "peerDependencies"
	GroupBundle   DependencyGroup = "bundledDependencies"
	GroupOptional DependencyGroup = "optionalDependencies"
)

// tag returns the short label suffix used to disambiguate a dependency in a
// flattened display list. The regular group carries no tag.
func (g DependencyGroup) tag() string {
	switch g {
	case GroupDev:
		return "dev"
	case GroupPeer:
		return "peer"
	case GroupBundle:
		return "bundle"
	case GroupOptional:
		return "optional"
	default:
		return ""
	}
}

// Dependency is a single flattened dependency entry.
type Dependency struct {
	Label   string // display label, e.g. "bar (dev)"
	Name    string // bare package name, e.g. "bar"
	Version string // declared version or range
	Group   DependencyGroup
}

// Read loads and parses the manifest at path. Every call re-reads and
// re-parses the file; there is no caching, so callers always observe the
// current on-disk state.
func Read(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrManifestParse, path, err)
	}
	return &m, nil
}

// groupsInOrder returns the five dependency groups in their fixed display
// order along with their backing maps.
func (m *Manifest) groupsInOrder() []struct {
	group DependencyGroup
	deps  map[string]string
} {
	return []struct {
		group DependencyGroup
		deps  map[string]string
	}{
		{GroupRegular, m.Dependencies},
		{GroupDev, m.DevDependencies},
		{GroupPeer, m.PeerDependencies},
		{GroupBundle, m.BundledDependencies},
		{GroupOptional, m.OptionalDependencies},
	}
}

// AllDependencies flattens every dependency group into a single ordered list.
// Groups appear in their manifest order (regular, dev, peer, bundle,
// optional) with names sorted inside each group. Entries from non-regular
// groups get a suffixed label so same-named packages stay distinguishable.
func (m *Manifest) AllDependencies() []Dependency {
	var out []Dependency
	for _, g := range m.groupsInOrder() {
		names := make([]string, 0, len(g.deps))
		for name := range g.deps {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			label := name
			if tag := g.group.tag(); tag != "" {
				label = fmt.Sprintf("%s (%s)", name, tag)
			}
			out = append(out, Dependency{
				Label:   label,
				Name:    name,
				Version: g.deps[name],
				Group:   g.group,
			})
		}
	}
	return out
}

// ScriptNames returns the names of the manifest's scripts, sorted.
func (m *Manifest) ScriptNames() []string {
	names := make([]string, 0, len(m.Scripts))
	for name := range m.Scripts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DisplayName returns the manifest's declared project name, falling back to
// fallback (typically the project directory basename) when the field is
// empty.
func (m *Manifest) DisplayName(fallback string) string {
	if m.Name != "" {
		return m.Name
	}
	return fallback
}
