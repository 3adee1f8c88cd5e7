package project

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Info stores what was detected about the project surrounding the manifest.
type Info struct {
	RootPath         string   // Absolute path to the directory holding the manifest
	ManifestPath     string   // Absolute path to the manifest file itself
	Name             string   // Project name (manifest name or directory basename)
	Type             string   // Primary detected project type (e.g. nextjs, react, npm)
	DetectedPackages []string // All detected frameworks/packages based on dependencies
	Manifest         *Manifest
}

// nonAlphaNumRegex matches any sequence of characters that is not a lowercase letter or digit.
// Used for normalizing package names for easier matching.
var nonAlphaNumRegex = regexp.MustCompile(`[^a-z0-9]+`)

// normalizePkgName returns a normalized version of the package name.
func normalizePkgName(s string) string {
	return nonAlphaNumRegex.ReplaceAllString(strings.ToLower(s), "")
}

// Known framework/package names used to label the project in the UI header.
var knownPackages = map[string]string{
	"next":              "nextjs",
	"react":             "react",
	"gatsby":            "gatsby",
	"react-native":      "react-native",
	"remix":             "remix",
	"vue":               "vue",
	"@angular/core":     "angular",
	"svelte":            "svelte",
	"astro":             "astro",
	"tailwindcss":       "tailwindcss",
	"typescript":        "typescript",
	"vite":              "vite",
	"webpack":           "webpack",
	"express":           "express",
	"styled-components": "styled-components",
	"@sanity/cli":       "sanity",
	"@shopify/cli":      "shopify",
}

// typePriority decides which detected package names the primary project type,
// checked in order.
var typePriority = []string{"nextjs", "react", "angular", "vue", "svelte", "astro", "remix", "express"}

// Detect locates the manifest starting at startPath and builds an Info from
// its contents. It returns the locator's error unchanged when no manifest
// exists; a manifest that fails to parse likewise propagates unchanged.
func Detect(startPath, manifestName string) (Info, error) {
	manifestPath, err := Locate(startPath, manifestName)
	if err != nil {
		return Info{}, err
	}

	m, err := Read(manifestPath)
	if err != nil {
		return Info{}, err
	}

	rootPath := filepath.Dir(manifestPath)
	info := Info{
		RootPath:     rootPath,
		ManifestPath: manifestPath,
		Name:         m.DisplayName(filepath.Base(rootPath)),
		Type:         "npm",
		Manifest:     m,
	}

	// Check dependencies and devDependencies against known packages for
	// framework detection. Names are matched exactly first, then in
	// normalized form so scoped or punctuated variants still hit.
	normalizedKnown := make(map[string]string, len(knownPackages))
	for pkgName, frameworkName := range knownPackages {
		normalizedKnown[normalizePkgName(pkgName)] = frameworkName
	}
	detectedSet := make(map[string]bool)
	for _, deps := range []map[string]string{m.Dependencies, m.DevDependencies} {
		for pkgName := range deps {
			if frameworkName, known := knownPackages[pkgName]; known {
				detectedSet[frameworkName] = true
			} else if frameworkName, known := normalizedKnown[normalizePkgName(pkgName)]; known {
				detectedSet[frameworkName] = true
			}
		}
	}
	for pkg := range detectedSet {
		info.DetectedPackages = append(info.DetectedPackages, pkg)
	}
	sort.Strings(info.DetectedPackages)

	for _, candidate := range typePriority {
		if detectedSet[candidate] {
			info.Type = candidate
			break
		}
	}

	return info, nil
}
