package npm

import (
	"errors"
	"reflect"
	"testing"

	"npmtui/app/project"
)

func TestBuildAssemblesCommandLine(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      Config
		in       BuildInput
		expected string
	}{
		{
			name:     "install with positional and extra args",
			cfg:      Config{Bin: "npm"},
			in:       BuildInput{Verb: "install", Positional: []string{"left-pad"}, ExtraArgs: []string{"--save-dev"}},
			expected: "npm install left-pad --save-dev",
		},
		{
			name:     "double-dash args are appended after separator",
			cfg:      Config{Bin: "npm"},
			in:       BuildInput{Verb: "install", DoubleDash: []string{"--production"}},
			expected: "npm install -- --production",
		},
		{
			name:     "empty extra args never produce double spaces",
			cfg:      Config{Bin: "npm"},
			in:       BuildInput{Verb: "install", Positional: []string{"left-pad"}, ExtraArgs: []string{""}},
			expected: "npm install left-pad",
		},
		{
			name:     "global args come before the verb",
			cfg:      Config{Bin: "npm", GlobalArgs: "--registry https://example.test"},
			in:       BuildInput{Verb: "install"},
			expected: "npm --registry https://example.test install",
		},
		{
			name:     "verb args follow positional args when enabled",
			cfg:      Config{Bin: "npm", VerbArgs: "--no-audit"},
			in:       BuildInput{Verb: "install", Positional: []string{"left-pad"}, UseVerbArgs: true},
			expected: "npm install left-pad --no-audit",
		},
		{
			name:     "verb args are ignored when disabled",
			cfg:      Config{Bin: "npm", VerbArgs: "--no-audit"},
			in:       BuildInput{Verb: "uninstall", Positional: []string{"left-pad"}},
			expected: "npm uninstall left-pad",
		},
		{
			name:     "quoted free-form args stay one token",
			cfg:      Config{Bin: "npm", GlobalArgs: `--userconfig "/tmp/my config/npmrc"`},
			in:       BuildInput{Verb: "list"},
			expected: "npm --userconfig /tmp/my config/npmrc list",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := Build(tc.cfg, tc.in)
			if err != nil {
				t.Fatalf("Build: unexpected error: %v", err)
			}
			if c.String() != tc.expected {
				t.Errorf("Build = %q, want %q", c.String(), tc.expected)
			}
		})
	}
}

func TestBuildKeepsNamesAsSingleTokens(t *testing.T) {
	// A hostile "package name" must never be split or interpreted.
	c, err := Build(Config{Bin: "npm"}, BuildInput{
		Verb:       "install",
		Positional: []string{"left-pad; rm -rf /"},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	expected := []string{"install", "left-pad; rm -rf /"}
	if !reflect.DeepEqual(c.Args, expected) {
		t.Errorf("Args = %q, want %q", c.Args, expected)
	}
}

func TestBuildRejectsEmptyVerb(t *testing.T) {
	if _, err := Build(Config{Bin: "npm"}, BuildInput{}); err == nil {
		t.Error("Build with empty verb: expected error")
	}
}

func TestInstallPackage(t *testing.T) {
	testCases := []struct {
		dest     Destination
		expected string
	}{
		{DestRegular, "npm install left-pad"},
		{DestDev, "npm install left-pad --save-dev"},
		{DestPeer, "npm install left-pad --save-peer"},
		{DestBundle, "npm install left-pad --save-bundle"},
		{DestOptional, "npm install left-pad --save-optional"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.dest), func(t *testing.T) {
			cfg := Config{Bin: "npm", Destination: tc.dest}
			c, err := InstallPackage(cfg, "left-pad")
			if err != nil {
				t.Fatalf("InstallPackage: %v", err)
			}
			if c.String() != tc.expected {
				t.Errorf("InstallPackage = %q, want %q", c.String(), tc.expected)
			}
		})
	}
}

func TestInstallPackageUnknownDestination(t *testing.T) {
	cfg := Config{Bin: "npm", Destination: Destination("sideways")}
	_, err := InstallPackage(cfg, "left-pad")
	if !errors.Is(err, ErrUnknownDestination) {
		t.Errorf("InstallPackage error = %v, want ErrUnknownDestination", err)
	}
}

func TestUninstallCarriesGroupFlag(t *testing.T) {
	cfg := Config{Bin: "npm"}
	dep := project.Dependency{Name: "bar", Group: project.GroupDev}
	c, err := Uninstall(cfg, dep)
	if err != nil {
		t.Fatalf("Uninstall: %v", err)
	}
	if c.String() != "npm uninstall bar --save-dev" {
		t.Errorf("Uninstall = %q, want %q", c.String(), "npm uninstall bar --save-dev")
	}
}

func TestRunScript(t *testing.T) {
	cfg := Config{Bin: "npm"}

	c, err := RunScript(cfg, "build", nil)
	if err != nil {
		t.Fatalf("RunScript: %v", err)
	}
	if c.String() != "npm run build" {
		t.Errorf("RunScript = %q, want %q", c.String(), "npm run build")
	}

	c, err = RunScript(cfg, "test", []string{"--watch"})
	if err != nil {
		t.Fatalf("RunScript: %v", err)
	}
	if c.String() != "npm run test -- --watch" {
		t.Errorf("RunScript = %q, want %q", c.String(), "npm run test -- --watch")
	}
}

func TestList(t *testing.T) {
	c, err := List(Config{Bin: "npm", ListDepth: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if c.String() != "npm list --depth=2" {
		t.Errorf("List = %q, want %q", c.String(), "npm list --depth=2")
	}
}

func TestInit(t *testing.T) {
	c, err := Init(Config{Bin: "npm"}, true)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if c.String() != "npm init --yes" {
		t.Errorf("Init = %q, want %q", c.String(), "npm init --yes")
	}
}

func TestSplitArgs(t *testing.T) {
	testCases := []struct {
		in       string
		expected []string
	}{
		{"", nil},
		{"--watch", []string{"--watch"}},
		{`--name "two words"`, []string{"--name", "two words"}},
	}

	for _, tc := range testCases {
		got, err := SplitArgs(tc.in)
		if err != nil {
			t.Fatalf("SplitArgs(%q): %v", tc.in, err)
		}
		if len(got) == 0 && len(tc.expected) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tc.expected) {
			t.Errorf("SplitArgs(%q) = %q, want %q", tc.in, got, tc.expected)
		}
	}
}
