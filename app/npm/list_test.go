package npm

import (
	"reflect"
	"testing"
)

func TestParseListOutput(t *testing.T) {
	testCases := []struct {
		name     string
		output   string
		expected []ListEntry
	}{
		{
			name:   "plain rows with trailing annotations",
			output: "foo@1.2.3 extra\nbar@4.5.6\n",
			expected: []ListEntry{
				{Name: "foo", Version: "1.2.3"},
				{Name: "bar", Version: "4.5.6"},
			},
		},
		{
			name: "tree-drawing prefixes are stripped",
			output: "my-app@0.1.0 /home/me/my-app\n" +
				"├── left-pad@1.3.0\n" +
				"├─┬ react@18.2.0\n" +
				"│ └── loose-envify@1.4.0\n" +
				"└── typescript@5.3.3\n",
			expected: []ListEntry{
				{Name: "my-app", Version: "0.1.0"},
				{Name: "left-pad", Version: "1.3.0"},
				{Name: "react", Version: "18.2.0"},
				{Name: "loose-envify", Version: "1.4.0"},
				{Name: "typescript", Version: "5.3.3"},
			},
		},
		{
			name: "legacy ascii prefixes",
			output: "+-- left-pad@1.3.0\n" +
				"`-- react@18.2.0\n",
			expected: []ListEntry{
				{Name: "left-pad", Version: "1.3.0"},
				{Name: "react", Version: "18.2.0"},
			},
		},
		{
			name:   "scoped names keep the scope",
			output: "├── @types/node@20.11.5\n",
			expected: []ListEntry{
				{Name: "@types/node", Version: "20.11.5"},
			},
		},
		{
			name: "duplicates collapse in encounter order",
			output: "├── left-pad@1.3.0\n" +
				"├─┬ react@18.2.0\n" +
				"│ └── left-pad@1.3.0 deduped\n" +
				"└── left-pad@1.2.0\n",
			expected: []ListEntry{
				{Name: "left-pad", Version: "1.3.0"},
				{Name: "react", Version: "18.2.0"},
				{Name: "left-pad", Version: "1.2.0"},
			},
		},
		{
			name: "non-matching lines are skipped",
			output: "npm warn config something\n" +
				"\n" +
				"├── (empty)\n" +
				"├── left-pad@1.3.0\n",
			expected: []ListEntry{
				{Name: "left-pad", Version: "1.3.0"},
			},
		},
		{
			name:     "empty output yields no rows",
			output:   "",
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseListOutput(tc.output)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("ParseListOutput = %v, want %v", got, tc.expected)
			}
		})
	}
}
