package fs

import (
	"testing"

	"sandboxenv/internal/memfs"
)

func TestStorePath(t *testing.T) {
	tests := []struct {
		root string
		path string
		want string
	}{
		{root: "/", path: "/", want: "/"},
		{root: "/", path: "/src", want: "/src"},
		{root: "/simpleWorkspace", path: "/", want: "/simpleWorkspace"},
		{root: "/simpleWorkspace", path: "/src/extension.ts", want: "/simpleWorkspace/src/extension.ts"},
	}

	for _, tt := range tests {
		t.Run(tt.root+tt.path, func(t *testing.T) {
			v := &View{store: memfs.New(), root: tt.root}
			if got := v.storePath(tt.path); got != tt.want {
				t.Errorf("storePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestChildPath(t *testing.T) {
	if got := childPath("/", "src"); got != "/src" {
		t.Errorf("childPath(/, src) = %q", got)
	}
	if got := childPath("/src", "a.ts"); got != "/src/a.ts" {
		t.Errorf("childPath(/src, a.ts) = %q", got)
	}
}

func TestValidName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"package.json", true},
		{".gitignore", true},
		{"", false},
		{".", false},
		{"..", false},
		{"a/b", false},
		{"nul\x00", false},
	}
	for _, tt := range tests {
		if got := validName(tt.name); got != tt.want {
			t.Errorf("validName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
