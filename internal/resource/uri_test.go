package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "absolute path", input: "/sandbox-user-data-dir", expected: "/sandbox-user-data-dir"},
		{name: "relative path gets rooted", input: "simpleWorkspace", expected: "/simpleWorkspace"},
		{name: "windows separators", input: `\simpleWorkspace`, expected: "/simpleWorkspace"},
		{name: "trailing slash gets cleaned", input: "/a/b/", expected: "/a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := File(tt.input)
			assert.Equal(t, SchemeFile, u.Scheme)
			assert.Equal(t, tt.expected, u.Path)
		})
	}
}

func TestJoinPath(t *testing.T) {
	root := File("/sandbox-user-data-dir").WithScheme(SchemeUserData)

	tests := []struct {
		name     string
		segments []string
		expected string
	}{
		{name: "single file", segments: []string{"settings.json"}, expected: "/sandbox-user-data-dir/settings.json"},
		{name: "empty segment is identity", segments: []string{""}, expected: "/sandbox-user-data-dir"},
		{name: "nested", segments: []string{"src", "extension.ts"}, expected: "/sandbox-user-data-dir/src/extension.ts"},
		{name: "dot segment", segments: []string{"./logs"}, expected: "/sandbox-user-data-dir/logs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JoinPath(root, tt.segments...)
			assert.Equal(t, SchemeUserData, got.Scheme)
			assert.Equal(t, tt.expected, got.Path)
			assert.True(t, root.Contains(got))
		})
	}
}

func TestJoinPathRejectsEscapes(t *testing.T) {
	root := File("/root")

	assert.Panics(t, func() { JoinPath(root, "../etc") })
	assert.Panics(t, func() { JoinPath(root, "a/../../b") })
	assert.Panics(t, func() { JoinPath(root, "/abs") })
	assert.Panics(t, func() { JoinPath(root, `..\up`) })
}

func TestCheckSuffix(t *testing.T) {
	require.NoError(t, CheckSuffix("globalStorage"))
	require.NoError(t, CheckSuffix("a/b.c"))
	assert.Error(t, CheckSuffix(".."))
	assert.Error(t, CheckSuffix("/x"))
}

func TestContains(t *testing.T) {
	root := File("/data")

	assert.True(t, root.Contains(File("/data")))
	assert.True(t, root.Contains(File("/data/x")))
	assert.False(t, root.Contains(File("/database")))
	assert.False(t, root.Contains(File("/data").WithScheme(SchemeUserData)))
	assert.True(t, File("/").Contains(File("/anything")))
}

func TestString(t *testing.T) {
	assert.Equal(t, "vscode-userdata:///sandbox-user-data-dir", New(SchemeUserData, "/sandbox-user-data-dir").String())
	assert.True(t, URI{}.IsZero())
	assert.False(t, File("/").IsZero())
}
