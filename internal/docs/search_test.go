package docs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("fixture"), 0o600))
}

func TestSearchDirectoryFindsResumeFiles(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "jane-doe.pdf")
	writeFixture(t, dir, "john_smith.docx")
	writeFixture(t, dir, "notes.md")
	writeFixture(t, dir, "plain.txt")

	s := NewService(0)
	result, err := s.SearchDirectory(SearchDirectoryRequest{Directory: dir})
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalCount)
	names := make([]string, 0, len(result.Files))
	for _, f := range result.Files {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, []string{"jane-doe.pdf", "john_smith.docx", "plain.txt"}, names)
}

func TestSearchDirectoryFuzzyQuery(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "jane-doe.pdf")
	writeFixture(t, dir, "john_smith.docx")

	s := NewService(0)
	result, err := s.SearchDirectory(SearchDirectoryRequest{Directory: dir, Query: "doe jane"})
	require.NoError(t, err)

	require.Equal(t, 1, result.TotalCount)
	assert.Equal(t, "jane-doe.pdf", result.Files[0].Name)
}

func TestSearchDirectorySkipsOversizedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "jane-doe.pdf")

	s := NewService(3) // smaller than the fixture
	result, err := s.SearchDirectory(SearchDirectoryRequest{Directory: dir})
	require.NoError(t, err)

	assert.Equal(t, 0, result.TotalCount)
}

func TestSearchDirectoryMissing(t *testing.T) {
	s := NewService(0)
	_, err := s.SearchDirectory(SearchDirectoryRequest{Directory: "/nonexistent/dir"})
	assert.Error(t, err)
}

func TestSearchDirectoryEmptyArgument(t *testing.T) {
	s := NewService(0)
	_, err := s.SearchDirectory(SearchDirectoryRequest{})
	assert.Error(t, err)
}

func TestCountResumesInDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "a.txt")
	writeFixture(t, dir, "b.pdf")

	s := NewService(0)
	count, err := s.CountResumesInDirectory(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestIsResumeFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"resume.pdf", true},
		{"resume.PDF", true},
		{"resume.docx", true},
		{"resume.doc", true},
		{"resume.txt", true},
		{"resume.md", false},
		{"resume", false},
	}

	for _, tt := range tests {
		if got := IsResumeFile(tt.name); got != tt.want {
			t.Errorf("IsResumeFile(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
