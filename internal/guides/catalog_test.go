package guides

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
}

func TestScan(t *testing.T) {
	pub := t.TempDir()
	writeFile(t, filepath.Join(pub, "maths12-guide", "algebra.pdf"), 10)
	writeFile(t, filepath.Join(pub, "maths12-guide", "calculus.PDF"), 20)
	writeFile(t, filepath.Join(pub, "maths12-guide", "notes.txt"), 5)
	writeFile(t, filepath.Join(pub, "science12-guide", "physics.pdf"), 30)

	got, err := Scan(pub, []string{"maths12-guide", "science12-guide", "history12-guide"})
	require.NoError(t, err)

	require.Len(t, got, 3, "non-PDFs and missing subjects are skipped")
	assert.Equal(t, Guide{Subject: "maths12-guide", File: "algebra.pdf", Path: "/maths12-guide/algebra.pdf", SizeBytes: 10}, got[0])
	assert.Equal(t, "calculus.PDF", got[1].File)
	assert.Equal(t, "/science12-guide/physics.pdf", got[2].Path)
}

func TestScan_EmptySubjects(t *testing.T) {
	got, err := Scan(t.TempDir(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
