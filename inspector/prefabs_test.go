package inspector_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/ooftn-inspector/inspector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPrefabs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"tree.json", "house.json"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "drafts"), 0o755))

	names, err := inspector.ListPrefabs(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"house.json", "tree.json"}, names)
}

func TestListPrefabsMissingDir(t *testing.T) {
	names, err := inspector.ListPrefabs(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NotNil(t, names)
	assert.Empty(t, names)
}
